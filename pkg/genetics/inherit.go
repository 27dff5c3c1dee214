// Mendelian inheritance: single-draw gamete sampling and exhaustive
// offspring enumeration. Loci segregate independently (no linkage).

package genetics

import (
	"iter"
	"math/rand/v2"
)

// Combine draws one offspring genotype: for each locus, one allele
// uniformly from each parent's pair. The caller supplies the random
// source so batches are reproducible when seeded.
func Combine(cat *Catalog, a, b Genotype, rng *rand.Rand) Genotype {
	pairs := make(map[string]Pair, cat.NumLoci())
	for _, l := range cat.Loci() {
		pa := a.pairs[l.Symbol]
		pb := b.pairs[l.Symbol]
		pairs[l.Symbol] = l.sortPair(pa[rng.IntN(2)], pb[rng.IntN(2)])
	}
	return Genotype{pairs: pairs}
}

type locusOutcome struct {
	pair Pair
	p    float64
}

// locusDistribution collapses the up-to-four equally likely ordered
// gamete draws at one locus into distinct unordered pairs with summed
// probabilities.
func locusDistribution(l Locus, pa, pb Pair) []locusOutcome {
	counts := make(map[Pair]int, 4)
	order := make([]Pair, 0, 4)
	for _, x := range []string{pa[0], pa[1]} {
		for _, y := range []string{pb[0], pb[1]} {
			p := l.sortPair(x, y)
			if counts[p] == 0 {
				order = append(order, p)
			}
			counts[p]++
		}
	}
	out := make([]locusOutcome, 0, len(order))
	for _, p := range order {
		out = append(out, locusOutcome{pair: p, p: float64(counts[p]) / 4})
	}
	return out
}

// Enumerate yields every possible offspring genotype of the two parents
// with its exact probability. Per-locus duplicates are merged before the
// cross product, so each genotype is yielded exactly once and the
// probabilities sum to 1. The sequence is lazy and restartable;
// consumers may break early.
func Enumerate(cat *Catalog, a, b Genotype) iter.Seq2[Genotype, float64] {
	loci := cat.Loci()
	dists := make([][]locusOutcome, len(loci))
	for i, l := range loci {
		dists[i] = locusDistribution(l, a.pairs[l.Symbol], b.pairs[l.Symbol])
	}

	return func(yield func(Genotype, float64) bool) {
		pairs := make(map[string]Pair, len(loci))
		var walk func(i int, p float64) bool
		walk = func(i int, p float64) bool {
			if i == len(loci) {
				g := Genotype{pairs: make(map[string]Pair, len(pairs))}
				for sym, pr := range pairs {
					g.pairs[sym] = pr
				}
				return yield(g, p)
			}
			for _, o := range dists[i] {
				pairs[loci[i].Symbol] = o.pair
				if !walk(i+1, p*o.p) {
					return false
				}
			}
			return true
		}
		walk(0, 1)
	}
}
