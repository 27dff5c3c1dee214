// Reverse lookup: genotypes whose resolved label matches a target
// phenotype.

package genetics

import "context"

// maxExhaustiveSpace bounds the genotype space the finder will scan in
// full. Above it, loci are pinned (see FindGenotypesForPhenotype).
const maxExhaustiveSpace = 1 << 19

// FindGenotypesForPhenotype enumerates genotypes that Resolve maps to
// the target label, up to limit matches (limit <= 0 means unlimited).
//
// Search mode: the scan is exhaustive over a prefix of the catalog's
// loci — as many, in declaration order, as fit under maxExhaustiveSpace
// — with every remaining locus pinned to its most-recessive homozygote
// (its no-effect pair). For the minimal profile this covers the whole
// space; for the standard profile the nine color loci plus Roan are
// scanned and the later pattern loci stay pinned, so the result is a
// representative subset for pattern phenotypes.
func FindGenotypesForPhenotype(ctx context.Context, cat *Catalog, target string, limit int) ([]Genotype, error) {
	loci := cat.Loci()

	// unordered pairs per locus: k*(k+1)/2
	free := 0
	space := 1
	for _, l := range loci {
		k := len(l.Alleles)
		n := k * (k + 1) / 2
		if space*n > maxExhaustiveSpace {
			break
		}
		space *= n
		free++
	}

	pinned := make(map[string]Pair, len(loci)-free)
	for _, l := range loci[free:] {
		pinned[l.Symbol] = l.nullPair()
	}

	var matches []Genotype
	n := 0
	var walk func(i int, pairs map[string]Pair) error
	walk = func(i int, pairs map[string]Pair) error {
		if i == free {
			if n++; n%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			g := Genotype{pairs: make(map[string]Pair, len(loci))}
			for sym, p := range pairs {
				g.pairs[sym] = p
			}
			for sym, p := range pinned {
				g.pairs[sym] = p
			}
			if Resolve(cat, g) == target {
				matches = append(matches, g)
			}
			return nil
		}
		l := loci[i]
		for ai, a := range l.Alleles {
			for _, b := range l.Alleles[ai:] {
				pairs[l.Symbol] = l.sortPair(a, b)
				if err := walk(i+1, pairs); err != nil {
					return err
				}
				if limit > 0 && len(matches) >= limit {
					return nil
				}
			}
		}
		return nil
	}
	if err := walk(0, make(map[string]Pair, free)); err != nil {
		return nil, err
	}
	return matches, nil
}
