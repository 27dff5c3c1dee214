// Breeding probability engine: joint offspring distributions and
// per-locus analysis over the exhaustive enumeration.

package genetics

import "context"

// ctx is polled every checkEvery leaves of the enumeration; the
// cross product over many heterozygous loci can get large.
const checkEvery = 256

// OffspringDistribution builds the full phenotype → probability map for
// the two parents' offspring. Probabilities sum to 1.0 within
// floating-point tolerance. Cancel via ctx to bound long enumerations;
// the engine itself imposes no timeout.
func OffspringDistribution(ctx context.Context, cat *Catalog, a, b Genotype) (map[string]float64, error) {
	dist := make(map[string]float64)
	n := 0
	for g, p := range Enumerate(cat, a, b) {
		if n++; n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		dist[Resolve(cat, g)] += p
	}
	return dist, nil
}

// LethalChance sums the probability mass of offspring genotypes that
// are lethal combinations.
func LethalChance(ctx context.Context, cat *Catalog, a, b Genotype) (float64, error) {
	var chance float64
	n := 0
	for g, p := range Enumerate(cat, a, b) {
		if n++; n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if lethal, _ := IsLethal(g); lethal {
			chance += p
		}
	}
	return chance, nil
}

// GeneProbabilities returns the offspring genotype distribution at a
// single locus, e.g. E/e × E/e → {E/E: 0.25, E/e: 0.5, e/e: 0.25}.
func GeneProbabilities(cat *Catalog, symbol string, a, b Genotype) map[Pair]float64 {
	l, ok := cat.Locus(symbol)
	if !ok {
		return nil
	}
	out := make(map[Pair]float64, 4)
	for _, o := range locusDistribution(l, a.Alleles(symbol), b.Alleles(symbol)) {
		out[o.pair] = o.p
	}
	return out
}

// GuaranteedTraits lists the loci where every possible offspring is the
// same homozygote, e.g. two e/e parents always give e/e.
func GuaranteedTraits(cat *Catalog, a, b Genotype) map[string]Pair {
	out := make(map[string]Pair)
	for _, l := range cat.Loci() {
		pa, pb := a.Alleles(l.Symbol), b.Alleles(l.Symbol)
		if pa.IsHomozygous() && pb.IsHomozygous() && pa[0] == pb[0] {
			out[l.Symbol] = pa
		}
	}
	return out
}
