package genetics

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombineFullyHomozygousParents(t *testing.T) {
	cat := StandardCatalog()
	parent := mustGenotype(t, cat, nil) // neutral profile is fully homozygous
	rng := rand.New(rand.NewPCG(3, 5))

	for range 50 {
		foal := Combine(cat, parent, parent, rng)
		require.True(t, foal.Equal(parent))
	}
}

func TestCombineIsReproducibleWhenSeeded(t *testing.T) {
	cat := StandardCatalog()
	a := mustGenotype(t, cat, map[string]string{LocusExtension: "E/e", LocusAgouti: "A/a"})
	b := mustGenotype(t, cat, map[string]string{LocusDilution: "N/Cr", LocusDun: "D/nd1"})

	f1 := Combine(cat, a, b, rand.New(rand.NewPCG(9, 9)))
	f2 := Combine(cat, a, b, rand.New(rand.NewPCG(9, 9)))
	require.True(t, f1.Equal(f2))
}

func TestLocusDistributionMergesDuplicateDraws(t *testing.T) {
	cat := StandardCatalog()
	e, _ := cat.Locus(LocusExtension)

	tests := []struct {
		name string
		pa   Pair
		pb   Pair
		want map[Pair]float64
	}{
		{
			name: "het x het",
			pa:   Pair{"E", "e"},
			pb:   Pair{"E", "e"},
			want: map[Pair]float64{{"E", "E"}: 0.25, {"E", "e"}: 0.5, {"e", "e"}: 0.25},
		},
		{
			name: "hom x hom collapses to one outcome",
			pa:   Pair{"e", "e"},
			pb:   Pair{"e", "e"},
			want: map[Pair]float64{{"e", "e"}: 1},
		},
		{
			name: "het x hom",
			pa:   Pair{"E", "e"},
			pb:   Pair{"e", "e"},
			want: map[Pair]float64{{"E", "e"}: 0.5, {"e", "e"}: 0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := map[Pair]float64{}
			for _, o := range locusDistribution(e, tt.pa, tt.pb) {
				got[o.pair] = o.p
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEnumerateYieldsDistinctGenotypesSummingToOne(t *testing.T) {
	cat := StandardCatalog()
	a := mustGenotype(t, cat, map[string]string{
		LocusExtension: "E/e",
		LocusAgouti:    "A/a",
		LocusDilution:  "N/Cr",
		LocusDun:       "D/nd2",
	})
	b := mustGenotype(t, cat, map[string]string{
		LocusExtension: "E/e",
		LocusDilution:  "Cr/Prl",
		LocusGray:      "G/g",
	})

	seen := map[string]bool{}
	total := 0.0
	for g, p := range Enumerate(cat, a, b) {
		key := g.String(cat)
		require.False(t, seen[key], "duplicate genotype yielded: %s", key)
		seen[key] = true
		total += p
	}
	require.NotEmpty(t, seen)
	require.InDelta(t, 1.0, total, 1e-9)
}

func TestEnumerateIsRestartableAndBreakable(t *testing.T) {
	cat := MinimalCatalog()
	a := mustGenotype(t, cat, map[string]string{LocusExtension: "E/e"})
	seq := Enumerate(cat, a, a)

	// early break
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)

	// a second pass starts over
	m := 0
	for range seq {
		m++
	}
	require.Equal(t, 3, m) // E/E, E/e, e/e; all other loci collapse
}
