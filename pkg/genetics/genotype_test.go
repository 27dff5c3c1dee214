package genetics

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// neutralPairs is an all no-effect genotype for the standard profile;
// tests override the loci they exercise.
func neutralPairs() map[string]string {
	return map[string]string{
		LocusExtension:     "E/E",
		LocusAgouti:        "A/A",
		LocusDilution:      "N/N",
		LocusDun:           "nd2/nd2",
		LocusSilver:        "n/n",
		LocusChampagne:     "n/n",
		LocusFlaxen:        "F/F",
		LocusSooty:         "sty/sty",
		LocusGray:          "g/g",
		LocusRoan:          "n/n",
		LocusTobiano:       "n/n",
		LocusFrame:         "n/n",
		LocusSabino:        "n/n",
		LocusDominantWhite: "n/n",
		LocusSplash:        "n/n",
		LocusLeopard:       "lp/lp",
		LocusPATN1:         "n/n",
	}
}

func mustGenotype(t *testing.T, cat *Catalog, overrides map[string]string) Genotype {
	t.Helper()
	pairs := neutralPairs()
	for sym, p := range overrides {
		pairs[sym] = p
	}
	var segs []string
	for _, l := range cat.Loci() {
		segs = append(segs, l.Symbol+":"+pairs[l.Symbol])
	}
	g, err := Parse(cat, strings.Join(segs, " "))
	require.NoError(t, err)
	return g
}

func TestParseRoundTrip(t *testing.T) {
	cat := StandardCatalog()
	text := "E:E/e A:A/a Dil:N/Cr D:D/nd2 Z:n/n Ch:n/n F:F/f STY:sty/sty G:g/g " +
		"Rn:n/n To:n/n O:n/n Sb:n/n W:n/n Spl:n/n Lp:lp/lp PATN1:n/n"
	g, err := Parse(cat, text)
	require.NoError(t, err)

	out := g.String(cat)
	g2, err := Parse(cat, out)
	require.NoError(t, err)
	require.True(t, g.Equal(g2))
	require.Equal(t, out, g2.String(cat))
}

func TestParseAcceptsEitherAlleleOrder(t *testing.T) {
	cat := MinimalCatalog()
	a, err := Parse(cat, "E:E/e A:a/A Dil:Cr/N D:nd2/D Z:n/n Ch:n/n F:f/F STY:sty/STY G:g/G")
	require.NoError(t, err)
	b, err := Parse(cat, "E:e/E A:A/a Dil:N/Cr D:D/nd2 Z:n/n Ch:n/n F:F/f STY:STY/sty G:G/g")
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.Equal(t, a.String(cat), b.String(cat))

	// serialization is dominant-first
	require.True(t, strings.HasPrefix(a.String(cat), "E:E/e A:A/a Dil:N/Cr D:D/nd2"))
}

func TestParseErrors(t *testing.T) {
	cat := MinimalCatalog()
	tests := []struct {
		name    string
		text    string
		segment string
	}{
		{"unknown locus", "Q:x/y E:E/e A:A/a Dil:N/N D:nd2/nd2 Z:n/n Ch:n/n F:F/F STY:sty/sty G:g/g", "Q:x/y"},
		{"invalid allele", "E:E/Q A:A/a Dil:N/N D:nd2/nd2 Z:n/n Ch:n/n F:F/F STY:sty/sty G:g/g", "E:E/Q"},
		{"single allele", "E:E A:A/a Dil:N/N D:nd2/nd2 Z:n/n Ch:n/n F:F/F STY:sty/sty G:g/g", "E:E"},
		{"missing locus", "E:E/e A:A/a Dil:N/N D:nd2/nd2 Z:n/n Ch:n/n F:F/F STY:sty/sty", ""},
		{"duplicate locus", "E:E/e E:E/e A:A/a Dil:N/N D:nd2/nd2 Z:n/n Ch:n/n F:F/F STY:sty/sty G:g/g", "E:E/e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(cat, tt.text)
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.segment, perr.Segment)
		})
	}
}

func TestRecordRoundTrip(t *testing.T) {
	cat := StandardCatalog()
	g := mustGenotype(t, cat, map[string]string{LocusExtension: "E/e", LocusDilution: "Cr/Prl"})

	rec := g.ToRecord()
	g2, err := FromRecord(cat, rec)
	require.NoError(t, err)
	require.True(t, g.Equal(g2))

	rec[LocusExtension] = [2]string{"E", "Q"}
	_, err = FromRecord(cat, rec)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, LocusExtension, verr.Locus)
}

func TestFromRecordRejectsMissingLocus(t *testing.T) {
	cat := MinimalCatalog()
	g := mustGenotype(t, StandardCatalog(), nil)
	rec := g.ToRecord()
	delete(rec, LocusGray)
	_, err := FromRecord(cat, rec)
	require.Error(t, err)
}

func TestGenotypeAccessors(t *testing.T) {
	cat := StandardCatalog()
	g := mustGenotype(t, cat, map[string]string{LocusExtension: "E/e", LocusDilution: "Cr/Prl"})

	require.Equal(t, Pair{"E", "e"}, g.Alleles(LocusExtension))
	require.True(t, g.Has(LocusExtension, "e"))
	require.False(t, g.Has(LocusExtension, "Q"))
	require.Equal(t, 1, g.Count(LocusDilution, "Cr"))
	require.Equal(t, 0, g.Count(LocusDilution, "N"))
	require.False(t, g.IsHomozygous(LocusExtension))
	require.True(t, g.IsHomozygous(LocusAgouti))
}

// Each of the k² ordered draws at a locus must be equally likely, so
// for Extension (k=2) the unordered outcomes settle near 1/4, 1/2, 1/4.
func TestRandomDrawDistribution(t *testing.T) {
	cat := MinimalCatalog()
	rng := rand.New(rand.NewPCG(7, 11))

	const trials = 20000
	counts := map[Pair]int{}
	for range trials {
		g := Random(cat, rng)
		counts[g.Alleles(LocusExtension)]++
	}

	freq := func(p Pair) float64 { return float64(counts[p]) / trials }
	require.InDelta(t, 0.25, freq(Pair{"E", "E"}), 0.02)
	require.InDelta(t, 0.50, freq(Pair{"E", "e"}), 0.02)
	require.InDelta(t, 0.25, freq(Pair{"e", "e"}), 0.02)
	require.Less(t, math.Abs(freq(Pair{"E", "E"})-freq(Pair{"e", "e"})), 0.02)
}

func TestRandomIsReproducibleWhenSeeded(t *testing.T) {
	cat := StandardCatalog()
	a := Random(cat, rand.New(rand.NewPCG(1, 2)))
	b := Random(cat, rand.New(rand.NewPCG(1, 2)))
	require.True(t, a.Equal(b))
}
