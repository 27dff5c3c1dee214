package genetics

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Pair is one unordered pair of allele ids. Pairs held by a Genotype
// are normalized dominant-first so equal genotypes compare and
// serialize identically.
type Pair [2]string

func (p Pair) Has(allele string) bool {
	return p[0] == allele || p[1] == allele
}

func (p Pair) Count(allele string) int {
	n := 0
	if p[0] == allele {
		n++
	}
	if p[1] == allele {
		n++
	}
	return n
}

func (p Pair) IsHomozygous() bool {
	return p[0] == p[1]
}

func (p Pair) String() string {
	return p[0] + "/" + p[1]
}

// Genotype maps every catalog locus (by symbol) to an allele pair.
// It is immutable after construction; derive new values instead of
// mutating.
type Genotype struct {
	pairs map[string]Pair
}

// New validates the pairs against the catalog and builds a genotype.
// Every catalog locus must be present and every allele must belong to
// its locus's set.
func New(cat *Catalog, pairs map[string]Pair) (Genotype, error) {
	g := Genotype{pairs: make(map[string]Pair, cat.NumLoci())}
	for _, l := range cat.Loci() {
		p, ok := pairs[l.Symbol]
		if !ok {
			return Genotype{}, &ValidationError{Locus: l.Symbol, Msg: "missing locus"}
		}
		for _, a := range []string{p[0], p[1]} {
			if !l.IsValidAllele(a) {
				return Genotype{}, &ValidationError{
					Locus: l.Symbol,
					Msg:   fmt.Sprintf("allele %q is not in %v", a, l.Alleles),
				}
			}
		}
		g.pairs[l.Symbol] = l.sortPair(p[0], p[1])
	}
	if len(pairs) != cat.NumLoci() {
		for sym := range pairs {
			if !cat.Has(sym) {
				return Genotype{}, &ValidationError{Locus: sym, Msg: "unknown locus"}
			}
		}
	}
	return g, nil
}

// Parse reads the canonical textual form, e.g.
//
//	E:E/e A:A/a Dil:N/Cr D:nd2/nd2 Z:n/n ...
//
// Segments may appear in any order and either allele order is accepted
// within a pair. Every catalog locus must appear exactly once.
func Parse(cat *Catalog, text string) (Genotype, error) {
	pairs := make(map[string]Pair)
	for _, seg := range strings.Fields(text) {
		sym, alleles, ok := strings.Cut(seg, ":")
		if !ok {
			return Genotype{}, &ParseError{Segment: seg, Msg: "missing ':' between locus and alleles"}
		}
		l, known := cat.Locus(sym)
		if !known {
			return Genotype{}, &ParseError{Segment: seg, Msg: "unknown locus " + sym}
		}
		if _, dup := pairs[sym]; dup {
			return Genotype{}, &ParseError{Segment: seg, Msg: "locus " + sym + " appears twice"}
		}
		a, b, ok := strings.Cut(alleles, "/")
		if !ok || a == "" || b == "" || strings.Contains(b, "/") {
			return Genotype{}, &ParseError{Segment: seg, Msg: "a locus needs exactly two alleles separated by '/'"}
		}
		for _, al := range []string{a, b} {
			if !l.IsValidAllele(al) {
				return Genotype{}, &ParseError{
					Segment: seg,
					Msg:     fmt.Sprintf("allele %q is not valid for %s (valid: %s)", al, l.Name, strings.Join(l.Alleles, ", ")),
				}
			}
		}
		pairs[sym] = l.sortPair(a, b)
	}
	for _, l := range cat.Loci() {
		if _, ok := pairs[l.Symbol]; !ok {
			return Genotype{}, &ParseError{Msg: "missing locus " + l.Symbol}
		}
	}
	return Genotype{pairs: pairs}, nil
}

// Random draws two alleles per locus uniformly with replacement, so a
// locus with k alleles gives each of the k² ordered draws equal weight
// before the pair is normalized.
func Random(cat *Catalog, rng *rand.Rand) Genotype {
	pairs := make(map[string]Pair, cat.NumLoci())
	for _, l := range cat.Loci() {
		a := l.Alleles[rng.IntN(len(l.Alleles))]
		b := l.Alleles[rng.IntN(len(l.Alleles))]
		pairs[l.Symbol] = l.sortPair(a, b)
	}
	return Genotype{pairs: pairs}
}

// Alleles returns the pair at a locus. The zero Pair is returned for a
// locus the genotype does not carry.
func (g Genotype) Alleles(symbol string) Pair {
	return g.pairs[symbol]
}

// HasLocus reports whether the genotype carries this locus at all.
func (g Genotype) HasLocus(symbol string) bool {
	_, ok := g.pairs[symbol]
	return ok
}

// Has reports whether either member of the pair at a locus equals the
// allele.
func (g Genotype) Has(symbol, allele string) bool {
	return g.pairs[symbol].Has(allele)
}

// Count returns the number of copies (0, 1 or 2) of an allele.
func (g Genotype) Count(symbol, allele string) int {
	return g.pairs[symbol].Count(allele)
}

func (g Genotype) IsHomozygous(symbol string) bool {
	p, ok := g.pairs[symbol]
	return ok && p.IsHomozygous()
}

// Equal is structural: every locus maps to the same unordered pair.
func (g Genotype) Equal(other Genotype) bool {
	if len(g.pairs) != len(other.pairs) {
		return false
	}
	for sym, p := range g.pairs {
		if other.pairs[sym] != p {
			return false
		}
	}
	return true
}

// String renders the canonical form: catalog declaration order, each
// pair dominant-first. Round-trips through Parse.
func (g Genotype) String(cat *Catalog) string {
	var sb strings.Builder
	for i, l := range cat.Loci() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.Symbol)
		sb.WriteByte(':')
		sb.WriteString(g.pairs[l.Symbol].String())
	}
	return sb.String()
}

// ToRecord converts to the structured persistence form,
// locus symbol → [alleleA, alleleB].
func (g Genotype) ToRecord() map[string][2]string {
	rec := make(map[string][2]string, len(g.pairs))
	for sym, p := range g.pairs {
		rec[sym] = [2]string{p[0], p[1]}
	}
	return rec
}

// FromRecord rebuilds a genotype from the structured form with the same
// validation as Parse.
func FromRecord(cat *Catalog, rec map[string][2]string) (Genotype, error) {
	pairs := make(map[string]Pair, len(rec))
	for sym, a := range rec {
		pairs[sym] = Pair{a[0], a[1]}
	}
	return New(cat, pairs)
}
