package genetics

// Locus is one genetic position: a named trait with a fixed allele set.
// Alleles are declared from most to least dominant; for loci without a
// strict dominance order (compound heterozygote loci such as Cream/Pearl)
// the order only fixes how pairs are serialized, and the distinct
// combinations are resolved by lookup tables in the phenotype pipeline.
type Locus struct {
	Name    string
	Symbol  string
	Alleles []string
}

// DominanceRank returns the allele's position in the declared order
// (lower = more dominant), or -1 for an allele unknown to the locus.
func (l Locus) DominanceRank(allele string) int {
	for i, a := range l.Alleles {
		if a == allele {
			return i
		}
	}
	return -1
}

func (l Locus) IsValidAllele(allele string) bool {
	return l.DominanceRank(allele) >= 0
}

// sortPair orders two alleles dominant-first so that equal unordered
// pairs always serialize identically.
func (l Locus) sortPair(a, b string) Pair {
	if l.DominanceRank(b) < l.DominanceRank(a) {
		return Pair{b, a}
	}
	return Pair{a, b}
}

// nullPair is the most-recessive homozygote, the locus's no-effect
// genotype used when pinning loci in reduced-space searches.
func (l Locus) nullPair() Pair {
	last := l.Alleles[len(l.Alleles)-1]
	return Pair{last, last}
}

// Catalog is the immutable set of loci an engine instance works with.
// It is populated once at startup and safe to share across goroutines.
type Catalog struct {
	loci  []Locus
	bySym map[string]int
}

// NewCatalog validates the locus definitions and builds a catalog.
// Declaration order fixes the canonical genotype serialization order.
func NewCatalog(loci ...Locus) (*Catalog, error) {
	c := &Catalog{
		loci:  make([]Locus, 0, len(loci)),
		bySym: make(map[string]int, len(loci)),
	}
	for i, l := range loci {
		if len(l.Alleles) < 2 {
			return nil, &ConfigError{Locus: l.Name, Msg: "a locus needs at least two alleles"}
		}
		seen := make(map[string]bool, len(l.Alleles))
		for _, a := range l.Alleles {
			if seen[a] {
				return nil, &ConfigError{Locus: l.Name, Msg: "duplicate allele id " + a}
			}
			seen[a] = true
		}
		if _, dup := c.bySym[l.Symbol]; dup {
			return nil, &ConfigError{Locus: l.Name, Msg: "duplicate locus symbol " + l.Symbol}
		}
		c.bySym[l.Symbol] = i
		c.loci = append(c.loci, l)
	}
	return c, nil
}

// Loci returns the loci in declaration order. Callers must not modify
// the returned slice.
func (c *Catalog) Loci() []Locus {
	return c.loci
}

// Locus looks a locus up by its symbol.
func (c *Catalog) Locus(symbol string) (Locus, bool) {
	i, ok := c.bySym[symbol]
	if !ok {
		return Locus{}, false
	}
	return c.loci[i], true
}

// Has reports whether the catalog carries a locus with this symbol.
// Phenotype rules use it to skip steps on partial locus profiles.
func (c *Catalog) Has(symbol string) bool {
	_, ok := c.bySym[symbol]
	return ok
}

func (c *Catalog) Alleles(symbol string) []string {
	l, ok := c.Locus(symbol)
	if !ok {
		return nil
	}
	return l.Alleles
}

func (c *Catalog) IsValidAllele(symbol, allele string) bool {
	l, ok := c.Locus(symbol)
	return ok && l.IsValidAllele(allele)
}

// DominanceRank returns the dominance rank of an allele at a locus
// (lower = more dominant), or -1 when the locus or allele is unknown.
func (c *Catalog) DominanceRank(symbol, allele string) int {
	l, ok := c.Locus(symbol)
	if !ok {
		return -1
	}
	return l.DominanceRank(allele)
}

func (c *Catalog) NumLoci() int {
	return len(c.loci)
}
