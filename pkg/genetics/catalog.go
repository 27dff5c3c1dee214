// Locus definitions for the standard and minimal coat-color profiles.

package genetics

// Locus symbols, as used in genotype strings.
const (
	LocusExtension     = "E"
	LocusAgouti        = "A"
	LocusDilution      = "Dil"
	LocusDun           = "D"
	LocusSilver        = "Z"
	LocusChampagne     = "Ch"
	LocusFlaxen        = "F"
	LocusSooty         = "STY"
	LocusGray          = "G"
	LocusRoan          = "Rn"
	LocusTobiano       = "To"
	LocusFrame         = "O"
	LocusSabino        = "Sb"
	LocusDominantWhite = "W"
	LocusSplash        = "Spl"
	LocusLeopard       = "Lp"
	LocusPATN1         = "PATN1"
)

// colorLoci are the nine loci that determine coat color proper; the
// remaining loci of the standard profile add white patterns on top.
var colorLoci = []Locus{
	{Name: "Extension", Symbol: LocusExtension, Alleles: []string{"E", "e"}},
	{Name: "Agouti", Symbol: LocusAgouti, Alleles: []string{"A", "At", "a"}},
	// Cream and Pearl sit on the same locus; Cr/Prl is a compound
	// heterozygote with its own effect, not resolved by dominance.
	{Name: "Dilution", Symbol: LocusDilution, Alleles: []string{"N", "Cr", "Prl"}},
	// nd1 and nd2 differ only in primitive-marking detail, not color.
	{Name: "Dun", Symbol: LocusDun, Alleles: []string{"D", "nd1", "nd2"}},
	{Name: "Silver", Symbol: LocusSilver, Alleles: []string{"Z", "n"}},
	{Name: "Champagne", Symbol: LocusChampagne, Alleles: []string{"Ch", "n"}},
	{Name: "Flaxen", Symbol: LocusFlaxen, Alleles: []string{"F", "f"}},
	{Name: "Sooty", Symbol: LocusSooty, Alleles: []string{"STY", "sty"}},
	{Name: "Gray", Symbol: LocusGray, Alleles: []string{"G", "g"}},
}

var patternLoci = []Locus{
	{Name: "Roan", Symbol: LocusRoan, Alleles: []string{"Rn", "n"}},
	{Name: "Tobiano", Symbol: LocusTobiano, Alleles: []string{"To", "n"}},
	{Name: "Frame Overo", Symbol: LocusFrame, Alleles: []string{"O", "n"}},
	{Name: "Sabino", Symbol: LocusSabino, Alleles: []string{"Sb1", "n"}},
	{Name: "Dominant White", Symbol: LocusDominantWhite, Alleles: []string{"W1", "W5", "W10", "W13", "W20", "W22", "n"}},
	{Name: "Splash White", Symbol: LocusSplash, Alleles: []string{"Sw1", "Sw2", "Sw3", "n"}},
	{Name: "Leopard Complex", Symbol: LocusLeopard, Alleles: []string{"Lp", "lp"}},
	{Name: "Pattern 1", Symbol: LocusPATN1, Alleles: []string{"PATN1", "n"}},
}

// StandardCatalog builds the full 17-locus profile: base color, the
// dilution and modifier loci, and the white-pattern loci.
func StandardCatalog() *Catalog {
	return mustCatalog(append(append([]Locus{}, colorLoci...), patternLoci...))
}

// MinimalCatalog builds the nine-locus color-only profile. The
// phenotype pipeline skips pattern rules for genotypes on this profile.
func MinimalCatalog() *Catalog {
	return mustCatalog(append([]Locus{}, colorLoci...))
}

// The built-in definitions are static, so a construction failure is a
// programming error.
func mustCatalog(loci []Locus) *Catalog {
	c, err := NewCatalog(loci...)
	if err != nil {
		panic(err)
	}
	return c
}
