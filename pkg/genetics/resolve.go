// Phenotype resolution: an ordered pipeline of pure rules mapping a
// genotype to its coat-color name. Each rule reads the full genotype,
// may rewrite the working label, and skips itself when its locus is
// absent from the genotype's profile.

package genetics

import "strings"

type baseColor int

const (
	baseChestnut baseColor = iota
	baseBay
	baseSealBrown
	baseBlack
)

// Phenotype is the resolved, derived view of a genotype. Label is the
// displayed coat-color name; the remaining fields expose detail the
// label alone does not carry.
type Phenotype struct {
	Label string
	// Base is the underlying base color ("Chestnut", "Bay",
	// "Seal Brown" or "Black"), unchanged by dilutions, patterns and
	// graying.
	Base string
	// PrimitiveMarkings is set when the dominant Dun allele adds a
	// dorsal stripe and leg barring.
	PrimitiveMarkings bool
	// Graying is set when the horse carries Gray and will lighten with
	// age; the label still names the birth color.
	Graying bool
}

type resolveCtx struct {
	g     Genotype
	label string
	base  baseColor

	// pigment currently expressed
	hasBlack bool
	hasRed   bool

	crDoses  int
	prlDoses int

	markings bool
	graying  bool

	// set when Dominant White overrides the remaining pattern rules
	dominantWhite bool
}

func (c *resolveCtx) has(symbol, allele string) bool {
	return c.g.Has(symbol, allele)
}

type resolveStep func(*resolveCtx)

// The pipeline order is tuned so each rule's naming table sees the
// label shapes it expects: dilution dose first, champagne and silver on
// the diluted name, dun on the silvered name (yielding forms like
// "Silver Grullo (Silver Black Dun)"), then the appended notes and the
// pattern overlays, with gray last.
var resolvePipeline = []resolveStep{
	stepBaseColor,
	stepDilution,
	stepChampagne,
	stepSilver,
	stepDun,
	stepFlaxen,
	stepSooty,
	stepDominantWhite,
	stepRoan,
	stepWhitePatterns,
	stepLeopard,
	stepGray,
}

// Resolve maps a genotype to its coat-color name. It is a pure
// function: equal genotypes always resolve to the same label.
func Resolve(cat *Catalog, g Genotype) string {
	return ResolveDetails(cat, g).Label
}

// ResolveDetails runs the full pipeline and returns the label together
// with base color, primitive-marking and graying detail.
func ResolveDetails(cat *Catalog, g Genotype) Phenotype {
	_ = cat // the pipeline reads loci off the genotype itself
	ctx := &resolveCtx{g: g}
	for _, step := range resolvePipeline {
		step(ctx)
	}
	return Phenotype{
		Label:             ctx.label,
		Base:              baseName(ctx.base),
		PrimitiveMarkings: ctx.markings,
		Graying:           ctx.graying,
	}
}

func baseName(b baseColor) string {
	switch b {
	case baseChestnut:
		return "Chestnut"
	case baseBay:
		return "Bay"
	case baseSealBrown:
		return "Seal Brown"
	default:
		return "Black"
	}
}

// Extension is epistatic to Agouti: e/e shows red pigment only and
// Agouti has no visible effect.
func stepBaseColor(c *resolveCtx) {
	if c.g.HasLocus(LocusExtension) && c.g.Alleles(LocusExtension) == (Pair{"e", "e"}) {
		c.base = baseChestnut
		c.hasRed = true
		c.label = "Chestnut"
		return
	}
	c.hasBlack = true
	switch {
	case c.has(LocusAgouti, "A"):
		c.base = baseBay
		c.hasRed = true
		c.label = "Bay"
	case c.has(LocusAgouti, "At"):
		c.base = baseSealBrown
		c.hasRed = true
		c.label = "Seal Brown"
	default:
		c.base = baseBlack
		c.label = "Black"
	}
}

// Cream/Pearl dose table, keyed by base color. The compound Cr/Prl
// heterozygote has its own row; it is not resolvable by dominance.
var (
	singleCreamNames = [4]string{"Palomino", "Buckskin", "Seal Buckskin", "Smoky Black"}
	doubleCreamNames = [4]string{"Cremello", "Perlino", "Seal Perlino", "Smoky Cream"}
	doublePearlNames = [4]string{"Apricot", "Pearl Bay", "Seal Pearl", "Smoky Pearl"}
	creamPearlNames  = [4]string{"Palomino Pearl", "Buckskin Pearl", "Seal Buckskin Pearl", "Smoky Black Pearl"}
)

func stepDilution(c *resolveCtx) {
	if !c.g.HasLocus(LocusDilution) {
		return
	}
	c.crDoses = c.g.Count(LocusDilution, "Cr")
	c.prlDoses = c.g.Count(LocusDilution, "Prl")
	switch {
	case c.crDoses == 2:
		c.label = doubleCreamNames[c.base]
	case c.prlDoses == 2:
		c.label = doublePearlNames[c.base]
	case c.crDoses == 1 && c.prlDoses == 1:
		c.label = creamPearlNames[c.base]
	case c.crDoses == 1:
		c.label = singleCreamNames[c.base]
	}
	// a single Pearl dose is a carrier only: no visible change
}

// Champagne renames the diluted label; it affects both pigments, so it
// applies on every base.
var champagneNames = map[string]string{
	"Chestnut":   "Gold Champagne",
	"Bay":        "Amber Champagne",
	"Seal Brown": "Amber Champagne",
	"Black":      "Classic Champagne",

	"Palomino":      "Gold Cream Champagne",
	"Buckskin":      "Amber Cream Champagne",
	"Seal Buckskin": "Amber Cream Champagne",
	"Smoky Black":   "Classic Cream Champagne",

	"Cremello":    "Gold Cream Champagne",
	"Perlino":     "Perlino Champagne",
	"Seal Perlino": "Perlino Champagne",
	"Smoky Cream": "Smoky Cream Champagne",

	"Apricot":     "Gold Pearl Champagne",
	"Pearl Bay":   "Amber Pearl Champagne",
	"Seal Pearl":  "Amber Pearl Champagne",
	"Smoky Pearl": "Classic Pearl Champagne",

	"Palomino Pearl":      "Ivory Pearl Champagne",
	"Buckskin Pearl":      "Amber Pearl Champagne",
	"Seal Buckskin Pearl": "Amber Pearl Champagne",
	"Smoky Black Pearl":   "Classic Pearl Champagne",
}

func stepChampagne(c *resolveCtx) {
	if !c.has(LocusChampagne, "Ch") {
		return
	}
	if name, ok := champagneNames[c.label]; ok {
		c.label = name
		return
	}
	c.label = "Champagne " + c.label
}

// Silver dilutes black pigment only: masked on a red-only base and on
// double dilutes (two Cream or two Pearl doses wash the effect out).
func stepSilver(c *resolveCtx) {
	if !c.has(LocusSilver, "Z") {
		return
	}
	if !c.hasBlack || c.crDoses == 2 || c.prlDoses == 2 {
		return
	}
	c.label = "Silver " + c.label
}

// Industry names for common dun colors; anything else just gets "Dun"
// appended.
var dunNames = map[string]string{
	"Black Dun":        "Grullo (Black Dun)",
	"Chestnut Dun":     "Red Dun (Chestnut Dun)",
	"Palomino Dun":     "Dunalino (Palomino Dun)",
	"Buckskin Dun":     "Dunskin (Buckskin Dun)",
	"Smoky Black Dun":  "Smoky Grullo (Smoky Black Dun)",
	"Silver Black Dun": "Silver Grullo (Silver Black Dun)",
	"Seal Brown Dun":   "Brown Dun (Seal Brown Dun)",
}

// The two non-dun alleles (nd1, nd2) differ only in residual marking
// detail, never in coat color, so they leave the label alone.
func stepDun(c *resolveCtx) {
	if !c.has(LocusDun, "D") {
		return
	}
	c.markings = true
	dun := c.label + " Dun"
	if name, ok := dunNames[dun]; ok {
		c.label = name
		return
	}
	c.label = dun
}

// Flaxen shows only on a chestnut base homozygous for the recessive
// allele. It appends a note instead of renaming; when the label has an
// "Industry Name (Genetic Description)" shape the note lands in both.
func stepFlaxen(c *resolveCtx) {
	if !c.g.HasLocus(LocusFlaxen) {
		return
	}
	if c.g.Alleles(LocusExtension) != (Pair{"e", "e"}) || c.g.Alleles(LocusFlaxen) != (Pair{"f", "f"}) {
		return
	}
	if name, desc, ok := strings.Cut(c.label, " ("); ok && strings.HasSuffix(desc, ")") {
		desc = strings.TrimSuffix(desc, ")")
		c.label = name + " with Flaxen (" + desc + " with Flaxen)"
		return
	}
	c.label = c.label + " with Flaxen"
}

// Sooty darkens red pigment, so it is invisible on a black-only coat
// and on double dilutes where too little pigment remains.
func stepSooty(c *resolveCtx) {
	if !c.has(LocusSooty, "STY") {
		return
	}
	if !c.hasRed || c.crDoses == 2 || c.prlDoses == 2 {
		return
	}
	c.label = "Sooty " + c.label
}

// Dominant White overrides every other pattern locus and the body
// color itself. Lethal W combinations are reported by IsLethal, not by
// the label.
func stepDominantWhite(c *resolveCtx) {
	if !c.g.HasLocus(LocusDominantWhite) {
		return
	}
	p := c.g.Alleles(LocusDominantWhite)
	w := ""
	switch {
	case strings.HasPrefix(p[0], "W"):
		w = p[0] // dominant-first normalization puts the top W here
	case strings.HasPrefix(p[1], "W"):
		w = p[1]
	default:
		return
	}
	c.dominantWhite = true
	if p[0] == p[1] {
		c.label = "Dominant White (Homozygous " + w + ")"
		return
	}
	c.label = "Dominant White (" + w + ")"
}

func stepRoan(c *resolveCtx) {
	if c.dominantWhite || !c.has(LocusRoan, "Rn") {
		return
	}
	c.label = c.label + " Roan"
}

// Tobiano combined with any overo-family pattern (Frame, Sabino,
// Splash) is the combined "Tovero"; otherwise each present pattern is
// layered onto the label.
func stepWhitePatterns(c *resolveCtx) {
	if c.dominantWhite {
		return
	}
	tobiano := c.has(LocusTobiano, "To")

	var overo []string
	if c.has(LocusFrame, "O") {
		overo = append(overo, "Frame")
	}
	if c.has(LocusSabino, "Sb1") {
		if c.g.IsHomozygous(LocusSabino) {
			overo = append(overo, "Maximum Sabino")
		} else {
			overo = append(overo, "Sabino")
		}
	}
	if c.has(LocusSplash, "Sw1") || c.has(LocusSplash, "Sw2") || c.has(LocusSplash, "Sw3") {
		overo = append(overo, "Splash White")
	}

	switch {
	case tobiano && len(overo) > 0:
		c.label = c.label + " Tovero"
	case tobiano:
		c.label = c.label + " Tobiano"
	case len(overo) > 0:
		c.label = c.label + " " + strings.Join(overo, " + ")
	}
}

// Leopard complex needs Lp; PATN1 alone has no effect.
func stepLeopard(c *resolveCtx) {
	if c.dominantWhite || !c.has(LocusLeopard, "Lp") {
		return
	}
	patn1 := c.has(LocusPATN1, "PATN1")
	switch {
	case patn1:
		c.label = c.label + " Leopard"
	case c.g.IsHomozygous(LocusLeopard):
		c.label = c.label + " Fewspot"
	default:
		c.label = c.label + " Blanket"
	}
}

// Gray is visually epistatic to everything: the horse is born the
// label's color and progressively lightens. The base genotype stays
// reported via Phenotype.Base.
func stepGray(c *resolveCtx) {
	if !c.has(LocusGray, "G") {
		return
	}
	c.graying = true
	c.label = c.label + " (Gray - will lighten with age)"
}
