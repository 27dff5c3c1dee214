// Lethal-combination detection, evaluated independently of the label
// pipeline. A lethal genotype is a valid value, never an error.

package genetics

import "strings"

// W20 is the documented Dominant White variant that is viable when
// homozygous; every other pairing of two W-family alleles is embryonic
// lethal.
const viableWhiteAllele = "W20"

// IsLethal reports whether the genotype is a known lethal combination,
// with a human-readable reason. Breeding simulations consult it to flag
// nonviable outcomes instead of presenting them as foals.
func IsLethal(g Genotype) (bool, string) {
	if g.HasLocus(LocusFrame) && g.Alleles(LocusFrame) == (Pair{"O", "O"}) {
		return true, "Lethal White Overo Syndrome (LWOS): homozygous Frame Overo (O/O)"
	}
	if g.HasLocus(LocusDominantWhite) {
		p := g.Alleles(LocusDominantWhite)
		if strings.HasPrefix(p[0], "W") && strings.HasPrefix(p[1], "W") {
			if p[0] == viableWhiteAllele && p[1] == viableWhiteAllele {
				return false, ""
			}
			return true, "two Dominant White alleles (" + p.String() + "): embryonic lethal"
		}
	}
	return false, ""
}
