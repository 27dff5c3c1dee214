package genetics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsLethal(t *testing.T) {
	cat := StandardCatalog()
	tests := []struct {
		name      string
		overrides map[string]string
		lethal    bool
	}{
		{"plain bay is viable", nil, false},
		{"frame carrier is viable", map[string]string{LocusFrame: "O/n"}, false},
		{"homozygous frame is LWOS", map[string]string{LocusFrame: "O/O"}, true},
		{"single white allele is viable", map[string]string{LocusDominantWhite: "W5/n"}, false},
		{"homozygous W5 is lethal", map[string]string{LocusDominantWhite: "W5/W5"}, true},
		{"compound W1/W22 is lethal", map[string]string{LocusDominantWhite: "W1/W22"}, true},
		{"W5/W20 is lethal", map[string]string{LocusDominantWhite: "W5/W20"}, true},
		{"homozygous W20 is viable", map[string]string{LocusDominantWhite: "W20/W20"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGenotype(t, cat, tt.overrides)
			lethal, reason := IsLethal(g)
			require.Equal(t, tt.lethal, lethal)
			if tt.lethal {
				require.NotEmpty(t, reason)
			} else {
				require.Empty(t, reason)
			}
		})
	}
}

func TestLethalReasonNamesTheCombination(t *testing.T) {
	cat := StandardCatalog()

	_, reason := IsLethal(mustGenotype(t, cat, map[string]string{LocusFrame: "O/O"}))
	require.Contains(t, reason, "LWOS")

	_, reason = IsLethal(mustGenotype(t, cat, map[string]string{LocusDominantWhite: "W5/W13"}))
	require.Contains(t, reason, "W5/W13")
}

// Lethality is never folded into the displayed label.
func TestLethalGenotypeStillResolves(t *testing.T) {
	cat := StandardCatalog()
	g := mustGenotype(t, cat, map[string]string{LocusFrame: "O/O"})
	require.Equal(t, "Bay Frame", Resolve(cat, g))
}
