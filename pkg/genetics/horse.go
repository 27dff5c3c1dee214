package genetics

import "math/rand/v2"

// Horse pairs a genotype with its resolved phenotype and viability.
// Horses are immutable: breeding always produces a new value. Identity
// (name, pedigree) belongs to the stable store, not the engine.
type Horse struct {
	Genotype     Genotype
	Phenotype    Phenotype
	Lethal       bool
	LethalReason string
}

// NewHorse resolves a validated genotype into a Horse.
func NewHorse(cat *Catalog, g Genotype) Horse {
	lethal, reason := IsLethal(g)
	return Horse{
		Genotype:     g,
		Phenotype:    ResolveDetails(cat, g),
		Lethal:       lethal,
		LethalReason: reason,
	}
}

// RandomHorse draws a uniformly random genotype and resolves it.
func RandomHorse(cat *Catalog, rng *rand.Rand) Horse {
	return NewHorse(cat, Random(cat, rng))
}

// Breed produces one foal from two parents by Mendelian sampling.
func Breed(cat *Catalog, sire, dam Horse, rng *rand.Rand) Horse {
	return NewHorse(cat, Combine(cat, sire.Genotype, dam.Genotype, rng))
}
