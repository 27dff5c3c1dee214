package request

// Request and response.. Maybe relegate this into other later?
type BreedRequest struct {
	Sire_Genotype string `json:"sire_genotype"`
	Dam_Genotype  string `json:"dam_genotype"`
}

// Structure for querying offspring probabilities
type ProbabilityRequest struct {
	Sire_Genotype string `json:"sire_genotype"`
	Dam_Genotype  string `json:"dam_genotype"`
	Locus         string `json:"locus"` // optional: restrict to one locus
}

// Save a horse into the stable
type SaveHorseRequest struct {
	Name     string `json:"name"`
	Genotype string `json:"genotype"`
}

// Breed two stored horses and save the foal
type StableBreedRequest struct {
	Sire_ID   string `json:"sire_id"`
	Dam_ID    string `json:"dam_id"`
	Foal_Name string `json:"foal_name"`
}
