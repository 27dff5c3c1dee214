package request

type PhenotypeView int

const (
	PhenotypeViewLabel PhenotypeView = iota
	PhenotypeViewDetails
)

func (v PhenotypeView) String() string {
	switch v {
	case PhenotypeViewLabel:
		return "label"
	case PhenotypeViewDetails:
		return "details"
	default:
		return "label"
	}
}

func NewPhenotypeView(view string) PhenotypeView {
	switch view {
	case "label":
		return PhenotypeViewLabel
	case "details":
		return PhenotypeViewDetails
	default:
		return PhenotypeViewLabel // default to the plain label
	}
}
