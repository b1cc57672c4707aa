package domain

import "fmt"

// VariantMode selects the transformation applied to a quote's text.
//
//   - ModeNormal: the quote is stored as-is.
//   - ModeUwu: the quote is rewritten in the "UwU" style.
//   - ModePigLatin: reserved; the Pig Latin transformation is not implemented.
type VariantMode int

const (
	ModeNormal VariantMode = iota
	ModeUwu
	ModePigLatin
)

// String returns the lowercase name of the mode.
func (m VariantMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeUwu:
		return "uwu"
	case ModePigLatin:
		return "piglatin"
	default:
		return fmt.Sprintf("VariantMode(%d)", int(m))
	}
}

// ParseVariantMode converts a mode name to its VariantMode.
func ParseVariantMode(s string) (VariantMode, error) {
	switch s {
	case "normal":
		return ModeNormal, nil
	case "uwu":
		return ModeUwu, nil
	case "piglatin":
		return ModePigLatin, nil
	default:
		return ModeNormal, fmt.Errorf("unknown variant mode %q", s)
	}
}
