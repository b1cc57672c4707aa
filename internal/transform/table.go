package transform

import "github.com/jsamuelsen/quotebook/internal/domain"

// Func transforms raw quote text into its rendered variant.
type Func func(text string) (Result, error)

// table maps each variant mode to its transformation. Keeping dispatch in
// a table lets future modes slot in without restructuring callers.
var table = map[domain.VariantMode]Func{
	domain.ModeNormal: identity,
	domain.ModeUwu:    Uwuify,
	domain.ModePigLatin: func(string) (Result, error) {
		return Result{}, domain.NewNotImplementedError("Pig Latin variant")
	},
}

// identity returns the text unchanged; normal quotes are stored verbatim.
func identity(text string) (Result, error) {
	return Result{Text: text}, nil
}

// ForMode returns the transformation registered for mode.
// The second return is false for modes with no registered transformation.
func ForMode(mode domain.VariantMode) (Func, bool) {
	fn, ok := table[mode]
	return fn, ok
}
