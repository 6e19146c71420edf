package mod

import (
	"github.com/voline/pobgo/internal/constants"
	"github.com/voline/pobgo/internal/data"
)

// Modifier — финальная запись для stat-aggregation engine: идентичность
// стата, форма, числовой payload и scope-метаданные из registry.
type Modifier struct {
	Name string
	Form data.ModifierForm

	Value float64 // single-number forms
	Min   float64 // damage-range forms
	Max   float64

	Flags        constants.ModFlag
	KeywordFlags constants.KeywordFlag
	Tag          *data.ModifierTag
	TagList      []data.ModifierTag
	AddToMinion  bool
}

// Result is the outcome of parsing one line: either one or more modifier
// records, or an unresolved marker retaining the original text. Every line
// maps to exactly one Result; nothing is silently dropped.
type Result struct {
	Modifiers  []Modifier
	Unresolved bool
	Text       string
}

func unresolvedResult(text string) Result {
	return Result{Unresolved: true, Text: text}
}
