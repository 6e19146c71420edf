package mod

import "github.com/voline/pobgo/internal/data"

// ParsedKind — вариант результата классификации строки.
//
// Lua reference: ModParser.lua
type ParsedKind int8

const (
	ParsedNumeric    ParsedKind = iota // form + единственное число (или 0 для чистых FLAG)
	ParsedDamage                       // диапазон урона min..max + тип урона
	ParsedRegen                        // величина + ресурс (regen/degen семейство)
	ParsedUnresolved                   // текст не распознан или payload не разобрался
)

// Parsed is the classifier output for one input line. Exactly one variant is
// populated; Unresolved always retains the original text verbatim. The result
// is ephemeral and owned by the caller.
type Parsed struct {
	Kind ParsedKind
	Form data.ModifierForm // empty for ParsedUnresolved
	Text string            // original input line

	Value float64 // Numeric and Regen payload

	Min        float64 // Damage range, 0 <= Min <= Max
	Max        float64
	DamageType string

	Resource string // Regen resource phrase ("life", "mana", ...)

	consumed int // input bytes consumed by the matched pattern
}

func unresolved(text string) Parsed {
	return Parsed{Kind: ParsedUnresolved, Text: text}
}
