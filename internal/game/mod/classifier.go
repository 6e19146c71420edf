package mod

import (
	"strconv"

	"github.com/voline/pobgo/internal/data"
)

// Classify определяет форму модификатора и извлекает числовой payload.
// Диспатч по pattern table строго first-match-wins в порядке регистрации.
// Никогда не возвращает ошибку: нераспознанный текст и неразбираемый
// payload оба дают ParsedUnresolved с исходной строкой.
//
// Lua reference: ModParser.lua
func Classify(text string) Parsed {
	for _, p := range data.PatternTable {
		captures, consumed, ok := p.Match(text)
		if !ok {
			continue
		}
		form := p.Form()
		switch {
		case form.HasDamageRange():
			return classifyDamage(form, text, captures, consumed)
		case form.HasResource():
			return classifyResource(form, text, captures, consumed)
		default:
			return classifyNumeric(form, text, captures, consumed)
		}
	}
	return unresolved(text)
}

// classifyDamage handles the added-damage family: exactly three captures,
// (min, max, damage type), with 0 <= min <= max as a construction invariant.
func classifyDamage(form data.ModifierForm, text string, captures []string, consumed int) Parsed {
	if len(captures) != 3 || captures[2] == "" {
		return unresolved(text)
	}
	min, err := strconv.ParseFloat(captures[0], 64)
	if err != nil || min < 0 {
		return unresolved(text)
	}
	max, err := strconv.ParseFloat(captures[1], 64)
	if err != nil || max < min {
		return unresolved(text)
	}
	return Parsed{
		Kind:       ParsedDamage,
		Form:       form,
		Text:       text,
		Min:        min,
		Max:        max,
		DamageType: captures[2],
		consumed:   consumed,
	}
}

// classifyResource handles the regen/degen family: exactly two captures,
// (value, resource phrase).
func classifyResource(form data.ModifierForm, text string, captures []string, consumed int) Parsed {
	if len(captures) != 2 || captures[1] == "" {
		return unresolved(text)
	}
	value, err := strconv.ParseFloat(captures[0], 64)
	if err != nil {
		return unresolved(text)
	}
	return Parsed{
		Kind:     ParsedRegen,
		Form:     form,
		Text:     text,
		Value:    value,
		Resource: captures[1],
		consumed: consumed,
	}
}

// classifyNumeric handles every remaining form: at most one meaningful
// numeric capture. Чистые FLAG-паттерны без capture-групп дают value 0 —
// смысл несёт сама форма. Лишние captures (generic DEGEN) игнорируются.
func classifyNumeric(form data.ModifierForm, text string, captures []string, consumed int) Parsed {
	parsed := Parsed{
		Kind:     ParsedNumeric,
		Form:     form,
		Text:     text,
		consumed: consumed,
	}
	if len(captures) == 0 || captures[0] == "" {
		return parsed
	}
	value, err := strconv.ParseFloat(captures[0], 64)
	if err != nil {
		return unresolved(text)
	}
	parsed.Value = value
	return parsed
}
