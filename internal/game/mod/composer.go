package mod

import (
	"strings"

	"github.com/voline/pobgo/internal/constants"
	"github.com/voline/pobgo/internal/data"
)

// damageStatNames maps the captured damage-type word to the internal stat
// identifier for added-damage records.
var damageStatNames = map[string]string{
	"physical":  "PhysicalDamage",
	"fire":      "FireDamage",
	"cold":      "ColdDamage",
	"lightning": "LightningDamage",
	"chaos":     "ChaosDamage",
}

// ParseLine разбирает одну строку модификатора в финальные записи.
// Строка сначала классифицируется по форме, затем остаток текста после
// совпавшего паттерна резолвится в registry. Любой сбой на любой стадии
// даёт единый агрегатный unresolved-результат с исходным текстом —
// частичных записей не бывает.
//
// Lua reference: ModParser.lua (parseMod)
func ParseLine(line string) Result {
	text := strings.ToLower(strings.TrimSpace(line))
	if text == "" {
		return unresolvedResult(line)
	}

	parsed := Classify(text)
	switch parsed.Kind {
	case ParsedDamage:
		return composeDamage(parsed)
	case ParsedRegen:
		return composeResource(parsed)
	case ParsedNumeric:
		return composeNumeric(parsed)
	default:
		return unresolvedResult(parsed.Text)
	}
}

// composeDamage builds the record for the added-damage family. The stat
// identity comes from the captured damage type; attack/spell variants narrow
// the scope mask.
func composeDamage(parsed Parsed) Result {
	name, ok := damageStatNames[parsed.DamageType]
	if !ok {
		return unresolvedResult(parsed.Text)
	}
	var flags constants.ModFlag
	switch parsed.Form {
	case data.FormDamageAttacks:
		flags = constants.ModAttack
	case data.FormDamageSpells:
		flags = constants.ModSpell
	}
	return Result{
		Text: parsed.Text,
		Modifiers: []Modifier{{
			Name:  name,
			Form:  parsed.Form,
			Min:   parsed.Min,
			Max:   parsed.Max,
			Flags: flags,
		}},
	}
}

// composeResource builds records for the regen/degen family: the captured
// resource phrase resolves through the registry and the direction suffixes
// the stat name ("life" + REGENFLAT -> LifeRegen).
func composeResource(parsed Parsed) Result {
	values, ok := resolveRemainder(parsed.Resource)
	if !ok {
		return unresolvedResult(parsed.Text)
	}
	suffix := "Regen"
	if parsed.Form.IsDegen() {
		suffix = "Degen"
	}
	result := Result{Text: parsed.Text}
	for _, v := range values {
		result.Modifiers = append(result.Modifiers, Modifier{
			Name:         v.Name + suffix,
			Form:         parsed.Form,
			Value:        parsed.Value,
			Flags:        v.Flags,
			KeywordFlags: v.KeywordFlags,
			Tag:          v.Tag,
			TagList:      v.TagList,
			AddToMinion:  v.AddToMinion,
		})
	}
	return result
}

// resolveRemainder резолвит остаток строки после form-префикса, а также
// resource-captures regen/degen семейства. Некоторые паттерны не поглощают
// соединительное слово ("+25" против "+25 to", "% (.+)" против "% of (.+)"),
// поэтому при промахе повторяем lookup без короткого lead-in. Ключи registry
// вида "to block" при этом остаются доступны прямым совпадением.
func resolveRemainder(phrase string) ([]data.ModifierValue, bool) {
	if values, ok := Resolve(phrase); ok {
		return values, true
	}
	for _, lead := range []string{"to ", "of "} {
		if rest, found := strings.CutPrefix(phrase, lead); found {
			if values, ok := Resolve(rest); ok {
				return values, true
			}
		}
	}
	return nil, false
}

// composeNumeric handles every single-number form: the text after the form
// prefix is the canonical stat phrase. One phrase may fan out to several
// records; каждая применяется движком независимо.
func composeNumeric(parsed Parsed) Result {
	phrase := strings.TrimSpace(parsed.Text[parsed.consumed:])
	values, ok := resolveRemainder(phrase)
	if !ok {
		return unresolvedResult(parsed.Text)
	}
	result := Result{Text: parsed.Text}
	for _, v := range values {
		result.Modifiers = append(result.Modifiers, Modifier{
			Name:         v.Name,
			Form:         parsed.Form,
			Value:        parsed.Value,
			Flags:        v.Flags,
			KeywordFlags: v.KeywordFlags,
			Tag:          v.Tag,
			TagList:      v.TagList,
			AddToMinion:  v.AddToMinion,
		})
	}
	return result
}
