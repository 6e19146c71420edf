package data

// ModifierForm is the grammatical/semantic category a pattern-table entry
// assigns to a modifier line. It determines the shape of the numeric payload.
// Codes are the reference-data identifiers and appear verbatim in the pattern
// asset.
//
// Lua reference: ModParser.lua (formList).
type ModifierForm string

const (
	FormBase          ModifierForm = "BASE"
	FormIncrease      ModifierForm = "INC"
	FormReduce        ModifierForm = "RED"
	FormMore          ModifierForm = "MORE"
	FormLess          ModifierForm = "LESS"
	FormGain          ModifierForm = "GAIN"
	FormLose          ModifierForm = "LOSE"
	FormGrants        ModifierForm = "GRANTS"
	FormRemoves       ModifierForm = "REMOVES"
	FormChance        ModifierForm = "CHANCE"
	FormFlag          ModifierForm = "FLAG"
	FormTotalCost     ModifierForm = "TOTALCOST"
	FormBaseCost      ModifierForm = "BASECOST"
	FormPenetration   ModifierForm = "PEN"
	FormDamage        ModifierForm = "DMG"
	FormDamageAttacks ModifierForm = "DMGATTACKS"
	FormDamageSpells  ModifierForm = "DMGSPELLS"
	FormDamageBoth    ModifierForm = "DMGBOTH"
	FormRegenFlat     ModifierForm = "REGENFLAT"
	FormRegenPercent  ModifierForm = "REGENPERCENT"
	FormDegenFlat     ModifierForm = "DEGENFLAT"
	FormDegenPercent  ModifierForm = "DEGENPERCENT"
	FormDegen         ModifierForm = "DEGEN"
	FormOverride      ModifierForm = "OVERRIDE"
)

var validForms = map[ModifierForm]struct{}{
	FormBase: {}, FormIncrease: {}, FormReduce: {}, FormMore: {}, FormLess: {},
	FormGain: {}, FormLose: {}, FormGrants: {}, FormRemoves: {}, FormChance: {},
	FormFlag: {}, FormTotalCost: {}, FormBaseCost: {}, FormPenetration: {},
	FormDamage: {}, FormDamageAttacks: {}, FormDamageSpells: {}, FormDamageBoth: {},
	FormRegenFlat: {}, FormRegenPercent: {}, FormDegenFlat: {}, FormDegenPercent: {},
	FormDegen: {}, FormOverride: {},
}

// Valid reports whether f is one of the closed set of forms.
func (f ModifierForm) Valid() bool {
	_, ok := validForms[f]
	return ok
}

// HasDamageRange reports whether the form's payload is a (min, max, type)
// damage range.
func (f ModifierForm) HasDamageRange() bool {
	switch f {
	case FormDamage, FormDamageAttacks, FormDamageSpells, FormDamageBoth:
		return true
	}
	return false
}

// HasResource reports whether the form's payload is a (value, resource) pair.
// FormDegen is not in this family: its second capture (a damage type) is
// carried by the pattern but the payload is the plain numeric value.
func (f ModifierForm) HasResource() bool {
	switch f {
	case FormRegenFlat, FormRegenPercent, FormDegenFlat, FormDegenPercent:
		return true
	}
	return false
}

// IsDegen reports whether the form drains rather than restores.
func (f ModifierForm) IsDegen() bool {
	switch f {
	case FormDegenFlat, FormDegenPercent, FormDegen:
		return true
	}
	return false
}
