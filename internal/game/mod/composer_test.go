package mod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voline/pobgo/internal/constants"
	"github.com/voline/pobgo/internal/data"
)

func TestResolve(t *testing.T) {
	values, ok := Resolve("all resistances")
	require.True(t, ok)
	require.Len(t, values, 2)
	assert.Equal(t, "ElementalResist", values[0].Name)
	assert.Equal(t, "ChaosResist", values[1].Name)

	_, ok = Resolve("no such phrase")
	assert.False(t, ok)
}

func TestResolveNormalizes(t *testing.T) {
	values, ok := Resolve("  All Resistances ")
	require.True(t, ok)
	assert.Len(t, values, 2)
}

func TestParseLineIncrease(t *testing.T) {
	result := ParseLine("50% increased attack speed")
	require.False(t, result.Unresolved)
	require.Len(t, result.Modifiers, 1)
	m := result.Modifiers[0]
	assert.Equal(t, "Speed", m.Name)
	assert.Equal(t, data.FormIncrease, m.Form)
	assert.Equal(t, 50.0, m.Value)
	assert.Equal(t, constants.ModAttack, m.Flags)
}

func TestParseLineBaseWithConnective(t *testing.T) {
	result := ParseLine("+25 to strength")
	require.False(t, result.Unresolved)
	require.Len(t, result.Modifiers, 1)
	assert.Equal(t, "Str", result.Modifiers[0].Name)
	assert.Equal(t, data.FormBase, result.Modifiers[0].Form)
	assert.Equal(t, 25.0, result.Modifiers[0].Value)
}

func TestParseLineFansOut(t *testing.T) {
	result := ParseLine("50% increased recovery rate of life, mana and energy shield")
	require.False(t, result.Unresolved)
	require.Len(t, result.Modifiers, 3)
	names := []string{
		result.Modifiers[0].Name,
		result.Modifiers[1].Name,
		result.Modifiers[2].Name,
	}
	assert.Equal(t, []string{"LifeRecoveryRate", "ManaRecoveryRate", "EnergyShieldRecoveryRate"}, names)
	for _, m := range result.Modifiers {
		assert.Equal(t, 50.0, m.Value)
		assert.Equal(t, data.FormIncrease, m.Form)
	}
}

func TestParseLineChance(t *testing.T) {
	result := ParseLine("30% chance to block")
	require.False(t, result.Unresolved)
	require.Len(t, result.Modifiers, 1)
	assert.Equal(t, "BlockChance", result.Modifiers[0].Name)
	assert.Equal(t, data.FormChance, result.Modifiers[0].Form)
	assert.Equal(t, 30.0, result.Modifiers[0].Value)
}

func TestParseLineConditionFlag(t *testing.T) {
	result := ParseLine("you have onslaught")
	require.False(t, result.Unresolved)
	require.Len(t, result.Modifiers, 1)
	m := result.Modifiers[0]
	assert.Equal(t, "Condition:Onslaught", m.Name)
	assert.Equal(t, data.FormFlag, m.Form)
	assert.Zero(t, m.Value)
}

func TestParseLineTaggedPhrase(t *testing.T) {
	result := ParseLine("8% reduced mana cost of attacks")
	require.False(t, result.Unresolved)
	require.Len(t, result.Modifiers, 1)
	m := result.Modifiers[0]
	assert.Equal(t, "ManaCost", m.Name)
	require.NotNil(t, m.Tag)
	assert.Equal(t, "SkillType", m.Tag.Type)
	assert.Equal(t, constants.SkillTypeAttack, m.Tag.SkillType)
}

func TestParseLineDamage(t *testing.T) {
	result := ParseLine("adds 5 to 10 fire damage")
	require.False(t, result.Unresolved)
	require.Len(t, result.Modifiers, 1)
	m := result.Modifiers[0]
	assert.Equal(t, "FireDamage", m.Name)
	assert.Equal(t, data.FormDamage, m.Form)
	assert.Equal(t, 5.0, m.Min)
	assert.Equal(t, 10.0, m.Max)
	assert.Zero(t, m.Flags)
}

func TestParseLineDamageScopes(t *testing.T) {
	result := ParseLine("1 to 2 added attack physical damage")
	require.Len(t, result.Modifiers, 1)
	assert.Equal(t, "PhysicalDamage", result.Modifiers[0].Name)
	assert.Equal(t, constants.ModAttack, result.Modifiers[0].Flags)

	result = ParseLine("1 to 2 added spell cold damage")
	require.Len(t, result.Modifiers, 1)
	assert.Equal(t, "ColdDamage", result.Modifiers[0].Name)
	assert.Equal(t, constants.ModSpell, result.Modifiers[0].Flags)
}

func TestParseLineUnknownDamageType(t *testing.T) {
	result := ParseLine("adds 5 to 10 shadow damage")
	assert.True(t, result.Unresolved)
	assert.Equal(t, "adds 5 to 10 shadow damage", result.Text)
	assert.Empty(t, result.Modifiers)
}

func TestParseLineRegen(t *testing.T) {
	result := ParseLine("2.5 life regenerated per second")
	require.False(t, result.Unresolved)
	require.Len(t, result.Modifiers, 1)
	m := result.Modifiers[0]
	assert.Equal(t, "LifeRegen", m.Name)
	assert.Equal(t, data.FormRegenFlat, m.Form)
	assert.Equal(t, 2.5, m.Value)
}

// Ранний regen-паттерн выигрывает first-match и оставляет "of" в
// resource-capture; композиция обязана резолвить такой ресурс так же, как
// остаток с соединительным словом.
func TestParseLineRegenWithConnective(t *testing.T) {
	result := ParseLine("regenerate 1.5% of mana per second")
	require.False(t, result.Unresolved)
	require.Len(t, result.Modifiers, 1)
	m := result.Modifiers[0]
	assert.Equal(t, "ManaRegen", m.Name)
	assert.Equal(t, data.FormRegenPercent, m.Form)
	assert.Equal(t, 1.5, m.Value)
}

func TestParseLineDegen(t *testing.T) {
	result := ParseLine("3 mana lost per second")
	require.False(t, result.Unresolved)
	require.Len(t, result.Modifiers, 1)
	assert.Equal(t, "ManaDegen", result.Modifiers[0].Name)
	assert.Equal(t, data.FormDegenFlat, result.Modifiers[0].Form)
}

func TestParseLineUnresolved(t *testing.T) {
	tests := []string{
		"not a real modifier",
		"50% increased flurble",
		"",
	}
	for _, text := range tests {
		result := ParseLine(text)
		assert.True(t, result.Unresolved, "line %q must be unresolved", text)
		assert.Empty(t, result.Modifiers)
	}
}

// Вход нормализуется: регистр и крайние пробелы не влияют на результат.
func TestParseLineNormalizesInput(t *testing.T) {
	upper := ParseLine("  50% Increased Attack Speed ")
	lower := ParseLine("50% increased attack speed")
	assert.Equal(t, lower, upper)
}
