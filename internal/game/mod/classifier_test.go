package mod

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voline/pobgo/internal/data"
)

func TestMain(m *testing.M) {
	if err := data.LoadModifierPatterns(); err != nil {
		panic(err)
	}
	if err := data.LoadModifierNames(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestClassifyNumeric(t *testing.T) {
	tests := []struct {
		text  string
		form  data.ModifierForm
		value float64
	}{
		{"50% increased", data.FormIncrease, 50},
		{"50% increased attack speed", data.FormIncrease, 50},
		{"8% reduced mana cost", data.FormReduce, 8},
		{"+25 to strength", data.FormBase, 25},
		{"-10% to fire resistance", data.FormBase, -10},
		{"30% chance to block", data.FormChance, 30},
		{"gain 5 rage on hit", data.FormGain, 5},
		{"grants 10 life", data.FormGrants, 10},
		{"costs 25 mana", data.FormTotalCost, 25},
		{"penetrates 10% fire resistance", data.FormPenetration, 10},
		{"5 physical damage taken per second", data.FormDegen, 5},
		{"is -30% of its base value", data.FormOverride, -30},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			parsed := Classify(tt.text)
			require.Equal(t, ParsedNumeric, parsed.Kind)
			assert.Equal(t, tt.form, parsed.Form)
			assert.Equal(t, tt.value, parsed.Value)
			assert.Equal(t, tt.text, parsed.Text)
		})
	}
}

func TestClassifyFlagWithoutCapture(t *testing.T) {
	parsed := Classify("you have onslaught")
	require.Equal(t, ParsedNumeric, parsed.Kind)
	assert.Equal(t, data.FormFlag, parsed.Form)
	// Смысл несёт сама форма; числа в строке нет.
	assert.Zero(t, parsed.Value)
}

func TestClassifyDamage(t *testing.T) {
	parsed := Classify("adds 5 to 10 fire damage")
	require.Equal(t, ParsedDamage, parsed.Kind)
	assert.Equal(t, data.FormDamage, parsed.Form)
	assert.Equal(t, 5.0, parsed.Min)
	assert.Equal(t, 10.0, parsed.Max)
	assert.Equal(t, "fire", parsed.DamageType)
}

func TestClassifyDamageVariants(t *testing.T) {
	parsed := Classify("1 to 2 added attack physical damage")
	require.Equal(t, ParsedDamage, parsed.Kind)
	assert.Equal(t, data.FormDamageAttacks, parsed.Form)
	assert.Equal(t, "physical", parsed.DamageType)

	parsed = Classify("1 to 2 added spell cold damage")
	require.Equal(t, ParsedDamage, parsed.Kind)
	assert.Equal(t, data.FormDamageSpells, parsed.Form)
}

func TestClassifyDamageRejectsInvertedRange(t *testing.T) {
	parsed := Classify("adds 10 to 5 fire damage")
	assert.Equal(t, ParsedUnresolved, parsed.Kind)
	assert.Equal(t, "adds 10 to 5 fire damage", parsed.Text)
}

func TestClassifyRegen(t *testing.T) {
	parsed := Classify("2.5 life regenerated per second")
	require.Equal(t, ParsedRegen, parsed.Kind)
	assert.Equal(t, data.FormRegenFlat, parsed.Form)
	assert.Equal(t, 2.5, parsed.Value)
	assert.Equal(t, "life", parsed.Resource)
}

func TestClassifyDegenResource(t *testing.T) {
	parsed := Classify("3 mana lost per second")
	require.Equal(t, ParsedRegen, parsed.Kind)
	assert.Equal(t, data.FormDegenFlat, parsed.Form)
	assert.Equal(t, 3.0, parsed.Value)
	assert.Equal(t, "mana", parsed.Resource)
}

func TestClassifyUnrecognized(t *testing.T) {
	parsed := Classify("not a real modifier")
	assert.Equal(t, ParsedUnresolved, parsed.Kind)
	assert.Equal(t, "not a real modifier", parsed.Text)
	assert.Empty(t, parsed.Form)
}

func TestClassifyIdempotent(t *testing.T) {
	for _, text := range []string{
		"50% increased attack speed",
		"adds 5 to 10 fire damage",
		"2.5 life regenerated per second",
		"not a real modifier",
	} {
		first := Classify(text)
		second := Classify(text)
		assert.Equal(t, first, second, "classify must be pure for %q", text)
	}
}
