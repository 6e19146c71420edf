package data

import (
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

//go:embed assets/modifier_patterns.yaml
var modifierPatternsYAML []byte

// PatternTable — глобальный ordered registry всех form patterns.
// Dispatch строго first-match-wins: порядок регистрации сохраняется из asset.
// Загружается через LoadModifierPatterns() при старте; после загрузки
// не мутируется и безопасна для конкурентного чтения.
var PatternTable []*ModifierPattern

// LoadModifierPatterns строит PatternTable из embedded asset.
// Любая ошибка компиляции паттерна фатальна: частично загруженной таблице
// доверять нельзя.
func LoadModifierPatterns() error {
	table, err := buildPatternTable(modifierPatternsYAML)
	if err != nil {
		return fmt.Errorf("loading modifier patterns: %w", err)
	}
	PatternTable = table

	slog.Info("loaded modifier patterns", "count", len(PatternTable))
	return nil
}

type patternAsset struct {
	Patterns []patternEntry `yaml:"patterns"`
}

type patternEntry struct {
	Pattern string `yaml:"pattern"`
	Form    string `yaml:"form"`
}

// buildPatternTable parses, translates and compiles the pattern asset,
// preserving registration order.
func buildPatternTable(raw []byte) ([]*ModifierPattern, error) {
	var asset patternAsset
	if err := yaml.Unmarshal(raw, &asset); err != nil {
		return nil, fmt.Errorf("parsing pattern asset: %w", err)
	}
	if len(asset.Patterns) == 0 {
		return nil, fmt.Errorf("pattern asset is empty")
	}

	table := make([]*ModifierPattern, 0, len(asset.Patterns))
	for i, entry := range asset.Patterns {
		if entry.Pattern == "" {
			return nil, fmt.Errorf("pattern entry %d: empty pattern", i)
		}
		form := ModifierForm(entry.Form)
		if !form.Valid() {
			return nil, fmt.Errorf("pattern entry %d (%q): unknown form %q", i, entry.Pattern, entry.Form)
		}
		p, err := compilePattern(entry.Pattern, form)
		if err != nil {
			return nil, fmt.Errorf("pattern entry %d: %w", i, err)
		}
		table = append(table, p)
	}
	return table, nil
}
