package data

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/voline/pobgo/internal/constants"
)

//go:embed assets/modifier_names.yaml
var modifierNamesYAML []byte

// ModNameTable — глобальный flat registry: canonical phrase → resolved values.
// Категории asset'а — только организация данных; на lookup не влияют.
// Загружается через LoadModifierNames() при старте; immutable после загрузки.
var ModNameTable map[string][]ModifierValue

// GetModifierValues возвращает resolved values для canonical phrase.
// Returns nil если фраза не найдена.
func GetModifierValues(phrase string) []ModifierValue {
	if ModNameTable == nil {
		return nil
	}
	return ModNameTable[phrase]
}

// LoadModifierNames строит ModNameTable из embedded asset. Коллизии ключей
// между категориями и структурные нарушения tag/flag — фатальные ошибки
// построения registry, не runtime-условия.
func LoadModifierNames() error {
	table, categories, err := buildModNameTable(modifierNamesYAML)
	if err != nil {
		return fmt.Errorf("loading modifier names: %w", err)
	}
	ModNameTable = table

	if err := VerifyModifierNames(); err != nil {
		ModNameTable = nil
		return fmt.Errorf("verifying modifier names: %w", err)
	}

	slog.Info("loaded modifier names", "phrases", len(ModNameTable), "categories", categories)
	return nil
}

// VerifyModifierNames прогоняет структурные проверки по всему загруженному
// registry. Построение уже валидирует каждую запись; этот проход — финальная
// верификация снапшота целиком, по контракту fail-fast на старте.
func VerifyModifierNames() error {
	if ModNameTable == nil {
		return fmt.Errorf("modifier names are not loaded")
	}
	for phrase, values := range ModNameTable {
		for _, v := range values {
			if v.Name == "" {
				return fmt.Errorf("phrase %q: value without a stat name", phrase)
			}
			if err := constants.VerifyWeaponScopeFlags(v.Flags); err != nil {
				return fmt.Errorf("phrase %q (%s): %w", phrase, v.Name, err)
			}
			if v.Tag != nil && len(v.TagList) > 0 {
				return fmt.Errorf("phrase %q (%s): tag and tagList are mutually exclusive", phrase, v.Name)
			}
			tags := v.TagList
			if v.Tag != nil {
				tags = []ModifierTag{*v.Tag}
			}
			for _, tag := range tags {
				if tag.Type == "" {
					return fmt.Errorf("phrase %q (%s): tag without type", phrase, v.Name)
				}
				if tag.SkillType != 0 && tag.Type != "SkillType" {
					return fmt.Errorf("phrase %q (%s): skillType set on %q tag", phrase, v.Name, tag.Type)
				}
			}
		}
	}
	return nil
}

// buildModNameTable flattens the categorised asset into one namespace,
// walking categories in document order so collision reports are stable.
func buildModNameTable(raw []byte) (map[string][]ModifierValue, int, error) {
	var doc struct {
		Categories yaml.Node `yaml:"categories"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, 0, fmt.Errorf("parsing name asset: %w", err)
	}
	if doc.Categories.Kind != yaml.MappingNode {
		return nil, 0, fmt.Errorf("name asset: categories must be a mapping")
	}

	table := make(map[string][]ModifierValue)
	firstCategory := make(map[string]string)
	categoryCount := 0

	// MappingNode content alternates key, value.
	for i := 0; i+1 < len(doc.Categories.Content); i += 2 {
		categoryNode := doc.Categories.Content[i]
		entriesNode := doc.Categories.Content[i+1]
		category := categoryNode.Value
		categoryCount++

		if entriesNode.Kind != yaml.MappingNode {
			return nil, 0, fmt.Errorf("category %q: must be a mapping", category)
		}

		for j := 0; j+1 < len(entriesNode.Content); j += 2 {
			phrase := strings.ToLower(strings.TrimSpace(entriesNode.Content[j].Value))
			if phrase == "" {
				return nil, 0, fmt.Errorf("category %q: empty phrase key", category)
			}
			if prev, exists := firstCategory[phrase]; exists {
				return nil, 0, fmt.Errorf("phrase %q in category %q collides with category %q", phrase, category, prev)
			}

			var entry modNameEntry
			if err := entry.UnmarshalYAML(entriesNode.Content[j+1]); err != nil {
				return nil, 0, fmt.Errorf("category %q, phrase %q: %w", category, phrase, err)
			}
			if len(entry.values) == 0 {
				return nil, 0, fmt.Errorf("category %q, phrase %q: no values", category, phrase)
			}

			values := make([]ModifierValue, 0, len(entry.values))
			for _, rawVal := range entry.values {
				v, err := buildModifierValue(rawVal)
				if err != nil {
					return nil, 0, fmt.Errorf("category %q, phrase %q: %w", category, phrase, err)
				}
				values = append(values, v)
			}

			firstCategory[phrase] = category
			table[phrase] = values
		}
	}

	if len(table) == 0 {
		return nil, 0, fmt.Errorf("name asset is empty")
	}
	return table, categoryCount, nil
}
