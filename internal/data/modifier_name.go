package data

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/voline/pobgo/internal/constants"
)

// ModifierTag attaches a structured applicability condition to a resolved
// modifier (skill type, boolean condition variable, or skill name).
type ModifierTag struct {
	Type          string
	Var           string
	SkillType     constants.SkillType
	SkillName     string
	SkillNameList []string
	Neg           bool
}

// ModifierValue is one resolved scoping record: the internal stat identifier
// plus optional scope metadata. A single phrase may resolve to several
// ModifierValues, each applied independently by the calculation engine.
type ModifierValue struct {
	Name         string
	Flags        constants.ModFlag
	KeywordFlags constants.KeywordFlag
	Tag          *ModifierTag
	TagList      []ModifierTag
	AddToMinion  bool
	AddToSkill   map[string]string
}

// rawTag is the asset-side shape of a tag.
type rawTag struct {
	Type          string   `yaml:"type"`
	Var           string   `yaml:"var"`
	SkillType     string   `yaml:"skillType"`
	SkillName     string   `yaml:"skillName"`
	SkillNameList []string `yaml:"skillNameList"`
	Neg           bool     `yaml:"neg"`
}

// rawModValue is the asset-side shape of a single modifier value.
type rawModValue struct {
	Name         string            `yaml:"name"`
	Flags        []string          `yaml:"flags"`
	KeywordFlags []string          `yaml:"keywordFlags"`
	Tag          *rawTag           `yaml:"tag"`
	TagList      []rawTag          `yaml:"tagList"`
	AddToMinion  bool              `yaml:"addToMinion"`
	AddToSkill   map[string]string `yaml:"addToSkill"`
}

// modNameEntry accepts the three shapes a registry entry takes in the asset:
// a bare stat name, a single value mapping, or a list of either.
type modNameEntry struct {
	values []rawModValue
}

func (e *modNameEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		e.values = []rawModValue{{Name: name}}
		return nil
	case yaml.MappingNode:
		var v rawModValue
		if err := node.Decode(&v); err != nil {
			return err
		}
		e.values = []rawModValue{v}
		return nil
	case yaml.SequenceNode:
		e.values = make([]rawModValue, 0, len(node.Content))
		for _, item := range node.Content {
			var sub modNameEntry
			if err := sub.UnmarshalYAML(item); err != nil {
				return err
			}
			e.values = append(e.values, sub.values...)
		}
		return nil
	default:
		return fmt.Errorf("unsupported node kind %d for modifier entry", node.Kind)
	}
}

// buildTag validates and converts an asset tag. skillType is only legal on
// SkillType tags, var only on Condition/MultiplierThreshold-style tags,
// skillName/skillNameList only on SkillName tags.
func buildTag(raw rawTag) (ModifierTag, error) {
	if raw.Type == "" {
		return ModifierTag{}, fmt.Errorf("tag missing type")
	}
	tag := ModifierTag{
		Type:          raw.Type,
		Var:           raw.Var,
		SkillName:     raw.SkillName,
		SkillNameList: raw.SkillNameList,
		Neg:           raw.Neg,
	}
	if raw.SkillType != "" {
		if raw.Type != "SkillType" {
			return ModifierTag{}, fmt.Errorf("tag type %q: skillType may only be set on SkillType tags", raw.Type)
		}
		st, ok := constants.ParseSkillType(raw.SkillType)
		if !ok {
			return ModifierTag{}, fmt.Errorf("tag: unknown skill type %q", raw.SkillType)
		}
		tag.SkillType = st
	} else if raw.Type == "SkillType" {
		return ModifierTag{}, fmt.Errorf("SkillType tag missing skillType")
	}
	if (raw.SkillName != "" || len(raw.SkillNameList) > 0) && raw.Type != "SkillName" {
		return ModifierTag{}, fmt.Errorf("tag type %q: skill names may only be set on SkillName tags", raw.Type)
	}
	return tag, nil
}

// buildModifierValue validates and converts an asset value: flag names must
// resolve, the scope mask must pass the structural checks, and tag/tagList
// are mutually exclusive.
func buildModifierValue(raw rawModValue) (ModifierValue, error) {
	if raw.Name == "" {
		return ModifierValue{}, fmt.Errorf("modifier value missing name")
	}
	v := ModifierValue{
		Name:        raw.Name,
		AddToMinion: raw.AddToMinion,
		AddToSkill:  raw.AddToSkill,
	}

	for _, name := range raw.Flags {
		f, ok := constants.ParseModFlag(name)
		if !ok {
			return ModifierValue{}, fmt.Errorf("%s: unknown mod flag %q", raw.Name, name)
		}
		v.Flags |= f
	}
	if err := constants.VerifyWeaponScopeFlags(v.Flags); err != nil {
		return ModifierValue{}, fmt.Errorf("%s: %w", raw.Name, err)
	}

	for _, name := range raw.KeywordFlags {
		f, ok := constants.ParseKeywordFlag(name)
		if !ok {
			return ModifierValue{}, fmt.Errorf("%s: unknown keyword flag %q", raw.Name, name)
		}
		v.KeywordFlags |= f
	}

	if raw.Tag != nil && len(raw.TagList) > 0 {
		return ModifierValue{}, fmt.Errorf("%s: tag and tagList are mutually exclusive", raw.Name)
	}
	if raw.Tag != nil {
		tag, err := buildTag(*raw.Tag)
		if err != nil {
			return ModifierValue{}, fmt.Errorf("%s: %w", raw.Name, err)
		}
		v.Tag = &tag
	}
	for _, rt := range raw.TagList {
		tag, err := buildTag(rt)
		if err != nil {
			return ModifierValue{}, fmt.Errorf("%s: %w", raw.Name, err)
		}
		v.TagList = append(v.TagList, tag)
	}
	return v, nil
}
