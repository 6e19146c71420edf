package data

import (
	"fmt"
	"regexp"
	"strings"
)

// ModifierPattern — одна запись pattern table: исходный legacy-паттерн,
// форма и скомпилированный matcher. Immutable после построения; идентичность
// включает позицию регистрации.
type ModifierPattern struct {
	source string // legacy dialect, as shipped in the asset
	form   ModifierForm
	re     *regexp.Regexp
}

// Source returns the pattern in the legacy dialect, as shipped.
func (p *ModifierPattern) Source() string { return p.source }

// Form returns the modifier form this pattern classifies to.
func (p *ModifierPattern) Form() ModifierForm { return p.form }

// Match attempts an anchored match of text against the pattern. On success it
// returns the capture-group texts (empty string for unparticipating optional
// groups), the number of input bytes the match consumed, and true.
func (p *ModifierPattern) Match(text string) (captures []string, consumed int, ok bool) {
	loc := p.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, 0, false
	}
	n := p.re.NumSubexp()
	captures = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if loc[2*i] < 0 {
			captures = append(captures, "")
			continue
		}
		captures = append(captures, text[loc[2*i]:loc[2*i+1]])
	}
	return captures, loc[1], true
}

// translatePattern rewrites a legacy-dialect pattern into the regexp dialect.
// The legacy escape set is small and closed:
//
//	%d → \d        digit class
//	%a → [a-zA-Z]  letter class
//	%s → \s        whitespace class
//	%+ %- %. %?    literal escapes
//	%% → %         literal percent
//
// Anything else after '%' is a defect in the registry data.
func translatePattern(pattern string) (string, error) {
	var b strings.Builder
	b.Grow(len(pattern) + 8)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(pattern) {
			return "", fmt.Errorf("pattern %q: dangling %% escape", pattern)
		}
		switch pattern[i] {
		case 'd':
			b.WriteString(`\d`)
		case 'a':
			b.WriteString(`[a-zA-Z]`)
		case 's':
			b.WriteString(`\s`)
		case '+', '-', '.', '?':
			b.WriteByte('\\')
			b.WriteByte(pattern[i])
		case '%':
			b.WriteByte('%')
		default:
			return "", fmt.Errorf("pattern %q: unknown escape %%%c", pattern, pattern[i])
		}
	}
	return b.String(), nil
}

// compilePattern translates a legacy pattern and compiles it anchored at the
// start of input (the reference matcher has prefix-match semantics). A compile
// failure here means the shipped pattern table is corrupt.
func compilePattern(source string, form ModifierForm) (*ModifierPattern, error) {
	translated, err := translatePattern(source)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile("^(?:" + strings.TrimPrefix(translated, "^") + ")")
	if err != nil {
		return nil, fmt.Errorf("pattern %q: compile failed: %w", source, err)
	}
	return &ModifierPattern{source: source, form: form, re: re}, nil
}
