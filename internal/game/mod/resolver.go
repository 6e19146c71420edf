package mod

import (
	"strings"

	"github.com/voline/pobgo/internal/data"
)

// Resolve maps a canonical stat phrase to its registry records. Lookup is an
// exact match after case-fold and trim; no pattern fuzziness at this layer.
// A phrase may fan out to several records, each applied independently by the
// calculation engine. Returns nil, false when the phrase is not registered.
func Resolve(phrase string) ([]data.ModifierValue, bool) {
	values := data.GetModifierValues(strings.ToLower(strings.TrimSpace(phrase)))
	return values, values != nil
}
