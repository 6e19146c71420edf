package constants

import "fmt"

// Modifier and keyword flag constants.
//
// These are the scoping bitmasks attached to parsed modifiers: they decide
// which skills/hits a stat adjustment applies to. Bit values are fixed by the
// reference data and must not be renumbered.
//
// Lua reference: ModParser.lua (ModFlag / KeywordFlag tables)

// ModFlag — бинарные флаги применимости модификатора (damage mode, source, weapon).
type ModFlag uint32

const (
	// Damage modes
	ModAttack ModFlag = 0x00000001
	ModSpell  ModFlag = 0x00000002
	ModHit    ModFlag = 0x00000004
	ModDot    ModFlag = 0x00000008
	ModCast   ModFlag = 0x00000010

	// Damage sources
	ModMelee      ModFlag = 0x00000100
	ModArea       ModFlag = 0x00000200
	ModProjectile ModFlag = 0x00000400
	ModSourceMask ModFlag = 0x00000600
	ModAilment    ModFlag = 0x00000800
	ModMeleeHit   ModFlag = 0x00001000
	ModWeapon     ModFlag = 0x00002000

	// Weapon types
	ModAxe     ModFlag = 0x00010000
	ModBow     ModFlag = 0x00020000
	ModClaw    ModFlag = 0x00040000
	ModDagger  ModFlag = 0x00080000
	ModMace    ModFlag = 0x00100000
	ModStaff   ModFlag = 0x00200000
	ModSword   ModFlag = 0x00400000
	ModWand    ModFlag = 0x00800000
	ModUnarmed ModFlag = 0x01000000
	ModFishing ModFlag = 0x02000000

	// Weapon classes
	ModWeaponMelee  ModFlag = 0x04000000
	ModWeaponRanged ModFlag = 0x08000000
	ModWeapon1H     ModFlag = 0x10000000
	ModWeapon2H     ModFlag = 0x20000000
	ModWeaponMask   ModFlag = 0x2FFF0000
)

// modWeaponTypeMask covers the individual weapon-type bits (Axe..Fishing).
const modWeaponTypeMask ModFlag = ModAxe | ModBow | ModClaw | ModDagger |
	ModMace | ModStaff | ModSword | ModWand | ModUnarmed | ModFishing

// modWeaponClassMask covers the weapon-class bits.
const modWeaponClassMask ModFlag = ModWeaponMelee | ModWeaponRanged | ModWeapon1H | ModWeapon2H

// KeywordFlag — бинарные флаги skill keywords, damage types и DoT types.
type KeywordFlag uint32

const (
	// Skill keywords
	KeywordAura      KeywordFlag = 0x00000001
	KeywordCurse     KeywordFlag = 0x00000002
	KeywordWarcry    KeywordFlag = 0x00000004
	KeywordMovement  KeywordFlag = 0x00000008
	KeywordPhysical  KeywordFlag = 0x00000010
	KeywordFire      KeywordFlag = 0x00000020
	KeywordCold      KeywordFlag = 0x00000040
	KeywordLightning KeywordFlag = 0x00000080
	KeywordChaos     KeywordFlag = 0x00000100
	KeywordVaal      KeywordFlag = 0x00000200
	KeywordBow       KeywordFlag = 0x00000400

	// Skill types
	KeywordTrap    KeywordFlag = 0x00001000
	KeywordMine    KeywordFlag = 0x00002000
	KeywordTotem   KeywordFlag = 0x00004000
	KeywordMinion  KeywordFlag = 0x00008000
	KeywordAttack  KeywordFlag = 0x00010000
	KeywordSpell   KeywordFlag = 0x00020000
	KeywordHit     KeywordFlag = 0x00040000
	KeywordAilment KeywordFlag = 0x00080000
	KeywordBrand   KeywordFlag = 0x00100000

	// Other effects
	KeywordPoison KeywordFlag = 0x00200000
	KeywordBleed  KeywordFlag = 0x00400000
	KeywordIgnite KeywordFlag = 0x00800000

	// Damage over Time types
	KeywordPhysicalDot  KeywordFlag = 0x01000000
	KeywordLightningDot KeywordFlag = 0x02000000
	KeywordColdDot      KeywordFlag = 0x04000000
	KeywordFireDot      KeywordFlag = 0x08000000
	KeywordChaosDot     KeywordFlag = 0x10000000

	// KeywordMatchAll switches matching from "any bit overlaps" to
	// "all required bits present". Reserved, never a domain fact.
	KeywordMatchAll KeywordFlag = 0x40000000
)

// keywordElementMask covers the base damage-type bits.
const keywordElementMask KeywordFlag = KeywordPhysical | KeywordFire |
	KeywordCold | KeywordLightning | KeywordChaos

// MatchKeywordFlags reports whether a modifier's keyword scope applies to the
// active skill/hit context. have is the context's keyword set, required the
// set stored in the modifier.
//
// With KeywordMatchAll set in required, every required bit must be present.
// Otherwise an empty requirement matches anything, and a non-empty requirement
// needs only one overlapping bit.
//
// Вызывается calculation engine'ом на каждую агрегацию стата — без аллокаций.
func MatchKeywordFlags(have, required KeywordFlag) bool {
	matchAll := required&KeywordMatchAll != 0
	required &^= KeywordMatchAll
	have &^= KeywordMatchAll

	if matchAll {
		return have&required == required
	}
	return required == 0 || have&required != 0
}

// VerifyWeaponFlags checks the structural invariants of a weapon-context
// ModFlag set:
//
//   - melee and ranged weapon classes are mutually exclusive
//   - one-handed and two-handed classes are mutually exclusive
//   - a weapon-type bit implies the generic ModWeapon bit
//   - a weapon-class bit implies at least one weapon-type bit
//
// Violations are reported, never coerced. Intended for static or derived
// context data, not as a per-evaluation gate.
func VerifyWeaponFlags(flags ModFlag) error {
	if flags&ModWeaponMelee != 0 && flags&ModWeaponRanged != 0 {
		return fmt.Errorf("weapon flags 0x%08X: melee and ranged classes are mutually exclusive", uint32(flags))
	}
	if flags&ModWeapon1H != 0 && flags&ModWeapon2H != 0 {
		return fmt.Errorf("weapon flags 0x%08X: one-handed and two-handed classes are mutually exclusive", uint32(flags))
	}
	if flags&modWeaponTypeMask != 0 && flags&ModWeapon == 0 {
		return fmt.Errorf("weapon flags 0x%08X: weapon-type bit set without generic weapon bit", uint32(flags))
	}
	if flags&modWeaponClassMask != 0 && flags&modWeaponTypeMask == 0 {
		return fmt.Errorf("weapon flags 0x%08X: weapon-class bit set without any weapon-type bit", uint32(flags))
	}
	return nil
}

// VerifyDamageTypeFlags checks the structural invariants of a damage-type
// KeywordFlag set: every DoT keyword bit implies its base element bit, and
// the ailment bit implies at least one element bit.
func VerifyDamageTypeFlags(flags KeywordFlag) error {
	dotPairs := [...]struct {
		dot  KeywordFlag
		base KeywordFlag
		name string
	}{
		{KeywordPhysicalDot, KeywordPhysical, "physical"},
		{KeywordLightningDot, KeywordLightning, "lightning"},
		{KeywordColdDot, KeywordCold, "cold"},
		{KeywordFireDot, KeywordFire, "fire"},
		{KeywordChaosDot, KeywordChaos, "chaos"},
	}
	for _, p := range dotPairs {
		if flags&p.dot != 0 && flags&p.base == 0 {
			return fmt.Errorf("keyword flags 0x%08X: %s DoT bit set without %s element bit", uint32(flags), p.name, p.name)
		}
	}
	if flags&KeywordAilment != 0 && flags&keywordElementMask == 0 {
		return fmt.Errorf("keyword flags 0x%08X: ailment bit set without any element bit", uint32(flags))
	}
	return nil
}

// VerifyWeaponScopeFlags checks the invariants that are well-formed for the
// scope masks shipped in the modifier-name registry. Registry entries scope to
// a weapon type without carrying the full weapon context (e.g. Bow|Hit), so
// only the mutual-exclusivity pairs and class-implies-type rules apply here.
func VerifyWeaponScopeFlags(flags ModFlag) error {
	if flags&ModWeaponMelee != 0 && flags&ModWeaponRanged != 0 {
		return fmt.Errorf("scope flags 0x%08X: melee and ranged classes are mutually exclusive", uint32(flags))
	}
	if flags&ModWeapon1H != 0 && flags&ModWeapon2H != 0 {
		return fmt.Errorf("scope flags 0x%08X: one-handed and two-handed classes are mutually exclusive", uint32(flags))
	}
	if flags&modWeaponClassMask != 0 && flags&modWeaponTypeMask == 0 {
		return fmt.Errorf("scope flags 0x%08X: weapon-class bit set without any weapon-type bit", uint32(flags))
	}
	return nil
}
