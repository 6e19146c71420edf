package constants

// Name lookups for the flag vocabularies. The modifier-name registry asset
// references flags by these names; loaders resolve them at startup.

var modFlagByName = map[string]ModFlag{
	"Attack":       ModAttack,
	"Spell":        ModSpell,
	"Hit":          ModHit,
	"Dot":          ModDot,
	"Cast":         ModCast,
	"Melee":        ModMelee,
	"Area":         ModArea,
	"Projectile":   ModProjectile,
	"Ailment":      ModAilment,
	"MeleeHit":     ModMeleeHit,
	"Weapon":       ModWeapon,
	"Axe":          ModAxe,
	"Bow":          ModBow,
	"Claw":         ModClaw,
	"Dagger":       ModDagger,
	"Mace":         ModMace,
	"Staff":        ModStaff,
	"Sword":        ModSword,
	"Wand":         ModWand,
	"Unarmed":      ModUnarmed,
	"Fishing":      ModFishing,
	"WeaponMelee":  ModWeaponMelee,
	"WeaponRanged": ModWeaponRanged,
	"Weapon1H":     ModWeapon1H,
	"Weapon2H":     ModWeapon2H,
}

var keywordFlagByName = map[string]KeywordFlag{
	"Aura":         KeywordAura,
	"Curse":        KeywordCurse,
	"Warcry":       KeywordWarcry,
	"Movement":     KeywordMovement,
	"Physical":     KeywordPhysical,
	"Fire":         KeywordFire,
	"Cold":         KeywordCold,
	"Lightning":    KeywordLightning,
	"Chaos":        KeywordChaos,
	"Vaal":         KeywordVaal,
	"Bow":          KeywordBow,
	"Trap":         KeywordTrap,
	"Mine":         KeywordMine,
	"Totem":        KeywordTotem,
	"Minion":       KeywordMinion,
	"Attack":       KeywordAttack,
	"Spell":        KeywordSpell,
	"Hit":          KeywordHit,
	"Ailment":      KeywordAilment,
	"Brand":        KeywordBrand,
	"Poison":       KeywordPoison,
	"Bleed":        KeywordBleed,
	"Ignite":       KeywordIgnite,
	"PhysicalDot":  KeywordPhysicalDot,
	"LightningDot": KeywordLightningDot,
	"ColdDot":      KeywordColdDot,
	"FireDot":      KeywordFireDot,
	"ChaosDot":     KeywordChaosDot,
	"MatchAll":     KeywordMatchAll,
}

// ParseModFlag resolves a ModFlag by its registry name.
func ParseModFlag(name string) (ModFlag, bool) {
	f, ok := modFlagByName[name]
	return f, ok
}

// ParseKeywordFlag resolves a KeywordFlag by its registry name.
func ParseKeywordFlag(name string) (KeywordFlag, bool) {
	f, ok := keywordFlagByName[name]
	return f, ok
}
