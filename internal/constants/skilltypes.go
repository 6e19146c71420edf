package constants

// SkillType enumerates the skill property types that modifier tags can scope
// to (e.g. "mana cost of attacks" is tagged SkillTypeAttack). Values are
// positional and fixed by the reference data; new types append at the end.
//
// Lua reference: GameData SkillType export.
type SkillType int16

const (
	SkillTypeAttack SkillType = iota + 1
	SkillTypeSpell
	SkillTypeProjectile
	SkillTypeDualWieldOnly
	SkillTypeBuff
	SkillTypeRemoved6
	SkillTypeMainHandOnly
	SkillTypeRemoved8
	SkillTypeMinion
	SkillTypeDamage
	SkillTypeArea
	SkillTypeDuration
	SkillTypeRequiresShield
	SkillTypeProjectileSpeed
	SkillTypeHasReservation
	SkillTypeReservationBecomesCost
	SkillTypeTrappable
	SkillTypeTotemable
	SkillTypeMineable
	SkillTypeElementalStatus
	SkillTypeMinionsCanExplode
	SkillTypeRemoved22
	SkillTypeChains
	SkillTypeMelee
	SkillTypeMeleeSingleTarget
	SkillTypeMulticastable
	SkillTypeTotemCastsAlone
	SkillTypeMultistrikeable
	SkillTypeCausesBurning
	SkillTypeSummonsTotem
	SkillTypeTotemCastsWhenNotDetached
	SkillTypeFire
	SkillTypeCold
	SkillTypeLightning
	SkillTypeTriggerable
	SkillTypeTrapped
	SkillTypeMovement
	SkillTypeDamageOverTime
	SkillTypeRemoteMined
	SkillTypeTriggered
	SkillTypeVaal
	SkillTypeAura
	SkillTypeCanTargetUnusableCorpse
	SkillTypeRangedAttack
	SkillTypeChaos
	SkillTypeFixedSpeedProjectile
	SkillTypeThresholdJewelArea
	SkillTypeThresholdJewelProjectile
	SkillTypeThresholdJewelDuration
	SkillTypeThresholdJewelRangedAttack
	SkillTypeChannel
	SkillTypeDegenOnlySpellDamage
	SkillTypeInbuiltTrigger
	SkillTypeGolem
	SkillTypeHerald
	SkillTypeAuraAffectsEnemies
	SkillTypeNoRuthless
	SkillTypeThresholdJewelSpellDamage
	SkillTypeCascadable
	SkillTypeProjectilesFromUser
	SkillTypeMirageArcherCanUse
	SkillTypeProjectileSpiral
	SkillTypeSingleMainProjectile
	SkillTypeMinionsPersistWhenSkillRemoved
	SkillTypeProjectileNumber
	SkillTypeWarcry
	SkillTypeInstant
	SkillTypeBrand
	SkillTypeDestroysCorpse
	SkillTypeNonHitChill
	SkillTypeChillingArea
	SkillTypeAppliesCurse
	SkillTypeCanRapidFire
	SkillTypeAuraDuration
	SkillTypeAreaSpell
	SkillTypeOr
	SkillTypeAnd
	SkillTypeNot
	SkillTypePhysical
	SkillTypeAppliesMaim
	SkillTypeCreatesMinion
	SkillTypeGuard
	SkillTypeTravel
	SkillTypeBlink
	SkillTypeCanHaveBlessing
	SkillTypeProjectilesNotFromUser
	SkillTypeAttackInPlaceIsDefault
	SkillTypeNova
	SkillTypeInstantNoRepeatWhenHeld
	SkillTypeInstantShiftAttackForLeftMouse
	SkillTypeAuraNotOnCaster
	SkillTypeBanner
	SkillTypeRain
	SkillTypeCooldown
	SkillTypeThresholdJewelChaining
	SkillTypeSlam
	SkillTypeStance
	SkillTypeNonRepeatable
	SkillTypeOtherThingUsesSkill
	SkillTypeSteel
	SkillTypeHex
	SkillTypeMark
	SkillTypeAegis
	SkillTypeOrb
	SkillTypeKillNoDamageModifiers
	SkillTypeRandomElement
	SkillTypeLateConsumeCooldown
	SkillTypeArcane
	SkillTypeFixedCastTime
	SkillTypeRequiresOffHandNotWeapon
	SkillTypeLink
	SkillTypeBlessing
	SkillTypeZeroReservation
	SkillTypeDynamicCooldown
	SkillTypeMicrotransaction
	SkillTypeOwnerCannotUse
	SkillTypeProjectilesNotFired
	SkillTypeTotemsAreBallistae
	SkillTypeSkillGrantedBySupport
	SkillTypePreventHexTransfer
	SkillTypeMinionsAreUndamageable
	SkillTypeInnateTrauma
	SkillTypeDualWieldRequiresDifferentTypes
	SkillTypeNoVolley
	SkillTypeRetaliation
	SkillTypeNeverExertable
)

// skillTypeNames lists reference-data identifiers in declaration order.
// Index i names SkillType(i+1).
var skillTypeNames = [...]string{
	"ATTACK",
	"SPELL",
	"PROJECTILE",
	"DUAL_WIELD_ONLY",
	"BUFF",
	"REMOVED6",
	"MAIN_HAND_ONLY",
	"REMOVED8",
	"MINION",
	"DAMAGE",
	"AREA",
	"DURATION",
	"REQUIRES_SHIELD",
	"PROJECTILE_SPEED",
	"HAS_RESERVATION",
	"RESERVATION_BECOMES_COST",
	"TRAPPABLE",
	"TOTEMABLE",
	"MINEABLE",
	"ELEMENTAL_STATUS",
	"MINIONS_CAN_EXPLODE",
	"REMOVED22",
	"CHAINS",
	"MELEE",
	"MELEE_SINGLE_TARGET",
	"MULTICASTABLE",
	"TOTEM_CASTS_ALONE",
	"MULTISTRIKEABLE",
	"CAUSES_BURNING",
	"SUMMONS_TOTEM",
	"TOTEM_CASTS_WHEN_NOT_DETACHED",
	"FIRE",
	"COLD",
	"LIGHTNING",
	"TRIGGERABLE",
	"TRAPPED",
	"MOVEMENT",
	"DAMAGE_OVER_TIME",
	"REMOTE_MINED",
	"TRIGGERED",
	"VAAL",
	"AURA",
	"CAN_TARGET_UNUSABLE_CORPSE",
	"RANGED_ATTACK",
	"CHAOS",
	"FIXED_SPEED_PROJECTILE",
	"THRESHOLD_JEWEL_AREA",
	"THRESHOLD_JEWEL_PROJECTILE",
	"THRESHOLD_JEWEL_DURATION",
	"THRESHOLD_JEWEL_RANGED_ATTACK",
	"CHANNEL",
	"DEGEN_ONLY_SPELL_DAMAGE",
	"INBUILT_TRIGGER",
	"GOLEM",
	"HERALD",
	"AURA_AFFECTS_ENEMIES",
	"NO_RUTHLESS",
	"THRESHOLD_JEWEL_SPELL_DAMAGE",
	"CASCADABLE",
	"PROJECTILES_FROM_USER",
	"MIRAGE_ARCHER_CAN_USE",
	"PROJECTILE_SPIRAL",
	"SINGLE_MAIN_PROJECTILE",
	"MINIONS_PERSIST_WHEN_SKILL_REMOVED",
	"PROJECTILE_NUMBER",
	"WARCRY",
	"INSTANT",
	"BRAND",
	"DESTROYS_CORPSE",
	"NON_HIT_CHILL",
	"CHILLING_AREA",
	"APPLIES_CURSE",
	"CAN_RAPID_FIRE",
	"AURA_DURATION",
	"AREA_SPELL",
	"OR",
	"AND",
	"NOT",
	"PHYSICAL",
	"APPLIES_MAIM",
	"CREATES_MINION",
	"GUARD",
	"TRAVEL",
	"BLINK",
	"CAN_HAVE_BLESSING",
	"PROJECTILES_NOT_FROM_USER",
	"ATTACK_IN_PLACE_IS_DEFAULT",
	"NOVA",
	"INSTANT_NO_REPEAT_WHEN_HELD",
	"INSTANT_SHIFT_ATTACK_FOR_LEFT_MOUSE",
	"AURA_NOT_ON_CASTER",
	"BANNER",
	"RAIN",
	"COOLDOWN",
	"THRESHOLD_JEWEL_CHAINING",
	"SLAM",
	"STANCE",
	"NON_REPEATABLE",
	"OTHER_THING_USES_SKILL",
	"STEEL",
	"HEX",
	"MARK",
	"AEGIS",
	"ORB",
	"KILL_NO_DAMAGE_MODIFIERS",
	"RANDOM_ELEMENT",
	"LATE_CONSUME_COOLDOWN",
	"ARCANE",
	"FIXED_CAST_TIME",
	"REQUIRES_OFF_HAND_NOT_WEAPON",
	"LINK",
	"BLESSING",
	"ZERO_RESERVATION",
	"DYNAMIC_COOLDOWN",
	"MICROTRANSACTION",
	"OWNER_CANNOT_USE",
	"PROJECTILES_NOT_FIRED",
	"TOTEMS_ARE_BALLISTAE",
	"SKILL_GRANTED_BY_SUPPORT",
	"PREVENT_HEX_TRANSFER",
	"MINIONS_ARE_UNDAMAGEABLE",
	"INNATE_TRAUMA",
	"DUAL_WIELD_REQUIRES_DIFFERENT_TYPES",
	"NO_VOLLEY",
	"RETALIATION",
	"NEVER_EXERTABLE",
}

var skillTypeByName map[string]SkillType

func init() {
	skillTypeByName = make(map[string]SkillType, len(skillTypeNames))
	for i, name := range skillTypeNames {
		skillTypeByName[name] = SkillType(i + 1)
	}
}

// String returns the reference-data identifier of the skill type.
func (s SkillType) String() string {
	if s < 1 || int(s) > len(skillTypeNames) {
		return "UNKNOWN"
	}
	return skillTypeNames[s-1]
}

// ParseSkillType resolves a SkillType by its reference-data identifier.
func ParseSkillType(name string) (SkillType, bool) {
	s, ok := skillTypeByName[name]
	return s, ok
}
