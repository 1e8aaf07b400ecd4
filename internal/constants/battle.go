package constants

// Showdown battle identifiers.
//
// All values are normalised Showdown ids (lowercase, alphanumeric only),
// exactly as they appear in protocol messages and data files.

// Stat names.
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
	StatAccuracy       = "accuracy"
	StatEvasion        = "evasion"
)

// BoostableStats lists boostable stats in a fixed order.
// Iteration over boosts always follows this order so generated
// instruction lists are deterministic.
var BoostableStats = [...]string{
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
	StatAccuracy,
	StatEvasion,
}

// Boost limits.
const (
	MaxBoost = 6
	MinBoost = -6
)

// Move categories.
const (
	CategoryPhysical = "physical"
	CategorySpecial  = "special"
	CategoryStatus   = "status"
)

// Move targets.
const (
	TargetNormal   = "normal"
	TargetSelf     = "self"
	TargetFoeSide  = "foeSide"
	TargetAllySide = "allySide"
	TargetAll      = "all"
)

// Primary statuses. Empty string means healthy.
const (
	StatusNone      = ""
	StatusBurn      = "brn"
	StatusFreeze    = "frz"
	StatusParalysis = "par"
	StatusPoison    = "psn"
	StatusToxic     = "tox"
	StatusSleep     = "slp"
)

// Volatile statuses.
const (
	VolatileFlinch           = "flinch"
	VolatileConfusion        = "confusion"
	VolatileSubstitute       = "substitute"
	VolatileLeechSeed        = "leechseed"
	VolatileProtect          = "protect"
	VolatileBanefulBunker    = "banefulbunker"
	VolatileSpikyShield      = "spikyshield"
	VolatileKingsShield      = "kingsshield"
	VolatileObstruct         = "obstruct"
	VolatileMustRecharge     = "mustrecharge"
	VolatileLockedMove       = "lockedmove"
	VolatilePartiallyTrapped = "partiallytrapped"
	VolatileFlashFire        = "flashfire"
	VolatileRoost            = "roost"
)

// ProtectVolatiles are the volatiles created by protect-family moves.
var ProtectVolatiles = [...]string{
	VolatileProtect,
	VolatileBanefulBunker,
	VolatileSpikyShield,
	VolatileKingsShield,
	VolatileObstruct,
}

// Semi-invulnerable charge states. The volatile id equals the move id.
const (
	VolatileFly          = "fly"
	VolatileBounce       = "bounce"
	VolatileDig          = "dig"
	VolatileDive         = "dive"
	VolatilePhantomForce = "phantomforce"
	VolatileShadowForce  = "shadowforce"
)

// SemiInvulnerableVolatiles are checked in this order by the damage step.
var SemiInvulnerableVolatiles = [...]string{
	VolatileFly,
	VolatileBounce,
	VolatileDig,
	VolatileDive,
	VolatilePhantomForce,
	VolatileShadowForce,
}

// Weather.
const (
	WeatherNone      = ""
	WeatherSun       = "sunnyday"
	WeatherRain      = "raindance"
	WeatherSand      = "sandstorm"
	WeatherHail      = "hail"
	WeatherSnow      = "snow"
	WeatherHarshSun  = "desolateland"
	WeatherHeavyRain = "primordialsea"
)

// Terrain.
const (
	FieldNone     = ""
	FieldElectric = "electricterrain"
	FieldGrassy   = "grassyterrain"
	FieldMisty    = "mistyterrain"
	FieldPsychic  = "psychicterrain"
)

// Side conditions.
const (
	SideStealthRock = "stealthrock"
	SideSpikes      = "spikes"
	SideToxicSpikes = "toxicspikes"
	SideStickyWeb   = "stickyweb"
	SideReflect     = "reflect"
	SideLightScreen = "lightscreen"
	SideAuroraVeil  = "auroraveil"
	SideTailwind    = "tailwind"
	SideSafeguard   = "safeguard"
	SideProtect     = "protect"
	SideToxicCount  = "toxiccount"
)

// HazardConditions are cleared by rapid spin and defog.
var HazardConditions = [...]string{
	SideStealthRock,
	SideSpikes,
	SideToxicSpikes,
	SideStickyWeb,
}

// MaxLayers caps stackable hazards.
var MaxLayers = map[string]int{
	SideStealthRock: 1,
	SideSpikes:      3,
	SideToxicSpikes: 2,
	SideStickyWeb:   1,
}

// Types.
const (
	TypeNormal   = "normal"
	TypeFire     = "fire"
	TypeWater    = "water"
	TypeElectric = "electric"
	TypeGrass    = "grass"
	TypeIce      = "ice"
	TypeFighting = "fighting"
	TypePoison   = "poison"
	TypeGround   = "ground"
	TypeFlying   = "flying"
	TypePsychic  = "psychic"
	TypeBug      = "bug"
	TypeRock     = "rock"
	TypeGhost    = "ghost"
	TypeDragon   = "dragon"
	TypeDark     = "dark"
	TypeSteel    = "steel"
	TypeFairy    = "fairy"
	TypeTypeless = "typeless"
)

// Pseudo actions.
const (
	ActionSwitchPrefix = "switch "
	ActionRecharge     = "recharge"
	ActionNone         = "none"
)
