package data

import c "github.com/udisondev/battlecalc/internal/constants"

const (
	phys = c.CategoryPhysical
	spec = c.CategorySpecial
	stat = c.CategoryStatus
)

var (
	fContact = MoveFlags{Contact: true, Protect: true}
	fProtect = MoveFlags{Protect: true}
	fPunch   = MoveFlags{Contact: true, Protect: true, Punch: true}
	fBite    = MoveFlags{Contact: true, Protect: true, Bite: true}
	fBullet  = MoveFlags{Protect: true, Bullet: true}
	fSound   = MoveFlags{Protect: true, Sound: true}
	fPulse   = MoveFlags{Protect: true, Pulse: true}
	fPowder  = MoveFlags{Protect: true, Powder: true}
	fSlice   = MoveFlags{Contact: true, Protect: true, Slicing: true}
	fDrain   = MoveFlags{Protect: true, Heal: true}
	fHeal    = MoveFlags{Heal: true}
)

func boosts(kv ...any) map[string]int {
	m := make(map[string]int, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1].(int)
	}
	return m
}

func chance(pct int, status string) *Secondary {
	return &Secondary{Chance: pct, Status: status}
}

func flinchChance(pct int) *Secondary {
	return &Secondary{Chance: pct, VolatileStatus: c.VolatileFlinch}
}

func dropChance(pct int, name string, n int) *Secondary {
	return &Secondary{Chance: pct, Boosts: map[string]int{name: n}}
}

// moveDefs: статическая таблица атак (подмножество Showdown moves.ts).
// Accuracy 0 означает "не промахивается"; пустой Target = normal.
var moveDefs = []Move{
	// --- normal ---
	{ID: "tackle", Type: c.TypeNormal, Category: phys, BasePower: 40, Accuracy: 100, PP: 35, Flags: fContact},
	{ID: "bodyslam", Type: c.TypeNormal, Category: phys, BasePower: 85, Accuracy: 100, PP: 15, Flags: fContact, Secondary: chance(30, c.StatusParalysis)},
	{ID: "return", Type: c.TypeNormal, Category: phys, BasePower: 102, Accuracy: 100, PP: 20, Flags: fContact},
	{ID: "doubleedge", Type: c.TypeNormal, Category: phys, BasePower: 120, Accuracy: 100, PP: 15, Flags: fContact, Recoil: Fraction{33, 100}},
	{ID: "extremespeed", Type: c.TypeNormal, Category: phys, BasePower: 80, Accuracy: 100, PP: 5, Priority: 2, Flags: fContact},
	{ID: "quickattack", Type: c.TypeNormal, Category: phys, BasePower: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: fContact},
	{ID: "facade", Type: c.TypeNormal, Category: phys, BasePower: 70, Accuracy: 100, PP: 20, Flags: fContact},
	{ID: "hypervoice", Type: c.TypeNormal, Category: spec, BasePower: 90, Accuracy: 100, PP: 10, Flags: fSound},
	{ID: "boomburst", Type: c.TypeNormal, Category: spec, BasePower: 140, Accuracy: 100, PP: 10, Flags: fSound},
	{ID: "hyperbeam", Type: c.TypeNormal, Category: spec, BasePower: 150, Accuracy: 90, PP: 5, Flags: fProtect, Recharge: true},
	{ID: "gigaimpact", Type: c.TypeNormal, Category: phys, BasePower: 150, Accuracy: 90, PP: 5, Flags: fContact, Recharge: true},
	{ID: "weatherball", Type: c.TypeNormal, Category: spec, BasePower: 50, Accuracy: 100, PP: 10, Flags: fBullet},
	{ID: "hiddenpower", Type: c.TypeNormal, Category: spec, BasePower: 60, Accuracy: 100, PP: 15, Flags: fProtect},
	{ID: "superfang", Type: c.TypeNormal, Category: phys, BasePower: 1, Accuracy: 90, PP: 10, Flags: fContact, FixedDamage: true},
	{ID: "sonicboom", Type: c.TypeNormal, Category: spec, BasePower: 1, Accuracy: 90, PP: 20, Flags: fProtect, FixedDamage: true},
	{ID: "endeavor", Type: c.TypeNormal, Category: phys, BasePower: 1, Accuracy: 100, PP: 5, Flags: fContact, FixedDamage: true},
	{ID: "rapidspin", Type: c.TypeNormal, Category: phys, BasePower: 50, Accuracy: 100, PP: 40, Flags: fContact, RemovesHazards: true, Self: &SelfEffect{Boosts: boosts(c.StatSpeed, 1)}},
	{ID: "growl", Type: c.TypeNormal, Category: stat, Accuracy: 100, PP: 40, Flags: fSound, Boosts: boosts(c.StatAttack, -1)},
	{ID: "screech", Type: c.TypeNormal, Category: stat, Accuracy: 85, PP: 40, Flags: fSound, Boosts: boosts(c.StatDefense, -2)},
	{ID: "bellydrum", Type: c.TypeNormal, Category: stat, PP: 10, Target: c.TargetSelf},
	{ID: "swordsdance", Type: c.TypeNormal, Category: stat, PP: 20, Target: c.TargetSelf, Boosts: boosts(c.StatAttack, 2)},
	{ID: "shellsmash", Type: c.TypeNormal, Category: stat, PP: 15, Target: c.TargetSelf, Boosts: boosts(c.StatAttack, 2, c.StatSpecialAttack, 2, c.StatSpeed, 2, c.StatDefense, -1, c.StatSpecialDefense, -1)},
	{ID: "recover", Type: c.TypeNormal, Category: stat, PP: 5, Target: c.TargetSelf, Flags: fHeal, Heal: Fraction{1, 2}},
	{ID: "softboiled", Type: c.TypeNormal, Category: stat, PP: 5, Target: c.TargetSelf, Flags: fHeal, Heal: Fraction{1, 2}},
	{ID: "slackoff", Type: c.TypeNormal, Category: stat, PP: 5, Target: c.TargetSelf, Flags: fHeal, Heal: Fraction{1, 2}},
	{ID: "protect", Type: c.TypeNormal, Category: stat, PP: 10, Priority: 4, Target: c.TargetSelf, VolatileStatus: c.VolatileProtect},
	{ID: "substitute", Type: c.TypeNormal, Category: stat, PP: 10, Target: c.TargetSelf, VolatileStatus: c.VolatileSubstitute},
	{ID: "wish", Type: c.TypeNormal, Category: stat, PP: 10, Target: c.TargetSelf, Flags: fHeal},
	{ID: "safeguard", Type: c.TypeNormal, Category: stat, PP: 25, Target: c.TargetAllySide, SideCondition: c.SideSafeguard},
	{ID: "glare", Type: c.TypeNormal, Category: stat, Accuracy: 100, PP: 30, Flags: fProtect, Status: c.StatusParalysis},
	{ID: "roar", Type: c.TypeNormal, Category: stat, PP: 20, Priority: -6, Flags: MoveFlags{Sound: true}, ForceSwitch: true},
	{ID: "whirlwind", Type: c.TypeNormal, Category: stat, PP: 20, Priority: -6, ForceSwitch: true},

	// --- fire ---
	{ID: "flamethrower", Type: c.TypeFire, Category: spec, BasePower: 90, Accuracy: 100, PP: 15, Flags: fProtect, Secondary: chance(10, c.StatusBurn)},
	{ID: "fireblast", Type: c.TypeFire, Category: spec, BasePower: 110, Accuracy: 85, PP: 5, Flags: fProtect, Secondary: chance(10, c.StatusBurn)},
	{ID: "heatwave", Type: c.TypeFire, Category: spec, BasePower: 95, Accuracy: 90, PP: 10, Flags: fProtect, Secondary: chance(10, c.StatusBurn)},
	{ID: "overheat", Type: c.TypeFire, Category: spec, BasePower: 130, Accuracy: 90, PP: 5, Flags: fProtect, Self: &SelfEffect{Boosts: boosts(c.StatSpecialAttack, -2)}},
	{ID: "flareblitz", Type: c.TypeFire, Category: phys, BasePower: 120, Accuracy: 100, PP: 15, Flags: fContact, Recoil: Fraction{33, 100}, ThawsUser: true, Secondary: chance(10, c.StatusBurn)},
	{ID: "firepunch", Type: c.TypeFire, Category: phys, BasePower: 75, Accuracy: 100, PP: 15, Flags: fPunch, Secondary: chance(10, c.StatusBurn)},
	{ID: "sacredfire", Type: c.TypeFire, Category: phys, BasePower: 100, Accuracy: 95, PP: 5, Flags: fProtect, ThawsUser: true, Secondary: chance(50, c.StatusBurn)},
	{ID: "firespin", Type: c.TypeFire, Category: spec, BasePower: 35, Accuracy: 85, PP: 15, Flags: fProtect, VolatileStatus: c.VolatilePartiallyTrapped},
	{ID: "eruption", Type: c.TypeFire, Category: spec, BasePower: 150, Accuracy: 100, PP: 5, Flags: fProtect},
	{ID: "willowisp", Type: c.TypeFire, Category: stat, Accuracy: 85, PP: 15, Flags: fProtect, Status: c.StatusBurn},
	{ID: "sunnyday", Type: c.TypeFire, Category: stat, PP: 5, Target: c.TargetAll, Weather: c.WeatherSun},

	// --- water ---
	{ID: "surf", Type: c.TypeWater, Category: spec, BasePower: 90, Accuracy: 100, PP: 15, Flags: fProtect},
	{ID: "hydropump", Type: c.TypeWater, Category: spec, BasePower: 110, Accuracy: 80, PP: 5, Flags: fProtect},
	{ID: "scald", Type: c.TypeWater, Category: spec, BasePower: 80, Accuracy: 100, PP: 15, Flags: fProtect, ThawsUser: true, Secondary: chance(30, c.StatusBurn)},
	{ID: "waterfall", Type: c.TypeWater, Category: phys, BasePower: 80, Accuracy: 100, PP: 15, Flags: fContact, Secondary: flinchChance(20)},
	{ID: "aquajet", Type: c.TypeWater, Category: phys, BasePower: 40, Accuracy: 100, PP: 20, Priority: 1, Flags: fContact},
	{ID: "liquidation", Type: c.TypeWater, Category: phys, BasePower: 85, Accuracy: 100, PP: 10, Flags: fContact, Secondary: dropChance(20, c.StatDefense, -1)},
	{ID: "whirlpool", Type: c.TypeWater, Category: spec, BasePower: 35, Accuracy: 85, PP: 15, Flags: fProtect, VolatileStatus: c.VolatilePartiallyTrapped},
	{ID: "flipturn", Type: c.TypeWater, Category: phys, BasePower: 60, Accuracy: 100, PP: 20, Flags: fContact, SelfSwitch: true},
	{ID: "waterspout", Type: c.TypeWater, Category: spec, BasePower: 150, Accuracy: 100, PP: 5, Flags: fProtect},
	{ID: "brine", Type: c.TypeWater, Category: spec, BasePower: 65, Accuracy: 100, PP: 10, Flags: fProtect},
	{ID: "dive", Type: c.TypeWater, Category: phys, BasePower: 80, Accuracy: 100, PP: 10, Flags: fContact, Charge: true, Invulnerable: true},
	{ID: "raindance", Type: c.TypeWater, Category: stat, PP: 5, Target: c.TargetAll, Weather: c.WeatherRain},

	// --- electric ---
	{ID: "thunderbolt", Type: c.TypeElectric, Category: spec, BasePower: 90, Accuracy: 100, PP: 15, Flags: fProtect, Secondary: chance(10, c.StatusParalysis)},
	{ID: "thunder", Type: c.TypeElectric, Category: spec, BasePower: 110, Accuracy: 70, PP: 10, Flags: fProtect, Secondary: chance(30, c.StatusParalysis)},
	{ID: "discharge", Type: c.TypeElectric, Category: spec, BasePower: 80, Accuracy: 100, PP: 15, Flags: fProtect, Secondary: chance(30, c.StatusParalysis)},
	{ID: "nuzzle", Type: c.TypeElectric, Category: phys, BasePower: 20, Accuracy: 100, PP: 20, Flags: fContact, Secondary: chance(100, c.StatusParalysis)},
	{ID: "wildcharge", Type: c.TypeElectric, Category: phys, BasePower: 90, Accuracy: 100, PP: 15, Flags: fContact, Recoil: Fraction{1, 4}},
	{ID: "thunderpunch", Type: c.TypeElectric, Category: phys, BasePower: 75, Accuracy: 100, PP: 15, Flags: fPunch, Secondary: chance(10, c.StatusParalysis)},
	{ID: "zapcannon", Type: c.TypeElectric, Category: spec, BasePower: 120, Accuracy: 50, PP: 5, Flags: fBullet, Secondary: chance(100, c.StatusParalysis)},
	{ID: "voltswitch", Type: c.TypeElectric, Category: spec, BasePower: 70, Accuracy: 100, PP: 20, Flags: fProtect, SelfSwitch: true},
	{ID: "thunderwave", Type: c.TypeElectric, Category: stat, Accuracy: 90, PP: 20, Flags: fProtect, Status: c.StatusParalysis},
	{ID: "electricterrain", Type: c.TypeElectric, Category: stat, PP: 10, Target: c.TargetAll, Terrain: c.FieldElectric},
	{ID: "electroball", Type: c.TypeElectric, Category: spec, BasePower: 1, Accuracy: 100, PP: 10, Flags: fBullet},

	// --- grass ---
	{ID: "gigadrain", Type: c.TypeGrass, Category: spec, BasePower: 75, Accuracy: 100, PP: 10, Flags: fDrain, Drain: Fraction{1, 2}},
	{ID: "energyball", Type: c.TypeGrass, Category: spec, BasePower: 90, Accuracy: 100, PP: 10, Flags: fBullet, Secondary: dropChance(10, c.StatSpecialDefense, -1)},
	{ID: "leafstorm", Type: c.TypeGrass, Category: spec, BasePower: 130, Accuracy: 90, PP: 5, Flags: fProtect, Self: &SelfEffect{Boosts: boosts(c.StatSpecialAttack, -2)}},
	{ID: "solarbeam", Type: c.TypeGrass, Category: spec, BasePower: 120, Accuracy: 100, PP: 10, Flags: fProtect, Charge: true},
	{ID: "woodhammer", Type: c.TypeGrass, Category: phys, BasePower: 120, Accuracy: 100, PP: 15, Flags: fContact, Recoil: Fraction{33, 100}},
	{ID: "grassknot", Type: c.TypeGrass, Category: spec, BasePower: 1, Accuracy: 100, PP: 20, Flags: fContact},
	{ID: "seedbomb", Type: c.TypeGrass, Category: phys, BasePower: 80, Accuracy: 100, PP: 15, Flags: fBullet},
	{ID: "bulletseed", Type: c.TypeGrass, Category: phys, BasePower: 25, Accuracy: 100, PP: 30, Flags: fBullet, MultiHitRange: true},
	{ID: "spore", Type: c.TypeGrass, Category: stat, Accuracy: 100, PP: 15, Flags: fPowder, Status: c.StatusSleep},
	{ID: "sleeppowder", Type: c.TypeGrass, Category: stat, Accuracy: 75, PP: 15, Flags: fPowder, Status: c.StatusSleep},
	{ID: "leechseed", Type: c.TypeGrass, Category: stat, Accuracy: 90, PP: 10, Flags: fProtect, VolatileStatus: c.VolatileLeechSeed},
	{ID: "spikyshield", Type: c.TypeGrass, Category: stat, PP: 10, Priority: 4, Target: c.TargetSelf, VolatileStatus: c.VolatileSpikyShield},
	{ID: "grassyterrain", Type: c.TypeGrass, Category: stat, PP: 10, Target: c.TargetAll, Terrain: c.FieldGrassy},

	// --- ice ---
	{ID: "icebeam", Type: c.TypeIce, Category: spec, BasePower: 90, Accuracy: 100, PP: 10, Flags: fProtect, Secondary: chance(10, c.StatusFreeze)},
	{ID: "blizzard", Type: c.TypeIce, Category: spec, BasePower: 110, Accuracy: 70, PP: 5, Flags: fProtect, Secondary: chance(10, c.StatusFreeze)},
	{ID: "iceshard", Type: c.TypeIce, Category: phys, BasePower: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: fProtect},
	{ID: "iciclecrash", Type: c.TypeIce, Category: phys, BasePower: 85, Accuracy: 90, PP: 10, Flags: fProtect, Secondary: flinchChance(30)},
	{ID: "hail", Type: c.TypeIce, Category: stat, PP: 10, Target: c.TargetAll, Weather: c.WeatherHail},
	{ID: "auroraveil", Type: c.TypeIce, Category: stat, PP: 20, Target: c.TargetAllySide, SideCondition: c.SideAuroraVeil},

	// --- fighting ---
	{ID: "closecombat", Type: c.TypeFighting, Category: phys, BasePower: 120, Accuracy: 100, PP: 5, Flags: fContact, Self: &SelfEffect{Boosts: boosts(c.StatDefense, -1, c.StatSpecialDefense, -1)}},
	{ID: "superpower", Type: c.TypeFighting, Category: phys, BasePower: 120, Accuracy: 100, PP: 5, Flags: fContact, Self: &SelfEffect{Boosts: boosts(c.StatAttack, -1, c.StatDefense, -1)}},
	{ID: "drainpunch", Type: c.TypeFighting, Category: phys, BasePower: 75, Accuracy: 100, PP: 10, Flags: MoveFlags{Contact: true, Protect: true, Punch: true, Heal: true}, Drain: Fraction{1, 2}},
	{ID: "machpunch", Type: c.TypeFighting, Category: phys, BasePower: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: fPunch},
	{ID: "focusblast", Type: c.TypeFighting, Category: spec, BasePower: 120, Accuracy: 70, PP: 5, Flags: fBullet, Secondary: dropChance(10, c.StatSpecialDefense, -1)},
	{ID: "aurasphere", Type: c.TypeFighting, Category: spec, BasePower: 80, PP: 20, Flags: MoveFlags{Protect: true, Bullet: true, Pulse: true}},
	{ID: "highjumpkick", Type: c.TypeFighting, Category: phys, BasePower: 130, Accuracy: 90, PP: 10, Flags: fContact, Crash: Fraction{1, 2}},
	{ID: "bodypress", Type: c.TypeFighting, Category: phys, BasePower: 80, Accuracy: 100, PP: 10, Flags: fContact},
	{ID: "seismictoss", Type: c.TypeFighting, Category: phys, BasePower: 1, Accuracy: 100, PP: 20, Flags: fContact, FixedDamage: true},
	{ID: "finalgambit", Type: c.TypeFighting, Category: spec, BasePower: 1, Accuracy: 100, PP: 5, Flags: fProtect, FixedDamage: true},
	{ID: "reversal", Type: c.TypeFighting, Category: phys, BasePower: 1, Accuracy: 100, PP: 15, Flags: fContact},
	{ID: "lowkick", Type: c.TypeFighting, Category: phys, BasePower: 1, Accuracy: 100, PP: 20, Flags: fContact},
	{ID: "doublekick", Type: c.TypeFighting, Category: phys, BasePower: 30, Accuracy: 100, PP: 30, Flags: fContact, MultiHit: 2},
	{ID: "circlethrow", Type: c.TypeFighting, Category: phys, BasePower: 60, Accuracy: 90, PP: 10, Priority: -6, Flags: fContact, ForceSwitch: true},
	{ID: "bulkup", Type: c.TypeFighting, Category: stat, PP: 20, Target: c.TargetSelf, Boosts: boosts(c.StatAttack, 1, c.StatDefense, 1)},
	{ID: "detect", Type: c.TypeFighting, Category: stat, PP: 5, Priority: 4, Target: c.TargetSelf, VolatileStatus: c.VolatileProtect},

	// --- poison ---
	{ID: "sludgebomb", Type: c.TypePoison, Category: spec, BasePower: 90, Accuracy: 100, PP: 10, Flags: fBullet, Secondary: chance(30, c.StatusPoison)},
	{ID: "sludgewave", Type: c.TypePoison, Category: spec, BasePower: 95, Accuracy: 100, PP: 10, Flags: fProtect, Secondary: chance(10, c.StatusPoison)},
	{ID: "gunkshot", Type: c.TypePoison, Category: phys, BasePower: 120, Accuracy: 80, PP: 5, Flags: fProtect, Secondary: chance(30, c.StatusPoison)},
	{ID: "poisonjab", Type: c.TypePoison, Category: phys, BasePower: 80, Accuracy: 100, PP: 20, Flags: fContact, Secondary: chance(30, c.StatusPoison)},
	{ID: "venoshock", Type: c.TypePoison, Category: spec, BasePower: 65, Accuracy: 100, PP: 10, Flags: fProtect},
	{ID: "toxic", Type: c.TypePoison, Category: stat, Accuracy: 90, PP: 10, Flags: fProtect, Status: c.StatusToxic},
	{ID: "toxicspikes", Type: c.TypePoison, Category: stat, PP: 20, Target: c.TargetFoeSide, SideCondition: c.SideToxicSpikes},
	{ID: "banefulbunker", Type: c.TypePoison, Category: stat, PP: 10, Priority: 4, Target: c.TargetSelf, VolatileStatus: c.VolatileBanefulBunker},

	// --- ground ---
	{ID: "earthquake", Type: c.TypeGround, Category: phys, BasePower: 100, Accuracy: 100, PP: 10, Flags: fProtect},
	{ID: "earthpower", Type: c.TypeGround, Category: spec, BasePower: 90, Accuracy: 100, PP: 10, Flags: fProtect, Secondary: dropChance(10, c.StatSpecialDefense, -1)},
	{ID: "bulldoze", Type: c.TypeGround, Category: phys, BasePower: 60, Accuracy: 100, PP: 20, Flags: fProtect, Secondary: dropChance(100, c.StatSpeed, -1)},
	{ID: "highhorsepower", Type: c.TypeGround, Category: phys, BasePower: 95, Accuracy: 95, PP: 10, Flags: fContact},
	{ID: "dig", Type: c.TypeGround, Category: phys, BasePower: 80, Accuracy: 100, PP: 10, Flags: fContact, Charge: true, Invulnerable: true},
	{ID: "spikes", Type: c.TypeGround, Category: stat, PP: 20, Target: c.TargetFoeSide, SideCondition: c.SideSpikes},

	// --- flying ---
	{ID: "bravebird", Type: c.TypeFlying, Category: phys, BasePower: 120, Accuracy: 100, PP: 15, Flags: fContact, Recoil: Fraction{33, 100}},
	{ID: "airslash", Type: c.TypeFlying, Category: spec, BasePower: 75, Accuracy: 95, PP: 15, Flags: MoveFlags{Protect: true, Slicing: true}, Secondary: flinchChance(30)},
	{ID: "hurricane", Type: c.TypeFlying, Category: spec, BasePower: 110, Accuracy: 70, PP: 10, Flags: fProtect, Secondary: &Secondary{Chance: 30, VolatileStatus: c.VolatileConfusion}},
	{ID: "fly", Type: c.TypeFlying, Category: phys, BasePower: 90, Accuracy: 95, PP: 15, Flags: fContact, Charge: true, Invulnerable: true},
	{ID: "bounce", Type: c.TypeFlying, Category: phys, BasePower: 85, Accuracy: 85, PP: 5, Flags: fContact, Charge: true, Invulnerable: true, Secondary: chance(30, c.StatusParalysis)},
	{ID: "acrobatics", Type: c.TypeFlying, Category: phys, BasePower: 55, Accuracy: 100, PP: 15, Flags: fContact},
	{ID: "roost", Type: c.TypeFlying, Category: stat, PP: 5, Target: c.TargetSelf, Flags: fHeal, Heal: Fraction{1, 2}},
	{ID: "defog", Type: c.TypeFlying, Category: stat, PP: 15, Flags: fProtect, RemovesHazards: true, Boosts: boosts(c.StatEvasion, -1)},
	{ID: "tailwind", Type: c.TypeFlying, Category: stat, PP: 15, Target: c.TargetAllySide, SideCondition: c.SideTailwind},

	// --- psychic ---
	{ID: "psychic", Type: c.TypePsychic, Category: spec, BasePower: 90, Accuracy: 100, PP: 10, Flags: fProtect, Secondary: dropChance(10, c.StatSpecialDefense, -1)},
	{ID: "psyshock", Type: c.TypePsychic, Category: spec, BasePower: 80, Accuracy: 100, PP: 10, Flags: fProtect},
	{ID: "zenheadbutt", Type: c.TypePsychic, Category: phys, BasePower: 80, Accuracy: 90, PP: 15, Flags: fContact, Secondary: flinchChance(20)},
	{ID: "storedpower", Type: c.TypePsychic, Category: spec, BasePower: 20, Accuracy: 100, PP: 10, Flags: fProtect},
	{ID: "futuresight", Type: c.TypePsychic, Category: spec, BasePower: 120, Accuracy: 100, PP: 10},
	{ID: "calmmind", Type: c.TypePsychic, Category: stat, PP: 20, Target: c.TargetSelf, Boosts: boosts(c.StatSpecialAttack, 1, c.StatSpecialDefense, 1)},
	{ID: "agility", Type: c.TypePsychic, Category: stat, PP: 30, Target: c.TargetSelf, Boosts: boosts(c.StatSpeed, 2)},
	{ID: "hypnosis", Type: c.TypePsychic, Category: stat, Accuracy: 60, PP: 20, Flags: fProtect, Status: c.StatusSleep},
	{ID: "rest", Type: c.TypePsychic, Category: stat, PP: 5, Target: c.TargetSelf, Flags: fHeal},
	{ID: "reflect", Type: c.TypePsychic, Category: stat, PP: 20, Target: c.TargetAllySide, SideCondition: c.SideReflect},
	{ID: "lightscreen", Type: c.TypePsychic, Category: stat, PP: 30, Target: c.TargetAllySide, SideCondition: c.SideLightScreen},
	{ID: "trickroom", Type: c.TypePsychic, Category: stat, PP: 5, Priority: -7, Target: c.TargetAll, TrickRoom: true},
	{ID: "teleport", Type: c.TypePsychic, Category: stat, PP: 20, Priority: -6, Target: c.TargetSelf, SelfSwitch: true},
	{ID: "psychicterrain", Type: c.TypePsychic, Category: stat, PP: 10, Target: c.TargetAll, Terrain: c.FieldPsychic},

	// --- bug ---
	{ID: "uturn", Type: c.TypeBug, Category: phys, BasePower: 70, Accuracy: 100, PP: 20, Flags: fContact, SelfSwitch: true},
	{ID: "bugbuzz", Type: c.TypeBug, Category: spec, BasePower: 90, Accuracy: 100, PP: 10, Flags: fSound, Secondary: dropChance(10, c.StatSpecialDefense, -1)},
	{ID: "xscissor", Type: c.TypeBug, Category: phys, BasePower: 80, Accuracy: 100, PP: 15, Flags: fSlice},
	{ID: "infestation", Type: c.TypeBug, Category: spec, BasePower: 20, Accuracy: 100, PP: 20, Flags: fContact, VolatileStatus: c.VolatilePartiallyTrapped},
	{ID: "quiverdance", Type: c.TypeBug, Category: stat, PP: 20, Target: c.TargetSelf, Boosts: boosts(c.StatSpecialAttack, 1, c.StatSpecialDefense, 1, c.StatSpeed, 1)},
	{ID: "stickyweb", Type: c.TypeBug, Category: stat, PP: 20, Target: c.TargetFoeSide, SideCondition: c.SideStickyWeb},

	// --- rock ---
	{ID: "stoneedge", Type: c.TypeRock, Category: phys, BasePower: 100, Accuracy: 80, PP: 5, Flags: fProtect},
	{ID: "rockslide", Type: c.TypeRock, Category: phys, BasePower: 75, Accuracy: 90, PP: 10, Flags: fProtect, Secondary: flinchChance(30)},
	{ID: "powergem", Type: c.TypeRock, Category: spec, BasePower: 80, Accuracy: 100, PP: 20, Flags: fProtect},
	{ID: "headsmash", Type: c.TypeRock, Category: phys, BasePower: 150, Accuracy: 80, PP: 5, Flags: fContact, Recoil: Fraction{1, 2}},
	{ID: "stealthrock", Type: c.TypeRock, Category: stat, PP: 20, Target: c.TargetFoeSide, SideCondition: c.SideStealthRock},
	{ID: "sandstorm", Type: c.TypeRock, Category: stat, PP: 10, Target: c.TargetAll, Weather: c.WeatherSand},

	// --- ghost ---
	{ID: "shadowball", Type: c.TypeGhost, Category: spec, BasePower: 80, Accuracy: 100, PP: 15, Flags: fBullet, Secondary: dropChance(20, c.StatSpecialDefense, -1)},
	{ID: "shadowclaw", Type: c.TypeGhost, Category: phys, BasePower: 70, Accuracy: 100, PP: 15, Flags: fContact},
	{ID: "shadowsneak", Type: c.TypeGhost, Category: phys, BasePower: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: fContact},
	{ID: "hex", Type: c.TypeGhost, Category: spec, BasePower: 65, Accuracy: 100, PP: 10, Flags: fProtect},
	{ID: "nightshade", Type: c.TypeGhost, Category: spec, BasePower: 1, Accuracy: 100, PP: 15, Flags: fProtect, FixedDamage: true},
	{ID: "phantomforce", Type: c.TypeGhost, Category: phys, BasePower: 90, Accuracy: 100, PP: 10, Flags: MoveFlags{Contact: true}, Charge: true, Invulnerable: true},
	{ID: "confuseray", Type: c.TypeGhost, Category: stat, Accuracy: 100, PP: 10, Flags: fProtect, VolatileStatus: c.VolatileConfusion},

	// --- dragon ---
	{ID: "dracometeor", Type: c.TypeDragon, Category: spec, BasePower: 130, Accuracy: 90, PP: 5, Flags: fProtect, Self: &SelfEffect{Boosts: boosts(c.StatSpecialAttack, -2)}},
	{ID: "outrage", Type: c.TypeDragon, Category: phys, BasePower: 120, Accuracy: 100, PP: 10, Flags: fContact, LockedMove: true},
	{ID: "dragonpulse", Type: c.TypeDragon, Category: spec, BasePower: 85, Accuracy: 100, PP: 10, Flags: fPulse},
	{ID: "dragonclaw", Type: c.TypeDragon, Category: phys, BasePower: 80, Accuracy: 100, PP: 15, Flags: fContact},
	{ID: "dragontail", Type: c.TypeDragon, Category: phys, BasePower: 60, Accuracy: 90, PP: 10, Priority: -6, Flags: fContact, ForceSwitch: true},
	{ID: "dragonrage", Type: c.TypeDragon, Category: spec, BasePower: 1, Accuracy: 100, PP: 10, Flags: fProtect, FixedDamage: true},
	{ID: "dragondance", Type: c.TypeDragon, Category: stat, PP: 20, Target: c.TargetSelf, Boosts: boosts(c.StatAttack, 1, c.StatSpeed, 1)},

	// --- dark ---
	{ID: "knockoff", Type: c.TypeDark, Category: phys, BasePower: 65, Accuracy: 100, PP: 20, Flags: fContact},
	{ID: "pursuit", Type: c.TypeDark, Category: phys, BasePower: 40, Accuracy: 100, PP: 20, Flags: fContact},
	{ID: "suckerpunch", Type: c.TypeDark, Category: phys, BasePower: 70, Accuracy: 100, PP: 5, Priority: 1, Flags: fContact},
	{ID: "foulplay", Type: c.TypeDark, Category: phys, BasePower: 95, Accuracy: 100, PP: 15, Flags: fContact},
	{ID: "darkpulse", Type: c.TypeDark, Category: spec, BasePower: 80, Accuracy: 100, PP: 15, Flags: fPulse, Secondary: flinchChance(20)},
	{ID: "crunch", Type: c.TypeDark, Category: phys, BasePower: 80, Accuracy: 100, PP: 15, Flags: fBite, Secondary: dropChance(20, c.StatDefense, -1)},
	{ID: "nastyplot", Type: c.TypeDark, Category: stat, PP: 20, Target: c.TargetSelf, Boosts: boosts(c.StatSpecialAttack, 2)},
	{ID: "partingshot", Type: c.TypeDark, Category: stat, Accuracy: 100, PP: 20, Flags: fSound, Boosts: boosts(c.StatAttack, -1, c.StatSpecialAttack, -1), SelfSwitch: true},

	// --- steel ---
	{ID: "flashcannon", Type: c.TypeSteel, Category: spec, BasePower: 80, Accuracy: 100, PP: 10, Flags: fProtect, Secondary: dropChance(10, c.StatSpecialDefense, -1)},
	{ID: "ironhead", Type: c.TypeSteel, Category: phys, BasePower: 80, Accuracy: 100, PP: 15, Flags: fContact, Secondary: flinchChance(30)},
	{ID: "meteormash", Type: c.TypeSteel, Category: phys, BasePower: 90, Accuracy: 90, PP: 10, Flags: fPunch, Secondary: &Secondary{Chance: 20, SelfBoosts: boosts(c.StatAttack, 1)}},
	{ID: "bulletpunch", Type: c.TypeSteel, Category: phys, BasePower: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: fPunch},
	{ID: "gyroball", Type: c.TypeSteel, Category: phys, BasePower: 1, Accuracy: 100, PP: 5, Flags: MoveFlags{Contact: true, Protect: true, Bullet: true}},
	{ID: "heavyslam", Type: c.TypeSteel, Category: phys, BasePower: 1, Accuracy: 100, PP: 10, Flags: fContact},
	{ID: "irondefense", Type: c.TypeSteel, Category: stat, PP: 15, Target: c.TargetSelf, Boosts: boosts(c.StatDefense, 2)},
	{ID: "kingsshield", Type: c.TypeSteel, Category: stat, PP: 10, Priority: 4, Target: c.TargetSelf, VolatileStatus: c.VolatileKingsShield},

	// --- fairy ---
	{ID: "moonblast", Type: c.TypeFairy, Category: spec, BasePower: 95, Accuracy: 100, PP: 15, Flags: fProtect, Secondary: dropChance(30, c.StatSpecialAttack, -1)},
	{ID: "dazzlinggleam", Type: c.TypeFairy, Category: spec, BasePower: 80, Accuracy: 100, PP: 10, Flags: fProtect},
	{ID: "playrough", Type: c.TypeFairy, Category: phys, BasePower: 90, Accuracy: 90, PP: 10, Flags: fContact, Secondary: dropChance(10, c.StatAttack, -1)},
	{ID: "mistyterrain", Type: c.TypeFairy, Category: stat, PP: 10, Target: c.TargetAll, Terrain: c.FieldMisty},
}
