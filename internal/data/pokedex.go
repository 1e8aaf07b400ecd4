package data

import (
	"errors"
	"fmt"
	"log/slog"

	c "github.com/udisondev/battlecalc/internal/constants"
)

// ErrPokemonNotFound is returned by GetPokedex for unknown species.
var ErrPokemonNotFound = errors.New("pokemon not found")

// BaseStats are species base stats.
type BaseStats struct {
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

// Species: шаблон вида из pokedex.
type Species struct {
	ID     string
	Name   string
	Types  [2]string
	Base   BaseStats
	Weight float64 // kg
}

// speciesDef: компактная литеральная запись; Types[1] пустой для моно-типов.
type speciesDef struct {
	name   string
	types  [2]string
	base   [6]int
	weight float64
}

var speciesDefs = []speciesDef{
	{"Pikachu", [2]string{c.TypeElectric}, [6]int{35, 55, 40, 50, 50, 90}, 6.0},
	{"Raichu", [2]string{c.TypeElectric}, [6]int{60, 90, 55, 90, 80, 110}, 30.0},
	{"Charizard", [2]string{c.TypeFire, c.TypeFlying}, [6]int{78, 84, 78, 109, 85, 100}, 90.5},
	{"Blastoise", [2]string{c.TypeWater}, [6]int{79, 83, 100, 85, 105, 78}, 85.5},
	{"Venusaur", [2]string{c.TypeGrass, c.TypePoison}, [6]int{80, 82, 83, 100, 100, 80}, 100.0},
	{"Gengar", [2]string{c.TypeGhost, c.TypePoison}, [6]int{60, 65, 60, 130, 75, 110}, 40.5},
	{"Snorlax", [2]string{c.TypeNormal}, [6]int{160, 110, 65, 65, 110, 30}, 460.0},
	{"Dragonite", [2]string{c.TypeDragon, c.TypeFlying}, [6]int{91, 134, 95, 100, 100, 80}, 210.0},
	{"Tyranitar", [2]string{c.TypeRock, c.TypeDark}, [6]int{100, 134, 110, 95, 100, 61}, 202.0},
	{"Garchomp", [2]string{c.TypeDragon, c.TypeGround}, [6]int{108, 130, 95, 80, 85, 102}, 95.0},
	{"Ferrothorn", [2]string{c.TypeGrass, c.TypeSteel}, [6]int{74, 94, 131, 54, 116, 20}, 110.0},
	{"Toxapex", [2]string{c.TypePoison, c.TypeWater}, [6]int{50, 63, 152, 53, 142, 35}, 14.5},
	{"Heatran", [2]string{c.TypeFire, c.TypeSteel}, [6]int{91, 90, 106, 130, 106, 77}, 430.0},
	{"Rotom-Wash", [2]string{c.TypeElectric, c.TypeWater}, [6]int{50, 65, 107, 105, 107, 86}, 0.3},
	{"Clefable", [2]string{c.TypeFairy}, [6]int{95, 70, 73, 95, 90, 60}, 40.0},
	{"Skarmory", [2]string{c.TypeSteel, c.TypeFlying}, [6]int{65, 80, 140, 40, 70, 70}, 50.5},
	{"Blissey", [2]string{c.TypeNormal}, [6]int{255, 10, 10, 75, 135, 55}, 46.8},
	{"Corviknight", [2]string{c.TypeFlying, c.TypeSteel}, [6]int{98, 87, 105, 53, 85, 67}, 75.0},
	{"Dragapult", [2]string{c.TypeDragon, c.TypeGhost}, [6]int{88, 120, 75, 100, 75, 142}, 2.0},
	{"Weavile", [2]string{c.TypeDark, c.TypeIce}, [6]int{70, 120, 65, 45, 85, 125}, 34.0},
	{"Excadrill", [2]string{c.TypeGround, c.TypeSteel}, [6]int{110, 135, 60, 50, 65, 88}, 40.4},
	{"Magnezone", [2]string{c.TypeElectric, c.TypeSteel}, [6]int{70, 70, 115, 130, 90, 60}, 180.0},
	{"Gyarados", [2]string{c.TypeWater, c.TypeFlying}, [6]int{95, 125, 79, 60, 100, 81}, 235.0},
	{"Volcarona", [2]string{c.TypeBug, c.TypeFire}, [6]int{85, 60, 65, 135, 105, 100}, 46.0},
	{"Scizor", [2]string{c.TypeBug, c.TypeSteel}, [6]int{70, 130, 100, 55, 80, 65}, 118.0},
	{"Azumarill", [2]string{c.TypeWater, c.TypeFairy}, [6]int{100, 50, 80, 60, 80, 50}, 28.5},
	{"Rillaboom", [2]string{c.TypeGrass}, [6]int{100, 125, 90, 60, 70, 85}, 90.0},
	{"Cinderace", [2]string{c.TypeFire}, [6]int{80, 116, 75, 65, 75, 119}, 33.0},
	{"Zapdos", [2]string{c.TypeElectric, c.TypeFlying}, [6]int{90, 90, 85, 125, 90, 100}, 52.6},
	{"Alakazam", [2]string{c.TypePsychic}, [6]int{55, 50, 45, 135, 95, 120}, 48.0},
	{"Machamp", [2]string{c.TypeFighting}, [6]int{90, 130, 80, 65, 85, 55}, 130.0},
	{"Slowbro", [2]string{c.TypeWater, c.TypePsychic}, [6]int{95, 75, 110, 100, 80, 30}, 78.5},
	{"Starmie", [2]string{c.TypeWater, c.TypePsychic}, [6]int{60, 75, 85, 100, 85, 115}, 80.0},
	{"Lucario", [2]string{c.TypeFighting, c.TypeSteel}, [6]int{70, 110, 70, 115, 70, 90}, 54.0},
	{"Breloom", [2]string{c.TypeGrass, c.TypeFighting}, [6]int{60, 130, 80, 60, 60, 70}, 39.2},
	{"Mew", [2]string{c.TypePsychic}, [6]int{100, 100, 100, 100, 100, 100}, 4.0},
	{"Shedinja", [2]string{c.TypeBug, c.TypeGhost}, [6]int{1, 90, 45, 30, 30, 40}, 1.2},
	{"Flabébé", [2]string{c.TypeFairy}, [6]int{44, 38, 39, 61, 79, 42}, 0.1},
	{"Mr. Mime", [2]string{c.TypePsychic, c.TypeFairy}, [6]int{40, 45, 65, 100, 120, 90}, 54.5},
	{"Hippowdon", [2]string{c.TypeGround}, [6]int{108, 112, 118, 68, 72, 47}, 300.0},
	{"Pelipper", [2]string{c.TypeWater, c.TypeFlying}, [6]int{60, 50, 100, 95, 70, 65}, 28.0},
	{"Torkoal", [2]string{c.TypeFire}, [6]int{70, 85, 140, 85, 70, 20}, 80.4},
	{"Kingdra", [2]string{c.TypeWater, c.TypeDragon}, [6]int{75, 95, 95, 95, 95, 85}, 152.0},
}

// Pokedex: map[speciesID]*Species, загружается через LoadPokedex().
var Pokedex map[string]*Species

// LoadPokedex строит Pokedex из speciesDefs.
func LoadPokedex() error {
	Pokedex = make(map[string]*Species, len(speciesDefs))

	for i := range speciesDefs {
		def := &speciesDefs[i]
		id := ToID(def.name)
		if _, dup := Pokedex[id]; dup {
			return fmt.Errorf("duplicate species id %q", id)
		}
		Pokedex[id] = &Species{
			ID:    id,
			Name:  def.name,
			Types: def.types,
			Base: BaseStats{
				HP:             def.base[0],
				Attack:         def.base[1],
				Defense:        def.base[2],
				SpecialAttack:  def.base[3],
				SpecialDefense: def.base[4],
				Speed:          def.base[5],
			},
			Weight: def.weight,
		}
	}

	slog.Info("loaded pokedex", "species", len(Pokedex))
	return nil
}

// GetPokedex возвращает вид по имени или id.
func GetPokedex(name string) (*Species, error) {
	if sp, ok := Pokedex[ToID(name)]; ok {
		return sp, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrPokemonNotFound, name)
}

// Load loads every static table. Safe to call more than once.
func Load() error {
	if err := LoadMoves(); err != nil {
		return fmt.Errorf("loading moves: %w", err)
	}
	if err := LoadPokedex(); err != nil {
		return fmt.Errorf("loading pokedex: %w", err)
	}
	return nil
}
