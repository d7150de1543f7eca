package database

import (
	"github.com/titobalza/apirest-starwars/models"

	"gorm.io/gorm"
)

func str(s string) *string {
	return &s
}

// Seed fills the catalog tables with a small reference set when they are
// empty. Running it against a populated database does nothing.
func Seed(db *gorm.DB) error {
	if err := seedPlanets(db); err != nil {
		return err
	}
	return seedCharacters(db)
}

func seedPlanets(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Planet{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	planets := []models.Planet{
		{Name: "Tatooine", Climate: str("arid"), Terrain: str("desert"), Population: str("200000")},
		{Name: "Alderaan", Climate: str("temperate"), Terrain: str("grasslands, mountains"), Population: str("2000000000")},
		{Name: "Hoth", Climate: str("frozen"), Terrain: str("tundra, ice caves"), Population: str("unknown")},
		{Name: "Dagobah", Climate: str("murky"), Terrain: str("swamp, jungles"), Population: str("unknown")},
		{Name: "Naboo", Climate: str("temperate"), Terrain: str("grassy hills, swamps"), Population: str("4500000000")},
	}
	return db.Create(&planets).Error
}

func seedCharacters(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Character{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	characters := []models.Character{
		{Name: "Luke Skywalker", Height: str("172"), Mass: str("77"), HairColor: str("blond"), SkinColor: str("fair"), EyeColor: str("blue"), BirthYear: str("19BBY"), Gender: str("male")},
		{Name: "Leia Organa", Height: str("150"), Mass: str("49"), HairColor: str("brown"), SkinColor: str("light"), EyeColor: str("brown"), BirthYear: str("19BBY"), Gender: str("female")},
		{Name: "Darth Vader", Height: str("202"), Mass: str("136"), HairColor: str("none"), SkinColor: str("white"), EyeColor: str("yellow"), BirthYear: str("41.9BBY"), Gender: str("male")},
		{Name: "Han Solo", Height: str("180"), Mass: str("80"), HairColor: str("brown"), SkinColor: str("fair"), EyeColor: str("brown"), BirthYear: str("29BBY"), Gender: str("male")},
		{Name: "Yoda", Height: str("66"), Mass: str("17"), HairColor: str("white"), SkinColor: str("green"), EyeColor: str("brown"), BirthYear: str("896BBY"), Gender: str("male")},
	}
	return db.Create(&characters).Error
}
