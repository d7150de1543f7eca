package models

// Character - a person from the catalog. All descriptive attributes are
// free-form short strings and may be absent.
type Character struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"type:varchar(50);not null"`
	Height    *string `json:"height" gorm:"type:varchar(10)"`
	Mass      *string `json:"mass" gorm:"type:varchar(10)"`
	HairColor *string `json:"hair_color" gorm:"type:varchar(20)"`
	SkinColor *string `json:"skin_color" gorm:"type:varchar(20)"`
	EyeColor  *string `json:"eye_color" gorm:"type:varchar(20)"`
	BirthYear *string `json:"birth_year" gorm:"type:varchar(10)"`
	Gender    *string `json:"gender" gorm:"type:varchar(10)"`
}

func (Character) TableName() string {
	return "characters"
}

// CharacterBrief is the narrow projection returned by GET /people/:id
type CharacterBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (ch Character) Brief() CharacterBrief {
	return CharacterBrief{ID: ch.ID, Name: ch.Name}
}
