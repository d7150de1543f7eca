package models

type Planet struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Name       string  `json:"name" gorm:"type:varchar(50);not null"`
	Climate    *string `json:"climate" gorm:"type:varchar(50)"`
	Terrain    *string `json:"terrain" gorm:"type:varchar(50)"`
	Population *string `json:"population" gorm:"type:varchar(50)"`
}

func (Planet) TableName() string {
	return "planets"
}

// PlanetBrief is the narrow projection returned by GET /planets/:id
type PlanetBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (p Planet) Brief() PlanetBrief {
	return PlanetBrief{ID: p.ID, Name: p.Name}
}
