package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(50);not null"`
	Email     string    `json:"email" gorm:"type:varchar(50);not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

// UserBrief is the projection returned by GET /users
type UserBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (u User) Brief() UserBrief {
	return UserBrief{ID: u.ID, Name: u.Name}
}
