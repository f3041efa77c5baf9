package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"size:50;not null"`
	Email        string    `gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Avatar       *string   `gorm:"size:250"`
	RefreshToken *string   `gorm:"size:500"`
	Confirmed    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Contact struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:50;not null"`
	LastName    string    `gorm:"size:50;not null"`
	Email       string    `gorm:"size:150;not null"`
	PhoneNumber string    `gorm:"size:30;not null"`
	BirthDate   time.Time `gorm:"type:date;not null"`
	Rest        string    `gorm:"size:500"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}
