package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/webcontacts/contacts-api/internal/domain/model"
)

type SignupDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginDTO struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ContactDTO struct {
	Name        string    `json:"name"         validate:"required,max=50"`
	LastName    string    `json:"last_name"    validate:"required,max=50"`
	Email       string    `json:"email"        validate:"required,email"`
	PhoneNumber string    `json:"phone_number" validate:"required,max=30"`
	BirthDate   time.Time `json:"birth_date"   validate:"required"`
	Rest        string    `json:"rest"         validate:"max=500"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar,omitempty"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type ContactResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	BirthDate   time.Time `json:"birth_date"`
	Rest        string    `json:"rest"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewUserResponse(u model.User) UserResponse {
	resp := UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
	if u.Avatar != nil {
		resp.Avatar = *u.Avatar
	}
	return resp
}

func NewTokenResponse(p model.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    p.TokenType,
	}
}

func NewContactResponse(c model.Contact) ContactResponse {
	return ContactResponse{
		ID:          c.ID,
		Name:        c.Name,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		BirthDate:   c.BirthDate,
		Rest:        c.Rest,
	}
}
