package models

import "time"

// Gender is the self-declared gender of a user
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "Outro"
)

// IsValid reports whether g is one of the known genders.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Address is the postal address shared by users and collection points
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	UF           string `json:"uf"`
}

// User is a registered user record
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	CPF          string    `json:"cpf"`
	Gender       Gender    `json:"gender"`
	BirthDate    string    `json:"birthDate"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	Address      Address   `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WithoutPassword returns a copy of the user safe to expose or persist in a session.
func (u User) WithoutPassword() User {
	u.PasswordHash = ""
	return u
}

// UserInput is the payload for creating a user
type UserInput struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	CPF       string  `json:"cpf" binding:"required"`
	Gender    Gender  `json:"gender"`
	BirthDate string  `json:"birthDate"`
	Password  string  `json:"password" binding:"required"`
	Address   Address `json:"address"`
}

// UserUpdate is a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Name      *string  `json:"name,omitempty"`
	Email     *string  `json:"email,omitempty"`
	CPF       *string  `json:"cpf,omitempty"`
	Gender    *Gender  `json:"gender,omitempty"`
	BirthDate *string  `json:"birthDate,omitempty"`
	Password  *string  `json:"password,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// UserStats aggregates the registered users
type UserStats struct {
	Total              int            `json:"total"`
	RecentCount        int            `json:"recentCount"`
	CitiesCount        int            `json:"citiesCount"`
	GenderDistribution map[Gender]int `json:"genderDistribution"`
}

// UniquenessResult is the outcome of a uniqueness pre-check
type UniquenessResult struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}
