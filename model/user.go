package model

import "time"

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Firstname    string     `db:"firstname" json:"firstname"`
	Lastname     string     `db:"lastname" json:"lastname"`
	Email        string     `db:"email" json:"email"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CountryCode  string     `db:"country_code" json:"countrycode"`
	MobileNumber string     `db:"mobile_number" json:"mobilenumber"`
	FullMobile   string     `db:"full_mobile" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users by a single fingerprint field
type UserFilter struct {
	ID         uint64
	Username   string
	Email      string
	FullMobile string
}

// RegisterRequest for user registration. The tags enforce the same rules
// the explicit field validators re-check inside the application layer.
type RegisterRequest struct {
	Firstname       string `json:"firstname" validate:"required,alpha,min=2,max=50"`
	Lastname        string `json:"lastname" validate:"required,alpha,min=2,max=50"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Username        string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Password        string `json:"password" validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirmpassword" validate:"required,eqfield=Password"`
	CountryCode     string `json:"countrycode" validate:"required,startswith=+"`
	MobileNumber    string `json:"mobilenumber" validate:"required,numeric,min=10,max=15"`
}

type RegisterResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}
