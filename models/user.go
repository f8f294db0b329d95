package models

import "time"

const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)

// User — учётная запись для ввода результатов (не игрок лиги).
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
