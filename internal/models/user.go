package models

import "time"

// User is a guard account. Correo is the login key.
type User struct {
	ID           int64     `json:"id"`
	Cedula       string    `json:"cedula"`
	Nombres      string    `json:"nombres"`
	Apellidos    string    `json:"apellidos"`
	Telefono     string    `json:"telefono"`
	Correo       string    `json:"correo"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
