package dto

import (
	"github.com/hongminglow/guard-reports-be/internal/models"
)

// CreateUserRequest is the registration body for POST /usuarios.
type CreateUserRequest struct {
	Cedula     Text `json:"cedula" validate:"required"`
	Nombres    Text `json:"nombres" validate:"required"`
	Apellidos  Text `json:"apellidos" validate:"required"`
	Telefono   Text `json:"telefono" validate:"required"`
	Correo     Text `json:"correo" validate:"required"`
	Contrasena Text `json:"contraseña" validate:"required"`
}

// Normalize trims every field except the password, which is hashed verbatim.
func (r *CreateUserRequest) Normalize() {
	trim(&r.Cedula, &r.Nombres, &r.Apellidos, &r.Telefono, &r.Correo)
}

// User builds the row to insert with the already hashed password.
func (r CreateUserRequest) User(passwordHash string) models.User {
	return models.User{
		Cedula:       string(r.Cedula),
		Nombres:      string(r.Nombres),
		Apellidos:    string(r.Apellidos),
		Telefono:     string(r.Telefono),
		Correo:       string(r.Correo),
		PasswordHash: passwordHash,
	}
}

// UpdateUserRequest matches CreateUserRequest with an optional password.
type UpdateUserRequest struct {
	Cedula     Text `json:"cedula" validate:"required"`
	Nombres    Text `json:"nombres" validate:"required"`
	Apellidos  Text `json:"apellidos" validate:"required"`
	Telefono   Text `json:"telefono" validate:"required"`
	Correo     Text `json:"correo" validate:"required"`
	Contrasena Text `json:"contraseña"`
}

// Normalize trims every field except the password. Any non-empty password, even blanks, is rehashed.
func (r *UpdateUserRequest) Normalize() {
	trim(&r.Cedula, &r.Nombres, &r.Apellidos, &r.Telefono, &r.Correo)
}

// User builds the replacement row. An empty passwordHash keeps the stored one.
func (r UpdateUserRequest) User(id int64, passwordHash string) models.User {
	return models.User{
		ID:           id,
		Cedula:       string(r.Cedula),
		Nombres:      string(r.Nombres),
		Apellidos:    string(r.Apellidos),
		Telefono:     string(r.Telefono),
		Correo:       string(r.Correo),
		PasswordHash: passwordHash,
	}
}

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Correo     Text `json:"correo" validate:"required"`
	Contrasena Text `json:"contraseña" validate:"required"`
}

// Normalize trims the correo. The password is compared verbatim.
func (r *LoginRequest) Normalize() {
	trim(&r.Correo)
}

// LoginResponse carries the authenticated user without its password hash.
type LoginResponse struct {
	Message string      `json:"message"`
	Usuario models.User `json:"usuario"`
	Token   string      `json:"token"`
}

// MessageResponse carries a confirmation message and, for creates, the new id.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}
