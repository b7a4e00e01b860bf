package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hongminglow/guard-reports-be/internal/apperr"
	"github.com/hongminglow/guard-reports-be/internal/auth"
	"github.com/hongminglow/guard-reports-be/internal/http/respond"
	"github.com/hongminglow/guard-reports-be/internal/models/dto"
	"github.com/hongminglow/guard-reports-be/internal/storage"
	"github.com/hongminglow/guard-reports-be/internal/validation"
)

// AuthHandler owns the login endpoint.
type AuthHandler struct {
	store    storage.UserStore
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	validate *validation.Validator
	log      *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, hasher *auth.PasswordHasher, tokens *auth.TokenManager, validate *validation.Validator, log *zap.Logger) *AuthHandler {
	return &AuthHandler{store: store, hasher: hasher, tokens: tokens, validate: validate, log: log}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/login", h.handleLogin)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		respond.Error(w, h.log, err)
		return
	}
	req.Normalize()
	if err := h.validate.Struct(req, "Correo y contraseña son requeridos."); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	user, err := h.store.FindByEmail(r.Context(), string(req.Correo))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, h.log, apperr.Unauthorized("Correo no registrado"))
			return
		}
		respond.Error(w, h.log, apperr.Internal("Error al consultar el usuario", err))
		return
	}
	if err := h.hasher.Compare(user.PasswordHash, string(req.Contrasena)); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			respond.Error(w, h.log, apperr.Unauthorized("Contraseña incorrecta"))
			return
		}
		respond.Error(w, h.log, apperr.Internal("Error al verificar la contraseña", err))
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respond.Error(w, h.log, apperr.Internal("Error al generar el token", err))
		return
	}
	respond.JSON(w, h.log, http.StatusOK, dto.LoginResponse{
		Message: "Inicio de sesión exitoso",
		Usuario: user,
		Token:   token,
	})
}
