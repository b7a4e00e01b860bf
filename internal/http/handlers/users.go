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

const (
	msgAllFieldsRequired = "Todos los campos son requeridos."
	msgUserNotFound      = "Usuario no encontrado"
)

// UserHandler owns the /usuarios CRUD endpoints.
type UserHandler struct {
	store    storage.UserStore
	hasher   *auth.PasswordHasher
	validate *validation.Validator
	log      *zap.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(store storage.UserStore, hasher *auth.PasswordHasher, validate *validation.Validator, log *zap.Logger) *UserHandler {
	return &UserHandler{store: store, hasher: hasher, validate: validate, log: log}
}

// Register attaches user routes to the router.
func (h *UserHandler) Register(r chi.Router) {
	r.Route("/usuarios", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *UserHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		respond.Error(w, h.log, err)
		return
	}
	req.Normalize()
	if err := h.validate.Struct(req, msgAllFieldsRequired); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	passwordHash, err := h.hashPassword(req.Contrasena)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	created, err := h.store.CreateUser(r.Context(), req.User(passwordHash))
	if err != nil {
		respond.Error(w, h.log, userStoreError("Error al crear el usuario", err))
		return
	}

	respond.JSON(w, h.log, http.StatusOK, created)
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		respond.Error(w, h.log, apperr.Internal("Error al consultar los usuarios", err))
		return
	}
	respond.JSON(w, h.log, http.StatusOK, users)
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		respond.Error(w, h.log, userStoreError("Error al consultar el usuario", err))
		return
	}
	respond.JSON(w, h.log, http.StatusOK, user)
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	var req dto.UpdateUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		respond.Error(w, h.log, err)
		return
	}
	req.Normalize()
	if err := h.validate.Struct(req, msgAllFieldsRequired); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	var passwordHash string
	if req.Contrasena != "" {
		if passwordHash, err = h.hashPassword(req.Contrasena); err != nil {
			respond.Error(w, h.log, err)
			return
		}
	}

	if err := h.store.UpdateUser(r.Context(), req.User(id, passwordHash)); err != nil {
		respond.Error(w, h.log, userStoreError("Error al actualizar el usuario", err))
		return
	}
	respond.JSON(w, h.log, http.StatusOK, dto.MessageResponse{Message: "Usuario actualizado correctamente"})
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		respond.Error(w, h.log, userStoreError("Error al eliminar el usuario", err))
		return
	}
	respond.JSON(w, h.log, http.StatusOK, dto.MessageResponse{Message: "Usuario eliminado correctamente"})
}

// hashPassword reports an over-long password as a client error.
func (h *UserHandler) hashPassword(password dto.Text) (string, error) {
	hash, err := h.hasher.Hash(string(password))
	switch {
	case errors.Is(err, auth.ErrPasswordTooLong):
		return "", apperr.BadRequest("La contraseña no puede superar 72 bytes").WithFields("contraseña")
	case err != nil:
		return "", apperr.Internal("Error al encriptar la contraseña", err)
	}
	return hash, nil
}

func userStoreError(message string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperr.NotFound(msgUserNotFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		return apperr.Conflict("El correo ya está registrado")
	default:
		return apperr.Internal(message, err)
	}
}
