package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/guard-reports-be/internal/auth"
	"github.com/hongminglow/guard-reports-be/internal/http/respond"
	"github.com/hongminglow/guard-reports-be/internal/models"
	"github.com/hongminglow/guard-reports-be/internal/storage"
	"github.com/hongminglow/guard-reports-be/internal/storage/memory"
	"github.com/hongminglow/guard-reports-be/internal/validation"
)

var errDriver = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

// brokenStore fails every write and lookup with a driver error.
type brokenStore struct {
	*memory.Store
}

func (brokenStore) CreateUser(context.Context, models.User) (models.User, error) {
	return models.User{}, errDriver
}

func (brokenStore) FindByEmail(context.Context, string) (models.User, error) {
	return models.User{}, errDriver
}

func (brokenStore) CreateWorkstationReport(context.Context, models.WorkstationReport) (int64, error) {
	return 0, errDriver
}

func (brokenStore) ListShiftReports(context.Context) ([]models.ShiftReport, error) {
	return nil, errDriver
}

func newRouter(store storage.Store) http.Handler {
	log := zap.NewNop()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	validate := validation.New()
	tokens := auth.NewTokenManager("test-secret", "test-issuer", time.Hour)

	r := chi.NewRouter()
	NewHealthHandler(time.Now(), store, log).Register(r)
	NewAuthHandler(store, hasher, tokens, validate, log).Register(r)
	NewUserHandler(store, hasher, validate, log).Register(r)
	NewReportHandler(store, validate, log).Register(r)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) respond.Envelope {
	t.Helper()
	var env respond.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func validUser() map[string]string {
	return map[string]string{
		"cedula":     "123",
		"nombres":    "Ana",
		"apellidos":  "Diaz",
		"telefono":   "555",
		"correo":     "a@x.com",
		"contraseña": "secret",
	}
}

func TestCreateUserRequiresEveryField(t *testing.T) {
	store := memory.NewStore()
	h := newRouter(store)

	body := validUser()
	body["telefono"] = "   "
	delete(body, "contraseña")
	rec := doJSON(t, h, http.MethodPost, "/usuarios", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.ElementsMatch(t, []string{"telefono", "contraseña"}, env.Fields)

	users, err := store.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	h := newRouter(memory.NewStore())
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPost, "/usuarios", validUser()).Code)

	rec := doJSON(t, h, http.MethodPost, "/usuarios", validUser())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateUserAcceptsNumericFields(t *testing.T) {
	store := memory.NewStore()
	h := newRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/usuarios", strings.NewReader(`{
		"cedula": 1712345678,
		"nombres": "Ana",
		"apellidos": "Diaz",
		"telefono": 5551234,
		"correo": "a@x.com",
		"contraseña": "secret"
	}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	saved, err := store.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "1712345678", saved.Cedula)
	assert.Equal(t, "5551234", saved.Telefono)
}

func TestOverlongPasswordIsBadRequest(t *testing.T) {
	store := memory.NewStore()
	h := newRouter(store)
	long := strings.Repeat("x", auth.MaxPasswordBytes+8)

	body := validUser()
	body["contraseña"] = long
	rec := doJSON(t, h, http.MethodPost, "/usuarios", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"contraseña"}, decodeEnvelope(t, rec).Fields)

	users, err := store.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)

	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPost, "/usuarios", validUser()).Code)
	rec = doJSON(t, h, http.MethodPut, "/usuarios/1", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"contraseña"}, decodeEnvelope(t, rec).Fields)
}

func TestInvalidJSON(t *testing.T) {
	h := newRouter(memory.NewStore())
	req := httptest.NewRequest(http.MethodPost, "/reportes", strings.NewReader(`{"fecha":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "JSON inválido", decodeEnvelope(t, rec).Message)
}

func TestEmptyBodyReportsMissingFields(t *testing.T) {
	h := newRouter(memory.NewStore())
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.ElementsMatch(t, []string{"correo", "contraseña"}, decodeEnvelope(t, rec).Fields)
}

func TestFormEncodedBody(t *testing.T) {
	store := memory.NewStore()
	h := newRouter(store)

	form := url.Values{}
	form.Set("nombre_puesto", "Portería principal")
	form.Set("responsabilidades", "Control de acceso")
	form.Set("horario", "06:00-18:00")
	form.Set("ubicacion", "Bloque A")
	form.Set("supervisor", "Carlos Ruiz")
	req := httptest.NewRequest(http.MethodPost, "/reporte_puesto", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	saved, err := store.GetWorkstationReport(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Portería principal", saved.NombrePuesto)
	assert.Equal(t, "Carlos Ruiz", saved.Supervisor)
}

func TestInvalidPathID(t *testing.T) {
	h := newRouter(memory.NewStore())
	for _, path := range []string{"/usuarios/abc", "/reportes/-1", "/reporte_incidente/0"} {
		rec := doJSON(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestIncidentOptionalFieldsStoredAsNull(t *testing.T) {
	store := memory.NewStore()
	h := newRouter(store)

	rec := doJSON(t, h, http.MethodPost, "/reporte_incidente", map[string]any{
		"fecha_incidente":       "2024-05-01",
		"lugar_incidente":       "Parqueadero",
		"descripcion_incidente": "Vehículo sin autorización",
		"testigos_presentes":    "  ",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Reporte de incidente creado exitosamente", created.Message)

	rec = doJSON(t, h, http.MethodGet, "/reporte_incidente/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Nil(t, got["testigos_presentes"])
	assert.Nil(t, got["acciones_tomadas"])
	assert.Equal(t, "Parqueadero", got["lugar_incidente"])
}

func TestIncidentRequiresCoreFields(t *testing.T) {
	h := newRouter(memory.NewStore())
	rec := doJSON(t, h, http.MethodPost, "/reporte_incidente", map[string]any{
		"fecha_incidente":    "2024-05-01",
		"testigos_presentes": "Luis",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Los campos Fecha, Lugar y Descripción son requeridos.", env.Message)
	assert.ElementsMatch(t, []string{"lugar_incidente", "descripcion_incidente"}, env.Fields)
}

func TestReportNotFound(t *testing.T) {
	h := newRouter(memory.NewStore())
	cases := map[string]string{
		"/reportes/9":          "Reporte no encontrado",
		"/reporte_puesto/9":    "Reporte de puesto de trabajo no encontrado",
		"/reporte_incidente/9": "Reporte de incidente no encontrado",
	}
	for path, message := range cases {
		rec := doJSON(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, message, decodeEnvelope(t, rec).Message, path)
	}
}

func TestStoreFailuresAreInternalErrors(t *testing.T) {
	h := newRouter(brokenStore{memory.NewStore()})

	workstation := map[string]string{
		"nombre_puesto":     "Recepción",
		"responsabilidades": "Registro de visitantes",
		"horario":           "24h",
		"ubicacion":         "Lobby",
		"supervisor":        "Marta",
	}
	requests := []struct {
		method, path string
		body         any
	}{
		{http.MethodPost, "/usuarios", validUser()},
		{http.MethodPost, "/login", map[string]string{"correo": "a@x.com", "contraseña": "secret"}},
		{http.MethodPost, "/reporte_puesto", workstation},
		{http.MethodGet, "/reportes", nil},
	}
	for _, tc := range requests {
		rec := doJSON(t, h, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, tc.path)
		assert.NotContains(t, rec.Body.String(), "connection refused", tc.path)
		assert.Equal(t, 500, decodeEnvelope(t, rec).Code, tc.path)
	}
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newRouter(memory.NewStore()), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

type downStore struct {
	*memory.Store
}

func (downStore) Ping(context.Context) error { return errDriver }

func TestHealthReportsDatabaseOutage(t *testing.T) {
	rec := doJSON(t, newRouter(downStore{memory.NewStore()}), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
