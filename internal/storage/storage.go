package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/guard-reports-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures user persistence operations needed by handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	FindByEmail(ctx context.Context, correo string) (models.User, error)
	// UpdateUser overwrites every column of the row with user.ID. An empty
	// PasswordHash leaves the stored hash untouched.
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

// ReportStore captures report persistence. Reports are append-only.
type ReportStore interface {
	CreateShiftReport(ctx context.Context, report models.ShiftReport) (int64, error)
	ListShiftReports(ctx context.Context) ([]models.ShiftReport, error)
	GetShiftReport(ctx context.Context, id int64) (models.ShiftReport, error)

	CreateWorkstationReport(ctx context.Context, report models.WorkstationReport) (int64, error)
	ListWorkstationReports(ctx context.Context) ([]models.WorkstationReport, error)
	GetWorkstationReport(ctx context.Context, id int64) (models.WorkstationReport, error)

	CreateIncidentReport(ctx context.Context, report models.IncidentReport) (int64, error)
	ListIncidentReports(ctx context.Context) ([]models.IncidentReport, error)
	GetIncidentReport(ctx context.Context, id int64) (models.IncidentReport, error)
}

// Store is the full persistence backend the server runs on.
type Store interface {
	UserStore
	ReportStore
	Ping(ctx context.Context) error
	Close()
}
