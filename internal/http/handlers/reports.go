package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hongminglow/guard-reports-be/internal/apperr"
	"github.com/hongminglow/guard-reports-be/internal/http/respond"
	"github.com/hongminglow/guard-reports-be/internal/models/dto"
	"github.com/hongminglow/guard-reports-be/internal/storage"
	"github.com/hongminglow/guard-reports-be/internal/validation"
)

// ReportHandler owns the shift, workstation and incident report endpoints.
type ReportHandler struct {
	store    storage.ReportStore
	validate *validation.Validator
	log      *zap.Logger
}

// NewReportHandler constructs the handler.
func NewReportHandler(store storage.ReportStore, validate *validation.Validator, log *zap.Logger) *ReportHandler {
	return &ReportHandler{store: store, validate: validate, log: log}
}

// Register attaches report routes to the router.
func (h *ReportHandler) Register(r chi.Router) {
	r.Route("/reportes", func(r chi.Router) {
		r.Post("/", h.handleCreateShift)
		r.Get("/", listHandler(h, h.store.ListShiftReports))
		r.Get("/{id}", getHandler(h, h.store.GetShiftReport, "Reporte no encontrado"))
	})
	r.Route("/reporte_puesto", func(r chi.Router) {
		r.Post("/", h.handleCreateWorkstation)
		r.Get("/", listHandler(h, h.store.ListWorkstationReports))
		r.Get("/{id}", getHandler(h, h.store.GetWorkstationReport, "Reporte de puesto de trabajo no encontrado"))
	})
	r.Route("/reporte_incidente", func(r chi.Router) {
		r.Post("/", h.handleCreateIncident)
		r.Get("/", listHandler(h, h.store.ListIncidentReports))
		r.Get("/{id}", getHandler(h, h.store.GetIncidentReport, "Reporte de incidente no encontrado"))
	})
}

func (h *ReportHandler) handleCreateShift(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShiftReportRequest
	if !h.bind(w, r, &req, msgAllFieldsRequired) {
		return
	}
	id, err := h.store.CreateShiftReport(r.Context(), req.Report())
	if err != nil {
		respond.Error(w, h.log, apperr.Internal("Error al crear el reporte", err))
		return
	}
	respond.JSON(w, h.log, http.StatusOK, dto.MessageResponse{Message: "Reporte creado exitosamente", ID: id})
}

func (h *ReportHandler) handleCreateWorkstation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkstationReportRequest
	if !h.bind(w, r, &req, msgAllFieldsRequired) {
		return
	}
	id, err := h.store.CreateWorkstationReport(r.Context(), req.Report())
	if err != nil {
		respond.Error(w, h.log, apperr.Internal("Error al crear el reporte de puesto de trabajo", err))
		return
	}
	respond.JSON(w, h.log, http.StatusCreated, dto.MessageResponse{Message: "Reporte de puesto de trabajo creado exitosamente", ID: id})
}

func (h *ReportHandler) handleCreateIncident(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateIncidentReportRequest
	if !h.bind(w, r, &req, "Los campos Fecha, Lugar y Descripción son requeridos.") {
		return
	}
	id, err := h.store.CreateIncidentReport(r.Context(), req.Report())
	if err != nil {
		respond.Error(w, h.log, apperr.Internal("Error al crear el reporte de incidente", err))
		return
	}
	respond.JSON(w, h.log, http.StatusOK, dto.MessageResponse{Message: "Reporte de incidente creado exitosamente", ID: id})
}

type normalizer interface {
	Normalize()
}

// bind decodes, normalizes and validates req, writing the failure response itself.
func (h *ReportHandler) bind(w http.ResponseWriter, r *http.Request, req normalizer, missing string) bool {
	if err := decodeBody(w, r, req); err != nil {
		respond.Error(w, h.log, err)
		return false
	}
	req.Normalize()
	if err := h.validate.Struct(req, missing); err != nil {
		respond.Error(w, h.log, err)
		return false
	}
	return true
}

func listHandler[T any](h *ReportHandler, list func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			respond.Error(w, h.log, apperr.Internal("Error al consultar los reportes", err))
			return
		}
		respond.JSON(w, h.log, http.StatusOK, items)
	}
}

func getHandler[T any](h *ReportHandler, get func(context.Context, int64) (T, error), notFound string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respond.Error(w, h.log, err)
			return
		}
		item, err := get(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				respond.Error(w, h.log, apperr.NotFound(notFound))
				return
			}
			respond.Error(w, h.log, apperr.Internal("Error al consultar el reporte", err))
			return
		}
		respond.JSON(w, h.log, http.StatusOK, item)
	}
}
