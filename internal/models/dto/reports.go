package dto

import (
	"github.com/hongminglow/guard-reports-be/internal/models"
)

// CreateShiftReportRequest is the body for POST /reportes. Every field is required.
type CreateShiftReportRequest struct {
	Fecha                Text `json:"fecha" validate:"required"`
	Hora                 Text `json:"hora" validate:"required"`
	GuardaEntrega        Text `json:"guarda_entrega" validate:"required"`
	GuardaRecibe         Text `json:"guarda_recibe" validate:"required"`
	NovedadesFecha       Text `json:"novedades_fecha" validate:"required"`
	NovedadesHora        Text `json:"novedades_hora" validate:"required"`
	NovedadesDescripcion Text `json:"novedades_descripcion" validate:"required"`
}

// Normalize trims every field.
func (r *CreateShiftReportRequest) Normalize() {
	trim(&r.Fecha, &r.Hora, &r.GuardaEntrega, &r.GuardaRecibe, &r.NovedadesFecha, &r.NovedadesHora, &r.NovedadesDescripcion)
}

// Report converts the request into the row to insert.
func (r CreateShiftReportRequest) Report() models.ShiftReport {
	return models.ShiftReport{
		Fecha:                string(r.Fecha),
		Hora:                 string(r.Hora),
		GuardaEntrega:        string(r.GuardaEntrega),
		GuardaRecibe:         string(r.GuardaRecibe),
		NovedadesFecha:       string(r.NovedadesFecha),
		NovedadesHora:        string(r.NovedadesHora),
		NovedadesDescripcion: string(r.NovedadesDescripcion),
	}
}

// CreateWorkstationReportRequest is the body for POST /reporte_puesto.
type CreateWorkstationReportRequest struct {
	NombrePuesto      Text `json:"nombre_puesto" validate:"required"`
	Responsabilidades Text `json:"responsabilidades" validate:"required"`
	Horario           Text `json:"horario" validate:"required"`
	Ubicacion         Text `json:"ubicacion" validate:"required"`
	Supervisor        Text `json:"supervisor" validate:"required"`
}

// Normalize trims every field.
func (r *CreateWorkstationReportRequest) Normalize() {
	trim(&r.NombrePuesto, &r.Responsabilidades, &r.Horario, &r.Ubicacion, &r.Supervisor)
}

// Report converts the request into the row to insert.
func (r CreateWorkstationReportRequest) Report() models.WorkstationReport {
	return models.WorkstationReport{
		NombrePuesto:      string(r.NombrePuesto),
		Responsabilidades: string(r.Responsabilidades),
		Horario:           string(r.Horario),
		Ubicacion:         string(r.Ubicacion),
		Supervisor:        string(r.Supervisor),
	}
}

// CreateIncidentReportRequest is the body for POST /reporte_incidente.
type CreateIncidentReportRequest struct {
	FechaIncidente       Text  `json:"fecha_incidente" validate:"required"`
	LugarIncidente       Text  `json:"lugar_incidente" validate:"required"`
	DescripcionIncidente Text  `json:"descripcion_incidente" validate:"required"`
	TestigosPresentes    *Text `json:"testigos_presentes"`
	AccionesTomadas      *Text `json:"acciones_tomadas"`
}

// Normalize trims every field.
func (r *CreateIncidentReportRequest) Normalize() {
	trim(&r.FechaIncidente, &r.LugarIncidente, &r.DescripcionIncidente)
}

// Report converts the request into the row to insert. Blank optional fields become NULL.
func (r CreateIncidentReportRequest) Report() models.IncidentReport {
	return models.IncidentReport{
		FechaIncidente:       string(r.FechaIncidente),
		LugarIncidente:       string(r.LugarIncidente),
		DescripcionIncidente: string(r.DescripcionIncidente),
		TestigosPresentes:    optional(r.TestigosPresentes),
		AccionesTomadas:      optional(r.AccionesTomadas),
	}
}
