package models

import "time"

// ShiftReport records a guard handover.
type ShiftReport struct {
	ID                   int64     `json:"id"`
	Fecha                string    `json:"fecha"`
	Hora                 string    `json:"hora"`
	GuardaEntrega        string    `json:"guarda_entrega"`
	GuardaRecibe         string    `json:"guarda_recibe"`
	NovedadesFecha       string    `json:"novedades_fecha"`
	NovedadesHora        string    `json:"novedades_hora"`
	NovedadesDescripcion string    `json:"novedades_descripcion"`
	CreatedAt            time.Time `json:"created_at"`
}

type WorkstationReport struct {
	ID                int64     `json:"id"`
	NombrePuesto      string    `json:"nombre_puesto"`
	Responsabilidades string    `json:"responsabilidades"`
	Horario           string    `json:"horario"`
	Ubicacion         string    `json:"ubicacion"`
	Supervisor        string    `json:"supervisor"`
	CreatedAt         time.Time `json:"created_at"`
}

// IncidentReport leaves witnesses and actions nil when they were not reported.
type IncidentReport struct {
	ID                   int64     `json:"id"`
	FechaIncidente       string    `json:"fecha_incidente"`
	LugarIncidente       string    `json:"lugar_incidente"`
	DescripcionIncidente string    `json:"descripcion_incidente"`
	TestigosPresentes    *string   `json:"testigos_presentes"`
	AccionesTomadas      *string   `json:"acciones_tomadas"`
	CreatedAt            time.Time `json:"created_at"`
}
