package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/guard-reports-be/internal/models"
)

const (
	shiftColumns       = `id, fecha, hora, guarda_entrega, guarda_recibe, novedades_fecha, novedades_hora, novedades_descripcion, created_at`
	workstationColumns = `id, nombre_puesto, responsabilidades, horario, ubicacion, supervisor, created_at`
	incidentColumns    = `id, fecha_incidente, lugar_incidente, descripcion_incidente, testigos_presentes, acciones_tomadas, created_at`
)

func (s *Store) CreateShiftReport(ctx context.Context, r models.ShiftReport) (int64, error) {
	return s.insertID(ctx, `
		INSERT INTO reportes (fecha, hora, guarda_entrega, guarda_recibe, novedades_fecha, novedades_hora, novedades_descripcion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		r.Fecha, r.Hora, r.GuardaEntrega, r.GuardaRecibe, r.NovedadesFecha, r.NovedadesHora, r.NovedadesDescripcion)
}

func (s *Store) ListShiftReports(ctx context.Context) ([]models.ShiftReport, error) {
	return list(ctx, s, `SELECT `+shiftColumns+` FROM reportes ORDER BY id`, scanShiftReport)
}

func (s *Store) GetShiftReport(ctx context.Context, id int64) (models.ShiftReport, error) {
	return scanShiftReport(s.pool.QueryRow(ctx, `SELECT `+shiftColumns+` FROM reportes WHERE id = $1`, id))
}

func (s *Store) CreateWorkstationReport(ctx context.Context, r models.WorkstationReport) (int64, error) {
	return s.insertID(ctx, `
		INSERT INTO puestos_trabajo (nombre_puesto, responsabilidades, horario, ubicacion, supervisor)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		r.NombrePuesto, r.Responsabilidades, r.Horario, r.Ubicacion, r.Supervisor)
}

func (s *Store) ListWorkstationReports(ctx context.Context) ([]models.WorkstationReport, error) {
	return list(ctx, s, `SELECT `+workstationColumns+` FROM puestos_trabajo ORDER BY id`, scanWorkstationReport)
}

func (s *Store) GetWorkstationReport(ctx context.Context, id int64) (models.WorkstationReport, error) {
	return scanWorkstationReport(s.pool.QueryRow(ctx, `SELECT `+workstationColumns+` FROM puestos_trabajo WHERE id = $1`, id))
}

func (s *Store) CreateIncidentReport(ctx context.Context, r models.IncidentReport) (int64, error) {
	return s.insertID(ctx, `
		INSERT INTO reporte_incidente (fecha_incidente, lugar_incidente, descripcion_incidente, testigos_presentes, acciones_tomadas)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		r.FechaIncidente, r.LugarIncidente, r.DescripcionIncidente, r.TestigosPresentes, r.AccionesTomadas)
}

func (s *Store) ListIncidentReports(ctx context.Context) ([]models.IncidentReport, error) {
	return list(ctx, s, `SELECT `+incidentColumns+` FROM reporte_incidente ORDER BY id`, scanIncidentReport)
}

func (s *Store) GetIncidentReport(ctx context.Context, id int64) (models.IncidentReport, error) {
	return scanIncidentReport(s.pool.QueryRow(ctx, `SELECT `+incidentColumns+` FROM reporte_incidente WHERE id = $1`, id))
}

func list[T any](ctx context.Context, s *Store, query string, scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func scanShiftReport(row pgx.Row) (models.ShiftReport, error) {
	var r models.ShiftReport
	if err := row.Scan(&r.ID, &r.Fecha, &r.Hora, &r.GuardaEntrega, &r.GuardaRecibe, &r.NovedadesFecha, &r.NovedadesHora, &r.NovedadesDescripcion, &r.CreatedAt); err != nil {
		return models.ShiftReport{}, translate(err)
	}
	return r, nil
}

func scanWorkstationReport(row pgx.Row) (models.WorkstationReport, error) {
	var r models.WorkstationReport
	if err := row.Scan(&r.ID, &r.NombrePuesto, &r.Responsabilidades, &r.Horario, &r.Ubicacion, &r.Supervisor, &r.CreatedAt); err != nil {
		return models.WorkstationReport{}, translate(err)
	}
	return r, nil
}

func scanIncidentReport(row pgx.Row) (models.IncidentReport, error) {
	var r models.IncidentReport
	if err := row.Scan(&r.ID, &r.FechaIncidente, &r.LugarIncidente, &r.DescripcionIncidente, &r.TestigosPresentes, &r.AccionesTomadas, &r.CreatedAt); err != nil {
		return models.IncidentReport{}, translate(err)
	}
	return r, nil
}
