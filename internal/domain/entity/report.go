package entity

import (
	"fmt"
	"time"
)

// DateLayout formato de fechas de calendario en la API (report_date, start_date, ...).
const DateLayout = "2006-01-02"

// DailyProgressReport es el reporte diario de avance de un Site Engineer. Inmutable.
type DailyProgressReport struct {
	ID            string
	ProjectID     string
	EngineerID    string
	EngineerEmail string // solo en lecturas
	ReportDate    time.Time
	Content       string
	CreatedAt     time.Time
}

// ReportPeriod filtro temporal de reportes.
type ReportPeriod string

const (
	PeriodNone  ReportPeriod = ""
	PeriodDay   ReportPeriod = "day"
	PeriodMonth ReportPeriod = "month"
	PeriodYear  ReportPeriod = "year"
)

// ParseReportPeriod valida el valor del query param period.
func ParseReportPeriod(s string) (ReportPeriod, error) {
	p := ReportPeriod(s)
	switch p {
	case PeriodNone, PeriodDay, PeriodMonth, PeriodYear:
		return p, nil
	}
	return "", fmt.Errorf("period debe ser day, month o year")
}

// Range devuelve el intervalo semiabierto [from, to) de fechas que cubre el periodo
// alrededor de ref. ok es false para PeriodNone (sin restricción).
func (p ReportPeriod) Range(ref time.Time) (from, to time.Time, ok bool) {
	y, m, d := ref.Date()
	switch p {
	case PeriodDay:
		from = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 0, 1), true
	case PeriodMonth:
		from = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, 0), true
	case PeriodYear:
		from = time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0), true
	}
	return time.Time{}, time.Time{}, false
}

// ReportFilter criterios de búsqueda de reportes de un proyecto.
type ReportFilter struct {
	ProjectID string
	From      *time.Time // inclusive
	To        *time.Time // exclusivo
}
