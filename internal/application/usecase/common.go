package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/Hospital-api/internal/domain"
)

func notFound(what, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, what, id)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidInput}, args...)...)
}

// DayRange convierte una fecha YYYY-MM-DD en el rango [inicio, fin) de ese día en loc.
func DayRange(date string, loc *time.Location) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("fecha %q (se espera YYYY-MM-DD)", date)
	}
	return day, day.AddDate(0, 0, 1), nil
}

// Today devuelve la fecha actual (YYYY-MM-DD) en loc.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format("2006-01-02")
}
