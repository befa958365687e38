package geofence

import (
	"math"
	"time"

	"github.com/hobbyclass/geo_checkin_system/internal/models"
)

const defaultOpensMinutesBefore = 10

// ComputeCheckInWindow вычисляет границы окна чекина для занятия.
// Окно открывается за opens_minutes_before до начала. Момент закрытия либо
// задан явно (closes_minutes_after при выключенном dynamic_closing), либо
// выводится из длительности занятия: до 60 минут - 5, до 120 - 10, дольше - 20.
// Обе границы включительны. Для прошедших или некорректных расписаний ошибок
// нет - окно просто отчитывается закрытым.
func ComputeCheckInWindow(schedule models.ClassSchedule, durationMinutes int, window *models.CheckInWindow, now time.Time) models.CheckInWindowStatus {
	start := schedule.Start()

	opensMinutesBefore := defaultOpensMinutesBefore
	if window != nil && window.OpensMinutesBefore > 0 {
		opensMinutesBefore = window.OpensMinutesBefore
	}

	var closesMinutesAfter int
	if window != nil && window.ClosesMinutesAfter > 0 && !window.DynamicClosing {
		closesMinutesAfter = window.ClosesMinutesAfter
	} else {
		switch {
		case durationMinutes <= 60:
			closesMinutesAfter = 5
		case durationMinutes <= 120:
			closesMinutesAfter = 10
		default:
			closesMinutesAfter = 20
		}
	}

	opensAt := start.Add(-time.Duration(opensMinutesBefore) * time.Minute)
	closesAt := start.Add(time.Duration(closesMinutesAfter) * time.Minute)

	status := models.CheckInWindowStatus{
		OpensAt:         opensAt,
		ClosesAt:        closesAt,
		IsCurrentlyOpen: !now.Before(opensAt) && !now.After(closesAt),
	}

	if now.Before(opensAt) {
		status.MinutesUntilOpens = ceilMinutes(opensAt.Sub(now))
	} else if !now.After(closesAt) {
		status.MinutesUntilCloses = ceilMinutes(closesAt.Sub(now))
	}

	return status
}

// ceilMinutes округляет длительность вверх до целых минут
func ceilMinutes(d time.Duration) int {
	return int(math.Ceil(d.Minutes()))
}
