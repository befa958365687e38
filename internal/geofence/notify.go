package geofence

import (
	"time"

	"github.com/hobbyclass/geo_checkin_system/internal/models"
)

// Запас к известному времени в пути, минуты
const travelBufferMinutes = 30

// Буфер до начала занятия при неизвестном времени в пути, минуты
const defaultTravelBufferMinutes = 120

// ScheduleLocationNotifications рассчитывает моменты напоминаний перед
// занятием. travelTimeMinutes <= 0 означает, что время в пути неизвестно:
// тогда первое напоминание уходит за два часа до начала, а напоминание
// "вы подъезжаете" не планируется вовсе.
func ScheduleLocationNotifications(schedule models.ClassSchedule, window *models.CheckInWindow, travelTimeMinutes int) models.NotificationPlan {
	start := schedule.Start()

	opensMinutesBefore := defaultOpensMinutesBefore
	if window != nil && window.OpensMinutesBefore > 0 {
		opensMinutesBefore = window.OpensMinutesBefore
	}
	checkInOpens := start.Add(-time.Duration(opensMinutesBefore) * time.Minute)

	travelBuffer := defaultTravelBufferMinutes
	if travelTimeMinutes > 0 {
		travelBuffer = travelTimeMinutes + travelBufferMinutes
	}

	plan := models.NotificationPlan{
		InitialNotification:         start.Add(-time.Duration(travelBuffer) * time.Minute),
		CheckInReminderNotification: checkInOpens.Add(5 * time.Minute),
	}

	if travelTimeMinutes > 0 {
		approaching := start.Add(-30 * time.Minute)
		plan.ApproachingVenueNotification = &approaching
	}

	return plan
}
