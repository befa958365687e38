package geofence

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hobbyclass/geo_checkin_system/internal/geo"
	"github.com/hobbyclass/geo_checkin_system/internal/models"
)

// Порог итоговой оценки, начиная с которого активность считается подозрительной
const suspiciousScoreThreshold = 30

// DetectLocationFraud оценивает показание геолокации на признаки спуфинга
// по истории предыдущих показаний того же пользователя (от старых к новым).
// Каждая сработавшая эвристика добавляет баллы, итог ограничен сверху сотней.
// Результат - только сигнал: решение о блокировке принимает вызывающая сторона.
func DetectLocationFraud(current models.LocationSample, history []models.LocationSample, device models.DeviceInfo) models.FraudAssessment {
	flags := []string{}
	score := 0

	// Невозможная скорость перемещения относительно последнего показания
	if len(history) > 0 {
		last := history[len(history)-1]
		hours := current.Timestamp.Sub(last.Timestamp).Hours()
		if hours > 0 {
			distanceKm := geo.DistanceMeters(current.Latitude, current.Longitude, last.Latitude, last.Longitude) / 1000
			speedKmh := distanceKm / hours

			if speedKmh > 1000 {
				flags = append(flags, fmt.Sprintf("Impossible travel speed: %d km/h", int(math.Round(speedKmh))))
				score += 50
			} else if speedKmh > 500 {
				flags = append(flags, fmt.Sprintf("Very high travel speed: %d km/h", int(math.Round(speedKmh))))
				score += 25
			}
		}
	}

	// Подозрительно идеальная точность
	if current.Accuracy < 1 {
		flags = append(flags, "Suspiciously perfect GPS accuracy")
		score += 15
	}

	// Огрубленные координаты. Легитимные фиксы с низкой точностью тоже сюда
	// попадают, поэтому вес сигнала небольшой и жесткой блокировки нет.
	if decimalPlaces(current.Latitude) < 4 || decimalPlaces(current.Longitude) < 4 {
		flags = append(flags, "Location coordinates appear rounded/simplified")
		score += 10
	}

	// Высокая точность при выключенных службах геолокации
	if !device.LocationServicesEnabled && current.Accuracy < 10 {
		flags = append(flags, "High accuracy location without location services enabled")
		score += 20
	}

	// Многократно повторяющиеся идентичные координаты
	identical := 0
	for _, prev := range history {
		if prev.Latitude == current.Latitude && prev.Longitude == current.Longitude {
			identical++
		}
	}
	if identical > 3 {
		flags = append(flags, "Multiple identical location reports")
		score += 15
	}

	// Частая смена источника координат среди последних показаний
	recent := history
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	if len(recent) > 0 && !containsSource(recent, current.Source) {
		if distinctSources(recent) > 2 {
			flags = append(flags, "Frequent location source changes")
			score += 10
		}
	}

	return models.FraudAssessment{
		SuspiciousActivity: score >= suspiciousScoreThreshold,
		FraudScore:         min(score, 100),
		Flags:              flags,
	}
}

// decimalPlaces возвращает число знаков после запятой в кратчайшей
// десятичной записи координаты. Клиентские библиотеки печатают значения
// с |x| < 1e-6 в экспоненциальной записи, в которой знаков после запятой нет.
func decimalPlaces(coord float64) int {
	if abs := math.Abs(coord); abs != 0 && abs < 1e-6 {
		return 0
	}
	s := strconv.FormatFloat(coord, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return len(s) - dot - 1
}

func containsSource(samples []models.LocationSample, source models.LocationSource) bool {
	for _, s := range samples {
		if s.Source == source {
			return true
		}
	}
	return false
}

func distinctSources(samples []models.LocationSample) int {
	seen := make(map[models.LocationSource]struct{}, len(samples))
	for _, s := range samples {
		seen[s.Source] = struct{}{}
	}
	return len(seen)
}
