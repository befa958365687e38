package v1

import (
	"github.com/google/uuid"
	"github.com/hobbyclass/geo_checkin_system/internal/models"
	"github.com/hobbyclass/geo_checkin_system/internal/service"
)

// DTOToCheckInRequest преобразует DTO попытки чекина во входные данные сервиса.
// UUID уже проверены валидатором, поэтому MustParse безопасен.
func DTOToCheckInRequest(dto CheckInRequestDTO) *service.CheckInRequest {
	req := &service.CheckInRequest{
		BookingID:          uuid.MustParse(dto.BookingID),
		UserID:             dto.UserID,
		ClassID:            uuid.MustParse(dto.ClassID),
		Method:             models.CheckInMethod(dto.Method),
		InstructorApproved: dto.InstructorApproved,
		EmergencyReason:    dto.EmergencyReason,
		Device: models.DeviceInfo{
			UserAgent:               dto.Device.UserAgent,
			Platform:                dto.Device.Platform,
			AppVersion:              dto.Device.AppVersion,
			LocationServicesEnabled: dto.Device.LocationServicesEnabled,
			LocationPermission:      dto.Device.LocationPermission,
		},
	}
	if dto.Location != nil {
		req.Location = &models.LocationSample{
			Latitude:  dto.Location.Latitude,
			Longitude: dto.Location.Longitude,
			Accuracy:  dto.Location.Accuracy,
			Altitude:  dto.Location.Altitude,
			Heading:   dto.Location.Heading,
			Speed:     dto.Location.Speed,
			Timestamp: dto.Location.Timestamp,
			Source:    models.LocationSource(dto.Location.Source),
		}
	}
	return req
}

// ResultToCheckInResponse преобразует решение сервиса в DTO для ответа
func ResultToCheckInResponse(result *service.CheckInResult) *CheckInResponse {
	return &CheckInResponse{
		Allowed:            result.Allowed,
		AlreadyCheckedIn:   result.AlreadyCheckedIn,
		FailureReason:      result.FailureReason,
		Window:             result.Window,
		Quality:            result.Quality,
		Fraud:              result.Fraud,
		Validation:         result.Validation,
		AlternativeMethods: result.AlternativeMethods,
	}
}
