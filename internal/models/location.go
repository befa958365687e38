package models

import (
	"time"
)

// LocationSource - источник определения координат на устройстве
type LocationSource string

const (
	SourceGPS     LocationSource = "gps"
	SourceNetwork LocationSource = "network"
	SourcePassive LocationSource = "passive"
)

// IsValid проверяет, что источник входит в закрытый набор значений
func (s LocationSource) IsValid() bool {
	switch s {
	case SourceGPS, SourceNetwork, SourcePassive:
		return true
	}
	return false
}

// LocationQuality - уровень качества геоданных по точности и свежести
type LocationQuality string

const (
	QualityExcellent LocationQuality = "excellent"
	QualityGood      LocationQuality = "good"
	QualityFair      LocationQuality = "fair"
	QualityPoor      LocationQuality = "poor"
)

// LocationSample представляет одно показание геолокации, присланное клиентом
type LocationSample struct {
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	Accuracy       float64        `json:"accuracy"` // точность GPS в метрах
	Altitude       float64        `json:"altitude,omitempty"`
	Heading        float64        `json:"heading,omitempty"`
	Speed          float64        `json:"speed,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
	Source         LocationSource `json:"source"`
	PrivacyRounded bool           `json:"privacy_rounded"`
}

// DeviceInfo - сведения об устройстве, сопровождающие попытку чекина
type DeviceInfo struct {
	UserAgent               string `json:"user_agent,omitempty"`
	Platform                string `json:"platform,omitempty"`
	AppVersion              string `json:"app_version,omitempty"`
	LocationServicesEnabled bool   `json:"location_services_enabled"`
	LocationPermission      string `json:"location_permission,omitempty"`
}

// LocationQualityReport - результат проверки качества одного показания
type LocationQualityReport struct {
	IsValid bool            `json:"is_valid"`
	Quality LocationQuality `json:"quality"`
	Issues  []string        `json:"issues"`
}
