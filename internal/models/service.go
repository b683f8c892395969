package models

import "time"

type Service struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	ImageURL         string    `json:"imageUrl"`
	ChargePerHour    float64   `json:"chargePerHour"`
	ChargePerDay     float64   `json:"chargePerDay"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Rate returns the unit charge for the given duration type.
func (s *Service) Rate(durationType DurationType) float64 {
	if durationType == DurationDays {
		return s.ChargePerDay
	}
	return s.ChargePerHour
}
