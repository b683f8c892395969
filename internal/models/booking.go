package models

import (
	"encoding/json"
	"time"
)

type BookingLocation struct {
	Division string `json:"division"`
	District string `json:"district"`
	City     string `json:"city"`
	Area     string `json:"area"`
	Address  string `json:"address"`
}

type Booking struct {
	ID            string          `json:"_id"`
	User          UserRef         `json:"user"`
	Service       ServiceRef      `json:"service"`
	DurationType  DurationType    `json:"durationType"`
	DurationValue int             `json:"durationValue"`
	Location      BookingLocation `json:"location"`
	StartDate     time.Time       `json:"startDate"`
	TotalCost     float64         `json:"totalCost"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ===============================
// Reference-or-embedded fields
// ===============================
//
// The backend returns booking.user and booking.service either as a bare id
// or as a populated object, depending on the endpoint. Call sites branch
// explicitly via Embedded() instead of poking at optional fields.

type UserRef struct {
	id       string
	embedded *User
}

func EmbeddedUser(u User) UserRef {
	return UserRef{id: u.ID, embedded: &u}
}

func UserID(id string) UserRef {
	return UserRef{id: id}
}

func (r UserRef) ID() string {
	return r.id
}

func (r UserRef) Embedded() (*User, bool) {
	return r.embedded, r.embedded != nil
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = UserRef{id: id}
		return nil
	}

	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return err
	}
	*r = UserRef{id: u.ID, embedded: &u}
	return nil
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.embedded != nil {
		return json.Marshal(r.embedded)
	}
	return json.Marshal(r.id)
}

type ServiceRef struct {
	id       string
	embedded *Service
}

func EmbeddedService(s Service) ServiceRef {
	return ServiceRef{id: s.ID, embedded: &s}
}

func ServiceID(id string) ServiceRef {
	return ServiceRef{id: id}
}

func (r ServiceRef) ID() string {
	return r.id
}

func (r ServiceRef) Embedded() (*Service, bool) {
	return r.embedded, r.embedded != nil
}

func (r *ServiceRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = ServiceRef{id: id}
		return nil
	}

	var s Service
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ServiceRef{id: s.ID, embedded: &s}
	return nil
}

func (r ServiceRef) MarshalJSON() ([]byte, error) {
	if r.embedded != nil {
		return json.Marshal(r.embedded)
	}
	return json.Marshal(r.id)
}
