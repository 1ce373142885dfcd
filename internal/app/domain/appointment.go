package domain

import "time"

// AppointmentEvent is the canonical appointment shape produced by provider
// normalizers and consumed by the event processor. It is never persisted.
type AppointmentEvent struct {
	CustomerName  string
	CustomerEmail string
	AppointmentAt time.Time
	Provider      string
	EventType     string
}
