package entity

import "time"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
// Bounds are inclusive and compared against the date component of
// appt_datetime; either bound may be nil.
type AppointmentFilter struct {
	From *time.Time
	To   *time.Time
}
