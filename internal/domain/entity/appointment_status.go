package entity

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	// StatusPending indicates an appointment awaiting confirmation.
	StatusPending AppointmentStatus = "PENDING"
	// StatusConfirmed indicates an appointment accepted by the vet.
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	// StatusCancelled indicates an appointment that will not take place.
	StatusCancelled AppointmentStatus = "CANCELLED"
	// StatusDone indicates a completed appointment.
	StatusDone AppointmentStatus = "DONE"
)

// String returns the string representation of the AppointmentStatus.
func (s AppointmentStatus) String() string {
	return string(s)
}

// IsValid checks if the AppointmentStatus is a valid value.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusDone:
		return true
	default:
		return false
	}
}
