package company

import "errors"

var ErrInvalidStatus = errors.New("invalid company status")

// Status is the tenant kill-switch: anything but StatusActive blocks every
// login and every authorized request of the company's users.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
