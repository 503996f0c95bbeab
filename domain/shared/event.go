package shared

import (
	"fmt"
	"time"
)

// DomainEvent An immutable record that a significant state change occurred.
// Events are created only after a successful aggregate transition and are
// consumed exactly once by an output port.
type DomainEvent interface {
	EventName() string
	OccurredOn() time.Time
	GetAggregateID() string
}

// ValidateEvent Sanity checks an event before it crosses a port boundary
func ValidateEvent(event DomainEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.EventName() == "" {
		return fmt.Errorf("event name cannot be empty")
	}
	if event.GetAggregateID() == "" {
		return fmt.Errorf("aggregate ID cannot be empty")
	}
	if event.OccurredOn().IsZero() {
		return fmt.Errorf("occurred on time cannot be zero")
	}
	return nil
}
