package ledger

import (
	"ticketflow-ledger-backend/model"
)

// CheckInAttendee records the ticket holder's arrival at an active event.
// Only the creator may check attendees in; the ticket is read, not
// consumed, and may be presented again. There is no duplicate detection:
// every check-in increments the count and yields a fresh receipt.
func CheckInAttendee(t *model.Ticket, e *model.Event, caller string) (*model.Attendance, error) {
	if !e.IsActive {
		return nil, ErrEventNotActive
	}
	if caller != e.Creator {
		return nil, ErrUnauthorized
	}
	if t.EventID != e.EventID {
		return nil, ErrWrongEvent
	}

	e.AttendanceCount++
	return &model.Attendance{
		EventID:  t.EventID,
		Attendee: t.Owner,
	}, nil
}
