package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketflow-ledger-backend/model"
)

func TestCheckInAttendeeRecordsReceipt(t *testing.T) {
	e := sampleEvent()
	ticket, err := BuyTicket(context.Background(), e, &model.Payment{From: buyer, Value: 100}, buyer, &recordingTransferrer{})
	require.NoError(t, err)

	att, err := CheckInAttendee(ticket, e, creator)
	require.NoError(t, err)

	assert.Equal(t, e.EventID, att.EventID)
	assert.Equal(t, buyer, att.Attendee)
	assert.Equal(t, uint64(1), e.AttendanceCount)
}

func TestCheckInAttendeeRequiresCreator(t *testing.T) {
	e := sampleEvent()
	ticket := &model.Ticket{TicketID: 1, EventID: e.EventID, Owner: buyer}

	_, err := CheckInAttendee(ticket, e, buyer)
	assert.Equal(t, ErrUnauthorized, err)
	assert.Equal(t, uint64(0), e.AttendanceCount)
}

func TestCheckInAttendeeRequiresActiveEvent(t *testing.T) {
	e := sampleEvent()
	ticket := &model.Ticket{TicketID: 1, EventID: e.EventID, Owner: buyer}
	require.NoError(t, CancelEvent(e, creator))

	_, err := CheckInAttendee(ticket, e, creator)
	assert.Equal(t, ErrEventNotActive, err)
}

func TestCheckInAttendeeRejectsForeignTicket(t *testing.T) {
	e := sampleEvent()
	ticket := &model.Ticket{TicketID: 1, EventID: 42, Owner: buyer}

	_, err := CheckInAttendee(ticket, e, creator)
	assert.Equal(t, ErrWrongEvent, err)
}

// The same ticket may be checked in any number of times; each presentation
// counts and yields its own receipt.
func TestCheckInAttendeeAllowsRepeatedCheckIns(t *testing.T) {
	e := sampleEvent()
	ticket := &model.Ticket{TicketID: 1, EventID: e.EventID, Owner: buyer}

	first, err := CheckInAttendee(ticket, e, creator)
	require.NoError(t, err)
	second, err := CheckInAttendee(ticket, e, creator)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), e.AttendanceCount)
	assert.Equal(t, first.Attendee, second.Attendee)
}
