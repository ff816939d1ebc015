package ledger

import (
	"context"
	"errors"

	"ticketflow-ledger-backend/model"
)

// recordingTransferrer captures every transfer so tests can assert on the
// exact money movement an operation produced.
type recordingTransferrer struct {
	transfers []transfer
	fail      error
}

type transfer struct {
	from, to string
	amount   uint64
}

func (r *recordingTransferrer) Transfer(_ context.Context, from, to string, amount uint64) error {
	if r.fail != nil {
		return r.fail
	}
	r.transfers = append(r.transfers, transfer{from: from, to: to, amount: amount})
	return nil
}

var errNoFunds = errors.New("insufficient funds")

const (
	creator = "CREATOR7MKSGYHGXXXVH4LRDHKJPJ7CXWOCG4ULHTNI3QEBMG63H"
	buyer   = "BUYER6MQOIOFUP6YULNPNOFHLUVXLEAL3GBYVMP7WHFPMEBUA6MX"
	friend  = "FRIEND5ITDYDMKBCUTAEI54L5GMQ5TUIBSLEKWLPVNE2AW5QZ4ZM"
)

func sampleEvent() *model.Event {
	e := NewEvent(creator, EventInput{
		MaxTickets:     3,
		PricePerTicket: 100,
	})
	e.EventID = 1
	return e
}
