package model

// Ticket is a transferable proof of purchase bound to one event. The
// purchase price is frozen at issuance so refunds settle against what was
// actually paid, not the current price.
type Ticket struct {
	TicketID      int64  `json:"ticket_id,omitempty"`
	EventID       int64  `json:"event_id,omitempty"`
	Owner         string `json:"owner,omitempty"`
	PurchasePrice uint64 `json:"purchase_price"`
}

// Payment is the value a caller attaches to a purchase or refund. Only the
// owed amount is split off; any excess stays with the payer.
type Payment struct {
	From  string `json:"from,omitempty"`
	Value uint64 `json:"value"`
}
