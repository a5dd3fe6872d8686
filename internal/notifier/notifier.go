package notifier

import (
	model "auction-house/internal/models"
	"sync"
	"time"
)

// EventType identifies the kind of auction event being announced
type EventType string

const (
	EventBidPlaced          EventType = "bidPlaced"
	EventAuctionEnded       EventType = "auctionEnded"
	EventOrderOfferedToNext EventType = "orderOfferedToNext"
	EventAuctionUnsold      EventType = "auctionUnsold"
)

// Event is the envelope delivered to viewers of an auction
type Event struct {
	Type      EventType `json:"type"`
	AuctionID string    `json:"auction_id"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier announces auction events to connected viewers. The core has no
// knowledge of the transport behind it.
type Notifier interface {
	Publish(auctionID string, eventType EventType, payload any)
}

// AuctionSnapshot is the auction view carried on bid events
type AuctionSnapshot struct {
	AuctionID       string  `json:"auction_id"`
	CurrentPrice    float64 `json:"current_price"`
	CurrentWinnerID string  `json:"current_winner_id,omitempty"`
	TotalBids       int     `json:"total_bids"`
	Status          string  `json:"status"`
}

// BidPlacedPayload announces an admitted bid and the resolved auction state
type BidPlacedPayload struct {
	Bid     model.Bid       `json:"bid"`
	Auction AuctionSnapshot `json:"auction"`
}

// Close reasons carried on auctionEnded events
const (
	CloseReasonSold          = "sold"
	CloseReasonBuyNow        = "buy_now"
	CloseReasonNoBids        = "no_bids"
	CloseReasonReserveNotMet = "reserve_not_met"
)

// AuctionEndedPayload announces the outcome of an auction close
type AuctionEndedPayload struct {
	Auction         AuctionSnapshot `json:"auction"`
	Reason          string          `json:"reason"`
	WinnerID        string          `json:"winner_id,omitempty"`
	OrderID         string          `json:"order_id,omitempty"`
	PaymentDeadline *time.Time      `json:"payment_deadline,omitempty"`
}

// OrderOfferedPayload announces a payment-deadline fallback to the next bidder
type OrderOfferedPayload struct {
	AuctionID       string    `json:"auction_id"`
	NextBuyerID     string    `json:"next_buyer_id"`
	Amount          float64   `json:"amount"`
	OrderID         string    `json:"order_id"`
	PaymentDeadline time.Time `json:"payment_deadline"`
}

// Capture is a Notifier that records events in memory, for tests
type Capture struct {
	mu     sync.Mutex
	events []Event
}

// NewCapture creates an empty capture notifier
func NewCapture() *Capture {
	return &Capture{}
}

// Publish records the event
func (c *Capture) Publish(auctionID string, eventType EventType, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, Event{
		Type:      eventType,
		AuctionID: auctionID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
}

// Events returns a copy of everything published so far
func (c *Capture) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

// EventsFor returns published events for one auction, optionally filtered by type
func (c *Capture) EventsFor(auctionID string, types ...EventType) []Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Event
	for _, e := range c.events {
		if e.AuctionID != auctionID {
			continue
		}
		if len(types) == 0 {
			out = append(out, e)
			continue
		}
		for _, t := range types {
			if e.Type == t {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
