package models

import "time"

// User represents a participant in the marketplace
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// AuctionStatus enumerates the auction lifecycle states
type AuctionStatus string

const (
	AuctionPending   AuctionStatus = "pending"
	AuctionActive    AuctionStatus = "active"
	AuctionEnded     AuctionStatus = "ended"
	AuctionCancelled AuctionStatus = "cancelled"
)

// Auction represents a listing open for bidding
type Auction struct {
	AuctionID        string        `json:"auction_id"`
	SellerID         string        `json:"seller_id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Condition        string        `json:"condition"`
	StartingPrice    float64       `json:"starting_price"`
	CurrentPrice     float64       `json:"current_price"`
	MinimumIncrement float64       `json:"minimum_increment"`
	BuyNowPrice      float64       `json:"buy_now_price,omitempty"` // 0 = disabled
	ReservePrice     float64       `json:"reserve_price,omitempty"` // 0 = no reserve
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	Status           AuctionStatus `json:"status"`
	CurrentWinnerID  string        `json:"current_winner_id,omitempty"` // empty = no winner
	TotalBids        int           `json:"total_bids"`
	Watchers         []string      `json:"watchers,omitempty"`
	InterestedUsers  []string      `json:"interested_users,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`

	// Version guards concurrent updates: every successful write
	// increments it, and a stale write is rejected by the store.
	Version int64 `json:"-"`
}

// HasEnded reports whether the auction's end time has passed
func (a *Auction) HasEnded(now time.Time) bool {
	return now.After(a.EndTime)
}

// IsActive reports whether the auction is open for bids at the given time
func (a *Auction) IsActive(now time.Time) bool {
	return a.Status == AuctionActive && !a.StartTime.After(now) && a.EndTime.After(now)
}

// Bid represents a user's bid on an auction.
// Bid rows are append-only; only the IsWinning flag ever changes.
type Bid struct {
	BidID       string    `json:"bid_id"`
	AuctionID   string    `json:"auction_id"`
	BidderID    string    `json:"bidder_id"`
	Amount      float64   `json:"amount"`
	IsWinning   bool      `json:"is_winning"`
	IsAutomatic bool      `json:"is_automatic"`
	MaxAutoBid  float64   `json:"max_auto_bid,omitempty"` // ceiling, only meaningful when IsAutomatic
	CreatedAt   time.Time `json:"created_at"`
}

// OrderStatus enumerates the purchase-obligation lifecycle states
type OrderStatus string

const (
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderPaid           OrderStatus = "paid"
	OrderCancelled      OrderStatus = "cancelled"
	OrderShipped        OrderStatus = "shipped"
	OrderDelivered      OrderStatus = "delivered"
)

// Order represents the purchase obligation created when an auction closes
// with a winner. A cancelled order may be superseded by a new order for
// the next-highest bidder on the same auction.
type Order struct {
	OrderID         string      `json:"order_id"`
	AuctionID       string      `json:"auction_id"`
	BuyerID         string      `json:"buyer_id"`
	SellerID        string      `json:"seller_id"`
	Amount          float64     `json:"amount"`
	Status          OrderStatus `json:"status"`
	PaymentDeadline time.Time   `json:"payment_deadline"`
	TrackingNumber  string      `json:"tracking_number,omitempty"`
	ShippedAt       *time.Time  `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time  `json:"delivered_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Terminal reports whether the order has reached a final state
func (o *Order) Terminal() bool {
	return o.Status == OrderCancelled || o.Status == OrderDelivered
}
