package repository

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"fmt"
	"sort"
	"sync"
	"time"
)

// LedgerStore defines the durable storage interface for auctions, bids and
// orders. It is the single source of truth: services and schedulers hold no
// state between calls and recompute every decision from the store.
type LedgerStore interface {
	CreateAuction(a model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	// UpdateAuction writes an auction back only if the caller's Version
	// matches the stored one, returning the stored copy with the version
	// bumped. A mismatch yields ErrStoreConflict.
	UpdateAuction(a model.Auction) (model.Auction, error)
	ListAuctionsByStatus(status model.AuctionStatus) ([]model.Auction, error)
	FindExpiredActiveAuctions(now time.Time) ([]model.Auction, error)
	FindWonAuctions(bidderID string) ([]model.Auction, error)

	RecordBid(bid model.Bid) error
	GetBidsByAuction(auctionID string) ([]model.Bid, error)
	GetBidsByBidder(bidderID string) ([]model.Bid, error)
	// HighestBidExcluding returns the highest-amount bid on the auction not
	// placed by any of the excluded bidders, or ErrNoBids when none remain.
	HighestBidExcluding(auctionID string, excludedBidders []string) (model.Bid, error)
	// SetWinningBid clears every winning flag on the auction and marks the
	// single given bid row winning.
	SetWinningBid(auctionID, bidID string) error
	// SetWinningBidder marks all of one bidder's rows winning and every
	// other row not-winning.
	SetWinningBidder(auctionID, bidderID string) error
	ClearWinningBids(auctionID string) error

	CreateOrder(o model.Order) error
	GetOrder(orderID string) (model.Order, error)
	UpdateOrder(o model.Order) error
	ListOrdersByAuction(auctionID string) ([]model.Order, error)
	FindExpiredPendingOrders(now time.Time) ([]model.Order, error)
	GetOrdersByUser(userID string) ([]model.Order, error)
}

// MemoryLedger is a concurrency-safe in-memory implementation of LedgerStore
type MemoryLedger struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
	bids     map[string][]model.Bid   // key: auctionID -> bids in admission order
	orders   map[string]model.Order   // key: orderID
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
		orders:   make(map[string]model.Order),
	}
}

// CreateAuction stores a new auction with its version initialized
func (r *MemoryLedger) CreateAuction(a model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[a.AuctionID]; ok {
		return fmt.Errorf("create auction %s: already exists", a.AuctionID)
	}
	a.Version = 1
	r.auctions[a.AuctionID] = a
	return nil
}

// GetAuction returns the auction with the given id
func (r *MemoryLedger) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// UpdateAuction persists auction changes under optimistic concurrency control
func (r *MemoryLedger) UpdateAuction(a model.Auction) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.auctions[a.AuctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("update auction %s: %w", a.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if stored.Version != a.Version {
		return model.Auction{}, fmt.Errorf("update auction %s: version %d behind %d: %w",
			a.AuctionID, a.Version, stored.Version, auctionerrors.ErrStoreConflict)
	}
	a.Version++
	r.auctions[a.AuctionID] = a
	return a, nil
}

// ListAuctionsByStatus returns all auctions currently in the given status
func (r *MemoryLedger) ListAuctionsByStatus(status model.AuctionStatus) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Auction
	for _, a := range r.auctions {
		if a.Status == status {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// FindExpiredActiveAuctions returns active auctions whose end time has passed.
// The strict status filter keeps repeated sweeps idempotent.
func (r *MemoryLedger) FindExpiredActiveAuctions(now time.Time) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Auction
	for _, a := range r.auctions {
		if a.Status == model.AuctionActive && !a.EndTime.After(now) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndTime.Before(out[j].EndTime) })
	return out, nil
}

// FindWonAuctions returns ended auctions where the given user is the current winner
func (r *MemoryLedger) FindWonAuctions(bidderID string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Auction
	for _, a := range r.auctions {
		if a.Status == model.AuctionEnded && a.CurrentWinnerID == bidderID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndTime.After(out[j].EndTime) })
	return out, nil
}

// RecordBid appends a bid to its auction's history
func (r *MemoryLedger) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	return nil
}

// GetBidsByAuction returns all bids for an auction in admission order
func (r *MemoryLedger) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Bid(nil), r.bids[auctionID]...), nil
}

// GetBidsByBidder returns all bids placed by a user across auctions,
// newest first
func (r *MemoryLedger) GetBidsByBidder(bidderID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Bid
	for _, bids := range r.bids {
		for _, b := range bids {
			if b.BidderID == bidderID {
				out = append(out, b)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// HighestBidExcluding returns the top remaining bid once the given bidders
// are excluded
func (r *MemoryLedger) HighestBidExcluding(auctionID string, excludedBidders []string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	excluded := make(map[string]struct{}, len(excludedBidders))
	for _, id := range excludedBidders {
		excluded[id] = struct{}{}
	}

	var best model.Bid
	found := false
	for _, b := range r.bids[auctionID] {
		if _, skip := excluded[b.BidderID]; skip {
			continue
		}
		if !found || b.Amount > best.Amount {
			best = b
			found = true
		}
	}
	if !found {
		return model.Bid{}, fmt.Errorf("highest bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return best, nil
}

// SetWinningBid marks exactly one bid row winning
func (r *MemoryLedger) SetWinningBid(auctionID, bidID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bids := r.bids[auctionID]
	idx := -1
	for i := range bids {
		bids[i].IsWinning = false
		if bids[i].BidID == bidID {
			idx = i
		}
	}
	if idx < 0 {
		return fmt.Errorf("set winning bid %s for auction %s: %w", bidID, auctionID, auctionerrors.ErrBidNotFound)
	}
	bids[idx].IsWinning = true
	return nil
}

// SetWinningBidder marks all of one bidder's rows winning, everyone else's not
func (r *MemoryLedger) SetWinningBidder(auctionID, bidderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bids := r.bids[auctionID]
	for i := range bids {
		bids[i].IsWinning = bids[i].BidderID == bidderID
	}
	return nil
}

// ClearWinningBids clears every winning flag on the auction
func (r *MemoryLedger) ClearWinningBids(auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bids := r.bids[auctionID]
	for i := range bids {
		bids[i].IsWinning = false
	}
	return nil
}

// CreateOrder stores a new order
func (r *MemoryLedger) CreateOrder(o model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.OrderID]; ok {
		return fmt.Errorf("create order %s: already exists", o.OrderID)
	}
	r.orders[o.OrderID] = o
	return nil
}

// GetOrder returns the order with the given id
func (r *MemoryLedger) GetOrder(orderID string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, auctionerrors.ErrOrderNotFound)
	}
	return o, nil
}

// UpdateOrder persists order changes
func (r *MemoryLedger) UpdateOrder(o model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.OrderID]; !ok {
		return fmt.Errorf("update order %s: %w", o.OrderID, auctionerrors.ErrOrderNotFound)
	}
	r.orders[o.OrderID] = o
	return nil
}

// ListOrdersByAuction returns every order ever created for an auction in
// creation order
func (r *MemoryLedger) ListOrdersByAuction(auctionID string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Order
	for _, o := range r.orders {
		if o.AuctionID == auctionID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// FindExpiredPendingOrders returns pending-payment orders whose deadline passed
func (r *MemoryLedger) FindExpiredPendingOrders(now time.Time) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Order
	for _, o := range r.orders {
		if o.Status == model.OrderPendingPayment && !o.PaymentDeadline.After(now) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDeadline.Before(out[j].PaymentDeadline) })
	return out, nil
}

// GetOrdersByUser returns orders where the user is buyer or seller,
// newest first
func (r *MemoryLedger) GetOrdersByUser(userID string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Order
	for _, o := range r.orders {
		if o.BuyerID == userID || o.SellerID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
