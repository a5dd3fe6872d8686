package auctionerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrNoBids          = errors.New("no bids found for auction")

	// ErrStoreConflict signals a concurrent write to the same auction;
	// callers retry by re-reading and recomputing from the store.
	ErrStoreConflict = errors.New("conflicting concurrent update")
)

// Business logic errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrBidAboveBuyNow    = errors.New("bid meets buy now price, use buy now instead")
	ErrNotActive         = errors.New("auction is not active")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrOwnAuction        = errors.New("cannot bid on your own auction")
	ErrBuyNowUnavailable = errors.New("buy now not available for this auction")
	ErrAuctionHasBids    = errors.New("auction already has bids")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrInvalidAuction    = errors.New("invalid auction")
	ErrInvalidOrderState = errors.New("order is not in a valid state for this action")
)

// BidTooLow carries the computed minimum so callers can retry with a
// corrected amount. It matches ErrBidTooLow under errors.Is.
type BidTooLow struct {
	MinimumBid float64
}

func (e *BidTooLow) Error() string {
	return fmt.Sprintf("bid must be at least %.2f", e.MinimumBid)
}

func (e *BidTooLow) Unwrap() error { return ErrBidTooLow }

