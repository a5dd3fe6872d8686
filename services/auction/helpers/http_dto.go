package helpers

import (
	model "auction-house/internal/models"
	"time"
)

// Request DTOs. The acting user is never part of a body; it comes from the
// X-User-ID header the gateway injects.
type CreateAuctionRequest struct {
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description"`
	Condition        string  `json:"condition"`
	StartingPrice    float64 `json:"starting_price" binding:"required,gte=0"`
	MinimumIncrement float64 `json:"minimum_increment" binding:"omitempty,gte=0.01"`
	BuyNowPrice      float64 `json:"buy_now_price" binding:"omitempty,gt=0"`
	ReservePrice     float64 `json:"reserve_price" binding:"omitempty,gte=0"`
	EndTime          string  `json:"end_time" binding:"required"` // RFC 3339
}

type PlaceBidRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	MaxAutoBid float64 `json:"max_auto_bid" binding:"omitempty,gt=0"`
}

type ShipOrderRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

// Response DTOs
type BidResponse struct {
	BidID       string  `json:"bid_id"`
	AuctionID   string  `json:"auction_id"`
	BidderID    string  `json:"bidder_id"`
	Amount      float64 `json:"amount"`
	IsWinning   bool    `json:"is_winning"`
	IsAutomatic bool    `json:"is_automatic"`
	CreatedAt   string  `json:"created_at"`
}

type AuctionSummary struct {
	AuctionID       string  `json:"auction_id"`
	CurrentPrice    float64 `json:"current_price"`
	CurrentWinnerID string  `json:"current_winner_id,omitempty"`
	Status          string  `json:"status"`
	TotalBids       int     `json:"total_bids"`
}

type PlaceBidResponse struct {
	Bid     BidResponse    `json:"bid"`
	Auction AuctionSummary `json:"auction"`
}

// NewBidResponse maps a bid model to its response shape. The auto-bid
// ceiling is deliberately omitted: ceilings are sealed.
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:       b.BidID,
		AuctionID:   b.AuctionID,
		BidderID:    b.BidderID,
		Amount:      b.Amount,
		IsWinning:   b.IsWinning,
		IsAutomatic: b.IsAutomatic,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewBidResponses maps a bid list, never returning nil
func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}

// NewAuctionSummary maps an auction to the compact view bid responses carry
func NewAuctionSummary(a model.Auction) AuctionSummary {
	return AuctionSummary{
		AuctionID:       a.AuctionID,
		CurrentPrice:    a.CurrentPrice,
		CurrentWinnerID: a.CurrentWinnerID,
		Status:          string(a.Status),
		TotalBids:       a.TotalBids,
	}
}
