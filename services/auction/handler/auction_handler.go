package handler

import (
	"net/http"
	"time"

	auctionsvc "auction-house/internal/auctionService"
	bidding "auction-house/internal/biddingService"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	Create(p auctionsvc.CreateParams) (model.Auction, error)
	Get(auctionID string) (model.Auction, error)
	ListByStatus(status model.AuctionStatus) ([]model.Auction, error)
	Cancel(auctionID, actorID string) (model.Auction, error)
	Watch(auctionID, userID string) (model.Auction, error)
}

type BiddingServiceInterface interface {
	PlaceBid(auctionID, bidderID string, amount, maxAutoBid float64) (bidding.PlacedBid, error)
	BuyNow(auctionID, bidderID string) (bidding.PlacedBid, error)
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
	GetUserBids(userID string) ([]model.Bid, error)
	GetUserWinningBids(userID string) ([]model.Bid, error)
	GetWonAuctions(userID string) ([]model.Auction, error)
}

type OrderServiceInterface interface {
	Pay(orderID, actorID string) (model.Order, error)
	Ship(orderID, actorID, trackingNumber string) (model.Order, error)
	ConfirmDelivery(orderID, actorID string) (model.Order, error)
	ListForUser(userID string) ([]model.Order, error)
}

// MarketplaceHandler exposes the auction, bidding and order operations
// over HTTP
type MarketplaceHandler struct {
	auctions AuctionServiceInterface
	bidding  BiddingServiceInterface
	orders   OrderServiceInterface
}

func NewMarketplaceHandler(auctions AuctionServiceInterface, bids BiddingServiceInterface, orders OrderServiceInterface) *MarketplaceHandler {
	return &MarketplaceHandler{
		auctions: auctions,
		bidding:  bids,
		orders:   orders,
	}
}

// CreateAuctionHandler handles POST /auctions
func (h *MarketplaceHandler) CreateAuctionHandler(c *gin.Context) {
	actor, ok := helpers.RequireActor(c, "CreateAuctionHandler")
	if !ok {
		return
	}

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	a, err := h.auctions.Create(auctionsvc.CreateParams{
		SellerID:         actor,
		Title:            req.Title,
		Description:      req.Description,
		Condition:        req.Condition,
		StartingPrice:    req.StartingPrice,
		MinimumIncrement: req.MinimumIncrement,
		BuyNowPrice:      req.BuyNowPrice,
		ReservePrice:     req.ReservePrice,
		EndTime:          endTime,
	})
	if err != nil {
		helpers.RespondServiceError(c, "CreateAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, a, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": a.AuctionID,
		"seller_id":  actor,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *MarketplaceHandler) GetAuctionHandler(c *gin.Context) {
	a, err := h.auctions.Get(c.Param("auction_id"))
	if err != nil {
		helpers.RespondServiceError(c, "GetAuctionHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, a, "auction retrieved successfully")
}

// ListAuctionsHandler handles GET /auctions?status=active
func (h *MarketplaceHandler) ListAuctionsHandler(c *gin.Context) {
	status := model.AuctionStatus(c.DefaultQuery("status", string(model.AuctionActive)))

	auctions, err := h.auctions.ListByStatus(status)
	if err != nil {
		helpers.RespondServiceError(c, "ListAuctionsHandler", err)
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// CancelAuctionHandler handles POST /auctions/:auction_id/cancel
func (h *MarketplaceHandler) CancelAuctionHandler(c *gin.Context) {
	actor, ok := helpers.RequireActor(c, "CancelAuctionHandler")
	if !ok {
		return
	}

	a, err := h.auctions.Cancel(c.Param("auction_id"), actor)
	if err != nil {
		helpers.RespondServiceError(c, "CancelAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{
		"auction_id": a.AuctionID,
		"seller_id":  actor,
	})
}

// WatchAuctionHandler handles POST /auctions/:auction_id/watch
func (h *MarketplaceHandler) WatchAuctionHandler(c *gin.Context) {
	actor, ok := helpers.RequireActor(c, "WatchAuctionHandler")
	if !ok {
		return
	}

	a, err := h.auctions.Watch(c.Param("auction_id"), actor)
	if err != nil {
		helpers.RespondServiceError(c, "WatchAuctionHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionSummary(a), "watching auction")
}

// GetWonAuctionsHandler handles GET /users/:user_id/auctions/won
func (h *MarketplaceHandler) GetWonAuctionsHandler(c *gin.Context) {
	auctions, err := h.bidding.GetWonAuctions(c.Param("user_id"))
	if err != nil {
		helpers.RespondServiceError(c, "GetWonAuctionsHandler", err)
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "won auctions retrieved successfully")
}
