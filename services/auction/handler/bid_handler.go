package handler

import (
	"net/http"

	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *MarketplaceHandler) PlaceBidHandler(c *gin.Context) {
	actor, ok := helpers.RequireActor(c, "PlaceBidHandler")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	placed, err := h.bidding.PlaceBid(auctionID, actor, req.Amount, req.MaxAutoBid)
	if err != nil {
		helpers.RespondServiceError(c, "PlaceBidHandler", err)
		return
	}

	resp := helpers.PlaceBidResponse{
		Bid:     helpers.NewBidResponse(placed.Bid),
		Auction: helpers.NewAuctionSummary(placed.Auction),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     placed.Bid.BidID,
		"auction_id": auctionID,
		"bidder_id":  actor,
		"amount":     placed.Bid.Amount,
		"automatic":  placed.Bid.IsAutomatic,
	})
}

// BuyNowHandler handles POST /auctions/:auction_id/buynow
func (h *MarketplaceHandler) BuyNowHandler(c *gin.Context) {
	actor, ok := helpers.RequireActor(c, "BuyNowHandler")
	if !ok {
		return
	}

	auctionID := c.Param("auction_id")
	placed, err := h.bidding.BuyNow(auctionID, actor)
	if err != nil {
		helpers.RespondServiceError(c, "BuyNowHandler", err)
		return
	}

	resp := helpers.PlaceBidResponse{
		Bid:     helpers.NewBidResponse(placed.Bid),
		Auction: helpers.NewAuctionSummary(placed.Auction),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "item purchased successfully")
	helpers.LogSuccess("BuyNowHandler", "item purchased successfully", map[string]any{
		"auction_id": auctionID,
		"buyer_id":   actor,
		"amount":     placed.Bid.Amount,
	})
}

// GetAuctionBidsHandler handles GET /auctions/:auction_id/bids
func (h *MarketplaceHandler) GetAuctionBidsHandler(c *gin.Context) {
	bids, err := h.bidding.GetBidsForAuction(c.Param("auction_id"))
	if err != nil {
		helpers.RespondServiceError(c, "GetAuctionBidsHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
}

// GetUserBidsHandler handles GET /users/:user_id/bids
func (h *MarketplaceHandler) GetUserBidsHandler(c *gin.Context) {
	bids, err := h.bidding.GetUserBids(c.Param("user_id"))
	if err != nil {
		helpers.RespondServiceError(c, "GetUserBidsHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
}

// GetUserWinningBidsHandler handles GET /users/:user_id/bids/winning
func (h *MarketplaceHandler) GetUserWinningBidsHandler(c *gin.Context) {
	bids, err := h.bidding.GetUserWinningBids(c.Param("user_id"))
	if err != nil {
		helpers.RespondServiceError(c, "GetUserWinningBidsHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "winning bids retrieved successfully")
}
