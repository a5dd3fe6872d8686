package server

import (
	"auction-house/internal/notifier"
	handler "auction-house/services/auction/handler"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(h *handler.MarketplaceHandler, hub *notifier.Hub) *gin.Engine {
	router := gin.New() // no default middleware, logging and recovery are explicit

	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", h.CreateAuctionHandler)
		auctions.GET("", h.ListAuctionsHandler)
		auctions.GET("/:auction_id", h.GetAuctionHandler)
		auctions.POST("/:auction_id/cancel", h.CancelAuctionHandler)
		auctions.POST("/:auction_id/watch", h.WatchAuctionHandler)
		auctions.POST("/:auction_id/bids", h.PlaceBidHandler)
		auctions.GET("/:auction_id/bids", h.GetAuctionBidsHandler)
		auctions.POST("/:auction_id/buynow", h.BuyNowHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/bids", h.GetUserBidsHandler)
		users.GET("/:user_id/bids/winning", h.GetUserWinningBidsHandler)
		users.GET("/:user_id/auctions/won", h.GetWonAuctionsHandler)
		users.GET("/:user_id/orders", h.GetUserOrdersHandler)
	}

	orders := router.Group("/orders")
	{
		orders.POST("/:order_id/pay", h.PayOrderHandler)
		orders.POST("/:order_id/ship", h.ShipOrderHandler)
		orders.POST("/:order_id/deliver", h.ConfirmDeliveryHandler)
	}

	if hub != nil {
		router.GET("/ws/auctions/:auction_id", func(c *gin.Context) {
			auctionID := c.Param("auction_id")
			viewerID := c.Query("viewer_id")
			if err := hub.Subscribe(c.Writer, c.Request, auctionID, viewerID); err != nil {
				utils.Warn("websocket upgrade failed", map[string]any{
					"auction_id": auctionID,
					"error":      err.Error(),
				})
			}
		})
	}

	return router
}
