package handler

import (
	"net/http"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// PayOrderHandler handles POST /orders/:order_id/pay
func (h *MarketplaceHandler) PayOrderHandler(c *gin.Context) {
	actor, ok := helpers.RequireActor(c, "PayOrderHandler")
	if !ok {
		return
	}

	o, err := h.orders.Pay(c.Param("order_id"), actor)
	if err != nil {
		helpers.RespondServiceError(c, "PayOrderHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, o, "order marked as paid")
	helpers.LogSuccess("PayOrderHandler", "order marked as paid", map[string]any{
		"order_id": o.OrderID,
		"buyer_id": actor,
		"amount":   o.Amount,
	})
}

// ShipOrderHandler handles POST /orders/:order_id/ship
func (h *MarketplaceHandler) ShipOrderHandler(c *gin.Context) {
	actor, ok := helpers.RequireActor(c, "ShipOrderHandler")
	if !ok {
		return
	}

	var req helpers.ShipOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ShipOrderHandler", err)
		return
	}

	o, err := h.orders.Ship(c.Param("order_id"), actor, req.TrackingNumber)
	if err != nil {
		helpers.RespondServiceError(c, "ShipOrderHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, o, "order marked as shipped")
	helpers.LogSuccess("ShipOrderHandler", "order marked as shipped", map[string]any{
		"order_id":        o.OrderID,
		"seller_id":       actor,
		"tracking_number": o.TrackingNumber,
	})
}

// ConfirmDeliveryHandler handles POST /orders/:order_id/deliver
func (h *MarketplaceHandler) ConfirmDeliveryHandler(c *gin.Context) {
	actor, ok := helpers.RequireActor(c, "ConfirmDeliveryHandler")
	if !ok {
		return
	}

	o, err := h.orders.ConfirmDelivery(c.Param("order_id"), actor)
	if err != nil {
		helpers.RespondServiceError(c, "ConfirmDeliveryHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, o, "order marked as delivered")
	helpers.LogSuccess("ConfirmDeliveryHandler", "order marked as delivered", map[string]any{
		"order_id": o.OrderID,
		"buyer_id": actor,
	})
}

// GetUserOrdersHandler handles GET /users/:user_id/orders
func (h *MarketplaceHandler) GetUserOrdersHandler(c *gin.Context) {
	orders, err := h.orders.ListForUser(c.Param("user_id"))
	if err != nil {
		helpers.RespondServiceError(c, "GetUserOrdersHandler", err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	utils.JSONResponse(c, http.StatusOK, orders, "orders retrieved successfully")
}
