package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the authenticated actor's id, injected by the
// gateway in front of this service. Auth mechanics are out of scope here.
const UserIDHeader = "X-User-ID"

// ActorID returns the acting user's id, or empty when the header is absent
func ActorID(c *gin.Context) string {
	return c.GetHeader(UserIDHeader)
}

// RequireActor extracts the acting user and rejects the request when the
// identity header is missing.
func RequireActor(c *gin.Context, handlerName string) (string, bool) {
	actor := ActorID(c)
	if actor == "" {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing "+UserIDHeader+" header"), "missing user identity")
		utils.Warn(handlerName+": missing user identity", map[string]any{"path": c.FullPath()})
		return "", false
	}
	return actor, true
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrBidAboveBuyNow):
		return http.StatusBadRequest, "bid meets buy now price, use buy now instead"
	case errors.Is(err, auctionerrors.ErrNotActive):
		return http.StatusBadRequest, "auction is not active"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusBadRequest, "auction has ended"
	case errors.Is(err, auctionerrors.ErrBuyNowUnavailable):
		return http.StatusBadRequest, "buy now not available for this auction"
	case errors.Is(err, auctionerrors.ErrAuctionHasBids):
		return http.StatusBadRequest, "auction already has bids"
	case errors.Is(err, auctionerrors.ErrOwnAuction):
		return http.StatusForbidden, "cannot bid on your own auction"
	case errors.Is(err, auctionerrors.ErrNotAuthorized):
		return http.StatusForbidden, "not authorized"
	case errors.Is(err, auctionerrors.ErrInvalidBid),
		errors.Is(err, auctionerrors.ErrInvalidAuction),
		errors.Is(err, auctionerrors.ErrInvalidOrderState):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrStoreConflict):
		return http.StatusServiceUnavailable, "concurrent update conflict, please retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondServiceError writes the mapped error response. Bid-too-low
// rejections additionally carry the computed minimum so the caller can
// retry with a corrected amount.
func RespondServiceError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)

	var tooLow *auctionerrors.BidTooLow
	if errors.As(err, &tooLow) {
		c.JSON(status, gin.H{
			"status":      status,
			"message":     message,
			"error":       err.Error(),
			"minimum_bid": tooLow.MinimumBid,
		})
	} else {
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	}

	utils.Warn(handlerName+": request rejected", map[string]any{
		"status": status,
		"error":  err.Error(),
	})
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
