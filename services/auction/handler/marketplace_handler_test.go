package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	auctionsvc "auction-house/internal/auctionService"
	bidding "auction-house/internal/biddingService"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *MockAuctionServiceInterface, *MockBiddingServiceInterface, *MockOrderServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	auctions := NewMockAuctionServiceInterface(ctrl)
	bids := NewMockBiddingServiceInterface(ctrl)
	orders := NewMockOrderServiceInterface(ctrl)
	h := NewMarketplaceHandler(auctions, bids, orders)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions", h.CreateAuctionHandler)
	router.GET("/auctions/:auction_id", h.GetAuctionHandler)
	router.POST("/auctions/:auction_id/cancel", h.CancelAuctionHandler)
	router.POST("/auctions/:auction_id/bids", h.PlaceBidHandler)
	router.POST("/auctions/:auction_id/buynow", h.BuyNowHandler)
	router.GET("/auctions/:auction_id/bids", h.GetAuctionBidsHandler)
	router.POST("/orders/:order_id/pay", h.PayOrderHandler)
	router.POST("/orders/:order_id/ship", h.ShipOrderHandler)
	router.POST("/orders/:order_id/deliver", h.ConfirmDeliveryHandler)
	return router, auctions, bids, orders
}

func doJSON(t *testing.T, router *gin.Engine, method, path, actor string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set(helpers.UserIDHeader, actor)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	router, _, bids, _ := newTestRouter(t)
	now := time.Now().UTC()

	tests := []struct {
		name           string
		actor          string
		auctionID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateResp   func(t *testing.T, resp map[string]any)
	}{
		{
			name:        "success_manual_bid",
			actor:       "user1",
			auctionID:   "auction1",
			requestBody: helpers.PlaceBidRequest{Amount: 110},
			mockSetup: func() {
				bids.EXPECT().
					PlaceBid("auction1", "user1", 110.0, 0.0).
					Return(bidding.PlacedBid{
						Bid: model.Bid{
							BidID: uuid.NewString(), AuctionID: "auction1", BidderID: "user1",
							Amount: 110, IsWinning: true, CreatedAt: now,
						},
						Auction: model.Auction{
							AuctionID: "auction1", CurrentPrice: 110, CurrentWinnerID: "user1",
							Status: model.AuctionActive, TotalBids: 1,
						},
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateResp: func(t *testing.T, resp map[string]any) {
				data := resp["data"].(map[string]any)
				bid := data["bid"].(map[string]any)
				require.Equal(t, "user1", bid["bidder_id"])
				require.Equal(t, 110.0, bid["amount"])
				require.Equal(t, true, bid["is_winning"])
				// ceilings are sealed: the response never carries one
				require.NotContains(t, bid, "max_auto_bid")

				auction := data["auction"].(map[string]any)
				require.Equal(t, 110.0, auction["current_price"])
				require.Equal(t, "user1", auction["current_winner_id"])
			},
		},
		{
			name:        "success_with_ceiling",
			actor:       "user2",
			auctionID:   "auction2",
			requestBody: helpers.PlaceBidRequest{Amount: 110, MaxAutoBid: 200},
			mockSetup: func() {
				bids.EXPECT().
					PlaceBid("auction2", "user2", 110.0, 200.0).
					Return(bidding.PlacedBid{
						Bid: model.Bid{
							BidID: uuid.NewString(), AuctionID: "auction2", BidderID: "user2",
							Amount: 110, IsAutomatic: true, MaxAutoBid: 200, CreatedAt: now,
						},
						Auction: model.Auction{AuctionID: "auction2", CurrentPrice: 110, Status: model.AuctionActive},
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateResp: func(t *testing.T, resp map[string]any) {
				bid := resp["data"].(map[string]any)["bid"].(map[string]any)
				require.Equal(t, true, bid["is_automatic"])
				require.NotContains(t, bid, "max_auto_bid")
			},
		},
		{
			name:           "missing_identity_header",
			actor:          "",
			auctionID:      "auction3",
			requestBody:    helpers.PlaceBidRequest{Amount: 110},
			mockSetup:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "missing user identity",
		},
		{
			name:           "invalid_json",
			actor:          "user1",
			auctionID:      "auction4",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "zero_amount",
			actor:          "user1",
			auctionID:      "auction5",
			requestBody:    helpers.PlaceBidRequest{Amount: 0},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "bid_too_low_carries_minimum",
			actor:       "user1",
			auctionID:   "auction6",
			requestBody: helpers.PlaceBidRequest{Amount: 50},
			mockSetup: func() {
				bids.EXPECT().
					PlaceBid("auction6", "user1", 50.0, 0.0).
					Return(bidding.PlacedBid{}, &auctionerrors.BidTooLow{MinimumBid: 105})
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
			validateResp: func(t *testing.T, resp map[string]any) {
				require.Equal(t, 105.0, resp["minimum_bid"])
			},
		},
		{
			name:        "own_auction",
			actor:       "seller",
			auctionID:   "auction7",
			requestBody: helpers.PlaceBidRequest{Amount: 110},
			mockSetup: func() {
				bids.EXPECT().
					PlaceBid("auction7", "seller", 110.0, 0.0).
					Return(bidding.PlacedBid{}, auctionerrors.ErrOwnAuction)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "cannot bid on your own auction",
		},
		{
			name:        "auction_ended",
			actor:       "user1",
			auctionID:   "auction8",
			requestBody: helpers.PlaceBidRequest{Amount: 110},
			mockSetup: func() {
				bids.EXPECT().
					PlaceBid("auction8", "user1", 110.0, 0.0).
					Return(bidding.PlacedBid{}, auctionerrors.ErrAuctionEnded)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "auction has ended",
		},
		{
			name:        "store_conflict_maps_to_retryable",
			actor:       "user1",
			auctionID:   "auction9",
			requestBody: helpers.PlaceBidRequest{Amount: 110},
			mockSetup: func() {
				bids.EXPECT().
					PlaceBid("auction9", "user1", 110.0, 0.0).
					Return(bidding.PlacedBid{}, auctionerrors.ErrStoreConflict)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedMsg:    "concurrent update conflict",
		},
		{
			name:        "service_generic_error",
			actor:       "user1",
			auctionID:   "auction10",
			requestBody: helpers.PlaceBidRequest{Amount: 110},
			mockSetup: func() {
				bids.EXPECT().
					PlaceBid("auction10", "user1", 110.0, 0.0).
					Return(bidding.PlacedBid{}, errors.New("ledger unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := doJSON(t, router, http.MethodPost, "/auctions/"+tc.auctionID+"/bids", tc.actor, tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			resp := parseBody(t, w)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if tc.validateResp != nil {
				tc.validateResp(t, resp)
			}
		})
	}
}

// Test BuyNowHandler
func TestBuyNowHandler(t *testing.T) {
	router, _, bids, _ := newTestRouter(t)

	tests := []struct {
		name           string
		actor          string
		auctionID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "success",
			actor:     "buyer",
			auctionID: "auction1",
			mockSetup: func() {
				bids.EXPECT().
					BuyNow("auction1", "buyer").
					Return(bidding.PlacedBid{
						Bid: model.Bid{BidID: uuid.NewString(), AuctionID: "auction1", BidderID: "buyer", Amount: 500, IsWinning: true},
						Auction: model.Auction{
							AuctionID: "auction1", CurrentPrice: 500, CurrentWinnerID: "buyer",
							Status: model.AuctionEnded,
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "item purchased successfully",
		},
		{
			name:      "buy_now_not_configured",
			actor:     "buyer",
			auctionID: "auction2",
			mockSetup: func() {
				bids.EXPECT().
					BuyNow("auction2", "buyer").
					Return(bidding.PlacedBid{}, auctionerrors.ErrBuyNowUnavailable)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "buy now not available",
		},
		{
			name:           "missing_identity_header",
			actor:          "",
			auctionID:      "auction3",
			mockSetup:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "missing user identity",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := doJSON(t, router, http.MethodPost, "/auctions/"+tc.auctionID+"/buynow", tc.actor, nil)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, parseBody(t, w)["message"], tc.expectedMsg)
		})
	}
}

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	router, auctions, _, _ := newTestRouter(t)
	endTime := time.Now().UTC().Add(24 * time.Hour)

	validReq := helpers.CreateAuctionRequest{
		Title:            "Vintage Camera",
		StartingPrice:    100,
		MinimumIncrement: 5,
		EndTime:          endTime.Format(time.RFC3339),
	}

	tests := []struct {
		name           string
		actor          string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			actor:       "seller",
			requestBody: validReq,
			mockSetup: func() {
				auctions.EXPECT().
					Create(gomock.AssignableToTypeOf(auctionsvc.CreateParams{})).
					DoAndReturn(func(p auctionsvc.CreateParams) (model.Auction, error) {
						require.Equal(t, "seller", p.SellerID)
						require.Equal(t, "Vintage Camera", p.Title)
						require.Equal(t, 100.0, p.StartingPrice)
						return model.Auction{
							AuctionID: uuid.NewString(), SellerID: p.SellerID, Title: p.Title,
							CurrentPrice: p.StartingPrice, Status: model.AuctionActive,
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
		},
		{
			name:  "missing_title",
			actor: "seller",
			requestBody: helpers.CreateAuctionRequest{
				StartingPrice: 100,
				EndTime:       endTime.Format(time.RFC3339),
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:  "unparseable_end_time",
			actor: "seller",
			requestBody: helpers.CreateAuctionRequest{
				Title:         "Vintage Camera",
				StartingPrice: 100,
				EndTime:       "tomorrow",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_rejects_listing",
			actor:       "seller2",
			requestBody: validReq,
			mockSetup: func() {
				auctions.EXPECT().
					Create(gomock.Any()).
					Return(model.Auction{}, fmt.Errorf("service: %w - end time must be after start time", auctionerrors.ErrInvalidAuction))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:           "missing_identity_header",
			actor:          "",
			requestBody:    validReq,
			mockSetup:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "missing user identity",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := doJSON(t, router, http.MethodPost, "/auctions", tc.actor, tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, parseBody(t, w)["message"], tc.expectedMsg)
		})
	}
}

// Test GetAuctionHandler
func TestGetAuctionHandler(t *testing.T) {
	router, auctions, _, _ := newTestRouter(t)

	t.Run("found", func(t *testing.T) {
		auctions.EXPECT().
			Get("auction1").
			Return(model.Auction{AuctionID: "auction1", Title: "Vintage Camera", Status: model.AuctionActive}, nil)

		w := doJSON(t, router, http.MethodGet, "/auctions/auction1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := parseBody(t, w)["data"].(map[string]any)
		require.Equal(t, "Vintage Camera", data["title"])
	})

	t.Run("not_found", func(t *testing.T) {
		auctions.EXPECT().
			Get("ghost").
			Return(model.Auction{}, fmt.Errorf("service: get auction ghost: %w", auctionerrors.ErrAuctionNotFound))

		w := doJSON(t, router, http.MethodGet, "/auctions/ghost", "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, parseBody(t, w)["message"], "auction not found")
	})
}

// Test CancelAuctionHandler
func TestCancelAuctionHandler(t *testing.T) {
	router, auctions, _, _ := newTestRouter(t)

	tests := []struct {
		name           string
		actor          string
		auctionID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:      "success",
			actor:     "seller",
			auctionID: "auction1",
			mockSetup: func() {
				auctions.EXPECT().
					Cancel("auction1", "seller").
					Return(model.Auction{AuctionID: "auction1", Status: model.AuctionCancelled}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction cancelled successfully",
		},
		{
			name:      "not_the_seller",
			actor:     "intruder",
			auctionID: "auction2",
			mockSetup: func() {
				auctions.EXPECT().
					Cancel("auction2", "intruder").
					Return(model.Auction{}, auctionerrors.ErrNotAuthorized)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not authorized",
		},
		{
			name:      "auction_has_bids",
			actor:     "seller",
			auctionID: "auction3",
			mockSetup: func() {
				auctions.EXPECT().
					Cancel("auction3", "seller").
					Return(model.Auction{}, auctionerrors.ErrAuctionHasBids)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "auction already has bids",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := doJSON(t, router, http.MethodPost, "/auctions/"+tc.auctionID+"/cancel", tc.actor, nil)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, parseBody(t, w)["message"], tc.expectedMsg)
		})
	}
}

// Test GetAuctionBidsHandler
func TestGetAuctionBidsHandler(t *testing.T) {
	router, _, bids, _ := newTestRouter(t)
	now := time.Now().UTC()

	t.Run("bids_returned_without_ceilings", func(t *testing.T) {
		bids.EXPECT().
			GetBidsForAuction("auction1").
			Return([]model.Bid{
				{BidID: "b1", AuctionID: "auction1", BidderID: "user1", Amount: 110, IsAutomatic: true, MaxAutoBid: 300, CreatedAt: now},
				{BidID: "b2", AuctionID: "auction1", BidderID: "user2", Amount: 120, CreatedAt: now},
			}, nil)

		w := doJSON(t, router, http.MethodGet, "/auctions/auction1/bids", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := parseBody(t, w)["data"].([]any)
		require.Len(t, data, 2)
		first := data[0].(map[string]any)
		require.Equal(t, true, first["is_automatic"])
		require.NotContains(t, first, "max_auto_bid")
	})

	t.Run("empty_history", func(t *testing.T) {
		bids.EXPECT().GetBidsForAuction("auction2").Return(nil, nil)

		w := doJSON(t, router, http.MethodGet, "/auctions/auction2/bids", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, parseBody(t, w)["data"].([]any), 0)
	})
}

// Test order handlers
func TestOrderHandlers(t *testing.T) {
	router, _, _, orders := newTestRouter(t)

	t.Run("pay_success", func(t *testing.T) {
		orders.EXPECT().
			Pay("order1", "buyer").
			Return(model.Order{OrderID: "order1", BuyerID: "buyer", Amount: 150, Status: model.OrderPaid}, nil)

		w := doJSON(t, router, http.MethodPost, "/orders/order1/pay", "buyer", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseBody(t, w)
		require.Contains(t, resp["message"], "order marked as paid")
		require.Equal(t, "paid", resp["data"].(map[string]any)["status"])
	})

	t.Run("pay_wrong_actor", func(t *testing.T) {
		orders.EXPECT().
			Pay("order2", "stranger").
			Return(model.Order{}, auctionerrors.ErrNotAuthorized)

		w := doJSON(t, router, http.MethodPost, "/orders/order2/pay", "stranger", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("pay_order_not_found", func(t *testing.T) {
		orders.EXPECT().
			Pay("ghost", "buyer").
			Return(model.Order{}, fmt.Errorf("service: pay order ghost: %w", auctionerrors.ErrOrderNotFound))

		w := doJSON(t, router, http.MethodPost, "/orders/ghost/pay", "buyer", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ship_success", func(t *testing.T) {
		orders.EXPECT().
			Ship("order3", "seller", "TRACK-123").
			Return(model.Order{OrderID: "order3", SellerID: "seller", TrackingNumber: "TRACK-123", Status: model.OrderShipped}, nil)

		w := doJSON(t, router, http.MethodPost, "/orders/order3/ship", "seller",
			helpers.ShipOrderRequest{TrackingNumber: "TRACK-123"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, parseBody(t, w)["message"], "order marked as shipped")
	})

	t.Run("ship_missing_tracking_number", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/orders/order4/ship", "seller", helpers.ShipOrderRequest{})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, parseBody(t, w)["message"], "invalid request payload")
	})

	t.Run("deliver_success", func(t *testing.T) {
		orders.EXPECT().
			ConfirmDelivery("order5", "buyer").
			Return(model.Order{OrderID: "order5", BuyerID: "buyer", Status: model.OrderDelivered}, nil)

		w := doJSON(t, router, http.MethodPost, "/orders/order5/deliver", "buyer", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, parseBody(t, w)["message"], "order marked as delivered")
	})

	t.Run("deliver_before_shipping", func(t *testing.T) {
		orders.EXPECT().
			ConfirmDelivery("order6", "buyer").
			Return(model.Order{}, auctionerrors.ErrInvalidOrderState)

		w := doJSON(t, router, http.MethodPost, "/orders/order6/deliver", "buyer", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
