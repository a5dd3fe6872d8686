package integrationtests

import (
	auctionsvc "auction-house/internal/auctionService"
	bidding "auction-house/internal/biddingService"
	"auction-house/internal/notifier"
	ordersvc "auction-house/internal/orderService"
	"auction-house/internal/repository"
	"auction-house/internal/scheduler"
	"auction-house/internal/server"
	"auction-house/services/auction/handler"
	"auction-house/services/auction/helpers"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// TestEnv wires the full stack over the in-memory ledger. The scheduler is
// not started; tests drive its sweeps directly for determinism.
type TestEnv struct {
	Router *gin.Engine
	Repo   *repository.MemoryLedger
	Events *notifier.Capture
	Sched  *scheduler.Scheduler
}

// SetupTestEnv initializes the router with the in-memory ledger for
// integration testing. The payment grace window is kept short so fallback
// tests only need a brief wait.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryLedger()
	events := notifier.NewCapture()

	auctions := auctionsvc.NewService(repo)
	bids := bidding.NewBiddingService(repo, events)
	orders := ordersvc.NewService(repo)
	sched := scheduler.New(repo, events, scheduler.Config{
		CloseInterval:    time.Minute,
		FallbackInterval: time.Minute,
		GraceWindow:      100 * time.Millisecond,
	})

	h := handler.NewMarketplaceHandler(auctions, bids, orders)
	return &TestEnv{
		Router: server.SetupRouter(h, nil),
		Repo:   repo,
		Events: events,
		Sched:  sched,
	}
}

// ExecuteRequest executes an HTTP request as the given user and parses the
// response envelope.
func ExecuteRequest(t *testing.T, env *TestEnv, method, url, actor string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set(helpers.UserIDHeader, actor)
	}
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// CreateAuction creates a listing through the API and returns its id
func CreateAuction(t *testing.T, env *TestEnv, seller string, req helpers.CreateAuctionRequest) string {
	t.Helper()

	resp, w := ExecuteRequest(t, env, "POST", "/auctions", seller, req)
	if w.Code != 201 {
		t.Fatalf("create auction failed with status %d: %s", w.Code, w.Body.String())
	}
	return resp["data"].(map[string]any)["auction_id"].(string)
}
