package bidding

import (
	model "auction-house/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func activeAuction(price, increment float64) model.Auction {
	return model.Auction{
		AuctionID:        "a1",
		SellerID:         "seller",
		StartingPrice:    price,
		CurrentPrice:     price,
		MinimumIncrement: increment,
		Status:           model.AuctionActive,
	}
}

func manualBid(id, bidder string, amount float64) model.Bid {
	return model.Bid{BidID: id, AuctionID: "a1", BidderID: bidder, Amount: amount, CreatedAt: time.Now().UTC()}
}

func autoBid(id, bidder string, amount, ceiling float64) model.Bid {
	return model.Bid{
		BidID: id, AuctionID: "a1", BidderID: bidder, Amount: amount,
		IsAutomatic: true, MaxAutoBid: ceiling, CreatedAt: time.Now().UTC(),
	}
}

func TestResolveProxyBids_ManualOnly(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	admitted := manualBid("b1", "userB", 110)

	res := resolveProxyBids(auction, admitted, []model.Bid{admitted})

	require.True(t, res.Changed)
	require.Equal(t, 110.0, res.Price)
	require.Equal(t, "userB", res.WinnerID)
	require.Equal(t, "b1", res.WinningBidID)
	require.Nil(t, res.CounterBid)
}

func TestResolveProxyBids_ManualBelowCurrentLeavesStateAlone(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	auction.CurrentWinnerID = "userA"
	admitted := manualBid("b1", "userB", 90)

	res := resolveProxyBids(auction, admitted, []model.Bid{admitted})

	require.False(t, res.Changed)
	require.Equal(t, 100.0, res.Price)
	require.Equal(t, "userA", res.WinnerID)
}

// The concrete proxy scenario: ceiling 200 vs manual 150 resolves to the
// ceiling-holder at 155, then a manual 210 overtakes the exhausted ceiling.
func TestResolveProxyBids_CeilingBeatsManualByOneIncrement(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	autoA := autoBid("b1", "userA", 105, 200)

	res := resolveProxyBids(auction, autoA, []model.Bid{autoA})
	require.True(t, res.Changed)
	require.Equal(t, "userA", res.WinnerID)
	require.Equal(t, 105.0, res.Price) // min(200, 100+5)
	require.Equal(t, "b1", res.WinningBidID)
	require.Nil(t, res.CounterBid)

	// apply the resolution, then B bids 150 manually
	auction.CurrentPrice = res.Price
	auction.CurrentWinnerID = res.WinnerID
	manualB := manualBid("b2", "userB", 150)

	res = resolveProxyBids(auction, manualB, []model.Bid{autoA, manualB})
	require.True(t, res.Changed)
	require.Equal(t, "userA", res.WinnerID)
	require.Equal(t, 155.0, res.Price) // min(200, 150+5)
	require.NotNil(t, res.CounterBid)
	require.Equal(t, "userA", res.CounterBid.BidderID)
	require.Equal(t, 155.0, res.CounterBid.Amount)
	require.True(t, res.CounterBid.IsAutomatic)
	require.Equal(t, 200.0, res.CounterBid.MaxAutoBid)

	// B raises to 210: the 200 ceiling cannot counter
	auction.CurrentPrice = 155
	auction.CurrentWinnerID = "userA"
	counter := autoBid("b3", "userA", 155, 200)
	manualB2 := manualBid("b4", "userB", 210)

	res = resolveProxyBids(auction, manualB2, []model.Bid{autoA, manualB, counter, manualB2})
	require.True(t, res.Changed)
	require.Equal(t, "userB", res.WinnerID)
	require.Equal(t, 210.0, res.Price)
	require.Equal(t, "b4", res.WinningBidID)
	require.Nil(t, res.CounterBid)
}

func TestResolveProxyBids_TwoCeilingsSecondPlusIncrement(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	autoA := autoBid("b1", "userA", 105, 300)
	autoB := autoBid("b2", "userB", 110, 200)

	res := resolveProxyBids(auction, autoB, []model.Bid{autoA, autoB})

	require.True(t, res.Changed)
	require.Equal(t, "userA", res.WinnerID)
	require.Equal(t, 205.0, res.Price) // min(300, 200+5)
	require.NotNil(t, res.CounterBid)
	require.Equal(t, 300.0, res.CounterBid.MaxAutoBid)
}

func TestResolveProxyBids_TopCeilingCapsPrice(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	autoA := autoBid("b1", "userA", 105, 202)
	autoB := autoBid("b2", "userB", 110, 200)

	res := resolveProxyBids(auction, autoB, []model.Bid{autoA, autoB})

	require.Equal(t, "userA", res.WinnerID)
	require.Equal(t, 202.0, res.Price) // capped at A's ceiling, not 205
}

// Equal ceilings resolve to the earlier registrant: the sort is stable over
// first-registration order.
func TestResolveProxyBids_EqualCeilingsEarlierRegistrantWins(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	autoA := autoBid("b1", "userA", 105, 200)
	autoB := autoBid("b2", "userB", 110, 200)

	res := resolveProxyBids(auction, autoB, []model.Bid{autoA, autoB})

	require.Equal(t, "userA", res.WinnerID)
	require.Equal(t, 200.0, res.Price) // min(200, 200+5)
}

func TestResolveProxyBids_HighestCeilingPerBidder(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	low := autoBid("b1", "userA", 105, 150)
	raised := autoBid("b2", "userA", 105, 250)
	autoB := autoBid("b3", "userB", 110, 200)

	res := resolveProxyBids(auction, autoB, []model.Bid{low, raised, autoB})

	require.Equal(t, "userA", res.WinnerID)
	require.Equal(t, 205.0, res.Price) // A's effective ceiling is 250
}

func TestResolveProxyBids_ManualMeetingCandidateWins(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	autoA := autoBid("b1", "userA", 105, 150)
	manualB := manualBid("b2", "userB", 155)

	res := resolveProxyBids(auction, manualB, []model.Bid{autoA, manualB})

	// candidate = min(150, 155+5) = 150; manual 155 >= 150
	require.Equal(t, "userB", res.WinnerID)
	require.Equal(t, 155.0, res.Price)
	require.Equal(t, "b2", res.WinningBidID)
	require.Nil(t, res.CounterBid)
}

func TestResolveProxyBids_AdmittedAutoAtCandidateNeedsNoCounter(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	admitted := autoBid("b1", "userA", 105, 200)

	res := resolveProxyBids(auction, admitted, []model.Bid{admitted})

	// candidate = min(200, 100+5) = 105 = the admitted amount
	require.Equal(t, "b1", res.WinningBidID)
	require.Nil(t, res.CounterBid)
}

func TestResolveProxyBids_IgnoresNonPositiveCeilings(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	broken := autoBid("b1", "userA", 105, 0)
	manualB := manualBid("b2", "userB", 120)

	res := resolveProxyBids(auction, manualB, []model.Bid{broken, manualB})

	require.Equal(t, "userB", res.WinnerID)
	require.Equal(t, 120.0, res.Price)
}

// Price never decreases during resolution regardless of stale ceilings
func TestResolveProxyBids_Monotonic(t *testing.T) {
	t.Parallel()

	auction := activeAuction(100, 5)
	auction.CurrentPrice = 500
	auction.CurrentWinnerID = "userC"
	staleAuto := autoBid("b1", "userA", 105, 120)
	manualB := manualBid("b2", "userB", 505)

	res := resolveProxyBids(auction, manualB, []model.Bid{staleAuto, manualB})

	require.GreaterOrEqual(t, res.Price, 500.0)
	require.Equal(t, "userB", res.WinnerID)
	require.Equal(t, 505.0, res.Price)
}
