package bidding

import (
	model "auction-house/internal/models"
	"sort"
)

// Resolution is the outcome of re-resolving an auction after one admitted bid.
type Resolution struct {
	// Price and WinnerID are the new authoritative current price and winner.
	Price    float64
	WinnerID string
	// Changed reports whether price or winner differ from the auction's
	// prior state. When false no flag or counter-bid writes are needed.
	Changed bool
	// CounterBid, when non-nil, is a synthetic automatic bid the system
	// placed on the top ceiling-holder's behalf. It carries no BidID or
	// CreatedAt; the caller assigns those before persisting. When present
	// it is the winning row.
	CounterBid *model.Bid
	// WinningBidID is the existing row to flag winning when no counter-bid
	// was generated. Empty when the winning state maps to no stored row.
	WinningBidID string
}

type autoCeiling struct {
	bidderID string
	max      float64
}

// resolveProxyBids computes the new price and winner for an auction after
// admitting one bid, under sealed-ceiling proxy rules: the system bids on
// behalf of the highest ceiling-holder only as far as needed to beat the
// second-best offer plus one increment, never revealing the true ceiling.
//
// bids must be the complete bid history in admission order, including the
// just-admitted bid.
func resolveProxyBids(auction model.Auction, admitted model.Bid, bids []model.Bid) Resolution {
	currentPrice := auction.CurrentPrice
	if currentPrice == 0 {
		currentPrice = auction.StartingPrice
	}

	// Highest manual bid, seeded with the auction's standing state so a
	// price set by earlier rounds is never undercut.
	manualAmount := currentPrice
	manualBidder := auction.CurrentWinnerID
	manualBidID := ""
	for _, b := range bids {
		if !b.IsAutomatic && b.Amount > manualAmount {
			manualAmount = b.Amount
			manualBidder = b.BidderID
			manualBidID = b.BidID
		}
	}

	// Each automatic bidder's highest ceiling, in first-registration order.
	// Admission order is preserved so equal ceilings resolve to the earlier
	// registrant under the stable sort below.
	ceilingIdx := make(map[string]int)
	var autos []autoCeiling
	for _, b := range bids {
		if !b.IsAutomatic || b.MaxAutoBid <= 0 {
			continue
		}
		if i, ok := ceilingIdx[b.BidderID]; ok {
			if b.MaxAutoBid > autos[i].max {
				autos[i].max = b.MaxAutoBid
			}
			continue
		}
		ceilingIdx[b.BidderID] = len(autos)
		autos = append(autos, autoCeiling{bidderID: b.BidderID, max: b.MaxAutoBid})
	}
	sort.SliceStable(autos, func(i, j int) bool { return autos[i].max > autos[j].max })

	res := Resolution{Price: currentPrice, WinnerID: auction.CurrentWinnerID}

	if len(autos) == 0 {
		if manualAmount > currentPrice {
			res.Price = manualAmount
			res.WinnerID = manualBidder
			res.Changed = true
			res.WinningBidID = manualBidID
		}
		return res
	}

	top := autos[0]
	second := currentPrice
	if manualAmount > second {
		second = manualAmount
	}
	if len(autos) > 1 {
		second = autos[1].max
	}

	candidate := second + auction.MinimumIncrement
	if top.max < candidate {
		candidate = top.max
	}

	if manualAmount >= candidate {
		// The best manual offer beats what the top ceiling-holder is
		// willing to counter with.
		if manualAmount > currentPrice || manualBidder != auction.CurrentWinnerID {
			res.Price = manualAmount
			res.WinnerID = manualBidder
			res.Changed = true
			res.WinningBidID = manualBidID
		}
		return res
	}

	res.Price = candidate
	res.WinnerID = top.bidderID
	res.Changed = candidate != currentPrice || top.bidderID != auction.CurrentWinnerID

	if top.bidderID == admitted.BidderID && admitted.Amount == candidate {
		// The admitted bid already sits at the resolved amount.
		res.WinningBidID = admitted.BidID
		return res
	}

	res.CounterBid = &model.Bid{
		AuctionID:   auction.AuctionID,
		BidderID:    top.bidderID,
		Amount:      candidate,
		IsWinning:   true,
		IsAutomatic: true,
		MaxAutoBid:  top.max,
	}
	return res
}
