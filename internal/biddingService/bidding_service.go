package bidding

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/notifier"
	"auction-house/internal/repository"
	"auction-house/utils"
	"errors"
	"fmt"
	"time"
)

// maxAdmissionRetries bounds re-resolution attempts after a concurrent
// update to the same auction. The admitted bid row survives a retry, so
// each attempt re-resolves against the full persisted bid set.
const maxAdmissionRetries = 3

// BiddingService is the bid admission controller: it validates incoming
// bids, runs proxy resolution over the full bid history and persists the
// outcome.
type BiddingService struct {
	repo   repository.LedgerStore
	events notifier.Notifier
	now    func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.LedgerStore, events notifier.Notifier) *BiddingService {
	return &BiddingService{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

// PlacedBid is the result of a successful admission: the recorded bid plus
// the auction state after resolution.
type PlacedBid struct {
	Bid     model.Bid
	Auction model.Auction
}

// PlaceBid validates and records a bid, then re-resolves the auction under
// proxy rules. Pass maxAutoBid > 0 to register an automatic ceiling.
func (s *BiddingService) PlaceBid(auctionID, bidderID string, amount, maxAutoBid float64) (PlacedBid, error) {
	if auctionID == "" || bidderID == "" {
		return PlacedBid{}, fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return PlacedBid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	if maxAutoBid > 0 && amount > maxAutoBid {
		return PlacedBid{}, fmt.Errorf("service: %w - bid amount exceeds auto-bid ceiling", auctionerrors.ErrInvalidBid)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return PlacedBid{}, fmt.Errorf("service: place bid on auction %s: %w", auctionID, err)
	}

	if err := s.checkAdmission(auction, bidderID, amount); err != nil {
		return PlacedBid{}, err
	}

	bid := model.Bid{
		BidID:       utils.GenerateID(),
		AuctionID:   auctionID,
		BidderID:    bidderID,
		Amount:      amount,
		IsAutomatic: maxAutoBid > 0,
		MaxAutoBid:  maxAutoBid,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.RecordBid(bid); err != nil {
		return PlacedBid{}, fmt.Errorf("service: failed to record bid on auction %s: %w", auctionID, err)
	}

	updated, err := s.resolveAndPersist(auction, bid)
	if err != nil {
		return PlacedBid{}, err
	}

	s.events.Publish(auctionID, notifier.EventBidPlaced, notifier.BidPlacedPayload{
		Bid:     bid,
		Auction: snapshot(updated),
	})

	return PlacedBid{Bid: bid, Auction: updated}, nil
}

// checkAdmission runs the precondition ladder for a new bid
func (s *BiddingService) checkAdmission(auction model.Auction, bidderID string, amount float64) error {
	now := s.now()
	if auction.Status != model.AuctionActive {
		return fmt.Errorf("service: auction %s: %w", auction.AuctionID, auctionerrors.ErrNotActive)
	}
	if auction.HasEnded(now) {
		return fmt.Errorf("service: auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionEnded)
	}
	if auction.SellerID == bidderID {
		return fmt.Errorf("service: auction %s: %w", auction.AuctionID, auctionerrors.ErrOwnAuction)
	}

	minimum := auction.CurrentPrice + auction.MinimumIncrement
	if amount < minimum {
		return fmt.Errorf("service: auction %s: %w", auction.AuctionID, &auctionerrors.BidTooLow{MinimumBid: minimum})
	}
	if auction.BuyNowPrice > 0 && amount >= auction.BuyNowPrice {
		return fmt.Errorf("service: auction %s: %w", auction.AuctionID, auctionerrors.ErrBidAboveBuyNow)
	}
	return nil
}

// resolveAndPersist runs proxy resolution and writes the outcome, retrying
// from fresh store state when a concurrent writer got there first.
func (s *BiddingService) resolveAndPersist(auction model.Auction, admitted model.Bid) (model.Auction, error) {
	var lastErr error
	for attempt := 0; attempt < maxAdmissionRetries; attempt++ {
		if attempt > 0 {
			fresh, err := s.repo.GetAuction(auction.AuctionID)
			if err != nil {
				return model.Auction{}, fmt.Errorf("service: re-read auction %s: %w", auction.AuctionID, err)
			}
			if fresh.Status != model.AuctionActive {
				// closed while we were resolving; the recorded bid
				// stands in the history but cannot win
				return model.Auction{}, fmt.Errorf("service: auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionEnded)
			}
			auction = fresh
		}

		bids, err := s.repo.GetBidsByAuction(auction.AuctionID)
		if err != nil {
			return model.Auction{}, fmt.Errorf("service: load bids for auction %s: %w", auction.AuctionID, err)
		}

		res := resolveProxyBids(auction, admitted, bids)

		auction.CurrentPrice = res.Price
		auction.CurrentWinnerID = res.WinnerID
		auction.TotalBids++

		updated, err := s.repo.UpdateAuction(auction)
		if errors.Is(err, auctionerrors.ErrStoreConflict) {
			lastErr = err
			utils.Warn("bid admission: conflicting auction update, retrying", map[string]any{
				"auction_id": auction.AuctionID,
				"bid_id":     admitted.BidID,
				"attempt":    attempt + 1,
			})
			continue
		}
		if err != nil {
			return model.Auction{}, fmt.Errorf("service: update auction %s: %w", auction.AuctionID, err)
		}

		if err := s.applyWinningState(res, admitted); err != nil {
			return model.Auction{}, err
		}
		return updated, nil
	}
	return model.Auction{}, fmt.Errorf("service: auction %s: admission retries exhausted: %w", auction.AuctionID, lastErr)
}

// applyWinningState persists the counter-bid, if any, and moves the single
// winning flag to the resolved row.
func (s *BiddingService) applyWinningState(res Resolution, admitted model.Bid) error {
	if !res.Changed {
		return nil
	}

	winningID := res.WinningBidID
	if res.CounterBid != nil {
		counter := *res.CounterBid
		counter.BidID = utils.GenerateID()
		counter.CreatedAt = s.now().UTC()
		if err := s.repo.RecordBid(counter); err != nil {
			return fmt.Errorf("service: record counter-bid on auction %s: %w", counter.AuctionID, err)
		}
		winningID = counter.BidID
	}
	if winningID == "" {
		return nil
	}
	if err := s.repo.SetWinningBid(admitted.AuctionID, winningID); err != nil {
		return fmt.Errorf("service: flag winning bid on auction %s: %w", admitted.AuctionID, err)
	}
	return nil
}

// BuyNow closes the auction immediately at its buy-now price. This path
// bypasses proxy resolution entirely.
func (s *BiddingService) BuyNow(auctionID, bidderID string) (PlacedBid, error) {
	if auctionID == "" || bidderID == "" {
		return PlacedBid{}, fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}

	for attempt := 0; attempt < maxAdmissionRetries; attempt++ {
		auction, err := s.repo.GetAuction(auctionID)
		if err != nil {
			return PlacedBid{}, fmt.Errorf("service: buy now on auction %s: %w", auctionID, err)
		}
		if auction.BuyNowPrice <= 0 {
			return PlacedBid{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrBuyNowUnavailable)
		}
		if auction.Status != model.AuctionActive {
			return PlacedBid{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrNotActive)
		}
		if auction.HasEnded(s.now()) {
			return PlacedBid{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrAuctionEnded)
		}
		if auction.SellerID == bidderID {
			return PlacedBid{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrOwnAuction)
		}

		auction.CurrentPrice = auction.BuyNowPrice
		auction.CurrentWinnerID = bidderID
		auction.Status = model.AuctionEnded
		auction.TotalBids++

		updated, err := s.repo.UpdateAuction(auction)
		if errors.Is(err, auctionerrors.ErrStoreConflict) {
			continue
		}
		if err != nil {
			return PlacedBid{}, fmt.Errorf("service: update auction %s: %w", auctionID, err)
		}

		bid := model.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auctionID,
			BidderID:  bidderID,
			Amount:    auction.BuyNowPrice,
			IsWinning: true,
			CreatedAt: s.now().UTC(),
		}
		if err := s.repo.RecordBid(bid); err != nil {
			return PlacedBid{}, fmt.Errorf("service: record buy-now bid on auction %s: %w", auctionID, err)
		}
		if err := s.repo.SetWinningBid(auctionID, bid.BidID); err != nil {
			return PlacedBid{}, fmt.Errorf("service: flag buy-now bid on auction %s: %w", auctionID, err)
		}

		s.events.Publish(auctionID, notifier.EventAuctionEnded, notifier.AuctionEndedPayload{
			Auction:  snapshot(updated),
			Reason:   notifier.CloseReasonBuyNow,
			WinnerID: bidderID,
		})

		return PlacedBid{Bid: bid, Auction: updated}, nil
	}
	return PlacedBid{}, fmt.Errorf("service: auction %s: buy-now retries exhausted: %w", auctionID, auctionerrors.ErrStoreConflict)
}

// GetBidsForAuction returns the full bid history for an auction
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]model.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	if _, err := s.repo.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("service: get bids for auction %s: %w", auctionID, err)
	}
	bids, err := s.repo.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetUserBids returns all bids placed by a user
func (s *BiddingService) GetUserBids(userID string) ([]model.Bid, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	bids, err := s.repo.GetBidsByBidder(userID)
	if err != nil {
		return nil, fmt.Errorf("service: get bids for user %s: %w", userID, err)
	}
	return bids, nil
}

// GetUserWinningBids returns the user's bids currently flagged winning
func (s *BiddingService) GetUserWinningBids(userID string) ([]model.Bid, error) {
	bids, err := s.GetUserBids(userID)
	if err != nil {
		return nil, err
	}
	var winning []model.Bid
	for _, b := range bids {
		if b.IsWinning {
			winning = append(winning, b)
		}
	}
	return winning, nil
}

// GetWonAuctions returns ended auctions where the user is the winner
func (s *BiddingService) GetWonAuctions(userID string) ([]model.Auction, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	auctions, err := s.repo.FindWonAuctions(userID)
	if err != nil {
		return nil, fmt.Errorf("service: get won auctions for user %s: %w", userID, err)
	}
	return auctions, nil
}

func snapshot(a model.Auction) notifier.AuctionSnapshot {
	return notifier.AuctionSnapshot{
		AuctionID:       a.AuctionID,
		CurrentPrice:    a.CurrentPrice,
		CurrentWinnerID: a.CurrentWinnerID,
		TotalBids:       a.TotalBids,
		Status:          string(a.Status),
	}
}
