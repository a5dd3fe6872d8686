package scheduler

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/notifier"
	"auction-house/utils"
	"errors"
	"fmt"
	"time"
)

// maxReassignRetries bounds CAS retries when rewriting the auction's
// winner during a fallback.
const maxReassignRetries = 3

// SweepExpiredOrders cancels every pending-payment order whose deadline has
// passed and offers the item to the next-highest remaining bidder. The
// cascade is bounded by the number of distinct bidders: each expiry removes
// one buyer from consideration.
func (s *Scheduler) SweepExpiredOrders() error {
	now := s.now().UTC()
	expired, err := s.repo.FindExpiredPendingOrders(now)
	if err != nil {
		return fmt.Errorf("scheduler: find expired orders: %w", err)
	}

	for _, o := range expired {
		if err := s.expireOrder(o, now); err != nil {
			utils.Error("order fallback failed", map[string]any{
				"order_id":   o.OrderID,
				"auction_id": o.AuctionID,
				"error":      err.Error(),
			})
		}
	}
	return nil
}

// expireOrder cancels one unpaid order and re-offers the item. The auction
// keeps its ended status throughout; sale finality lives in the order
// state machine.
func (s *Scheduler) expireOrder(o model.Order, now time.Time) error {
	o.Status = model.OrderCancelled
	if err := s.repo.UpdateOrder(o); err != nil {
		return fmt.Errorf("cancel order %s: %w", o.OrderID, err)
	}
	utils.Info("order cancelled on missed payment deadline", map[string]any{
		"order_id":   o.OrderID,
		"auction_id": o.AuctionID,
		"buyer_id":   o.BuyerID,
	})

	excluded, err := s.defaultedBuyers(o.AuctionID, o.BuyerID)
	if err != nil {
		return err
	}
	next, err := s.repo.HighestBidExcluding(o.AuctionID, excluded)
	if errors.Is(err, auctionerrors.ErrNoBids) {
		return s.markUnsold(o.AuctionID)
	}
	if err != nil {
		return fmt.Errorf("find next bidder for auction %s: %w", o.AuctionID, err)
	}
	return s.offerToNext(o.AuctionID, next, now)
}

// defaultedBuyers lists every buyer with a cancelled order on the auction.
// Excluding all of them keeps the cascade moving strictly down the bidder
// list instead of circling back to an earlier defaulter.
func (s *Scheduler) defaultedBuyers(auctionID, latest string) ([]string, error) {
	orders, err := s.repo.ListOrdersByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("list orders for auction %s: %w", auctionID, err)
	}
	excluded := []string{latest}
	for _, prev := range orders {
		if prev.Status == model.OrderCancelled && prev.BuyerID != latest {
			excluded = append(excluded, prev.BuyerID)
		}
	}
	return excluded, nil
}

// offerToNext reassigns the auction to the next bidder at their own highest
// recorded amount and opens a fresh payment window.
func (s *Scheduler) offerToNext(auctionID string, next model.Bid, now time.Time) error {
	a, err := s.reassignWinner(auctionID, next.BidderID, next.Amount)
	if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
		// listing vanished; nothing left to offer
		return nil
	}
	if err != nil {
		return err
	}

	// keep the bid ledger aligned with the reassigned winner
	if err := s.repo.SetWinningBidder(auctionID, next.BidderID); err != nil {
		return fmt.Errorf("flag next bidder for auction %s: %w", auctionID, err)
	}

	deadline := now.Add(s.cfg.GraceWindow)
	o := model.Order{
		OrderID:         utils.GenerateID(),
		AuctionID:       auctionID,
		BuyerID:         next.BidderID,
		SellerID:        a.SellerID,
		Amount:          next.Amount,
		Status:          model.OrderPendingPayment,
		PaymentDeadline: deadline,
		CreatedAt:       now,
	}
	if err := s.repo.CreateOrder(o); err != nil {
		return fmt.Errorf("create fallback order for auction %s: %w", auctionID, err)
	}

	s.events.Publish(auctionID, notifier.EventOrderOfferedToNext, notifier.OrderOfferedPayload{
		AuctionID:       auctionID,
		NextBuyerID:     next.BidderID,
		Amount:          next.Amount,
		OrderID:         o.OrderID,
		PaymentDeadline: deadline,
	})
	utils.Info("order offered to next bidder", map[string]any{
		"auction_id": auctionID,
		"buyer_id":   next.BidderID,
		"amount":     next.Amount,
		"order_id":   o.OrderID,
	})
	return nil
}

// markUnsold clears the winner after the cascade is exhausted
func (s *Scheduler) markUnsold(auctionID string) error {
	_, err := s.reassignWinner(auctionID, "", 0)
	if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.repo.ClearWinningBids(auctionID); err != nil {
		return fmt.Errorf("clear winning bids for auction %s: %w", auctionID, err)
	}

	s.events.Publish(auctionID, notifier.EventAuctionUnsold, map[string]any{"auction_id": auctionID})
	utils.Info("auction unsold after fallback cascade", map[string]any{
		"auction_id": auctionID,
	})
	return nil
}

// reassignWinner rewrites winner and price on an ended auction under the
// store's versioning. An amount of 0 with an empty winner clears the sale.
func (s *Scheduler) reassignWinner(auctionID, winnerID string, amount float64) (model.Auction, error) {
	var lastErr error
	for attempt := 0; attempt < maxReassignRetries; attempt++ {
		a, err := s.repo.GetAuction(auctionID)
		if err != nil {
			return model.Auction{}, err
		}

		a.CurrentWinnerID = winnerID
		if winnerID != "" {
			a.CurrentPrice = amount
		}
		updated, err := s.repo.UpdateAuction(a)
		if errors.Is(err, auctionerrors.ErrStoreConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			return model.Auction{}, fmt.Errorf("reassign winner on auction %s: %w", auctionID, err)
		}
		return updated, nil
	}
	return model.Auction{}, fmt.Errorf("reassign winner on auction %s: retries exhausted: %w", auctionID, lastErr)
}
