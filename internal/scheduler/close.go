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

// SweepExpiredAuctions finalizes every active auction whose end time has
// passed. A failure on one auction is logged and does not stop the sweep;
// the auction stays active and is retried on the next tick.
func (s *Scheduler) SweepExpiredAuctions() error {
	now := s.now().UTC()
	expired, err := s.repo.FindExpiredActiveAuctions(now)
	if err != nil {
		return fmt.Errorf("scheduler: find expired auctions: %w", err)
	}

	for _, a := range expired {
		if err := s.closeAuction(a, now); err != nil {
			utils.Error("auction close failed", map[string]any{
				"auction_id": a.AuctionID,
				"error":      err.Error(),
			})
		}
	}
	return nil
}

// closeAuction transitions one auction active -> ended exactly once and
// materializes the winner's order when the sale stands.
func (s *Scheduler) closeAuction(a model.Auction, now time.Time) error {
	sold := a.CurrentWinnerID != "" && (a.ReservePrice == 0 || a.CurrentPrice >= a.ReservePrice)

	reason := notifier.CloseReasonSold
	if !sold {
		if a.CurrentWinnerID == "" {
			reason = notifier.CloseReasonNoBids
		} else {
			reason = notifier.CloseReasonReserveNotMet
		}
		a.CurrentWinnerID = ""
	}
	a.Status = model.AuctionEnded

	// The versioned write is the claim on this auction: a conflicting
	// concurrent writer means someone else got here first, so leave the
	// auction for the next tick.
	updated, err := s.repo.UpdateAuction(a)
	if errors.Is(err, auctionerrors.ErrStoreConflict) {
		utils.Warn("auction close skipped on conflicting update", map[string]any{
			"auction_id": a.AuctionID,
		})
		return nil
	}
	if err != nil {
		return fmt.Errorf("finalize auction %s: %w", a.AuctionID, err)
	}

	if !sold {
		if err := s.repo.ClearWinningBids(a.AuctionID); err != nil {
			return fmt.Errorf("clear winning bids for auction %s: %w", a.AuctionID, err)
		}
		s.events.Publish(a.AuctionID, notifier.EventAuctionEnded, notifier.AuctionEndedPayload{
			Auction: auctionSnapshot(updated),
			Reason:  reason,
		})
		utils.Info("auction ended unsold", map[string]any{
			"auction_id": a.AuctionID,
			"reason":     reason,
		})
		return nil
	}

	deadline := now.Add(s.cfg.GraceWindow)
	o := model.Order{
		OrderID:         utils.GenerateID(),
		AuctionID:       a.AuctionID,
		BuyerID:         a.CurrentWinnerID,
		SellerID:        a.SellerID,
		Amount:          a.CurrentPrice,
		Status:          model.OrderPendingPayment,
		PaymentDeadline: deadline,
		CreatedAt:       now,
	}
	if err := s.repo.CreateOrder(o); err != nil {
		return fmt.Errorf("create order for auction %s: %w", a.AuctionID, err)
	}

	if err := s.repo.SetWinningBidder(a.AuctionID, a.CurrentWinnerID); err != nil {
		return fmt.Errorf("flag winning bidder for auction %s: %w", a.AuctionID, err)
	}

	s.events.Publish(a.AuctionID, notifier.EventAuctionEnded, notifier.AuctionEndedPayload{
		Auction:         auctionSnapshot(updated),
		Reason:          notifier.CloseReasonSold,
		WinnerID:        a.CurrentWinnerID,
		OrderID:         o.OrderID,
		PaymentDeadline: &deadline,
	})
	utils.Info("auction ended sold", map[string]any{
		"auction_id": a.AuctionID,
		"winner_id":  a.CurrentWinnerID,
		"amount":     a.CurrentPrice,
		"order_id":   o.OrderID,
	})
	return nil
}

func auctionSnapshot(a model.Auction) notifier.AuctionSnapshot {
	return notifier.AuctionSnapshot{
		AuctionID:       a.AuctionID,
		CurrentPrice:    a.CurrentPrice,
		CurrentWinnerID: a.CurrentWinnerID,
		TotalBids:       a.TotalBids,
		Status:          string(a.Status),
	}
}
