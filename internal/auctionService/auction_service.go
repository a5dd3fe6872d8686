package auction

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
	"errors"
	"fmt"
	"time"
)

// maxUpdateRetries bounds CAS retries when rewriting an auction after a
// concurrent update.
const maxUpdateRetries = 3

// Service manages auction listings: creation, lookup, cancellation and
// watch lists. Bidding and closing live elsewhere.
type Service struct {
	repo repository.LedgerStore
	now  func() time.Time
}

// NewService creates a new auction lifecycle service
func NewService(repo repository.LedgerStore) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateParams carries the seller-supplied fields for a new listing
type CreateParams struct {
	SellerID         string
	Title            string
	Description      string
	Condition        string
	StartingPrice    float64
	MinimumIncrement float64
	BuyNowPrice      float64
	ReservePrice     float64
	EndTime          time.Time
}

// Create validates and stores a new auction, open for bids immediately
func (s *Service) Create(p CreateParams) (model.Auction, error) {
	if p.SellerID == "" || p.Title == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing seller or title", auctionerrors.ErrInvalidAuction)
	}
	if p.StartingPrice < 0 {
		return model.Auction{}, fmt.Errorf("service: %w - negative starting price", auctionerrors.ErrInvalidAuction)
	}
	if p.ReservePrice < 0 {
		return model.Auction{}, fmt.Errorf("service: %w - negative reserve price", auctionerrors.ErrInvalidAuction)
	}
	if p.MinimumIncrement == 0 {
		p.MinimumIncrement = 1
	}
	if p.MinimumIncrement < 0.01 {
		return model.Auction{}, fmt.Errorf("service: %w - minimum increment below 0.01", auctionerrors.ErrInvalidAuction)
	}

	now := s.now().UTC()
	if !p.EndTime.After(now) {
		return model.Auction{}, fmt.Errorf("service: %w - end time must be after start time", auctionerrors.ErrInvalidAuction)
	}

	a := model.Auction{
		AuctionID:        utils.GenerateID(),
		SellerID:         p.SellerID,
		Title:            p.Title,
		Description:      p.Description,
		Condition:        p.Condition,
		StartingPrice:    p.StartingPrice,
		CurrentPrice:     p.StartingPrice,
		MinimumIncrement: p.MinimumIncrement,
		BuyNowPrice:      p.BuyNowPrice,
		ReservePrice:     p.ReservePrice,
		StartTime:        now,
		EndTime:          p.EndTime.UTC(),
		Status:           model.AuctionActive,
		CreatedAt:        now,
	}
	if err := s.repo.CreateAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("service: create auction: %w", err)
	}
	return a, nil
}

// Get returns a single auction by id
func (s *Service) Get(auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// ListByStatus returns all auctions in the given status
func (s *Service) ListByStatus(status model.AuctionStatus) ([]model.Auction, error) {
	switch status {
	case model.AuctionPending, model.AuctionActive, model.AuctionEnded, model.AuctionCancelled:
	default:
		return nil, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidAuction, status)
	}
	auctions, err := s.repo.ListAuctionsByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("service: list auctions by status %s: %w", status, err)
	}
	return auctions, nil
}

// Cancel withdraws a listing. Only the seller may cancel, and only while
// no bid has been placed.
func (s *Service) Cancel(auctionID, actorID string) (model.Auction, error) {
	var lastErr error
	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		a, err := s.repo.GetAuction(auctionID)
		if err != nil {
			return model.Auction{}, fmt.Errorf("service: cancel auction %s: %w", auctionID, err)
		}
		if a.SellerID != actorID {
			return model.Auction{}, fmt.Errorf("service: cancel auction %s: %w", auctionID, auctionerrors.ErrNotAuthorized)
		}
		if a.Status != model.AuctionPending && a.Status != model.AuctionActive {
			return model.Auction{}, fmt.Errorf("service: cancel auction %s: %w", auctionID, auctionerrors.ErrNotActive)
		}
		if a.TotalBids > 0 {
			return model.Auction{}, fmt.Errorf("service: cancel auction %s: %w", auctionID, auctionerrors.ErrAuctionHasBids)
		}

		a.Status = model.AuctionCancelled
		updated, err := s.repo.UpdateAuction(a)
		if errors.Is(err, auctionerrors.ErrStoreConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			return model.Auction{}, fmt.Errorf("service: cancel auction %s: %w", auctionID, err)
		}
		return updated, nil
	}
	return model.Auction{}, fmt.Errorf("service: cancel auction %s: retries exhausted: %w", auctionID, lastErr)
}

// Watch adds a user to the auction's watcher set
func (s *Service) Watch(auctionID, userID string) (model.Auction, error) {
	if userID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidAuction)
	}
	var lastErr error
	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		a, err := s.repo.GetAuction(auctionID)
		if err != nil {
			return model.Auction{}, fmt.Errorf("service: watch auction %s: %w", auctionID, err)
		}
		for _, w := range a.Watchers {
			if w == userID {
				return a, nil
			}
		}

		a.Watchers = append(a.Watchers, userID)
		updated, err := s.repo.UpdateAuction(a)
		if errors.Is(err, auctionerrors.ErrStoreConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			return model.Auction{}, fmt.Errorf("service: watch auction %s: %w", auctionID, err)
		}
		return updated, nil
	}
	return model.Auction{}, fmt.Errorf("service: watch auction %s: retries exhausted: %w", auctionID, lastErr)
}
