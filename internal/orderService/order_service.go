package order

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"fmt"
	"time"
)

// Service drives the order state machine after an auction has closed:
// pending_payment -> paid -> shipped -> delivered. Cancellation on a
// missed payment deadline is handled by the fallback sweep, not here.
type Service struct {
	repo repository.LedgerStore
	now  func() time.Time
}

// NewService creates a new order service
func NewService(repo repository.LedgerStore) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Pay marks a pending order as paid. Only the buyer may pay.
func (s *Service) Pay(orderID, actorID string) (model.Order, error) {
	o, err := s.repo.GetOrder(orderID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: pay order %s: %w", orderID, err)
	}
	if o.BuyerID != actorID {
		return model.Order{}, fmt.Errorf("service: pay order %s: %w", orderID, auctionerrors.ErrNotAuthorized)
	}
	if o.Status != model.OrderPendingPayment {
		return model.Order{}, fmt.Errorf("service: pay order %s in status %s: %w", orderID, o.Status, auctionerrors.ErrInvalidOrderState)
	}

	o.Status = model.OrderPaid
	if err := s.repo.UpdateOrder(o); err != nil {
		return model.Order{}, fmt.Errorf("service: pay order %s: %w", orderID, err)
	}
	return o, nil
}

// Ship marks a paid order as shipped. Only the seller may ship.
func (s *Service) Ship(orderID, actorID, trackingNumber string) (model.Order, error) {
	o, err := s.repo.GetOrder(orderID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: ship order %s: %w", orderID, err)
	}
	if o.SellerID != actorID {
		return model.Order{}, fmt.Errorf("service: ship order %s: %w", orderID, auctionerrors.ErrNotAuthorized)
	}
	if o.Status != model.OrderPaid {
		return model.Order{}, fmt.Errorf("service: ship order %s in status %s: %w", orderID, o.Status, auctionerrors.ErrInvalidOrderState)
	}

	shipped := s.now().UTC()
	o.Status = model.OrderShipped
	o.TrackingNumber = trackingNumber
	o.ShippedAt = &shipped
	if err := s.repo.UpdateOrder(o); err != nil {
		return model.Order{}, fmt.Errorf("service: ship order %s: %w", orderID, err)
	}
	return o, nil
}

// ConfirmDelivery marks a shipped order as delivered. Only the buyer may
// confirm.
func (s *Service) ConfirmDelivery(orderID, actorID string) (model.Order, error) {
	o, err := s.repo.GetOrder(orderID)
	if err != nil {
		return model.Order{}, fmt.Errorf("service: confirm delivery of order %s: %w", orderID, err)
	}
	if o.BuyerID != actorID {
		return model.Order{}, fmt.Errorf("service: confirm delivery of order %s: %w", orderID, auctionerrors.ErrNotAuthorized)
	}
	if o.Status != model.OrderShipped {
		return model.Order{}, fmt.Errorf("service: confirm delivery of order %s in status %s: %w", orderID, o.Status, auctionerrors.ErrInvalidOrderState)
	}

	delivered := s.now().UTC()
	o.Status = model.OrderDelivered
	o.DeliveredAt = &delivered
	if err := s.repo.UpdateOrder(o); err != nil {
		return model.Order{}, fmt.Errorf("service: confirm delivery of order %s: %w", orderID, err)
	}
	return o, nil
}

// ListForUser returns orders where the user is buyer or seller
func (s *Service) ListForUser(userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidOrderState)
	}
	orders, err := s.repo.GetOrdersByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: list orders for user %s: %w", userID, err)
	}
	return orders, nil
}
