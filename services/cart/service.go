package cart

import (
	"errors"
	"time"

	"servicehub/database/repository"
	cartRepo "servicehub/database/repository/cart"
	"servicehub/models"
	"servicehub/services/order"

	"github.com/google/uuid"
)

// CartService manages a user's pre-checkout provider selections.
type CartService interface {
	// AddItem appends a provider selection to the user's cart and returns
	// the updated cart.
	AddItem(req models.AddToCartRequest) (*models.Cart, error)
	// GetCart returns the user's cart. A user with no cart gets an empty one.
	GetCart(userID string) (*models.Cart, error)
	// RemoveItem removes one selection from the user's cart.
	RemoveItem(userID, itemID string) error
	// Clear empties the user's cart, typically after checkout.
	Clear(userID string) error
}

// DefaultCartService is the production CartService.
type DefaultCartService struct {
	Carts cartRepo.CartRepository
}

func (s *DefaultCartService) AddItem(req models.AddToCartRequest) (*models.Cart, error) {
	if req.UserID == "" || req.Provider.ID == "" {
		return nil, &order.ValidationError{Message: "userId and provider are required"}
	}
	item := models.CartItem{
		ID:           uuid.New().String(),
		Provider:     req.Provider,
		ScheduleTime: req.ScheduleTime,
		AddedAt:      time.Now(),
	}
	if req.FinalPrice != "" {
		item.Provider.Price = req.FinalPrice
	}
	if err := s.Carts.AddItem(req.UserID, item); err != nil {
		return nil, err
	}
	return s.GetCart(req.UserID)
}

func (s *DefaultCartService) GetCart(userID string) (*models.Cart, error) {
	cart, err := s.Carts.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		}
		return nil, err
	}
	return cart, nil
}

func (s *DefaultCartService) RemoveItem(userID, itemID string) error {
	return s.Carts.RemoveItem(userID, itemID)
}

func (s *DefaultCartService) Clear(userID string) error {
	if err := s.Carts.Clear(userID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}
