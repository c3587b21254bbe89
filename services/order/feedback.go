package order

import (
	"fmt"
	"time"

	"servicehub/models"
)

// SubmitFeedback attaches a review to a completed order unit in all four
// stores and recomputes the provider's aggregate rating. Resubmitting for the
// same unit replaces the earlier review rather than adding a second one.
func (s *DefaultOrderService) SubmitFeedback(req models.FeedbackRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return &ValidationError{Message: fmt.Sprintf("rating must be between 1 and 5, got %d", req.Rating)}
	}

	unit, err := s.Users.GetOrderByUnitID(req.UserID, req.OrderID)
	if err != nil {
		return storeErr(err, StoreUser)
	}
	if unit.Status != models.StatusCompleted {
		return &ValidationError{Message: "feedback is only accepted for completed orders"}
	}

	now := time.Now()
	review := models.Review{
		UserID:       req.UserID,
		Star:         req.Rating,
		Comment:      req.Comment,
		ScheduleTime: req.ScheduleTime,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Users.UpsertOrderReview(req.UserID, req.OrderID, review); err != nil {
		return storeErr(err, StoreUser)
	}
	if err := s.Providers.UpsertOrderReview(req.ProviderEmail, req.UserID, req.ScheduleTime, review); err != nil {
		return storeErr(err, StoreProvider)
	}
	if err := s.recomputeRating(req.ProviderEmail); err != nil {
		return err
	}
	if err := s.Orders.UpsertLineReview(req.UserID, req.ProviderEmail, req.ScheduleTime, review); err != nil {
		return storeErr(err, StoreOrder)
	}
	if err := s.Admins.UpsertOrderReview(req.UserID, req.ProviderEmail, req.ScheduleTime, review); err != nil {
		return storeErr(err, StoreAdmin)
	}
	return nil
}

// recomputeRating rebuilds the provider's aggregate rating from every review
// across its embedded order units. Recomputing from scratch keeps the
// aggregate correct when a review is replaced instead of added.
func (s *DefaultOrderService) recomputeRating(providerEmail string) error {
	provider, err := s.Providers.GetByEmail(providerEmail)
	if err != nil {
		return storeErr(err, StoreProvider)
	}

	var sum, count int
	for i := range provider.Orders {
		for _, rv := range provider.Orders[i].Reviews {
			sum += rv.Star
			count++
		}
	}

	var average float64
	if count > 0 {
		average = float64(sum) / float64(count)
	}
	if err := s.Providers.UpdateRating(provider.ID, average, count); err != nil {
		return storeErr(err, StoreProvider)
	}
	return nil
}
