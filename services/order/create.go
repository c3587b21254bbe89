package order

import (
	"time"

	"servicehub/models"
	"servicehub/services/relay"
	"servicehub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateOrder writes one order unit per line item into the four stores, in
// the sequence user, provider (one write per provider), top-level order and
// finally admin. The writes are sequential and independent; a failure part
// way through leaves the earlier stores updated.
func (s *DefaultOrderService) CreateOrder(req models.AddOrderRequest) (*models.Order, error) {
	if req.UserID == "" || len(req.Orders) == 0 || req.TotalPrice == 0 ||
		(req.UserLocation == models.LatLng{}) {
		return nil, &ValidationError{Message: "invalid input data"}
	}

	user, err := s.Users.GetByID(req.UserID)
	if err != nil {
		return nil, entityErr(err, "user", req.UserID)
	}

	now := time.Now()
	userOrders := make([]models.UserOrder, 0, len(req.Orders))
	unitIDs := make([]string, len(req.Orders))
	for i, item := range req.Orders {
		unitIDs[i] = uuid.New().String()
		cartID := item.CartID
		if cartID == "" {
			cartID = uuid.New().String()
		}
		req.Orders[i].CartID = cartID

		userOrders = append(userOrders, models.UserOrder{
			ID:            unitIDs[i],
			Provider:      item.Provider,
			UserID:        req.UserID,
			ProviderEmail: item.Provider.Email,
			ProviderLocation: models.LatLng{
				Lat: item.ProviderLocation.Latitude,
				Lng: item.ProviderLocation.Longitude,
			},
			CartID:        cartID,
			ScheduleTime:  item.ScheduleTime,
			OrderPlacedAt: now,
			Status:        models.StatusPlaced,
			PaymentStatus: models.PaymentUnpaid,
		})
	}
	if err := s.Users.AppendOrders(user.ID, userOrders); err != nil {
		return nil, entityErr(err, "user", user.ID)
	}

	admin, err := s.Admins.GetSingleton()
	if err != nil {
		return nil, entityErr(err, "admin", "")
	}

	lineItems := make([]models.OrderLineItem, 0, len(req.Orders))
	adminOrders := make([]models.AdminOrder, 0, len(req.Orders))
	for i, item := range req.Orders {
		provider, err := s.Providers.GetByID(item.Provider.ID)
		if err != nil {
			return nil, entityErr(err, "provider", item.Provider.ID)
		}

		providerOrder := models.ProviderOrder{
			ID:        unitIDs[i],
			UserID:    user.ID,
			UserName:  user.Name,
			UserPhone: user.Phone,
			UserEmail: user.Email,
			UserLocation: models.LatLon{
				Lat: req.UserLocation.Lat,
				Lon: req.UserLocation.Lng,
			},
			CartID:        item.CartID,
			ScheduleTime:  item.ScheduleTime,
			OrderPlacedAt: now,
			Status:        models.StatusPlaced,
			Price:         req.TotalPrice,
			PaymentStatus: models.PaymentUnpaid,
		}
		if err := s.Providers.AppendOrder(provider.ID, providerOrder); err != nil {
			return nil, entityErr(err, "provider", provider.ID)
		}

		lineItems = append(lineItems, models.OrderLineItem{
			ID: unitIDs[i],
			Provider: models.ProviderSummary{
				ID:          provider.ID,
				Name:        provider.Name,
				Description: provider.Description,
				Price:       provider.Price,
				Email:       provider.Email,
				Phone:       provider.Phone,
				Address:     provider.Address,
				Image:       provider.Image,
			},
			UserID:        user.ID,
			ProviderEmail: provider.Email,
			CartID:        item.CartID,
			ScheduleTime:  item.ScheduleTime,
			OrderPlacedAt: now,
			Status:        models.StatusPlaced,
		})

		adminOrders = append(adminOrders, models.AdminOrder{
			OrderID: unitIDs[i],
			User: models.AdminUserSummary{
				UserID: user.ID,
				Name:   user.Name,
				Phone:  user.Phone,
				Location: models.LatLon{
					Lat: req.UserLocation.Lat,
					Lon: req.UserLocation.Lng,
				},
			},
			Provider: models.AdminProviderSummary{
				ProviderID: provider.ID,
				Name:       provider.Name,
				Phone:      provider.Phone,
				Location: models.LatLon{
					Lat: provider.Location.Latitude,
					Lon: provider.Location.Longitude,
				},
			},
			UserID:          user.ID,
			ProviderEmail:   provider.Email,
			CartID:          item.CartID,
			TimeOrderPlaced: now,
			ScheduleTime:    item.ScheduleTime,
			Status:          models.StatusPlaced,
			Price:           req.TotalPrice,
			PaymentStatus:   models.PaymentUnpaid,
		})
	}

	orderDoc := &models.Order{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		Orders:        lineItems,
		TotalPrice:    req.TotalPrice,
		PaymentStatus: models.PaymentUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Orders.Create(orderDoc); err != nil {
		return nil, err
	}

	if err := s.Admins.AppendOrders(admin.ID, adminOrders); err != nil {
		return nil, entityErr(err, "admin", admin.ID)
	}

	if s.Relay != nil {
		s.Relay.Publish(relay.EventNewOrder, orderDoc)
	}
	s.scheduleReminders(user.ID, req.Orders)

	return orderDoc, nil
}

// scheduleReminders queues a pre-service reminder per line item. Failures are
// logged and never fail the checkout.
func (s *DefaultOrderService) scheduleReminders(userID string, items []models.LineItemInput) {
	if s.Reminders == nil {
		return
	}
	for _, item := range items {
		payload := models.ReminderPayload{
			CartID:        item.CartID,
			UserID:        userID,
			ProviderName:  item.Provider.Name,
			ProviderEmail: item.Provider.Email,
			ScheduleTime:  item.ScheduleTime,
		}
		if err := s.Reminders.ScheduleReminder(payload); err != nil {
			utils.GetLogger().Warn("failed to schedule service reminder",
				zap.String("cartId", item.CartID), zap.Error(err))
		}
	}
}
