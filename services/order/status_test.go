package order

import (
	"testing"
	"time"

	"servicehub/models"
	"servicehub/services/relay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusByCartIDUpdatesAllStores(t *testing.T) {
	f := newFixture()
	created := f.placeOrder(time.Now().Add(24 * time.Hour))
	cartID := created.Orders[0].CartID
	f.relay.events = nil

	err := f.svc.UpdateStatusByCartID("user-1", cartID, models.StatusAccepted)
	require.NoError(t, err)

	user, _ := f.users.GetByID("user-1")
	assert.Equal(t, models.StatusAccepted, user.Orders[0].Status)
	provider, _ := f.providers.GetByID("prov-1")
	assert.Equal(t, models.StatusAccepted, provider.Orders[0].Status)
	assert.Equal(t, models.StatusAccepted, f.orders.orders[0].Orders[0].Status)
	assert.Equal(t, models.StatusAccepted, f.admins.admin.Orders[0].Status)

	require.Len(t, f.relay.events, 1)
	assert.Equal(t, relay.EventOrderStatusUpdated, f.relay.events[0].Event)
	payload := f.relay.events[0].Payload.(relay.OrderStatusPayload)
	assert.Equal(t, cartID, payload.CartID)
	assert.Equal(t, "sparkle@example.com", payload.ProviderEmail)
	assert.Equal(t, models.StatusAccepted, payload.Status)
}

func TestUpdateStatusBySchedule(t *testing.T) {
	f := newFixture()
	schedule := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	created := f.placeOrder(schedule)
	f.relay.events = nil

	err := f.svc.UpdateStatusBySchedule("user-1", "sparkle@example.com", schedule, models.StatusOnsite)
	require.NoError(t, err)

	user, _ := f.users.GetByID("user-1")
	assert.Equal(t, models.StatusOnsite, user.Orders[0].Status)
	assert.Equal(t, models.StatusOnsite, f.admins.admin.Orders[0].Status)

	require.Len(t, f.relay.events, 1)
	payload := f.relay.events[0].Payload.(relay.OrderStatusPayload)
	assert.Equal(t, created.Orders[0].CartID, payload.CartID)
	assert.True(t, payload.ScheduleTime.Equal(schedule))
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture()
	created := f.placeOrder(time.Now().Add(24 * time.Hour))

	err := f.svc.UpdateStatusByCartID("user-1", created.Orders[0].CartID, "teleported")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	provider, _ := f.providers.GetByID("prov-1")
	assert.Equal(t, models.StatusPlaced, provider.Orders[0].Status)
}

func TestUpdateStatusRejectsTerminalTransitions(t *testing.T) {
	f := newFixture()
	created := f.placeOrder(time.Now().Add(24 * time.Hour))
	cartID := created.Orders[0].CartID

	require.NoError(t, f.svc.UpdateStatusByCartID("user-1", cartID, models.StatusCompleted))

	for _, next := range []string{models.StatusPlaced, models.StatusAccepted, models.StatusCancelled} {
		err := f.svc.UpdateStatusByCartID("user-1", cartID, next)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, "transition out of completed to %s", next)
	}
	provider, _ := f.providers.GetByID("prov-1")
	assert.Equal(t, models.StatusCompleted, provider.Orders[0].Status)
}

func TestUpdateStatusUnknownCartID(t *testing.T) {
	f := newFixture()
	f.placeOrder(time.Now().Add(24 * time.Hour))

	err := f.svc.UpdateStatusByCartID("user-1", "missing-cart", models.StatusAccepted)

	var miss *OrderNotFoundError
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, StoreProvider, miss.Store)
}

func TestUpdateStatusPartialFailureIsExposed(t *testing.T) {
	f := newFixture()
	created := f.placeOrder(time.Now().Add(24 * time.Hour))
	cartID := created.Orders[0].CartID
	f.relay.events = nil

	// Drop the top-level order doc so the third store in the sequence
	// misses its correlation key.
	f.orders.orders = nil

	err := f.svc.UpdateStatusByCartID("user-1", cartID, models.StatusAccepted)

	var miss *OrderNotFoundError
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, StoreOrder, miss.Store)

	// Provider and user copies were already updated; the stores now
	// disagree and nothing rolls that back.
	provider, _ := f.providers.GetByID("prov-1")
	assert.Equal(t, models.StatusAccepted, provider.Orders[0].Status)
	user, _ := f.users.GetByID("user-1")
	assert.Equal(t, models.StatusAccepted, user.Orders[0].Status)
	assert.Equal(t, models.StatusPlaced, f.admins.admin.Orders[0].Status)

	assert.Empty(t, f.relay.events)
}

func TestCancelByUser(t *testing.T) {
	f := newFixture()
	schedule := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	f.placeOrder(schedule)
	user, _ := f.users.GetByID("user-1")
	unitID := user.Orders[0].ID
	f.relay.events = nil

	err := f.svc.CancelByUser(models.CancelOrderRequest{
		OrderID:       unitID,
		UserID:        "user-1",
		ProviderEmail: "sparkle@example.com",
		ScheduleTime:  schedule,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCancelled, user.Orders[0].Status)
	provider, _ := f.providers.GetByID("prov-1")
	assert.Equal(t, models.StatusCancelled, provider.Orders[0].Status)
	assert.Equal(t, models.StatusCancelled, f.orders.orders[0].Orders[0].Status)
	assert.Equal(t, models.StatusCancelled, f.admins.admin.Orders[0].Status)

	require.Len(t, f.relay.events, 1)
	payload := f.relay.events[0].Payload.(relay.OrderStatusPayload)
	assert.Equal(t, models.StatusCancelled, payload.Status)
}

func TestCancelByUserRejectsCompletedOrder(t *testing.T) {
	f := newFixture()
	schedule := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	created := f.placeOrder(schedule)
	require.NoError(t, f.svc.UpdateStatusByCartID("user-1", created.Orders[0].CartID, models.StatusCompleted))

	user, _ := f.users.GetByID("user-1")
	err := f.svc.CancelByUser(models.CancelOrderRequest{
		OrderID:       user.Orders[0].ID,
		UserID:        "user-1",
		ProviderEmail: "sparkle@example.com",
		ScheduleTime:  schedule,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
