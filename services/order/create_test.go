package order

import (
	"testing"
	"time"

	"servicehub/models"
	"servicehub/services/relay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderFansOutToAllStores(t *testing.T) {
	f := newFixture()
	schedule := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	created := f.placeOrder(schedule)

	require.Len(t, created.Orders, 1)
	cartID := created.Orders[0].CartID
	require.NotEmpty(t, cartID)

	user, _ := f.users.GetByID("user-1")
	require.Len(t, user.Orders, 1)
	assert.Equal(t, cartID, user.Orders[0].CartID)
	assert.Equal(t, models.StatusPlaced, user.Orders[0].Status)
	assert.Equal(t, models.PaymentUnpaid, user.Orders[0].PaymentStatus)

	provider, _ := f.providers.GetByID("prov-1")
	require.Len(t, provider.Orders, 1)
	assert.Equal(t, cartID, provider.Orders[0].CartID)
	assert.Equal(t, "Jane Doe", provider.Orders[0].UserName)
	assert.Equal(t, 1500.0, provider.Orders[0].Price)

	require.Len(t, f.orders.orders, 1)
	assert.Equal(t, cartID, f.orders.orders[0].Orders[0].CartID)
	assert.Equal(t, models.PaymentUnpaid, f.orders.orders[0].PaymentStatus)

	require.Len(t, f.admins.admin.Orders, 1)
	assert.Equal(t, cartID, f.admins.admin.Orders[0].CartID)
	assert.Equal(t, "user-1", f.admins.admin.Orders[0].UserID)

	// The same unit id ties the user, provider and admin copies together.
	assert.Equal(t, user.Orders[0].ID, provider.Orders[0].ID)
	assert.Equal(t, user.Orders[0].ID, f.admins.admin.Orders[0].OrderID)
}

func TestCreateOrderPublishesNewOrderEvent(t *testing.T) {
	f := newFixture()

	created := f.placeOrder(time.Now().Add(24 * time.Hour))

	require.Len(t, f.relay.events, 1)
	assert.Equal(t, relay.EventNewOrder, f.relay.events[0].Event)
	assert.Same(t, created, f.relay.events[0].Payload)
}

func TestCreateOrderSchedulesReminders(t *testing.T) {
	f := newFixture()
	schedule := time.Now().Add(72 * time.Hour)

	f.placeOrder(schedule)

	require.Len(t, f.scheduler.payloads, 1)
	assert.Equal(t, "user-1", f.scheduler.payloads[0].UserID)
	assert.Equal(t, "Sparkle Cleaners", f.scheduler.payloads[0].ProviderName)
}

func TestCreateOrderReminderFailureDoesNotFailCheckout(t *testing.T) {
	f := newFixture()
	f.scheduler.err = assert.AnError

	created, err := f.svc.CreateOrder(models.AddOrderRequest{
		UserID: "user-1",
		Orders: []models.LineItemInput{{
			Provider:     models.ProviderSummary{ID: "prov-1", Email: "sparkle@example.com"},
			ScheduleTime: time.Now().Add(24 * time.Hour),
		}},
		TotalPrice:   1500,
		UserLocation: models.LatLng{Lat: -1.3, Lng: 36.8},
	})

	require.NoError(t, err)
	assert.NotNil(t, created)
}

func TestCreateOrderKeepsClientCartID(t *testing.T) {
	f := newFixture()

	created, err := f.svc.CreateOrder(models.AddOrderRequest{
		UserID: "user-1",
		Orders: []models.LineItemInput{{
			Provider:     models.ProviderSummary{ID: "prov-1", Email: "sparkle@example.com"},
			CartID:       "cart-abc",
			ScheduleTime: time.Now().Add(24 * time.Hour),
		}},
		TotalPrice:   1500,
		UserLocation: models.LatLng{Lat: -1.3, Lng: 36.8},
	})

	require.NoError(t, err)
	assert.Equal(t, "cart-abc", created.Orders[0].CartID)

	provider, _ := f.providers.GetByID("prov-1")
	assert.Equal(t, "cart-abc", provider.Orders[0].CartID)
}

func TestCreateOrderRejectsInvalidInput(t *testing.T) {
	f := newFixture()

	cases := []models.AddOrderRequest{
		{},
		{UserID: "user-1"},
		{
			UserID: "user-1",
			Orders: []models.LineItemInput{{Provider: models.ProviderSummary{ID: "prov-1"}}},
		},
		{
			UserID:     "user-1",
			Orders:     []models.LineItemInput{{Provider: models.ProviderSummary{ID: "prov-1"}}},
			TotalPrice: 1500,
		},
	}
	for _, req := range cases {
		_, err := f.svc.CreateOrder(req)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	}
	assert.Empty(t, f.relay.events)
}

func TestCreateOrderUnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateOrder(models.AddOrderRequest{
		UserID: "nobody",
		Orders: []models.LineItemInput{{
			Provider:     models.ProviderSummary{ID: "prov-1"},
			ScheduleTime: time.Now().Add(time.Hour),
		}},
		TotalPrice:   1500,
		UserLocation: models.LatLng{Lat: -1.3, Lng: 36.8},
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user", nf.Resource)
}

func TestCreateOrderUnknownProviderLeavesUserCopyBehind(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateOrder(models.AddOrderRequest{
		UserID: "user-1",
		Orders: []models.LineItemInput{{
			Provider:     models.ProviderSummary{ID: "ghost", Email: "ghost@example.com"},
			ScheduleTime: time.Now().Add(time.Hour),
		}},
		TotalPrice:   1500,
		UserLocation: models.LatLng{Lat: -1.3, Lng: 36.8},
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "provider", nf.Resource)

	// The user copy was written before the provider lookup failed; the
	// partial write is visible, not rolled back.
	user, _ := f.users.GetByID("user-1")
	assert.Len(t, user.Orders, 1)
	assert.Empty(t, f.orders.orders)
	assert.Empty(t, f.relay.events)
}
