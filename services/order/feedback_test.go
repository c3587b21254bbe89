package order

import (
	"testing"
	"time"

	"servicehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) completeOrder(t *testing.T, schedule time.Time) (unitID, cartID string) {
	t.Helper()
	created := f.placeOrder(schedule)
	cartID = created.Orders[0].CartID
	require.NoError(t, f.svc.UpdateStatusByCartID("user-1", cartID, models.StatusCompleted))
	user, _ := f.users.GetByID("user-1")
	return user.Orders[len(user.Orders)-1].ID, cartID
}

func TestSubmitFeedbackUpsertsReviewEverywhere(t *testing.T) {
	f := newFixture()
	schedule := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	unitID, _ := f.completeOrder(t, schedule)

	err := f.svc.SubmitFeedback(models.FeedbackRequest{
		UserID:        "user-1",
		OrderID:       unitID,
		ProviderEmail: "sparkle@example.com",
		ScheduleTime:  schedule,
		Rating:        4,
		Comment:       "great job",
	})
	require.NoError(t, err)

	user, _ := f.users.GetByID("user-1")
	require.Len(t, user.Orders[0].Reviews, 1)
	assert.Equal(t, 4, user.Orders[0].Reviews[0].Star)
	assert.Equal(t, "great job", user.Orders[0].Reviews[0].Comment)

	provider, _ := f.providers.GetByID("prov-1")
	require.Len(t, provider.Orders[0].Reviews, 1)
	require.Len(t, f.orders.orders[0].Orders[0].Reviews, 1)
	require.Len(t, f.admins.admin.Orders[0].Reviews, 1)

	assert.Equal(t, 4.0, provider.TotalRating.Average)
	assert.Equal(t, 1, provider.TotalRating.Count)
}

func TestSubmitFeedbackReplaceKeepsSingleReview(t *testing.T) {
	f := newFixture()
	schedule := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	unitID, _ := f.completeOrder(t, schedule)

	req := models.FeedbackRequest{
		UserID:        "user-1",
		OrderID:       unitID,
		ProviderEmail: "sparkle@example.com",
		ScheduleTime:  schedule,
		Rating:        2,
		Comment:       "late",
	}
	require.NoError(t, f.svc.SubmitFeedback(req))

	req.Rating = 5
	req.Comment = "made up for it"
	require.NoError(t, f.svc.SubmitFeedback(req))

	provider, _ := f.providers.GetByID("prov-1")
	require.Len(t, provider.Orders[0].Reviews, 1)
	assert.Equal(t, 5, provider.Orders[0].Reviews[0].Star)
	assert.Equal(t, 5.0, provider.TotalRating.Average)
	assert.Equal(t, 1, provider.TotalRating.Count)

	user, _ := f.users.GetByID("user-1")
	require.Len(t, user.Orders[0].Reviews, 1)
}

func TestSubmitFeedbackAveragesAcrossOrders(t *testing.T) {
	f := newFixture()
	first := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	second := first.Add(48 * time.Hour)
	unitA, _ := f.completeOrder(t, first)
	unitB, _ := f.completeOrder(t, second)

	require.NoError(t, f.svc.SubmitFeedback(models.FeedbackRequest{
		UserID: "user-1", OrderID: unitA, ProviderEmail: "sparkle@example.com",
		ScheduleTime: first, Rating: 5,
	}))
	require.NoError(t, f.svc.SubmitFeedback(models.FeedbackRequest{
		UserID: "user-1", OrderID: unitB, ProviderEmail: "sparkle@example.com",
		ScheduleTime: second, Rating: 2,
	}))

	provider, _ := f.providers.GetByID("prov-1")
	assert.Equal(t, 3.5, provider.TotalRating.Average)
	assert.Equal(t, 2, provider.TotalRating.Count)
}

func TestSubmitFeedbackRequiresCompletedOrder(t *testing.T) {
	f := newFixture()
	schedule := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	f.placeOrder(schedule)
	user, _ := f.users.GetByID("user-1")

	err := f.svc.SubmitFeedback(models.FeedbackRequest{
		UserID:        "user-1",
		OrderID:       user.Orders[0].ID,
		ProviderEmail: "sparkle@example.com",
		ScheduleTime:  schedule,
		Rating:        4,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	provider, _ := f.providers.GetByID("prov-1")
	assert.Empty(t, provider.Orders[0].Reviews)
}

func TestSubmitFeedbackRejectsOutOfRangeRating(t *testing.T) {
	f := newFixture()
	schedule := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	unitID, _ := f.completeOrder(t, schedule)

	for _, rating := range []int{0, -1, 6} {
		err := f.svc.SubmitFeedback(models.FeedbackRequest{
			UserID:       "user-1",
			OrderID:      unitID,
			ScheduleTime: schedule,
			Rating:       rating,
		})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, "rating %d", rating)
	}
}
