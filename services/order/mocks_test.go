package order

import (
	"time"

	"servicehub/database/repository"
	"servicehub/models"
	"servicehub/services/relay"
)

// In-memory repository fakes backing the service tests. They mirror the
// matching semantics of the Mongo implementations, including ErrNotFound on
// a missed correlation key.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetOrders(userID string) ([]models.UserOrder, error) {
	u, err := r.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return u.Orders, nil
}

func (r *fakeUserRepo) GetOrderByUnitID(userID, unitID string) (*models.UserOrder, error) {
	u, err := r.GetByID(userID)
	if err != nil {
		return nil, err
	}
	for i := range u.Orders {
		if u.Orders[i].ID == unitID {
			return &u.Orders[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) AppendOrders(userID string, orders []models.UserOrder) error {
	u, err := r.GetByID(userID)
	if err != nil {
		return err
	}
	u.Orders = append(u.Orders, orders...)
	return nil
}

func (r *fakeUserRepo) SetOrderStatusByCartID(userID, cartID, status string) error {
	u, err := r.GetByID(userID)
	if err != nil {
		return err
	}
	for i := range u.Orders {
		if u.Orders[i].CartID == cartID {
			u.Orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeUserRepo) SetOrderStatusByUnitID(userID, unitID, status string) error {
	u, err := r.GetByID(userID)
	if err != nil {
		return err
	}
	for i := range u.Orders {
		if u.Orders[i].ID == unitID {
			u.Orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeUserRepo) SetOrderStatusBySchedule(userID, providerEmail string, scheduleTime time.Time, status string) error {
	u, err := r.GetByID(userID)
	if err != nil {
		return err
	}
	for i := range u.Orders {
		if u.Orders[i].ProviderEmail == providerEmail && u.Orders[i].ScheduleTime.Equal(scheduleTime) {
			u.Orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeUserRepo) SetOrderPaymentByCartID(cartID, paymentStatus, transactionID string) error {
	for _, u := range r.users {
		for i := range u.Orders {
			if u.Orders[i].CartID == cartID {
				u.Orders[i].PaymentStatus = paymentStatus
				u.Orders[i].TransactionID = transactionID
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func (r *fakeUserRepo) UpsertOrderReview(userID, unitID string, review models.Review) error {
	u, err := r.GetByID(userID)
	if err != nil {
		return err
	}
	for i := range u.Orders {
		if u.Orders[i].ID == unitID {
			u.Orders[i].Reviews = upsertReview(u.Orders[i].Reviews, review)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]*models.Provider)}
}

func (r *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (r *fakeProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	for _, p := range r.providers {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProviderRepo) GetAll() ([]models.Provider, error) {
	out := make([]models.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProviderRepo) Create(p *models.Provider) error {
	r.providers[p.ID] = p
	return nil
}

func (r *fakeProviderRepo) GetOrders(providerID string) ([]models.ProviderOrder, error) {
	p, err := r.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	return p.Orders, nil
}

func (r *fakeProviderRepo) GetOrderByCartID(cartID string) (*models.ProviderOrder, string, error) {
	for _, p := range r.providers {
		for i := range p.Orders {
			if p.Orders[i].CartID == cartID {
				return &p.Orders[i], p.Email, nil
			}
		}
	}
	return nil, "", repository.ErrNotFound
}

func (r *fakeProviderRepo) GetOrderBySchedule(providerEmail string, scheduleTime time.Time) (*models.ProviderOrder, error) {
	for _, p := range r.providers {
		if p.Email != providerEmail {
			continue
		}
		for i := range p.Orders {
			if p.Orders[i].ScheduleTime.Equal(scheduleTime) {
				return &p.Orders[i], nil
			}
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProviderRepo) AppendOrder(providerID string, order models.ProviderOrder) error {
	p, err := r.GetByID(providerID)
	if err != nil {
		return err
	}
	p.Orders = append(p.Orders, order)
	return nil
}

func (r *fakeProviderRepo) SetOrderStatusByCartID(cartID, status string) error {
	for _, p := range r.providers {
		for i := range p.Orders {
			if p.Orders[i].CartID == cartID {
				p.Orders[i].Status = status
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func (r *fakeProviderRepo) SetOrderStatusBySchedule(providerEmail string, scheduleTime time.Time, status string) error {
	for _, p := range r.providers {
		if p.Email != providerEmail {
			continue
		}
		for i := range p.Orders {
			if p.Orders[i].ScheduleTime.Equal(scheduleTime) {
				p.Orders[i].Status = status
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func (r *fakeProviderRepo) SetOrderPaymentByCartID(cartID, paymentStatus, transactionID string) error {
	for _, p := range r.providers {
		for i := range p.Orders {
			if p.Orders[i].CartID == cartID {
				p.Orders[i].PaymentStatus = paymentStatus
				p.Orders[i].TransactionID = transactionID
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func (r *fakeProviderRepo) UpsertOrderReview(providerEmail, reviewerID string, scheduleTime time.Time, review models.Review) error {
	for _, p := range r.providers {
		if p.Email != providerEmail {
			continue
		}
		for i := range p.Orders {
			if p.Orders[i].UserID == reviewerID && p.Orders[i].ScheduleTime.Equal(scheduleTime) {
				p.Orders[i].Reviews = upsertReview(p.Orders[i].Reviews, review)
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func (r *fakeProviderRepo) UpdateRating(providerID string, average float64, count int) error {
	p, err := r.GetByID(providerID)
	if err != nil {
		return err
	}
	p.TotalRating = models.Rating{Average: average, Count: count}
	return nil
}

type fakeOrderRepo struct {
	orders []*models.Order
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) GetByUserID(userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) SetLineStatusByCartID(cartID, status string) error {
	for _, o := range r.orders {
		for i := range o.Orders {
			if o.Orders[i].CartID == cartID {
				o.Orders[i].Status = status
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func (r *fakeOrderRepo) SetLineStatusBySchedule(userID, providerEmail string, scheduleTime time.Time, status string) error {
	for _, o := range r.orders {
		for i := range o.Orders {
			line := &o.Orders[i]
			if line.UserID == userID && line.ProviderEmail == providerEmail && line.ScheduleTime.Equal(scheduleTime) {
				line.Status = status
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func (r *fakeOrderRepo) SetPaymentByCartID(cartID, paymentStatus, transactionID string) error {
	for _, o := range r.orders {
		for i := range o.Orders {
			if o.Orders[i].CartID == cartID {
				o.PaymentStatus = paymentStatus
				o.TransactionID = transactionID
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func (r *fakeOrderRepo) UpsertLineReview(userID, providerEmail string, scheduleTime time.Time, review models.Review) error {
	for _, o := range r.orders {
		for i := range o.Orders {
			line := &o.Orders[i]
			if line.UserID == userID && line.ProviderEmail == providerEmail && line.ScheduleTime.Equal(scheduleTime) {
				line.Reviews = upsertReview(line.Reviews, review)
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

type fakeAdminRepo struct {
	admin *models.Admin
}

func (r *fakeAdminRepo) GetSingleton() (*models.Admin, error) {
	if r.admin == nil {
		return nil, repository.ErrNotFound
	}
	return r.admin, nil
}

func (r *fakeAdminRepo) GetByID(id string) (*models.Admin, error) {
	if r.admin == nil || r.admin.ID != id {
		return nil, repository.ErrNotFound
	}
	return r.admin, nil
}

func (r *fakeAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	if r.admin == nil || r.admin.Email != email {
		return nil, repository.ErrNotFound
	}
	return r.admin, nil
}

func (r *fakeAdminRepo) Create(a *models.Admin) error {
	r.admin = a
	return nil
}

func (r *fakeAdminRepo) GetOrders(adminID string) ([]models.AdminOrder, error) {
	a, err := r.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	return a.Orders, nil
}

func (r *fakeAdminRepo) AppendOrders(adminID string, orders []models.AdminOrder) error {
	a, err := r.GetByID(adminID)
	if err != nil {
		return err
	}
	a.Orders = append(a.Orders, orders...)
	return nil
}

func (r *fakeAdminRepo) SetOrderStatusByCartID(cartID, status string) error {
	if r.admin == nil {
		return repository.ErrNotFound
	}
	for i := range r.admin.Orders {
		if r.admin.Orders[i].CartID == cartID {
			r.admin.Orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeAdminRepo) SetOrderStatusBySchedule(providerEmail string, scheduleTime time.Time, status string) error {
	if r.admin == nil {
		return repository.ErrNotFound
	}
	for i := range r.admin.Orders {
		o := &r.admin.Orders[i]
		if o.ProviderEmail == providerEmail && o.ScheduleTime.Equal(scheduleTime) {
			o.Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeAdminRepo) SetOrderPaymentByCartID(cartID, paymentStatus, transactionID string) error {
	if r.admin == nil {
		return repository.ErrNotFound
	}
	for i := range r.admin.Orders {
		if r.admin.Orders[i].CartID == cartID {
			r.admin.Orders[i].PaymentStatus = paymentStatus
			r.admin.Orders[i].TransactionID = transactionID
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeAdminRepo) UpsertOrderReview(reviewerID, providerEmail string, scheduleTime time.Time, review models.Review) error {
	if r.admin == nil {
		return repository.ErrNotFound
	}
	for i := range r.admin.Orders {
		o := &r.admin.Orders[i]
		if o.UserID == reviewerID && o.ProviderEmail == providerEmail && o.ScheduleTime.Equal(scheduleTime) {
			o.Reviews = upsertReview(o.Reviews, review)
			return nil
		}
	}
	return repository.ErrNotFound
}

func upsertReview(reviews []models.Review, review models.Review) []models.Review {
	for i := range reviews {
		if reviews[i].UserID == review.UserID && reviews[i].ScheduleTime.Equal(review.ScheduleTime) {
			reviews[i] = review
			return reviews
		}
	}
	return append(reviews, review)
}

// recorderRelay captures published events in order.
type recorderRelay struct {
	events []relay.Event
}

func (r *recorderRelay) Publish(event string, payload interface{}) {
	r.events = append(r.events, relay.Event{Event: event, Payload: payload})
}

// recorderScheduler captures queued reminders.
type recorderScheduler struct {
	payloads []models.ReminderPayload
	err      error
}

func (r *recorderScheduler) ScheduleReminder(payload models.ReminderPayload) error {
	if r.err != nil {
		return r.err
	}
	r.payloads = append(r.payloads, payload)
	return nil
}

// fixture wires a service over the fakes with one user, one provider and the
// admin document seeded.
type fixture struct {
	svc       *DefaultOrderService
	users     *fakeUserRepo
	providers *fakeProviderRepo
	orders    *fakeOrderRepo
	admins    *fakeAdminRepo
	relay     *recorderRelay
	scheduler *recorderScheduler
}

func newFixture() *fixture {
	users := newFakeUserRepo()
	providers := newFakeProviderRepo()
	orders := &fakeOrderRepo{}
	admins := &fakeAdminRepo{}
	rec := &recorderRelay{}
	sched := &recorderScheduler{}

	users.Create(&models.User{
		ID:    "user-1",
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "0712000001",
	})
	providers.Create(&models.Provider{
		ID:          "prov-1",
		Name:        "Sparkle Cleaners",
		Email:       "sparkle@example.com",
		Phone:       "0712000002",
		Price:       "1500",
		Description: "Home cleaning",
		Location:    models.GeoLocation{Latitude: -1.28, Longitude: 36.82},
	})
	admins.Create(&models.Admin{
		ID:    "admin-1",
		Name:  "Ops",
		Email: "ops@example.com",
	})

	return &fixture{
		svc: &DefaultOrderService{
			Users:     users,
			Providers: providers,
			Orders:    orders,
			Admins:    admins,
			Relay:     rec,
			Reminders: sched,
		},
		users:     users,
		providers: providers,
		orders:    orders,
		admins:    admins,
		relay:     rec,
		scheduler: sched,
	}
}

func (f *fixture) placeOrder(scheduleTime time.Time) *models.Order {
	created, err := f.svc.CreateOrder(models.AddOrderRequest{
		UserID: "user-1",
		Orders: []models.LineItemInput{
			{
				Provider: models.ProviderSummary{
					ID:    "prov-1",
					Name:  "Sparkle Cleaners",
					Email: "sparkle@example.com",
				},
				ProviderLocation: models.GeoLocation{Latitude: -1.28, Longitude: 36.82},
				ScheduleTime:     scheduleTime,
			},
		},
		TotalPrice:   1500,
		UserLocation: models.LatLng{Lat: -1.30, Lng: 36.80},
	})
	if err != nil {
		panic(err)
	}
	return created
}
