package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripway/models"
)

type memFlowStore struct {
	mu    sync.Mutex
	flows map[string]models.WorkflowSession
}

func newMemFlowStore() *memFlowStore {
	return &memFlowStore{flows: map[string]models.WorkflowSession{}}
}

func (m *memFlowStore) Save(ctx context.Context, w models.WorkflowSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flows[w.FlowID] = w
	return nil
}

func (m *memFlowStore) Get(ctx context.Context, flowID string) (*models.WorkflowSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.flows[flowID]
	if !ok {
		return nil, ErrFlowNotFound
	}
	return &w, nil
}

func (m *memFlowStore) Delete(ctx context.Context, flowID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, flowID)
	return nil
}

func (m *memFlowStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.flows)
}

type fakePackages struct {
	pkg *models.TravelPackage
}

func (f *fakePackages) GetAllPackages(ctx context.Context) ([]models.TravelPackage, error) {
	return nil, errors.New("not scripted")
}

func (f *fakePackages) GetPackageByID(ctx context.Context, id int64) (*models.TravelPackage, error) {
	if f.pkg == nil || f.pkg.PackageID != id {
		return nil, errors.New("Package not found")
	}
	return f.pkg, nil
}

func (f *fakePackages) SearchPackages(ctx context.Context, query string) ([]models.TravelPackage, error) {
	return nil, errors.New("not scripted")
}

func (f *fakePackages) GetAgentPackages(ctx context.Context, token string, agentID int64) ([]models.TravelPackage, error) {
	return nil, errors.New("not scripted")
}

func (f *fakePackages) GetAgentPackagesWithStats(ctx context.Context, token string, agentID int64) ([]models.PackageStats, error) {
	return nil, errors.New("not scripted")
}

func (f *fakePackages) CreatePackage(ctx context.Context, token string, input models.PackageInput) (*models.TravelPackage, error) {
	return nil, errors.New("not scripted")
}

func (f *fakePackages) UpdatePackage(ctx context.Context, token string, id int64, input models.PackageInput) (*models.TravelPackage, error) {
	return nil, errors.New("not scripted")
}

func (f *fakePackages) DeletePackage(ctx context.Context, token string, id int64) error {
	return errors.New("not scripted")
}

type fakeBookings struct {
	nextID     int64
	createErr  error
	confirmErr error
	created    []models.BookingInput
	confirmed  []int64
}

func (f *fakeBookings) GetAllBookings(ctx context.Context, token string) ([]models.Booking, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeBookings) GetBookingByID(ctx context.Context, token string, id int64) (*models.Booking, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeBookings) CreateBooking(ctx context.Context, token string, input models.BookingInput) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, input)
	return &models.Booking{
		BookingID: f.nextID,
		PackageID: input.PackageID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    models.BookingPending,
	}, nil
}

func (f *fakeBookings) UpdateBooking(ctx context.Context, token string, id int64, input models.BookingInput) (*models.Booking, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeBookings) DeleteBooking(ctx context.Context, token string, id int64) error {
	return errors.New("not scripted")
}

func (f *fakeBookings) ConfirmBooking(ctx context.Context, token string, id int64) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmed = append(f.confirmed, id)
	return nil
}

func (f *fakeBookings) CancelBooking(ctx context.Context, token string, id int64) error {
	return errors.New("not scripted")
}

func (f *fakeBookings) GetUserBookingsWithDetails(ctx context.Context, token string, userID int64) ([]models.BookingWithDetails, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeBookings) GetAgentDashboard(ctx context.Context, token string, agentID int64) (*models.AgentDashboard, error) {
	return nil, errors.New("not scripted")
}

type fakePayments struct {
	processErr error
	requests   []models.PaymentRequest
}

func (f *fakePayments) GetAllPayments(ctx context.Context, token string) ([]models.Payment, error) {
	return nil, errors.New("not scripted")
}

func (f *fakePayments) GetPaymentsByUser(ctx context.Context, token string, userID int64) ([]models.Payment, error) {
	return nil, errors.New("not scripted")
}

func (f *fakePayments) ProcessPayment(ctx context.Context, token string, req models.PaymentRequest) (*models.Payment, error) {
	if f.processErr != nil {
		return nil, f.processErr
	}
	f.requests = append(f.requests, req)
	return &models.Payment{
		PaymentID: 900,
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Status:    models.PaymentCompleted,
	}, nil
}

func (f *fakePayments) RefundPayment(ctx context.Context, token string, paymentID int64) error {
	return errors.New("not scripted")
}

type fakeInsurance struct {
	offers []models.InsuranceOffer
}

func (f *fakeInsurance) GetOfferCatalog(ctx context.Context) []models.InsuranceOffer {
	return f.offers
}

func (f *fakeInsurance) FindOffer(ctx context.Context, id int64) (*models.InsuranceOffer, error) {
	for i := range f.offers {
		if f.offers[i].ID == id {
			return &f.offers[i], nil
		}
	}
	return nil, errors.New("insurance option not found")
}

func (f *fakeInsurance) GetUserPolicies(ctx context.Context, token string, userID int64) ([]models.InsurancePolicy, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeInsurance) GetAllPolicies(ctx context.Context, token string) ([]models.InsurancePolicy, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeInsurance) PurchasePolicy(ctx context.Context, token string, input models.PolicyInput) (*models.InsurancePolicy, error) {
	return nil, errors.New("not scripted")
}

type workflowFixture struct {
	svc      *DefaultWorkflowService
	store    *memFlowStore
	bookings *fakeBookings
	payments *fakePayments
	sess     *models.Session
}

func newFixture() *workflowFixture {
	store := newMemFlowStore()
	bookings := &fakeBookings{nextID: 44}
	payments := &fakePayments{}
	svc := &DefaultWorkflowService{
		Packages: &fakePackages{pkg: &models.TravelPackage{
			PackageID:    12,
			Title:        "Maldives Luxury Escape",
			DurationDays: 7,
			Price:        1299.99,
		}},
		Bookings: bookings,
		Payments: payments,
		Insurance: &fakeInsurance{offers: []models.InsuranceOffer{
			{ID: 2, Name: "Standard Protection", Price: 79.99},
		}},
		Store:  store,
		Logger: zap.NewNop(),
		Now:    func() time.Time { return time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC) },
	}
	return &workflowFixture{
		svc:      svc,
		store:    store,
		bookings: bookings,
		payments: payments,
		sess: &models.Session{
			SessionID: "s1",
			User:      models.User{UserID: 5, Role: models.RoleCustomer},
			AuthToken: "gw-token",
		},
	}
}

func (fx *workflowFixture) advanceToBookingCreated(t *testing.T, insuranceID int64) *models.WorkflowSession {
	t.Helper()
	ctx := context.Background()
	flow, err := fx.svc.SelectPackage(ctx, fx.sess, 12)
	require.NoError(t, err)
	flow, err = fx.svc.ChooseDates(ctx, fx.sess, flow.FlowID, "2025-07-01", "", insuranceID)
	require.NoError(t, err)
	flow, err = fx.svc.CreateBooking(ctx, fx.sess, flow.FlowID)
	require.NoError(t, err)
	return flow
}

func TestSelectPackageRequiresSignIn(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.SelectPackage(context.Background(), nil, 12)
	require.ErrorIs(t, err, ErrSignInRequired)

	anon := &models.Session{SessionID: "s2"}
	_, err = fx.svc.SelectPackage(context.Background(), anon, 12)
	require.ErrorIs(t, err, ErrSignInRequired)
	assert.Equal(t, 0, fx.store.count())
}

func TestSelectPackageOpensFlow(t *testing.T) {
	fx := newFixture()

	flow, err := fx.svc.SelectPackage(context.Background(), fx.sess, 12)
	require.NoError(t, err)
	assert.NotEmpty(t, flow.FlowID)
	assert.Equal(t, models.FlowPackageSelected, flow.State)
	assert.Equal(t, int64(5), flow.UserID)
	assert.Equal(t, "Maldives Luxury Escape", flow.Package.Title)
	assert.Equal(t, 1, fx.store.count())
}

func TestChooseDatesDerivesEndFromDuration(t *testing.T) {
	fx := newFixture()
	flow, err := fx.svc.SelectPackage(context.Background(), fx.sess, 12)
	require.NoError(t, err)

	flow, err = fx.svc.ChooseDates(context.Background(), fx.sess, flow.FlowID, "2025-07-01", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-08", flow.EndDate)
	assert.Equal(t, models.FlowDatesChosen, flow.State)
	assert.Nil(t, flow.Insurance)
}

func TestChooseDatesRejectsInvalidWindow(t *testing.T) {
	fx := newFixture()
	flow, err := fx.svc.SelectPackage(context.Background(), fx.sess, 12)
	require.NoError(t, err)

	_, err = fx.svc.ChooseDates(context.Background(), fx.sess, flow.FlowID, "2025-06-15", "2025-06-20", 0)
	require.Error(t, err)
	assert.Equal(t, "Start date must be in the future", err.Error())

	// The flow is untouched by the rejection.
	got, err := fx.svc.Get(context.Background(), fx.sess, flow.FlowID)
	require.NoError(t, err)
	assert.Equal(t, models.FlowPackageSelected, got.State)
}

func TestChooseDatesRecordsInsurance(t *testing.T) {
	fx := newFixture()
	flow, err := fx.svc.SelectPackage(context.Background(), fx.sess, 12)
	require.NoError(t, err)

	flow, err = fx.svc.ChooseDates(context.Background(), fx.sess, flow.FlowID, "2025-07-01", "2025-07-08", 2)
	require.NoError(t, err)
	require.NotNil(t, flow.Insurance)
	assert.Equal(t, "Standard Protection", flow.Insurance.Name)
	assert.InDelta(t, 1379.98, flow.Total(), 0.0001)
}

func TestCreateBookingCapturesID(t *testing.T) {
	fx := newFixture()

	flow := fx.advanceToBookingCreated(t, 0)
	assert.Equal(t, models.FlowBookingCreated, flow.State)
	assert.Equal(t, int64(44), flow.BookingID)
	require.Len(t, fx.bookings.created, 1)
	assert.Equal(t, models.BookingPending, fx.bookings.created[0].Status)
	assert.Equal(t, "2025-07-01", fx.bookings.created[0].StartDate)
	assert.Equal(t, "2025-07-08", fx.bookings.created[0].EndDate)
}

func TestCreateBookingRejectsZeroID(t *testing.T) {
	fx := newFixture()
	fx.bookings.nextID = 0
	ctx := context.Background()

	flow, err := fx.svc.SelectPackage(ctx, fx.sess, 12)
	require.NoError(t, err)
	flow, err = fx.svc.ChooseDates(ctx, fx.sess, flow.FlowID, "2025-07-01", "", 0)
	require.NoError(t, err)

	_, err = fx.svc.CreateBooking(ctx, fx.sess, flow.FlowID)
	require.Error(t, err)
	assert.Equal(t, "Invalid booking data. Please try creating the booking again.", err.Error())

	got, getErr := fx.svc.Get(ctx, fx.sess, flow.FlowID)
	require.NoError(t, getErr)
	assert.Equal(t, models.FlowDatesChosen, got.State)
}

func TestSubmitPaymentChargesExactTotal(t *testing.T) {
	fx := newFixture()
	flow := fx.advanceToBookingCreated(t, 2)

	confirmed, err := fx.svc.SubmitPayment(context.Background(), fx.sess, flow.FlowID, validCard())
	require.NoError(t, err)
	assert.Equal(t, models.FlowConfirmed, confirmed.State)

	require.Len(t, fx.payments.requests, 1)
	req := fx.payments.requests[0]
	assert.Equal(t, int64(44), req.BookingID)
	assert.InDelta(t, 1379.98, req.Amount, 0.0001)
	assert.Equal(t, "CREDIT_CARD", req.PaymentMethod)
	assert.Equal(t, "1111", req.CardLastFour)
	assert.Equal(t, "Payment for Maldives Luxury Escape", req.Description)

	assert.Equal(t, []int64{44}, fx.bookings.confirmed)
	// The flow record is released once confirmed.
	assert.Equal(t, 0, fx.store.count())
}

func TestSubmitPaymentWithoutInsuranceChargesPackagePrice(t *testing.T) {
	fx := newFixture()
	flow := fx.advanceToBookingCreated(t, 0)

	_, err := fx.svc.SubmitPayment(context.Background(), fx.sess, flow.FlowID, validCard())
	require.NoError(t, err)
	require.Len(t, fx.payments.requests, 1)
	assert.Equal(t, 1299.99, fx.payments.requests[0].Amount)
}

func TestSubmitPaymentRejectsBadCardBeforeCharging(t *testing.T) {
	fx := newFixture()
	flow := fx.advanceToBookingCreated(t, 0)

	card := validCard()
	card.Expiry = "01/20"
	_, err := fx.svc.SubmitPayment(context.Background(), fx.sess, flow.FlowID, card)
	require.Error(t, err)
	assert.Equal(t, "Card has expired. Please use a valid card.", err.Error())
	assert.Empty(t, fx.payments.requests)
}

func TestSubmitPaymentFailureIsRetryable(t *testing.T) {
	fx := newFixture()
	flow := fx.advanceToBookingCreated(t, 0)

	fx.payments.processErr = errors.New("Payment declined")
	_, err := fx.svc.SubmitPayment(context.Background(), fx.sess, flow.FlowID, validCard())
	require.Error(t, err)

	// Still at the payment step, same held booking, ready to retry.
	got, getErr := fx.svc.Get(context.Background(), fx.sess, flow.FlowID)
	require.NoError(t, getErr)
	assert.Equal(t, models.FlowBookingCreated, got.State)
	assert.Equal(t, int64(44), got.BookingID)

	fx.payments.processErr = nil
	confirmed, err := fx.svc.SubmitPayment(context.Background(), fx.sess, flow.FlowID, validCard())
	require.NoError(t, err)
	assert.Equal(t, models.FlowConfirmed, confirmed.State)
	require.Len(t, fx.payments.requests, 1)
	assert.Equal(t, int64(44), fx.payments.requests[0].BookingID)
}

func TestConfirmFailureKeepsPaymentSubmitted(t *testing.T) {
	fx := newFixture()
	flow := fx.advanceToBookingCreated(t, 0)

	fx.bookings.confirmErr = errors.New("Server Error 500")
	_, err := fx.svc.SubmitPayment(context.Background(), fx.sess, flow.FlowID, validCard())
	require.Error(t, err)

	// Paid but unconfirmed: the flow waits at PaymentSubmitted so the
	// confirm can be retried without a second charge.
	got, getErr := fx.svc.Get(context.Background(), fx.sess, flow.FlowID)
	require.NoError(t, getErr)
	assert.Equal(t, models.FlowPaymentSubmitted, got.State)
	require.Len(t, fx.payments.requests, 1)

	fx.bookings.confirmErr = nil
	confirmed, err := fx.svc.ConfirmBooking(context.Background(), fx.sess, flow.FlowID)
	require.NoError(t, err)
	assert.Equal(t, models.FlowConfirmed, confirmed.State)
	require.Len(t, fx.payments.requests, 1, "retrying confirmation must not charge again")
}

func TestCancelDropsFlow(t *testing.T) {
	fx := newFixture()
	flow := fx.advanceToBookingCreated(t, 0)

	require.NoError(t, fx.svc.Cancel(context.Background(), fx.sess, flow.FlowID))
	_, err := fx.svc.Get(context.Background(), fx.sess, flow.FlowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestStepOrderIsEnforced(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	flow, err := fx.svc.SelectPackage(ctx, fx.sess, 12)
	require.NoError(t, err)

	// Skipping dates entirely.
	_, err = fx.svc.CreateBooking(ctx, fx.sess, flow.FlowID)
	require.Error(t, err)

	// Skipping booking creation.
	_, err = fx.svc.SubmitPayment(ctx, fx.sess, flow.FlowID, validCard())
	require.Error(t, err)

	// Confirming before payment.
	_, err = fx.svc.ConfirmBooking(ctx, fx.sess, flow.FlowID)
	require.Error(t, err)
}

func TestFlowOwnershipEnforced(t *testing.T) {
	fx := newFixture()
	flow := fx.advanceToBookingCreated(t, 0)
	ctx := context.Background()

	intruder := &models.Session{
		SessionID: "s-other",
		User:      models.User{UserID: 99, Role: models.RoleCustomer},
		AuthToken: "other-token",
	}

	// Another user's session cannot read, advance, pay, confirm or
	// cancel the flow; every attempt reads as a missing flow.
	_, err := fx.svc.Get(ctx, intruder, flow.FlowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)

	_, err = fx.svc.ChooseDates(ctx, intruder, flow.FlowID, "2025-07-02", "", 0)
	assert.ErrorIs(t, err, ErrFlowNotFound)

	_, err = fx.svc.CreateBooking(ctx, intruder, flow.FlowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)

	_, err = fx.svc.SubmitPayment(ctx, intruder, flow.FlowID, validCard())
	assert.ErrorIs(t, err, ErrFlowNotFound)
	assert.Empty(t, fx.payments.requests)

	_, err = fx.svc.ConfirmBooking(ctx, intruder, flow.FlowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)

	err = fx.svc.Cancel(ctx, intruder, flow.FlowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)
	assert.Equal(t, 1, fx.store.count())

	// The owner is unaffected.
	got, err := fx.svc.Get(ctx, fx.sess, flow.FlowID)
	require.NoError(t, err)
	assert.Equal(t, models.FlowBookingCreated, got.State)
}

func TestExpiredFlowIsNotFound(t *testing.T) {
	fx := newFixture()
	_, err := fx.svc.Get(context.Background(), fx.sess, "gone")
	require.ErrorIs(t, err, ErrFlowNotFound)
	assert.Equal(t, "booking session not found or expired", err.Error())
}
