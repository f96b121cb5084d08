// File: tripway/services/workflow/workflow.go
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tripway/models"
	"tripway/services/bookingsvc"
	"tripway/services/insurance"
	"tripway/services/paymentsvc"
	"tripway/services/travelpkg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSignInRequired rejects workflow entry for anonymous visitors.
var ErrSignInRequired = errors.New("Please sign in to book a package")

// WorkflowService drives the booking-and-payment flow:
//
//	Browsing → PackageSelected → DatesChosen → BookingCreated →
//	PaymentSubmitted → Confirmed
//
// with Cancel available at any point before Confirmed. Steps are
// strictly sequential; each step's request depends on the previous
// step's response, and the booking ID captured at creation is the only
// booking identity the payment step ever uses.
type WorkflowService interface {
	SelectPackage(ctx context.Context, sess *models.Session, packageID int64) (*models.WorkflowSession, error)
	ChooseDates(ctx context.Context, sess *models.Session, flowID, startDate, endDate string, insuranceID int64) (*models.WorkflowSession, error)
	CreateBooking(ctx context.Context, sess *models.Session, flowID string) (*models.WorkflowSession, error)
	SubmitPayment(ctx context.Context, sess *models.Session, flowID string, card models.CardDetails) (*models.WorkflowSession, error)
	ConfirmBooking(ctx context.Context, sess *models.Session, flowID string) (*models.WorkflowSession, error)
	Cancel(ctx context.Context, sess *models.Session, flowID string) error
	Get(ctx context.Context, sess *models.Session, flowID string) (*models.WorkflowSession, error)
}

// DefaultWorkflowService implements WorkflowService.
type DefaultWorkflowService struct {
	Packages  travelpkg.PackageService
	Bookings  bookingsvc.BookingService
	Payments  paymentsvc.PaymentService
	Insurance insurance.InsuranceService
	Store     Store
	Logger    *zap.Logger
	Now       func() time.Time
}

func (s *DefaultWorkflowService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SelectPackage opens a new flow for an authenticated visitor. An
// anonymous attempt is rejected with no state created.
func (s *DefaultWorkflowService) SelectPackage(ctx context.Context, sess *models.Session, packageID int64) (*models.WorkflowSession, error) {
	if sess == nil || !sess.IsAuthenticated() {
		return nil, ErrSignInRequired
	}

	pkg, err := s.Packages.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	flow := models.WorkflowSession{
		FlowID:  uuid.New().String(),
		UserID:  sess.User.UserID,
		State:   models.FlowPackageSelected,
		Package: *pkg,
	}
	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, err
	}
	return &flow, nil
}

// ownedFlow loads a flow and verifies the caller created it. A flow
// belonging to a different user is indistinguishable from a missing
// one, so flow IDs leak nothing across sessions.
func (s *DefaultWorkflowService) ownedFlow(ctx context.Context, sess *models.Session, flowID string) (*models.WorkflowSession, error) {
	flow, err := s.Store.Get(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if sess == nil || flow.UserID != sess.User.UserID {
		return nil, ErrFlowNotFound
	}
	return flow, nil
}

// ChooseDates validates the booking window and records the insurance
// selection. An empty end date is derived from the package duration.
func (s *DefaultWorkflowService) ChooseDates(ctx context.Context, sess *models.Session, flowID, startDate, endDate string, insuranceID int64) (*models.WorkflowSession, error) {
	flow, err := s.ownedFlow(ctx, sess, flowID)
	if err != nil {
		return nil, err
	}
	if flow.State != models.FlowPackageSelected && flow.State != models.FlowDatesChosen {
		return nil, fmt.Errorf("cannot choose dates from state %q", flow.State)
	}

	if endDate == "" && startDate != "" {
		endDate = deriveEndDate(startDate, flow.Package.DurationDays)
	}
	if err := validateDates(startDate, endDate, s.now()); err != nil {
		return nil, err
	}

	flow.StartDate = startDate
	flow.EndDate = endDate
	flow.Insurance = nil
	if insuranceID != 0 {
		offer, err := s.Insurance.FindOffer(ctx, insuranceID)
		if err != nil {
			return nil, err
		}
		flow.Insurance = offer
	}
	flow.State = models.FlowDatesChosen

	if err := s.Store.Save(ctx, *flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// CreateBooking issues the pending booking and captures the returned
// booking ID into the flow. On failure the flow stays at DatesChosen.
func (s *DefaultWorkflowService) CreateBooking(ctx context.Context, sess *models.Session, flowID string) (*models.WorkflowSession, error) {
	flow, err := s.ownedFlow(ctx, sess, flowID)
	if err != nil {
		return nil, err
	}
	if flow.State != models.FlowDatesChosen {
		return nil, fmt.Errorf("cannot create a booking from state %q", flow.State)
	}

	booking, err := s.Bookings.CreateBooking(ctx, sess.AuthToken, models.BookingInput{
		PackageID: flow.Package.PackageID,
		StartDate: flow.StartDate,
		EndDate:   flow.EndDate,
		Status:    models.BookingPending,
	})
	if err != nil {
		return nil, err
	}
	if booking.BookingID == 0 {
		return nil, errors.New("Invalid booking data. Please try creating the booking again.")
	}

	flow.BookingID = booking.BookingID
	flow.State = models.FlowBookingCreated
	if err := s.Store.Save(ctx, *flow); err != nil {
		return nil, err
	}

	s.Logger.Info("workflow: booking created",
		zap.String("flowId", flow.FlowID),
		zap.Int64("bookingId", booking.BookingID))
	return flow, nil
}

// SubmitPayment validates the card locally, charges the exact total
// (package price plus insurance premium), and on success confirms the
// booking. A payment failure leaves the flow at BookingCreated so the
// user can retry without re-creating the booking.
func (s *DefaultWorkflowService) SubmitPayment(ctx context.Context, sess *models.Session, flowID string, card models.CardDetails) (*models.WorkflowSession, error) {
	flow, err := s.ownedFlow(ctx, sess, flowID)
	if err != nil {
		return nil, err
	}
	if flow.State != models.FlowBookingCreated {
		return nil, fmt.Errorf("cannot submit payment from state %q", flow.State)
	}
	if flow.BookingID == 0 {
		return nil, errors.New("No booking found. Please create a booking first.")
	}

	if err := validateCard(card, s.now()); err != nil {
		return nil, err
	}

	payment, err := s.Payments.ProcessPayment(ctx, sess.AuthToken, models.PaymentRequest{
		BookingID:     flow.BookingID,
		Amount:        flow.Total(),
		PaymentMethod: "CREDIT_CARD",
		CardLastFour:  card.LastFour(),
		Description:   "Payment for " + flow.Package.Title,
	})
	if err != nil {
		s.Logger.Warn("workflow: payment failed",
			zap.String("flowId", flow.FlowID),
			zap.Int64("bookingId", flow.BookingID),
			zap.Error(err))
		return nil, err
	}

	flow.PaymentID = payment.PaymentID
	flow.State = models.FlowPaymentSubmitted
	if err := s.Store.Save(ctx, *flow); err != nil {
		return nil, err
	}

	return s.confirm(ctx, sess, flow)
}

// ConfirmBooking retries the confirmation call for a flow whose payment
// already went through.
func (s *DefaultWorkflowService) ConfirmBooking(ctx context.Context, sess *models.Session, flowID string) (*models.WorkflowSession, error) {
	flow, err := s.ownedFlow(ctx, sess, flowID)
	if err != nil {
		return nil, err
	}
	if flow.State != models.FlowPaymentSubmitted {
		return nil, fmt.Errorf("cannot confirm from state %q", flow.State)
	}
	return s.confirm(ctx, sess, flow)
}

func (s *DefaultWorkflowService) confirm(ctx context.Context, sess *models.Session, flow *models.WorkflowSession) (*models.WorkflowSession, error) {
	if err := s.Bookings.ConfirmBooking(ctx, sess.AuthToken, flow.BookingID); err != nil {
		// Payment went through; the flow stays at PaymentSubmitted so
		// confirmation can be retried without charging again.
		return nil, err
	}

	flow.State = models.FlowConfirmed
	confirmed := *flow

	// Only now is the held booking reference released.
	if err := s.Store.Delete(ctx, flow.FlowID); err != nil {
		s.Logger.Warn("workflow: failed to drop confirmed flow", zap.Error(err))
	}

	s.Logger.Info("workflow: booking confirmed",
		zap.String("flowId", confirmed.FlowID),
		zap.Int64("bookingId", confirmed.BookingID),
		zap.Float64("amount", confirmed.Total()))
	return &confirmed, nil
}

// Cancel discards the caller's flow at any pre-Confirmed point. A
// booking already created stays pending on the backend; this client
// does not auto-cancel it.
func (s *DefaultWorkflowService) Cancel(ctx context.Context, sess *models.Session, flowID string) error {
	if _, err := s.ownedFlow(ctx, sess, flowID); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, flowID); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// Get loads one of the caller's flows by ID.
func (s *DefaultWorkflowService) Get(ctx context.Context, sess *models.Session, flowID string) (*models.WorkflowSession, error) {
	return s.ownedFlow(ctx, sess, flowID)
}
