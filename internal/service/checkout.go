package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mdshopp/storefront/internal/models"
	"github.com/mdshopp/storefront/internal/transport"
	"github.com/mdshopp/storefront/pkg/logging"
)

type CheckoutState string

const (
	CheckoutClosed     CheckoutState = "closed"
	CheckoutOpen       CheckoutState = "open"
	CheckoutProcessing CheckoutState = "processing"
)

const (
	MsgMissingInformation = "missing information: name and address are required"
	MsgPhoneRequired      = "phone number required"
	MsgUnknownPayment     = "unknown payment method"
	MsgEmptyCart          = "cart is empty"

	// completed sessions are kept this long so the client can read the confirmation
	completedSessionTTL = 30 * time.Minute

	defaultCompleteTimeout = 15 * time.Second
)

// Scheduler runs f once after d and returns a stop function.
type Scheduler func(d time.Duration, f func()) (stop func() bool)

func AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

type CheckoutSession struct {
	ID            uuid.UUID            `json:"id"`
	CartID        uuid.UUID            `json:"cartId"`
	State         CheckoutState        `json:"state"`
	Items         []models.OrderItem   `json:"items"`
	Total         int64                `json:"total"`
	Customer      models.CustomerInfo  `json:"customer"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	PhoneNumber   string               `json:"phoneNumber"`
	Order         *models.Order        `json:"order,omitempty"`
	Message       string               `json:"message,omitempty"`
	Error         string               `json:"error,omitempty"`

	token     uint64
	stop      func() bool
	closedAt  time.Time
	completed bool
}

// CheckoutService drives the checkout dialog: open with a cart snapshot,
// submit the form, then a simulated payment confirmation places the order
// after Delay.
type CheckoutService struct {
	Carts  *CartService
	Orders *OrderService

	Delay    time.Duration
	Schedule Scheduler
	Now      func() time.Time
	// CompleteTimeout bounds storing the order once payment is confirmed.
	CompleteTimeout time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*CheckoutSession
	tokens   uint64
}

func NewCheckoutService(carts *CartService, orders *OrderService, delay time.Duration) *CheckoutService {
	return &CheckoutService{
		Carts:    carts,
		Orders:   orders,
		Delay:    delay,
		Schedule: AfterFunc,
		Now:      time.Now,

		CompleteTimeout: defaultCompleteTimeout,
		sessions:        make(map[uuid.UUID]*CheckoutSession),
	}
}

func (s *CheckoutService) snapshot(sess *CheckoutSession) CheckoutSession {
	cp := *sess
	cp.Items = append([]models.OrderItem(nil), sess.Items...)
	cp.stop = nil
	return cp
}

// Open starts a session over a snapshot of the cart. Cart changes after
// this point are not seen by the session.
func (s *CheckoutService) Open(ctx context.Context, cartID uuid.UUID) (CheckoutSession, error) {
	cart := s.Carts.GetCart(ctx, cartID)
	if len(cart.Items) == 0 {
		return CheckoutSession{}, fmt.Errorf("%w: %s", ErrValidation, MsgEmptyCart)
	}

	items := cart.Snapshot()
	sess := &CheckoutSession{
		ID:     uuid.New(),
		CartID: cartID,
		State:  CheckoutOpen,
		Items:  items,
		Total:  models.ItemsTotal(items),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.sessions[sess.ID] = sess

	logging.FromContext(ctx).Info("checkout_opened", "session_id", sess.ID, "cart_id", cartID, "total", sess.Total)
	return s.snapshot(sess), nil
}

func (s *CheckoutService) Get(_ context.Context, id uuid.UUID) (CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return CheckoutSession{}, fmt.Errorf("%w: checkout session %s", ErrNotFound, id)
	}
	return s.snapshot(sess), nil
}

func validateCheckout(form transport.CheckoutForm) error {
	if strings.TrimSpace(form.Customer.Name) == "" || strings.TrimSpace(form.Customer.Address) == "" {
		return fmt.Errorf("%w: %s", ErrValidation, MsgMissingInformation)
	}
	if !form.PaymentMethod.Valid() {
		return fmt.Errorf("%w: %s", ErrValidation, MsgUnknownPayment)
	}
	if form.PaymentMethod.MobileMoney() && strings.TrimSpace(form.PhoneNumber) == "" {
		return fmt.Errorf("%w: %s", ErrValidation, MsgPhoneRequired)
	}
	return nil
}

// Submit validates the form. A failure leaves the session open; success
// moves it to processing and schedules completion after Delay.
func (s *CheckoutService) Submit(ctx context.Context, id uuid.UUID, form transport.CheckoutForm) (CheckoutSession, error) {
	l := logging.FromContext(ctx).With("svc", "checkout.submit", "session_id", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return CheckoutSession{}, fmt.Errorf("%w: checkout session %s", ErrNotFound, id)
	}
	if sess.State != CheckoutOpen {
		return CheckoutSession{}, fmt.Errorf("%w: checkout session is %s", ErrConflict, sess.State)
	}

	sess.Customer = form.Customer
	sess.PaymentMethod = form.PaymentMethod
	sess.PhoneNumber = form.PhoneNumber
	sess.Error = ""

	if err := validateCheckout(form); err != nil {
		l.Warn("checkout_rejected", "reason", Reason(err))
		return CheckoutSession{}, err
	}

	s.tokens++
	token := s.tokens
	sess.token = token
	sess.State = CheckoutProcessing

	// the shopper's request is over by the time the timer fires
	bg := context.WithoutCancel(ctx)
	sess.stop = s.Schedule(s.Delay, func() { s.complete(bg, id, token) })

	l.Info("checkout_processing", "payment_method", form.PaymentMethod, "delay_ms", s.Delay.Milliseconds())
	return s.snapshot(sess), nil
}

// Close discards the session's entered state. A completion still pending
// for it becomes a no-op.
func (s *CheckoutService) Close(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: checkout session %s", ErrNotFound, id)
	}
	if sess.stop != nil {
		sess.stop()
	}
	sess.token = 0
	delete(s.sessions, id)

	logging.FromContext(ctx).Info("checkout_closed", "session_id", id, "state", sess.State)
	return nil
}

func (s *CheckoutService) complete(ctx context.Context, id uuid.UUID, token uint64) {
	l := logging.FromContext(ctx).With("svc", "checkout.complete", "session_id", id)

	order, cartID, ok := s.prepareOrder(id, token)
	if !ok {
		l.Info("checkout_completion_skipped")
		return
	}

	// storage and event I/O run without s.mu so other shoppers are not held up
	timeout := s.CompleteTimeout
	if timeout <= 0 {
		timeout = defaultCompleteTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	placeErr := s.Orders.PlaceOrder(ctx, order)
	if placeErr == nil {
		s.Carts.ClearCart(ctx, cartID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.State != CheckoutProcessing || sess.token != token {
		l.Info("checkout_completion_discarded", "placed", placeErr == nil)
		return
	}
	sess.stop = nil

	if placeErr != nil {
		sess.State = CheckoutOpen
		sess.Error = "the order could not be saved, please try again"
		l.Error("checkout_completion_failed", "error", placeErr)
		return
	}

	sess.Order = order
	sess.Message = confirmationMessage(order)
	sess.State = CheckoutClosed
	sess.completed = true
	sess.closedAt = s.Now()
	l.Info("checkout_completed", "order_id", order.ID)
}

// prepareOrder builds the order for a processing session whose token still
// matches. The session stays in processing while the order is stored.
func (s *CheckoutService) prepareOrder(id uuid.UUID, token uint64) (*models.Order, uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.State != CheckoutProcessing || sess.token != token {
		return nil, uuid.Nil, false
	}

	now := s.Now()
	order := &models.Order{
		ID:            now.UnixMilli(),
		Items:         append([]models.OrderItem(nil), sess.Items...),
		Total:         sess.Total,
		Customer:      sess.Customer,
		PaymentMethod: sess.PaymentMethod,
		PhoneNumber:   sess.PhoneNumber,
		Status:        models.StatusPending,
		Date:          now.UTC().Format(time.RFC3339Nano),
	}
	// cash on delivery has no phone field; the customer name stands in for it
	if order.PaymentMethod == models.PaymentCashOnDelivery {
		order.PhoneNumber = sess.Customer.Name
	}
	return order, sess.CartID, true
}

// confirmationMessage is the text shown once the order exists. The SMS it
// mentions for mobile money is not sent.
func confirmationMessage(o *models.Order) string {
	if o.PaymentMethod == models.PaymentCashOnDelivery {
		return "Your order has been created. You will pay on delivery."
	}
	return fmt.Sprintf("Your order has been created. You will receive an SMS on %s to confirm the %s payment.",
		o.PhoneNumber, strings.ToUpper(string(o.PaymentMethod)))
}

func (s *CheckoutService) pruneLocked() {
	cutoff := s.Now().Add(-completedSessionTTL)
	for id, sess := range s.sessions {
		if sess.completed && sess.closedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
