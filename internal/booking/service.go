package booking

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"expo-ticketing/internal/catalog"
	"expo-ticketing/internal/logger"
	"expo-ticketing/internal/models"
	"expo-ticketing/internal/pass"
	"expo-ticketing/internal/pricing"
	"expo-ticketing/internal/utils"
)

const (
	ticketRefPrefix = "ETX"
	stallRefPrefix  = "STL"
)

type DBLayer interface {
	CreateBooking(booking models.Booking) error
	GetBookingByRef(ref string) (*models.Booking, error)
	ListBookingsByEmail(email string) ([]models.Booking, error)
}

type Publisher interface {
	Publish(topic string, key string, value []byte) error
}

// Topics names the event streams confirmed bookings are published to.
type Topics struct {
	BookingConfirmed string
	StallBooked      string
}

// Confirmation is the terminal-step payload: the persisted booking plus its
// QR pass (base64 in JSON).
type Confirmation struct {
	Booking models.Booking `json:"booking"`
	QRPass  []byte         `json:"qrPass,omitempty"`
}

// Service owns the wizard sessions and drives their transitions. All
// validation failures are local and recoverable: the wizard stays on its
// step and the caller gets a typed error.
type Service struct {
	Catalog   *catalog.Store
	DB        DBLayer
	Publisher Publisher
	Processor PaymentProcessor
	Pass      *pass.Generator
	Logger    *logger.Logger
	Topics    Topics

	// Now is the clock used for visit-date gating; tests pin it.
	Now func() time.Time

	SessionTTL time.Duration

	mu       sync.Mutex
	sessions map[string]*Wizard
}

func NewService(cat *catalog.Store, db DBLayer, publisher Publisher, processor PaymentProcessor, passGen *pass.Generator, log *logger.Logger, topics Topics, sessionTTL time.Duration) *Service {
	return &Service{
		Catalog:    cat,
		DB:         db,
		Publisher:  publisher,
		Processor:  processor,
		Pass:       passGen,
		Logger:     log,
		Topics:     topics,
		Now:        time.Now,
		SessionTTL: sessionTTL,
		sessions:   make(map[string]*Wizard),
	}
}

// StartWizard opens a new wizard session for the exhibition. Re-entering
// the flow always produces a fresh instance; previous confirmed bookings
// stay reachable only through the bookings store.
func (s *Service) StartWizard(flow, exhibitionID string) (*Wizard, error) {
	if flow != models.FlowTicket && flow != models.FlowStall {
		return nil, models.NewValidationError("flow", "flow must be ticket or stall")
	}
	exhibition, err := s.Catalog.ExhibitionByID(exhibitionID)
	if err != nil {
		return nil, err
	}

	w := &Wizard{
		SessionID:  uuid.NewString(),
		Flow:       flow,
		Exhibition: *exhibition,
		touched:    s.Now(),
	}
	w.Step = w.selectionStep()

	s.mu.Lock()
	s.sessions[w.SessionID] = w
	s.mu.Unlock()

	s.Logger.Info("WIZARD", fmt.Sprintf("Started %s wizard %s for exhibition %s", flow, w.SessionID, exhibitionID))
	return w, nil
}

// Get returns the wizard for a session.
func (s *Service) Get(sessionID string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(sessionID)
}

func (s *Service) lookup(sessionID string) (*Wizard, error) {
	w, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.NewNotFoundError("wizard session", sessionID)
	}
	w.touched = s.Now()
	return w, nil
}

// SelectTickets records the ticket selection and advances to the details
// step. The ticket must exist, be available, and the visit date must fall
// within [today, exhibition end date].
func (s *Service) SelectTickets(sessionID, ticketTypeID string, quantity int, visitDate time.Time) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if w.Step != StepSelectTickets {
		return nil, wrongStepError(w.Step)
	}

	ticket := w.Exhibition.TicketTypeByID(ticketTypeID)
	if ticket == nil {
		return nil, models.NewNotFoundError("ticket type", ticketTypeID)
	}
	if !ticket.Available {
		return nil, models.NewValidationError("ticketType", "selected ticket type is sold out")
	}

	if visitDate.IsZero() {
		return nil, models.NewValidationError("visitDate", "visit date is required")
	}
	today := s.Now().Truncate(24 * time.Hour)
	if visitDate.Before(today) {
		return nil, models.NewValidationError("visitDate", "visit date cannot be in the past")
	}
	if visitDate.After(w.Exhibition.EndDate) {
		return nil, models.NewValidationError("visitDate", "visit date is after the exhibition ends")
	}

	breakdown, err := pricing.TicketTotal(ticket.Price, quantity)
	if err != nil {
		return nil, err
	}

	w.Ticket = ticket
	w.Quantity = quantity
	w.VisitDate = visitDate
	w.Subtotal = breakdown.Subtotal
	w.ConvenienceFee = breakdown.ConvenienceFee
	w.Tax = breakdown.Tax
	w.Total = breakdown.Total
	w.Step = StepDetails
	return w, nil
}

// SelectStall records the stall and add-on selection and advances to the
// details step.
func (s *Service) SelectStall(sessionID, stallTypeID string, addonIDs []string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if w.Step != StepSelectStall {
		return nil, wrongStepError(w.Step)
	}

	stall, err := s.Catalog.StallType(stallTypeID)
	if err != nil {
		return nil, err
	}
	if !stall.Available {
		return nil, models.NewValidationError("stallType", "selected stall type is no longer available")
	}

	addons, err := s.Catalog.AddOnsByID(addonIDs)
	if err != nil {
		return nil, err
	}
	addonPrices := make([]float64, len(addons))
	for i, a := range addons {
		addonPrices[i] = a.Price
	}

	breakdown, err := pricing.StallTotal(stall.Price, addonPrices)
	if err != nil {
		return nil, err
	}

	w.Stall = stall
	w.Addons = addons
	w.Subtotal = breakdown.Subtotal
	w.ConvenienceFee = 0
	w.Tax = breakdown.Tax
	w.Total = breakdown.Total
	w.Step = StepDetails
	return w, nil
}

// SubmitDetails validates the buyer or company details and advances to the
// payment step.
func (s *Service) SubmitDetails(sessionID string, details models.ContactDetails) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if w.Step != StepDetails {
		return nil, wrongStepError(w.Step)
	}
	if verr := w.validateDetails(details); verr != nil {
		return nil, verr
	}

	w.Details = details
	w.Step = StepPayment
	return w, nil
}

// ConfirmPayment authorizes the total through the payment processor,
// persists the booking, and moves the wizard to its terminal step. On any
// failure the wizard stays on the payment step and no booking reference
// escapes.
func (s *Service) ConfirmPayment(sessionID, method string) (*Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if w.Step != StepPayment {
		return nil, wrongStepError(w.Step)
	}
	if method == "" {
		return nil, models.NewValidationError("paymentMethod", "a payment method is required")
	}

	receipt, err := s.Processor.Authorize(w.Total, method)
	if err != nil {
		var perr *models.PaymentError
		if !errors.As(err, &perr) {
			perr = models.NewPaymentError(method, err.Error())
		}
		s.Logger.Warn("PAYMENT", fmt.Sprintf("Authorization failed for session %s: %v", sessionID, perr))
		return nil, perr
	}

	booking := s.buildBooking(w, method, receipt)
	if err := s.DB.CreateBooking(booking); err != nil {
		s.Logger.Error("BOOKING", fmt.Sprintf("Failed to persist booking for session %s: %v", sessionID, err))
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	confirmation := &Confirmation{Booking: booking}
	if s.Pass != nil {
		qr, err := s.Pass.Generate(booking)
		if err != nil {
			s.Logger.Error("PASS", fmt.Sprintf("Failed to generate QR pass for %s: %v", booking.Ref, err))
		} else {
			confirmation.QRPass = qr
		}
	}

	s.publishConfirmed(booking)

	w.PaymentMethod = method
	w.Booking = &booking
	w.Step = StepConfirmed
	s.Logger.LogBooking("CONFIRMED", booking.Ref, fmt.Sprintf("%s booking for exhibition %s, total %.0f", booking.Flow, booking.ExhibitionID, booking.Total))
	return confirmation, nil
}

func (s *Service) buildBooking(w *Wizard, method string, receipt *Receipt) models.Booking {
	b := models.Booking{
		Flow:            w.Flow,
		ExhibitionID:    w.Exhibition.ID,
		ExhibitionTitle: w.Exhibition.Title,
		Subtotal:        w.Subtotal,
		ConvenienceFee:  w.ConvenienceFee,
		Tax:             w.Tax,
		Total:           w.Total,
		PaymentMethod:   method,
		TransactionID:   receipt.TransactionID,
		Email:           w.Details.Email,
		Phone:           w.Details.Phone,
		CreatedAt:       s.Now(),
	}

	if w.Flow == models.FlowStall {
		b.Ref = utils.GenerateBookingRef(stallRefPrefix)
		b.ItemID = w.Stall.ID
		b.ItemName = w.Stall.Name
		for _, a := range w.Addons {
			b.AddonIDs = append(b.AddonIDs, a.ID)
		}
		b.Name = w.Details.ContactPerson
		b.CompanyName = w.Details.CompanyName
		b.GSTNumber = w.Details.GSTNumber
		b.Website = w.Details.Website
		b.BusinessType = w.Details.BusinessType
		b.ProductDescription = w.Details.ProductDescription
	} else {
		b.Ref = utils.GenerateBookingRef(ticketRefPrefix)
		b.ItemID = w.Ticket.ID
		b.ItemName = w.Ticket.Name
		b.Quantity = w.Quantity
		b.VisitDate = w.VisitDate
		b.Name = w.Details.Name
	}
	return b
}

func (s *Service) publishConfirmed(b models.Booking) {
	if s.Publisher == nil {
		return
	}
	topic := s.Topics.BookingConfirmed
	if b.Flow == models.FlowStall {
		topic = s.Topics.StallBooked
	}
	payload, err := json.Marshal(b)
	if err != nil {
		s.Logger.Error("KAFKA", fmt.Sprintf("Failed to marshal booking %s: %v", b.Ref, err))
		return
	}
	if err := s.Publisher.Publish(topic, b.Ref, payload); err != nil {
		// Event delivery is best effort; the booking is already persisted.
		s.Logger.Error("KAFKA", fmt.Sprintf("Failed to publish booking %s: %v", b.Ref, err))
	}
}

// Back moves the wizard to its immediate predecessor. Backing out of the
// initial selection step discards the session; the second return value
// reports that exit.
func (s *Service) Back(sessionID string) (*Wizard, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, false, err
	}

	switch w.Step {
	case StepConfirmed:
		return nil, false, models.NewValidationError("step", "a confirmed booking cannot be reopened")
	case StepPayment:
		w.Step = StepDetails
	case StepDetails:
		w.Step = w.selectionStep()
	default:
		delete(s.sessions, sessionID)
		return nil, true, nil
	}
	return w, false, nil
}

// GetBooking looks up a persisted booking by its reference.
func (s *Service) GetBooking(ref string) (*models.Booking, error) {
	return s.DB.GetBookingByRef(ref)
}

// ListBookings returns the persisted bookings for an email address, most
// recent first.
func (s *Service) ListBookings(email string) ([]models.Booking, error) {
	return s.DB.ListBookingsByEmail(email)
}

// StartSweeper evicts abandoned, unconfirmed sessions in the background
// until the context is cancelled.
func (s *Service) StartSweeper(done <-chan struct{}, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *Service) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Now()
	for id, w := range s.sessions {
		if now.Sub(w.touched) > s.SessionTTL {
			delete(s.sessions, id)
			s.Logger.Debug("WIZARD", fmt.Sprintf("Swept expired session %s (step %s)", id, w.Step))
		}
	}
}

func wrongStepError(current Step) *models.ValidationError {
	return models.NewValidationError("step", fmt.Sprintf("operation not allowed at step %q", current))
}
