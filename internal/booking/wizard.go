package booking

import (
	"strings"
	"time"

	"expo-ticketing/internal/models"
)

// Step is the wizard's current position. Ticket flow runs
// tickets → details → payment → confirmed; stall flow runs
// stall → details → payment → confirmed. Confirmed is terminal.
type Step string

const (
	StepSelectTickets Step = "tickets"
	StepSelectStall   Step = "stall"
	StepDetails       Step = "details"
	StepPayment       Step = "payment"
	StepConfirmed     Step = "confirmed"
)

// Wizard is one shopper's in-flight booking. Each instance is owned by a
// single session; the service serializes access to the registry, and a
// confirmed wizard is never modified again.
type Wizard struct {
	SessionID  string            `json:"sessionId"`
	Flow       string            `json:"flow"`
	Step       Step              `json:"step"`
	Exhibition models.Exhibition `json:"exhibition"`

	Ticket    *models.TicketType `json:"ticket,omitempty"`
	Quantity  int                `json:"quantity,omitempty"`
	VisitDate time.Time          `json:"visitDate,omitempty"`

	Stall  *models.StallType `json:"stall,omitempty"`
	Addons []models.AddOn    `json:"addons,omitempty"`

	Subtotal       float64 `json:"subtotal,omitempty"`
	ConvenienceFee float64 `json:"convenienceFee,omitempty"`
	Tax            float64 `json:"tax,omitempty"`
	Total          float64 `json:"total,omitempty"`

	Details       models.ContactDetails `json:"details,omitempty"`
	PaymentMethod string                `json:"paymentMethod,omitempty"`

	Booking *models.Booking `json:"booking,omitempty"`

	touched time.Time
}

// selectionStep is the wizard's initial step for its flow.
func (w *Wizard) selectionStep() Step {
	if w.Flow == models.FlowStall {
		return StepSelectStall
	}
	return StepSelectTickets
}

// validateDetails checks the required fields and their shape for the
// wizard's flow. Returns a field-level error, or nil.
func (w *Wizard) validateDetails(d models.ContactDetails) *models.ValidationError {
	if w.Flow == models.FlowStall {
		if strings.TrimSpace(d.CompanyName) == "" {
			return models.NewValidationError("companyName", "company name is required")
		}
		if strings.TrimSpace(d.ContactPerson) == "" {
			return models.NewValidationError("contactPerson", "contact person is required")
		}
	} else {
		if strings.TrimSpace(d.Name) == "" {
			return models.NewValidationError("name", "name is required")
		}
	}
	if strings.TrimSpace(d.Email) == "" {
		return models.NewValidationError("email", "email is required")
	}
	if err := validateEmail(d.Email); err != nil {
		return err
	}
	if strings.TrimSpace(d.Phone) == "" {
		return models.NewValidationError("phone", "phone is required")
	}
	return validatePhone(d.Phone)
}

func validateEmail(email string) *models.ValidationError {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" || !strings.Contains(domain, ".") {
		return models.NewValidationError("email", "email address is malformed")
	}
	return nil
}

func validatePhone(phone string) *models.ValidationError {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '+' || r == '(' || r == ')':
			// separators are fine
		default:
			return models.NewValidationError("phone", "phone number contains invalid characters")
		}
	}
	if digits < 7 || digits > 15 {
		return models.NewValidationError("phone", "phone number must have 7 to 15 digits")
	}
	return nil
}
