package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"expo-ticketing/internal/auth"
	"expo-ticketing/internal/booking"
	"expo-ticketing/internal/logger"
	"expo-ticketing/internal/models"
	"expo-ticketing/internal/utils"
)

type Handler struct {
	Bookings *booking.Service
	Logger   *logger.Logger
}

func NewHandler(service *booking.Service, log *logger.Logger) *Handler {
	return &Handler{Bookings: service, Logger: log}
}

// RegisterRoutes mounts the wizard and booking-lookup endpoints.
// ListMyBookings is mounted separately by the caller behind auth middleware.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/wizard/tickets", h.StartTicketWizard)
	r.Post("/wizard/stalls", h.StartStallWizard)
	r.Get("/wizard/{sessionID}", h.GetWizard)
	r.Post("/wizard/{sessionID}/selection", h.Select)
	r.Post("/wizard/{sessionID}/details", h.SubmitDetails)
	r.Post("/wizard/{sessionID}/payment", h.ConfirmPayment)
	r.Post("/wizard/{sessionID}/back", h.Back)
	r.Get("/bookings/{ref}", h.GetBooking)
}

type startRequest struct {
	ExhibitionID string `json:"exhibitionId"`
}

func (h *Handler) StartTicketWizard(w http.ResponseWriter, r *http.Request) {
	h.start(w, r, models.FlowTicket)
}

func (h *Handler) StartStallWizard(w http.ResponseWriter, r *http.Request) {
	h.start(w, r, models.FlowStall)
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request, flow string) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	wizard, err := h.Bookings.StartWizard(flow, req.ExhibitionID)
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("StartWizard(%s): %v", flow, err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, utils.SuccessResponse("wizard started", wizard))
}

func (h *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	wizard, err := h.Bookings.Get(sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("wizard", wizard))
}

type selectionRequest struct {
	// Ticket flow.
	TicketTypeID string `json:"ticketTypeId,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
	VisitDate    string `json:"visitDate,omitempty"`
	// Stall flow.
	StallTypeID string   `json:"stallTypeId,omitempty"`
	AddonIDs    []string `json:"addonIds,omitempty"`
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	current, err := h.Bookings.Get(sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	var wizard *booking.Wizard
	if current.Flow == models.FlowStall {
		wizard, err = h.Bookings.SelectStall(sessionID, req.StallTypeID, req.AddonIDs)
	} else {
		var visitDate time.Time
		if req.VisitDate != "" {
			visitDate, err = time.Parse("2006-01-02", req.VisitDate)
			if err != nil {
				writeError(w, models.NewValidationError("visitDate", "visit date must be YYYY-MM-DD"))
				return
			}
		}
		wizard, err = h.Bookings.SelectTickets(sessionID, req.TicketTypeID, req.Quantity, visitDate)
	}
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("Select: session %s: %v", sessionID, err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("selection recorded", wizard))
}

func (h *Handler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var details models.ContactDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	wizard, err := h.Bookings.SubmitDetails(sessionID, details)
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("SubmitDetails: session %s: %v", sessionID, err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("details recorded", wizard))
}

type paymentRequest struct {
	Method string `json:"method"`
}

func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	confirmation, err := h.Bookings.ConfirmPayment(sessionID, req.Method)
	if err != nil {
		h.Logger.Warn("API", fmt.Sprintf("ConfirmPayment: session %s: %v", sessionID, err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, utils.SuccessResponse("booking confirmed", confirmation))
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	wizard, exited, err := h.Bookings.Back(sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	if exited {
		writeJSON(w, http.StatusOK, utils.SuccessResponse("wizard exited", map[string]bool{"exited": true}))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("stepped back", wizard))
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	b, err := h.Bookings.GetBooking(ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("booking", b))
}

// ListMyBookings returns the bookings for the authenticated identity.
func (h *Handler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	bookings, err := h.Bookings.ListBookings(identity.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("bookings", bookings))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	var nferr *models.NotFoundError
	var perr *models.PaymentError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, utils.ErrorResponse("validation failed", verr.Error()))
	case errors.As(err, &nferr):
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("not found", nferr.Error()))
	case errors.As(err, &perr):
		writeJSON(w, http.StatusPaymentRequired, utils.ErrorResponse("payment failed", perr.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("internal error", err.Error()))
	}
}
