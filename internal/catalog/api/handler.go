package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"expo-ticketing/internal/cache"
	"expo-ticketing/internal/catalog"
	"expo-ticketing/internal/logger"
	"expo-ticketing/internal/models"
	"expo-ticketing/internal/pricing"
	"expo-ticketing/internal/utils"
)

type Handler struct {
	Store  *catalog.Store
	Cache  *cache.SearchCache
	Logger *logger.Logger
}

func NewHandler(store *catalog.Store, searchCache *cache.SearchCache, log *logger.Logger) *Handler {
	return &Handler{Store: store, Cache: searchCache, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/exhibitions", h.ListExhibitions)
	r.Get("/exhibitions/{exhibitionID}", h.GetExhibition)
	r.Get("/catalog/cities", h.Cities)
	r.Get("/catalog/categories", h.Categories)
	r.Get("/catalog/stall-types", h.StallTypes)
	r.Get("/catalog/addons", h.AddOns)
	r.Post("/quotes/ticket", h.QuoteTicket)
	r.Post("/quotes/stall", h.QuoteStall)
}

func (h *Handler) ListExhibitions(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sortKey := catalog.ParseSortKey(r.URL.Query().Get("sort"))

	key := criteria.CacheKey(sortKey)
	if cached, ok := h.Cache.Get(r.Context(), key); ok {
		h.Logger.Debug("CATALOG", fmt.Sprintf("ListExhibitions: cache hit for %s", key))
		writeJSON(w, http.StatusOK, utils.SuccessResponse("exhibitions", cached))
		return
	}

	result := catalog.FilterAndSort(h.Store.Exhibitions(), criteria, sortKey)
	h.Cache.Set(r.Context(), key, result)
	writeJSON(w, http.StatusOK, utils.SuccessResponse("exhibitions", result))
}

func (h *Handler) GetExhibition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "exhibitionID")
	exhibition, err := h.Store.ExhibitionByID(id)
	if err != nil {
		h.Logger.Warn("CATALOG", fmt.Sprintf("GetExhibition: %v", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("exhibition", exhibition))
}

func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, utils.SuccessResponse("cities", h.Store.Cities()))
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, utils.SuccessResponse("categories", h.Store.Categories()))
}

func (h *Handler) StallTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, utils.SuccessResponse("stall types", h.Store.StallTypes()))
}

func (h *Handler) AddOns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, utils.SuccessResponse("add-ons", h.Store.AddOns()))
}

type ticketQuoteRequest struct {
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

func (h *Handler) QuoteTicket(w http.ResponseWriter, r *http.Request) {
	var req ticketQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	breakdown, err := pricing.TicketTotal(req.UnitPrice, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("ticket quote", breakdown))
}

type stallQuoteRequest struct {
	StallTypeID string   `json:"stallTypeId"`
	AddonIDs    []string `json:"addonIds"`
}

func (h *Handler) QuoteStall(w http.ResponseWriter, r *http.Request) {
	var req stallQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	stall, err := h.Store.StallType(req.StallTypeID)
	if err != nil {
		writeError(w, err)
		return
	}
	addons, err := h.Store.AddOnsByID(req.AddonIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	prices := make([]float64, len(addons))
	for i, a := range addons {
		prices[i] = a.Price
	}
	breakdown, err := pricing.StallTotal(stall.Price, prices)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("stall quote", breakdown))
}

func parseCriteria(r *http.Request) (catalog.Criteria, error) {
	q := r.URL.Query()
	criteria := catalog.Criteria{
		SearchText: q.Get("search"),
		City:       q.Get("city"),
		Category:   q.Get("category"),
	}

	if raw := q.Get("priceMin"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, fmt.Errorf("invalid priceMin: %q", raw)
		}
		criteria.PriceMin = v
	}
	if raw := q.Get("priceMax"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, fmt.Errorf("invalid priceMax: %q", raw)
		}
		criteria.PriceMax = v
	}
	if raw := q.Get("dateFrom"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return criteria, fmt.Errorf("invalid dateFrom: %q", raw)
		}
		criteria.DateFrom = t
	}
	if raw := q.Get("dateTo"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return criteria, fmt.Errorf("invalid dateTo: %q", raw)
		}
		criteria.DateTo = t
	}
	return criteria, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	var nferr *models.NotFoundError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, utils.ErrorResponse("validation failed", verr.Error()))
	case errors.As(err, &nferr):
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("not found", nferr.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, utils.ErrorResponse("internal error", err.Error()))
	}
}
