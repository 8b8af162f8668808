package auth

import (
	"encoding/json"
	"fmt"
	"net/http"

	"expo-ticketing/internal/logger"
	"expo-ticketing/internal/utils"
)

type Handler struct {
	Issuer *Issuer
	Logger *logger.Logger
}

// Login is the mock sign-in: it signs a token for the supplied identity
// without checking credentials. There is no account backend in this service.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var identity Identity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.Issuer.IssueToken(identity)
	if err != nil {
		h.Logger.Error("AUTH", fmt.Sprintf("Login: failed to issue token: %v", err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.Logger.Info("AUTH", fmt.Sprintf("Login: token issued for %s", identity.Email))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(utils.SuccessResponse("signed in", map[string]string{"token": token}))
}
