package account

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler exposes the account rules over HTTP.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Routes registers the account endpoints on the router.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/register", h.RegisterHandler).Methods("POST")
	r.HandleFunc("/login", h.LoginHandler).Methods("POST")
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var a Account
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.Register(a)
	if err != nil {
		h.logger.Info("registration rejected",
			zap.String("username", a.Username), zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	writeJSON(w, created)
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var a Account
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	matched, err := h.service.Login(a)
	if err != nil {
		h.logger.Info("login rejected",
			zap.String("username", a.Username), zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	writeJSON(w, matched)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
