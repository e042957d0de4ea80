package message

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler exposes the message rules over HTTP.
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

// Routes registers the message endpoints on the router.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/messages", h.CreateMessageHandler).Methods("POST")
	r.HandleFunc("/messages", h.GetAllMessagesHandler).Methods("GET")
	r.HandleFunc("/messages/{message_id}", h.GetMessageByIDHandler).Methods("GET")
	r.HandleFunc("/messages/{message_id}", h.DeleteMessageByIDHandler).Methods("DELETE")
	r.HandleFunc("/messages/{message_id}", h.UpdateMessageByIDHandler).Methods("PATCH")
	r.HandleFunc("/accounts/{account_id}/messages", h.GetMessagesByAccountHandler).Methods("GET")
}

func (h *Handler) CreateMessageHandler(w http.ResponseWriter, r *http.Request) {
	var m Message
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(m)
	if err != nil {
		h.logger.Info("message rejected",
			zap.Int("posted_by", m.PostedBy), zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	writeJSON(w, created)
}

func (h *Handler) GetAllMessagesHandler(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.ListAll()
	if err != nil {
		messages = []Message{}
	}
	writeJSON(w, messages)
}

func (h *Handler) GetMessageByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "message_id")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	m, err := h.service.GetByID(id)
	if err != nil || m == nil {
		// Absent is a normal outcome: 200 with an empty body.
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, m)
}

func (h *Handler) DeleteMessageByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "message_id")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deleted, err := h.service.DeleteByID(id)
	if err != nil || deleted == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, deleted)
}

func (h *Handler) UpdateMessageByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "message_id")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var body struct {
		Text string `json:"message_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(id, body.Text)
	if err != nil {
		h.logger.Info("update rejected", zap.Int("message_id", id), zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	writeJSON(w, updated)
}

func (h *Handler) GetMessagesByAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "account_id")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	messages, err := h.service.ListByAuthor(id)
	if err != nil {
		messages = []Message{}
	}
	writeJSON(w, messages)
}

func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
