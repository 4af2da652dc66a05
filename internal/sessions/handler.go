package sessions

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mpetrov/fittrack/internal/auth"
	"github.com/mpetrov/fittrack/internal/telemetry/metrics"
	"github.com/mpetrov/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

var ErrNotOwner = errors.New("session belongs to another user")

type Handler struct {
	service *Service
	metrics *metrics.Manager
}

func NewHandler(service *Service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/sessions", h.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/sessions", h.HandleAdd).Methods("POST", "OPTIONS")
	r.HandleFunc("/sessions/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if contentType := r.Header.Get("Content-Type"); contentType != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var session TrainingSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("add training session, unmarshal json params: %s", err)
		http.Error(w, "add training session failed", http.StatusBadRequest)
		return
	}

	session.ID = 0
	session.UserID = user.UID
	session.CreatedBy = user.DisplayName
	if session.CreatedBy == "" {
		session.CreatedBy = user.UID
	}

	added, err := h.service.Create(r.Context(), session)
	if err != nil {
		log.Errorf("failed to add training session for %s: %s", user.UID, err)
		http.Error(w, "error, failed to add training session", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterSessionsCreated.Inc()
	log.Tracef("training session added: %d [user %s]", added.ID, user.UID)

	sessionJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added training session: %s", err)
		http.Error(w, "error, failed to add training session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessions, err := h.service.ListForUser(r.Context(), user.UID)
	if err != nil {
		log.Errorf("failed to list training sessions for %s: %s", user.UID, err)
		http.Error(w, "error, failed to get training sessions", http.StatusInternalServerError)
		return
	}
	if sessions == nil {
		sessions = []TrainingSession{}
	}

	sessionsJson, err := json.Marshal(sessions)
	if err != nil {
		log.Errorf("marshal training sessions: %s", err)
		http.Error(w, "error, failed to get training sessions", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sessionsJson)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	switch err := h.service.Delete(r.Context(), id, user.UID); {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrNotOwner):
		http.Error(w, "no can do", http.StatusForbidden)
		return
	case err != nil:
		log.Errorf("failed to delete training session %d: %s", id, err)
		http.Error(w, "error, failed to delete session", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
