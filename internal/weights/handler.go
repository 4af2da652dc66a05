package weights

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/mpetrov/fittrack/internal/auth"
	"github.com/mpetrov/fittrack/internal/telemetry/metrics"
	"github.com/mpetrov/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type weightsRepo interface {
	Add(ctx context.Context, record WeightRecord) (*WeightRecord, error)
	ListForUser(ctx context.Context, userID string) ([]WeightRecord, error)
}

type Handler struct {
	repo    weightsRepo
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHandler(repo weightsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/weights", h.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/weights", h.HandleAdd).Methods("POST", "OPTIONS")
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

	var record WeightRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Errorf("add weight report, unmarshal json params: %s", err)
		http.Error(w, "add weight report failed", http.StatusBadRequest)
		return
	}

	if record.Weight <= 0 || math.IsNaN(record.Weight) || math.IsInf(record.Weight, 0) {
		http.Error(w, "error, invalid weight", http.StatusBadRequest)
		return
	}

	record.ID = 0
	record.UserID = user.UID
	record.CreatedAt = h.now()
	record.CreatedBy = user.DisplayName
	if record.CreatedBy == "" {
		record.CreatedBy = user.UID
	}

	added, err := h.repo.Add(r.Context(), record)
	if err != nil {
		log.Errorf("failed to add weight report for %s: %s", user.UID, err)
		http.Error(w, "error, failed to add weight report", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterWeightsReported.Inc()
	log.Tracef("weight report added: %d [user %s]", added.ID, user.UID)

	recordJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added weight report: %s", err)
		http.Error(w, "error, failed to add weight report", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	records, err := h.repo.ListForUser(r.Context(), user.UID)
	if err != nil {
		log.Errorf("failed to list weight reports for %s: %s", user.UID, err)
		http.Error(w, "error, failed to get weight reports", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []WeightRecord{}
	}

	recordsJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("marshal weight reports: %s", err)
		http.Error(w, "error, failed to get weight reports", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recordsJson)
}
