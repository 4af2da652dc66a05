package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpetrov/fittrack/internal/telemetry/metrics"
	"github.com/mpetrov/fittrack/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reports

type reportsService interface {
	PopularTrainings(ctx context.Context) ([]TrainingPopularity, error)
	UsersDirectory(ctx context.Context) ([]UserEntry, error)
	UserProgress(ctx context.Context, userID string) (*UserProgress, error)
	AverageActivity(ctx context.Context) (*ActivityReport, error)
	MonthlyRankings(ctx context.Context) ([]UserRanking, error)
}

type Handler struct {
	service reportsService
	metrics *metrics.Manager
}

func NewHandler(service reportsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/admin/popular-trainings", h.HandlePopularTrainings).Methods("GET", "OPTIONS")
	r.HandleFunc("/admin/users", h.HandleUsersDirectory).Methods("GET", "OPTIONS")
	r.HandleFunc("/admin/user-progress", h.HandleUserProgress).Methods("GET", "OPTIONS")
	r.HandleFunc("/admin/average-activity", h.HandleAverageActivity).Methods("GET", "OPTIONS")
	r.HandleFunc("/rankings/month", h.HandleMonthlyRankings).Methods("GET", "OPTIONS")
}

func (h *Handler) HandlePopularTrainings(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.service.PopularTrainings(r.Context())
	if err != nil {
		h.writeError(w, "popular-trainings", err)
		return
	}
	if ranked == nil {
		ranked = []TrainingPopularity{}
	}
	h.writeReport(w, "popular-trainings", ranked)
}

func (h *Handler) HandleUsersDirectory(w http.ResponseWriter, r *http.Request) {
	directory, err := h.service.UsersDirectory(r.Context())
	if err != nil {
		h.writeError(w, "users", err)
		return
	}
	if directory == nil {
		directory = []UserEntry{}
	}
	h.writeReport(w, "users", directory)
}

func (h *Handler) HandleUserProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.UserProgress(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		h.writeError(w, "user-progress", err)
		return
	}
	h.writeReport(w, "user-progress", progress)
}

func (h *Handler) HandleAverageActivity(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.AverageActivity(r.Context())
	if err != nil {
		h.writeError(w, "average-activity", err)
		return
	}
	h.writeReport(w, "average-activity", report)
}

func (h *Handler) HandleMonthlyRankings(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.service.MonthlyRankings(r.Context())
	if err != nil {
		h.writeError(w, "rankings", err)
		return
	}
	if ranked == nil {
		ranked = []UserRanking{}
	}
	h.writeReport(w, "rankings", ranked)
}

func (h *Handler) writeReport(w http.ResponseWriter, report string, payload any) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal %s report: %s", report, err)
		http.Error(w, "failed to get report", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterReportsServed.With(prometheus.Labels{"report": report}).Inc()
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, payloadJson)
}

func (h *Handler) writeError(w http.ResponseWriter, report string, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
		return
	}

	log.Errorf("failed to get %s report: %s", report, err)
	http.Error(w, "failed to get report", http.StatusInternalServerError)
}
