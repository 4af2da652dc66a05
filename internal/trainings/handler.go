package trainings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mpetrov/fittrack/internal/auth"
	"github.com/mpetrov/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type trainingsRepo interface {
	Add(ctx context.Context, training Training) (*Training, error)
	List(ctx context.Context) ([]Training, error)
	Get(ctx context.Context, id int) (*Training, error)
	Delete(ctx context.Context, id int) error
}

type Handler struct {
	repo trainingsRepo
	now  func() time.Time
}

func NewHandler(repo trainingsRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/trainings", h.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/trainings", h.HandleAdd).Methods("POST", "OPTIONS")
	r.HandleFunc("/trainings/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS")
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

	var training Training
	if err := json.NewDecoder(r.Body).Decode(&training); err != nil {
		log.Errorf("add training, unmarshal json params: %s", err)
		http.Error(w, "add training failed", http.StatusBadRequest)
		return
	}

	if training.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	training.ID = 0
	training.UserID = user.UID
	training.CreatedAt = h.now()
	training.CreatedBy = user.DisplayName
	if training.CreatedBy == "" {
		training.CreatedBy = user.UID
	}

	added, err := h.repo.Add(r.Context(), training)
	if err != nil {
		log.Errorf("failed to add training for %s: %s", user.UID, err)
		http.Error(w, "error, failed to add training", http.StatusInternalServerError)
		return
	}

	log.Tracef("training added: %d [user %s]", added.ID, user.UID)

	trainingJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added training: %s", err)
		http.Error(w, "error, failed to add training", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainingJson, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	trainings, err := h.repo.List(r.Context())
	if err != nil {
		log.Errorf("failed to list trainings: %s", err)
		http.Error(w, "error, failed to get trainings", http.StatusInternalServerError)
		return
	}
	if trainings == nil {
		trainings = []Training{}
	}

	trainingsJson, err := json.Marshal(trainings)
	if err != nil {
		log.Errorf("marshal trainings: %s", err)
		http.Error(w, "error, failed to get trainings", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, trainingsJson)
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

	training, err := h.repo.Get(r.Context(), id)
	if errors.Is(err, ErrTrainingNotFound) {
		http.Error(w, "training not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get training %d: %s", id, err)
		http.Error(w, "error, failed to delete training", http.StatusInternalServerError)
		return
	}
	if training.UserID != user.UID {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		log.Errorf("failed to delete training %d: %s", id, err)
		http.Error(w, "error, failed to delete training", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
