package trainings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mpetrov/fittrack/internal/auth"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type repoStub struct {
	nextID    int
	trainings map[int]Training
}

func newRepoStub(trainings ...Training) *repoStub {
	stub := &repoStub{
		nextID:    1,
		trainings: map[int]Training{},
	}
	for _, tr := range trainings {
		stub.trainings[tr.ID] = tr
		if tr.ID >= stub.nextID {
			stub.nextID = tr.ID + 1
		}
	}
	return stub
}

func (r *repoStub) Add(_ context.Context, training Training) (*Training, error) {
	training.ID = r.nextID
	r.nextID++
	r.trainings[training.ID] = training
	return &training, nil
}

func (r *repoStub) List(_ context.Context) ([]Training, error) {
	var out []Training
	for _, tr := range r.trainings {
		out = append(out, tr)
	}
	return out, nil
}

func (r *repoStub) Get(_ context.Context, id int) (*Training, error) {
	tr, ok := r.trainings[id]
	if !ok {
		return nil, ErrTrainingNotFound
	}
	return &tr, nil
}

func (r *repoStub) Delete(_ context.Context, id int) error {
	if _, ok := r.trainings[id]; !ok {
		return ErrTrainingNotFound
	}
	delete(r.trainings, id)
	return nil
}

func newTestRouter(repo *repoStub) *mux.Router {
	r := mux.NewRouter()
	NewHandler(repo).SetupRoutes(r)
	return r
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	user := &auth.User{UID: "u1", Email: "ana@example.com", DisplayName: "Ana"}
	return req.WithContext(auth.ContextWithUser(req.Context(), user))
}

func TestHandler_Add(t *testing.T) {
	repo := newRepoStub()
	r := newTestRouter(repo)

	body := `{"name":"Morning Yoga","description":"easy start","exercises":["sun salutation"]}`
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest("POST", "/trainings", body))

	require.Equal(t, http.StatusCreated, rr.Code)

	var added Training
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.Equal(t, 1, added.ID)
	assert.Equal(t, "u1", added.UserID)
	assert.Equal(t, "Morning Yoga", added.Name)
	assert.Equal(t, "Ana", added.CreatedBy)
	assert.False(t, added.CreatedAt.IsZero())
}

func TestHandler_Add_MissingName(t *testing.T) {
	r := newTestRouter(newRepoStub())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest("POST", "/trainings", `{"description":"nameless"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_List(t *testing.T) {
	repo := newRepoStub(Training{ID: 1, UserID: "u1", Name: "Morning Yoga"})
	r := newTestRouter(repo)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest("GET", "/trainings", ""))

	require.Equal(t, http.StatusOK, rr.Code)

	var listed []Training
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Morning Yoga", listed[0].Name)
}

func TestHandler_Delete(t *testing.T) {
	repo := newRepoStub(
		Training{ID: 1, UserID: "u1", Name: "Morning Yoga"},
		Training{ID: 2, UserID: "someone-else", Name: "Evening Run"},
	)
	r := newTestRouter(repo)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest("DELETE", "/trainings/1", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "deleted:1", rr.Body.String())

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest("DELETE", "/trainings/2", ""))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest("DELETE", "/trainings/42", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
