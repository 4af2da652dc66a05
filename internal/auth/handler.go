package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpetrov/fittrack/internal/telemetry/tracing"
	"github.com/mpetrov/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the auth endpoints. The rate limit middleware is
// applied to the login subrouter only, the rest is cheap.
func (handler *Handler) SetupRoutes(r *mux.Router, rateLimit mux.MiddlewareFunc) {
	loginSubrouter := r.PathPrefix("/auth/login").Subrouter()
	loginSubrouter.HandleFunc("", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	if rateLimit != nil {
		loginSubrouter.Use(rateLimit)
	}

	r.HandleFunc("/auth/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.HandleFunc("/auth/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	r.HandleFunc("/auth/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")
	r.HandleFunc("/auth/me", handler.HandleUpdateMe).Methods("PUT", "OPTIONS").Name("update-me")
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var params RegisterParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	user, err := handler.service.Register(ctx, params)
	if err != nil {
		log.Errorf("failed to register user [%s]: %s", params.Email, err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal registered user: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %s", user.UID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return
	}

	token, err := handler.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrWrongPassword) || errors.Is(err, ErrUserNotFound) {
			log.Tracef("failed login attempt for [%s]", req.Email)
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login [%s]: %s", req.Email, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(loginResponse{Token: token})
	if err != nil {
		log.Errorf("failed to marshal login response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := BearerToken(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.service.Logout(ctx, token); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"loggedOut":true}`)
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	user, ok := UserFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal user: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.updateMe")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	user, ok := UserFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update me, unmarshal json params: %s", err)
		http.Error(w, "update failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateDisplayName(ctx, user.UID, req.DisplayName); err != nil {
		log.Errorf("failed to update display name for %s: %s", user.UID, err)
		http.Error(w, "update failed", http.StatusBadRequest)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		return ""
	}
	return authHeader[len(prefix):]
}
