package activity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitcoach/internal/calendar"
	"github.com/2beens/fitcoach/internal/progression"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activity_test

const maxRangeDays = 366

type activityLogger interface {
	LogWorkout(ctx context.Context, clientID uuid.UUID) (*LogResult, error)
	LogHabit(ctx context.Context, clientID uuid.UUID, habitID string) (*LogResult, error)
	CompleteSession(ctx context.Context, clientID uuid.UUID, session progression.SessionCompletion) (*LogResult, error)
}

type activityLister interface {
	ListRange(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]progression.ActivityLogEntry, error)
}

type LogHabitRequest struct {
	HabitID string `json:"habitId"`
}

type ListResponse struct {
	Entries []progression.ActivityLogEntry `json:"entries"`
}

type Handler struct {
	service activityLogger
	lister  activityLister
}

func NewHandler(service activityLogger, lister activityLister) *Handler {
	return &Handler{
		service: service,
		lister:  lister,
	}
}

// SetupRoutes registers the write routes on r and the read route on readRouter.
// Write routes are expected to be rate limited by the caller.
func (h *Handler) SetupRoutes(r *mux.Router, readRouter *mux.Router) {
	r.HandleFunc("/clients/{clientId}/activity/workout", h.HandleLogWorkout).
		Methods("POST", "OPTIONS").
		Name("log-workout")
	r.HandleFunc("/clients/{clientId}/activity/habits", h.HandleLogHabit).
		Methods("POST", "OPTIONS").
		Name("log-habit")
	r.HandleFunc("/clients/{clientId}/sessions/complete", h.HandleCompleteSession).
		Methods("POST", "OPTIONS").
		Name("complete-session")
	readRouter.HandleFunc("/clients/{clientId}/activity/from/{from}/to/{to}", h.HandleListRange).
		Methods("GET", "OPTIONS").
		Name("list-activity")
}

func (h *Handler) HandleLogWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.log_workout")
	defer span.End()

	clientID, err := pkg.UUIDVar(r, "clientId")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	result, err := h.service.LogWorkout(ctx, clientID)
	if err != nil {
		log.Errorf("log workout for %s: %s", clientID, err)
		http.Error(w, "failed to log workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) HandleLogHabit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.log_habit")
	defer span.End()

	clientID, err := pkg.UUIDVar(r, "clientId")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	var req LogHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log habit, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.LogHabit(ctx, clientID, req.HabitID)
	if err != nil {
		if errors.Is(err, ErrInvalidHabit) {
			http.Error(w, "invalid habit id", http.StatusBadRequest)
			return
		}
		log.Errorf("log habit [%s] for %s: %s", req.HabitID, clientID, err)
		http.Error(w, "failed to log habit", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.complete_session")
	defer span.End()

	clientID, err := pkg.UUIDVar(r, "clientId")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	var session progression.SessionCompletion
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("complete session, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompleteSession(ctx, clientID, session)
	if err != nil {
		switch {
		case errors.Is(err, progression.ErrInvalidSession):
			http.Error(w, "invalid session", http.StatusBadRequest)
		case errors.Is(err, ErrSessionAlreadyCompleted):
			http.Error(w, "session already completed", http.StatusConflict)
		default:
			log.Errorf("complete session [%s] for %s: %s", session.SessionID, clientID, err)
			http.Error(w, "failed to complete session", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) HandleListRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.list_range")
	defer span.End()

	clientID, err := pkg.UUIDVar(r, "clientId")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	from, err := calendar.Parse(vars["from"])
	if err != nil {
		http.Error(w, "invalid from date", http.StatusBadRequest)
		return
	}
	to, err := calendar.Parse(vars["to"])
	if err != nil {
		http.Error(w, "invalid to date", http.StatusBadRequest)
		return
	}
	if to.Before(from) || to.After(from.AddDate(0, 0, maxRangeDays)) {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	entries, err := h.lister.ListRange(ctx, clientID, from, to)
	if err != nil {
		log.Errorf("list activity for %s: %s", clientID, err)
		http.Error(w, "failed to list activity", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{Entries: entries}, http.StatusOK)
}
