package progression

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitcoach/internal/calendar"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

type profileReader interface {
	Get(ctx context.Context, clientID uuid.UUID) (*Profile, error)
}

type todayRecomputer interface {
	RecomputeToday(ctx context.Context, clientID uuid.UUID) (*Result, error)
}

type ProfileView struct {
	ClientID       uuid.UUID     `json:"clientId"`
	XP             int           `json:"xp"`
	Progress       LevelProgress `json:"progress"`
	StreakDays     int           `json:"streakDays"`
	BestStreak     int           `json:"bestStreak"`
	LastActiveDate string        `json:"lastActiveDate,omitempty"`
	TotalWorkouts  int           `json:"totalWorkouts"`
	TotalHabits    int           `json:"totalHabits"`
	Badges         []BadgeView   `json:"badges"`
}

func NewProfileView(p *Profile, locale Locale) ProfileView {
	view := ProfileView{
		ClientID:      p.ClientID,
		XP:            p.XP,
		Progress:      ProgressOf(p.XP),
		StreakDays:    p.StreakDays,
		BestStreak:    p.BestStreak,
		TotalWorkouts: p.TotalWorkouts,
		TotalHabits:   p.TotalHabits,
		Badges:        make([]BadgeView, 0, len(p.Badges)),
	}
	if p.LastActiveDate != nil {
		view.LastActiveDate = calendar.Format(*p.LastActiveDate)
	}
	for _, id := range p.Badges {
		if badge, ok := LookupBadge(id); ok {
			view.Badges = append(view.Badges, badge.View(locale))
		}
	}
	return view
}

type CatalogResponse struct {
	Version int         `json:"version"`
	Badges  []BadgeView `json:"badges"`
}

type Handler struct {
	profiles profileReader
	engine   todayRecomputer
	cache    *ProfileCache
}

// NewHandler creates the progression handler. cache may be nil.
func NewHandler(profiles profileReader, engine todayRecomputer, cache *ProfileCache) *Handler {
	return &Handler{
		profiles: profiles,
		engine:   engine,
		cache:    cache,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/clients/{clientId}/progression", h.HandleGetProfile).
		Methods("GET", "OPTIONS").
		Name("get-progression")
	r.HandleFunc("/clients/{clientId}/progression/recompute", h.HandleRecompute).
		Methods("POST", "OPTIONS").
		Name("recompute-progression")
	r.HandleFunc("/progression/badges", h.HandleCatalog).
		Methods("GET", "OPTIONS").
		Name("badge-catalog")
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.get")
	defer span.End()

	clientID, err := pkg.UUIDVar(r, "clientId")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	locale := ParseLocale(r.URL.Query().Get("lang"))

	if h.cache != nil {
		if cached, ok := h.cache.Get(clientID); ok {
			pkg.WriteJSON(w, NewProfileView(cached, locale), http.StatusOK)
			return
		}
	}

	profile, err := h.profiles.Get(ctx, clientID)
	if err != nil {
		log.Errorf("get progression profile %s: %s", clientID, err)
		http.Error(w, "failed to get progression", http.StatusInternalServerError)
		return
	}

	if profile == nil {
		// not created until the first reward evaluation
		profile = NewProfile(clientID)
	} else if h.cache != nil {
		h.cache.Fill(*profile)
	}

	pkg.WriteJSON(w, NewProfileView(profile, locale), http.StatusOK)
}

func (h *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.recompute")
	defer span.End()

	clientID, err := pkg.UUIDVar(r, "clientId")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	result, err := h.engine.RecomputeToday(ctx, clientID)
	if err != nil {
		log.Errorf("recompute progression for %s: %s", clientID, err)
		if errors.Is(err, ErrLockNotAcquired) || errors.Is(err, context.DeadlineExceeded) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "progression busy, retry later", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "failed to recompute progression", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	locale := ParseLocale(r.URL.Query().Get("lang"))

	resp := CatalogResponse{
		Version: CatalogVersion,
	}
	for _, badge := range Catalog() {
		resp.Badges = append(resp.Badges, badge.View(locale))
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}
