package events

import (
	"context"
	"net/http"
	"strconv"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxPageSize = 200

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

type eventsLister interface {
	List(ctx context.Context, params ListParams) ([]Event, error)
	Count(ctx context.Context, clientID uuid.UUID) (int, error)
}

type ListResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

type Handler struct {
	lister eventsLister
}

func NewHandler(lister eventsLister) *Handler {
	return &Handler{
		lister: lister,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/clients/{clientId}/progression/events/page/{page}/size/{size}", h.HandleList).
		Methods("GET", "OPTIONS").
		Name("list-progression-events")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.events.list")
	defer span.End()

	clientID, err := pkg.UUIDVar(r, "clientId")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 || size > maxPageSize {
		http.Error(w, "invalid size", http.StatusBadRequest)
		return
	}

	params := ListParams{
		ClientID: clientID,
		Page:     page - 1,
		Size:     size,
	}
	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		eventType := EventType(typeParam)
		if !eventType.IsValid() {
			http.Error(w, "invalid event type", http.StatusBadRequest)
			return
		}
		params.Type = &eventType
	}

	events, err := h.lister.List(ctx, params)
	if err != nil {
		log.Errorf("list progression events for %s: %s", clientID, err)
		http.Error(w, "failed to list events", http.StatusInternalServerError)
		return
	}

	total, err := h.lister.Count(ctx, clientID)
	if err != nil {
		log.Errorf("count progression events for %s: %s", clientID, err)
		http.Error(w, "failed to count events", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Events: events,
		Total:  total,
	}, http.StatusOK)
}
