package pkg

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// UUIDVar parses the named mux route variable as a UUID.
func UUIDVar(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return uuid.Nil, fmt.Errorf("route var [%s] empty", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("route var [%s]: %w", name, err)
	}
	return id, nil
}
