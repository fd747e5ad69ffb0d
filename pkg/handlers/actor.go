package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ActorHeader carries the verified identity of the requesting document owner.
// Authentication happens upstream; the gateway forwards the resolved identity
// in this header.
const ActorHeader = "X-Actor-Id"

// ErrNoActor indicates the request carried no usable actor identity.
var ErrNoActor = errors.New("missing or invalid actor id")

// ActorID extracts the acting owner's ID from the request headers.
func ActorID(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(ActorHeader)
	if raw == "" {
		return uuid.Nil, ErrNoActor
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoActor
	}

	return id, nil
}
