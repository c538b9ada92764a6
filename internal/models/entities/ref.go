package entities

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Ref identifies an entity either by a server-assigned identifier or by a
// provisional local key minted before the first successful persist. Whether
// an entity has been persisted is a method call, never a format check on
// the identifier string.
type Ref struct {
	key       string
	persisted bool
}

// PersistedRef wraps a server-assigned identifier.
func PersistedRef(id string) Ref {
	return Ref{key: id, persisted: true}
}

// ProvisionalRef mints a fresh local key for a not-yet-persisted entity.
func ProvisionalRef() Ref {
	return Ref{key: "local-" + uuid.NewString()}
}

// Key returns the identifier string regardless of persistence state.
func (r Ref) Key() string { return r.key }

// ID returns the server-assigned identifier, or false when the entity has
// not been persisted yet.
func (r Ref) ID() (string, bool) {
	if !r.persisted {
		return "", false
	}
	return r.key, true
}

func (r Ref) IsPersisted() bool { return r.persisted }

func (r Ref) IsZero() bool { return r.key == "" }

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.key)
}

// UnmarshalJSON treats any non-empty identifier as server-assigned: clients
// only ever hold identifiers the server handed back. An empty or absent
// identifier means "not persisted yet".
func (r *Ref) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*r = Ref{}
		return nil
	}
	*r = PersistedRef(s)
	return nil
}
