package entities

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistedRef(t *testing.T) {
	r := PersistedRef("3f2c8a6e-0000-0000-0000-000000000001")

	assert.True(t, r.IsPersisted())
	id, ok := r.ID()
	assert.True(t, ok)
	assert.Equal(t, "3f2c8a6e-0000-0000-0000-000000000001", id)
	assert.Equal(t, id, r.Key())
}

func TestProvisionalRef(t *testing.T) {
	r := ProvisionalRef()

	assert.False(t, r.IsPersisted())
	assert.False(t, r.IsZero())
	_, ok := r.ID()
	assert.False(t, ok)
	assert.True(t, strings.HasPrefix(r.Key(), "local-"))
}

func TestProvisionalRefsAreUnique(t *testing.T) {
	assert.NotEqual(t, ProvisionalRef().Key(), ProvisionalRef().Key())
}

func TestRefJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(PersistedRef("abc-123"))
	require.NoError(t, err)
	assert.Equal(t, `"abc-123"`, string(b))

	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`"abc-123"`), &r))
	assert.True(t, r.IsPersisted())
	assert.Equal(t, "abc-123", r.Key())
}

func TestRefUnmarshalEmptyMeansNotPersisted(t *testing.T) {
	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`""`), &r))
	assert.True(t, r.IsZero())
	assert.False(t, r.IsPersisted())
}

// Identifiers arriving from a client are always server-assigned, whatever
// their shape. Persistence is never inferred from the string format.
func TestRefUnmarshalDoesNotSniffFormat(t *testing.T) {
	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`"local-looking-but-from-server"`), &r))
	assert.True(t, r.IsPersisted())
}
