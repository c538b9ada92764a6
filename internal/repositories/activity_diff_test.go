package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "wayfarer/internal/models/db_models"
)

func storedActivity(name string) dbm.Activity {
	a := dbm.Activity{Name: name, Type: "attraction"}
	a.ID = uuid.New()
	return a
}

func TestActivityDiff(t *testing.T) {
	breakfast := storedActivity("breakfast")
	walk := storedActivity("walk")
	moved := storedActivity("moved in from another day")
	provisional := dbm.Activity{Name: "new entry", Type: "food"}

	tests := []struct {
		name       string
		existing   []dbm.Activity
		desired    []dbm.Activity
		wantDelete []uuid.UUID
		wantUpdate []string
		wantInsert []string
	}{
		{
			name:       "already applied list changes nothing",
			existing:   []dbm.Activity{breakfast, walk},
			desired:    []dbm.Activity{breakfast, walk},
			wantUpdate: []string{"breakfast", "walk"},
		},
		{
			name:       "empty desired deletes everything",
			existing:   []dbm.Activity{breakfast, walk},
			desired:    nil,
			wantDelete: []uuid.UUID{breakfast.ID, walk.ID},
		},
		{
			name:       "provisional row inserts",
			existing:   []dbm.Activity{breakfast},
			desired:    []dbm.Activity{breakfast, provisional},
			wantUpdate: []string{"breakfast"},
			wantInsert: []string{"new entry"},
		},
		{
			name:       "known id from another day inserts keeping it",
			existing:   []dbm.Activity{breakfast},
			desired:    []dbm.Activity{breakfast, moved},
			wantUpdate: []string{"breakfast"},
			wantInsert: []string{"moved in from another day"},
		},
		{
			name:       "omission deletes while the rest updates",
			existing:   []dbm.Activity{breakfast, walk},
			desired:    []dbm.Activity{walk},
			wantDelete: []uuid.UUID{breakfast.ID},
			wantUpdate: []string{"walk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toDelete, toUpdate, toInsert := activityDiff(tt.existing, tt.desired)

			assert.ElementsMatch(t, tt.wantDelete, toDelete)
			assert.Equal(t, tt.wantUpdate, names(toUpdate))
			assert.Equal(t, tt.wantInsert, names(toInsert))
		})
	}
}

func TestActivityDiffReapplyIsIdempotent(t *testing.T) {
	stored := []dbm.Activity{storedActivity("breakfast"), storedActivity("dinner")}

	toDelete, toUpdate, toInsert := activityDiff(stored, stored)
	require.Empty(t, toDelete)
	require.Empty(t, toInsert)
	require.Len(t, toUpdate, 2)

	// Applying the diff's own output again still produces no writes beyond
	// the in-place updates.
	toDelete, toUpdate, toInsert = activityDiff(stored, toUpdate)
	assert.Empty(t, toDelete)
	assert.Empty(t, toInsert)
	assert.Len(t, toUpdate, 2)
}

func TestActivityDiffKeepsMovedIdentifier(t *testing.T) {
	moved := storedActivity("harbor tour")

	_, _, toInsert := activityDiff(nil, []dbm.Activity{moved})
	require.Len(t, toInsert, 1)
	assert.Equal(t, moved.ID, toInsert[0].ID)
}

func names(rows []dbm.Activity) []string {
	if len(rows) == 0 {
		return nil
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}
