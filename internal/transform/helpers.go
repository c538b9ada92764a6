// Package transform converts between the remote store's row shapes and the
// application entities. Conversions are pure: identical input yields
// identical output, NULL columns map to absent fields, and malformed input
// is a precondition violation that fails loudly.
package transform

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"wayfarer/internal/models/entities"
	"wayfarer/pkg/utils"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// mustDate parses a calendar date. Callers validate dates at the binding
// layer; a malformed date reaching the transform is a bug, not a
// recoverable condition.
func mustDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(fmt.Sprintf("transform: malformed date %q: %v", s, err))
	}
	return t
}

// mustUUID parses a server-assigned identifier. Only persisted refs carry
// one, and the server only ever assigns UUIDs.
func mustUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("transform: malformed server identifier %q: %v", s, err))
	}
	return id
}

// rowID fills the row identifier only for persisted entities, so that an
// entity without a server-assigned ID produces a "create" payload.
func rowID(ref entities.Ref) uuid.UUID {
	if id, ok := ref.ID(); ok {
		return mustUUID(id)
	}
	return uuid.Nil
}

func stringList(a pq.StringArray) []string {
	out := make([]string, len(a))
	copy(out, a)
	return out
}

func textArray(s []string) pq.StringArray {
	if len(s) == 0 {
		return nil
	}
	out := make(pq.StringArray, len(s))
	copy(out, s)
	return out
}

func boolValue(p *bool) bool {
	return p != nil && *p
}

func boolColumn(v bool) *bool {
	b := v
	return &b
}

// SortActivities orders activities by ascending parsed time-of-day, with
// unparseable or missing times last. The sort is stable for equal keys.
func SortActivities(activities []entities.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activityTimeKey(activities[i]) < activityTimeKey(activities[j])
	})
}

func activityTimeKey(a entities.Activity) int {
	if a.Time == nil {
		return utils.UnparseableTimeKey
	}
	return utils.ClockMinutes(*a.Time)
}
