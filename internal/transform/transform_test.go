package transform

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/entities"
)

func strPtr(s string) *string { return &s }

func TestActivityFromRowAbsentStaysAbsent(t *testing.T) {
	row := db_models.Activity{
		Name: "Nyhavn walk",
		Type: "attraction",
	}
	row.ID = uuid.New()

	a := ActivityFromRow(row)

	assert.Nil(t, a.Time)
	assert.Nil(t, a.Notes)
	assert.Nil(t, a.Cuisine)
	assert.False(t, a.IsBooked)
	assert.False(t, a.IsMustDo)
	assert.NotNil(t, a.PopularItems)
	assert.Empty(t, a.PopularItems)
	assert.NotNil(t, a.Attendees)
}

func TestActivityRoundTrip(t *testing.T) {
	id := uuid.New()
	dayID := uuid.New()
	booked := true

	row := db_models.Activity{
		DayID:        dayID,
		Name:         "Noma",
		Type:         "food",
		Time:         strPtr("19:00"),
		Notes:        strPtr("tasting menu"),
		IsBooked:     &booked,
		Cuisine:      strPtr("new nordic"),
		PopularItems: []string{"sea buckthorn", "reindeer moss"},
	}
	row.ID = id

	a := ActivityFromRow(row)
	back := ActivityToRow(a, dayID)

	assert.Equal(t, id, back.ID)
	assert.Equal(t, dayID, back.DayID)
	assert.Equal(t, row.Name, back.Name)
	assert.Equal(t, row.Type, back.Type)
	assert.Equal(t, row.Time, back.Time)
	assert.Equal(t, row.Notes, back.Notes)
	assert.Equal(t, row.Cuisine, back.Cuisine)
	assert.Equal(t, row.PopularItems, back.PopularItems)
	require.NotNil(t, back.IsBooked)
	assert.True(t, *back.IsBooked)
}

func TestActivityToRowProvisionalRefHasNoID(t *testing.T) {
	a := entities.Activity{
		Ref:  entities.ProvisionalRef(),
		Name: "Blue Lagoon",
		Type: entities.ActivityRelaxation,
	}

	row := ActivityToRow(a, uuid.New())
	assert.Equal(t, uuid.Nil, row.ID)
}

func TestDayFromRowSortsActivities(t *testing.T) {
	mk := func(name string, clock *string) db_models.Activity {
		row := db_models.Activity{Name: name, Type: "attraction", Time: clock}
		row.ID = uuid.New()
		return row
	}

	day := db_models.Day{
		Date:        time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		DayNumber:   3,
		DayOfWeek:   "Friday",
		Destination: "copenhagen",
		Title:       "Harbor day",
		Activities: []db_models.Activity{
			mk("evening", strPtr("8:00 PM")),
			mk("untimed", nil),
			mk("morning", strPtr("09:00")),
			mk("noon", strPtr("12:30")),
		},
	}
	day.ID = uuid.New()

	out := DayFromRow(day)

	require.Len(t, out.Activities, 4)
	assert.Equal(t, "morning", out.Activities[0].Name)
	assert.Equal(t, "noon", out.Activities[1].Name)
	assert.Equal(t, "evening", out.Activities[2].Name)
	assert.Equal(t, "untimed", out.Activities[3].Name)
	assert.Equal(t, "2026-06-12", out.Date)
}

func TestSortActivitiesIsStableForEqualKeys(t *testing.T) {
	activities := []entities.Activity{
		{Name: "first untimed"},
		{Name: "second untimed"},
		{Name: "third untimed"},
	}

	SortActivities(activities)

	assert.Equal(t, "first untimed", activities[0].Name)
	assert.Equal(t, "second untimed", activities[1].Name)
	assert.Equal(t, "third untimed", activities[2].Name)
}

func TestFlightRoundTrip(t *testing.T) {
	tripID := uuid.New()
	f := entities.Flight{
		Ref:           entities.PersistedRef(uuid.NewString()),
		Date:          "2026-06-10",
		DepartureTime: "08:15",
		ArrivalTime:   "10:05",
		From:          "Copenhagen",
		FromCode:      "CPH",
		To:            "Reykjavik",
		ToCode:        "KEF",
		Airline:       strPtr("Icelandair"),
		Travelers:     []string{"ana", "ben"},
	}

	row := FlightToRow(f, tripID)
	back := FlightFromRow(row)

	assert.Equal(t, f.Date, back.Date)
	assert.Equal(t, f.From, back.From)
	assert.Equal(t, f.ToCode, back.ToCode)
	assert.Equal(t, f.Airline, back.Airline)
	assert.Equal(t, f.Travelers, back.Travelers)
	assert.Nil(t, back.Notes)
	assert.False(t, back.IsPersonal)
}

func TestMustDoFromRowConvertsTimestamps(t *testing.T) {
	row := db_models.MustDo{
		TravelerID:  uuid.New(),
		Name:        "See the northern lights",
		Type:        "nature",
		Destination: "reykjavik",
		Votes:       []string{"t1", "t2"},
		Comments: []db_models.MustDoComment{
			{TravelerID: uuid.New(), Text: "yes please"},
		},
	}
	row.ID = uuid.New()
	row.Comments[0].ID = uuid.New()
	row.Comments[0].CreatedAt = 1750000000

	m := MustDoFromRow(row)

	require.Len(t, m.Comments, 1)
	assert.Equal(t, int64(1750000000000), m.Comments[0].Timestamp)
	assert.Equal(t, []string{"t1", "t2"}, m.Votes)
	assert.False(t, m.AddedToItinerary)
	assert.Nil(t, m.AddedToDay)
}

func TestMustDatePanicsOnMalformedInput(t *testing.T) {
	assert.Panics(t, func() { mustDate("June 12") })
	assert.Panics(t, func() { mustUUID("not-a-uuid") })
}
