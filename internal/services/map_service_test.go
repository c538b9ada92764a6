package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/internal/models/entities"
	"wayfarer/internal/repositories"
	"wayfarer/internal/transform"
	"wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

type fakeImageClient struct {
	png   []byte
	err   error
	calls int
}

func (f *fakeImageClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	f.calls++
	return f.png, f.err
}

type fakeMapRepo struct {
	repositories.MapRepository
	stored *dbm.DailyMap
}

func (f *fakeMapRepo) GetByDay(ctx context.Context, dayID uuid.UUID) (*dbm.DailyMap, error) {
	if f.stored == nil {
		return nil, utils.ErrNotFound
	}
	return f.stored, nil
}

func (f *fakeMapRepo) Upsert(ctx context.Context, row *dbm.DailyMap) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	f.stored = row
	return nil
}

func newMapFixture(image *fakeImageClient) (MapService, *fakeMapRepo, uuid.UUID) {
	dayID := uuid.New()
	clock := "10:00"
	day := &dbm.Day{
		Date:        time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		DayNumber:   3,
		Destination: "copenhagen",
		Title:       "Harbor day",
		Activities: []dbm.Activity{
			{Name: "Nyhavn", Type: "attraction", Time: &clock},
		},
	}
	day.ID = dayID

	dayRepo := &fakeDayRepo{days: map[uuid.UUID]*dbm.Day{dayID: day}}
	mapRepo := &fakeMapRepo{}
	return NewMapService(dayRepo, mapRepo, image, memcache.NewPayloadCache()), mapRepo, dayID
}

func TestGenerateDayMapRendersImage(t *testing.T) {
	image := &fakeImageClient{png: []byte("fake png bytes")}
	svc, mapRepo, dayID := newMapFixture(image)

	m, err := svc.GenerateDayMap(context.Background(), dayID.String(), false, nil)
	require.NoError(t, err)

	assert.False(t, m.IsFallback)
	assert.True(t, strings.HasPrefix(m.ImageURL, "data:image/png;base64,"))
	assert.Contains(t, m.PromptUsed, "Copenhagen")
	assert.Contains(t, m.PromptUsed, "Nyhavn")
	require.NotNil(t, mapRepo.stored)
	assert.Equal(t, dayID, mapRepo.stored.DayID)
}

func TestGenerateDayMapFallsBackWhenRateLimited(t *testing.T) {
	image := &fakeImageClient{err: utils.ErrRateLimited}
	svc, _, dayID := newMapFixture(image)

	m, err := svc.GenerateDayMap(context.Background(), dayID.String(), false, nil)
	require.NoError(t, err)

	assert.True(t, m.IsFallback)
	assert.True(t, strings.HasPrefix(m.ImageURL, "data:image/svg+xml;base64,"))
}

func TestGenerateDayMapServesStoredRender(t *testing.T) {
	image := &fakeImageClient{png: []byte("fake png bytes")}
	svc, _, dayID := newMapFixture(image)

	first, err := svc.GenerateDayMap(context.Background(), dayID.String(), false, nil)
	require.NoError(t, err)

	second, err := svc.GenerateDayMap(context.Background(), dayID.String(), false, nil)
	require.NoError(t, err)

	assert.Equal(t, first.ImageURL, second.ImageURL)
	assert.Equal(t, 1, image.calls)
}

func TestGenerateDayMapForceReplacesRender(t *testing.T) {
	image := &fakeImageClient{png: []byte("fake png bytes")}
	svc, _, dayID := newMapFixture(image)

	_, err := svc.GenerateDayMap(context.Background(), dayID.String(), false, nil)
	require.NoError(t, err)
	_, err = svc.GenerateDayMap(context.Background(), dayID.String(), true, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, image.calls)
}

func TestGenerateDayMapUnknownDay(t *testing.T) {
	svc, _, _ := newMapFixture(&fakeImageClient{})

	_, err := svc.GenerateDayMap(context.Background(), uuid.NewString(), false, nil)
	assert.ErrorIs(t, err, utils.ErrDayNotFound)
}

func TestBuildDayPromptIsDeterministic(t *testing.T) {
	clock := "12:00"
	day := entities.Day{
		Destination: entities.DestinationReykjavik,
		Activities: []entities.Activity{
			{Name: "Blue Lagoon", Type: entities.ActivityRelaxation, Time: &clock},
			{Name: "Hallgrimskirkja", Type: entities.ActivityAttraction},
		},
	}

	assert.Equal(t, buildDayPrompt(day), buildDayPrompt(day))
	assert.Contains(t, buildDayPrompt(day), "Reykjavik")
}

func TestDayFromRowPromptOrderFollowsTime(t *testing.T) {
	early := "08:00"
	late := "19:00"
	day := dbm.Day{
		Date:        time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		Destination: "copenhagen",
		Activities: []dbm.Activity{
			{Name: "Dinner", Type: "food", Time: &late},
			{Name: "Walk", Type: "attraction", Time: &early},
		},
	}
	day.ID = uuid.New()

	prompt := buildDayPrompt(transform.DayFromRow(day))
	assert.Less(t, strings.Index(prompt, "Walk"), strings.Index(prompt, "Dinner"))
}
