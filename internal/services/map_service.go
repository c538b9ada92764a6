package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/internal/models/entities"
	"wayfarer/internal/repositories"
	"wayfarer/internal/transform"
	"wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

const mapCacheTTL = 12 * time.Hour

type MapService interface {
	// GenerateDayMap returns the illustrated map for a day, rendering one
	// when none exists yet. With force set, any stored render is replaced.
	// When the image backend is unavailable a local poster is substituted
	// and flagged as a fallback.
	GenerateDayMap(ctx context.Context, dayID string, force bool, requestedBy *string) (*entities.DailyMap, error)

	// GetDayMap returns the stored render without generating one.
	GetDayMap(ctx context.Context, dayID string) (*entities.DailyMap, error)
}

type mapService struct {
	dayRepo     repositories.DayRepository
	mapRepo     repositories.MapRepository
	imageClient utils.ImageGenClientInterface
	cache       *memcache.PayloadCache
}

func NewMapService(
	dayRepo repositories.DayRepository,
	mapRepo repositories.MapRepository,
	imageClient utils.ImageGenClientInterface,
	cache *memcache.PayloadCache,
) MapService {
	return &mapService{
		dayRepo:     dayRepo,
		mapRepo:     mapRepo,
		imageClient: imageClient,
		cache:       cache,
	}
}

func (s *mapService) GenerateDayMap(ctx context.Context, dayID string, force bool, requestedBy *string) (*entities.DailyMap, error) {
	id, err := uuid.Parse(dayID)
	if err != nil {
		return nil, utils.ErrDayNotFound
	}

	cacheKey := "daymap:" + id.String()
	if !force {
		if payload, ok := s.cache.Get(cacheKey); ok {
			var m entities.DailyMap
			if err := json.Unmarshal(payload, &m); err == nil {
				return &m, nil
			}
		}
		if row, err := s.mapRepo.GetByDay(ctx, id); err == nil {
			m := transform.DailyMapFromRow(*row)
			s.cacheMap(cacheKey, m)
			return &m, nil
		}
	}

	day, err := s.dayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prompt := buildDayPrompt(transform.DayFromRow(*day))

	imageURL := ""
	isFallback := false
	if png, err := s.imageClient.GenerateImage(ctx, prompt); err == nil {
		imageURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	} else {
		log.Printf("[MapService] image generation failed for day %s, using poster fallback: %v", id, err)
		imageURL = fallbackPoster(transform.DayFromRow(*day))
		isFallback = true
	}

	row := dbm.DailyMap{
		DayID:      id,
		TripID:     day.TripID,
		ImageURL:   imageURL,
		PromptUsed: prompt,
		IsFallback: isFallback,
	}
	if requestedBy != nil {
		if tid, err := uuid.Parse(*requestedBy); err == nil {
			row.GeneratedBy = &tid
		}
	}
	meta, _ := json.Marshal(map[string]interface{}{"activityCount": len(day.Activities)})
	row.Meta = meta

	if err := s.mapRepo.Upsert(ctx, &row); err != nil {
		return nil, err
	}

	m := transform.DailyMapFromRow(row)
	s.cacheMap(cacheKey, m)
	return &m, nil
}

func (s *mapService) GetDayMap(ctx context.Context, dayID string) (*entities.DailyMap, error) {
	id, err := uuid.Parse(dayID)
	if err != nil {
		return nil, utils.ErrDayNotFound
	}

	cacheKey := "daymap:" + id.String()
	if payload, ok := s.cache.Get(cacheKey); ok {
		var m entities.DailyMap
		if err := json.Unmarshal(payload, &m); err == nil {
			return &m, nil
		}
	}

	row, err := s.mapRepo.GetByDay(ctx, id)
	if err != nil {
		return nil, err
	}
	m := transform.DailyMapFromRow(*row)
	s.cacheMap(cacheKey, m)
	return &m, nil
}

func (s *mapService) cacheMap(key string, m entities.DailyMap) {
	if payload, err := json.Marshal(m); err == nil {
		s.cache.Set(key, payload, mapCacheTTL)
	}
}

// buildDayPrompt is deterministic: the same day contents always produce the
// same prompt, so re-renders are reproducible and cache keys stay stable.
func buildDayPrompt(day entities.Day) string {
	var sb strings.Builder
	sb.WriteString("Hand-drawn illustrated tourist map of ")
	sb.WriteString(placeName(day.Destination))
	sb.WriteString(", vintage travel poster style, muted colors, no text labels. ")

	if len(day.Activities) > 0 {
		sb.WriteString("Landmarks to feature: ")
		names := make([]string, 0, len(day.Activities))
		for _, a := range day.Activities {
			if len(names) == 5 {
				break
			}
			names = append(names, a.Name)
		}
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString(". ")
	}

	sb.WriteString("Mood: ")
	sb.WriteString(dayMood(day))
	sb.WriteString(".")
	return sb.String()
}

func dayMood(day entities.Day) string {
	food, outdoor := 0, 0
	for _, a := range day.Activities {
		switch a.Type {
		case entities.ActivityFood, entities.ActivityNightlife:
			food++
		case entities.ActivityNature, entities.ActivityAttraction:
			outdoor++
		}
	}
	switch {
	case food > outdoor:
		return "cozy cafes and street food stalls"
	case outdoor > food:
		return "open skies and scenic walking paths"
	default:
		return "relaxed city exploration"
	}
}

func placeName(d entities.Destination) string {
	switch d {
	case entities.DestinationCopenhagen:
		return "Copenhagen, Denmark"
	case entities.DestinationReykjavik:
		return "Reykjavik, Iceland"
	default:
		return string(d)
	}
}

// fallbackPoster renders a simple SVG title card so the day still has an
// image when the generation backend is down.
func fallbackPoster(day entities.Day) string {
	title := day.Title
	if title == "" {
		title = placeName(day.Destination)
	}

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="1024" height="640" viewBox="0 0 1024 640">`+
			`<rect width="1024" height="640" fill="#1e3a5f"/>`+
			`<rect x="32" y="32" width="960" height="576" fill="none" stroke="#d9c8a9" stroke-width="4"/>`+
			`<text x="512" y="300" text-anchor="middle" fill="#d9c8a9" font-family="Georgia, serif" font-size="48">%s</text>`+
			`<text x="512" y="370" text-anchor="middle" fill="#8fa8bf" font-family="Georgia, serif" font-size="28">Day %d &#183; %s</text>`+
			`</svg>`,
		escapeXML(title), day.DayNumber, day.Date,
	)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
