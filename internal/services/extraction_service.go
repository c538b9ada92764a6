package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	dbm "wayfarer/internal/models/db_models"
	"wayfarer/internal/models/entities"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

const extractionCacheTTL = 24 * time.Hour

const extractionPrompt = `You are reading a screenshot of a travel booking confirmation.
Classify it as one of: "flight", "restaurant", "tour".

Respond with a single JSON object and nothing else. Fields:
- type: "flight" | "restaurant" | "tour" (required)
- For flights: airline, flightNumber, from, fromCode, to, toCode, date (YYYY-MM-DD), departureTime, arrivalTime, confirmationNumber
- For restaurants: name, date (YYYY-MM-DD), time, partySize (number), address, confirmationNumber
- For tours: name, date (YYYY-MM-DD), time, duration, address, confirmationNumber

Omit any field you cannot read from the image. Do not guess values.`

type ExtractionService interface {
	// ExtractBooking runs the vision model over a booking screenshot and
	// returns the structured booking it describes. Identical images are
	// answered from cache without re-billing the model.
	ExtractBooking(ctx context.Context, mimeType string, image []byte, travelerID *string) (*entities.ExtractedBooking, error)
}

type extractionService struct {
	tripService TripService
	primary     utils.VisionClientInterface
	fallback    utils.VisionClientInterface
	cache       *memcache.PayloadCache
	uploadRepo  repositories.BookingUploadRepository
}

func NewExtractionService(
	tripService TripService,
	primary utils.VisionClientInterface,
	fallback utils.VisionClientInterface,
	cache *memcache.PayloadCache,
	uploadRepo repositories.BookingUploadRepository,
) ExtractionService {
	return &extractionService{
		tripService: tripService,
		primary:     primary,
		fallback:    fallback,
		cache:       cache,
		uploadRepo:  uploadRepo,
	}
}

func (s *extractionService) ExtractBooking(ctx context.Context, mimeType string, image []byte, travelerID *string) (*entities.ExtractedBooking, error) {
	if len(image) == 0 {
		return nil, utils.ErrInvalidInput
	}

	sum := sha256.Sum256(image)
	sha := hex.EncodeToString(sum[:])

	if payload, ok := s.cache.Get(sha); ok {
		var booking entities.ExtractedBooking
		if err := json.Unmarshal(payload, &booking); err == nil {
			return &booking, nil
		}
		s.cache.Delete(sha)
	}

	tripID, err := s.tripService.ResolveTripID(ctx)
	if err != nil {
		return nil, err
	}

	if row, err := s.uploadRepo.GetBySHA(ctx, tripID, sha); err == nil && row != nil {
		var booking entities.ExtractedBooking
		if err := json.Unmarshal(row.Payload, &booking); err == nil {
			s.cache.Set(sha, row.Payload, extractionCacheTTL)
			return &booking, nil
		}
	}

	raw, err := s.describe(ctx, mimeType, image)
	if err != nil {
		return nil, err
	}

	booking, err := parseBooking(raw)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(booking)
	if err != nil {
		return nil, err
	}

	upload := dbm.BookingUpload{
		TripID:   tripID,
		ImageSHA: sha,
		Kind:     booking.Type,
		Payload:  datatypes.JSON(payload),
	}
	if travelerID != nil {
		if tid, err := uuid.Parse(*travelerID); err == nil {
			upload.TravelerID = &tid
		}
	}
	if err := s.uploadRepo.Create(ctx, &upload); err != nil {
		// The extraction already succeeded; losing the audit row should not
		// fail the request.
		log.Printf("[ExtractionService] failed to record upload %s: %v", sha[:12], err)
	}

	s.cache.Set(sha, payload, extractionCacheTTL)
	return booking, nil
}

func (s *extractionService) describe(ctx context.Context, mimeType string, image []byte) (string, error) {
	if s.primary != nil {
		raw, err := s.primary.DescribeImage(ctx, mimeType, image, extractionPrompt)
		if err == nil {
			return raw, nil
		}
		log.Printf("[ExtractionService] primary vision backend failed, trying fallback: %v", err)
	}

	if s.fallback != nil {
		raw, err := s.fallback.DescribeImage(ctx, mimeType, image, extractionPrompt)
		if err == nil {
			return raw, nil
		}
		log.Printf("[ExtractionService] fallback vision backend failed: %v", err)
	}

	return "", utils.ErrAIUnavailable
}

func parseBooking(raw string) (*entities.ExtractedBooking, error) {
	cleaned := utils.StripCodeFences(raw)
	obj := utils.FirstJSONObject(cleaned)
	if obj == "" {
		return nil, utils.ErrExtractionFailed
	}

	var booking entities.ExtractedBooking
	if err := json.Unmarshal([]byte(obj), &booking); err != nil {
		return nil, utils.ErrExtractionFailed
	}
	if !booking.ValidType() {
		return nil, utils.ErrExtractionFailed
	}
	return &booking, nil
}
