package services

import (
	"context"
	"math"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/repositories"
	"wayfarer/internal/transform"
	"wayfarer/pkg/utils"

	dbm "wayfarer/internal/models/db_models"
)

const defaultSearchLimit = 10

type RecommendationService interface {
	// AddRecommendation embeds the description and stores the entry for
	// similarity search.
	AddRecommendation(ctx context.Context, rec entities.Recommendation) (*entities.Recommendation, error)

	ListRecommendations(ctx context.Context, destination entities.Destination) ([]entities.Recommendation, error)

	// Search ranks a destination's recommendations against a free-text
	// query by embedding distance. Scores are cosine similarity in [-1, 1].
	Search(ctx context.Context, destination entities.Destination, query string, limit int) ([]entities.Recommendation, error)
}

type recommendationService struct {
	recRepo   repositories.RecommendationRepository
	embedding utils.EmbeddingClientInterface
}

func NewRecommendationService(recRepo repositories.RecommendationRepository, embedding utils.EmbeddingClientInterface) RecommendationService {
	return &recommendationService{recRepo: recRepo, embedding: embedding}
}

func (s *recommendationService) AddRecommendation(ctx context.Context, rec entities.Recommendation) (*entities.Recommendation, error) {
	if rec.Name == "" || rec.Description == "" || !rec.Type.Valid() {
		return nil, utils.ErrInvalidInput
	}
	if s.embedding == nil {
		return nil, utils.ErrAIUnavailable
	}

	vector, err := s.embedding.GetEmbedding(ctx, rec.Name+". "+rec.Description)
	if err != nil {
		return nil, utils.ErrAIUnavailable
	}

	row := dbm.Recommendation{
		Name:        rec.Name,
		Type:        string(rec.Type),
		Destination: string(rec.Destination),
		Category:    rec.Category,
		Description: rec.Description,
		Address:     rec.Address,
		BookingURL:  rec.BookingURL,
		PriceRange:  rec.PriceRange,
		Embedding:   vector,
	}
	if err := s.recRepo.Create(ctx, &row); err != nil {
		return nil, err
	}

	created := transform.RecommendationFromRow(row)
	return &created, nil
}

func (s *recommendationService) ListRecommendations(ctx context.Context, destination entities.Destination) ([]entities.Recommendation, error) {
	rows, err := s.recRepo.ListByDestination(ctx, string(destination))
	if err != nil {
		return nil, err
	}

	recs := make([]entities.Recommendation, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, transform.RecommendationFromRow(row))
	}
	return recs, nil
}

func (s *recommendationService) Search(ctx context.Context, destination entities.Destination, query string, limit int) ([]entities.Recommendation, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if s.embedding == nil {
		return nil, utils.ErrAIUnavailable
	}

	vector, err := s.embedding.GetEmbedding(ctx, query)
	if err != nil {
		return nil, utils.ErrAIUnavailable
	}

	rows, err := s.recRepo.SearchNearest(ctx, string(destination), vector, limit)
	if err != nil {
		return nil, err
	}

	queryVec := vector.Slice()
	recs := make([]entities.Recommendation, 0, len(rows))
	for _, row := range rows {
		rec := transform.RecommendationFromRow(row)
		rec.Score = cosineSimilarity(queryVec, row.Embedding.Slice())
		recs = append(recs, rec)
	}
	return recs, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
