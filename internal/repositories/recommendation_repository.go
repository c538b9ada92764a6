package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "wayfarer/internal/models/db_models"
)

type RecommendationRepository interface {
	Create(ctx context.Context, row *dbm.Recommendation) error
	ListByDestination(ctx context.Context, destination string) ([]dbm.Recommendation, error)

	// SearchNearest orders by cosine distance against the query embedding.
	SearchNearest(ctx context.Context, destination string, query pgvector.Vector, limit int) ([]dbm.Recommendation, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Create(ctx context.Context, row *dbm.Recommendation) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *recommendationRepository) ListByDestination(ctx context.Context, destination string) ([]dbm.Recommendation, error) {
	var recs []dbm.Recommendation
	err := r.db.WithContext(ctx).
		Where("destination = ?", destination).
		Order("created_at").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recommendationRepository) SearchNearest(ctx context.Context, destination string, query pgvector.Vector, limit int) ([]dbm.Recommendation, error) {
	var recs []dbm.Recommendation
	err := r.db.WithContext(ctx).
		Where("destination = ?", destination).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []interface{}{query}},
		}).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
