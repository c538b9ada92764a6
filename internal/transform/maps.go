package transform

import (
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/entities"
)

func DailyMapFromRow(row db_models.DailyMap) entities.DailyMap {
	var generatedBy *string
	if row.GeneratedBy != nil {
		id := row.GeneratedBy.String()
		generatedBy = &id
	}

	return entities.DailyMap{
		Ref:         entities.PersistedRef(row.ID.String()),
		DayID:       row.DayID.String(),
		ImageURL:    row.ImageURL,
		PromptUsed:  row.PromptUsed,
		IsFallback:  row.IsFallback,
		GeneratedBy: generatedBy,
		GeneratedAt: row.UpdatedAt * 1000,
	}
}

func RecommendationFromRow(row db_models.Recommendation) entities.Recommendation {
	return entities.Recommendation{
		Ref:         entities.PersistedRef(row.ID.String()),
		Name:        row.Name,
		Type:        entities.ActivityType(row.Type),
		Destination: entities.Destination(row.Destination),
		Category:    row.Category,
		Description: row.Description,
		Address:     row.Address,
		BookingURL:  row.BookingURL,
		PriceRange:  row.PriceRange,
	}
}
