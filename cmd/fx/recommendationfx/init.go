package recommendationfx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	provideRecommendationRepo, provideRecommendationService, provideRecommendationController,
)

func provideRecommendationRepo(db *gorm.DB) repositories.RecommendationRepository {
	return repositories.NewRecommendationRepository(db)
}

func provideRecommendationService(recRepo repositories.RecommendationRepository) services.RecommendationService {
	var embedding utils.EmbeddingClientInterface
	if client, err := utils.NewOpenAIEmbeddingClient(os.Getenv("OPENAI_API_KEY")); err == nil {
		embedding = client
	} else {
		log.Printf("OpenAI embeddings backend not configured: %v", err)
	}
	return services.NewRecommendationService(recRepo, embedding)
}

func provideRecommendationController(recommendationService services.RecommendationService) *controllers.RecommendationController {
	return controllers.NewRecommendationController(recommendationService)
}
