package publishgo

import (
	"context"
	"os"
	"time"

	"github.com/Kotlang/publishGo/auth"
	"github.com/Kotlang/publishGo/db"
	s3client "github.com/Kotlang/publishGo/s3Client"
	"github.com/Kotlang/publishGo/service"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Inject wires the repositories and services for an embedding server. The
// transport layer maps the service contracts to its own wire format.
type Inject struct {
	PublishDb    *db.PublishDb
	AuthProvider *auth.Provider

	UserService         *service.UserService
	ProfileService      *service.ProfileService
	ArticleService      *service.ArticleService
	ArticleQueryService *service.ArticleQueryService
	FeedService         *service.FeedService
	FollowGraphService  *service.FollowGraphService
	FavoriteService     *service.FavoriteService
	CommentService      *service.CommentService
}

func NewInject(mongoClient *mongo.Client) *Inject {
	godotenv.Load()
	inj := &Inject{}

	inj.PublishDb = db.NewPublishDb(mongoClient, getEnv("MONGO_DATABASE", "publish"))

	// the unique indexes back slug-conflict retries and the register
	// check-then-insert; without them the wiring must not serve traffic
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := inj.PublishDb.EnsureIndexes(indexCtx); err != nil {
		logger.Error("Failed ensuring database indexes", zap.Error(err))
		panic(err)
	}
	inj.AuthProvider = auth.NewProvider(auth.Config{
		JWTSecret: os.Getenv("JWT_SECRET"),
	})
	media := s3client.NewClient(getEnv("AWS_REGION", "ap-south-1"), os.Getenv("MEDIA_BUCKET"))

	inj.FollowGraphService = service.NewFollowGraphService(inj.PublishDb)
	inj.FavoriteService = service.NewFavoriteService(inj.PublishDb)
	inj.ArticleQueryService = service.NewArticleQueryService(inj.PublishDb)
	inj.FeedService = service.NewFeedService(inj.PublishDb, inj.FollowGraphService)
	inj.ArticleService = service.NewArticleService(inj.PublishDb)
	inj.ProfileService = service.NewProfileService(inj.PublishDb, inj.FollowGraphService)
	inj.UserService = service.NewUserService(inj.PublishDb, inj.AuthProvider, media)
	inj.CommentService = service.NewCommentService(inj.PublishDb)

	return inj
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); len(value) > 0 {
		return value
	}
	return fallback
}
