package db

import (
	"context"
	"errors"
	"time"

	"github.com/Kotlang/publishGo/models"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/thoas/go-funk"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type FavoriteRepositoryInterface interface {
	Add(ctx context.Context, userId, articleId string) (bool, error)
	Remove(ctx context.Context, userId, articleId string) (bool, error)
	IsFavorited(ctx context.Context, userId, articleId string) (bool, error)
	FavoriteIds(ctx context.Context, userId string) ([]string, error)
	PurgeArticle(ctx context.Context, articleId string) error
}

// FavoriteRepository owns both sides of the favorite relation: the relation
// rows and the denormalized favoritesCount on the article. Nothing else
// writes either side, and both are mutated in one transaction.
type FavoriteRepository struct {
	client    *mongo.Client
	favorites *mongo.Collection
	articles  *mongo.Collection
}

// Add records the favorite and increments the article counter. Returns false
// without touching the counter when the user already favorites the article;
// the unique relation id makes concurrent duplicates collapse into one row.
func (r *FavoriteRepository) Add(ctx context.Context, userId, articleId string) (bool, error) {
	favorite := &models.FavoriteModel{
		UserId:    userId,
		ArticleId: articleId,
		CreatedOn: time.Now().Unix(),
	}
	favorite.FavoriteId = favorite.Id()

	session, err := r.client.StartSession()
	if err != nil {
		return false, err
	}
	defer session.EndSession(ctx)

	added, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.favorites.InsertOne(sc, favorite); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return false, nil
			}
			return false, err
		}

		if _, err := r.articles.UpdateByID(sc, articleId, bson.M{
			"$inc": bson.M{"favoritesCount": 1},
		}); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		logger.Error("Failed adding favorite", zap.Error(err))
		return false, err
	}
	return added.(bool), nil
}

// Remove deletes the favorite row and decrements the counter only when a row
// was actually deleted, so the counter cannot drift below the relation.
func (r *FavoriteRepository) Remove(ctx context.Context, userId, articleId string) (bool, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return false, err
	}
	defer session.EndSession(ctx)

	removed, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.favorites.DeleteOne(sc, bson.M{"_id": models.GetFavoriteId(userId, articleId)})
		if err != nil {
			return false, err
		}
		if res.DeletedCount == 0 {
			return false, nil
		}

		if _, err := r.articles.UpdateByID(sc, articleId, bson.M{
			"$inc": bson.M{"favoritesCount": -1},
		}); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		logger.Error("Failed removing favorite", zap.Error(err))
		return false, err
	}
	return removed.(bool), nil
}

func (r *FavoriteRepository) IsFavorited(ctx context.Context, userId, articleId string) (bool, error) {
	err := r.favorites.FindOne(ctx, bson.M{"_id": models.GetFavoriteId(userId, articleId)}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed checking favorite", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *FavoriteRepository) FavoriteIds(ctx context.Context, userId string) ([]string, error) {
	cursor, err := r.favorites.Find(ctx, bson.M{"userId": userId})
	if err != nil {
		logger.Error("Failed getting favorites", zap.Error(err))
		return nil, err
	}

	favorites := []models.FavoriteModel{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}

	return funk.Map(favorites, func(favorite models.FavoriteModel) string {
		return favorite.ArticleId
	}).([]string), nil
}

// PurgeArticle drops all favorite rows of a deleted article.
func (r *FavoriteRepository) PurgeArticle(ctx context.Context, articleId string) error {
	_, err := r.favorites.DeleteMany(ctx, bson.M{"articleId": articleId})
	return err
}
