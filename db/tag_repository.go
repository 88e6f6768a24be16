package db

import (
	"context"
	"time"

	"github.com/Kotlang/publishGo/models"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type TagRepositoryInterface interface {
	Record(ctx context.Context, tag string) error
	GetTagsRanked(ctx context.Context, limit int64) ([]models.ArticleTagModel, error)
}

type TagRepository struct {
	coll *mongo.Collection
}

// Record bumps the article count for a tag, creating it on first use.
func (r *TagRepository) Record(ctx context.Context, tag string) error {
	_, err := r.coll.UpdateByID(ctx, tag, bson.M{
		"$inc":         bson.M{"numArticles": 1},
		"$setOnInsert": bson.M{"createdOn": time.Now().Unix()},
	}, options.Update().SetUpsert(true))
	return err
}

// GetTagsRanked lists tags by descending article count. Limit 0 means all.
func (r *TagRepository) GetTagsRanked(ctx context.Context, limit int64) ([]models.ArticleTagModel, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "numArticles", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error("Failed fetching tags", zap.Error(err))
		return nil, err
	}

	tags := []models.ArticleTagModel{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
