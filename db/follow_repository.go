package db

import (
	"context"
	"errors"

	"github.com/Kotlang/publishGo/models"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/thoas/go-funk"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type FollowRepositoryInterface interface {
	Save(ctx context.Context, edge *models.FollowEdgeModel) error
	Delete(ctx context.Context, followerId, followeeId string) error
	IsFollowing(ctx context.Context, followerId, followeeId string) (bool, error)
	FolloweesOf(ctx context.Context, followerId string) ([]string, error)
	FollowersOf(ctx context.Context, userId string, pageNumber, pageSize int64) ([]string, error)
}

type FollowRepository struct {
	coll *mongo.Collection
}

// Save upserts by edge id, so repeated follows keep a single edge.
func (r *FollowRepository) Save(ctx context.Context, edge *models.FollowEdgeModel) error {
	edge.EdgeId = edge.Id()
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": edge.EdgeId},
		edge,
		options.Replace().SetUpsert(true))
	return err
}

// Delete is idempotent; removing an absent edge is a no-op.
func (r *FollowRepository) Delete(ctx context.Context, followerId, followeeId string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": models.GetFollowEdgeId(followerId, followeeId)})
	return err
}

func (r *FollowRepository) IsFollowing(ctx context.Context, followerId, followeeId string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"_id": models.GetFollowEdgeId(followerId, followeeId)}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed checking follow edge", zap.Error(err))
		return false, err
	}
	return true, nil
}

// FolloweesOf returns every user the follower follows. The feed query needs
// the complete set, so no pagination here.
func (r *FollowRepository) FolloweesOf(ctx context.Context, followerId string) ([]string, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"followerId": followerId})
	if err != nil {
		logger.Error("Failed getting followees", zap.Error(err))
		return nil, err
	}

	edges := []models.FollowEdgeModel{}
	if err := cursor.All(ctx, &edges); err != nil {
		return nil, err
	}

	return funk.Map(edges, func(edge models.FollowEdgeModel) string {
		return edge.FolloweeId
	}).([]string), nil
}

func (r *FollowRepository) FollowersOf(ctx context.Context, userId string, pageNumber, pageSize int64) ([]string, error) {
	skip := pageNumber * pageSize
	opts := options.Find().
		SetSort(bson.D{{Key: "createdOn", Value: -1}}).
		SetSkip(skip).
		SetLimit(pageSize)

	cursor, err := r.coll.Find(ctx, bson.M{"followeeId": userId}, opts)
	if err != nil {
		logger.Error("Failed getting followers", zap.Error(err))
		return nil, err
	}

	edges := []models.FollowEdgeModel{}
	if err := cursor.All(ctx, &edges); err != nil {
		return nil, err
	}

	return funk.Map(edges, func(edge models.FollowEdgeModel) string {
		return edge.FollowerId
	}).([]string), nil
}
