package db

import (
	"context"
	"errors"

	"github.com/Kotlang/publishGo/models"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type CommentRepositoryInterface interface {
	Save(ctx context.Context, comment *models.CommentModel) error
	FindById(ctx context.Context, commentId string) (*models.CommentModel, error)
	DeleteById(ctx context.Context, commentId string) error
	GetComments(ctx context.Context, articleId string, pageNumber, pageSize int64) ([]models.CommentModel, error)
}

type CommentRepository struct {
	coll *mongo.Collection
}

func (r *CommentRepository) Save(ctx context.Context, comment *models.CommentModel) error {
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": comment.Id()},
		comment,
		options.Replace().SetUpsert(true))
	return err
}

func (r *CommentRepository) FindById(ctx context.Context, commentId string) (*models.CommentModel, error) {
	comment := &models.CommentModel{}
	err := r.coll.FindOne(ctx, bson.M{"_id": commentId}).Decode(comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed fetching comment", zap.Error(err))
		return nil, err
	}
	return comment, nil
}

func (r *CommentRepository) DeleteById(ctx context.Context, commentId string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": commentId})
	return err
}

func (r *CommentRepository) GetComments(ctx context.Context, articleId string, pageNumber, pageSize int64) ([]models.CommentModel, error) {
	skip := pageNumber * pageSize
	opts := options.Find().
		SetSort(bson.D{{Key: "createdOn", Value: -1}}).
		SetSkip(skip).
		SetLimit(pageSize)

	cursor, err := r.coll.Find(ctx, bson.M{"articleId": articleId}, opts)
	if err != nil {
		logger.Error("Failed getting comments", zap.Error(err))
		return nil, err
	}

	comments := []models.CommentModel{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
