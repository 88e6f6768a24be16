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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ArticleListFilter restricts a listing query. Zero values mean "no
// restriction"; Limit 0 means unlimited.
type ArticleListFilter struct {
	AuthorIds []string
	Tag       string
	Ids       []string
	Limit     int64
	Offset    int64
}

type ArticleRepositoryInterface interface {
	FindBySlug(ctx context.Context, slug string) (*models.ArticleModel, error)
	FindById(ctx context.Context, articleId string) (*models.ArticleModel, error)
	Create(ctx context.Context, article *models.ArticleModel) error
	Save(ctx context.Context, article *models.ArticleModel) error
	DeleteById(ctx context.Context, articleId string) error
	List(ctx context.Context, filter ArticleListFilter) ([]models.ArticleModel, int64, error)
}

type ArticleRepository struct {
	coll *mongo.Collection
}

func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.ArticleModel, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *ArticleRepository) FindById(ctx context.Context, articleId string) (*models.ArticleModel, error) {
	return r.findOne(ctx, bson.M{"_id": articleId})
}

func (r *ArticleRepository) findOne(ctx context.Context, filter bson.M) (*models.ArticleModel, error) {
	article := &models.ArticleModel{}
	err := r.coll.FindOne(ctx, filter).Decode(article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed fetching article", zap.Error(err))
		return nil, err
	}
	return article, nil
}

// Create inserts a new article. A slug collision surfaces as AlreadyExists
// so the caller can retry with a fresh suffix.
func (r *ArticleRepository) Create(ctx context.Context, article *models.ArticleModel) error {
	article.ArticleId = article.Id()
	_, err := r.coll.InsertOne(ctx, article)
	if mongo.IsDuplicateKeyError(err) {
		return status.Error(codes.AlreadyExists, "Slug is already taken.")
	}
	return err
}

func (r *ArticleRepository) Save(ctx context.Context, article *models.ArticleModel) error {
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": article.Id()},
		article,
		options.Replace().SetUpsert(true))
	return err
}

func (r *ArticleRepository) DeleteById(ctx context.Context, articleId string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": articleId})
	return err
}

// List returns the matching page ordered by createdOn desc (articleId desc as
// tie-break) and the total match count computed before pagination.
func (r *ArticleRepository) List(ctx context.Context, filter ArticleListFilter) ([]models.ArticleModel, int64, error) {
	filters := bson.M{}
	if len(filter.AuthorIds) > 0 {
		filters["authorId"] = bson.M{"$in": filter.AuthorIds}
	}
	if len(filter.Tag) > 0 {
		filters["tags"] = filter.Tag
	}
	if len(filter.Ids) > 0 {
		filters["_id"] = bson.M{"$in": filter.Ids}
	}

	totalCount, err := r.coll.CountDocuments(ctx, filters)
	if err != nil {
		logger.Error("Failed counting articles", zap.Error(err))
		return nil, 0, err
	}

	sort := bson.D{
		{Key: "createdOn", Value: -1},
		{Key: "_id", Value: -1},
	}
	opts := options.Find().SetSort(sort).SetSkip(filter.Offset)
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.coll.Find(ctx, filters, opts)
	if err != nil {
		logger.Error("Failed listing articles", zap.Error(err))
		return nil, 0, err
	}

	articles := []models.ArticleModel{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, 0, err
	}
	return articles, totalCount, nil
}
