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

type ProfileRepositoryInterface interface {
	FindById(ctx context.Context, userId string) (*models.ProfileModel, error)
	FindByIds(ctx context.Context, userIds []string) ([]models.ProfileModel, error)
	FindByUsername(ctx context.Context, username string) (*models.ProfileModel, error)
	FindByEmail(ctx context.Context, email string) (*models.ProfileModel, error)
	Create(ctx context.Context, profile *models.ProfileModel) error
	Save(ctx context.Context, profile *models.ProfileModel) error
}

type ProfileRepository struct {
	coll *mongo.Collection
}

func (r *ProfileRepository) FindById(ctx context.Context, userId string) (*models.ProfileModel, error) {
	return r.findOne(ctx, bson.M{"_id": userId})
}

func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*models.ProfileModel, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.ProfileModel, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *ProfileRepository) findOne(ctx context.Context, filter bson.M) (*models.ProfileModel, error) {
	profile := &models.ProfileModel{}
	err := r.coll.FindOne(ctx, filter).Decode(profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed fetching profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepository) FindByIds(ctx context.Context, userIds []string) ([]models.ProfileModel, error) {
	if len(userIds) == 0 {
		return []models.ProfileModel{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": userIds}})
	if err != nil {
		logger.Error("Failed fetching profiles", zap.Error(err))
		return nil, err
	}

	profiles := []models.ProfileModel{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Create inserts a new profile. Username/email collisions surface as
// AlreadyExists via the unique indexes.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.ProfileModel) error {
	profile.UserId = profile.Id()
	_, err := r.coll.InsertOne(ctx, profile)
	if mongo.IsDuplicateKeyError(err) {
		return status.Error(codes.AlreadyExists, "Username or email is already taken.")
	}
	return err
}

func (r *ProfileRepository) Save(ctx context.Context, profile *models.ProfileModel) error {
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": profile.Id()},
		profile,
		options.Replace().SetUpsert(true))
	return err
}
