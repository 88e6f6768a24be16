package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PublishDbInterface interface {
	Article() ArticleRepositoryInterface
	Profile() ProfileRepositoryInterface
	Follow() FollowRepositoryInterface
	Favorite() FavoriteRepositoryInterface
	Tag() TagRepositoryInterface
	Comment() CommentRepositoryInterface
}

type PublishDb struct {
	client   *mongo.Client
	database *mongo.Database
}

func NewPublishDb(client *mongo.Client, dbName string) *PublishDb {
	return &PublishDb{
		client:   client,
		database: client.Database(dbName),
	}
}

func Connect(ctx context.Context, mongoUri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(mongoUri))
}

func (d *PublishDb) Article() ArticleRepositoryInterface {
	return &ArticleRepository{coll: d.database.Collection("articles")}
}

func (d *PublishDb) Profile() ProfileRepositoryInterface {
	return &ProfileRepository{coll: d.database.Collection("profiles")}
}

func (d *PublishDb) Follow() FollowRepositoryInterface {
	return &FollowRepository{coll: d.database.Collection("follows")}
}

// Favorite is the single writer of both the favorites relation and the
// article favoritesCount. It needs the client for multi-document sessions.
func (d *PublishDb) Favorite() FavoriteRepositoryInterface {
	return &FavoriteRepository{
		client:    d.client,
		favorites: d.database.Collection("favorites"),
		articles:  d.database.Collection("articles"),
	}
}

func (d *PublishDb) Tag() TagRepositoryInterface {
	return &TagRepository{coll: d.database.Collection("tags")}
}

func (d *PublishDb) Comment() CommentRepositoryInterface {
	return &CommentRepository{coll: d.database.Collection("comments")}
}

func (d *PublishDb) EnsureIndexes(ctx context.Context) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	if _, err := d.database.Collection("articles").Indexes().CreateOne(ctx, unique("slug")); err != nil {
		return err
	}
	if _, err := d.database.Collection("profiles").Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique("username"),
		unique("email"),
	}); err != nil {
		return err
	}
	if _, err := d.database.Collection("favorites").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	}); err != nil {
		return err
	}
	_, err := d.database.Collection("follows").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "followerId", Value: 1}},
	})
	return err
}
