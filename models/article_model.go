package models

import (
	"github.com/google/uuid"
)

type ArticleModel struct {
	ArticleId      string   `bson:"_id"`
	Slug           string   `bson:"slug"`
	Title          string   `bson:"title"`
	Description    string   `bson:"description"`
	Body           string   `bson:"body"`
	Tags           []string `bson:"tags"`
	AuthorId       string   `bson:"authorId"`
	FavoritesCount int64    `bson:"favoritesCount"`
	CreatedOn      int64    `bson:"createdOn"`
	UpdatedOn      int64    `bson:"updatedOn"`
}

func (m *ArticleModel) Id() string {
	if len(m.ArticleId) == 0 {
		m.ArticleId = uuid.NewString()
	}
	return m.ArticleId
}
