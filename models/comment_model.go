package models

import (
	"github.com/google/uuid"
)

type CommentModel struct {
	CommentId string `bson:"_id"`
	ArticleId string `bson:"articleId"`
	UserId    string `bson:"userId"`
	Body      string `bson:"body"`
	CreatedOn int64  `bson:"createdOn"`
}

func (c *CommentModel) Id() string {
	if len(c.CommentId) == 0 {
		c.CommentId = uuid.NewString()
	}
	return c.CommentId
}
