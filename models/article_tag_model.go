package models

type ArticleTagModel struct {
	Tag         string `bson:"_id"`
	NumArticles int    `bson:"numArticles"`
	CreatedOn   int64  `bson:"createdOn"`
}

func (t *ArticleTagModel) Id() string {
	return t.Tag
}
