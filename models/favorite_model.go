package models

type FavoriteModel struct {
	FavoriteId string `bson:"_id"`
	UserId     string `bson:"userId"`
	ArticleId  string `bson:"articleId"`
	CreatedOn  int64  `bson:"createdOn"`
}

func (f *FavoriteModel) Id() string {
	return GetFavoriteId(f.UserId, f.ArticleId)
}

// returns the favorite id for the given user and article
func GetFavoriteId(userId, articleId string) string {
	return userId + "/" + articleId
}
