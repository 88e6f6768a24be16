package service

import (
	"context"

	"github.com/Kotlang/publishGo/db"
	"github.com/Kotlang/publishGo/extensions"
	"github.com/Kotlang/publishGo/models"
	"github.com/jinzhu/copier"
	"github.com/thoas/go-funk"
)

// Views returned by the services. Favorited and Following are viewer-relative
// and never persisted.

type ProfileView struct {
	UserId    string
	Username  string
	Bio       string
	Image     string
	Following bool
}

type ArticleView struct {
	ArticleId      string
	Slug           string
	Title          string
	Description    string
	Body           string
	Tags           []string
	FavoritesCount int64
	CreatedOn      int64
	UpdatedOn      int64
	Favorited      bool
	Author         *ProfileView
}

type UserView struct {
	UserId   string
	Username string
	Email    string
	Bio      string
	Image    string
	Token    string
}

type CommentView struct {
	CommentId string
	ArticleId string
	Body      string
	CreatedOn int64
	Author    *ProfileView
}

func toProfileView(profile *models.ProfileModel) *ProfileView {
	view := &ProfileView{}
	copier.Copy(view, profile)
	return view
}

// annotateArticles builds viewer-annotated views for a listing page. The
// viewer's favorite id set and the author profiles are each fetched once for
// the whole page.
func annotateArticles(ctx context.Context, publishDb db.PublishDbInterface, viewerId string, articles []models.ArticleModel) ([]*ArticleView, error) {
	views := []*ArticleView{}
	if len(articles) == 0 {
		return views, nil
	}

	favoriteIds := []string{}
	if len(viewerId) > 0 {
		var err error
		favoriteIds, err = publishDb.Favorite().FavoriteIds(ctx, viewerId)
		if err != nil {
			return nil, err
		}
	}

	authorIds := funk.UniqString(funk.Map(articles, func(article models.ArticleModel) string {
		return article.AuthorId
	}).([]string))
	authors, err := publishDb.Profile().FindByIds(ctx, authorIds)
	if err != nil {
		return nil, err
	}
	authorsById := map[string]*models.ProfileModel{}
	for i := range authors {
		authorsById[authors[i].UserId] = &authors[i]
	}

	for i := range articles {
		view := &ArticleView{}
		copier.Copy(view, &articles[i])
		view.Favorited = funk.ContainsString(favoriteIds, articles[i].ArticleId)
		if author, ok := authorsById[articles[i].AuthorId]; ok {
			view.Author = toProfileView(author)
		}
		views = append(views, view)
	}
	return views, nil
}

// annotateArticle is the single-article variant used by point reads.
func annotateArticle(ctx context.Context, publishDb db.PublishDbInterface, viewerId string, article *models.ArticleModel) (*ArticleView, error) {
	authorChan := extensions.GetProfileAsync(ctx, publishDb, article.AuthorId)

	view := &ArticleView{}
	copier.Copy(view, article)

	if len(viewerId) > 0 {
		favorited, err := publishDb.Favorite().IsFavorited(ctx, viewerId, article.ArticleId)
		if err != nil {
			return nil, err
		}
		view.Favorited = favorited
	}

	if author := <-authorChan; author != nil {
		view.Author = toProfileView(author)
	}
	return view, nil
}
