package service

import (
	"context"

	"github.com/Kotlang/publishGo/db"
	"github.com/Kotlang/publishGo/models"
	"github.com/thoas/go-funk"
)

type ListFilters struct {
	Author      string
	Tag         string
	FavoritedBy string
	Limit       int64
	Offset      int64
}

type ArticleQueryService struct {
	db db.PublishDbInterface
}

func NewArticleQueryService(db db.PublishDbInterface) *ArticleQueryService {
	return &ArticleQueryService{
		db: db,
	}
}

// List returns the matching page and the total match count computed before
// pagination. An unknown author or favoritedBy username yields an empty
// result, not an error; viewerId may be empty for anonymous listings.
func (s *ArticleQueryService) List(ctx context.Context, viewerId string, filters ListFilters) ([]*ArticleView, int64, error) {
	if err := ValidatePagination(filters.Limit, filters.Offset); err != nil {
		return nil, 0, err
	}

	listFilter := db.ArticleListFilter{
		Tag:    filters.Tag,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	}

	if len(filters.Author) > 0 {
		author, err := s.db.Profile().FindByUsername(ctx, filters.Author)
		if err != nil {
			return nil, 0, err
		}
		if author == nil {
			return []*ArticleView{}, 0, nil
		}
		listFilter.AuthorIds = []string{author.UserId}
	}

	if len(filters.FavoritedBy) > 0 {
		favoriter, err := s.db.Profile().FindByUsername(ctx, filters.FavoritedBy)
		if err != nil {
			return nil, 0, err
		}
		if favoriter == nil {
			return []*ArticleView{}, 0, nil
		}

		favoriteIds, err := s.db.Favorite().FavoriteIds(ctx, favoriter.UserId)
		if err != nil {
			return nil, 0, err
		}
		if len(favoriteIds) == 0 {
			return []*ArticleView{}, 0, nil
		}
		listFilter.Ids = favoriteIds
	}

	articles, totalCount, err := s.db.Article().List(ctx, listFilter)
	if err != nil {
		return nil, 0, err
	}

	views, err := annotateArticles(ctx, s.db, viewerId, articles)
	if err != nil {
		return nil, 0, err
	}
	return views, totalCount, nil
}

// GetTags returns every known tag, most used first.
func (s *ArticleQueryService) GetTags(ctx context.Context) ([]string, error) {
	tags, err := s.db.Tag().GetTagsRanked(ctx, 0)
	if err != nil {
		return nil, err
	}

	return funk.Map(tags, func(tag models.ArticleTagModel) string {
		return tag.Tag
	}).([]string), nil
}
