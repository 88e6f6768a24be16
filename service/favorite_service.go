package service

import (
	"context"

	"github.com/Kotlang/publishGo/db"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FavoriteService is the only entry point for mutating the favorite relation;
// the article counter moves in lock-step inside the repository transaction.
type FavoriteService struct {
	db db.PublishDbInterface
}

func NewFavoriteService(db db.PublishDbInterface) *FavoriteService {
	return &FavoriteService{
		db: db,
	}
}

// AddFavorite marks the article as favorited by the user. Favoriting an
// already favorited article is a no-op and returns the unchanged article.
func (s *FavoriteService) AddFavorite(ctx context.Context, userId, slug string) (*ArticleView, error) {
	article, err := s.db.Article().FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, status.Error(codes.NotFound, "Article not found.")
	}

	added, err := s.db.Favorite().Add(ctx, userId, article.ArticleId)
	if err != nil {
		return nil, err
	}
	if added {
		article.FavoritesCount++
	}

	return annotateArticle(ctx, s.db, userId, article)
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userId, slug string) (*ArticleView, error) {
	article, err := s.db.Article().FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, status.Error(codes.NotFound, "Article not found.")
	}

	removed, err := s.db.Favorite().Remove(ctx, userId, article.ArticleId)
	if err != nil {
		return nil, err
	}
	if removed {
		article.FavoritesCount--
	}

	return annotateArticle(ctx, s.db, userId, article)
}

func (s *FavoriteService) IsFavoritedBy(ctx context.Context, userId, articleId string) (bool, error) {
	return s.db.Favorite().IsFavorited(ctx, userId, articleId)
}

func (s *FavoriteService) FavoriteIdsOf(ctx context.Context, userId string) ([]string, error) {
	return s.db.Favorite().FavoriteIds(ctx, userId)
}
