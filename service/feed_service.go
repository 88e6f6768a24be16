package service

import (
	"context"

	"github.com/Kotlang/publishGo/db"
)

// FeedService assembles the personalized feed: articles by followed authors,
// newest first.
type FeedService struct {
	db          db.PublishDbInterface
	followGraph *FollowGraphService
}

func NewFeedService(db db.PublishDbInterface, followGraph *FollowGraphService) *FeedService {
	return &FeedService{
		db:          db,
		followGraph: followGraph,
	}
}

// Feed short-circuits without an article query when the viewer follows
// nobody.
func (s *FeedService) Feed(ctx context.Context, viewerId string, limit, offset int64) ([]*ArticleView, int64, error) {
	if err := ValidatePagination(limit, offset); err != nil {
		return nil, 0, err
	}

	followees, err := s.followGraph.FolloweesOf(ctx, viewerId)
	if err != nil {
		return nil, 0, err
	}
	if len(followees) == 0 {
		return []*ArticleView{}, 0, nil
	}

	articles, totalCount, err := s.db.Article().List(ctx, db.ArticleListFilter{
		AuthorIds: followees,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, 0, err
	}

	views, err := annotateArticles(ctx, s.db, viewerId, articles)
	if err != nil {
		return nil, 0, err
	}
	return views, totalCount, nil
}
