package service

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/Kotlang/publishGo/db"
	"github.com/Kotlang/publishGo/extensions"
	"github.com/Kotlang/publishGo/models"
	"github.com/gosimple/slug"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const slugAttempts = 3

type CreateArticleInput struct {
	Title       string
	Description string
	Body        string
	Tags        []string
}

type UpdateArticleInput struct {
	Title       *string
	Description *string
	Body        *string
}

type ArticleService struct {
	db db.PublishDbInterface
}

func NewArticleService(db db.PublishDbInterface) *ArticleService {
	return &ArticleService{
		db: db,
	}
}

// CreateArticle assigns the slug exactly once. A slug collision is retried
// with a fresh suffix instead of surfacing to the caller.
func (s *ArticleService) CreateArticle(ctx context.Context, authorId string, req CreateArticleInput) (*ArticleView, error) {
	if err := ValidateArticleInput(req); err != nil {
		return nil, err
	}

	author, err := s.db.Profile().FindById(ctx, authorId)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, status.Error(codes.NotFound, "Author not found.")
	}

	article := &models.ArticleModel{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Tags:        req.Tags,
		AuthorId:    authorId,
		CreatedOn:   time.Now().Unix(),
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	var createErr error
	for attempt := 0; attempt < slugAttempts; attempt++ {
		article.Slug = makeSlug(req.Title)
		createErr = s.db.Article().Create(ctx, article)
		if status.Code(createErr) != codes.AlreadyExists {
			break
		}
	}
	if createErr != nil {
		return nil, createErr
	}

	savedTagsPromise := extensions.RecordTags(ctx, s.db, article.Tags)
	<-savedTagsPromise

	return annotateArticle(ctx, s.db, authorId, article)
}

func (s *ArticleService) GetArticle(ctx context.Context, viewerId, articleSlug string) (*ArticleView, error) {
	article, err := s.db.Article().FindBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, status.Error(codes.NotFound, "Article not found.")
	}

	return annotateArticle(ctx, s.db, viewerId, article)
}

func (s *ArticleService) UpdateArticle(ctx context.Context, userId, articleSlug string, req UpdateArticleInput) (*ArticleView, error) {
	article, err := s.db.Article().FindBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, status.Error(codes.NotFound, "Article not found.")
	}
	if article.AuthorId != userId {
		return nil, status.Error(codes.PermissionDenied, "Only the author can update the article.")
	}

	mergeArticleUpdate(article, req)
	article.UpdatedOn = time.Now().Unix()

	if err := s.db.Article().Save(ctx, article); err != nil {
		return nil, err
	}
	return annotateArticle(ctx, s.db, userId, article)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, userId, articleSlug string) error {
	article, err := s.db.Article().FindBySlug(ctx, articleSlug)
	if err != nil {
		return err
	}
	if article == nil {
		return status.Error(codes.NotFound, "Article not found.")
	}
	if article.AuthorId != userId {
		return status.Error(codes.PermissionDenied, "Only the author can delete the article.")
	}

	if err := s.db.Article().DeleteById(ctx, article.ArticleId); err != nil {
		return err
	}
	return s.db.Favorite().PurgeArticle(ctx, article.ArticleId)
}

// mergeArticleUpdate copies only the editable fields. Slug, author and the
// favorite counter are never touched by an update.
func mergeArticleUpdate(article *models.ArticleModel, req UpdateArticleInput) {
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Description != nil {
		article.Description = *req.Description
	}
	if req.Body != nil {
		article.Body = *req.Body
	}
}

func makeSlug(title string) string {
	suffix := strconv.FormatInt(rand.Int63n(36*36*36*36*36*36), 36)
	return slug.Make(title) + "-" + suffix
}
