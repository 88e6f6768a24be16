package service

import (
	"context"
	"time"

	"github.com/Kotlang/publishGo/db"
	"github.com/Kotlang/publishGo/models"
	"github.com/jinzhu/copier"
	"github.com/thoas/go-funk"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type CommentService struct {
	db db.PublishDbInterface
}

func NewCommentService(db db.PublishDbInterface) *CommentService {
	return &CommentService{
		db: db,
	}
}

func (s *CommentService) AddComment(ctx context.Context, userId, articleSlug, body string) (*CommentView, error) {
	if len(body) == 0 {
		return nil, status.Error(codes.InvalidArgument, "Comment body is empty.")
	}

	article, err := s.db.Article().FindBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, status.Error(codes.NotFound, "Article not found.")
	}

	author, err := s.db.Profile().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, status.Error(codes.NotFound, "User not found.")
	}

	comment := &models.CommentModel{
		ArticleId: article.ArticleId,
		UserId:    userId,
		Body:      body,
		CreatedOn: time.Now().Unix(),
	}
	comment.CommentId = comment.Id()
	if err := s.db.Comment().Save(ctx, comment); err != nil {
		return nil, err
	}

	view := &CommentView{}
	copier.Copy(view, comment)
	view.Author = toProfileView(author)
	return view, nil
}

func (s *CommentService) GetComments(ctx context.Context, articleSlug string, pageNumber, pageSize int64) ([]*CommentView, error) {
	if pageSize == 0 {
		pageSize = 10
	}

	article, err := s.db.Article().FindBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, status.Error(codes.NotFound, "Article not found.")
	}

	comments, err := s.db.Comment().GetComments(ctx, article.ArticleId, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}

	authorIds := funk.UniqString(funk.Map(comments, func(comment models.CommentModel) string {
		return comment.UserId
	}).([]string))
	authors, err := s.db.Profile().FindByIds(ctx, authorIds)
	if err != nil {
		return nil, err
	}
	authorsById := map[string]*models.ProfileModel{}
	for i := range authors {
		authorsById[authors[i].UserId] = &authors[i]
	}

	views := []*CommentView{}
	for i := range comments {
		view := &CommentView{}
		copier.Copy(view, &comments[i])
		if author, ok := authorsById[comments[i].UserId]; ok {
			view.Author = toProfileView(author)
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, userId, commentId string) error {
	comment, err := s.db.Comment().FindById(ctx, commentId)
	if err != nil {
		return err
	}
	if comment == nil {
		return status.Error(codes.NotFound, "Comment not found.")
	}
	if comment.UserId != userId {
		return status.Error(codes.PermissionDenied, "Only the author can delete the comment.")
	}

	return s.db.Comment().DeleteById(ctx, commentId)
}
