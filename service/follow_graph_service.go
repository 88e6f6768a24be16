package service

import (
	"context"
	"time"

	"github.com/Kotlang/publishGo/db"
	"github.com/Kotlang/publishGo/models"
	"github.com/thoas/go-funk"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type FollowGraphService struct {
	db db.PublishDbInterface
}

func NewFollowGraphService(db db.PublishDbInterface) *FollowGraphService {
	return &FollowGraphService{
		db: db,
	}
}

// Follow adds the follower -> followee edge. Following an already followed
// user is a no-op and still succeeds.
func (s *FollowGraphService) Follow(ctx context.Context, followerId, followeeId string) (*ProfileView, error) {
	if followerId == followeeId {
		return nil, status.Error(codes.FailedPrecondition, "Follower and followee cannot be equal.")
	}

	followee, err := s.db.Profile().FindById(ctx, followeeId)
	if err != nil {
		return nil, err
	}
	if followee == nil {
		return nil, status.Error(codes.NotFound, "User not found.")
	}

	edge := &models.FollowEdgeModel{
		FollowerId: followerId,
		FolloweeId: followeeId,
		CreatedOn:  time.Now().Unix(),
	}
	if err := s.db.Follow().Save(ctx, edge); err != nil {
		return nil, err
	}

	view := toProfileView(followee)
	view.Following = true
	return view, nil
}

// Unfollow removes the edge; removing an absent edge still succeeds.
func (s *FollowGraphService) Unfollow(ctx context.Context, followerId, followeeId string) (*ProfileView, error) {
	if followerId == followeeId {
		return nil, status.Error(codes.FailedPrecondition, "Follower and followee cannot be equal.")
	}

	followee, err := s.db.Profile().FindById(ctx, followeeId)
	if err != nil {
		return nil, err
	}
	if followee == nil {
		return nil, status.Error(codes.NotFound, "User not found.")
	}

	if err := s.db.Follow().Delete(ctx, followerId, followeeId); err != nil {
		return nil, err
	}

	view := toProfileView(followee)
	view.Following = false
	return view, nil
}

func (s *FollowGraphService) IsFollowing(ctx context.Context, followerId, followeeId string) (bool, error) {
	return s.db.Follow().IsFollowing(ctx, followerId, followeeId)
}

// FolloweesOf returns an empty slice, not an error, when the user follows
// nobody.
func (s *FollowGraphService) FolloweesOf(ctx context.Context, followerId string) ([]string, error) {
	return s.db.Follow().FolloweesOf(ctx, followerId)
}

func (s *FollowGraphService) GetFollowers(ctx context.Context, userId string, pageNumber, pageSize int64) ([]*ProfileView, error) {
	if pageSize == 0 {
		pageSize = 10
	}

	followerIds, err := s.db.Follow().FollowersOf(ctx, userId, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}

	followers, err := s.db.Profile().FindByIds(ctx, followerIds)
	if err != nil {
		return nil, err
	}

	return funk.Map(followers, func(follower models.ProfileModel) *ProfileView {
		return toProfileView(&follower)
	}).([]*ProfileView), nil
}
