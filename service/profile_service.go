package service

import (
	"context"

	"github.com/Kotlang/publishGo/db"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ProfileService is the username-facing surface over profiles and the follow
// graph.
type ProfileService struct {
	db          db.PublishDbInterface
	followGraph *FollowGraphService
}

func NewProfileService(db db.PublishDbInterface, followGraph *FollowGraphService) *ProfileService {
	return &ProfileService{
		db:          db,
		followGraph: followGraph,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, viewerId, username string) (*ProfileView, error) {
	profile, err := s.db.Profile().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, status.Error(codes.NotFound, "User not found.")
	}

	view := toProfileView(profile)
	if len(viewerId) > 0 {
		following, err := s.db.Follow().IsFollowing(ctx, viewerId, profile.UserId)
		if err != nil {
			return nil, err
		}
		view.Following = following
	}
	return view, nil
}

func (s *ProfileService) FollowProfile(ctx context.Context, followerId, username string) (*ProfileView, error) {
	profile, err := s.db.Profile().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, status.Error(codes.NotFound, "User not found.")
	}
	return s.followGraph.Follow(ctx, followerId, profile.UserId)
}

func (s *ProfileService) UnfollowProfile(ctx context.Context, followerId, username string) (*ProfileView, error) {
	profile, err := s.db.Profile().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, status.Error(codes.NotFound, "User not found.")
	}
	return s.followGraph.Unfollow(ctx, followerId, profile.UserId)
}
