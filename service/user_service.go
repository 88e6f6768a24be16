package service

import (
	"context"
	"time"

	"github.com/Kotlang/publishGo/auth"
	"github.com/Kotlang/publishGo/db"
	"github.com/Kotlang/publishGo/models"
	s3client "github.com/Kotlang/publishGo/s3Client"
	"github.com/jinzhu/copier"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Username *string
	Email    *string
	Bio      *string
	Image    *string
	Password *string
}

type UserService struct {
	db    db.PublishDbInterface
	auth  *auth.Provider
	media *s3client.Client
}

func NewUserService(db db.PublishDbInterface, auth *auth.Provider, media *s3client.Client) *UserService {
	return &UserService{
		db:    db,
		auth:  auth,
		media: media,
	}
}

func (s *UserService) Register(ctx context.Context, req RegisterInput) (*UserView, error) {
	if err := ValidateRegisterInput(req); err != nil {
		return nil, err
	}

	existingByEmail, err := s.db.Profile().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existingByEmail != nil {
		return nil, status.Error(codes.AlreadyExists, "Email has already been taken.")
	}

	existingByUsername, err := s.db.Profile().FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existingByUsername != nil {
		return nil, status.Error(codes.AlreadyExists, "Username has already been taken.")
	}

	passwordHash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	profile := &models.ProfileModel{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedOn:    time.Now().Unix(),
	}
	// unique indexes close the check-then-insert race
	if err := s.db.Profile().Create(ctx, profile); err != nil {
		return nil, err
	}

	return s.buildUserView(profile)
}

func (s *UserService) Login(ctx context.Context, username, password string) (*UserView, error) {
	profile, err := s.db.Profile().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile == nil || !s.auth.VerifyPassword(profile.PasswordHash, password) {
		return nil, status.Error(codes.Unauthenticated, "Incorrect username or password.")
	}

	return s.buildUserView(profile)
}

func (s *UserService) GetUser(ctx context.Context, userId string) (*UserView, error) {
	profile, err := s.db.Profile().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, status.Error(codes.NotFound, "User not found.")
	}
	return s.buildUserView(profile)
}

func (s *UserService) UpdateUser(ctx context.Context, userId string, req UpdateUserInput) (*UserView, error) {
	profile, err := s.db.Profile().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, status.Error(codes.NotFound, "User not found.")
	}

	if err := s.mergeUserUpdate(profile, req); err != nil {
		return nil, err
	}
	if err := s.db.Profile().Save(ctx, profile); err != nil {
		return nil, err
	}
	return s.buildUserView(profile)
}

// GetImageUploadUrl hands out a presigned upload url and the media url the
// profile image will be served from.
func (s *UserService) GetImageUploadUrl(userId, mediaExtension string) (string, string) {
	return s.media.GetPresignedUrl("profiles", userId, mediaExtension)
}

// mergeUserUpdate copies only the whitelisted fields; userId and createdOn
// are never overwritten by a partial update.
func (s *UserService) mergeUserUpdate(profile *models.ProfileModel, req UpdateUserInput) error {
	if req.Username != nil {
		profile.Username = *req.Username
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Image != nil {
		profile.Image = *req.Image
	}
	if req.Password != nil {
		passwordHash, err := s.auth.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		profile.PasswordHash = passwordHash
	}
	return nil
}

func (s *UserService) buildUserView(profile *models.ProfileModel) (*UserView, error) {
	token, err := s.auth.GenerateToken(profile.UserId)
	if err != nil {
		return nil, err
	}

	view := &UserView{}
	copier.Copy(view, profile)
	view.Token = token
	return view, nil
}
