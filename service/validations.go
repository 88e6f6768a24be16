package service

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// All input validations should be added here.

func ValidatePagination(limit, offset int64) error {
	if limit < 0 || offset < 0 {
		return status.Error(codes.InvalidArgument, "Limit and offset must be non-negative.")
	}

	return nil
}

func ValidateArticleInput(req CreateArticleInput) error {
	if len(req.Title) == 0 {
		return status.Error(codes.InvalidArgument, "Article title is empty.")
	}

	return nil
}

func ValidateRegisterInput(req RegisterInput) error {
	if len(req.Username) == 0 || len(req.Email) == 0 || len(req.Password) == 0 {
		return status.Error(codes.InvalidArgument, "Username, email and password are required.")
	}

	return nil
}
