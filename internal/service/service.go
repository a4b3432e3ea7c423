package service

import (
	"github.com/Mohsin1016/post-blog-test/internal/config"
	"github.com/Mohsin1016/post-blog-test/internal/repository"
	"github.com/Mohsin1016/post-blog-test/internal/storage"
)

// Identity is the caller extracted from a verified session token.
type Identity struct {
	UserID   string
	Username string
}

type Service struct {
	Auth AuthService
	Post PostService
}

func NewService(rep *repository.Repository, cfg *config.Config, blobStore storage.BlobStore) *Service {
	return &Service{
		Auth: NewAuthService(rep.User, cfg),
		Post: NewPostService(rep.Post, blobStore),
	}
}
