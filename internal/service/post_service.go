package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/Mohsin1016/post-blog-test/internal/models"
	"github.com/Mohsin1016/post-blog-test/internal/repository"
	"github.com/Mohsin1016/post-blog-test/internal/storage"
)

// DefaultListLimit caps the recent-posts listing.
const DefaultListLimit = 20

// Upload carries a cover file taken from a multipart request.
type Upload struct {
	FileName string
	Size     int64
	Reader   io.Reader
}

// PostInput holds the writable post fields. A nil File means
// "no cover change".
type PostInput struct {
	Title   string
	Summary string
	Content string
	File    *Upload
}

type PostService interface {
	Create(ctx context.Context, identity Identity, input PostInput) (*models.Post, error)
	Update(ctx context.Context, identity Identity, postID string, input PostInput) (*models.Post, error)
	ListRecent(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
}

type postService struct {
	postRepo  repository.PostRepository
	blobStore storage.BlobStore
}

func NewPostService(postRepo repository.PostRepository, blobStore storage.BlobStore) PostService {
	return &postService{
		postRepo:  postRepo,
		blobStore: blobStore,
	}
}

// Create uploads the cover first: if the blob store rejects it, no post
// row is written. The author always comes from the verified identity.
func (p *postService) Create(ctx context.Context, identity Identity, input PostInput) (*models.Post, error) {
	var coverURL *string
	if input.File != nil {
		url, err := p.blobStore.Upload(ctx, input.File.FileName, input.File.Reader, input.File.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
		}
		coverURL = &url
	}

	post := &models.Post{
		AuthorID:   identity.UserID,
		AuthorName: identity.Username,
		Title:      input.Title,
		Summary:    input.Summary,
		Content:    input.Content,
		CoverURL:   coverURL,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// Update checks authorship before uploading a replacement cover or writing
// any field. When no file is supplied the old cover is kept.
func (p *postService) Update(ctx context.Context, identity Identity, postID string, input PostInput) (*models.Post, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, models.ErrPostNotFound
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != identity.UserID {
		return nil, models.ErrForbidden
	}

	if input.File != nil {
		url, err := p.blobStore.Upload(ctx, input.File.FileName, input.File.Reader, input.File.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
		}
		post.CoverURL = &url
	}

	post.Title = input.Title
	post.Summary = input.Summary
	post.Content = input.Content

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) ListRecent(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.ListRecent(ctx, DefaultListLimit)
}

func (p *postService) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, models.ErrPostNotFound
	}

	return p.postRepo.GetByID(ctx, postID)
}
