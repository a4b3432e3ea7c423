package app

import (
	"context"
	"fmt"
	"log"

	"github.com/Mohsin1016/post-blog-test/internal/config"
	"github.com/Mohsin1016/post-blog-test/internal/database"
	"github.com/Mohsin1016/post-blog-test/internal/repository"
	"github.com/Mohsin1016/post-blog-test/internal/service"
	"github.com/Mohsin1016/post-blog-test/internal/storage"
)

// App builds the application object graph: database, blob store,
// repositories and services. Everything downstream gets its dependencies
// injected from here.
func App(cfg *config.Config) (*database.DB, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	blobStore, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize blob store: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, blobStore)

	return db, services
}

// newBlobStore selects the vendor backend from config. The two backends
// are interchangeable behind storage.BlobStore.
func newBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	switch cfg.BlobBackend {
	case "minio":
		return storage.NewMinIOClient(context.Background(), cfg)
	case "s3":
		return storage.NewS3Client(context.Background(), cfg)
	default:
		return nil, fmt.Errorf("unknown blob backend %q (want minio or s3)", cfg.BlobBackend)
	}
}
