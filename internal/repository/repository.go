package repository

import (
	"context"
	"time"

	"github.com/vaughan-dsouza/goposts/internal/models"
)

// PostRepository is the only way the rest of the app touches post storage.
//
// FindByID returns (nil, nil) when no post matches; errors are reserved for
// storage faults.
type PostRepository interface {
	Create(ctx context.Context, in models.CreatePostDTO) (*models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id int64) (*models.Post, error)
}

// TimestampLayout is how createdAt is rendered: ISO-8601, UTC, milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Clock returns the current time. Repositories take one so tests can pin createdAt.
type Clock func() time.Time

func timestamp(now Clock) string {
	return now().UTC().Format(TimestampLayout)
}
