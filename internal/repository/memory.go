package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vaughan-dsouza/goposts/internal/models"
)

// MemoryPostRepository keeps posts in process memory. Ids start at 1 and
// are never reused.
type MemoryPostRepository struct {
	mu     sync.RWMutex
	posts  map[int64]models.Post
	nextID int64
	now    Clock
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts:  make(map[int64]models.Post),
		nextID: 1,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for createdAt.
func (r *MemoryPostRepository) WithClock(now Clock) *MemoryPostRepository {
	r.now = now
	return r
}

func (r *MemoryPostRepository) Create(ctx context.Context, in models.CreatePostDTO) (*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post := models.Post{
		ID:        r.nextID,
		Title:     in.Title,
		Content:   in.Content,
		AuthorID:  in.AuthorID,
		CreatedAt: timestamp(r.now),
	}
	r.posts[post.ID] = post
	r.nextID++

	return &post, nil
}

func (r *MemoryPostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	return posts, nil
}

func (r *MemoryPostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}
