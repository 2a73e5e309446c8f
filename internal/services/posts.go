package services

import (
	"context"
	"log"

	"github.com/vaughan-dsouza/goposts/internal/models"
	"github.com/vaughan-dsouza/goposts/internal/repository"
)

// PostService holds the business rules for posts. Today it only delegates;
// checks such as author existence belong here and must keep the
// repository's contract (absent post → nil, nil).
type PostService interface {
	CreatePost(ctx context.Context, in models.CreatePostDTO) (*models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostByID(ctx context.Context, id int64) (*models.Post, error)
}

type postService struct {
	repo   repository.PostRepository
	logger *log.Logger
	debug  bool
}

// NewPostService returns a PostService backed by repo. When debug is set
// every call is traced through logger.
func NewPostService(repo repository.PostRepository, logger *log.Logger, debug bool) PostService {
	return &postService{repo: repo, logger: logger, debug: debug}
}

func (s *postService) tracef(format string, args ...any) {
	if s.debug {
		s.logger.Printf(format, args...)
	}
}

func (s *postService) CreatePost(ctx context.Context, in models.CreatePostDTO) (*models.Post, error) {
	s.tracef("service: create post title=%q author=%q", in.Title, in.AuthorID)

	post, err := s.repo.Create(ctx, in)
	if err != nil {
		s.logger.Printf("service: create post: %v", err)
		return nil, err
	}

	s.tracef("service: created post id=%d", post.ID)
	return post, nil
}

func (s *postService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	s.tracef("service: list posts")

	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Printf("service: list posts: %v", err)
		return nil, err
	}

	s.tracef("service: listed %d posts", len(posts))
	return posts, nil
}

func (s *postService) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	s.tracef("service: get post id=%d", id)

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Printf("service: get post %d: %v", id, err)
		return nil, err
	}
	if post == nil {
		s.logger.Printf("service: post %d not found", id)
		return nil, nil
	}

	return post, nil
}
