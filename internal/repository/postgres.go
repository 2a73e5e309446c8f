package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/goposts/internal/models"
)

type PostgresPostRepository struct {
	DB  *sqlx.DB
	now Clock
}

func NewPostgresPostRepository(db *sqlx.DB) *PostgresPostRepository {
	return &PostgresPostRepository{DB: db, now: time.Now}
}

// WithClock replaces the clock used for createdAt.
func (r *PostgresPostRepository) WithClock(now Clock) *PostgresPostRepository {
	r.now = now
	return r
}

// ---------------------- CREATE ----------------------

func (r *PostgresPostRepository) Create(ctx context.Context, in models.CreatePostDTO) (*models.Post, error) {
	query := `
        INSERT INTO posts (title, content, author_id, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, content, author_id, created_at
    `

	var post models.Post
	err := r.DB.QueryRowxContext(ctx, query, in.Title, in.Content, in.AuthorID, timestamp(r.now)).
		StructScan(&post)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return &post, nil
}

// ---------------------- LIST ----------------------

func (r *PostgresPostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}

	err := r.DB.SelectContext(ctx, &posts,
		`SELECT id, title, content, author_id, created_at FROM posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// ---------------------- GET ONE ----------------------

func (r *PostgresPostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post

	err := r.DB.GetContext(ctx, &post,
		`SELECT id, title, content, author_id, created_at FROM posts WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}

	return &post, nil
}
