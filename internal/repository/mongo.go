package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vaughan-dsouza/goposts/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	postsCollection    = "posts"
	countersCollection = "counters"
)

// MongoPostRepository stores posts in the posts collection. Numeric ids come
// from a per-collection sequence document in counters.
type MongoPostRepository struct {
	posts    *mongo.Collection
	counters *mongo.Collection
	now      Clock
}

func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{
		posts:    db.Collection(postsCollection),
		counters: db.Collection(countersCollection),
		now:      time.Now,
	}
}

// WithClock replaces the clock used for createdAt.
func (r *MongoPostRepository) WithClock(now Clock) *MongoPostRepository {
	r.now = now
	return r
}

func (r *MongoPostRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": postsCollection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

func (r *MongoPostRepository) Create(ctx context.Context, in models.CreatePostDTO) (*models.Post, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate post id: %w", err)
	}

	post := models.Post{
		ID:        id,
		Title:     in.Title,
		Content:   in.Content,
		AuthorID:  in.AuthorID,
		CreatedAt: timestamp(r.now),
	}

	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return &post, nil
}

func (r *MongoPostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	cursor, err := r.posts.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post

	err := r.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}

	return &post, nil
}
