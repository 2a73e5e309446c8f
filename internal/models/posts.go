package models

// Post is stored in the posts table (postgres), the posts collection (mongo)
// or the in-memory store. CreatedAt is an ISO-8601 string set at insert time.
type Post struct {
	ID        int64  `db:"id" json:"id" bson:"_id"`
	Title     string `db:"title" json:"title" bson:"title"`
	Content   string `db:"content" json:"content" bson:"content"`
	AuthorID  string `db:"author_id" json:"authorId" bson:"author_id"`
	CreatedAt string `db:"created_at" json:"createdAt" bson:"created_at"`
}

type CreatePostDTO struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	AuthorID string `json:"authorId" validate:"required"`
}
