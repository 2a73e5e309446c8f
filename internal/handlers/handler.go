package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/vaughan-dsouza/goposts/internal/services"
)

type Handler struct {
	Health *HealthHandler
	Posts  *PostHandler
}

func NewHandler(posts services.PostService, port int, bodyLimit int64, logger *log.Logger) *Handler {
	return &Handler{
		Health: NewHealthHandler(port),
		Posts:  NewPostHandler(posts, validator.New(validator.WithRequiredStructEnabled()), bodyLimit, logger),
	}
}
