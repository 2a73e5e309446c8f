package routes

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaughan-dsouza/goposts/internal/config"
	"github.com/vaughan-dsouza/goposts/internal/handlers"
	"github.com/vaughan-dsouza/goposts/internal/middleware"
	"github.com/vaughan-dsouza/goposts/internal/repository"
	"github.com/vaughan-dsouza/goposts/internal/services"
)

// New wires repo → service → handlers and returns the HTTP router.
func New(cfg config.Config, repo repository.PostRepository, logger *log.Logger) http.Handler {
	svc := services.NewPostService(repo, logger, cfg.Debug())
	h := handlers.NewHandler(svc, cfg.Port, cfg.Server.BodyLimit, logger)
	errs := middleware.NewErrorHandler(logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(errs.Recover)

	r.NotFound(errs.NotFound)
	r.MethodNotAllowed(errs.MethodNotAllowed)

	r.Get("/", h.Health.Status)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Health.Status)

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", errs.Handle(h.Posts.CreatePost))
			r.Get("/", errs.Handle(h.Posts.GetPosts))
			r.Get("/{id}", errs.Handle(h.Posts.GetPostByID))
		})
	})

	return r
}
