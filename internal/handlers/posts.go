package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vaughan-dsouza/goposts/internal/models"
	"github.com/vaughan-dsouza/goposts/internal/services"
	"github.com/vaughan-dsouza/goposts/internal/utils"
)

type PostHandler struct {
	service   services.PostService
	validate  *validator.Validate
	bodyLimit int64
	logger    *log.Logger
}

func NewPostHandler(service services.PostService, validate *validator.Validate, bodyLimit int64, logger *log.Logger) *PostHandler {
	return &PostHandler{service: service, validate: validate, bodyLimit: bodyLimit, logger: logger}
}

// ---------------------- CREATE ----------------------

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) error {
	var body models.CreatePostDTO
	if err := utils.DecodeJSON(w, r, &body, h.bodyLimit); err != nil {
		return err
	}

	if err := h.validate.Struct(body); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		h.logger.Printf("create post: missing required fields: %v", verrs)
		utils.JSONError(w, http.StatusBadRequest, "Missing required fields")
		return nil
	}

	post, err := h.service.CreatePost(r.Context(), body)
	if err != nil {
		return err
	}

	utils.JSON(w, http.StatusCreated, utils.Success(post, "Post created successfully", http.StatusCreated))
	return nil
}

// ---------------------- LIST ----------------------

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) error {
	posts, err := h.service.GetAllPosts(r.Context())
	if err != nil {
		return err
	}

	utils.JSON(w, http.StatusOK, utils.Success(posts, "Posts retrieved successfully", http.StatusOK))
	return nil
}

// ---------------------- GET ONE ----------------------

func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid post ID")
		return nil
	}

	post, err := h.service.GetPostByID(r.Context(), id)
	if err != nil {
		return err
	}
	if post == nil {
		utils.JSONError(w, http.StatusNotFound, fmt.Sprintf("Post with id %d not found", id))
		return nil
	}

	utils.JSON(w, http.StatusOK, utils.Success(post, "Post retrieved successfully", http.StatusOK))
	return nil
}
