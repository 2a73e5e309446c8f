package handlers

import (
	"net/http"

	"github.com/vaughan-dsouza/goposts/internal/utils"
)

type HealthHandler struct {
	port int
}

func NewHealthHandler(port int) *HealthHandler {
	return &HealthHandler{port: port}
}

type healthResp struct {
	Status string `json:"status"`
	Port   int    `json:"port"`
}

func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, healthResp{Status: "UP", Port: h.port})
}
