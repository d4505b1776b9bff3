package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelreserve/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.GetRooms)
	rg.GET("/rooms/categories", h.GetCategories)
}

func (h *Handler) GetRooms(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"rooms": h.service.AllRooms(c.Request.Context())})
}

func (h *Handler) GetCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"categories": h.service.Categories(c.Request.Context())})
}
