package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelreserve/internal/pkg/response"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/export", h.Export)
}

func (h *Handler) Export(c *gin.Context) {
	buf, err := h.service.Export(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to generate report")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}
