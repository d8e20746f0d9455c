package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fixora/fixora-backend/catalog"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}

func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.All())
}

func (h *CatalogHandler) GetByID(c *gin.Context) {
	service, ok := catalog.Find(c.Param("id"))

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	c.JSON(http.StatusOK, service)
}
