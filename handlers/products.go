package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rmadmin/models"
	"rmadmin/utils"
)

// ListProducts handles GET /api/productos.
func (hb *HandlerBundle) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, hb.Svc.Products())
}

// GetProduct handles GET /api/productos/:id.
func (hb *HandlerBundle) GetProduct(c *gin.Context) {
	id := c.Param("id")
	p, ok := hb.Svc.FindProduct(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "record not found", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (hb *HandlerBundle) CreateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	id, err := hb.Svc.CreateProduct(c.Request.Context(), in)
	if err != nil {
		hb.respondError(c, "CreateProduct", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (hb *HandlerBundle) UpdateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	id := c.Param("id")
	if err := hb.Svc.UpdateProduct(c.Request.Context(), id, in); err != nil {
		hb.respondError(c, "UpdateProduct", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": id})
}

func (hb *HandlerBundle) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := hb.Svc.DeleteProduct(c.Request.Context(), id); err != nil {
		hb.respondError(c, "DeleteProduct", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": id})
}

// ToggleProductVisibility handles POST /api/productos/:id/visibilidad.
func (hb *HandlerBundle) ToggleProductVisibility(c *gin.Context) {
	id := c.Param("id")
	visible, err := hb.Svc.ToggleProductVisibility(c.Request.Context(), id)
	if err != nil {
		hb.respondError(c, "ToggleProductVisibility", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": id, "visible": visible})
}
