package controllers

import (
	"errors"
	"strconv"

	"sabor-backend/pkg/resp"
	"sabor-backend/services"

	"github.com/gin-gonic/gin"
)

// ProductController is the admin side of the catalog.
type ProductController struct{ Svc *services.MenuService }

func NewProductController(s *services.MenuService) *ProductController {
	return &ProductController{Svc: s}
}

type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"required,min=0"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	ImageBase64 string `json:"imageBase64"`
}

// GET /admin/products
func (h *ProductController) List(c *gin.Context) {
	products, err := h.Svc.AdminList()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /admin/products
func (h *ProductController) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	p, err := h.Svc.Create(&services.ProductIn{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Available:   available,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, p)
}

type ProductPatchRequest struct {
	Name        *string `json:"name"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	ImageBase64 *string `json:"imageBase64"`
}

// PATCH /admin/products/:id
func (h *ProductController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}

	var req ProductPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.ImageBase64 != nil {
		updates["imageBase64"] = *req.ImageBase64
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	p, err := h.Svc.Update(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/products/:id
func (h *ProductController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
