package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"sabor-backend/pkg/resp"
	"sabor-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu — available dishes only.
func (h *MenuController) Menu(c *gin.Context) {
	menu, err := h.Svc.Menu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menu)
}

// GET /menu/:id/image
func (h *MenuController) Image(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}
	p, err := h.Svc.Image(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, "image not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, p.ImageType, p.Image)
}
