package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"sabor-backend/pkg/resp"
	"sabor-backend/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Svc     *services.TableService
	BaseURL string
}

func NewTableController(s *services.TableService, baseURL string) *TableController {
	return &TableController{Svc: s, BaseURL: baseURL}
}

func tableID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid table id")
		return 0, false
	}
	return uint(id), true
}

// GET /tables
func (h *TableController) List(c *gin.Context) {
	tables, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /tables/:id/select
func (h *TableController) Select(c *gin.Context) {
	id, ok := tableID(c)
	if !ok {
		return
	}
	t, err := h.Svc.Select(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrTableOccupied):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, t)
}

// POST /tables/:id/release
func (h *TableController) Release(c *gin.Context) {
	id, ok := tableID(c)
	if !ok {
		return
	}
	if err := h.Svc.Release(id); err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"released": true})
}

// GET /tables/:id/qrcode — PNG printed on the physical table.
func (h *TableController) QRCode(c *gin.Context) {
	id, ok := tableID(c)
	if !ok {
		return
	}
	png, err := h.Svc.QRCode(id, h.BaseURL)
	if err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

type CreateTableRequest struct {
	TableNumber int `json:"tableNumber" binding:"required,min=1"`
}

// POST /admin/tables
func (h *TableController) Create(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := h.Svc.Create(req.TableNumber)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, t)
}

// DELETE /admin/tables/:id
func (h *TableController) Delete(c *gin.Context) {
	id, ok := tableID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
