package controllers

import (
	"strconv"

	"sabor-backend/entity"
	"sabor-backend/pkg/resp"
	"sabor-backend/services"
	"sabor-backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// cartScope derives the (user, table) scope from the token and the
// tableId query param every cart route carries.
func cartScope(c *gin.Context) (services.ScopeKey, bool) {
	uid := utils.CurrentUserID(c)
	tid, err := strconv.ParseUint(c.Query("tableId"), 10, 32)
	if uid == 0 || err != nil || tid == 0 {
		resp.BadRequest(c, "tableId is required")
		return services.ScopeKey{}, false
	}
	return services.ScopeKey{UserID: uid, TableID: uint(tid)}, true
}

func cartPayload(cart *entity.Cart) gin.H {
	subtotal := cart.Subtotal()
	return gin.H{
		"items":    cart.Items,
		"subtotal": subtotal,
		"total":    utils.FormatCentavos(subtotal),
	}
}

// GET /cart?tableId=
func (h *CartController) Get(c *gin.Context) {
	scope, ok := cartScope(c)
	if !ok {
		return
	}
	cart, _, err := h.Svc.Get(scope)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cartPayload(cart))
}

// POST /cart/items?tableId=  {productId}
func (h *CartController) Add(c *gin.Context) {
	scope, ok := cartScope(c)
	if !ok {
		return
	}
	var body struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.Add(scope, body.ProductID)
	if err != nil {
		if err == services.ErrProductNotFound {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cartPayload(cart))
}

// POST /cart/items/:productId/increase?tableId=
func (h *CartController) Increase(c *gin.Context) {
	h.adjust(c, h.Svc.Increase)
}

// POST /cart/items/:productId/decrease?tableId=
func (h *CartController) Decrease(c *gin.Context) {
	h.adjust(c, h.Svc.Decrease)
}

// DELETE /cart/items/:productId?tableId=
func (h *CartController) Remove(c *gin.Context) {
	h.adjust(c, h.Svc.Remove)
}

func (h *CartController) adjust(c *gin.Context, op func(services.ScopeKey, uint) (*entity.Cart, error)) {
	scope, ok := cartScope(c)
	if !ok {
		return
	}
	pid, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil || pid == 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}
	cart, err := op(scope, uint(pid))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cartPayload(cart))
}

// DELETE /cart?tableId=
func (h *CartController) Clear(c *gin.Context) {
	scope, ok := cartScope(c)
	if !ok {
		return
	}
	if err := h.Svc.Clear(scope); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
