package controllers

import (
	"errors"

	"sabor-backend/pkg/resp"
	"sabor-backend/services"
	"sabor-backend/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Svc       *services.CheckoutService
	Discounts *services.DiscountService
	Users     services.UserStore
	Tables    services.TableStore
}

func NewCheckoutController(svc *services.CheckoutService, discounts *services.DiscountService, users services.UserStore, tables services.TableStore) *CheckoutController {
	return &CheckoutController{Svc: svc, Discounts: discounts, Users: users, Tables: tables}
}

type CheckoutRequest struct {
	TableID       uint   `json:"tableId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=cash card"`
	DiscountCode  string `json:"discountCode"`
}

// POST /checkout
func (h *CheckoutController) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	table, err := h.Tables.FindByID(req.TableID)
	if err != nil {
		resp.NotFound(c, "table not found")
		return
	}

	order, err := h.Svc.Checkout(user, table, services.CheckoutInput{
		PaymentMethod: req.PaymentMethod,
		DiscountCode:  req.DiscountCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCheckout),
			errors.Is(err, services.ErrInvalidDiscountCode):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrOrderSubmission):
			// cart untouched, the client may retry
			resp.ServerError(c, err)
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{
		"orderNo":     order.OrderNo,
		"state":       order.State,
		"tableNumber": order.TableNumber,
		"subtotal":    order.Subtotal,
		"total":       order.Total,
		"totalText":   utils.FormatCentavos(order.Total),
	})
}

type ValidateDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// POST /discounts/validate — inline check while the cart is still open.
func (h *CheckoutController) ValidateDiscount(c *gin.Context) {
	var req ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rate, err := h.Discounts.Resolve(req.Code)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDiscountCode) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"code": req.Code, "rate": rate})
}
