package controllers

import (
	"sabor-backend/pkg/resp"
	"sabor-backend/services"
	"sabor-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc   *services.OrderService
	Users services.UserStore
}

func NewOrderController(s *services.OrderService, users services.UserStore) *OrderController {
	return &OrderController{Svc: s, Users: users}
}

func orderFilters(c *gin.Context) services.OrderFilters {
	return services.OrderFilters{
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		StartTime:  c.Query("startTime"),
		EndTime:    c.Query("endTime"),
		ClientName: c.Query("clientName"),
		SortBy:     services.SortField(c.DefaultQuery("sortBy", "date")),
		SortOrder:  services.SortDirection(c.DefaultQuery("sortOrder", "desc")),
	}
}

// GET /admin/orders — full history with filters.
func (h *OrderController) AdminHistory(c *gin.Context) {
	orders, err := h.Svc.History(orderFilters(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/my — a client only ever sees their own orders.
func (h *OrderController) MyHistory(c *gin.Context) {
	user, err := h.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	orders, err := h.Svc.HistoryForClient(user.Name, orderFilters(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
