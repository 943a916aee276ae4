package controllers

import (
	"net/http"

	"sabor-backend/pkg/resp"
	"sabor-backend/services"
	"sabor-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
type LogoutRequest struct {
	TableID uint `json:"tableId"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Email, req.Password, req.Name)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := a.Svc.GetProfile(uid)
	if err != nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role})
}

// POST /auth/logout — tokens are stateless; what logout really does is
// free the table and drop the persisted cart for the ending session.
func (a *AuthController) Logout(c *gin.Context) {
	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	a.Svc.Logout(utils.CurrentUserID(c), req.TableID)
	resp.OK(c, gin.H{"loggedOut": true})
}
