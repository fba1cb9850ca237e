package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuehub/backend/services"
	"github.com/venuehub/backend/utils"
)

type AuthController struct {
	Approvals *services.ApprovalService
}

func NewAuthController(svc *services.ApprovalService) *AuthController {
	return &AuthController{Approvals: svc}
}

// Login verifies credentials, sets the session cookie and redirects to
// the customer list. Pending and deactivated accounts get a specific
// rejection; everything else is the generic invalid-credentials reply.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `form:"email" json:"email" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := ac.Approvals.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPendingApproval),
			errors.Is(err, services.ErrDeactivated),
			errors.Is(err, services.ErrInvalidCredentials):
			utils.RespondError(c, http.StatusUnauthorized, err)
		default:
			respondServiceError(c, err)
		}
		return
	}

	var restaurantID uint
	if user.RestaurantID != nil {
		restaurantID = *user.RestaurantID
	}
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, restaurantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie(utils.SessionCookie, token, utils.SessionMaxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/list")
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

// LoginForm describes the login form for the frontend.
func (ac *AuthController) LoginForm(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Login", gin.H{
		"fields": []string{"email", "password"},
	})
}
