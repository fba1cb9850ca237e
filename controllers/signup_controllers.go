package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuehub/backend/services"
	"github.com/venuehub/backend/utils"
)

type SignupController struct {
	Approvals *services.ApprovalService
}

func NewSignupController(svc *services.ApprovalService) *SignupController {
	return &SignupController{Approvals: svc}
}

// OwnerForm describes the owner signup form for the frontend.
func (sc *SignupController) OwnerForm(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Owner signup", gin.H{
		"fields": []string{"firstName", "lastName", "email", "password", "confirmPassword", "restaurantName", "phoneNumber"},
	})
}

// EmployeeForm describes the employee signup form for the frontend.
func (sc *SignupController) EmployeeForm(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Employee signup", gin.H{
		"fields": []string{"firstName", "lastName", "email", "password", "confirmPassword", "venueCode", "phoneNumber"},
	})
}

// RegisterOwner creates restaurant + owner + chat room and redirects to
// the login page.
func (sc *SignupController) RegisterOwner(c *gin.Context) {
	var req struct {
		FirstName       string `form:"firstName" json:"firstName"`
		LastName        string `form:"lastName" json:"lastName"`
		Email           string `form:"email" json:"email"`
		Password        string `form:"password" json:"password"`
		ConfirmPassword string `form:"confirmPassword" json:"confirmPassword"`
		RestaurantName  string `form:"restaurantName" json:"restaurantName"`
		PhoneNumber     string `form:"phoneNumber" json:"phoneNumber"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	_, err := sc.Approvals.RegisterOwner(services.OwnerSignup{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		RestaurantName:  req.RestaurantName,
		PhoneNumber:     req.PhoneNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

// VerifyVenue resolves a venue code before the employee fills the rest
// of the signup form. The response shape is fixed by the frontend.
func (sc *SignupController) VerifyVenue(c *gin.Context) {
	var req struct {
		VenueCode string `form:"venueCode" json:"venueCode" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "venue code is required"})
		return
	}

	restaurant, err := sc.Approvals.VerifyVenue(req.VenueCode)
	if err != nil {
		if errors.Is(err, services.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Invalid venue code"})
			return
		}
		utils.ErrorLogger.Printf("verify venue failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"restaurantName": restaurant.Name,
		"restaurantId":   restaurant.ID,
	})
}

// RegisterEmployee stores a pending account and notifies the owner.
func (sc *SignupController) RegisterEmployee(c *gin.Context) {
	var req struct {
		FirstName       string `form:"firstName" json:"firstName"`
		LastName        string `form:"lastName" json:"lastName"`
		Email           string `form:"email" json:"email"`
		Password        string `form:"password" json:"password"`
		ConfirmPassword string `form:"confirmPassword" json:"confirmPassword"`
		VenueCode       string `form:"venueCode" json:"venueCode"`
		PhoneNumber     string `form:"phoneNumber" json:"phoneNumber"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	_, restaurant, err := sc.Approvals.RegisterEmployee(services.EmployeeSignup{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		VenueCode:       req.VenueCode,
		PhoneNumber:     req.PhoneNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Your account is pending approval", gin.H{
		"restaurant_name": restaurant.Name,
	})
}

// ApproveEmployee activates a pending employee of the acting owner's
// restaurant. The owner role is enforced by middleware; the restaurant
// scope comes from the session principal.
func (sc *SignupController) ApproveEmployee(c *gin.Context) {
	restaurantID := c.GetUint("restaurant_id")
	employeeEmail := c.Param("email")

	if _, err := sc.Approvals.ApproveEmployee(restaurantID, employeeEmail); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/pending-employees")
}

// PendingEmployees lists the acting owner's accounts awaiting approval.
func (sc *SignupController) PendingEmployees(c *gin.Context) {
	restaurantID := c.GetUint("restaurant_id")

	pending, err := sc.Approvals.ListPendingEmployees(restaurantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pending employees", pending)
}
