package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/venuehub/backend/models"
	"github.com/venuehub/backend/utils"
)

// customersPerPage matches the original list page size.
const customersPerPage = 2

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// List returns all customers.
func (cc *CustomerController) List(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Order("id").Find(&customers).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// Page returns one page of customers.
func (cc *CustomerController) Page(c *gin.Context) {
	page, _ := strconv.Atoi(c.Param("page"))
	if page < 1 {
		page = 1
	}

	var customers []models.Customer
	err := cc.DB.Order("id").
		Offset((page - 1) * customersPerPage).
		Limit(customersPerPage).
		Find(&customers).Error
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// Detail shows one customer.
func (cc *CustomerController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// EditForm returns the customer being edited.
func (cc *CustomerController) EditForm(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Edit customer", customer)
}

// Update changes a customer's email and phone number.
func (cc *CustomerController) Update(c *gin.Context) {
	var req struct {
		ID          uint   `form:"id" json:"id" binding:"required"`
		Email       string `form:"email" json:"email"`
		PhoneNumber string `form:"phone_number" json:"phone_number"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, req.ID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	customer.Email = req.Email
	customer.PhoneNumber = req.PhoneNumber
	if err := cc.DB.Save(&customer).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}

// Delete removes a customer by the docid query parameter.
func (cc *CustomerController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("docid"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.DB.Delete(&models.Customer{}, id).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"customer_id": id})
}
