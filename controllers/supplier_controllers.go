package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/venuehub/backend/models"
	"github.com/venuehub/backend/utils"
)

type SupplierController struct {
	DB *gorm.DB
}

func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db}
}

// OrderList returns all suppliers for the order page.
func (sc *SupplierController) OrderList(c *gin.Context) {
	var suppliers []models.Supplier
	if err := sc.DB.Order("name").Find(&suppliers).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Suppliers", suppliers)
}
