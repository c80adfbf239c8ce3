package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/logger"
	"github.com/incident-report/api-go/models"
	"github.com/incident-report/api-go/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// RegisterAdmin creates a privileged account. Admin passwords are hashed the
// same way as every other credential.
func (ac *AdminController) RegisterAdmin(c *gin.Context) {
	var input struct {
		FullName    string `json:"FullName" binding:"required,max=100"`
		Email       string `json:"Email" binding:"required,email"`
		PhoneNumber string `json:"PhoneNumber" binding:"required,len=10,numeric"`
		Address     string `json:"Address" binding:"required"`
		Password    string `json:"Password" binding:"required,min=6,max=100"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	ctx := c.Request.Context()

	var existing models.Admin
	err := ac.DB.WithContext(ctx).Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Admin already exists."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("admin lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("could not hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Could not hash password."})
		return
	}

	admin := models.Admin{
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		Password:    string(hashed),
		Role:        models.RoleAdmin,
	}

	if err := ac.DB.WithContext(ctx).Create(&admin).Error; err != nil {
		logger.Error("admin insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Admin registered successfully."})
}

func (ac *AdminController) GetAdmins(c *gin.Context) {
	admins := []models.Admin{}
	if err := ac.DB.WithContext(c.Request.Context()).Find(&admins).Error; err != nil {
		logger.Error("admin list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Admins retrieved successfully.", Data: admins})
}

func (ac *AdminController) GetAdmin(c *gin.Context) {
	var admin models.Admin
	err := ac.DB.WithContext(c.Request.Context()).First(&admin, c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, Response{Message: "Admin not found."})
		return
	}
	if err != nil {
		logger.Error("admin lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Admin retrieved successfully.", Data: admin})
}

func (ac *AdminController) UpdateAdmin(c *gin.Context) {
	var input struct {
		FullName    string `json:"FullName" binding:"required,max=100"`
		PhoneNumber string `json:"PhoneNumber" binding:"required,len=10,numeric"`
		Address     string `json:"Address" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	result := ac.DB.WithContext(c.Request.Context()).Model(&models.Admin{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"full_name":    input.FullName,
			"phone_number": input.PhoneNumber,
			"address":      input.Address,
		})
	if result.Error != nil {
		logger.Error("admin update failed", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Message: "Admin not found."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Admin updated successfully."})
}

func (ac *AdminController) DeleteAdmin(c *gin.Context) {
	result := ac.DB.WithContext(c.Request.Context()).Delete(&models.Admin{}, c.Param("id"))
	if result.Error != nil {
		logger.Error("admin delete failed", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Message: "Admin not found."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Admin deleted successfully."})
}
