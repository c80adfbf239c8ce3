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

type HelpCenterController struct {
	DB *gorm.DB
}

func NewHelpCenterController(db *gorm.DB) *HelpCenterController {
	return &HelpCenterController{DB: db}
}

func (hc *HelpCenterController) RegisterHelpCenter(c *gin.Context) {
	var input struct {
		FullName        string  `json:"FullName" binding:"required,max=100"`
		Address         string  `json:"Address" binding:"required,max=100"`
		Email           string  `json:"Email" binding:"required,email"`
		PhoneNumber     string  `json:"PhoneNumber" binding:"required,len=10,numeric"`
		Password        string  `json:"Password" binding:"required,min=6,max=100"`
		ConfirmPassword string  `json:"ConfirmPassword" binding:"required,eqfield=Password"`
		Latitude        float64 `json:"Latitude"`
		Longitude       float64 `json:"Longitude"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	ctx := c.Request.Context()

	var existing models.HelpCenter
	err := hc.DB.WithContext(ctx).Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Help center already exists."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("help center lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("could not hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Could not hash password."})
		return
	}

	center := models.HelpCenter{
		FullName:    input.FullName,
		Address:     input.Address,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    string(hashed),
		Role:        models.RoleHelpCenter,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}

	if err := hc.DB.WithContext(ctx).Create(&center).Error; err != nil {
		logger.Error("help center insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Help center registered successfully."})
}

// GetHelpCenters lists all help centers sorted by name.
func (hc *HelpCenterController) GetHelpCenters(c *gin.Context) {
	centers := []models.HelpCenter{}
	if err := hc.DB.WithContext(c.Request.Context()).Order("full_name asc").Find(&centers).Error; err != nil {
		logger.Error("help center list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Help centers retrieved successfully.", Data: centers})
}

func (hc *HelpCenterController) GetHelpCenter(c *gin.Context) {
	var center models.HelpCenter
	err := hc.DB.WithContext(c.Request.Context()).First(&center, c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, Response{Message: "Help center not found."})
		return
	}
	if err != nil {
		logger.Error("help center lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Help center retrieved successfully.", Data: center})
}

func (hc *HelpCenterController) UpdateHelpCenter(c *gin.Context) {
	var input struct {
		FullName    string  `json:"FullName" binding:"required,max=100"`
		Address     string  `json:"Address" binding:"required,max=100"`
		Email       string  `json:"Email" binding:"required,email"`
		PhoneNumber string  `json:"PhoneNumber" binding:"required,len=10,numeric"`
		Latitude    float64 `json:"Latitude"`
		Longitude   float64 `json:"Longitude"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	result := hc.DB.WithContext(c.Request.Context()).Model(&models.HelpCenter{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"full_name":    input.FullName,
			"address":      input.Address,
			"email":        input.Email,
			"phone_number": input.PhoneNumber,
			"latitude":     input.Latitude,
			"longitude":    input.Longitude,
		})
	if result.Error != nil {
		logger.Error("help center update failed", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Message: "Help center not found."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Help center updated successfully."})
}

func (hc *HelpCenterController) DeleteHelpCenter(c *gin.Context) {
	result := hc.DB.WithContext(c.Request.Context()).Delete(&models.HelpCenter{}, c.Param("id"))
	if result.Error != nil {
		logger.Error("help center delete failed", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Message: "Help center not found."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Help center deleted successfully."})
}
