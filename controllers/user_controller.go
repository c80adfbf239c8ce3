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

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (uc *UserController) RegisterUser(c *gin.Context) {
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

	// Uniqueness is pre-checked so a duplicate gets a distinct error instead
	// of a write failure.
	var existing models.User
	err := uc.DB.WithContext(ctx).Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, Response{Message: "User already exists."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("could not hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Could not hash password."})
		return
	}

	user := models.User{
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		Password:    string(hashed),
		Role:        models.RoleUser,
	}

	if err := uc.DB.WithContext(ctx).Create(&user).Error; err != nil {
		logger.Error("user insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "User registered successfully."})
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users := []models.User{}
	if err := uc.DB.WithContext(c.Request.Context()).Find(&users).Error; err != nil {
		logger.Error("user list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Users retrieved successfully.", Data: users})
}

func (uc *UserController) GetUser(c *gin.Context) {
	var user models.User
	err := uc.DB.WithContext(c.Request.Context()).First(&user, c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, Response{Message: "User not found."})
		return
	}
	if err != nil {
		logger.Error("user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "User retrieved successfully.", Data: user})
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	var input struct {
		FullName    string `json:"FullName" binding:"required,max=100"`
		PhoneNumber string `json:"PhoneNumber" binding:"required,len=10,numeric"`
		Address     string `json:"Address" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	result := uc.DB.WithContext(c.Request.Context()).Model(&models.User{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"full_name":    input.FullName,
			"phone_number": input.PhoneNumber,
			"address":      input.Address,
		})
	if result.Error != nil {
		logger.Error("user update failed", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Message: "User not found."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "User updated successfully."})
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	result := uc.DB.WithContext(c.Request.Context()).Delete(&models.User{}, c.Param("id"))
	if result.Error != nil {
		logger.Error("user delete failed", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Message: "User not found."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "User deleted successfully."})
}
