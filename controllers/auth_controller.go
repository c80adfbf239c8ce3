package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/config"
	"github.com/incident-report/api-go/logger"
	"github.com/incident-report/api-go/middleware"
	"github.com/incident-report/api-go/models"
	"github.com/incident-report/api-go/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const authCookieTTL = 24 * time.Hour

type AuthController struct {
	DB           *gorm.DB
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:           db,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

// accountRecord is the identity produced by a successful credential lookup.
// Latitude/Longitude are set only for help centers.
type accountRecord struct {
	ID          uint
	FullName    string
	Email       string
	PhoneNumber string
	Address     string
	Role        string
	Password    string
	Latitude    *float64
	Longitude   *float64
}

// findAccount probes Users, then HelpCenters, then Admins for a row whose
// email matches. The first match wins and the remaining tables are never
// consulted, even if the password check later fails.
func (ac *AuthController) findAccount(ctx context.Context, email string) (*accountRecord, error) {
	var user models.User
	err := ac.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return &accountRecord{
			ID:          user.ID,
			FullName:    user.FullName,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			Address:     user.Address,
			Role:        user.Role,
			Password:    user.Password,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var center models.HelpCenter
	err = ac.DB.WithContext(ctx).Where("email = ?", email).First(&center).Error
	if err == nil {
		return &accountRecord{
			ID:          center.ID,
			FullName:    center.FullName,
			Email:       center.Email,
			PhoneNumber: center.PhoneNumber,
			Address:     center.Address,
			Role:        center.Role,
			Password:    center.Password,
			Latitude:    &center.Latitude,
			Longitude:   &center.Longitude,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var admin models.Admin
	err = ac.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err == nil {
		return &accountRecord{
			ID:          admin.ID,
			FullName:    admin.FullName,
			Email:       admin.Email,
			PhoneNumber: admin.PhoneNumber,
			Address:     admin.Address,
			Role:        admin.Role,
			Password:    admin.Password,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, nil
}

// userDetails shapes the identity record returned to clients. The stored
// password never leaves the server.
func (a *accountRecord) userDetails() gin.H {
	details := gin.H{
		"id":           a.ID,
		"full_name":    a.FullName,
		"email":        a.Email,
		"phone_number": a.PhoneNumber,
		"address":      a.Address,
		"role":         a.Role,
	}

	if a.Role == models.RoleHelpCenter && a.Latitude != nil && a.Longitude != nil {
		details["latitude"] = *a.Latitude
		details["longitude"] = *a.Longitude
	}

	return details
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"Email" binding:"required,email"`
		Password string `json:"Password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	account, err := ac.findAccount(c.Request.Context(), input.Email)
	if err != nil {
		logger.Error("login lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	if account == nil {
		c.JSON(http.StatusBadRequest, Response{Message: "User not found."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid password."})
		return
	}

	if err := ac.issueAuthCookie(c, account); err != nil {
		logger.Error("could not sign auth token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Could not establish session."})
		return
	}

	c.JSON(http.StatusOK, Response{
		Message:     "Login successful. Role: " + account.Role,
		UserDetails: account.userDetails(),
	})
}

// issueAuthCookie signs a claims token for the account and sets it as the
// auth cookie. There is no server-side session state.
func (ac *AuthController) issueAuthCookie(c *gin.Context, account *accountRecord) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   account.ID,
		"email":     account.Email,
		"role":      account.Role,
		"full_name": account.FullName,
		"exp":       time.Now().Add(authCookieTTL).Unix(),
	})

	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return err
	}

	c.SetCookie(middleware.AuthCookieName, signed, int(authCookieTTL.Seconds()), "/", "", false, true)
	return nil
}

func (ac *AuthController) Logout(c *gin.Context) {
	// Expire the claims cookie; there is nothing server-side to clear.
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, Response{Message: "Logged out successfully."})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, Response{Message: "Authentication required."})
		return
	}

	account, err := ac.findAccountByRole(c.Request.Context(), claims)
	if err != nil {
		logger.Error("profile lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}
	if account == nil {
		c.JSON(http.StatusNotFound, Response{Message: "User not found."})
		return
	}

	c.JSON(http.StatusOK, Response{
		Message:     "Profile retrieved successfully.",
		UserDetails: account.userDetails(),
	})
}

// findAccountByRole reloads the profile row backing the session claims from
// the table the role names.
func (ac *AuthController) findAccountByRole(ctx context.Context, claims *utils.UserClaims) (*accountRecord, error) {
	switch claims.Role {
	case models.RoleHelpCenter:
		var center models.HelpCenter
		if err := ac.DB.WithContext(ctx).First(&center, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &accountRecord{
			ID:          center.ID,
			FullName:    center.FullName,
			Email:       center.Email,
			PhoneNumber: center.PhoneNumber,
			Address:     center.Address,
			Role:        center.Role,
			Latitude:    &center.Latitude,
			Longitude:   &center.Longitude,
		}, nil
	case models.RoleAdmin:
		var admin models.Admin
		if err := ac.DB.WithContext(ctx).First(&admin, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &accountRecord{
			ID:          admin.ID,
			FullName:    admin.FullName,
			Email:       admin.Email,
			PhoneNumber: admin.PhoneNumber,
			Address:     admin.Address,
			Role:        admin.Role,
		}, nil
	default:
		var user models.User
		if err := ac.DB.WithContext(ctx).First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &accountRecord{
			ID:          user.ID,
			FullName:    user.FullName,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			Address:     user.Address,
			Role:        user.Role,
		}, nil
	}
}

// GoogleSignin accepts any one of the credential shapes Google clients
// produce: an ID token, an OAuth authorization code, or an access token.
func (ac *AuthController) GoogleSignin(c *gin.Context) {
	var input struct {
		IDToken     string `json:"IdToken"`
		Code        string `json:"Code"`
		AccessToken string `json:"AccessToken"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	userInfo, err := ac.googleUser(c.Request.Context(), input.IDToken, input.Code, input.AccessToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid Google credential."})
		return
	}

	var user models.User
	err = ac.DB.WithContext(c.Request.Context()).Where("email = ?", userInfo.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, Response{Message: "User does not exist. Please sign up first."})
		return
	}
	if err != nil {
		logger.Error("google signin lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	account := &accountRecord{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		Role:        user.Role,
	}

	if err := ac.issueAuthCookie(c, account); err != nil {
		logger.Error("could not sign auth token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Could not establish session."})
		return
	}

	c.JSON(http.StatusOK, Response{
		Message:     "Sign-in successful.",
		UserDetails: account.userDetails(),
	})
}

// googleUser resolves whichever Google credential the client sent into a
// verified profile. An authorization code is exchanged for an access token
// first.
func (ac *AuthController) googleUser(ctx context.Context, idToken, code, accessToken string) (*config.GoogleUserInfo, error) {
	switch {
	case idToken != "":
		return ac.GoogleConfig.VerifyIDToken(idToken)
	case code != "":
		token, err := ac.GoogleConfig.ExchangeCode(ctx, code)
		if err != nil {
			return nil, err
		}
		return ac.GoogleConfig.GetUserInfo(token.AccessToken)
	case accessToken != "":
		return ac.GoogleConfig.GetUserInfo(accessToken)
	default:
		return nil, errors.New("missing google credential")
	}
}

func (ac *AuthController) GoogleSignup(c *gin.Context) {
	var input struct {
		IDToken     string `json:"IdToken" binding:"required"`
		FullName    string `json:"FullName" binding:"required,max=100"`
		PhoneNumber string `json:"PhoneNumber" binding:"required,len=10,numeric"`
		Address     string `json:"Address" binding:"required"`
		Password    string `json:"Password" binding:"required,min=6,max=100"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	userInfo, err := ac.GoogleConfig.VerifyIDToken(input.IDToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid Google ID token."})
		return
	}

	ctx := c.Request.Context()

	var existing models.User
	err = ac.DB.WithContext(ctx).Where("email = ?", userInfo.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, Response{Message: "User already exists. Please sign in instead."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("google signup lookup failed", zap.Error(err))
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
		Email:       userInfo.Email, // use the Google-verified email
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		Password:    string(hashed),
		Role:        models.RoleUser,
	}

	if err := ac.DB.WithContext(ctx).Create(&user).Error; err != nil {
		logger.Error("google signup insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Sign-up successful. You can now sign in."})
}
