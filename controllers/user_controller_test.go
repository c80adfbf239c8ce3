package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/models"
	"gorm.io/gorm"
)

func newAccountRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	userController := NewUserController(db)
	helpCenterController := NewHelpCenterController(db)
	adminController := NewAdminController(db)

	r := gin.New()
	r.POST("/registeruser", userController.RegisterUser)
	r.POST("/registerhelpcenter", helpCenterController.RegisterHelpCenter)
	r.POST("/registeradmin", adminController.RegisterAdmin)
	r.GET("/users", userController.GetUsers)
	r.GET("/user/:id", userController.GetUser)
	r.PUT("/user/:id", userController.UpdateUser)
	r.DELETE("/user/:id", userController.DeleteUser)
	return r
}

func TestRegisterUserValidationFailure(t *testing.T) {
	db := setupTestDB(t)
	r := newAccountRouter(t, db)

	w := performJSON(t, r, http.MethodPost, "/registeruser", map[string]string{
		"FullName": "A",
		"Email":    "not-an-email",
		// PhoneNumber, Address, Password missing
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	env := decodeEnvelope(t, w)
	if env.Message != "Validation failed." {
		t.Errorf("unexpected message: %q", env.Message)
	}
	if len(env.Errors) == 0 {
		t.Error("expected per-field error messages")
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("validation failure must not write; found %d rows", count)
	}
}

func TestRegisterUserRejectsBadPhone(t *testing.T) {
	db := setupTestDB(t)
	r := newAccountRouter(t, db)

	w := performJSON(t, r, http.MethodPost, "/registeruser", map[string]string{
		"FullName":    "A",
		"Email":       "a@x.com",
		"PhoneNumber": "12345", // not 10 digits
		"Address":     "1 St",
		"Password":    "secret1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := newAccountRouter(t, db)

	payload := map[string]string{
		"FullName":    "A",
		"Email":       "a@x.com",
		"PhoneNumber": "5551234567",
		"Address":     "1 St",
		"Password":    "secret1",
	}

	if w := performJSON(t, r, http.MethodPost, "/registeruser", payload); w.Code != http.StatusOK {
		t.Fatalf("first registration failed: %d", w.Code)
	}

	w := performJSON(t, r, http.MethodPost, "/registeruser", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "User already exists." {
		t.Errorf("unexpected message: %q", env.Message)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected a single row, found %d", count)
	}
}

func TestRegisterHelpCenterConfirmPassword(t *testing.T) {
	db := setupTestDB(t)
	r := newAccountRouter(t, db)

	w := performJSON(t, r, http.MethodPost, "/registerhelpcenter", map[string]interface{}{
		"FullName":        "Central Station",
		"Address":         "2 Ave",
		"Email":           "central@x.com",
		"PhoneNumber":     "5551112222",
		"Password":        "secret1",
		"ConfirmPassword": "different",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on password mismatch, got %d", w.Code)
	}

	env := decodeEnvelope(t, w)
	found := false
	for _, msg := range env.Errors {
		if msg == "The password and confirmation password do not match." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a confirmation mismatch message, got %v", env.Errors)
	}
}

func TestRegisterAdminStoresHash(t *testing.T) {
	db := setupTestDB(t)
	r := newAccountRouter(t, db)

	w := performJSON(t, r, http.MethodPost, "/registeradmin", map[string]string{
		"FullName":    "Root",
		"Email":       "root@x.com",
		"PhoneNumber": "5550000000",
		"Address":     "HQ",
		"Password":    "hunter22",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var admin models.Admin
	if err := db.Where("email = ?", "root@x.com").First(&admin).Error; err != nil {
		t.Fatalf("stored admin not found: %v", err)
	}
	if admin.Password == "hunter22" {
		t.Fatal("admin password stored in plaintext")
	}
}

func TestGetUserOmitsPassword(t *testing.T) {
	db := setupTestDB(t)
	r := newAccountRouter(t, db)

	seedUser(t, db, "a@x.com")

	w := performRequest(t, r, http.MethodGet, "/user/1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "Password") {
		t.Errorf("response leaks the password column: %s", body)
	}
}

func TestUpdateUserNotFoundVsValidation(t *testing.T) {
	db := setupTestDB(t)
	r := newAccountRouter(t, db)

	// Structured validation failure first
	w := performJSON(t, r, http.MethodPut, "/user/999", map[string]string{"FullName": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", w.Code)
	}

	// Valid payload against a missing row is a distinct not-found
	w = performJSON(t, r, http.MethodPut, "/user/999", map[string]string{
		"FullName":    "B",
		"PhoneNumber": "5559876543",
		"Address":     "2 St",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing row, got %d", w.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	r := newAccountRouter(t, db)

	seedUser(t, db, "a@x.com")

	w := performRequest(t, r, http.MethodDelete, "/user/1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = performRequest(t, r, http.MethodDelete, "/user/1", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", w.Code)
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		FullName:    "A",
		Email:       email,
		PhoneNumber: "5551234567",
		Address:     "1 St",
		Password:    "$2a$10$abcdefghijklmnopqrstuvabcdefghijklmnopqrstuvabcdefghi",
		Role:        models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("could not seed user: %v", err)
	}
	return user
}
