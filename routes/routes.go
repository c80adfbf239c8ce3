package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/config"
	"github.com/incident-report/api-go/controllers"
	"github.com/incident-report/api-go/middleware"
	"github.com/incident-report/api-go/storage"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	helpCenterController := controllers.NewHelpCenterController(db)
	adminController := controllers.NewAdminController(db)
	reportController := controllers.NewReportController(db, newEvidenceStore())
	locationController := controllers.NewLocationController(config.GetGeocodeConfig())

	// Public routes
	r.POST("/login", authController.Login)
	r.POST("/logout", authController.Logout)
	r.POST("/google/signin", authController.GoogleSignin)
	r.POST("/google/signup", authController.GoogleSignup)
	r.GET("/getlocation", locationController.GetLocation)

	SetupAccountRoutes(r, userController, helpCenterController, adminController)
	SetupReportRoutes(r, reportController)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authController.GetProfile)
	}
}

// newEvidenceStore picks the evidence backend from configuration. Local disk
// is the default; an S3-compatible bucket can be selected instead.
func newEvidenceStore() storage.Store {
	cfg := config.GetStorageConfig()
	if cfg.Backend == "s3" {
		return storage.NewS3Store(config.GetS3Config())
	}
	return storage.NewLocalStore(cfg.EvidenceDir)
}
