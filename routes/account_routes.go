package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/controllers"
)

func SetupAccountRoutes(r *gin.Engine, userController *controllers.UserController, helpCenterController *controllers.HelpCenterController, adminController *controllers.AdminController) {
	r.POST("/registeruser", userController.RegisterUser)
	r.POST("/registerhelpcenter", helpCenterController.RegisterHelpCenter)
	r.POST("/registeradmin", adminController.RegisterAdmin)

	r.GET("/users", userController.GetUsers)
	r.GET("/user/:id", userController.GetUser)
	r.PUT("/user/:id", userController.UpdateUser)
	r.DELETE("/user/:id", userController.DeleteUser)

	r.GET("/helpcenters", helpCenterController.GetHelpCenters)
	r.GET("/helpcenter/:id", helpCenterController.GetHelpCenter)
	r.PUT("/helpcenter/:id", helpCenterController.UpdateHelpCenter)
	r.DELETE("/helpcenter/:id", helpCenterController.DeleteHelpCenter)

	r.GET("/admins", adminController.GetAdmins)
	r.GET("/admin/:id", adminController.GetAdmin)
	r.PUT("/admin/:id", adminController.UpdateAdmin)
	r.DELETE("/admin/:id", adminController.DeleteAdmin)
}
