package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/controllers"
)

func SetupReportRoutes(r *gin.Engine, reportController *controllers.ReportController) {
	r.POST("/createreport", reportController.CreateReport)
	r.GET("/getreports", reportController.GetReports)
	r.GET("/getreports/user/:userId", reportController.GetReportsByUser)
	r.GET("/getreports/helpcenter/:name", reportController.GetReportsByStation)
	r.PUT("/updatereport/:id", reportController.UpdateReport)
	r.POST("/markassolved/:id", reportController.MarkAsSolved)
	r.DELETE("/deletereport/:id", reportController.DeleteReport)
}
