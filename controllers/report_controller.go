package controllers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/logger"
	"github.com/incident-report/api-go/models"
	"github.com/incident-report/api-go/storage"
	"github.com/incident-report/api-go/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReportController struct {
	DB    *gorm.DB
	Store storage.Store
}

func NewReportController(db *gorm.DB, store storage.Store) *ReportController {
	return &ReportController{DB: db, Store: store}
}

type reportInput struct {
	UserID        *uint  `form:"UserId" json:"UserId"`
	FullName      string `form:"FullName" json:"FullName" binding:"required,max=100"`
	MobileNumber  string `form:"MobileNumber" json:"MobileNumber" binding:"required,len=10,numeric"`
	IncidentType  string `form:"IncidentType" json:"IncidentType" binding:"required"`
	Description   string `form:"Description" json:"Description" binding:"required"`
	Address       string `form:"Address" json:"Address" binding:"required"`
	PoliceStation string `form:"PoliceStation" json:"PoliceStation" binding:"required"`
}

// CreateReport accepts a multipart form with the report fields and optional
// evidence files. All extensions are checked before anything is written, so
// a disallowed file rejects the whole request with no partial state.
func (rc *ReportController) CreateReport(c *gin.Context) {
	var input reportInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["Evidence"]
	}

	for _, fh := range files {
		if !storage.IsAllowedExtension(fh.Filename) {
			c.JSON(http.StatusBadRequest, Response{
				Message: fmt.Sprintf("Invalid file type: %s. Only JPG, PNG, or video files are allowed.", fh.Filename),
			})
			return
		}
	}

	ctx := c.Request.Context()

	// Store the evidence first; the report row plus its evidence rows are
	// then inserted in one transaction.
	var evidence []models.EvidenceFile
	var storedPaths []string
	for i, fh := range files {
		src, err := fh.Open()
		if err != nil {
			rc.cleanupStored(storedPaths)
			logger.Error("could not read uploaded file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, Response{Message: "Could not store evidence file."})
			return
		}

		path, err := rc.Store.Save(ctx, storage.EvidenceKey(fh.Filename), src)
		src.Close()
		if err != nil {
			rc.cleanupStored(storedPaths)
			logger.Error("could not store evidence file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, Response{Message: "Could not store evidence file."})
			return
		}

		storedPaths = append(storedPaths, path)
		evidence = append(evidence, models.EvidenceFile{FilePath: path, OrderIndex: i})
	}

	report := models.PoliceReport{
		UserID:        input.UserID,
		FullName:      input.FullName,
		MobileNumber:  input.MobileNumber,
		IncidentType:  input.IncidentType,
		Timestamp:     time.Now(), // server-assigned; client timestamps are ignored
		Description:   input.Description,
		Address:       input.Address,
		PoliceStation: input.PoliceStation,
		Status:        models.StatusInProgress,
		Evidence:      evidence,
	}

	if err := rc.DB.WithContext(ctx).Create(&report).Error; err != nil {
		rc.cleanupStored(storedPaths)
		logger.Error("report insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Report submitted successfully.", Data: report})
}

// cleanupStored removes already-stored evidence after a failed submission.
// Best effort; a leftover file is logged, not surfaced.
func (rc *ReportController) cleanupStored(paths []string) {
	ctx := context.Background()
	for _, p := range paths {
		if err := rc.Store.Delete(ctx, p); err != nil {
			logger.Warn("could not remove orphaned evidence file", zap.String("path", p), zap.Error(err))
		}
	}
}

func (rc *ReportController) GetReports(c *gin.Context) {
	reports := []models.PoliceReport{}
	err := rc.DB.WithContext(c.Request.Context()).
		Preload("Evidence", orderedEvidence).
		Find(&reports).Error
	if err != nil {
		logger.Error("report list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Reports retrieved successfully.", Data: reports})
}

func (rc *ReportController) GetReportsByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid user id."})
		return
	}

	reports := []models.PoliceReport{}
	err = rc.DB.WithContext(c.Request.Context()).
		Preload("Evidence", orderedEvidence).
		Where("user_id = ?", userID).
		Find(&reports).Error
	if err != nil {
		logger.Error("report list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	// No matches is an empty list, not a 404.
	c.JSON(http.StatusOK, Response{Message: "Reports retrieved successfully.", Data: reports})
}

func (rc *ReportController) GetReportsByStation(c *gin.Context) {
	reports := []models.PoliceReport{}
	err := rc.DB.WithContext(c.Request.Context()).
		Preload("Evidence", orderedEvidence).
		Where("police_station = ?", c.Param("name")).
		Find(&reports).Error
	if err != nil {
		logger.Error("report list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Reports retrieved successfully.", Data: reports})
}

// UpdateReport replaces the report's mutable fields. Status changes only
// when the request includes one; evidence attachments are not touched.
func (rc *ReportController) UpdateReport(c *gin.Context) {
	var input struct {
		reportInput
		Status *string `json:"Status" binding:"omitempty,oneof='In Progress' Solved"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	updates := map[string]interface{}{
		"full_name":      input.FullName,
		"mobile_number":  input.MobileNumber,
		"incident_type":  input.IncidentType,
		"description":    input.Description,
		"address":        input.Address,
		"police_station": input.PoliceStation,
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	result := rc.DB.WithContext(c.Request.Context()).Model(&models.PoliceReport{}).
		Where("id = ?", c.Param("id")).
		Updates(updates)
	if result.Error != nil {
		logger.Error("report update failed", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Message: "Report not found."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Report updated successfully."})
}

// MarkAsSolved transitions the report to Solved regardless of its current
// state. Calling it twice leaves the same terminal state.
func (rc *ReportController) MarkAsSolved(c *gin.Context) {
	result := rc.DB.WithContext(c.Request.Context()).Model(&models.PoliceReport{}).
		Where("id = ?", c.Param("id")).
		Update("status", models.StatusSolved)
	if result.Error != nil {
		logger.Error("report status update failed", zap.Error(result.Error))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Message: "Report not found."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Report marked as solved."})
}

// DeleteReport hard-deletes the report and its evidence rows in one
// transaction.
func (rc *ReportController) DeleteReport(c *gin.Context) {
	id := c.Param("id")

	var rowsAffected int64
	err := rc.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("police_report_id = ?", id).Delete(&models.EvidenceFile{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PoliceReport{}, id)
		rowsAffected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		logger.Error("report delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Message: "Something went wrong. Please try again."})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Message: "Report not found."})
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Report deleted successfully."})
}

func orderedEvidence(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC")
}
