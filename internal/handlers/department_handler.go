package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/httpresp"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type DepartmentHandler struct {
	db *gorm.DB
}

func NewDepartmentHandler(db *gorm.DB) *DepartmentHandler {
	return &DepartmentHandler{db: db}
}

type DepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *DepartmentHandler) List(c *gin.Context) {
	var departments []models.Department
	if err := h.db.Order("name ASC").Find(&departments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_departments", "Could not load departments.")
		return
	}
	httpresp.List(c, departments)
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Department name is required.")
		return
	}

	dept := models.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.db.Create(&dept).Error; err != nil {
		if httperr.IsUniqueConflict(err) {
			httperr.Conflict(c, "department_exists", "A department with that name exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_department", "Could not create department.")
		return
	}

	httpresp.Created(c, dept)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid department id.")
		return
	}

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Department name is required.")
		return
	}

	var dept models.Department
	if err := h.db.First(&dept, uint(id)).Error; err != nil {
		httperr.NotFound(c, "department_not_found", "Department not found.")
		return
	}

	dept.Name = req.Name
	dept.Description = req.Description
	if err := h.db.Save(&dept).Error; err != nil {
		httperr.Internal(c, "failed_to_update_department", "Could not update department.")
		return
	}

	httpresp.OK(c, dept)
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid department id.")
		return
	}

	if err := h.db.Delete(&models.Department{}, uint(id)).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_department", "Could not delete department.")
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
