package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/careslot/clinic-scheduler/internal/auth"
	"github.com/careslot/clinic-scheduler/internal/config"
	"github.com/careslot/clinic-scheduler/internal/models"
	"github.com/careslot/clinic-scheduler/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type PatientRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender"`
}

type DoctorRegisterRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=6"`
	Phone           string  `json:"phone"`
	DepartmentID    uint    `json:"department_id" binding:"required"`
	ExperienceYears int     `json:"experience_years"`
	Fee             float64 `json:"fee" binding:"required"`
	AdditionalInfo  string  `json:"additional_info"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Patient ---------

func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req PatientRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	var count int64
	h.db.Model(&models.Patient{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	patient := models.Patient{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Gender:       req.Gender,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_patient"})
		return
	}

	token, err := auth.NewToken(patient.ID, auth.RolePatient, h.config.JWTSecret, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    patient.ID,
			"name":  patient.Name,
			"email": patient.Email,
			"role":  auth.RolePatient,
		},
		"token": token,
	})
}

func (h *AuthHandler) LoginPatient(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var patient models.Patient
	if err := h.db.Where("email = ?", email).First(&patient).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if patient.Blocked {
		c.JSON(http.StatusForbidden, gin.H{"error": "account_blocked"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := auth.NewToken(patient.ID, auth.RolePatient, h.config.JWTSecret, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    patient.ID,
			"name":  patient.Name,
			"email": patient.Email,
			"role":  auth.RolePatient,
		},
		"token": token,
	})
}

// --------- Doctor ---------

func (h *AuthHandler) RegisterDoctor(c *gin.Context) {
	var req DoctorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	var dept models.Department
	if err := h.db.First(&dept, req.DepartmentID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department_not_found"})
		return
	}

	var count int64
	h.db.Model(&models.Doctor{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	// Doctors start unverified; an admin approves them before they are
	// listed to patients.
	doctor := models.Doctor{
		DepartmentID:    req.DepartmentID,
		Name:            req.Name,
		Email:           email,
		PasswordHash:    string(hashed),
		Phone:           req.Phone,
		ExperienceYears: req.ExperienceYears,
		Fee:             req.Fee,
		AdditionalInfo:  req.AdditionalInfo,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_doctor"})
		return
	}

	token, err := auth.NewToken(doctor.ID, auth.RoleDoctor, h.config.JWTSecret, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":       doctor.ID,
			"name":     doctor.Name,
			"email":    doctor.Email,
			"role":     auth.RoleDoctor,
			"verified": doctor.Verified,
		},
		"token": token,
	})
}

func (h *AuthHandler) LoginDoctor(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var doctor models.Doctor
	if err := h.db.Where("email = ?", email).First(&doctor).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if doctor.Blocked {
		c.JSON(http.StatusForbidden, gin.H{"error": "account_blocked"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := auth.NewToken(doctor.ID, auth.RoleDoctor, h.config.JWTSecret, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       doctor.ID,
			"name":     doctor.Name,
			"email":    doctor.Email,
			"role":     auth.RoleDoctor,
			"verified": doctor.Verified,
		},
		"token": token,
	})
}

// --------- Admin ---------

// Admin is a single env-configured account, not a database row.
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if h.config.AdminPassword == "" ||
		!strings.EqualFold(req.Email, h.config.AdminEmail) ||
		req.Password != h.config.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := auth.NewToken(1, auth.RoleAdmin, h.config.JWTSecret, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": auth.RoleAdmin})
}
