package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/delegends/barber-api/internal/httpresp"
	"github.com/delegends/barber-api/internal/models"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

// --------- Requests ---------

type CreateSalonRequest struct {
	Name         string            `json:"name" binding:"required"`
	Description  string            `json:"description"`
	Address      string            `json:"address"`
	City         string            `json:"city"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	Image        string            `json:"image"`
	Rating       float64           `json:"rating"`
	Services     models.StringList `json:"services"`
	OpeningHours models.StringMap  `json:"openingHours"`
}

type UpdateSalonRequest struct {
	Name         *string            `json:"name,omitempty"`
	Description  *string            `json:"description,omitempty"`
	Address      *string            `json:"address,omitempty"`
	City         *string            `json:"city,omitempty"`
	Phone        *string            `json:"phone,omitempty"`
	Email        *string            `json:"email,omitempty"`
	Image        *string            `json:"image,omitempty"`
	Rating       *float64           `json:"rating,omitempty"`
	Services     *models.StringList `json:"services,omitempty"`
	OpeningHours *models.StringMap  `json:"openingHours,omitempty"`
}

// --------- Handlers ---------

func (h *SalonHandler) List(c *gin.Context) {
	var salons []models.Salon
	if err := h.db.Order("id ASC").Find(&salons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_salons"})
		return
	}

	httpresp.OK(c, salons)
}

func (h *SalonHandler) Get(c *gin.Context) {
	var salon models.Salon
	if err := h.db.First(&salon, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "salon_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_salon"})
		return
	}

	httpresp.OK(c, salon)
}

func (h *SalonHandler) Create(c *gin.Context) {
	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	salon := models.Salon{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		Phone:        req.Phone,
		Email:        req.Email,
		Image:        req.Image,
		Rating:       req.Rating,
		Services:     req.Services,
		OpeningHours: req.OpeningHours,
	}

	if err := h.db.Create(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_salon"})
		return
	}

	httpresp.Created(c, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	var salon models.Salon
	if err := h.db.First(&salon, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "salon_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_salon"})
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Description != nil {
		salon.Description = *req.Description
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.City != nil {
		salon.City = *req.City
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Email != nil {
		salon.Email = *req.Email
	}
	if req.Image != nil {
		salon.Image = *req.Image
	}
	if req.Rating != nil {
		salon.Rating = *req.Rating
	}
	if req.Services != nil {
		salon.Services = *req.Services
	}
	if req.OpeningHours != nil {
		salon.OpeningHours = *req.OpeningHours
	}

	if err := h.db.Save(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_salon"})
		return
	}

	httpresp.OK(c, salon)
}

func (h *SalonHandler) Delete(c *gin.Context) {
	var salon models.Salon
	if err := h.db.First(&salon, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "salon_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_salon"})
		return
	}

	if err := h.db.Delete(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_salon"})
		return
	}

	httpresp.Message(c, "Salon deleted successfully")
}
