package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pisethdev/food-delivery-app/models"
	"github.com/pisethdev/food-delivery-app/utils"
	"gorm.io/gorm"
)

type DeliveryPartnerController struct {
	DB *gorm.DB
}

func NewDeliveryPartnerController(db *gorm.DB) *DeliveryPartnerController {
	return &DeliveryPartnerController{DB: db}
}

type deliveryPartnerPayload struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	VehicleNumber string `json:"vehicle_number"`
}

// GetAllDeliveryPartners
func (dc *DeliveryPartnerController) GetAllDeliveryPartners(c *gin.Context) {
	var partners []models.DeliveryPartner

	if err := dc.DB.Find(&partners).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of delivery partners", partners)
}

// GetDeliveryPartnerByID
func (dc *DeliveryPartnerController) GetDeliveryPartnerByID(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var partner models.DeliveryPartner
	if err := dc.DB.First(&partner, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Delivery partner not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Delivery partner found", partner)
}

// CreateDeliveryPartner
func (dc *DeliveryPartnerController) CreateDeliveryPartner(c *gin.Context) {
	var req deliveryPartnerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid json payload"))
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	partner := models.DeliveryPartner{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		VehicleNumber: req.VehicleNumber,
		IsAvailable:   true,
	}

	if err := dc.DB.Create(&partner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Delivery partner created successfully", partner)
}

type updateDeliveryPartnerRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	VehicleNumber *string `json:"vehicle_number"`
	IsAvailable   *bool   `json:"is_available"`
}

// UpdateDeliveryPartner
func (dc *DeliveryPartnerController) UpdateDeliveryPartner(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var req updateDeliveryPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid json payload"))
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var partner models.DeliveryPartner
	if err := dc.DB.First(&partner, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Delivery partner not found"))
		return
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Phone != nil {
		partner.Phone = *req.Phone
	}
	if req.Email != nil {
		partner.Email = *req.Email
	}
	if req.VehicleNumber != nil {
		partner.VehicleNumber = *req.VehicleNumber
	}
	if req.IsAvailable != nil {
		partner.IsAvailable = *req.IsAvailable
	}

	if err := dc.DB.Save(&partner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Delivery partner updated successfully", partner)
}

// DeleteDeliveryPartner
func (dc *DeliveryPartnerController) DeleteDeliveryPartner(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var partner models.DeliveryPartner
	if err := dc.DB.First(&partner, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Delivery partner not found"))
		return
	}

	if err := dc.DB.Delete(&partner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Delivery partner deleted", nil)
}
