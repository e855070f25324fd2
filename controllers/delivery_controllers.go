package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pisethdev/food-delivery-app/models"
	"github.com/pisethdev/food-delivery-app/utils"
)

type createDeliveryRequest struct {
	OrderID           uint `json:"order_id" validate:"required"`
	DeliveryPartnerID uint `json:"delivery_partner_id" validate:"required"`
}

// GetDeliveries
func GetDeliveries(c *gin.Context) {
	db := utils.GetDB()

	var deliveries []models.Delivery
	if err := db.Preload("Order").Preload("DeliveryPartner").Find(&deliveries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of deliveries", deliveries)
}

// GetDelivery
func GetDelivery(c *gin.Context) {
	db := utils.GetDB()

	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var delivery models.Delivery
	if err := db.Preload("Order").Preload("DeliveryPartner").First(&delivery, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Delivery not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Delivery found", delivery)
}

// CreateDelivery links an order to a delivery partner.
func CreateDelivery(c *gin.Context) {
	db := utils.GetDB()

	var req createDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid json payload"))
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := db.First(&order, req.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order not found"))
		return
	}

	var partner models.DeliveryPartner
	if err := db.First(&partner, req.DeliveryPartnerID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Delivery partner not found"))
		return
	}

	delivery := models.Delivery{
		OrderID:           req.OrderID,
		DeliveryPartnerID: req.DeliveryPartnerID,
		Status:            "Assigned",
	}

	if err := db.Create(&delivery).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Delivery created successfully", delivery)
}

type updateDeliveryRequest struct {
	Status        *string    `json:"status"`
	PickupTime    *time.Time `json:"pickup_time"`
	DeliveredTime *time.Time `json:"delivered_time"`
}

// UpdateDelivery
func UpdateDelivery(c *gin.Context) {
	db := utils.GetDB()

	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var req updateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid json payload"))
		return
	}

	var delivery models.Delivery
	if err := db.First(&delivery, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Delivery not found"))
		return
	}

	if req.Status != nil {
		delivery.Status = *req.Status
	}
	if req.PickupTime != nil {
		delivery.PickupTime = req.PickupTime
	}
	if req.DeliveredTime != nil {
		delivery.DeliveredTime = req.DeliveredTime
	}

	if err := db.Save(&delivery).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Delivery updated successfully", delivery)
}

// DeleteDelivery
func DeleteDelivery(c *gin.Context) {
	db := utils.GetDB()

	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var delivery models.Delivery
	if err := db.First(&delivery, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Delivery not found"))
		return
	}

	if err := db.Delete(&delivery).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Delivery deleted", nil)
}
