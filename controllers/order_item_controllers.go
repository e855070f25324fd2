package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pisethdev/food-delivery-app/models"
	"github.com/pisethdev/food-delivery-app/utils"
	"gorm.io/gorm"
)

type OrderItemController struct {
	DB *gorm.DB
}

func NewOrderItemController(db *gorm.DB) *OrderItemController {
	return &OrderItemController{DB: db}
}

type orderItemPayload struct {
	OrderID    uint    `json:"order_id" validate:"required"`
	MenuItemID uint    `json:"menu_item_id" validate:"required"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	Price      float64 `json:"price" validate:"gte=0"`
}

// GetAllOrderItems
func (oic *OrderItemController) GetAllOrderItems(c *gin.Context) {
	var items []models.OrderItem

	if err := oic.DB.Preload("MenuItem").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of order items", items)
}

// GetOrderItemByID
func (oic *OrderItemController) GetOrderItemByID(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var item models.OrderItem
	if err := oic.DB.Preload("MenuItem").First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order item not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order item found", item)
}

// CreateOrderItem links an item to an existing order and menu item.
func (oic *OrderItemController) CreateOrderItem(c *gin.Context) {
	var req orderItemPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid json payload"))
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oic.DB.First(&order, req.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order not found"))
		return
	}

	var menuItem models.MenuItem
	if err := oic.DB.First(&menuItem, req.MenuItemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Menu item not found"))
		return
	}

	item := models.OrderItem{
		OrderID:    req.OrderID,
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
		Price:      req.Price,
	}

	if err := oic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order item created successfully", item)
}

type updateOrderItemRequest struct {
	Quantity *int     `json:"quantity" validate:"omitempty,gt=0"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}

// UpdateOrderItem
func (oic *OrderItemController) UpdateOrderItem(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var req updateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid json payload"))
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.OrderItem
	if err := oic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order item not found"))
		return
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Price != nil {
		item.Price = *req.Price
	}

	if err := oic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order item updated successfully", item)
}

// DeleteOrderItem
func (oic *OrderItemController) DeleteOrderItem(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var item models.OrderItem
	if err := oic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order item not found"))
		return
	}

	if err := oic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order item deleted", nil)
}
