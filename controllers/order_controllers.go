package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pisethdev/food-delivery-app/models"
	"github.com/pisethdev/food-delivery-app/utils"
	"gorm.io/gorm"
)

var validate = validator.New()

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type orderItemRequest struct {
	MenuItemID uint    `json:"menu_item_id" validate:"required"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	Price      float64 `json:"price" validate:"gte=0"`
}

type createOrderRequest struct {
	OrderTime    string             `json:"order_time"`
	TotalAmount  float64            `json:"total_amount" validate:"gte=0"`
	DeliveryFee  float64            `json:"delivery_fee" validate:"gte=0"`
	OrderStatus  string             `json:"order_status" validate:"omitempty,oneof=Pending Delivered Cancelled"`
	UserID       *uint              `json:"user_id"`
	RestaurantID uint               `json:"restaurant_id" validate:"required"`
	Address      string             `json:"address" validate:"required"`
	AddressLink  string             `json:"address_link" validate:"required"`
	Items        []orderItemRequest `json:"items" validate:"dive"`
}

// GetAllOrders
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order

	if err := oc.DB.Preload("Restaurant").Preload("OrderItems").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Restaurant").Preload("User").
		Preload("OrderItems").Preload("OrderItems.MenuItem").
		First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order found", order)
}

// CreateOrder creates the order and any inline items in one call.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid json payload"))
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var restaurant models.Restaurant
	if err := oc.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Restaurant not found"))
		return
	}

	status := models.StatusPending
	if req.OrderStatus != "" {
		status = models.OrderStatus(req.OrderStatus)
	}

	now := time.Now()
	order := models.Order{
		OrderDate:    now,
		OrderTime:    req.OrderTime,
		TotalAmount:  req.TotalAmount,
		DeliveryFee:  req.DeliveryFee,
		OrderStatus:  status,
		UserID:       req.UserID,
		RestaurantID: req.RestaurantID,
		Address:      req.Address,
		AddressLink:  req.AddressLink,
	}
	if order.OrderTime == "" {
		order.OrderTime = now.Format("15:04")
	}

	for _, item := range req.Items {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", order)
}

type updateOrderRequest struct {
	OrderTime   *string  `json:"order_time"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gte=0"`
	DeliveryFee *float64 `json:"delivery_fee" validate:"omitempty,gte=0"`
	OrderStatus *string  `json:"order_status" validate:"omitempty,oneof=Pending Delivered Cancelled"`
	Address     *string  `json:"address"`
	AddressLink *string  `json:"address_link"`
}

// UpdateOrder applies partial updates; fields absent from the payload keep
// their stored values. Any of the three statuses may be set directly.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid json payload"))
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order not found"))
		return
	}

	if req.OrderTime != nil {
		order.OrderTime = *req.OrderTime
	}
	if req.TotalAmount != nil {
		order.TotalAmount = *req.TotalAmount
	}
	if req.DeliveryFee != nil {
		order.DeliveryFee = *req.DeliveryFee
	}
	if req.OrderStatus != nil {
		order.OrderStatus = models.OrderStatus(*req.OrderStatus)
	}
	if req.Address != nil {
		order.Address = *req.Address
	}
	if req.AddressLink != nil {
		order.AddressLink = *req.AddressLink
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated successfully", order)
}

// DeleteOrder removes the order and its items.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order not found"))
		return
	}

	if err := oc.DB.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := oc.DB.Delete(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", nil)
}
