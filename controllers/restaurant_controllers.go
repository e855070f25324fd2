package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pisethdev/food-delivery-app/models"
	"github.com/pisethdev/food-delivery-app/services"
	"github.com/pisethdev/food-delivery-app/utils"
	"gorm.io/gorm"
)

type RestaurantController struct {
	DB     *gorm.DB
	Images *services.ImageService

	// GenCode produces the unique code assigned on create.
	GenCode func() string
}

func NewRestaurantController(db *gorm.DB, images *services.ImageService) *RestaurantController {
	return &RestaurantController{DB: db, Images: images, GenCode: uuid.NewString}
}

// GetAllRestaurants
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant

	if err := rc.DB.Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantByID
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Restaurant not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant found", restaurant)
}

// CreateRestaurant validates every field up front and only then touches
// storage or the database. The image is mandatory on create.
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	name := c.PostForm("name")
	phone := c.PostForm("phone")
	address := c.PostForm("address")
	openTime := c.PostForm("open_time")
	closeTime := c.PostForm("close_time")

	fieldErrs := map[string]string{}
	if utils.IsEmptyOrNull(name) {
		fieldErrs["name"] = "Name is required"
	}
	if utils.IsEmptyOrNull(phone) {
		fieldErrs["phone"] = "Phone is required"
	}
	if utils.IsEmptyOrNull(address) {
		fieldErrs["address"] = "Address is required"
	}
	if utils.IsEmptyOrNull(openTime) {
		fieldErrs["open_time"] = "Open time is required"
	}
	if utils.IsEmptyOrNull(closeTime) {
		fieldErrs["close_time"] = "Close time is required"
	}

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		fieldErrs["image"] = "Image file is required"
	}

	if len(fieldErrs) > 0 {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	// Generate a unique code for the restaurant, rejecting on collision.
	code := rc.GenCode()
	var existing models.Restaurant
	if err := rc.DB.Where("code = ?", code).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Code already exists"))
		return
	}

	ref, err := rc.Images.Attach(c.Request.Context(), file)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error saving image"))
		return
	}

	restaurant := models.Restaurant{
		Code:      code,
		Name:      name,
		Phone:     phone,
		Address:   address,
		OpenTime:  openTime,
		CloseTime: closeTime,
		Image:     &ref,
	}

	if err := rc.DB.Create(&restaurant).Error; err != nil {
		// The blob is orphaned if the insert fails, so take it back out.
		rc.Images.Release(c.Request.Context(), ref)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant created: %s (code=%s)", restaurant.Name, restaurant.Code)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created successfully!", restaurant)
}

// UpdateRestaurant replaces the stored image only when a new file is sent.
// Without a file the existing reference is left untouched.
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	idStr := c.Param("id")
	name := c.PostForm("name")
	phone := c.PostForm("phone")
	address := c.PostForm("address")
	openTime := c.PostForm("open_time")
	closeTime := c.PostForm("close_time")

	fieldErrs := map[string]string{}
	id, idErrs := parseIDParam(idStr)
	for k, v := range idErrs {
		fieldErrs[k] = v
	}
	if utils.IsEmptyOrNull(name) {
		fieldErrs["name"] = "Name is required"
	}
	if utils.IsEmptyOrNull(phone) {
		fieldErrs["phone"] = "Phone is required"
	}
	if utils.IsEmptyOrNull(address) {
		fieldErrs["address"] = "Address is required"
	}
	if utils.IsEmptyOrNull(openTime) {
		fieldErrs["open_time"] = "open_time is required"
	}
	if utils.IsEmptyOrNull(closeTime) {
		fieldErrs["close_time"] = "close_time is required"
	}
	if len(fieldErrs) > 0 {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Restaurant not found"))
		return
	}

	file, _ := c.FormFile("image")

	current := ""
	if restaurant.Image != nil {
		current = *restaurant.Image
	}

	ref, err := rc.Images.Replace(c.Request.Context(), current, file)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error saving image"))
		return
	}

	restaurant.Name = name
	restaurant.Phone = phone
	restaurant.Address = address
	restaurant.OpenTime = openTime
	restaurant.CloseTime = closeTime
	if ref != "" {
		restaurant.Image = &ref
	}

	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated successfully!", restaurant)
}

// DeleteRestaurant cascades: menu item blobs and records go first, then the
// restaurant's own blob and record. Blob deletion is best-effort throughout,
// so a missing file never blocks the cascade.
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Restaurant not found"))
		return
	}

	ctx := c.Request.Context()

	var menuItems []models.MenuItem
	if err := rc.DB.Where("restaurant_id = ?", id).Find(&menuItems).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for _, item := range menuItems {
		if item.Image != nil {
			rc.Images.Release(ctx, *item.Image)
		}
	}

	if len(menuItems) > 0 {
		if err := rc.DB.Where("restaurant_id = ?", id).Delete(&models.MenuItem{}).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Deleted %d menu items for restaurant %d", len(menuItems), id)
	}

	if restaurant.Image != nil {
		rc.Images.Release(ctx, *restaurant.Image)
	}

	if err := rc.DB.Delete(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant and associated menu items deleted successfully", nil)
}

// parseIDParam converts a numeric path parameter, reporting a field-keyed
// validation error for empty or malformed values.
func parseIDParam(idStr string) (uint, map[string]string) {
	if utils.IsEmptyOrNull(idStr) {
		return 0, map[string]string{"id": "Id is required"}
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, map[string]string{"id": "Id is invalid"}
	}
	return uint(id), nil
}
