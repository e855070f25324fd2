package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pisethdev/food-delivery-app/models"
	"github.com/pisethdev/food-delivery-app/services"
	"github.com/pisethdev/food-delivery-app/utils"
	"gorm.io/gorm"
)

type MenuItemController struct {
	DB     *gorm.DB
	Images *services.ImageService
}

func NewMenuItemController(db *gorm.DB, images *services.ImageService) *MenuItemController {
	return &MenuItemController{DB: db, Images: images}
}

// CreateMenuItem creates an item under the restaurant in the path. The
// restaurant must exist and an image file must be present.
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	restaurantID, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	code := c.PostForm("code")
	name := c.PostForm("name")
	description := c.PostForm("description")
	priceStr := c.PostForm("price")

	errs := map[string]string{}
	if utils.IsEmptyOrNull(code) {
		errs["code"] = "Code is required"
	}
	if utils.IsEmptyOrNull(name) {
		errs["name"] = "Name is required"
	}
	var price float64
	if utils.IsEmptyOrNull(priceStr) {
		errs["price"] = "Price is required"
	} else {
		var err error
		price, err = strconv.ParseFloat(priceStr, 64)
		if err != nil {
			errs["price"] = "Price must be a valid number"
		} else if price < 0 {
			errs["price"] = "Price must not be negative"
		}
	}

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		errs["image"] = "No image file uploaded"
	}

	if len(errs) > 0 {
		utils.RespondFieldErrors(c, errs)
		return
	}

	var restaurant models.Restaurant
	if err := mc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Restaurant not found"))
		return
	}

	ref, err := mc.Images.Attach(c.Request.Context(), file)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error saving image"))
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Code:         code,
		Name:         name,
		Description:  description,
		Price:        price,
		Image:        &ref,
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		mc.Images.Release(c.Request.Context(), ref)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu Item created successfully", item)
}

// UpdateMenuItem supports the same replace semantics as restaurants: a new
// file swaps the blob, no file keeps the current reference. The description
// is the one optional field; when absent from the form the old value stays.
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	itemIDStr := c.Param("itemId")
	restaurantIDStr := c.PostForm("restaurant_id")
	code := c.PostForm("code")
	name := c.PostForm("name")
	priceStr := c.PostForm("price")

	errs := map[string]string{}
	var itemID uint64
	if utils.IsEmptyOrNull(itemIDStr) {
		errs["itemId"] = "Id is required"
	} else {
		var err error
		itemID, err = strconv.ParseUint(itemIDStr, 10, 64)
		if err != nil {
			errs["itemId"] = "Id is invalid"
		}
	}

	var restaurantID uint64
	if utils.IsEmptyOrNull(restaurantIDStr) {
		errs["restaurantId"] = "RestaurantId is required"
	} else {
		var err error
		restaurantID, err = strconv.ParseUint(restaurantIDStr, 10, 64)
		if err != nil {
			errs["restaurantId"] = "RestaurantId is invalid"
		}
	}

	if utils.IsEmptyOrNull(code) {
		errs["code"] = "Code is required"
	}
	if utils.IsEmptyOrNull(name) {
		errs["name"] = "Name is required"
	}

	var price float64
	if utils.IsEmptyOrNull(priceStr) {
		errs["price"] = "Price is required"
	} else {
		var err error
		price, err = strconv.ParseFloat(priceStr, 64)
		if err != nil {
			errs["price"] = "Price must be a valid number"
		} else if price < 0 {
			errs["price"] = "Price must not be negative"
		}
	}

	if len(errs) > 0 {
		utils.RespondFieldErrors(c, errs)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Menu Item not found"))
		return
	}

	file, _ := c.FormFile("image")

	current := ""
	if item.Image != nil {
		current = *item.Image
	}

	ref, err := mc.Images.Replace(c.Request.Context(), current, file)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error saving image"))
		return
	}

	item.RestaurantID = uint(restaurantID)
	item.Code = code
	item.Name = name
	item.Price = price
	// A description key present with an empty value clears the field; an
	// absent key keeps the stored value.
	if description, ok := c.GetPostForm("description"); ok {
		item.Description = description
	}
	if ref != "" {
		item.Image = &ref
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu Item updated successfully", item)
}

// RemoveMenuItem releases the item's blob then deletes the record. An
// unknown id returns 404 before anything on disk is touched.
func (mc *MenuItemController) RemoveMenuItem(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Menu Item not found"))
		return
	}

	if item.Image != nil {
		mc.Images.Release(c.Request.Context(), *item.Image)
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "MenuItem deleted", nil)
}

// GetMenuByRestaurant
func (mc *MenuItemController) GetMenuByRestaurant(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("id"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var restaurant models.Restaurant
	if err := mc.DB.Preload("MenuItems").First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Restaurant not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of Menu by restaurant", restaurant.MenuItems)
}

// GetMenuItemByID returns one item with its restaurant populated.
func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	id, fieldErrs := parseIDParam(c.Param("itemId"))
	if fieldErrs != nil {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	var item models.MenuItem
	if err := mc.DB.Preload("Restaurant").First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Menu item not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item found", item)
}

type menuItemCount struct {
	RestaurantID uint  `json:"restaurantId"`
	Count        int64 `json:"count"`
}

// GetMenuItemCounts returns, for each restaurant id in the request body, how
// many menu items it owns. Used for list-view badges.
func (mc *MenuItemController) GetMenuItemCounts(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New(`Invalid or missing "ids" array`))
		return
	}

	counts := make([]menuItemCount, 0, len(req.IDs))
	for _, id := range req.IDs {
		var count int64
		if err := mc.DB.Model(&models.MenuItem{}).Where("restaurant_id = ?", id).Count(&count).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		counts = append(counts, menuItemCount{RestaurantID: id, Count: count})
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item counts", counts)
}
