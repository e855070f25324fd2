package Controllers_test

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/pisethdev/food-delivery-app/controllers"
	"github.com/pisethdev/food-delivery-app/models"
	"github.com/pisethdev/food-delivery-app/services"
)

func setupRestaurantRouter(db *gorm.DB, images *services.ImageService) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewRestaurantController(db, images)
	r.GET("/api/restaurants", ctrl.GetAllRestaurants)
	r.GET("/api/restaurants/:id", ctrl.GetRestaurantByID)
	r.POST("/api/restaurants", ctrl.CreateRestaurant)
	r.PUT("/api/restaurants/:id", ctrl.UpdateRestaurant)
	r.DELETE("/api/restaurants/:id", ctrl.DeleteRestaurant)
	return r
}

func TestCreateRestaurantWithImage(t *testing.T) {
	db := setupTestDB(t)
	images, dir := setupImageService(t)
	r := setupRestaurantRouter(db, images)

	body, contentType := multipartBody(t, restaurantForm(), "front.jpg", []byte("jpeg bytes"))
	w := performRequest(r, http.MethodPost, "/api/restaurants", body, contentType)
	assertStatus(t, w, http.StatusCreated)

	var saved models.Restaurant
	assert.NoError(t, db.First(&saved).Error)
	assert.Equal(t, "Khmer Kitchen", saved.Name)
	assert.NotEmpty(t, saved.Code)
	if assert.NotNil(t, saved.Image) {
		assert.True(t, blobExists(dir, *saved.Image), "stored reference must resolve to a blob")
	}
}

func TestCreateRestaurantRejectsIncompleteInput(t *testing.T) {
	db := setupTestDB(t)
	images, dir := setupImageService(t)
	r := setupRestaurantRouter(db, images)

	// Missing phone and image; nothing may be persisted.
	fields := restaurantForm()
	delete(fields, "phone")
	body, contentType := multipartBody(t, fields, "", nil)
	w := performRequest(r, http.MethodPost, "/api/restaurants", body, contentType)
	assertStatus(t, w, http.StatusBadRequest)

	resp := decodeBody(t, w)
	errMap, ok := resp["error"].(map[string]interface{})
	assert.True(t, ok, "expected field-keyed error map")
	assert.Contains(t, errMap, "phone")
	assert.Contains(t, errMap, "image")

	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	assert.Zero(t, count)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries, "no blob may be written for a rejected create")
}

func TestCreateRestaurantRejectsCollidingCode(t *testing.T) {
	db := setupTestDB(t)
	images, dir := setupImageService(t)

	ctrl := controllers.NewRestaurantController(db, images)
	ctrl.GenCode = func() string { return "dup-code" }
	r := gin.New()
	r.POST("/api/restaurants", ctrl.CreateRestaurant)

	assert.NoError(t, db.Create(&models.Restaurant{
		Code: "dup-code", Name: "First", Phone: "1", Address: "x",
		OpenTime: "08:00", CloseTime: "20:00",
	}).Error)

	body, contentType := multipartBody(t, restaurantForm(), "front.jpg", []byte("jpeg bytes"))
	w := performRequest(r, http.MethodPost, "/api/restaurants", body, contentType)
	assertStatus(t, w, http.StatusBadRequest)

	resp := decodeBody(t, w)
	assert.Equal(t, "Code already exists", resp["error"])

	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	assert.Equal(t, int64(1), count, "the colliding create must not persist a row")

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries, "the colliding create must not store a blob")
}

func TestUpdateRestaurantWithoutFileKeepsImage(t *testing.T) {
	db := setupTestDB(t)
	images, dir := setupImageService(t)
	r := setupRestaurantRouter(db, images)

	ref := seedBlob(t, dir, "existing.jpg")
	restaurant := models.Restaurant{
		Code: "r-1", Name: "Old Name", Phone: "000", Address: "Somewhere",
		OpenTime: "08:00", CloseTime: "20:00", Image: &ref,
	}
	assert.NoError(t, db.Create(&restaurant).Error)

	body, contentType := multipartBody(t, restaurantForm(), "", nil)
	w := performRequest(r, http.MethodPut, "/api/restaurants/1", body, contentType)
	assertStatus(t, w, http.StatusOK)

	var updated models.Restaurant
	assert.NoError(t, db.First(&updated, restaurant.ID).Error)
	assert.Equal(t, "Khmer Kitchen", updated.Name)
	if assert.NotNil(t, updated.Image) {
		assert.Equal(t, ref, *updated.Image, "image reference must be unchanged")
	}
	assert.True(t, blobExists(dir, ref))
}

func TestUpdateRestaurantReplacesImage(t *testing.T) {
	db := setupTestDB(t)
	images, dir := setupImageService(t)
	r := setupRestaurantRouter(db, images)

	oldRef := seedBlob(t, dir, "old.jpg")
	restaurant := models.Restaurant{
		Code: "r-1", Name: "Old Name", Phone: "000", Address: "Somewhere",
		OpenTime: "08:00", CloseTime: "20:00", Image: &oldRef,
	}
	assert.NoError(t, db.Create(&restaurant).Error)

	body, contentType := multipartBody(t, restaurantForm(), "new.jpg", []byte("new image"))
	w := performRequest(r, http.MethodPut, "/api/restaurants/1", body, contentType)
	assertStatus(t, w, http.StatusOK)

	var updated models.Restaurant
	assert.NoError(t, db.First(&updated, restaurant.ID).Error)
	if assert.NotNil(t, updated.Image) {
		assert.NotEqual(t, oldRef, *updated.Image)
		assert.True(t, blobExists(dir, *updated.Image))
	}
	assert.False(t, blobExists(dir, oldRef), "old blob must be removed on replace")
}

func TestDeleteRestaurantCascades(t *testing.T) {
	db := setupTestDB(t)
	images, dir := setupImageService(t)
	r := setupRestaurantRouter(db, images)

	restRef := seedBlob(t, dir, "restaurant.jpg")
	restaurant := models.Restaurant{
		Code: "r-1", Name: "Doomed", Phone: "000", Address: "Somewhere",
		OpenTime: "08:00", CloseTime: "20:00", Image: &restRef,
	}
	assert.NoError(t, db.Create(&restaurant).Error)

	itemRefs := []string{
		seedBlob(t, dir, "item-1.jpg"),
		seedBlob(t, dir, "item-2.jpg"),
	}
	for i := range itemRefs {
		item := models.MenuItem{
			RestaurantID: restaurant.ID,
			Code:         fmt.Sprintf("m-%d", i+1),
			Name:         "Item",
			Price:        3.5,
			Image:        &itemRefs[i],
		}
		assert.NoError(t, db.Create(&item).Error)
	}

	w := performRequest(r, http.MethodDelete, "/api/restaurants/1", nil, "")
	assertStatus(t, w, http.StatusOK)

	var itemCount int64
	db.Model(&models.MenuItem{}).Where("restaurant_id = ?", restaurant.ID).Count(&itemCount)
	assert.Zero(t, itemCount, "no menu items may reference the deleted restaurant")

	var restCount int64
	db.Model(&models.Restaurant{}).Count(&restCount)
	assert.Zero(t, restCount)

	assert.False(t, blobExists(dir, restRef))
	for _, ref := range itemRefs {
		assert.False(t, blobExists(dir, ref))
	}
}

func TestGetRestaurantNotFound(t *testing.T) {
	db := setupTestDB(t)
	images, _ := setupImageService(t)
	r := setupRestaurantRouter(db, images)

	w := performRequest(r, http.MethodGet, "/api/restaurants/999", nil, "")
	assertStatus(t, w, http.StatusNotFound)
}

func TestGetRestaurantMalformedID(t *testing.T) {
	db := setupTestDB(t)
	images, _ := setupImageService(t)
	r := setupRestaurantRouter(db, images)

	w := performRequest(r, http.MethodGet, "/api/restaurants/not-a-number", nil, "")
	assertStatus(t, w, http.StatusBadRequest)
}

func TestListRestaurants(t *testing.T) {
	db := setupTestDB(t)
	images, _ := setupImageService(t)
	r := setupRestaurantRouter(db, images)

	assert.NoError(t, db.Create(&models.Restaurant{
		Code: "r-1", Name: "A", Phone: "1", Address: "x", OpenTime: "08:00", CloseTime: "20:00",
	}).Error)
	assert.NoError(t, db.Create(&models.Restaurant{
		Code: "r-2", Name: "B", Phone: "2", Address: "y", OpenTime: "08:00", CloseTime: "20:00",
	}).Error)

	w := performRequest(r, http.MethodGet, "/api/restaurants", nil, "")
	assertStatus(t, w, http.StatusOK)

	resp := decodeBody(t, w)
	data, ok := resp["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 2)
}
