package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/pisethdev/food-delivery-app/controllers"
	"github.com/pisethdev/food-delivery-app/middlewares"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewUserController(db)
	r.POST("/api/users/register", ctrl.Register)
	r.POST("/api/users/login", ctrl.Login)
	r.GET("/api/users/profile", middlewares.AuthMiddleware(), ctrl.GetProfile)
	r.GET("/api/users", ctrl.GetAllUsers)
	r.DELETE("/api/users/:id", ctrl.DeleteUser)
	return r
}

func TestUserRegisterLoginProfile(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	w := performJSON(r, http.MethodPost, "/api/users/register", map[string]string{
		"name":     "Dara",
		"email":    "dara@example.com",
		"password": "secret123",
		"phone":    "010555222",
	})
	assertStatus(t, w, http.StatusCreated)

	w = performJSON(r, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "dara@example.com",
		"password": "secret123",
	})
	assertStatus(t, w, http.StatusOK)

	resp := decodeBody(t, w)
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok)
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assertStatus(t, rec, http.StatusOK)

	profile := decodeBody(t, rec)
	profileData, ok := profile["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "dara@example.com", profileData["email"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	w := performJSON(r, http.MethodPost, "/api/users/register", map[string]string{
		"name":     "Dara",
		"email":    "dara@example.com",
		"password": "secret123",
	})
	assertStatus(t, w, http.StatusCreated)

	w = performJSON(r, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "dara@example.com",
		"password": "wrong",
	})
	assertStatus(t, w, http.StatusUnauthorized)
}

func TestProfileRequiresToken(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	w := performRequest(r, http.MethodGet, "/api/users/profile", nil, "")
	assertStatus(t, w, http.StatusUnauthorized)
}
