package Controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pisethdev/food-delivery-app/models"
	"github.com/pisethdev/food-delivery-app/services"
	"github.com/pisethdev/food-delivery-app/storage"
	"github.com/pisethdev/food-delivery-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.DeliveryPartner{},
		&models.Delivery{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupImageService(t *testing.T) (*services.ImageService, string) {
	t.Helper()

	dir := t.TempDir()
	backend, err := storage.NewLocalBackend(dir)
	assert.NoError(t, err)
	return services.NewImageService(backend), dir
}

// multipartBody builds a multipart form with the given fields and, when
// fileName is non-empty, an "image" file part.
func multipartBody(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("image", fileName)
		assert.NoError(t, err)
		_, err = fw.Write(fileContent)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func performRequest(r *gin.Engine, method, target string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = new(bytes.Buffer)
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performJSON(r *gin.Engine, method, target string, payload interface{}) *httptest.ResponseRecorder {
	body := new(bytes.Buffer)
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	}
	return performRequest(r, method, target, body, "application/json")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// blobExists reports whether the reference stored on an entity resolves to a
// file in the uploads directory.
func blobExists(dir, ref string) bool {
	_, err := os.Stat(filepath.Join(dir, path.Base(ref)))
	return err == nil
}

// seedBlob writes a blob into the uploads directory and returns the
// reference an entity would carry for it.
func seedBlob(t *testing.T, dir, key string) string {
	t.Helper()

	assert.NoError(t, os.WriteFile(filepath.Join(dir, key), []byte("seed"), 0644))
	return path.Join("uploads", key)
}

func restaurantForm() map[string]string {
	return map[string]string{
		"name":       "Khmer Kitchen",
		"phone":      "012345678",
		"address":    "Street 123, Phnom Penh",
		"open_time":  "08:00",
		"close_time": "22:00",
	}
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
