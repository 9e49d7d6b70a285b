package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/server"
	"github.com/quotery/quotes-api/internal/utils"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err, "Failed to create test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Author{},
		&models.Category{},
		&models.Quote{},
	)
	assert.NoError(t, err, "Failed to migrate test database")

	database.RegisterNormalizer(db)

	return db
}

func SetupTestApp(t *testing.T) *fiber.App {
	db := TestDB(t)
	database.DB = db

	err := utils.InitLocalStorage()
	assert.NoError(t, err, "Failed to initialize storage")
	utils.SetStorageMode(true)

	app := server.New(db)
	return app
}

func CreateTestUser(t *testing.T, db *gorm.DB, username, password string, role models.UserRole) *models.User {
	hashedPassword, _ := utils.HashPassword(password)

	user := &models.User{
		Username: username,
		Password: hashedPassword,
		Role:     role,
	}

	err := db.Create(user).Error
	assert.NoError(t, err, "Failed to create test user")

	return user
}

func GetAuthToken(t *testing.T, user *models.User) string {
	token, err := utils.GenerateJWT(user.ID, user.Username, user.Role)
	assert.NoError(t, err, "Failed to generate test token")
	return token
}

func CreateTestAuthor(t *testing.T, db *gorm.DB, name string, status models.Status) *models.Author {
	author := &models.Author{Name: name, Status: status}
	err := db.Create(author).Error
	assert.NoError(t, err, "Failed to create test author")
	return author
}

func CreateTestCategory(t *testing.T, db *gorm.DB, name string, status models.Status) *models.Category {
	category := &models.Category{Name: name, Status: status}
	err := db.Create(category).Error
	assert.NoError(t, err, "Failed to create test category")
	return category
}

func CreateTestQuote(t *testing.T, db *gorm.DB, content string, authorID uint, submitterID uint, status models.Status, categories ...*models.Category) *models.Quote {
	quote := &models.Quote{
		Content:  content,
		Language: "en",
		AuthorID: authorID,
		Status:   status,
	}
	if submitterID != 0 {
		quote.SubmittedByID = &submitterID
	}
	for _, c := range categories {
		quote.Categories = append(quote.Categories, *c)
	}

	err := db.Create(quote).Error
	assert.NoError(t, err, "Failed to create test quote")
	return quote
}

func MakeRequest(app *fiber.App, method, url string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, url, bodyReader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()

	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode

	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}

func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	if resp.Body.Len() == 0 {
		t.Log("Warning: Response body is empty")
		return
	}

	err := json.NewDecoder(resp.Body).Decode(v)
	if err != nil && err != io.EOF {
		t.Logf("Response body: %s", resp.Body.String())
		assert.NoError(t, err, "Failed to parse response")
	}
}

type StandardResponse struct {
	Success       bool        `json:"success"`
	Authenticated bool        `json:"authenticated"`
	Role          *string     `json:"role"`
	Message       string      `json:"message"`
	Data          interface{} `json:"data"`
}

func AssertSuccess(t *testing.T, resp *httptest.ResponseRecorder) StandardResponse {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.True(t, result.Success, "Expected success response")
	return result
}

func AssertError(t *testing.T, resp *httptest.ResponseRecorder, expectedMessage string) StandardResponse {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.False(t, result.Success, "Expected error response")
	assert.Equal(t, expectedMessage, result.Message, "Error message mismatch")
	return result
}

func MakeMultipartRequestWithFile(app *fiber.App, method, url string, fields map[string]string, files map[string][]byte, token string) (*httptest.ResponseRecorder, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, val := range fields {
		writer.WriteField(key, val)
	}

	for fieldName, fileContent := range files {
		part, err := writer.CreateFormFile(fieldName, fieldName+".jpg")
		if err != nil {
			return nil, err
		}
		part.Write(fileContent)
	}

	contentType := writer.FormDataContentType()
	writer.Close()

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode
	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}
