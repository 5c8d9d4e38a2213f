package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	database "surveyku_backend/internals/databases"
	userModel "surveyku_backend/internals/features/users/user/model"
	helper "surveyku_backend/internals/helpers"
)

// setupTestDB membuka Postgres uji dari TEST_DATABASE_DSN dengan skema
// bersih; tanpa env tersebut test integrasi di-skip.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN belum diset; skip test integrasi database")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(
		"DROP TABLE IF EXISTS answers, survey_videos, questions, surveys, users CASCADE",
	).Error)
	require.NoError(t, database.Migrate(db))
	return db
}

func newSurveyTestApp(db *gorm.DB, userID int) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocalsUserID, userID)
		return c.Next()
	})
	ctrl := NewSurveyController(db)
	app.Post("/surveys/add-survey", ctrl.Create)
	app.Get("/surveys/:id", ctrl.GetByID)
	return app
}

func TestAddSurveyGetRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	asker := userModel.UserModel{
		Name: "Andi", LastName: "Wijaya",
		Email: "andi@mail.com", Password: "x", Role: "ASKER",
	}
	require.NoError(t, db.Create(&asker).Error)

	app := newSurveyTestApp(db, asker.UserID)

	body := `{"title":"Kepuasan Pelanggan","description":"survei triwulan",` +
		`"questions":[{"title":"Apa pendapat Anda?","category":"umum"},{"title":"Saran?","category":"produk"}]}`
	req := httptest.NewRequest("POST", "/surveys/add-survey", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data struct {
			SurveyID  int `json:"survey_id"`
			Questions []struct {
				QuestionID int    `json:"question_id"`
				Title      string `json:"title"`
			} `json:"questions"`
		} `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotZero(t, created.Data.SurveyID)
	require.Len(t, created.Data.Questions, 2)

	// baca balik lewat endpoint detail
	getResp, err := app.Test(httptest.NewRequest("GET", "/surveys/"+strconv.Itoa(created.Data.SurveyID), nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, getResp.StatusCode)

	var fetched struct {
		Data struct {
			Title     string `json:"title"`
			AuthorID  int    `json:"authorId"`
			Questions []struct {
				Title    string `json:"title"`
				SurveyID int    `json:"surveyId"`
				AuthorID int    `json:"authorId"`
			} `json:"questions"`
		} `json:"data"`
	}
	raw, err = io.ReadAll(getResp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &fetched))

	assert.Equal(t, "Kepuasan Pelanggan", fetched.Data.Title)
	assert.Equal(t, asker.UserID, fetched.Data.AuthorID)
	require.Len(t, fetched.Data.Questions, 2)
	assert.Equal(t, "Apa pendapat Anda?", fetched.Data.Questions[0].Title)
	assert.Equal(t, created.Data.SurveyID, fetched.Data.Questions[0].SurveyID)
	assert.Equal(t, asker.UserID, fetched.Data.Questions[0].AuthorID)
}

func TestAddSurveyRejectsMissingQuestions(t *testing.T) {
	// validasi jalan sebelum persistence, jadi tidak butuh database
	app := newSurveyTestApp(nil, 1)

	body := `{"title":"Tanpa Pertanyaan","description":"x","questions":[]}`
	req := httptest.NewRequest("POST", "/surveys/add-survey", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
