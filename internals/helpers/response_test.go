package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJsonFiberErrorCarriesStatus(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonFiberError(c, fiber.NewError(fiber.StatusNotFound, "Survey not found"))
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Survey not found", body["message"])
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

func TestJsonFiberErrorUnknownErrorIs500(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonFiberError(c, errors.New("driver: connection reset"))
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	// detail internal tidak bocor ke klien
	assert.Equal(t, "Internal server error", body["message"])
}

func TestJsonOKEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "Login successful", fiber.Map{"token": "abc"})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "abc", data["token"])
}

type loginShape struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestJsonValidationErrorIs400WithFieldMap(t *testing.T) {
	v := validator.New()
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonValidationError(c, v.Struct(&loginShape{Email: "bukan-email"}))
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])

	fields, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Password")
}

func TestJsonCreatedDefaultsMessage(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonCreated(c, "", nil)
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "created", body["message"])
}
