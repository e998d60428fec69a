package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "fiber error keeps its status code",
			err:         fiber.NewError(fiber.StatusNotFound, "Session not found"),
			wantStatus:  fiber.StatusNotFound,
			wantMessage: "Session not found",
		},
		{
			name:        "wrapped fiber error keeps its status code",
			err:         wrapErr(fiber.NewError(fiber.StatusBadRequest, "Invalid session ID")),
			wantStatus:  fiber.StatusBadRequest,
			wantMessage: "Invalid session ID",
		},
		{
			name:       "gorm record not found maps to 404",
			err:        gorm.ErrRecordNotFound,
			wantStatus: fiber.StatusNotFound,
		},
		{
			name:       "unclassified error maps to 500",
			err:        errors.New("boom"),
			wantStatus: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body Response[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body.Message)
			}
		})
	}
}

func wrapErr(err error) error {
	return errors.Join(errors.New("handler"), err)
}
