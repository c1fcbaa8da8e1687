package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/services"
)

type stubParser struct{}

func (stubParser) Parse(token string) (*services.Claims, error) {
	if token != "good" {
		return nil, services.ErrInvalidToken
	}
	c := &services.Claims{Name: "Kim"}
	c.Subject = "kim"
	return c, nil
}

func newApp(log logrus.FieldLogger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	app.Use(RequestIDs(), RequestLogger(log), JWTOptional(stubParser{}))
	app.Get("/fail/:kind", func(c *fiber.Ctx) error {
		switch c.Params("kind") {
		case "notfound":
			return errors.Wrap(repository.ErrNotFound, "update school")
		case "dup":
			return repository.ErrDuplicate
		case "bad":
			return fiber.NewError(fiber.StatusBadRequest, "missing id")
		case "validation":
			return dto.Validate(dto.ReplyRequest{})
		}
		return errors.New("mongo exploded")
	})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(claims.Subject)
	})
	return app
}

func decode(t *testing.T, app *fiber.App, path string, header ...string) (int, dto.Response, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if len(header) == 2 {
		req.Header.Set(header[0], header[1])
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.Response
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body, resp.Header.Get(fiber.HeaderXRequestID)
}

func TestErrorHandler(t *testing.T) {
	log, hook := test.NewNullLogger()
	app := newApp(log)

	tests := []struct {
		path   string
		status int
		msg    string
	}{
		{"/fail/notfound", 404, "document not found"},
		{"/fail/dup", 409, "duplicate key"},
		{"/fail/bad", 400, "missing id"},
		{"/fail/validation", 400, "qnaId is required; content is required; writer is required"},
		{"/fail/other", 500, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body, reqID := decode(t, app, tt.path)
			assert.Equal(t, tt.status, status)
			assert.False(t, body.Success)
			assert.Equal(t, tt.msg, body.Error)
			assert.NotEmpty(t, reqID)
		})
	}

	var logged bool
	for _, e := range hook.AllEntries() {
		if e.Message == "request failed" {
			logged = true
			assert.Equal(t, "mongo exploded", e.Data[logrus.ErrorKey].(error).Error())
		}
	}
	assert.True(t, logged)
}

func TestJWTOptional(t *testing.T) {
	log, _ := test.NewNullLogger()
	app := newApp(log)

	for _, tt := range []struct {
		header string
		status int
	}{
		{"", 200},
		{"Bearer good", 200},
		{"Bearer bad", 401},
		{"Basic abc", 200},
	} {
		req := httptest.NewRequest("GET", "/whoami", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tt.status, resp.StatusCode, tt.header)
	}
}
