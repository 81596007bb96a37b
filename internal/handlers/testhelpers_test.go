package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds an echo context carrying a JSON body
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authedContext builds an echo context as the auth middleware would leave it
func authedContext(e *echo.Echo, method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newJSONContext(e, method, target, body)
	c.Set("user_id", userID)
	return c, rec
}

func decodeErrorResponse(t require.TestingT, rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
