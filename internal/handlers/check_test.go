package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dimitrije/collage-api/internal/framecheck"
	"github.com/dimitrije/collage-api/pkg/dto"
	"github.com/dimitrije/collage-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupCheckTest(t *testing.T) (*testutil.MockFrameChecker, http.Handler) {
	t.Helper()
	mockChecker := new(testutil.MockFrameChecker)
	handler := NewCheckHandler(mockChecker, zap.NewNop())

	app := drift.New()
	app.Get("/check", handler.Check)
	app.Get("/check/*url", handler.Check)
	return mockChecker, app
}

func decodeCheck(t *testing.T, rec *httptest.ResponseRecorder) dto.CheckResponse {
	t.Helper()
	var resp dto.CheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCheckHandler_Allowed(t *testing.T) {
	mockChecker, app := setupCheckTest(t)

	mockChecker.On("Check", mock.Anything, "example.com").
		Return(&framecheck.Result{Code: http.StatusOK, Status: framecheck.StatusAllowed}, nil)

	rec := get(app, "/check/example.com")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.CheckResponse{Code: 200, Status: "ok"}, decodeCheck(t, rec))
	mockChecker.AssertExpectations(t)
}

func TestCheckHandler_EncodedPathTargets(t *testing.T) {
	targets := []string{
		"https://example.com",
		"example.com/page",
		"https://example.com/a?b=1",
		"https://example.com/with%20space",
	}
	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			mockChecker, app := setupCheckTest(t)
			mockChecker.On("Check", mock.Anything, target).
				Return(&framecheck.Result{Code: http.StatusOK, Status: framecheck.StatusAllowed}, nil)

			rec := get(app, "/check/"+url.PathEscape(target))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, dto.CheckResponse{Code: 200, Status: "ok"}, decodeCheck(t, rec))
			mockChecker.AssertExpectations(t)
		})
	}
}

func TestCheckHandler_Forbidden(t *testing.T) {
	mockChecker, app := setupCheckTest(t)
	target := "https://framed.example.com/page?a=1"

	mockChecker.On("Check", mock.Anything, target).
		Return(&framecheck.Result{Code: http.StatusForbidden, Status: framecheck.StatusForbidden}, nil)

	rec := get(app, "/check?url="+url.QueryEscape(target))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, dto.CheckResponse{Code: 403, Status: "forbidden"}, decodeCheck(t, rec))
	mockChecker.AssertExpectations(t)
}

func TestCheckHandler_EmptyURL(t *testing.T) {
	mockChecker, app := setupCheckTest(t)

	mockChecker.On("Check", mock.Anything, "").Return(nil, framecheck.ErrEmptyURL)

	rec := get(app, "/check")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "url is required")
}

func TestCheckHandler_NetworkFailure(t *testing.T) {
	mockChecker, app := setupCheckTest(t)

	mockChecker.On("Check", mock.Anything, "unreachable.invalid").
		Return(nil, errors.New("dial tcp: lookup unreachable.invalid: no such host"))

	rec := get(app, "/check/unreachable.invalid")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeCheck(t, rec)
	assert.Equal(t, 500, resp.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "no such host")
}
