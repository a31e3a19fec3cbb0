package framecheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_Allowed(t *testing.T) {
	var method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	res, err := NewChecker(time.Second).Check(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, http.MethodHead, method)
	assert.Equal(t, &Result{Code: 200, Status: StatusAllowed}, res)
}

func TestChecker_Forbidden(t *testing.T) {
	for _, name := range []string{"X-Frame-Options", "x-frame-options", "X-FRAME-OPTIONS"} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header()[name] = []string{"DENY"}
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			res, err := NewChecker(time.Second).Check(context.Background(), server.URL)

			require.NoError(t, err)
			assert.Equal(t, &Result{Code: 403, Status: StatusForbidden}, res)
		})
	}
}

func TestChecker_DefaultsToHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
	}))
	defer server.Close()

	res, err := NewChecker(time.Second).Check(context.Background(), strings.TrimPrefix(server.URL, "http://"))

	require.NoError(t, err)
	assert.Equal(t, 403, res.Code)
}

func TestChecker_EmptyURL(t *testing.T) {
	_, err := NewChecker(time.Second).Check(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestChecker_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL
	server.Close()

	res, err := NewChecker(time.Second).Check(context.Background(), target)

	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestChecker_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	_, err := NewChecker(50*time.Millisecond).Check(context.Background(), server.URL)

	assert.Error(t, err)
}
