// Package framecheck reports whether a page may be embedded in a frame,
// judged by the presence of an X-Frame-Options response header.
package framecheck

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const frameOptionsHeader = "X-Frame-Options"

const (
	StatusAllowed   = "ok"
	StatusForbidden = "forbidden"
)

var ErrEmptyURL = errors.New("url is required")

type Result struct {
	Code   int
	Status string
}

type Checker struct {
	client *http.Client
}

func NewChecker(timeout time.Duration) *Checker {
	return &Checker{client: &http.Client{Timeout: timeout}}
}

// Check issues a HEAD request to target. A target without a scheme is
// requested over http. Transport failures are returned as errors.
func (c *Checker) Check(ctx context.Context, target string) (*Result, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, ErrEmptyURL
	}
	if !strings.Contains(target, "://") {
		target = "http://" + target
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Header.Values canonicalizes the key, so any casing sent by the server matches.
	if len(resp.Header.Values(frameOptionsHeader)) > 0 {
		return &Result{Code: http.StatusForbidden, Status: StatusForbidden}, nil
	}
	return &Result{Code: http.StatusOK, Status: StatusAllowed}, nil
}
