package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dimitrije/collage-api/internal/framecheck"
	"github.com/dimitrije/collage-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type CheckHandler struct {
	checker FrameCheckerInterface
	logger  *zap.Logger
}

func NewCheckHandler(checker FrameCheckerInterface, logger *zap.Logger) *CheckHandler {
	return &CheckHandler{checker: checker, logger: logger}
}

// Check accepts the target either as the rest of the path or as ?url=.
// The router has already decoded the path once, so an encoded target
// containing slashes arrives here as a multi-segment wildcard value.
func (h *CheckHandler) Check(c *drift.Context) {
	target := strings.TrimPrefix(c.Param("url"), "/")
	if target == "" {
		target = c.QueryParam("url")
	}

	result, err := h.checker.Check(c.Request.Context(), target)
	if err != nil {
		if errors.Is(err, framecheck.ErrEmptyURL) {
			c.BadRequest("url is required")
			return
		}
		h.logger.Info("frame check failed", zap.String("url", target), zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.CheckResponse{
			Code:   http.StatusInternalServerError,
			Status: "error",
			Error:  err.Error(),
		})
		return
	}

	_ = c.JSON(result.Code, dto.CheckResponse{Code: result.Code, Status: result.Status})
}
