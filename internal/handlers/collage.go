package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dimitrije/collage-api/internal/models"
	"github.com/dimitrije/collage-api/internal/services"
	"github.com/dimitrije/collage-api/internal/validation"
	"github.com/dimitrije/collage-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type CollageHandler struct {
	collageService CollageServiceInterface
	logger         *zap.Logger
}

func NewCollageHandler(collageService CollageServiceInterface, logger *zap.Logger) *CollageHandler {
	return &CollageHandler{
		collageService: collageService,
		logger:         logger,
	}
}

func (h *CollageHandler) List(c *drift.Context) {
	page := 0
	if raw := c.Param("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || int64(n) > services.MaxPage {
			c.BadRequest("invalid page")
			return
		}
		page = n
	}

	resp, err := h.collageService.List(c.Request.Context(), page)
	empty := &dto.ListResponse{Posts: []models.Summary{}}

	_ = c.JSON(http.StatusOK, fallback(h.logger, "list", resp, err, empty))
}

func (h *CollageHandler) Get(c *drift.Context) {
	collage, err := h.collageService.Get(c.Request.Context(), c.Param("id"))

	_ = c.JSON(http.StatusOK, fallback(h.logger, "get", collage, err, nil))
}

func (h *CollageHandler) Save(c *drift.Context) {
	var body json.RawMessage
	if err := c.BindJSON(&body); err != nil {
		h.rejectPayload(c, &validation.Error{Message: "invalid request payload JSON format"})
		return
	}

	req, err := validation.DecodeSave(body)
	if err != nil {
		var verr *validation.Error
		if !errors.As(err, &verr) {
			verr = &validation.Error{Message: err.Error()}
		}
		h.rejectPayload(c, verr)
		return
	}

	resp, err := h.collageService.Save(c.Request.Context(), req)

	_ = c.JSON(http.StatusOK, fallback(h.logger, "save", resp, err, nil))
}

func (h *CollageHandler) rejectPayload(c *drift.Context, verr *validation.Error) {
	h.logger.Debug("save payload rejected", zap.String("field", verr.Field), zap.String("reason", verr.Message))
	_ = c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
		StatusCode: http.StatusBadRequest,
		Error:      "Bad Request",
		Message:    verr.Message,
		Field:      verr.Field,
	})
}
