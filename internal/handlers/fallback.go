package handlers

import (
	"errors"

	"github.com/dimitrije/collage-api/internal/errs"
	"go.uber.org/zap"
)

// fallback is the single place where store failures are turned into soft
// responses: it returns value when err is nil and substitute otherwise.
// Lookups that simply found nothing are logged at debug, everything else at warn.
func fallback[T any](logger *zap.Logger, op string, value T, err error, substitute T) T {
	if err == nil {
		return value
	}
	if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrInvalidID) {
		logger.Debug("no result", zap.String("op", op), zap.Error(err))
	} else {
		logger.Warn("store failure answered with fallback", zap.String("op", op), zap.Error(err))
	}
	return substitute
}
