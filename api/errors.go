package api

import (
	"errors"

	"cashtrack/config"
	"cashtrack/store"

	"github.com/gin-gonic/gin"
)

// SafeErrorMessage hides internal error details from clients in release
// mode.
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// StoreError translates a store error into the one response policy used
// everywhere: validation and bad input map to 400, missing records to 404
// with notFoundMsg, anything else to 500 with a safe message.
func StoreError(c *gin.Context, err error, notFoundMsg, fallback string) {
	switch {
	case store.IsValidation(err), store.IsInvalidInput(err):
		BadRequest(c, err.Error())
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, notFoundMsg)
	default:
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}
