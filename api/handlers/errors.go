// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"textkit/core/errors"
	"textkit/pkg/utils/html"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case html.IsRepairError(err):
		return huma.Error422UnprocessableEntity("Markup could not be repaired", err)
	case errors.IsParse(err):
		return huma.Error422UnprocessableEntity("Content could not be parsed", err)
	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		return huma.NewError(http.StatusRequestTimeout, "Request was cancelled before completion")
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
