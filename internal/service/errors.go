package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/ridecrew/internal/auth"
	"github.com/mmynk/ridecrew/internal/destination"
	"github.com/mmynk/ridecrew/internal/emergency"
	"github.com/mmynk/ridecrew/internal/middleware"
	"github.com/mmynk/ridecrew/internal/models"
)

// toConnectError maps domain errors onto Connect codes. Errors that already
// carry a code pass through unchanged.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, destination.ErrNoFix):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, models.ErrUnauthorized), errors.Is(err, models.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, models.ErrInvalidState), errors.Is(err, emergency.ErrNoContact):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, models.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, destination.ErrLookupFailed):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, auth.ErrUnknownUser), errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// actingUser returns the user ID the auth interceptor placed in ctx.
func actingUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}
