package catalog

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
	"github.com/murkotick/menswear-storefront/internal/pkg/eventloop"
)

// mapError translates domain sentinel errors into gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	if errors.Is(err, eventloop.ErrStopped) {
		return status.Error(codes.Unavailable, err.Error())
	}

	if errors.Is(err, domain.ErrProductNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return status.Error(codes.Unauthenticated, err.Error())
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrProductNameTooLong),
		errors.Is(err, domain.ErrEmptyProductType),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrOriginalPriceTooLow),
		errors.Is(err, domain.ErrNegativeStock),
		errors.Is(err, domain.ErrUnknownBadge):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
