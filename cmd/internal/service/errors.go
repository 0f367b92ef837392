package service

import (
	"errors"

	"github.com/amritkc/vocareapp/cmd/internal/gateway"
	"github.com/amritkc/vocareapp/cmd/internal/utils/apierror"
)

var errNoRecord = errors.New("data source returned no appointment")

// toAPIError maps a data source failure onto the response sent to the
// client. The gateway has already logged it.
func toAPIError(err error) apierror.ErrorResponse {
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		return apierror.NotFoundError
	case errors.Is(err, gateway.ErrAmbiguous):
		return apierror.AmbiguousIDError
	default:
		return apierror.StoreError
	}
}
