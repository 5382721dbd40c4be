// Package supabase - репозитории поверх REST шлюза Supabase
package supabase

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/horus-listing/internal/infrastructure/supabase"
	"github.com/horus-listing/internal/pkg/errors"
)

const (
	tableProperties = "properties"
	tableCities     = "cities"
	tableAreas      = "areas"

	rpcNextPropertyCode = "generate_next_property_code"

	uniqueViolation = "23505"
)

// mapError переводит ошибки шлюза в ошибки приложения
func mapError(op string, err error, conflict *errors.AppError) error {
	var apiErr *supabase.APIError
	if stderrors.As(err, &apiErr) {
		if conflict != nil && (apiErr.Code == uniqueViolation || apiErr.StatusCode == http.StatusConflict) {
			return conflict
		}
	}
	return fmt.Errorf("%s: %w: %w", op, errors.ErrDatabaseError, err)
}

func byID(id string) url.Values {
	return url.Values{"id": {supabase.Eq(id)}}
}
