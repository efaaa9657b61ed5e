// Package app implements the primary-port services on top of the
// repository interfaces. Services validate requests, apply the herd
// business rules, and delegate persistence.
package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateRequest checks a request's validate tags before the service
// touches the store.
func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}
