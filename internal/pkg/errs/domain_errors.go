package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Host errors
	ErrHostNotFound = errors.New("host not found")

	// Pricing errors
	ErrRuleNotFound         = errors.New("pricing rule not found")
	ErrOverrideNotFound     = errors.New("date override not found")
	ErrInvalidPricingConfig = errors.New("invalid pricing configuration")
	ErrSaveFailed           = errors.New("pricing save failed")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
