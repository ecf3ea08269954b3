package ginserver

import "github.com/go-playground/validator/v10"

// validate checks incoming request payloads before they reach the domain.
var validate = validator.New()
