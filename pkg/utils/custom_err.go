package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrSchemaValidation       = errors.New("itinerary does not match schema")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrCompletionEmpty        = errors.New("completion returned no content")
	ErrReplacementShape       = errors.New("replacement activities have the wrong shape")
	ErrUnsupportedProvider    = errors.New("unsupported completion provider")
)
