package errors

import "errors"

var (
	ErrInvalidCommandInput    = errors.New("invalid command input")
	ErrUnsupportedCommandKind = errors.New("unsupported command kind")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrInvalidProfileID       = errors.New("invalid profile id")
	ErrBidGroupNotFound       = errors.New("bid group not found")
	ErrCatalogUnavailable     = errors.New("trip catalog unavailable")
)
