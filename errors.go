package localize

import "errors"

var (
	ErrEmptyCulture = errors.New("localize: culture cannot be empty")
	ErrEmptyKey     = errors.New("localize: translation key cannot be empty")
	ErrEmptyMessage = errors.New("localize: translation message cannot be empty")
	ErrNilSource    = errors.New("localize: source cannot be nil")
	ErrInvalidFile  = errors.New("localize: invalid translation file")
)
