package i18n

import "errors"

var (
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrInvalidCatalog    = errors.New("invalid translation catalog")
	ErrLoadingCancelled  = errors.New("loading translations cancelled")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToParseFile = errors.New("failed to parse translation file")
	ErrFailedToReadDir   = errors.New("failed to read translation directory")
	ErrNoTranslations    = errors.New("no translation files found")
	ErrUnsupportedFormat = errors.New("unsupported translation file format")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
)
