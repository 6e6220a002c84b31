package config

import "errors"

// ErrInvalidConfig wraps every validation failure of a merged config.
var ErrInvalidConfig = errors.New("invalid configuration")
