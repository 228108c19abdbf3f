package widgets

import "errors"

// ConfigError reports an invalid widget configuration detected at
// construction time.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "widgets: invalid configuration: " + e.Reason
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
