package metropolis

import "errors"

// ErrInvalidTemperature indicates Optimize was called with temperature <= 0.
var ErrInvalidTemperature = errors.New("metropolis: temperature must be positive")
