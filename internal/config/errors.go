package config

import "errors"

// ErrMissingLaunchConfig indicates that the required CURVE_CONFIG_FILE
// variable is not set in the environment.
var ErrMissingLaunchConfig = errors.New("missing CURVE_CONFIG_FILE environment variable")
