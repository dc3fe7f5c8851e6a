package config

import (
	"time"
)

// DefaultJWTExpiration is used when JWT_EXPIRES_IN is not set.
const DefaultJWTExpiration = time.Hour

type JWTConfig struct {
	Secret    string        `mapstructure:"secret" validate:"required"`
	ExpiresIn time.Duration `mapstructure:"expires_in" validate:"gt=0"`
}
