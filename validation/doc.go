// Package validation checks configuration and driver input.
//
// Struct tag validation uses go-playground/validator and names fields by
// their mapstructure key. Programmatic validation collects errors fluently.
// Both report failures as an errors.ErrCodeInvalidInput AppError whose
// "fields" detail lists every offending field.
//
// # Struct Tag Validation
//
//	type TracingConfig struct {
//	    Endpoint   string  `mapstructure:"endpoint" validate:"required_if=Enabled true"`
//	    SampleRate float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Range("key", key, -25, 25).
//	    Custom(a != 0, "a", "must not be zero").
//	    Validate()
package validation
