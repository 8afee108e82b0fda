package fastpixel

import (
	"image/color"
	"log/slog"
)

// Option configures a Pixel during creation.
// Use functional options to customize backend selection and read behavior.
//
// Example:
//
//	// Default backend selection
//	px := fastpixel.New(img)
//
//	// Report fully transparent pixels as opaque white
//	px := fastpixel.New(img, fastpixel.WithReplaceOpaqueColors(0, color.NRGBA{255, 255, 255, 255}))
type Option func(*options)

// options holds optional configuration for Pixel creation.
type options struct {
	threshold     int
	substitute    color.NRGBA
	forceFallback bool
	logger        *slog.Logger
}

// defaultOptions returns the default options: replacement disabled,
// fastest backend, package logger.
func defaultOptions() options {
	return options{
		threshold: -1,
	}
}

// WithReplaceOpaqueColors enables the opaque color overlay from the start.
// It is equivalent to calling [Pixel.SetReplaceOpaqueColors] after creation.
func WithReplaceOpaqueColors(threshold int, c color.NRGBA) Option {
	return func(o *options) {
		o.threshold = threshold
		o.substitute = c
	}
}

// WithFallback forces the generic image.Image backend even when a faster
// backend could address the image memory directly.
//
// The fallback backend snapshots the image and writes every change through
// to it, which is mostly useful to compare backends.
func WithFallback() Option {
	return func(o *options) {
		o.forceFallback = true
	}
}

// WithLogger sets the logger used while selecting the backend.
// A nil logger means the package logger (see [SetLogger]).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
