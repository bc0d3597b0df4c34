package gaussian

import "errors"

// Errors returned by kernel generation and analysis.
var (
	ErrInvalidVariance   = errors.New("gaussian: variance must be positive and finite")
	ErrInvalidSpacing    = errors.New("gaussian: spacing must be positive and finite")
	ErrInvalidOrder      = errors.New("gaussian: order must be >= 0")
	ErrInvalidMaxError   = errors.New("gaussian: max error must not be NaN")
	ErrInvalidWidthLimit = errors.New("gaussian: max half-width must be >= 0")
	ErrInvalidGamma      = errors.New("gaussian: gamma must be finite")
	ErrInvalidFFTSize    = errors.New("gaussian: fft size must be > 0")
	ErrNotConverged      = errors.New("gaussian: coefficient sum did not reach target mass")
)
