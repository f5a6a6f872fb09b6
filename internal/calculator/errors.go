package calculator

import (
	"errors"
	"fmt"
)

// MaxPeriod bounds window parameters; callers never hold more than ten
// years of daily NAV history.
const MaxPeriod = 2520

var (
	ErrInvalidPeriod     = errors.New("period must be positive")
	ErrPeriodTooLarge    = fmt.Errorf("period must not exceed %d", MaxPeriod)
	ErrFastNotBelowSlow  = errors.New("fast period must be below slow period")
	ErrInvalidMultiplier = errors.New("multiplier must not be negative")
)

// ParamError reports an indicator called with an unusable configuration.
// It signals a programming error, not a data condition: short series never
// produce a ParamError.
type ParamError struct {
	Indicator string
	Field     string
	Value     string
	Err       error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: invalid %s %s: %v", e.Indicator, e.Field, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

func checkPeriod(indicator, field string, period int) error {
	switch {
	case period <= 0:
		return &ParamError{Indicator: indicator, Field: field, Value: fmt.Sprint(period), Err: ErrInvalidPeriod}
	case period > MaxPeriod:
		return &ParamError{Indicator: indicator, Field: field, Value: fmt.Sprint(period), Err: ErrPeriodTooLarge}
	}
	return nil
}
