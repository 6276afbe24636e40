package points

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error conditions of a junction
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Vehicle arrived on a direction matching none of the junction's arms
	ErrCodeInvalidEntryDirection
	// Junction or layout configuration is invalid
	ErrCodeInvalidConfiguration
)

// ErrInvalidEntryDirection is the sentinel wrapped by every InvalidEntryDirectionError
var ErrInvalidEntryDirection = errors.New("invalid entry direction")

// ErrInvalidConfiguration is the sentinel wrapped by every ConfigurationError
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InvalidEntryDirectionError is returned by Enter when the direction of travel
// matches none of the junction's three arms.
type InvalidEntryDirectionError struct {
	Code         ErrorCode
	Direction    Direction
	JunctionID   string
	JunctionName string
}

func (e *InvalidEntryDirectionError) Error() string {
	junction := e.JunctionID
	if e.JunctionName != "" {
		junction = fmt.Sprintf("%s (%s)", e.JunctionName, e.JunctionID)
	}
	return fmt.Sprintf("%s is not a valid direction to enter junction %s", e.Direction, junction)
}

func (e *InvalidEntryDirectionError) Unwrap() error {
	return ErrInvalidEntryDirection
}

// NewInvalidEntryDirectionError creates an invalid entry error for junction j
func NewInvalidEntryDirectionError(direction Direction, j *Junction) *InvalidEntryDirectionError {
	err := &InvalidEntryDirectionError{
		Code:      ErrCodeInvalidEntryDirection,
		Direction: direction,
	}
	if j != nil {
		err.JunctionID = j.id
		err.JunctionName = j.name
	}
	return err
}

// ConfigurationError represents junction or layout configuration issues
type ConfigurationError struct {
	Component string
	Issue     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Issue)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(component, issue string) *ConfigurationError {
	return &ConfigurationError{
		Component: component,
		Issue:     issue,
	}
}

// IsInvalidEntryDirectionError checks if an error is an InvalidEntryDirectionError
func IsInvalidEntryDirectionError(err error) bool {
	var target *InvalidEntryDirectionError
	return errors.As(err, &target)
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	var entryErr *InvalidEntryDirectionError
	if errors.As(err, &entryErr) {
		return entryErr.Code
	}
	var configErr *ConfigurationError
	if errors.As(err, &configErr) {
		return ErrCodeInvalidConfiguration
	}
	return ErrCodeNone
}
