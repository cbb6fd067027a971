package host

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned by every entry point called before the
// plugin finished loading.
var ErrNotInitialized = errors.New("geyser plugin not initialized yet")

// ErrorKind tells the host which entry point failed.
type ErrorKind int

const (
	KindCustom ErrorKind = iota
	KindConfigFile
	KindAccountsUpdate
	KindSlotStatusUpdate
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfigFile:
		return "config file"
	case KindAccountsUpdate:
		return "accounts update"
	case KindSlotStatusUpdate:
		return "slot status update"
	default:
		return "custom"
	}
}

// PluginError is the error type returned across the host boundary.
type PluginError struct {
	Kind ErrorKind
	Err  error
}

func NewError(kind ErrorKind, err error) *PluginError {
	return &PluginError{Kind: kind, Err: err}
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *PluginError) Unwrap() error {
	return e.Err
}
