package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Logging errors
	CreateLoggerError

	// Configuration errors
	ConfigLoadError
	OverridesFileError
	OverridesParseError

	// Input errors
	InputFileError
	InputReadError

	// Output errors
	OutputEncodeError
	OutputWriteError

	// Harness errors
	PoolSaturatedError
	PoolClosedError
)
