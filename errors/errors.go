package errors

import (
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/i18n-bundle-gen/messages"
)

func newError(key string) *i18n.TrError {
	return i18n.NewErrorWithProvider(key, messages.Provider{})
}

var (
	// ErrFailedToGetConfig is returned when the command configuration is missing from the parser
	ErrFailedToGetConfig = newError(messages.Keys.AppError.FailedToGetConfig)

	// ErrCommandFailed is returned when a command execution fails
	ErrCommandFailed = newError(messages.Keys.AppError.CommandFailed)

	// ErrInvalidKeyFilter is returned when the key filter is not a valid regular expression
	ErrInvalidKeyFilter = newError(messages.Keys.AppError.InvalidKeyFilter)

	// ErrFailedToLoadSettings is returned when a settings file cannot be read or parsed
	ErrFailedToLoadSettings = newError(messages.Keys.AppError.FailedToLoadSettings)

	// ErrFailedToWriteSettings is returned when a settings file cannot be written
	ErrFailedToWriteSettings = newError(messages.Keys.AppError.FailedToWriteSettings)

	// ErrUnknownTarget is returned for an unsupported generation target
	ErrUnknownTarget = newError(messages.Keys.AppError.UnknownTarget)

	// ErrInvalidEncoding is returned for an unsupported bundle encoding
	ErrInvalidEncoding = newError(messages.Keys.AppError.InvalidEncoding)

	// ErrFailedToListBundles is returned when the bundle directory cannot be walked
	ErrFailedToListBundles = newError(messages.Keys.AppError.FailedToListBundles)

	// ErrFailedToLoadBundle is returned when a bundle file cannot be parsed
	ErrFailedToLoadBundle = newError(messages.Keys.AppError.FailedToLoadBundle)

	// ErrFailedToRender is returned when a source file cannot be rendered
	ErrFailedToRender = newError(messages.Keys.AppError.FailedToRender)

	// ErrFailedToWriteOutput is returned when a generated file cannot be written
	ErrFailedToWriteOutput = newError(messages.Keys.AppError.FailedToWriteOutput)

	// ErrCheckFailed is returned by a strict check with findings
	ErrCheckFailed = newError(messages.Keys.AppError.CheckFailed)
)
