package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to command failures so hosts can route docsite build
// and clean errors without string matching.
const (
	commandInvalidCode  = "DOCSITE_COMMAND_INVALID"
	commandCanceledCode = "DOCSITE_COMMAND_CANCELED"
	commandTimeoutCode  = "DOCSITE_COMMAND_TIMEOUT"
	commandContextCode  = "DOCSITE_COMMAND_CONTEXT_ERROR"
	commandFailedCode   = "DOCSITE_COMMAND_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "docsite command rejected by validation").
		WithTextCode(commandInvalidCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "docsite command canceled").
			WithTextCode(commandCanceledCode)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "docsite command timed out").
			WithTextCode(commandTimeoutCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "docsite command context error").
			WithTextCode(commandContextCode)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	// Handlers frequently surface ctx.Err() directly; keep the cancel and
	// timeout codes for those instead of the generic failure code.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return wrapContextError(err)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "docsite command failed").
		WithTextCode(commandFailedCode)
}
