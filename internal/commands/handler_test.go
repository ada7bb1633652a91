package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct {
	fail bool
}

func (testMessage) Type() string { return "docsite.test.message" }

func (m testMessage) Validate() error {
	if m.fail {
		return errors.New("message invalid")
	}
	return nil
}

func TestHandlerExecute(t *testing.T) {
	executed := false
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		executed = true
		return nil
	})

	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !executed {
		t.Fatalf("expected wrapped function to run")
	}
}

func TestHandlerValidationFailure(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		t.Fatalf("exec must not run on validation failure")
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{fail: true})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var wrapped *goerrors.Error
	if !errors.As(err, &wrapped) {
		t.Fatalf("expected wrapped error, got %T", err)
	}
	if wrapped.Category != goerrors.CategoryValidation {
		t.Fatalf("Category = %v, want validation", wrapped.Category)
	}
	if wrapped.TextCode != "DOCSITE_COMMAND_INVALID" {
		t.Fatalf("TextCode = %q, want DOCSITE_COMMAND_INVALID", wrapped.TextCode)
	}
}

func TestHandlerExecutionFailure(t *testing.T) {
	sentinel := errors.New("boom")
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return sentinel
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatalf("expected execution error")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel, got %v", err)
	}

	var wrapped *goerrors.Error
	if !errors.As(err, &wrapped) {
		t.Fatalf("expected wrapped error, got %T", err)
	}
	if wrapped.TextCode != "DOCSITE_COMMAND_FAILED" {
		t.Fatalf("TextCode = %q, want DOCSITE_COMMAND_FAILED", wrapped.TextCode)
	}
}

func TestHandlerTimeout(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	var wrapped *goerrors.Error
	if !errors.As(err, &wrapped) {
		t.Fatalf("expected wrapped error, got %T", err)
	}
	if wrapped.TextCode != "DOCSITE_COMMAND_TIMEOUT" {
		t.Fatalf("TextCode = %q, want DOCSITE_COMMAND_TIMEOUT", wrapped.TextCode)
	}
}

func TestHandlerNilContext(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		if ctx == nil {
			t.Fatalf("expected non-nil context")
		}
		return nil
	})

	var nilCtx context.Context
	if err := handler.Execute(nilCtx, testMessage{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestHandlerNilFuncPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil handler func")
		}
	}()
	NewHandler[testMessage](nil)
}
