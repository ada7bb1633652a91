package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-docsite/pkg/interfaces"
)

type recordingLogger struct {
	fields []map[string]any
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (p *stubProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return p.logger
}

func TestModuleLoggerDefaultsToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "docsite.docs")
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	// Must not panic.
	logger.Info("noop entry")
}

func TestModuleLoggerRequestsNamedLogger(t *testing.T) {
	recorder := &recordingLogger{}
	provider := &stubProvider{logger: recorder}

	DocsLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != "docsite.docs" {
		t.Fatalf("requested = %v, want [docsite.docs]", provider.requested)
	}
	if len(recorder.fields) == 0 || recorder.fields[0]["module"] != "docsite.docs" {
		t.Fatalf("expected module field, got %v", recorder.fields)
	}
}

func TestModuleLoggerDefaultsRootModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	ModuleLogger(provider, "")
	if len(provider.requested) != 1 || provider.requested[0] != "docsite" {
		t.Fatalf("requested = %v, want [docsite]", provider.requested)
	}
}

func TestWithDocContext(t *testing.T) {
	recorder := &recordingLogger{}

	WithDocContext(recorder, "guides/intro.md", "en", "/guides/intro")

	if len(recorder.fields) != 1 {
		t.Fatalf("expected one fields call, got %d", len(recorder.fields))
	}
	fields := recorder.fields[0]
	if fields["doc_path"] != "guides/intro.md" || fields["locale"] != "en" || fields["route"] != "/guides/intro" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestWithDocContextSkipsEmptyValues(t *testing.T) {
	recorder := &recordingLogger{}

	WithDocContext(recorder, "", " ", "/guides/intro")

	if len(recorder.fields) != 1 {
		t.Fatalf("expected one fields call, got %d", len(recorder.fields))
	}
	fields := recorder.fields[0]
	if _, ok := fields["doc_path"]; ok {
		t.Fatalf("empty path must be skipped: %v", fields)
	}
	if _, ok := fields["locale"]; ok {
		t.Fatalf("blank locale must be skipped: %v", fields)
	}
}
