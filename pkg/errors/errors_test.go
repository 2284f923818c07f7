package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestRosterErrorString(t *testing.T) {
	err := &RosterError{
		Op:    "pool.GetOrCreate",
		Kind:  KindInvalidState,
		Index: 7,
		Err:   errors.New("index past capacity"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !strings.Contains(got, "index=7") {
		t.Errorf("error string %q should contain %q", got, "index=7")
	}
	if !strings.Contains(got, "invalid state") {
		t.Errorf("error string %q should contain kind name", got)
	}
}

func TestRosterErrorWithoutIndex(t *testing.T) {
	err := New("list.Populate", KindInvalidArgument, errors.New("nil data sequence"))
	got := err.Error()
	if strings.Contains(got, "index=") {
		t.Errorf("error string %q should not mention an index", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidArgument, "invalid argument"},
		{KindIndexOutOfRange, "index out of range"},
		{KindInvalidState, "invalid state"},
		{KindNotFound, "not found"},
		{KindUnrecognizedVariant, "unrecognized variant"},
		{KindBind, "bind"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsKind(t *testing.T) {
	base := NewAt("pool.Insert", KindIndexOutOfRange, -2, nil)
	wrapped := fmt.Errorf("inserting: %w", base)
	if !IsKind(wrapped, KindIndexOutOfRange) {
		t.Error("IsKind should see through wrapping")
	}
	if IsKind(wrapped, KindNotFound) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(errors.New("plain"), KindIndexOutOfRange) {
		t.Error("IsKind matched a non-roster error")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestBindErrorString(t *testing.T) {
	err := &BindError{
		View:   "itemView",
		Record: "itemRecord",
		Index:  3,
		Err:    errors.New("missing field"),
	}
	got := err.Error()
	if !strings.Contains(got, "itemView") || !strings.Contains(got, "index 3") {
		t.Errorf("BindError.Error() = %q, want view name and index", got)
	}

	panicked := &BindError{View: "itemView", Record: "itemRecord", Index: 0, Recovered: "boom"}
	if !strings.Contains(panicked.Error(), "panic") {
		t.Errorf("BindError.Error() = %q, want panic mention", panicked.Error())
	}
}

// captureHandler records everything reported to it.
type captureHandler struct {
	errs   []*RosterError
	panics []*PanicError
	binds  []*BindError
}

func (h *captureHandler) HandleError(err *RosterError)   { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)    { h.panics = append(h.panics, err) }
func (h *captureHandler) HandleBindError(err *BindError) { h.binds = append(h.binds, err) }

func TestReportSetsTimestamp(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&RosterError{Op: "pool.RemoveAt", Kind: KindNotFound, Index: 9})
	if len(handler.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.errs))
	}
	if handler.errs[0].Timestamp.IsZero() {
		t.Error("Report should fill in a zero timestamp")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("recovered value")
	}()

	if len(handler.panics) != 1 {
		t.Fatalf("expected 1 panic report, got %d", len(handler.panics))
	}
	p := handler.panics[0]
	if p.Op != "test.op" || p.Value != "recovered value" {
		t.Errorf("unexpected panic report: %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected LogHandler after SetHandler(nil), got %T", DefaultHandler)
	}
}
