package testutil

import (
	"testing"
)

// mockTB captures whether a test failure occurred.
type mockTB struct {
	testing.TB // embedded for unimplemented methods
	failed     bool
}

func (m *mockTB) Helper()                           {}
func (m *mockTB) Fatal(args ...any)                 { m.failed = true }
func (m *mockTB) Fatalf(format string, args ...any) { m.failed = true }

func TestEqual(t *testing.T) {
	m := &mockTB{}

	Equal(m, 1, 1)
	if m.failed {
		t.Error("Equal(1, 1) should pass")
	}

	m.failed = false
	Equal(m, "foo", "foo")
	if m.failed {
		t.Error("Equal(foo, foo) should pass")
	}

	m.failed = false
	Equal(m, 1, 2)
	if !m.failed {
		t.Error("Equal(1, 2) should fail")
	}
}

func TestLen(t *testing.T) {
	m := &mockTB{}

	Len(m, []int{1, 2, 3}, 3)
	if m.failed {
		t.Error("Len([1,2,3], 3) should pass")
	}

	m.failed = false
	Len(m, []int{1, 2, 3}, 5)
	if !m.failed {
		t.Error("Len([1,2,3], 5) should fail")
	}
}

func TestTrueFalse(t *testing.T) {
	m := &mockTB{}

	True(m, true)
	if m.failed {
		t.Error("True(true) should pass")
	}

	m.failed = false
	True(m, false)
	if !m.failed {
		t.Error("True(false) should fail")
	}

	m.failed = false
	False(m, false)
	if m.failed {
		t.Error("False(false) should pass")
	}

	m.failed = false
	False(m, true)
	if !m.failed {
		t.Error("False(true) should fail")
	}
}

func TestFormatMsg(t *testing.T) {
	if got := formatMsg(nil); got != "assertion failed" {
		t.Errorf("formatMsg(nil) = %q, want %q", got, "assertion failed")
	}

	if got := formatMsg([]any{"custom"}); got != "custom" {
		t.Errorf("formatMsg([custom]) = %q, want %q", got, "custom")
	}

	if got := formatMsg([]any{"value is %d", 42}); got != "value is 42" {
		t.Errorf("formatMsg with args = %q, want %q", got, "value is 42")
	}

	if got := formatMsg([]any{123}); got != "assertion failed" {
		t.Errorf("formatMsg(non-string) = %q, want %q", got, "assertion failed")
	}
}
