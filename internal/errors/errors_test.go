package errors

import (
	"strings"
	"testing"
)

func TestNewKnownCode(t *testing.T) {
	err := New("E101")
	if err.Category != CategoryContract {
		t.Fatalf("category = %v, want %v", err.Category, CategoryContract)
	}
	if err.Message == "" {
		t.Fatal("message should not be empty for a registered code")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Category != CategoryStructural {
		t.Fatalf("unknown code should default to structural, got %v", err.Category)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryStructural, "unknown vnode type %q", "weird")
	if !strings.Contains(err.Message, "weird") {
		t.Fatalf("message = %q, want it to contain %q", err.Message, "weird")
	}
	if err.Code != "" {
		t.Fatalf("Newf should not set a code, got %q", err.Code)
	}
}

func TestWithComponentAndVNodeType(t *testing.T) {
	err := New("E102").WithComponent("Counter").WithVNodeType("button")
	if err.Component != "Counter" || err.VNodeType != "button" {
		t.Fatalf("got component=%q vnodeType=%q", err.Component, err.VNodeType)
	}
}

func TestErrorString(t *testing.T) {
	err := New("E101")
	if got := err.Error(); !strings.HasPrefix(got, "E101:") {
		t.Fatalf("Error() = %q, want prefix %q", got, "E101:")
	}

	bare := Newf(CategoryContract, "boom")
	if got := bare.Error(); got != "boom" {
		t.Fatalf("Error() = %q, want %q", got, "boom")
	}
}

func TestFormatAndCompact(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E102").WithComponent("List").WithSuggestion("call hooks unconditionally")
	full := err.Format()
	for _, want := range []string{"E102", "List", "call hooks unconditionally"} {
		if !strings.Contains(full, want) {
			t.Errorf("Format() missing %q in:\n%s", want, full)
		}
	}

	compact := err.FormatCompact()
	if !strings.Contains(compact, "E102") || !strings.Contains(compact, "List") {
		t.Errorf("FormatCompact() = %q, missing code or component", compact)
	}
}
