package sink

import (
	"reflect"
	"testing"
)

func TestMemory(t *testing.T) {
	m := NewMemory()

	if lines := m.Lines(); lines != nil {
		t.Errorf("Expected no lines, got %q", lines)
	}

	m.Write([]byte("first\n"))
	m.Write([]byte("second\r\n"))

	if got := m.Writes(); got != 2 {
		t.Errorf("Writes() = %d, want 2", got)
	}
	if got := m.String(); got != "first\nsecond\r\n" {
		t.Errorf("String() = %q", got)
	}
	if got, want := m.Lines(), []string{"first", "second"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}

	m.Reset()
	if m.String() != "" || m.Writes() != 0 {
		t.Errorf("Expected empty sink after Reset, got %q (%d writes)", m.String(), m.Writes())
	}
}
