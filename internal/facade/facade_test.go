package facade_test

import (
	"bytes"
	"testing"

	"gamehub-backend/internal/facade"
)

func TestOperation1(t *testing.T) {
	var buf bytes.Buffer
	f := facade.New(&buf)

	f.Operation1()

	want := "A\nB\n"
	if buf.String() != want {
		t.Errorf("Operation1 output = %q, want %q", buf.String(), want)
	}
}

func TestOperation2(t *testing.T) {
	var buf bytes.Buffer
	f := facade.New(&buf)

	f.Operation2()

	want := "B\nmap[C:[1 2 3]]\n"
	if buf.String() != want {
		t.Errorf("Operation2 output = %q, want %q", buf.String(), want)
	}
}

func TestSubsystemsUsableWithoutFacade(t *testing.T) {
	var buf bytes.Buffer

	facade.NewSubsystemA(&buf).Operation()
	facade.NewSubsystemB(&buf).Operation()

	if buf.String() != "A\nB\n" {
		t.Errorf("direct subsystem output = %q, want %q", buf.String(), "A\nB\n")
	}

	got := facade.NewSubsystemC().Operation()
	want := []int{1, 2, 3}

	if len(got) != 1 || len(got["C"]) != len(want) {
		t.Fatalf("SubsystemC mapping = %v", got)
	}
	for i, v := range want {
		if got["C"][i] != v {
			t.Errorf("SubsystemC mapping = %v, want C -> %v", got, want)
		}
	}
}
