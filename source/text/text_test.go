package text_test

import (
	"io"
	"testing"

	"github.com/reoring/lineskema/source/text"
)

func TestReadLine_StripsTerminators(t *testing.T) {
	src := text.NewString("unix\nwindows\r\nplain")
	for i, want := range []string{"unix", "windows", "plain"} {
		ln, err := src.ReadLine()
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if ln != want {
			t.Fatalf("line %d: expected %q, got %q", i, want, ln)
		}
	}
	if _, err := src.ReadLine(); err != io.EOF {
		t.Fatalf("expected io.EOF after last line, got %v", err)
	}
}

func TestReadLine_FinalLineWithoutNewline(t *testing.T) {
	src := text.NewBytes([]byte("tail"))
	ln, err := src.ReadLine()
	if err != nil || ln != "tail" {
		t.Fatalf("expected tail with nil error, got %q err=%v", ln, err)
	}
	if _, err := src.ReadLine(); err != io.EOF {
		t.Fatalf("expected io.EOF on the following call, got %v", err)
	}
}

func TestReadLine_EmptyInput(t *testing.T) {
	src := text.NewString("")
	if _, err := src.ReadLine(); err != io.EOF {
		t.Fatalf("expected immediate io.EOF, got %v", err)
	}
}

func TestReadLine_KeepsEmptyLines(t *testing.T) {
	src := text.NewString("\n\nx\n")
	for i, want := range []string{"", "", "x"} {
		ln, err := src.ReadLine()
		if err != nil || ln != want {
			t.Fatalf("line %d: expected %q, got %q err=%v", i, want, ln, err)
		}
	}
}

func TestLine_Numbering(t *testing.T) {
	src := text.NewString("a\nb\nc")
	if src.Line() != 0 {
		t.Fatalf("expected 0 before any read, got %d", src.Line())
	}
	for want := int64(1); want <= 3; want++ {
		if _, err := src.ReadLine(); err != nil {
			t.Fatalf("read %d: %v", want, err)
		}
		if got := src.Line(); got != want {
			t.Fatalf("expected line %d, got %d", want, got)
		}
	}
	if _, err := src.ReadLine(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if got := src.Line(); got != 3 {
		t.Fatalf("line number must not advance past the last line, got %d", got)
	}
}
