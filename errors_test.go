package lineskema_test

import (
	"errors"
	"testing"

	lineskema "github.com/reoring/lineskema"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := lineskema.Issues{
		{Path: "/a", Code: lineskema.CodeMalformedToken},
		{Path: "/b", Code: lineskema.CodeShortRead},
		{Path: "/c", Code: lineskema.CodeOverflow},
		{Path: "/d", Code: lineskema.CodeEndOfStream},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	// only the first few are shown, the rest collapses into a count
	if want := "malformed_token at /a"; len(s) < len(want) || s[:len(want)] != want {
		t.Fatalf("unexpected summary %q", s)
	}
}

func TestAsIssues(t *testing.T) {
	var err error = lineskema.Issues{{Path: "/", Code: lineskema.CodeParseError}}
	iss, ok := lineskema.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected to extract issues, got %v ok=%v", iss, ok)
	}
	if _, ok := lineskema.AsIssues(errors.New("plain")); ok {
		t.Fatalf("expected plain errors to not be Issues")
	}
	if _, ok := lineskema.AsIssues(nil); ok {
		t.Fatalf("expected nil to not be Issues")
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	iss := lineskema.AppendIssues(nil, lineskema.IssueAt("/x", lineskema.CodeShortRead, "short", map[string]any{"want": 3}))
	if len(iss) != 1 || iss[0].Path != "/x" || iss[0].Params["want"] != 3 {
		t.Fatalf("unexpected issues %+v", iss)
	}
}
