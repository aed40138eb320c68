package source

import "testing"

func mustGet(t *testing.T, m interface {
	Get(string) (string, bool)
}, key string) string {
	t.Helper()
	v, ok := m.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	return v
}

func TestParseSimplePost(t *testing.T) {
	src := "TITLE: Hello\nDATE: 2026-07-31\n----------\nSome *body* text.\n"
	m, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := mustGet(t, m, "TITLE"); got != "Hello" {
		t.Fatalf("TITLE = %q", got)
	}
	if got := mustGet(t, m, "DATE"); got != "2026-07-31" {
		t.Fatalf("DATE = %q", got)
	}
	if got := mustGet(t, m, "CONTENT"); got == "" {
		t.Fatalf("CONTENT empty")
	}
	if got := mustGet(t, m, "RAW_CONTENT"); got != "Some *body* text.\n" {
		t.Fatalf("RAW_CONTENT = %q", got)
	}
}

func TestParseEmptyFileIsFatal(t *testing.T) {
	_, err := Parse("")
	if err == nil {
		t.Fatalf("expected error for empty source")
	}
}

func TestParseRejectsReservedKey(t *testing.T) {
	_, err := Parse("CONTENT: oops\n----\nbody\n")
	if err == nil {
		t.Fatalf("expected error for reserved key CONTENT")
	}
}

func TestParseRejectsBadKeyCharacter(t *testing.T) {
	_, err := Parse("TIT-LE: x\n----\nbody\n")
	if err == nil {
		t.Fatalf("expected error for invalid key character")
	}
}

func TestParseRejectsSingleDashSeparator(t *testing.T) {
	// A separator line needs at least two '-' characters.
	if _, err := Parse("TITLE: x\n-\nbody\n"); err == nil {
		t.Fatalf("expected error for single-dash separator")
	}
}

func TestParseRejectsSeparatorWithForeignCharacter(t *testing.T) {
	_, err := Parse("TITLE: x\n--x--\nbody\n")
	if err == nil {
		t.Fatalf("expected error for separator containing a non-dash character")
	}
}

func TestParseDoesNotOverrideExplicitFirstHeaderAndDescription(t *testing.T) {
	src := "TITLE: x\nFIRST_HEADER: Custom\nDESCRIPTION: Custom desc\n----\n# Real Header\n\nReal paragraph.\n"
	m, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := mustGet(t, m, "FIRST_HEADER"); got != "Custom" {
		t.Fatalf("FIRST_HEADER = %q, want explicit value preserved", got)
	}
	if got := mustGet(t, m, "DESCRIPTION"); got != "Custom desc" {
		t.Fatalf("DESCRIPTION = %q, want explicit value preserved", got)
	}
}

func TestParseFillsFirstHeaderAndDescriptionFromBody(t *testing.T) {
	src := "TITLE: x\n----\n# Real Header\n\nReal paragraph.\n"
	m, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := mustGet(t, m, "FIRST_HEADER"); got != "Real Header" {
		t.Fatalf("FIRST_HEADER = %q", got)
	}
	if got := mustGet(t, m, "DESCRIPTION"); got != "Real paragraph." {
		t.Fatalf("DESCRIPTION = %q", got)
	}
}

func TestParseExcerptDefaultsToFullContentWithoutMarker(t *testing.T) {
	src := "TITLE: x\n----\nJust one paragraph.\n"
	m, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	content := mustGet(t, m, "CONTENT")
	excerpt := mustGet(t, m, "EXCERPT")
	if content != excerpt {
		t.Fatalf("EXCERPT = %q, want equal to CONTENT %q when no marker present", excerpt, content)
	}
}
