package render

import (
	"strings"
	"testing"

	"github.com/gopherblog/blogc/internal/container"
	"github.com/gopherblog/blogc/internal/tmpl"
)

func newMap(kv map[string]string) *container.Map {
	m := container.NewMap(nil)
	for k, v := range kv {
		m.Set(k, v)
	}
	return m
}

func mustParse(t *testing.T, src string) tmpl.Program {
	t.Helper()
	prog, err := tmpl.Parse(src)
	if err != nil {
		t.Fatalf("tmpl.Parse(%q): %v", src, err)
	}
	return prog
}

func TestRenderVariableFromGlobal(t *testing.T) {
	prog := mustParse(t, "Hello {{ NAME }}!")
	out, err := Render(prog, nil, newMap(map[string]string{"NAME": "World"}), false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "Hello World!" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderMissingVariableExpandsEmpty(t *testing.T) {
	prog := mustParse(t, "[{{ MISSING }}]")
	out, err := Render(prog, nil, newMap(nil), false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "[]" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderEntryBlockNonListing(t *testing.T) {
	prog := mustParse(t, "{% block entry %}{{ TITLE }}{% endblock %}")
	sources := []*container.Map{newMap(map[string]string{"TITLE": "Post One"})}
	out, err := Render(prog, sources, newMap(nil), false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "Post One" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderListingBlockSkippedWhenNotListing(t *testing.T) {
	prog := mustParse(t, "before{% block listing %}{{ TITLE }}{% endblock %}after")
	sources := []*container.Map{newMap(map[string]string{"TITLE": "X"})}
	out, err := Render(prog, sources, newMap(nil), false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "beforeafter" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderListingBlockIteratesAllSources(t *testing.T) {
	prog := mustParse(t, "{% block listing %}[{{ TITLE }}]{% endblock %}")
	sources := []*container.Map{
		newMap(map[string]string{"TITLE": "One"}),
		newMap(map[string]string{"TITLE": "Two"}),
		newMap(map[string]string{"TITLE": "Three"}),
	}
	out, err := Render(prog, sources, newMap(nil), true)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "[One][Two][Three]" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderEntryBlockSkippedWhenListing(t *testing.T) {
	prog := mustParse(t, "x{% block entry %}{{ TITLE }}{% endblock %}y")
	sources := []*container.Map{newMap(map[string]string{"TITLE": "One"})}
	out, err := Render(prog, sources, newMap(nil), true)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "xy" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderIfdefTrueBranch(t *testing.T) {
	prog := mustParse(t, "{% ifdef AUTHOR %}has author{% else %}no author{% endif %}")
	out, err := Render(prog, nil, newMap(map[string]string{"AUTHOR": "Jane"}), false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "has author" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderIfdefFalseBranchTakesElse(t *testing.T) {
	prog := mustParse(t, "{% ifdef AUTHOR %}has author{% else %}no author{% endif %}")
	out, err := Render(prog, nil, newMap(nil), false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "no author" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderIfComparisonOperators(t *testing.T) {
	prog := mustParse(t, `{% if NAME == "Jane" %}match{% else %}nomatch{% endif %}`)
	out, err := Render(prog, nil, newMap(map[string]string{"NAME": "Jane"}), false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "match" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderNestedIfInsideSkippedBranch(t *testing.T) {
	src := `{% ifdef A %}{% ifdef B %}inner{% endif %}outer{% else %}else-branch{% endif %}`
	prog := mustParse(t, src)
	out, err := Render(prog, nil, newMap(nil), false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "else-branch" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderForeachSplitsOnWhitespace(t *testing.T) {
	prog := mustParse(t, "{% foreach TAGS %}<{{ FOREACH_ITEM }}>{% endforeach %}")
	out, err := Render(prog, nil, newMap(map[string]string{"TAGS": "go  rust python"}), false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "<go><rust><python>" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderForeachUndefinedVariableSkipsBody(t *testing.T) {
	prog := mustParse(t, "before{% foreach MISSING %}x{% endforeach %}after")
	out, err := Render(prog, nil, newMap(nil), false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "beforeafter" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderFormattedDateVariable(t *testing.T) {
	prog := mustParse(t, "{{ DATE_FORMATTED }}")
	global := newMap(map[string]string{
		"DATE":        "2026-07-31 10:00:00",
		"DATE_FORMAT": "%Y/%m/%d",
	})
	out, err := Render(prog, nil, global, false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "2026/07/31" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderBadDateFallsBackToRawAndWarns(t *testing.T) {
	prog := mustParse(t, "{{ DATE_FORMATTED }}")
	global := newMap(map[string]string{
		"DATE":        "not-a-date",
		"DATE_FORMAT": "%Y",
	})
	out, err := Render(prog, nil, global, false)
	if err == nil {
		t.Fatalf("expected a warning for unparseable date")
	}
	if out != "not-a-date" {
		t.Fatalf("out = %q, want raw fallback", out)
	}
	if !strings.Contains(err.Error(), "not-a-date") {
		t.Fatalf("warning message = %q", err.Error())
	}
}

func TestRenderLocalScopeShadowsGlobal(t *testing.T) {
	prog := mustParse(t, "{% block entry %}{{ TITLE }}{% endblock %}")
	sources := []*container.Map{newMap(map[string]string{"TITLE": "Local"})}
	global := newMap(map[string]string{"TITLE": "Global"})
	out, err := Render(prog, sources, global, false)
	if err != nil {
		t.Fatalf("unexpected warning: %v", err)
	}
	if out != "Local" {
		t.Fatalf("out = %q, want local scope to win", out)
	}
}
