package webgraph

import (
	"bytes"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	g := mustGraph(t,
		[]PageEntry{
			{URL: "b.com", Keywords: []string{"x", "y"}},
			{URL: "a.com", Keywords: []string{"x"}},
			{URL: "c.com"},
		},
		[]LinkEntry{{"b.com", "a.com"}, {"b.com", "c.com"}, {"c.com", "a.com"}},
	)

	var buf bytes.Buffer
	if err := g.Render(&buf, ByURL); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if lines[0] != tableHeader {
		t.Errorf("header = %q", lines[0])
	}
	want := []string{
		"  1   | a.com              |    2    |                   | x",
		"  0   | b.com              |    0    | 1, 2              | x, y",
		"  2   | c.com              |    1    | 1                 | ",
	}
	for i, w := range want {
		if lines[i+2] != w {
			t.Errorf("row %d = %q, want %q", i, lines[i+2], w)
		}
	}
}

func TestRenderMatrix(t *testing.T) {
	g := mustGraph(t,
		[]PageEntry{{URL: "a"}, {URL: "b"}},
		[]LinkEntry{{"a", "b"}},
	)
	var buf bytes.Buffer
	if err := g.RenderMatrix(&buf); err != nil {
		t.Fatal(err)
	}
	want := "  _0_1_\n0| 0 1 \n1| 0 0 \n"
	if buf.String() != want {
		t.Errorf("RenderMatrix() = %q, want %q", buf.String(), want)
	}
}

func TestRenderResults(t *testing.T) {
	var buf bytes.Buffer
	err := RenderResults(&buf, []Page{{URL: "b.com", Rank: 5}, {URL: "a.com", Rank: 3}})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{resultsHeader, "  1  |   5    | b.com", "  2  |   3    | a.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
