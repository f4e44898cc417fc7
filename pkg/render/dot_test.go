package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/linkrank/pkg/webgraph"
)

func testGraph(t *testing.T) *webgraph.Graph {
	t.Helper()
	g, err := webgraph.Build(
		[]webgraph.PageEntry{
			{URL: "a.com", Keywords: []string{"news"}},
			{URL: "b.com", Keywords: []string{"sport", "news"}},
			{URL: "c.com"},
		},
		[]webgraph.LinkEntry{{Source: "a.com", Dest: "b.com"}, {Source: "c.com", Dest: "b.com"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})

	for _, want := range []string{
		"digraph linkrank {",
		`"a.com" [label="a.com\nrank 0"];`,
		`"b.com" [label="b.com\nrank 2"];`,
		`"a.com" -> "b.com";`,
		`"c.com" -> "b.com";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "lightblue") {
		t.Error("ToDOT() highlighted without a keyword")
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("ToDOT() not terminated")
	}
}

func TestToDOTOptions(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{Highlight: "sport", Keywords: true})

	if !strings.Contains(dot, `"b.com" [label="b.com\nrank 2\nsport news", fillcolor=lightblue, penwidth=2];`) {
		t.Errorf("b.com not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"c.com" [label="c.com\nrank 0"];`) {
		t.Errorf("c.com label wrong:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(webgraph.New(), Options{})
	if strings.Contains(dot, "->") || strings.Contains(dot, "label=") {
		t.Errorf("ToDOT(empty) has content:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox() = %s, want %s", out, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() without viewBox changed input: %s", got)
	}
}
