package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version "+Version+"\n") {
		t.Errorf("Template() = %q", got)
	}
}
