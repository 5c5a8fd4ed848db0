package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var got string
	SetLogger(func(format string, v ...interface{}) { got = fmt.Sprintf(format, v...) })
	Logf("planned %d cells", 9)
	if got != "planned 9 cells" {
		t.Fatalf("Logf wrote %q", got)
	}

	SetLogger(nil)
	Logf("dropped")
	if got != "planned 9 cells" {
		t.Fatalf("muted logger still wrote %q", got)
	}
}
