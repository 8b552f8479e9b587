package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug/info leaked: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn suppressed: %s", out)
	}
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Debug("shown", "neos", 3)
	if !strings.Contains(buf.String(), "neos=3") {
		t.Fatalf("debug suppressed: %s", buf.String())
	}
}
