package promptstyle

import (
	"strings"
	"testing"
)

func TestApplySystem(t *testing.T) {
	if got := ApplySystem("   ", "json"); got != "" {
		t.Fatalf("blank prompt should stay blank, got %q", got)
	}

	once := ApplySystem("Generate an item.", "json")
	if !strings.HasPrefix(once, marker) || !strings.HasSuffix(once, "Generate an item.") {
		t.Fatalf("unexpected prompt: %q", once)
	}
	if !strings.Contains(once, "single JSON object") {
		t.Fatalf("json mode guidance missing: %q", once)
	}
	if twice := ApplySystem(once, "json"); twice != once {
		t.Fatalf("ApplySystem should be idempotent")
	}
	if text := ApplySystem("Translate.", "text"); strings.Contains(text, "JSON") {
		t.Fatalf("text mode should not mention JSON: %q", text)
	}
}
