package insight

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("John", 3, "For God so loved the world")

	if p.System != "You are a helpful assistant that provides biblical insights in JSON format." {
		t.Errorf("unexpected system prompt %q", p.System)
	}
	for _, want := range []string{
		"Analyze John Chapter 3 (King James Version)",
		"Bible Text:\nFor God so loved the world",
		`"takeaways": [`,
		"Avoid theological speculation",
	} {
		if !strings.Contains(p.User, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
	if strings.Contains(p.User, "{{") {
		t.Error("user prompt still has unexpanded placeholders")
	}
}

func TestBuildPromptDoesNotExpandSourceText(t *testing.T) {
	p := BuildPrompt("Ruth", 1, "literal {{book}} marker")
	if !strings.Contains(p.User, "literal {{book}} marker") {
		t.Fatal("placeholders inside source text were expanded")
	}
}
