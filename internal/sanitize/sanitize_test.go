package sanitize

import (
	"strings"
	"testing"
)

func TestClean_ScriptTags(t *testing.T) {
	in := `Revenue grew 5%.<script>alert("x")</script> Nice.`
	out := Clean(in)
	if strings.Contains(out, "script") || strings.Contains(out, "alert") {
		t.Errorf("script content survived: %q", out)
	}
	if !strings.Contains(out, "Revenue grew 5%.") {
		t.Errorf("legitimate text lost: %q", out)
	}
}

func TestClean_IframeAndUnclosedTags(t *testing.T) {
	in := `<iframe src="https://evil.example"></iframe><script src="x.js">rest`
	out := Clean(in)
	if strings.Contains(strings.ToLower(out), "<iframe") || strings.Contains(strings.ToLower(out), "<script") {
		t.Errorf("markup survived: %q", out)
	}
}

func TestClean_JavascriptURI(t *testing.T) {
	out := Clean(`<a href="javascript:alert(1)">click</a>`)
	if strings.Contains(strings.ToLower(out), "javascript:") {
		t.Errorf("javascript: URI survived: %q", out)
	}
}

func TestClean_EventHandlerAttributes(t *testing.T) {
	out := Clean(`<img src="x" onerror="alert(1)" onload=go()>`)
	if strings.Contains(strings.ToLower(out), "onerror") || strings.Contains(strings.ToLower(out), "onload") {
		t.Errorf("event handler survived: %q", out)
	}
}

func TestClean_TrimsWhitespace(t *testing.T) {
	if got := Clean("  hello  \n"); got != "hello" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}

func TestStripMarkdown(t *testing.T) {
	in := "## Summary\n**Revenue** is *up* and `stable`."
	out := StripMarkdown(in)
	for _, marker := range []string{"#", "*", "`"} {
		if strings.Contains(out, marker) {
			t.Errorf("marker %q survived: %q", marker, out)
		}
	}
	if !strings.Contains(out, "Summary") || !strings.Contains(out, "Revenue") {
		t.Errorf("text content lost: %q", out)
	}
}

func TestExtractJSONObject(t *testing.T) {
	raw := "Here is the report:\n```json\n{\"a\": 1, \"b\": {\"c\": 2}}\n```\nDone."
	obj, ok := ExtractJSONObject(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if obj != `{"a": 1, "b": {"c": 2}}` {
		t.Errorf("unexpected object: %q", obj)
	}
}

func TestExtractJSONObject_BracesInStrings(t *testing.T) {
	raw := `prefix {"note": "a } inside", "quote": "she said \"{\"", "n": 1} suffix`
	obj, ok := ExtractJSONObject(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if !strings.HasPrefix(obj, `{"note"`) || !strings.HasSuffix(obj, `"n": 1}`) {
		t.Errorf("unexpected object bounds: %q", obj)
	}
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	if _, ok := ExtractJSONObject("no braces here"); ok {
		t.Error("expected failure when no object present")
	}
}

func TestExtractJSONObject_Truncated(t *testing.T) {
	if _, ok := ExtractJSONObject(`{"a": {"b": 1}`); ok {
		t.Error("expected failure for unbalanced object")
	}
}
