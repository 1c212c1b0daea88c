package fur

import (
	"strings"
	"testing"
)

func TestLookupEmoji(t *testing.T) {
	glyph, ok := LookupEmoji("rocket")
	if !ok {
		t.Fatal("expected rocket to resolve")
	}
	if glyph == "" {
		t.Fatal("expected non-empty glyph")
	}
}

func TestLookupEmojiCaseInsensitive(t *testing.T) {
	lower, ok := LookupEmoji("wave")
	if !ok {
		t.Fatal("expected wave to resolve")
	}
	upper, ok := LookupEmoji("WAVE")
	if !ok {
		t.Fatal("expected WAVE to resolve")
	}
	if lower != upper {
		t.Fatalf("expected case-insensitive lookup to match: %q != %q", lower, upper)
	}
}

func TestLookupEmojiUnknown(t *testing.T) {
	if _, ok := LookupEmoji("not_a_real_emoji_name"); ok {
		t.Fatal("expected unknown shortcode to miss")
	}
}

func TestEmojiNames(t *testing.T) {
	names := EmojiNames()
	if len(names) == 0 {
		t.Fatal("expected at least one emoji name")
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			t.Fatalf("duplicate emoji name %q", name)
		}
		seen[name] = true
	}
}

func TestRegisterEmoji(t *testing.T) {
	RegisterEmoji("custom_test", "X")
	glyph, ok := LookupEmoji("custom_test")
	if !ok || glyph != "X" {
		t.Fatalf("expected registered emoji to resolve to X, got %q, %v", glyph, ok)
	}
	delete(emojiTable, "custom_test")
}

func TestRegisterEmojiOverwrite(t *testing.T) {
	RegisterEmoji("rocket", "R")
	glyph, ok := LookupEmoji("rocket")
	if !ok || glyph != "R" {
		t.Fatalf("expected overwritten emoji to resolve to R, got %q, %v", glyph, ok)
	}
	RegisterEmoji("rocket", "\U0001F680")
}

func TestReplaceEmojiSubstitutesKnownShortcodes(t *testing.T) {
	out := replaceEmoji("hello :wave: world :rocket:")
	wave, _ := LookupEmoji("wave")
	rocket, _ := LookupEmoji("rocket")
	want := "hello " + wave + " world " + rocket
	if out != want {
		t.Fatalf("replaceEmoji = %q, want %q", out, want)
	}
}

func TestReplaceEmojiLeavesUnknownShortcodesIntact(t *testing.T) {
	out := replaceEmoji("this :not_a_real_emoji: stays")
	if out != "this :not_a_real_emoji: stays" {
		t.Fatalf("replaceEmoji = %q, want unchanged text", out)
	}
}

func TestReplaceEmojiUnterminatedColonIsLiteral(t *testing.T) {
	out := replaceEmoji("trailing colon :wave")
	if out != "trailing colon :wave" {
		t.Fatalf("replaceEmoji = %q, want unchanged text", out)
	}
}

func TestEmojiInMarkup(t *testing.T) {
	p := NewMarkupParser()
	p.EnableEmoji = true
	lines := p.Parse(":wave: hi")
	wave, _ := LookupEmoji("wave")
	text := extractText(lines)
	if !strings.Contains(text, wave) {
		t.Fatalf("expected emoji glyph in parsed text, got %q", text)
	}
}

func TestEmojiDisabledInMarkup(t *testing.T) {
	p := NewMarkupParser()
	p.EnableEmoji = false
	lines := p.Parse(":wave: hi")
	text := extractText(lines)
	if text != ":wave: hi" {
		t.Fatalf("expected literal shortcode when emoji disabled, got %q", text)
	}
}
