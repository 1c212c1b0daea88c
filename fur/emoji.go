package fur

import "strings"

// emojiTable maps `:shortcode:`-style names to their emoji glyph. The
// teacher's own table was not present in the retrieval pack; this is a
// smaller named subset sufficient to exercise markup's EnableEmoji path.
var emojiTable = map[string]string{
	"wave":        "\U0001F44B",
	"thumbsup":    "\U0001F44D",
	"thumbsdown":  "\U0001F44E",
	"rocket":      "\U0001F680",
	"check":       "✅",
	"cross":       "❌",
	"warning":     "⚠️",
	"heart":       "❤️",
	"fire":        "\U0001F525",
	"star":        "⭐",
	"tada":        "\U0001F389",
	"eyes":        "\U0001F440",
	"bulb":        "\U0001F4A1",
	"bug":         "\U0001F41B",
	"package":     "\U0001F4E6",
	"lock":        "\U0001F512",
	"unlock":      "\U0001F513",
	"clock":       "⏰",
	"hourglass":   "⌛",
	"gear":        "⚙️",
	"memo":        "\U0001F4DD",
	"pencil":      "✏️",
	"link":        "\U0001F517",
	"mag":         "\U0001F50D",
	"sparkles":    "✨",
	"thinking":    "\U0001F914",
	"smile":       "\U0001F642",
	"frown":       "☹️",
	"100":         "\U0001F4AF",
	"question":    "❓",
	"exclamation": "❗",
	"arrow_right": "➡️",
	"arrow_left":  "⬅️",
	"arrow_up":    "⬆️",
	"arrow_down":  "⬇️",
	"stop":        "\U0001F6D1",
	"recycle":     "♻️",
	"clap":        "\U0001F44F",
	"raised_hand": "✋",
	"muscle":      "\U0001F4AA",
	"zap":         "⚡",
}

// LookupEmoji resolves a shortcode name (case-insensitive) to its glyph.
func LookupEmoji(name string) (string, bool) {
	glyph, ok := emojiTable[strings.ToLower(name)]
	return glyph, ok
}

// EmojiNames lists every known shortcode name.
func EmojiNames() []string {
	names := make([]string, 0, len(emojiTable))
	for name := range emojiTable {
		names = append(names, name)
	}
	return names
}

// RegisterEmoji adds or overwrites a shortcode name's glyph.
func RegisterEmoji(name, glyph string) {
	emojiTable[strings.ToLower(name)] = glyph
}

// replaceEmoji substitutes every `:name:` shortcode in text with its glyph,
// leaving unrecognized shortcodes untouched.
func replaceEmoji(text string) string {
	if !strings.Contains(text, ":") {
		return text
	}
	var out strings.Builder
	i := 0
	for i < len(text) {
		if text[i] != ':' {
			out.WriteByte(text[i])
			i++
			continue
		}
		end := strings.IndexByte(text[i+1:], ':')
		if end < 0 {
			out.WriteString(text[i:])
			break
		}
		name := text[i+1 : i+1+end]
		if glyph, ok := LookupEmoji(name); ok && name != "" {
			out.WriteString(glyph)
			i += end + 2
			continue
		}
		out.WriteByte(':')
		i++
	}
	return out.String()
}
