// Package emoji maps semantic keys to emoji with plain-text fallbacks for
// terminals (or users) that do not want them.
package emoji

// EmojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"error":      {"❌", "[ERR]"},
	"warning":    {"⚠️", "[WRN]"},
	"info":       {"ℹ️", "[INF]"},
	"success":    {"✅", "[OK]"},
	"help":       {"❓", "[?]"},
	"dashboard":  {"📊", "[D]"},
	"search":     {"🔍", "[S]"},
	"cdm":        {"🗄️", "[C]"},
	"domain":     {"🏢", "[M]"},
	"lineage":    {"🔀", "[L]"},
	"council":    {"🏛️", "[G]"},
	"admin":      {"🛠️", "[A]"},
	"settings":   {"⚙️", "[*]"},
	"policy":     {"📜", "[P]"},
	"charter":    {"📖", "[CH]"},
	"assistant":  {"🧠", "[AI]"},
	"steward":    {"👤", "[U]"},
	"quality":    {"📈", "[Q]"},
	"activity":   {"🕒", "[T]"},
	"gold":       {"🥇", "[GOLD]"},
	"silver":     {"🥈", "[SILVER]"},
	"bronze":     {"🥉", "[BRONZE]"},
	"online":     {"🟢", "[ON]"},
	"reload":     {"🔄", "[R]"},
	"conflict":   {"⚔️", "[!]"},
	"minutes":    {"📋", "[MIN]"},
	"heatmap":    {"🗺️", "[H]"},
	"ticket":     {"🎫", "[#]"},
	"gap":        {"🧩", "[GAP]"},
	"unassigned": {"🚫", "[-]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1] // fallback
		}
		return mapping[0] // emoji
	}
	return "[?]" // unknown key
}
