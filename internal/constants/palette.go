package constants

// Emojis is the emoji palette offered when creating a tracker.
var Emojis = []string{
	"🙂", "😻", "🌺", "🐶", "❤️", "😱",
	"😇", "😡", "🥶", "🤔", "🙏", "🍔",
	"🥦", "🏓", "🥇", "🎸", "🏝️", "😪",
}

// Colors is the swatch palette offered when creating a tracker, as hex strings.
var Colors = []string{
	"#fd4c49", "#ff881e", "#007bfa", "#6e44fe", "#33cf69", "#e66dd4",
	"#f9d4d4", "#34a7fe", "#46e69d", "#35347c", "#ff674d", "#ff99cc",
	"#f6c48b", "#7994f5", "#832cf1", "#ad56da", "#8d72e6", "#2fd058",
}

// IsPaletteEmoji reports whether e is one of the palette emoji.
func IsPaletteEmoji(e string) bool {
	for _, v := range Emojis {
		if v == e {
			return true
		}
	}
	return false
}

// IsPaletteColor reports whether c is one of the palette colors.
func IsPaletteColor(c string) bool {
	for _, v := range Colors {
		if v == c {
			return true
		}
	}
	return false
}
