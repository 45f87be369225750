package meter

import (
	"image/color"
	"unicode/utf8"

	"github.com/npillmayer/pwmeter/dom/style"
)

// MaxLevel is the highest level with a distinct label.
const MaxLevel = 4

// Level returns the strength level of a password.
func Level(password string) int {
	return utf8.RuneCountInString(password) / 3
}

// Color returns the CSS colour name for a strength level.
func Color(level int) string {
	switch level {
	case 0:
		return "transparent"
	case 1:
		return "red"
	case 2:
		return "yellow"
	case 3:
		return "orange"
	case 4:
		return "lightgreen"
	}
	if level > MaxLevel {
		return "lightgreen"
	}
	return "inherit"
}

// RGBA returns the colour for a strength level, or nil for levels
// without a definite colour.
func RGBA(level int) color.Color {
	return style.Property(Color(level)).Color()
}

var labels = [...]string{" ", "Weak 😱", "Average 😏", "Strong 🤗", "Very Strong 🤩"}

// Label returns the display text for a strength level.
func Label(level int) string {
	if level < 0 || level >= len(labels) {
		return "Amazing 👏"
	}
	return labels[level]
}
