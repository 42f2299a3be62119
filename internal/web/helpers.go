package web

import (
	"strconv"

	"github.com/a-h/templ"
)

func itoa(value int) string {
	return strconv.Itoa(value)
}

func ftoa(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}

func esc(text string) string {
	return templ.EscapeString(text)
}

// safeColor keeps style attributes down to hex color literals; anything else
// falls back to a neutral gray.
func safeColor(color string) string {
	if len(color) != 7 && len(color) != 4 {
		return "#888888"
	}
	if color[0] != '#' {
		return "#888888"
	}
	for _, r := range color[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return "#888888"
		}
	}
	return color
}

func condLabel(winCondition string) string {
	if winCondition == "lowest" {
		return "Lowest wins"
	}
	return "Highest wins"
}
