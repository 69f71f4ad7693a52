// Package palette maps record attributes to display colors. The note default
// palette and the mood palette mirror the mobile client so records render the
// same on every device.
package palette

import "strings"

// noteDefaults is the rotation used when a note has no chosen background.
var noteDefaults = []string{
	"#FFECB3", // light yellow
	"#C8E6C9", // light green
	"#BBDEFB", // light blue
	"#D1C4E9", // light purple
	"#FFCCBC", // light orange
	"#F0F4C3", // yellow-green
	"#B2DFDB", // teal
	"#CFD8DC", // light gray
}

// DefaultNoteColor derives a stable background color from the note id so the
// same note always renders the same default without persisting a choice.
func DefaultNoteColor(id string) string {
	idx := hashString(id) % len(noteDefaults)
	if idx < 0 {
		idx += len(noteDefaults)
	}
	return noteDefaults[idx]
}

// hashString reproduces the JVM String.hashCode the original client used to
// pick the color, so colors stay stable across both implementations.
func hashString(s string) int {
	h := int32(0)
	for _, r := range s {
		h = 31*h + int32(r)
	}
	return int(h)
}

var moodColors = map[string]string{
	"happy":      "#B5E8B5",
	"sad":        "#B5D8E8",
	"excited":    "#FFD6A5",
	"calm":       "#D4E2D4",
	"frustrated": "#FFCCCC",
	"angry":      "#FFDAD6",
	"anxious":    "#FFECB3",
	"neutral":    "#E0E0E0",
}

// MoodColor returns the display color for a diary mood, or "" when the mood
// is not part of the vocabulary (callers fall back to their surface color).
func MoodColor(mood string) string {
	return moodColors[strings.ToLower(mood)]
}
