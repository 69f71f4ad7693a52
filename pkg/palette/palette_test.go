package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNoteColorIsDeterministic(t *testing.T) {
	id := "b3c1a5d2-9f4e-4b6a-8a3f-2d7e1c9b0a45"
	first := DefaultNoteColor(id)
	second := DefaultNoteColor(id)

	assert.Equal(t, first, second)
	assert.Contains(t, noteDefaults, first)
}

func TestDefaultNoteColorHandlesNegativeHash(t *testing.T) {
	// Long ids overflow int32 and can hash negative; the index must stay
	// inside the palette either way.
	for _, id := range []string{"", "a", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", "0123456789abcdef"} {
		assert.Contains(t, noteDefaults, DefaultNoteColor(id))
	}
}

func TestMoodColor(t *testing.T) {
	assert.Equal(t, "#B5E8B5", MoodColor("happy"))
	assert.Equal(t, "#B5E8B5", MoodColor("Happy"))
	assert.Equal(t, "", MoodColor("melancholy"))
}
