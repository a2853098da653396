package blogservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		expected int
	}{
		{
			name:     "plain text",
			html:     "one two three",
			expected: 3,
		},
		{
			name:     "tags stripped",
			html:     "<p>one <strong>two</strong> three</p>",
			expected: 3,
		},
		{
			name:     "empty",
			html:     "",
			expected: 0,
		},
		{
			name:     "tags only",
			html:     "<p></p><br/>",
			expected: 0,
		},
		{
			name:     "adjacent elements do not merge words",
			html:     "<h2>Heading</h2><p>body</p>",
			expected: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CountWords(tc.html))
		})
	}
}

func TestEstimateReadingTime(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		expected int
	}{
		{
			name:     "400 words is two minutes at 200 wpm",
			html:     "<p>" + strings.Repeat("word ", 400) + "</p>",
			expected: 2,
		},
		{
			name:     "201 words rounds up",
			html:     strings.Repeat("word ", 201),
			expected: 2,
		},
		{
			name:     "empty content floors at one minute",
			html:     "",
			expected: 1,
		},
		{
			name:     "short content floors at one minute",
			html:     "<p>a few words</p>",
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EstimateReadingTime(tc.html))
		})
	}
}

func TestComposeReadingTime(t *testing.T) {
	// The save-time formula runs at 150 wpm, so the same content can store a
	// longer duration than the render-side estimate.
	assert.Equal(t, 1, ComposeReadingTime(0))
	assert.Equal(t, 1, ComposeReadingTime(150))
	assert.Equal(t, 2, ComposeReadingTime(151))
	assert.Equal(t, 3, ComposeReadingTime(400))
	assert.Equal(t, 2, EstimateReadingTime(strings.Repeat("word ", 400)))
}
