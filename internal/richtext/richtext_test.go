package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	out := Sanitize(`<p onclick="x()">Hi <strong>there</strong><script>alert(1)</script></p>`)

	assert.Equal(t, `<p>Hi <strong>there</strong></p>`, out)
	assert.Empty(t, Sanitize(""))
}

func TestPlainText(t *testing.T) {
	got := PlainText("<p>The CPC exam rewards <strong>speed</strong>.</p><p>Practice   weekly.</p>")
	assert.Equal(t, "The CPC exam rewards speed. Practice weekly.", got)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Short post", Excerpt("<p>Short post</p>", 40))

	long := "<p>" + strings.Repeat("coding ", 40) + "</p>"
	got := Excerpt(long, 30)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), 31)
	assert.False(t, strings.Contains(got, "codin…"))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"How to prepare for the CPC exam", "how-to-prepare-for-the-cpc-exam"},
		{"  ICD-10: What's new?  ", "icd-10-what-s-new"},
		{"2026 Batch", "2026-batch"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}
