package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentBlock_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ContentBlock
		wantErr bool
	}{
		{"paragraph", `"Fees are due upfront."`, Paragraph("Fees are due upfront."), false},
		{"bullet list", `{"type":"list","items":["UPI","Card"]}`, BulletList("UPI", "Card"), false},
		{"ordered list", `{"type":"ordered-list","items":["one"]}`, OrderedList("one"), false},
		{"empty list", `{"type":"list","items":[]}`, BulletList(), false},
		{"missing items", `{"type":"list"}`, ContentBlock{}, true},
		{"unknown type", `{"type":"table","items":["a"]}`, ContentBlock{}, true},
		{"number", `42`, ContentBlock{}, true},
		{"array", `["a"]`, ContentBlock{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ContentBlock
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentBlock_MarshalJSON(t *testing.T) {
	blocks := []ContentBlock{Paragraph("intro"), BulletList("a", "b"), OrderedList()}

	data, err := json.Marshal(blocks)
	require.NoError(t, err)
	assert.JSONEq(t, `["intro",{"type":"list","items":["a","b"]},{"type":"ordered-list","items":[]}]`, string(data))
}

func TestContentBlock_EditText(t *testing.T) {
	assert.Equal(t, "intro", Paragraph("intro").EditText())
	assert.Equal(t, "UPI\nCard", BulletList("UPI", "Card").EditText())
}

func TestParseBlock(t *testing.T) {
	block, err := ParseBlock(BlockOrderedList, "first\n\n  second  \n")
	require.NoError(t, err)
	assert.Equal(t, OrderedList("first", "second"), block)

	block, err = ParseBlock(BlockParagraph, "line one\nline two")
	require.NoError(t, err)
	assert.Equal(t, Paragraph("line one\nline two"), block)

	_, err = ParseBlock("table", "x")
	assert.Error(t, err)
}

func TestParseBlock_RoundTripsEditText(t *testing.T) {
	original := BulletList("UPI", "Bank transfer")

	parsed, err := ParseBlock(original.Kind, original.EditText())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}
