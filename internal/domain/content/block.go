package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// BlockKind identifies the variant held by a ContentBlock
type BlockKind string

const (
	BlockParagraph   BlockKind = "paragraph"
	BlockList        BlockKind = "list"
	BlockOrderedList BlockKind = "ordered-list"
)

var ErrInvalidBlock = errors.New("content block must be a string or an object with type list|ordered-list and items")

// ContentBlock is one entry of a policy section body: a paragraph, a bullet
// list or an ordered list. On the wire a paragraph is a bare JSON string and
// a list is {"type": "...", "items": [...]}.
type ContentBlock struct {
	Kind  BlockKind
	Text  string
	Items []string
}

// Paragraph builds a paragraph block
func Paragraph(text string) ContentBlock {
	return ContentBlock{Kind: BlockParagraph, Text: text}
}

// BulletList builds an unordered list block
func BulletList(items ...string) ContentBlock {
	return ContentBlock{Kind: BlockList, Items: nonNil(items)}
}

// OrderedList builds an ordered list block
func OrderedList(items ...string) ContentBlock {
	return ContentBlock{Kind: BlockOrderedList, Items: nonNil(items)}
}

// IsList reports whether the block is one of the list variants
func (b ContentBlock) IsList() bool {
	return b.Kind == BlockList || b.Kind == BlockOrderedList
}

// EditText returns the block as the operator edits it: the paragraph text,
// or one list item per line.
func (b ContentBlock) EditText() string {
	if b.IsList() {
		return strings.Join(b.Items, "\n")
	}
	return b.Text
}

// ParseBlock builds a block of the given kind from edit text. List kinds take
// one item per non-blank line.
func ParseBlock(kind BlockKind, text string) (ContentBlock, error) {
	switch kind {
	case BlockParagraph, "":
		return Paragraph(text), nil
	case BlockList, BlockOrderedList:
		items := []string{}
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				items = append(items, line)
			}
		}
		return ContentBlock{Kind: kind, Items: items}, nil
	default:
		return ContentBlock{}, fmt.Errorf("unknown block kind %q", kind)
	}
}

type listBlockJSON struct {
	Type  BlockKind `json:"type"`
	Items []string  `json:"items"`
}

// MarshalJSON writes a paragraph as a string and a list as a typed object
func (b ContentBlock) MarshalJSON() ([]byte, error) {
	if b.IsList() {
		return json.Marshal(listBlockJSON{Type: b.Kind, Items: nonNil(b.Items)})
	}
	return json.Marshal(b.Text)
}

// UnmarshalJSON accepts either wire form and rejects anything else
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidBlock
	}

	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*b = Paragraph(text)
		return nil
	case '{':
		var raw struct {
			Type  BlockKind `json:"type"`
			Items *[]string `json:"items"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw.Items == nil || (raw.Type != BlockList && raw.Type != BlockOrderedList) {
			return ErrInvalidBlock
		}
		*b = ContentBlock{Kind: raw.Type, Items: nonNil(*raw.Items)}
		return nil
	default:
		return ErrInvalidBlock
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
