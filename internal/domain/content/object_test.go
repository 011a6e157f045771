package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObject_PreservesOrderAndSiblings(t *testing.T) {
	obj, err := ParseObject([]byte(`{"logo": {"alt":"x" , "image":"a.png"}, "theme":"light", "menuItems":{"main":[]}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"logo", "theme", "menuItems"}, obj.Keys())

	obj.Set("theme", []byte(`"dark"`))
	assert.Equal(t, `{"logo":{"alt":"x","image":"a.png"},"theme":"dark","menuItems":{"main":[]}}`, string(obj.Bytes()))

	obj.Set("primaryColor", []byte(`"#fff"`))
	assert.Equal(t, "primaryColor", obj.Keys()[3])
}

func TestParseObject_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array", `[1,2]`},
		{"string", `"doc"`},
		{"truncated", `{"a":`},
		{"trailing", `{"a":1} {"b":2}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseObject([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestObject_Get(t *testing.T) {
	obj, err := ParseObject([]byte(`{"a":[1, 2]}`))
	require.NoError(t, err)

	v, ok := obj.Get("a")
	assert.True(t, ok)
	assert.Equal(t, `[1,2]`, string(v))

	_, ok = obj.Get("b")
	assert.False(t, ok)
	assert.Equal(t, `{}`, string(NewObject().Bytes()))
}

func TestCompact(t *testing.T) {
	out, err := Compact([]byte(" {\n \"a\": 1 }\n"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(out))

	_, err = Compact([]byte(`{"a":`))
	assert.Error(t, err)
}
