package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestContainsFilter(t *testing.T) {
	filter := containsFilter("a.b+", "name", "email")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	first := or[0].(bson.M)
	re := first["name"].(primitive.Regex)
	assert.Equal(t, `a\.b\+`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}
