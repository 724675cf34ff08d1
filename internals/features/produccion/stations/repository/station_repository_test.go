package repository

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func patternOf(t *testing.T, filter bson.M) primitive.Regex {
	t.Helper()
	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	byName, ok := or[1].(bson.M)
	require.True(t, ok)
	rx, ok := byName["stationName"].(primitive.Regex)
	require.True(t, ok)
	return rx
}

func TestCategoryFilter(t *testing.T) {
	filter := categoryFilter("autoclave")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, bson.M{"category": "autoclave"}, or[0])

	rx := patternOf(t, filter)
	assert.Equal(t, "autoclave", rx.Pattern)
	assert.Equal(t, "i", rx.Options)

	// el match legado por nombre sigue funcionando como substring
	re := regexp.MustCompile("(?i)" + rx.Pattern)
	assert.True(t, re.MatchString("AUTOCLAVE 1"))
	assert.False(t, re.MatchString("PRENSA 2"))
}

func TestCategoryFilterEscapesMetacharacters(t *testing.T) {
	// un valor con metacaracteres de regex viene del query string:
	// debe matchear literal, no como patrón
	rx := patternOf(t, categoryFilter("autoclave (b.1)"))
	assert.Equal(t, regexp.QuoteMeta("autoclave (b.1)"), rx.Pattern)

	re := regexp.MustCompile("(?i)" + rx.Pattern)
	assert.True(t, re.MatchString("AUTOCLAVE (B.1) NORTE"))
	assert.False(t, re.MatchString("AUTOCLAVE B91"), "el punto no debe actuar como comodín")
}

func TestCategoryFilterEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, categoryFilter(""))
	assert.Equal(t, bson.M{}, categoryFilter("   "))
}
