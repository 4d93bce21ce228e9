package cache_test

import (
	"strconv"
	"testing"

	"handoff-address/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}

func TestNormalizeAddressComponent(t *testing.T) {
	cases := map[string]string{
		"123 Main Street":              "123 main st",
		"  45   Ocean   Avenue, Miami": "45 ocean ave, miami",
		"Drive In Road":                "drive in rd",
		"streetwise lane":              "streetwise ln",
	}
	for in, want := range cases {
		assert.Equal(t, want, cache.NormalizeAddressComponent(in), in)
	}
}

func TestSuggestionsKey(t *testing.T) {
	assert.Equal(t, cache.SuggestionsKey("US", "123 Main Street"), cache.SuggestionsKey("us", "123  main st"))
	assert.Equal(t, "place:ChIJ1", cache.PlaceKey("ChIJ1"))
}
