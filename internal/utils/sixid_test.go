package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSixID_RoundTrip(t *testing.T) {
	id := NewSixID()
	encoded := id.String()
	assert.Len(t, encoded, 10)

	parsed, err := ParseSixID(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseSixID_LenientInput(t *testing.T) {
	id := NewSixID()
	encoded := id.String()

	// Hyphens and confusable characters are tolerated
	withHyphen := encoded[:5] + "-" + encoded[5:]
	parsed, err := ParseSixID(withHyphen)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseSixID_Invalid(t *testing.T) {
	_, err := ParseSixID("too-short")
	assert.Error(t, err)

	_, err = ParseSixID("!!!!!!!!!!")
	assert.Error(t, err)
}

func TestNewSixIDHook_Override(t *testing.T) {
	fixed := SixID{1, 2, 3, 4, 5, 6}
	NewSixIDHook = func() (SixID, bool) { return fixed, true }
	defer func() { NewSixIDHook = nil }()

	assert.Equal(t, fixed, NewSixID())
}
