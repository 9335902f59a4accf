package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := Hash("Abcdefg1!")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, Verify("Abcdefg1!", hash))
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.False(t, Verify("incorrect horse battery staple", hash))
}

func TestHash_NonDeterministicOutput(t *testing.T) {
	t.Parallel()

	h1, err := Hash("Abcdefg1!")
	require.NoError(t, err)
	h2, err := Hash("Abcdefg1!")
	require.NoError(t, err)

	// Random salt: two hashes of the same input differ, both verify.
	assert.NotEqual(t, h1, h2)
	assert.True(t, Verify("Abcdefg1!", h1))
	assert.True(t, Verify("Abcdefg1!", h2))
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	assert.False(t, Verify("whatever", ""))
	assert.False(t, Verify("whatever", "not-a-bcrypt-hash"))
	assert.False(t, Verify("whatever", "$2a$10$truncated"))
}
