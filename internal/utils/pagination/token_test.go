package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeCursor(createdAt, "proj-123")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedCreatedAt, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedCreatedAt, "Creation time should match after decode")
	assert.Equal(t, "proj-123", decodedID, "ID should match after decode")

	// Zero time still round-trips
	zeroToken := EncodeCursor(time.Time{}, "")
	decodedZero, decodedEmptyID, err := DecodeCursor(zeroToken)
	assert.NoError(t, err)
	assert.Equal(t, time.Time{}, decodedZero)
	assert.Equal(t, "", decodedEmptyID)

	// UUID-shaped IDs are opaque to the codec
	now := time.Now().UTC()
	nowToken := EncodeCursor(now, "8f14e45f-ceea-467f-a0f9-b7a9d2c3e1aa")
	decodedNow, decodedUUID, err := DecodeCursor(nowToken)
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNow), "Creation time should match after decode")
	assert.Equal(t, "8f14e45f-ceea-467f-a0f9-b7a9d2c3e1aa", decodedUUID)
}

func TestDecodeCursorError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	invalidToken := "MjAyNS0wNS0xNVQwMDowMDowMFo=" // encoded date without separator
	_, _, err = DecodeCursor(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Garbage timestamp
	garbage := base64.StdEncoding.EncodeToString([]byte("notadate|proj-123"))
	_, _, err = DecodeCursor(garbage)
	assert.Error(t, err, "Should return an error for invalid timestamp format")
	assert.Contains(t, err.Error(), "created_at parse", "Error should mention timestamp parsing issue")
}
