package pagination_test

import (
	"testing"
	"time"

	"github.com/storebooks/cash_position_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	localDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 6, 1, 14, 37, 12, 345678000, time.UTC)

	token := pagination.EncodeToken(localDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, localDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeTokenInvalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	_, _, err = pagination.DecodeToken("aGVsbG8=") // decodes, but has no separator
	assert.Error(t, err)
}

func TestMultiFieldTokenRoundTrip(t *testing.T) {
	token := pagination.EncodeMultiFieldToken("2024-06-01", "loc-42", "17")
	fields, err := pagination.DecodeMultiFieldToken(token)

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01", "loc-42", "17"}, fields)
}
