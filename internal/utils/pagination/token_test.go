package pagination_test

import (
	"testing"
	"time"

	"github.com/bizfolio/portal_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	orderDate := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, time.March, 4, 10, 22, 31, 987654321, time.UTC)

	token := pagination.EncodeToken(orderDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, orderDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeTokenInvalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	_, _, err = pagination.DecodeToken("") // decodes to empty string, no separator
	assert.Error(t, err)

	_, _, err = pagination.DecodeToken(pagination.EncodeToken(time.Now(), time.Now())[:8])
	assert.Error(t, err)
}
