package ai

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	mimeType, data, err := DecodeDataURI(uri)

	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, payload, data)
}

func TestDecodeDataURIJPEG(t *testing.T) {
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))

	mimeType, data, err := DecodeDataURI(uri)

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestDecodeDataURIErrors(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "plain URL", uri: "https://example.com/image.png"},
		{name: "missing comma", uri: "data:image/png;base64"},
		{name: "non-base64 encoding", uri: "data:image/png,rawbytes"},
		{name: "urlencoded instead of base64", uri: "data:image/png;charset=utf-8,abc"},
		{name: "missing mime type", uri: "data:;base64,aGk="},
		{name: "invalid base64 payload", uri: "data:image/png;base64,!!!not-base64!!!"},
		{name: "empty string", uri: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeDataURI(tt.uri)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedDataURI)
		})
	}
}
