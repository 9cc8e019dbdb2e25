package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	type page struct {
		Items []string `json:"items"`
		Total int      `json:"total"`
	}

	t.Run("string is stored raw", func(t *testing.T) {
		raw, err := encode("plain")
		require.NoError(t, err)
		assert.Equal(t, "plain", string(raw))

		var out string
		require.NoError(t, decode(raw, &out))
		assert.Equal(t, "plain", out)
	})

	t.Run("struct round trips through json", func(t *testing.T) {
		raw, err := encode(page{Items: []string{"a"}, Total: 1})
		require.NoError(t, err)
		assert.JSONEq(t, `{"items":["a"],"total":1}`, string(raw))

		var out page
		require.NoError(t, decode(raw, &out))
		assert.Equal(t, 1, out.Total)
	})

	t.Run("unencodable value", func(t *testing.T) {
		_, err := encode(make(chan int))
		assert.ErrorContains(t, err, "failed to marshal cache value")
	})

	t.Run("corrupt payload", func(t *testing.T) {
		var out page
		assert.ErrorContains(t, decode([]byte("{"), &out), "failed to unmarshal cache value")
	})
}
