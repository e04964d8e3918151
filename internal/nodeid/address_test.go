// internal/nodeid/address_test.go
package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_String(t *testing.T) {
	testCases := []struct {
		name        string
		addr        *Address
		expectedStr string
		expectedRef string
	}{
		{
			name:        "simple address",
			addr:        &Address{Kind: "map", Name: "upper"},
			expectedStr: "map.upper",
			expectedRef: "operator.map.upper",
		},
		{
			name:        "zero address",
			addr:        &Address{},
			expectedStr: "",
			expectedRef: "",
		},
		{
			name:        "nil address",
			addr:        nil,
			expectedStr: "",
			expectedRef: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.addr.String())
			assert.Equal(t, tc.expectedRef, tc.addr.Reference())
		})
	}
}

func TestAddress_RoundTrip(t *testing.T) {
	testIDs := []string{
		"source.lines",
		"map.to_upper",
		"sink.out-file",
	}

	for _, id := range testIDs {
		t.Run(id, func(t *testing.T) {
			addr, err := Parse(id)
			require.NoError(t, err)

			roundTripID := addr.String()
			assert.Equal(t, id, roundTripID)

			roundTripAddr, err := Parse(addr.Reference())
			require.NoError(t, err)
			assert.True(t, addr.Equal(roundTripAddr))
		})
	}
}

func TestAddress_Equal(t *testing.T) {
	addr1, _ := Parse("map.a")
	addr2, _ := Parse("operator.map.a")
	addr3, _ := Parse("map.b")
	addr4, _ := Parse("filter.a")

	assert.True(t, addr1.Equal(addr2))
	assert.False(t, addr1.Equal(addr3))
	assert.False(t, addr1.Equal(addr4))
	assert.False(t, addr1.Equal(nil))
	assert.False(t, (*Address)(nil).Equal(addr1))
	assert.True(t, (*Address)(nil).Equal(nil))
}
