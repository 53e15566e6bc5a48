package cli

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
)

func TestParseBlockHash(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    common.Hash
		wantErr bool
	}{
		{
			name:  "full hash",
			input: "0x0000000000000000000000000000000000000000000000000000000000000001",
			want:  common.HexToHash("0x01"),
		},
		{
			name:  "surrounding whitespace",
			input: " 0x0000000000000000000000000000000000000000000000000000000000000001\n",
			want:  common.HexToHash("0x01"),
		},
		{name: "short", input: "0x01", wantErr: true},
		{name: "missing prefix", input: "0000000000000000000000000000000000000000000000000000000000000001", wantErr: true},
		{name: "not hex", input: "0xzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBlockHash(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidBlockHash)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAddress(t *testing.T) {
	addr, err := parseAddress("0x1111111111111111111111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), addr)

	addr, err = parseAddress("2222222222222222222222222222222222222222")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), addr)

	_, err = parseAddress("0x1234")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestContractFlagsIdentity(t *testing.T) {
	f := contractFlags{name: "Token", byteCode: "0x6001"}
	id := f.identity()
	assert.Equal(t, "Token", id.Name)
	assert.NotNil(t, id.Args)
	assert.Empty(t, id.Args)
}

func TestContractFlagsIdentity_NormalizesByteCode(t *testing.T) {
	pasted := contractFlags{name: "Token", byteCode: "6001\n"}
	prefixed := contractFlags{name: "Token", byteCode: "0x6001"}

	assert.Equal(t, "0x6001", pasted.identity().ByteCode)
	assert.Equal(t, prefixed.identity(), pasted.identity())
}
