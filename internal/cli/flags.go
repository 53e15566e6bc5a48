package cli

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
)

// contractFlags identify a contract by name, bytecode and constructor arguments
type contractFlags struct {
	name     string
	byteCode string
	args     []string
}

func (f *contractFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.name, "name", "", "Contract name")
	flags.StringVar(&f.byteCode, "bytecode", "", "Contract creation bytecode (hex, 0x prefix optional)")
	flags.StringArrayVar(&f.args, "arg", nil, "Constructor argument (repeatable, order matters)")
	_ = cobra.MarkFlagRequired(flags, "name")
	_ = cobra.MarkFlagRequired(flags, "bytecode")
}

// identity normalizes bytecode the way artifacts are read, so a contract
// tracked from pasted .bin contents matches what plan derives
func (f *contractFlags) identity() models.ContractIdentity {
	args := f.args
	if args == nil {
		args = []string{}
	}
	return models.ContractIdentity{
		Name:     f.name,
		ByteCode: domain.NormalizeByteCode(f.byteCode),
		Args:     args,
	}
}

// parseBlockHash parses a 0x-prefixed 32 byte block hash
func parseBlockHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: %s", domain.ErrInvalidBlockHash, s)
	}
	return common.BytesToHash(b), nil
}

// parseAddress parses a hex address, with or without 0x prefix
func parseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}
