package domain

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// TrackingFileName is the name of the tracking database inside the project data directory
const TrackingFileName = "tracking.toml"

// ChainKey derives the bucket key for the chain state identified by blockHash.
func ChainKey(blockHash common.Hash) string {
	digest := sha3.Sum256(blockHash.Bytes())
	return "0x" + hex.EncodeToString(digest[:])
}

// ContractKey derives the key of a contract within a chain bucket.
//
// Constructor arguments are joined without a separator, so ["ab", "c"] and
// ["a", "bc"] produce the same key. Existing tracking files depend on this.
func ContractKey(name, byteCode string, args []string) string {
	h := sha3.New256()
	h.Write([]byte(name))
	h.Write([]byte(byteCode))
	h.Write([]byte(strings.Join(args, "")))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// TrackingPath returns the dot-joined document path of a contract record
func TrackingPath(chainKey, contractKey string) string {
	return chainKey + "." + contractKey
}

// NormalizeByteCode trims surrounding whitespace and adds the 0x prefix
// that solc leaves off .bin files, so pasted and compiled bytecode derive
// the same contract key.
func NormalizeByteCode(raw string) string {
	code := strings.TrimSpace(raw)
	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	return code
}
