package models

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// DeploymentRecord identifies one deployed contract instance
type DeploymentRecord struct {
	Name    string         `json:"name" yaml:"name" mapstructure:"name"`
	Address common.Address `json:"address" yaml:"address" mapstructure:"address"`
}

// ChainBucket maps contract keys to the deployments observed under one chain state
type ChainBucket map[string]DeploymentRecord

// TrackingDatabase maps chain keys to their buckets
type TrackingDatabase map[string]ChainBucket

// TrackedDeployment is a record together with the keys it is stored under
type TrackedDeployment struct {
	ChainKey    string           `json:"chainKey" yaml:"chainKey"`
	ContractKey string           `json:"contractKey" yaml:"contractKey"`
	Record      DeploymentRecord `json:"record" yaml:"record"`
}

// Entries flattens the bucket into a slice sorted by contract name, then key
func (b ChainBucket) Entries(chainKey string) []TrackedDeployment {
	entries := make([]TrackedDeployment, 0, len(b))
	for key, record := range b {
		entries = append(entries, TrackedDeployment{
			ChainKey:    chainKey,
			ContractKey: key,
			Record:      record,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Record.Name != entries[j].Record.Name {
			return entries[i].Record.Name < entries[j].Record.Name
		}
		return entries[i].ContractKey < entries[j].ContractKey
	})
	return entries
}

// ContractIdentity is what identifies a locally built contract for tracking
type ContractIdentity struct {
	Name     string   `json:"name" yaml:"name"`
	ByteCode string   `json:"byteCode" yaml:"byteCode"`
	Args     []string `json:"args,omitempty" yaml:"args,omitempty"`
}
