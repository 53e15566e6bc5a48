package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	ConfigPath string
	Key        string
	Value      any
}

// SetConfig is a use case for setting treb.toml values
type SetConfig struct {
	store ProjectConfigStore
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store ProjectConfigStore) *SetConfig {
	return &SetConfig{
		store: store,
	}
}

// Run executes the set config use case. Failures are returned as
// *domain.ConfigurationSetError.
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key := strings.TrimSpace(params.Key)

	if !config.IsValidConfigKey(key) {
		return nil, &domain.ConfigurationSetError{Err: unknownKeyError(key)}
	}

	var value any = params.Value
	if config.IsListKey(key) {
		list, err := parseList(params.Value)
		if err != nil {
			return nil, &domain.ConfigurationSetError{Err: err}
		}
		value = list
	}

	if err := uc.store.Set(ctx, key, value); err != nil {
		return nil, &domain.ConfigurationSetError{Err: err}
	}

	return &SetConfigResult{
		ConfigPath: uc.store.Path(),
		Key:        key,
		Value:      value,
	}, nil
}

func unknownKeyError(key string) error {
	validKeys := make([]string, 0, len(config.ValidConfigKeys()))
	for _, k := range config.ValidConfigKeys() {
		if k == config.ConfigKeyDeploymentArgs {
			validKeys = append(validKeys, string(k)+".<Contract>")
		} else {
			validKeys = append(validKeys, string(k))
		}
	}

	if matches := fuzzy.Find(key, validKeys); len(matches) > 0 {
		return fmt.Errorf("unknown config key: %s (did you mean %s?)", key, matches[0].Str)
	}
	return fmt.Errorf("unknown config key: %s\nAvailable keys: %s", key, strings.Join(validKeys, ", "))
}

// parseList accepts either a TOML array literal or a comma separated list
func parseList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		var doc struct {
			V []string `toml:"v"`
		}
		if _, err := toml.Decode("v = "+raw, &doc); err != nil {
			return nil, fmt.Errorf("invalid list value %s: %w", raw, err)
		}
		return doc.V, nil
	}

	list := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list, nil
}
