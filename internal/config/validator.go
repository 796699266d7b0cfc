package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for:
//   - Required fields (version, at least one contract identity)
//   - Empty or duplicate contract addresses
//   - A default_contract that references a defined contract
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Version == "" {
		errs = append(errs, "version is required")
	}
	if len(cfg.Contracts) == 0 {
		errs = append(errs, "contracts: at least one contract identity is required")
	}

	byAddr := make(map[string]string) // address → logical name
	for name, addr := range cfg.Contracts {
		if name == "" {
			errs = append(errs, "contracts: empty contract name")
			continue
		}
		if addr == "" {
			errs = append(errs, fmt.Sprintf("contract %s: address is required", name))
			continue
		}
		if prev, ok := byAddr[addr]; ok {
			errs = append(errs, fmt.Sprintf("contracts %s and %s share address %q", prev, name, addr))
		} else {
			byAddr[addr] = name
		}
	}

	if dc := cfg.Gateway.DefaultContract; dc != "" {
		if _, ok := cfg.Contracts[dc]; !ok {
			errs = append(errs, fmt.Sprintf("gateway.default_contract %q is not a defined contract", dc))
		}
	}
	if cfg.Gateway.MaxQueryLimit < 0 {
		errs = append(errs, "gateway.max_query_limit must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
