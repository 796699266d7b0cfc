package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Version: "1",
		Gateway: GatewayConf{DefaultContract: "token", MaxQueryLimit: 100},
		Contracts: map[string]string{
			"token":   "CTOKEN",
			"staking": "CSTAKING",
		},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string // substring; empty = valid
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing version",
			mutate:  func(c *Config) { c.Version = "" },
			wantErr: "version is required",
		},
		{
			name:    "no contracts",
			mutate:  func(c *Config) { c.Contracts = nil; c.Gateway.DefaultContract = "" },
			wantErr: "at least one contract",
		},
		{
			name:    "empty address",
			mutate:  func(c *Config) { c.Contracts["token"] = "" },
			wantErr: "address is required",
		},
		{
			name:    "duplicate address",
			mutate:  func(c *Config) { c.Contracts["staking"] = "CTOKEN" },
			wantErr: "share address",
		},
		{
			name:    "unknown default contract",
			mutate:  func(c *Config) { c.Gateway.DefaultContract = "lending" },
			wantErr: "not a defined contract",
		},
		{
			name:    "negative query limit",
			mutate:  func(c *Config) { c.Gateway.MaxQueryLimit = -1 },
			wantErr: "must not be negative",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}
