package config

// Config is the top-level YAML structure.
type Config struct {
	Version   string            `yaml:"version"`
	Gateway   GatewayConf       `yaml:"gateway"`
	Contracts map[string]string `yaml:"contracts"` // logical name → contract address
}

// GatewayConf holds tunable gateway settings. Emission itself is not
// configurable: nothing here can suppress or reorder a publish.
type GatewayConf struct {
	// DefaultContract names the identity used when a request does not
	// select one explicitly.
	DefaultContract string `yaml:"default_contract"`
	// MaxQueryLimit caps the page size of ledger queries.
	MaxQueryLimit int `yaml:"max_query_limit"`
}
