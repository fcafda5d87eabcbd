// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallback values applied by applyDefaults for settings that were not
// provided by any configuration source.
const (
	defaultHTTPAddress    = "0.0.0.0:8080"
	defaultTokenIssuer    = "zentask"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills in fallback values for optional settings that were
// left empty by every configuration source. Secrets (TokenSignKey) and the
// database DSN are deliberately never defaulted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
