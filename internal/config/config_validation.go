// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Startup fails fast on
// the first violation.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" && (cfg.Storage.DB.Host == "" || cfg.Storage.DB.Name == "") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
