// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment.
func parseEnv(cfg any) error {
	return parseEnvWith(cfg, env.Options{})
}

// parseEnvFrom populates cfg from the given variables instead of the
// process environment.
func parseEnvFrom(cfg any, environment map[string]string) error {
	return parseEnvWith(cfg, env.Options{Environment: environment})
}

func parseEnvWith(cfg any, opts env.Options) error {
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
