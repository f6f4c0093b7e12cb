// Package config loads the process configuration from the environment. The
// service account credential blob is required - the process refuses to
// start without it.
package config

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const DefaultAddr = ":8000"

type Config struct {
	// Addr is the address the HTTP server listens on.
	Addr string

	// Credentials is the decoded service account JSON.
	Credentials []byte
}

// Load reads SHEETSD_ADDR and SERVICE_ACCOUNT_B64 from the environment.
// SERVICE_ACCOUNT_B64 is a base64-encoded service account JSON blob -
// missing or undecodable is a fatal startup error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", DefaultAddr)

	_ = v.BindEnv("addr", "SHEETSD_ADDR")
	_ = v.BindEnv("service_account_b64", "SERVICE_ACCOUNT_B64")

	blob := strings.TrimSpace(v.GetString("service_account_b64"))
	if blob == "" {
		return nil, fmt.Errorf("SERVICE_ACCOUNT_B64 is not set")
	}

	credentials, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_ACCOUNT_B64 (%v)", err)
	}

	return &Config{
		Addr:        v.GetString("addr"),
		Credentials: credentials,
	}, nil
}
