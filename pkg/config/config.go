package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

const (
	OrganizationEnv = "DOCKERHUB_ORGANIZATION"
	PortEnv         = "app_port"

	DefaultPort = "2113"
)

var ErrMissingOrganization = errors.New("dockerhub_organization must exist")

type Config struct {
	Organization string
	Port         int
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("port", DefaultPort)

	// explicit names: app_port is lowercase and must not be upper-cased by viper
	if err := v.BindEnv("organization", OrganizationEnv); err != nil {
		return Config{}, err
	}
	if err := v.BindEnv("port", PortEnv); err != nil {
		return Config{}, err
	}

	organization := v.GetString("organization")
	if organization == "" {
		return Config{}, ErrMissingOrganization
	}

	port, err := strconv.Atoi(v.GetString("port"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", PortEnv, err)
	}

	return Config{
		Organization: organization,
		Port:         port,
	}, nil
}

// ListenAddress binds all interfaces.
func (c Config) ListenAddress() string {
	return fmt.Sprintf(":%d", c.Port)
}
