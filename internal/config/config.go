// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the wiresim command configuration.
//
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/db47h/wiresim"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the command settings. Command line flags take precedence over
// file values.
//
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// Queries lists the wires to print. An empty list prints every wire.
	Queries []string `yaml:"queries"`
	// Overrides are applied after a first resolution; the circuit is then
	// resolved again.
	Overrides []Override `yaml:"overrides"`
}

// Override pins Wire to the value From resolves to in the first run. From is
// either a wire name or a literal.
//
type Override struct {
	Wire string `yaml:"wire"`
	From string `yaml:"from"`
}

func (o Override) String() string { return o.Wire + "=" + o.From }

// ParseOverride parses a "wire=from" override.
//
func ParseOverride(s string) (Override, error) {
	i := strings.IndexByte(s, '=')
	if i < 0 {
		return Override{}, errors.Errorf("invalid override %q: expected wire=source", s)
	}
	o := Override{Wire: strings.TrimSpace(s[:i]), From: strings.TrimSpace(s[i+1:])}
	return o, o.validate()
}

func (o Override) validate() error {
	if !wiresim.IsWireName(o.Wire) {
		return errors.Errorf("invalid override %q: bad wire name %q", o, o.Wire)
	}
	if _, err := wiresim.ParseOperand(o.From); err != nil {
		return errors.Wrapf(err, "invalid override %q", o)
	}
	return nil
}

// Default returns the default configuration.
//
func Default() *Config {
	return &Config{LogLevel: "warn"}
}

// Load reads a YAML configuration file. Unset fields keep their default
// value.
//
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// Decode reads a YAML configuration. Unknown fields are rejected.
//
func Decode(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	c := Default()
	if len(bytes.TrimSpace(b)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil {
			return nil, errors.Wrap(err, "decode config")
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration values.
//
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, q := range c.Queries {
		if _, err := wiresim.ParseOperand(q); err != nil {
			return errors.Wrapf(err, "query %q", q)
		}
	}
	for _, o := range c.Overrides {
		if err := o.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Level returns the configured log level.
//
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.WarnLevel, nil
	}
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return l, errors.Wrap(err, "log_level")
	}
	return l, nil
}
