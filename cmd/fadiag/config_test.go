// SPDX-License-Identifier: MIT
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o600)
}

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestLoadConfigReturnsDefaultsForEmptyPath() {
	cfg, err := LoadConfig("")
	s.Require().NoError(err)
	s.Equal(defaultConfig(), cfg)
}

func (s *ConfigSuite) TestLoadConfigReturnsDefaultsForMissingFile() {
	cfg, err := LoadConfig(filepath.Join(s.T().TempDir(), "does-not-exist.yaml"))
	s.Require().NoError(err)
	s.Equal(defaultConfig(), cfg)
}

func (s *ConfigSuite) TestLoadConfigParsesOverrides() {
	path := filepath.Join(s.T().TempDir(), "fadiag.yaml")
	s.Require().NoError(writeFile(path, "cache_dir: /tmp/custom-cache\nlog_level: debug\n"))

	cfg, err := LoadConfig(path)
	s.Require().NoError(err)
	s.Equal("/tmp/custom-cache", cfg.CacheDir)
	s.Equal("debug", cfg.LogLevel)
}

func (s *ConfigSuite) TestLoadConfigRejectsUnparsableYAML() {
	path := filepath.Join(s.T().TempDir(), "fadiag.yaml")
	s.Require().NoError(writeFile(path, "cache_dir: [unterminated\n"))

	_, err := LoadConfig(path)
	s.Error(err)
}
