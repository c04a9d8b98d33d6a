// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlset.yaml"

type ShellConfig struct {
	Prompt       string `yaml:"prompt"`
	ConfirmClear bool   `yaml:"confirm_clear"`
	ShowTree     bool   `yaml:"show_tree"`
	InitialKeys  []int  `yaml:"initial_keys"`
}

type DemoConfig struct {
	Count int `yaml:"count"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type CacheConfig struct {
	TTL string `yaml:"ttl"`
}

type Config struct {
	Shell ShellConfig `yaml:"shell"`
	Demo  DemoConfig  `yaml:"demo"`
	Log   LogConfig   `yaml:"log"`
	Cache CacheConfig `yaml:"cache"`
}

var defaultConfig = Config{
	Shell: ShellConfig{
		Prompt:       "avlset",
		ConfirmClear: true,
		ShowTree:     true,
	},
	Demo: DemoConfig{
		Count: 15,
	},
	Log: LogConfig{
		Level: "info",
	},
	Cache: CacheConfig{
		TTL: "10m",
	},
}

// LoadConfig reads ~/.avlset.yaml. A missing or unreadable file yields the
// defaults; a malformed one yields the defaults and the parse error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	// Keys absent from the file keep their defaults.
	if err := yaml.Unmarshal(data, &config); err != nil {
		config = defaultConfig
		return &config, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	if config.Demo.Count <= 0 {
		config.Demo.Count = defaultConfig.Demo.Count
	}

	return &config, nil
}

// CacheTTL returns the render cache lifetime, falling back to ten minutes.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("⚠️  %v (showing defaults)\n\n", err)
	}

	fmt.Printf("🔧 avlset Configuration Settings\n")
	fmt.Printf("═══════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")
	fmt.Print(formatSettings(config))
}

func formatSettings(config *Config) string {
	row := func(key string, value interface{}) string {
		return fmt.Sprintf("  • %s%s%s: %v\n", Green, key, Reset, value)
	}

	s := fmt.Sprintf("🌳 %sShell:%s\n", Green, Reset)
	s += row("prompt", config.Shell.Prompt)
	s += row("confirm_clear", config.Shell.ConfirmClear)
	s += row("show_tree", config.Shell.ShowTree)
	s += row("initial_keys", config.Shell.InitialKeys)
	s += fmt.Sprintf("\n🎬 %sDemo:%s\n", Green, Reset)
	s += row("count", config.Demo.Count)
	s += fmt.Sprintf("\n📜 %sLog:%s\n", Green, Reset)
	s += row("level", config.Log.Level)
	s += fmt.Sprintf("\n🗃  %sCache:%s\n", Green, Reset)
	s += row("ttl", config.CacheTTL())
	return s
}
