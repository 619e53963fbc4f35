package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Profile selects which local model runtime a session talks to and how the
// bot presents itself. All fields are optional; zero values fall back to
// the built-in defaults.
type Profile struct {
	Binary       string `json:"binary,omitempty"`
	Model        string `json:"model"`
	BotName      string `json:"bot_name,omitempty"`
	SystemPrompt string `json:"system_prompt,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
}

const (
	defaultBinary = "ollama"
	defaultModel  = "deepseek-v3.1:671b-cloud"
)

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

func (c *Config) GetBinary() string {
	if c.currentProfile == nil || c.currentProfile.Binary == "" {
		return defaultBinary
	}
	return c.currentProfile.Binary
}

func (c *Config) GetModel() string {
	if c.currentProfile == nil || c.currentProfile.Model == "" {
		return defaultModel
	}
	return c.currentProfile.Model
}

// GetBotName returns the pinned persona name, or "" to pick one at random.
func (c *Config) GetBotName() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.BotName
}

// GetSystemPrompt returns the profile's instruction override, or "" for the
// built-in tech support instruction.
func (c *Config) GetSystemPrompt() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.SystemPrompt
}

func getConfigPath() (string, error) {
	var configDir string

	// Use DESKBOT_HOME if set, otherwise use user's home directory
	if deskbotHome := os.Getenv("DESKBOT_HOME"); deskbotHome != "" {
		configDir = deskbotHome
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".deskbot", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": {
				Binary: defaultBinary,
				Model:  defaultModel,
			},
		},
		ActiveProfile: "default",
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if c.Profiles == nil {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// If active profile doesn't exist, fall back to any available one
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}
