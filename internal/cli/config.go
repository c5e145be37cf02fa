package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// Config holds CLI configuration
type Config struct {
	ServerURL     string
	AdminPassword string
	SessionFile   string
	Output        string
	Verbose       bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:     getEnvOrDefault("ANCHORCTL_SERVER", "http://localhost:3001"),
		AdminPassword: os.Getenv("ANCHORCTL_ADMIN_PASSWORD"),
		SessionFile:   getEnvOrDefault("ANCHORCTL_SESSION_FILE", defaultSessionFile()),
		Output:        "text",
		Verbose:       false,
	}
}

// LoadSession loads the session selection from the session file.
// A missing file yields a fresh selection.
func (c *Config) LoadSession() (model.SessionSelection, error) {
	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewSessionSelection(), nil
		}
		return model.SessionSelection{}, err
	}

	var state model.SessionSelection
	if err := json.Unmarshal(data, &state); err != nil {
		return model.SessionSelection{}, err
	}
	if state.Mode == "" {
		state = model.NewSessionSelection()
	}
	return state, nil
}

// SaveSession writes the session selection to the session file
func (c *Config) SaveSession(state model.SessionSelection) error {
	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, data, 0600)
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".anchorctl/session.json"
	}
	return filepath.Join(home, ".anchorctl", "session.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
