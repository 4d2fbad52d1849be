package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// RememberedLogin is the content of session.json. It lets one-shot
// commands replay the last login. The password is kept in plaintext,
// like the account snapshot itself.
type RememberedLogin struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// HasSession checks if the session file exists.
func (c *Config) HasSession() bool {
	_, err := os.Stat(c.SessionPath())
	return err == nil
}

// SaveSession writes session.json with mode 0600.
func (c *Config) SaveSession(username, password string) (RememberedLogin, error) {
	login := RememberedLogin{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.EnsureDir(); err != nil {
		return login, fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(login, "", "  ")
	if err != nil {
		return login, err
	}
	if err := os.WriteFile(c.SessionPath(), data, 0600); err != nil {
		return login, err
	}
	return login, nil
}

// LoadSession reads session.json.
func (c *Config) LoadSession() (RememberedLogin, error) {
	var login RememberedLogin
	data, err := os.ReadFile(c.SessionPath())
	if err != nil {
		return login, err
	}
	if err := json.Unmarshal(data, &login); err != nil {
		return login, fmt.Errorf("invalid %s: %w", SessionFile, err)
	}
	if login.Username == "" {
		return login, fmt.Errorf("invalid %s: missing username", SessionFile)
	}
	return login, nil
}

// RemoveSession deletes the session file.
func (c *Config) RemoveSession() error {
	return os.Remove(c.SessionPath())
}
