package util

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// EnvPrefix is the prefix of all environment variables read by kvstore
	EnvPrefix = "kvstore"
)

// DotEnvFiles are read in order, later files override earlier ones
var DotEnvFiles = []string{".env", ".env.local"}

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// Config is the runtime configuration of the kv command
type Config struct {
	Home       string // Directory of the database file
	File       string // Name of the database file
	LogLevel   string // debug, info, warn or error
	AtomicSave bool   // Replace the database file atomically on save
}

// DBPath returns the location of the database file
func (c *Config) DBPath() string {
	return filepath.Join(c.Home, c.File)
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-12s: %s\n", name, value))
	}

	sb.WriteString("CONFIGURATION\n")
	addField("Database", c.DBPath())
	addField("Atomic Save", fmt.Sprintf("%t", c.AtomicSave))
	addField("Log Level", c.LogLevel)
	return sb.String()
}

// InitConfig initializes configuration from environment variables and .env files.
// Only KVSTORE_* entries of the .env files are used and they are not exported
// to the process environment, since that environment is what --init inspects.
func InitConfig() {
	viper.SetDefault("home", ".")
	viper.SetDefault("file", "kv.db")
	viper.SetDefault("log-level", "warn")
	viper.SetDefault("atomic-save", true)

	for _, file := range DotEnvFiles {
		values, err := godotenv.Read(file)
		if err != nil {
			continue
		}
		for key, value := range DotEnvConfig(values) {
			viper.SetDefault(key, value)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// DotEnvConfig maps KVSTORE_* entries of a .env file to viper keys
// (KVSTORE_ATOMIC_SAVE becomes atomic-save). Other entries are dropped.
func DotEnvConfig(values map[string]string) map[string]string {
	prefix := strings.ToUpper(EnvPrefix) + "_"
	out := make(map[string]string)
	for key, value := range values {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, prefix))
		out[strings.ReplaceAll(name, "_", "-")] = value
	}
	return out
}

// GetConfig reads the configuration from viper
func GetConfig() *Config {
	return &Config{
		Home:       viper.GetString("home"),
		File:       viper.GetString("file"),
		LogLevel:   viper.GetString("log-level"),
		AtomicSave: viper.GetBool("atomic-save"),
	}
}
