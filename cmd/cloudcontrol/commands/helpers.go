// Package commands implements the cloudcontrol CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tintoy/cloudcontrol-client-core/pkg/ccclient"
	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// Static errors for err113 compliance.
var (
	ErrNotLoggedIn      = errors.New("not logged in: run 'cloudcontrol login' or set --api, CLOUDCONTROL_USERNAME and CLOUDCONTROL_PASSWORD")
	ErrResourceNotFound = errors.New("not found")
)

// CreateClient builds a client from the effective configuration (flags,
// environment, config file).
func CreateClient() (cloudcontrol.Client, error) {
	api := viper.GetString("api")
	username := viper.GetString("username")
	password := viper.GetString("password")

	if api == "" || username == "" || password == "" {
		return nil, ErrNotLoggedIn
	}

	config := &cloudcontrol.Config{
		BaseAddress: api,
		Username:    username,
		Password:    password,
		APIVersion:  viper.GetString("api-version"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = &stderrLogger{}
	}

	client, err := ccclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// formatTime renders a resource timestamp for table output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format("2006-01-02 15:04:05")
}

// stderrLogger is a minimal cloudcontrol.Logger for --verbose mode.
type stderrLogger struct{}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s %v\n", level, msg, fields)
}
