package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/tintoy/cloudcontrol-client-core/internal/constants"
	"github.com/tintoy/cloudcontrol-client-core/pkg/ccclient"
	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		username    string
		password    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to CloudControl",
		Long:  "Verify credentials against a CloudControl API endpoint and save them for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API base address: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if username == "" {
				username = viper.GetString("username")
			}

			if username == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("User name: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			client, err := ccclient.New(&cloudcontrol.Config{
				BaseAddress: apiEndpoint,
				Username:    username,
				Password:    password,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			defer func() { _ = client.Close() }()

			// Verify the credentials before saving anything.
			account, err := client.GetAccount(cmd.Context())
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			err = saveCredentials(apiEndpoint, username, password)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (organization %s)\n", account.UserName, account.OrganizationID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API base address")
	cmd.Flags().StringVarP(&username, "username", "u", "", "API user name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "API password (prompted when omitted)")

	return cmd
}

// saveCredentials persists the verified credentials to the config file.
func saveCredentials(apiEndpoint, username, password string) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}

		configFile = filepath.Join(home, ".cloudcontrol", "config.yml")
	}

	content, err := yaml.Marshal(map[string]string{
		"api":      apiEndpoint,
		"username": username,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(configFile, content, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
