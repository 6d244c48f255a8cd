package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

// NewAccountCommand creates the account command.
func NewAccountCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			var account *cloudcontrol.Account
			if refresh {
				account, err = client.RefreshAccount(cmd.Context())
			} else {
				account, err = client.GetAccount(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return outputAccount(account)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cached account")

	return cmd
}

func outputAccount(account *cloudcontrol.Account) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(account)
	case OutputFormatYAML:
		return outputYAML(account)
	default:
		return outputAccountTable(account)
	}
}

func outputAccountTable(account *cloudcontrol.Account) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("User Name", account.UserName)
	_ = table.Append("Full Name", account.FullName)
	_ = table.Append("Email", account.EmailAddress)
	_ = table.Append("Department", account.Department)
	_ = table.Append("Organization", account.OrganizationID.String())

	_ = table.Render()

	return nil
}
