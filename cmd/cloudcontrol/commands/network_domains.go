package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tintoy/cloudcontrol-client-core/internal/constants"
	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

// NewNetworkDomainsCommand creates the network-domains command group.
func NewNetworkDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "network-domains",
		Aliases: []string{"network-domain"},
		Short:   "Manage network domains",
		Long:    "List, inspect, deploy, and delete CloudControl network domains",
	}

	cmd.AddCommand(newNetworkDomainsListCommand())
	cmd.AddCommand(newNetworkDomainsGetCommand())
	cmd.AddCommand(newNetworkDomainsDeployCommand())
	cmd.AddCommand(newNetworkDomainsDeleteCommand())

	return cmd
}

func newNetworkDomainsListCommand() *cobra.Command {
	var (
		datacenterID string
		pageNumber   int
		pageSize     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List network domains in a datacenter",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			var paging *cloudcontrol.Paging
			if cmd.Flags().Changed("page") || cmd.Flags().Changed("page-size") {
				paging = &cloudcontrol.Paging{PageNumber: pageNumber, PageSize: pageSize}
			}

			page, err := client.NetworkDomains().List(cmd.Context(), datacenterID, paging)
			if err != nil {
				return fmt.Errorf("failed to list network domains: %w", err)
			}

			return outputNetworkDomainPage(page)
		},
	}

	cmd.Flags().StringVarP(&datacenterID, "datacenter", "d", "", "datacenter id (e.g. NA9)")
	cmd.Flags().IntVar(&pageNumber, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.StandardPageSize, "results per page")
	_ = cmd.MarkFlagRequired("datacenter")

	return cmd
}

func newNetworkDomainsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NETWORK_DOMAIN_ID",
		Short: "Show a network domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			domain, err := client.NetworkDomains().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get network domain: %w", err)
			}

			if domain == nil {
				return fmt.Errorf("network domain '%s': %w", args[0], ErrResourceNotFound)
			}

			return outputNetworkDomain(domain)
		},
	}
}

func newNetworkDomainsDeployCommand() *cobra.Command {
	var request cloudcontrol.DeployNetworkDomain

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a new network domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			networkDomainID, err := client.NetworkDomains().Deploy(cmd.Context(), &request)
			if err != nil {
				return fmt.Errorf("failed to deploy network domain: %w", err)
			}

			fmt.Printf("Deploying network domain '%s' (%s)\n", request.Name, networkDomainID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&request.Name, "name", "n", "", "network domain name")
	cmd.Flags().StringVarP(&request.DatacenterID, "datacenter", "d", "", "datacenter id")
	cmd.Flags().StringVar(&request.Description, "description", "", "network domain description")
	cmd.Flags().StringVar(&request.Type, "type", cloudcontrol.NetworkDomainTypeEssentials, "network domain type (ESSENTIALS or ADVANCED)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("datacenter")

	return cmd
}

func newNetworkDomainsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NETWORK_DOMAIN_ID",
		Short: "Delete a network domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			err = client.NetworkDomains().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete network domain: %w", err)
			}

			fmt.Printf("Deleting network domain %s\n", args[0])

			return nil
		},
	}
}

func outputNetworkDomainPage(page *cloudcontrol.NetworkDomainPage) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(page)
	case OutputFormatYAML:
		return outputYAML(page)
	default:
		return outputNetworkDomainTable(page)
	}
}

func outputNetworkDomainTable(page *cloudcontrol.NetworkDomainPage) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Datacenter", "State", "Created")

	for _, domain := range page.Domains {
		_ = table.Append(domain.ID, domain.Name, domain.Type,
			domain.DatacenterID, domain.State, formatTime(domain.CreateTime))
	}

	_ = table.Render()

	fmt.Printf("\nPage %d of %d (%d total)\n", page.PageNumber, page.PageCount, page.TotalCount)

	return nil
}

func outputNetworkDomain(domain *cloudcontrol.NetworkDomain) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(domain)
	case OutputFormatYAML:
		return outputYAML(domain)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", domain.ID)
		_ = table.Append("Name", domain.Name)
		_ = table.Append("Description", domain.Description)
		_ = table.Append("Type", domain.Type)
		_ = table.Append("SNAT IPv4", domain.SNATIPv4Address)
		_ = table.Append("Datacenter", domain.DatacenterID)
		_ = table.Append("State", domain.State)
		_ = table.Append("Created", formatTime(domain.CreateTime))

		_ = table.Render()

		return nil
	}
}
