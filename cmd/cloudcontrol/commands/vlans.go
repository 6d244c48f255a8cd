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

// NewVlansCommand creates the vlans command group.
func NewVlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vlans",
		Aliases: []string{"vlan"},
		Short:   "Manage VLANs",
		Long:    "List and inspect the VLANs deployed into a network domain",
	}

	cmd.AddCommand(newVlansListCommand())
	cmd.AddCommand(newVlansGetCommand())

	return cmd
}

func newVlansListCommand() *cobra.Command {
	var (
		networkDomainID string
		pageNumber      int
		pageSize        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List VLANs in a network domain",
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

			page, err := client.Vlans().List(cmd.Context(), networkDomainID, paging)
			if err != nil {
				return fmt.Errorf("failed to list VLANs: %w", err)
			}

			return outputVlanPage(page)
		},
	}

	cmd.Flags().StringVarP(&networkDomainID, "network-domain", "n", "", "network domain id")
	cmd.Flags().IntVar(&pageNumber, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.StandardPageSize, "results per page")
	_ = cmd.MarkFlagRequired("network-domain")

	return cmd
}

func newVlansGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VLAN_ID",
		Short: "Show a VLAN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			vlan, err := client.Vlans().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get VLAN: %w", err)
			}

			if vlan == nil {
				return fmt.Errorf("VLAN '%s': %w", args[0], ErrResourceNotFound)
			}

			return outputVlan(vlan)
		},
	}
}

func outputVlanPage(page *cloudcontrol.VlanPage) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(page)
	case OutputFormatYAML:
		return outputYAML(page)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Network Domain", "IPv4 Range", "State")

		for _, vlan := range page.Vlans {
			ipv4Range := fmt.Sprintf("%s/%d", vlan.PrivateIPv4Range.Address, vlan.PrivateIPv4Range.PrefixSize)
			_ = table.Append(vlan.ID, vlan.Name, vlan.NetworkDomain.Name, ipv4Range, vlan.State)
		}

		_ = table.Render()

		fmt.Printf("\nPage %d of %d (%d total)\n", page.PageNumber, page.PageCount, page.TotalCount)

		return nil
	}
}

func outputVlan(vlan *cloudcontrol.Vlan) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(vlan)
	case OutputFormatYAML:
		return outputYAML(vlan)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", vlan.ID)
		_ = table.Append("Name", vlan.Name)
		_ = table.Append("Description", vlan.Description)
		_ = table.Append("Network Domain", vlan.NetworkDomain.Name)
		_ = table.Append("IPv4 Range", fmt.Sprintf("%s/%d", vlan.PrivateIPv4Range.Address, vlan.PrivateIPv4Range.PrefixSize))
		_ = table.Append("Datacenter", vlan.DatacenterID)
		_ = table.Append("State", vlan.State)
		_ = table.Append("Created", formatTime(vlan.CreateTime))

		_ = table.Render()

		return nil
	}
}
