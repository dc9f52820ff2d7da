package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaroslav/azrest/services/synapsekusto"
)

func newKustoCmd(opts *options) *cobra.Command {
	kustoCmd := &cobra.Command{
		Use:   "kusto",
		Short: "Work with Synapse Data Explorer",
	}

	var resourceGroup, workspace, location string
	poolsCmd := &cobra.Command{
		Use:   "pools",
		Short: "Manage Kusto pools of a Synapse workspace",
	}
	poolsCmd.PersistentFlags().StringVarP(&resourceGroup, "resource-group", "g", "", "Resource group")
	poolsCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Synapse workspace")
	kustoCmd.AddCommand(poolsCmd)

	client := func() (*synapsekusto.Client, error) {
		subscriptionID, cfg, err := opts.armConfig()
		if err != nil {
			return nil, err
		}
		return synapsekusto.NewClient(subscriptionID, cfg)
	}
	requireWorkspace := func() error {
		if err := requireFlag("resource-group", resourceGroup); err != nil {
			return err
		}
		return requireFlag("workspace", workspace)
	}

	poolsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the pools of a workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireWorkspace(); err != nil {
				return err
			}
			c, err := client()
			if err != nil {
				return err
			}

			pools, err := c.KustoPools().ListByWorkspace(resourceGroup, workspace).Do(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), pools.Value, poolsView(pools.Value))
		},
	})

	poolsCmd.AddCommand(&cobra.Command{
		Use:   "get <pool>",
		Short: "Show a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireWorkspace(); err != nil {
				return err
			}
			c, err := client()
			if err != nil {
				return err
			}

			pool, err := c.KustoPools().Get(resourceGroup, workspace, args[0]).Do(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), pool, poolsView([]synapsekusto.KustoPool{*pool}))
		},
	})

	checkCmd := &cobra.Command{
		Use:   "check-name <name>",
		Short: "Check whether a pool name is available in a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("location", location); err != nil {
				return err
			}
			c, err := client()
			if err != nil {
				return err
			}

			res, err := c.KustoPools().CheckNameAvailability(location,
				synapsekusto.KustoPoolCheckNameRequest{Name: args[0]}).Do(cmd.Context())
			if err != nil {
				return err
			}
			available := res.NameAvailable != nil && *res.NameAvailable
			return opts.render(cmd.OutOrStdout(), res, tableView{
				headers: []string{"NAME", "AVAILABLE", "REASON", "MESSAGE"},
				rows:    [][]string{{args[0], strconv.FormatBool(available), str(res.Reason), str(res.Message)}},
			})
		},
	}
	checkCmd.Flags().StringVarP(&location, "location", "l", "", "Azure region")
	poolsCmd.AddCommand(checkCmd)

	return kustoCmd
}

func poolsView(pools []synapsekusto.KustoPool) tableView {
	view := tableView{headers: []string{"NAME", "LOCATION", "SKU", "STATE", "URI"}}
	for i := range pools {
		p := &pools[i]
		var state, uri string
		if p.Properties != nil {
			state = str(p.Properties.State)
			uri = str(p.Properties.URI)
		}
		view.rows = append(view.rows, []string{
			p.ResourceName(), p.Location, string(p.Sku.Name), state, uri,
		})
	}
	return view
}
