package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yaroslav/azrest/sdk"
	"github.com/yaroslav/azrest/services/redisenterprise"
)

func newRedisCmd(opts *options) *cobra.Command {
	var resourceGroup string

	redisCmd := &cobra.Command{
		Use:   "redis",
		Short: "Manage Redis Enterprise clusters",
	}
	redisCmd.PersistentFlags().StringVarP(&resourceGroup, "resource-group", "g", "", "Resource group")

	client := func() (*redisenterprise.Client, error) {
		subscriptionID, cfg, err := opts.armConfig()
		if err != nil {
			return nil, err
		}
		return redisenterprise.NewClient(subscriptionID, cfg)
	}

	redisCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List clusters in the subscription or a resource group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}

			pager := c.Clusters().List().Pager()
			if resourceGroup != "" {
				pager = c.Clusters().ListByResourceGroup(resourceGroup).Pager()
			}
			pages, err := pager.All(cmd.Context())
			if err != nil {
				return err
			}

			var clusters []redisenterprise.Cluster
			for _, page := range pages {
				clusters = append(clusters, page.Value...)
			}
			return opts.render(cmd.OutOrStdout(), clusters, clustersView(clusters))
		},
	})

	var wait bool
	var pollInterval time.Duration
	getCmd := &cobra.Command{
		Use:   "get <cluster>",
		Short: "Show a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("resource-group", resourceGroup); err != nil {
				return err
			}
			if wait && pollInterval <= 0 {
				return errors.New("--poll-interval must be positive")
			}
			c, err := client()
			if err != nil {
				return err
			}

			get := c.Clusters().Get(resourceGroup, args[0])
			if wait {
				state, err := sdk.PollUntilDone(cmd.Context(), func(ctx context.Context) (string, error) {
					cluster, err := get.Do(ctx)
					if err != nil {
						return "", err
					}
					return clusterState(cluster), nil
				}, sdk.PollOptions{Interval: pollInterval, Logger: opts.logger})
				if err != nil {
					return err
				}
				opts.logger.Info("cluster settled", zap.String("state", state))
			}

			cluster, err := get.Do(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), cluster, clustersView([]redisenterprise.Cluster{*cluster}))
		},
	}
	getCmd.Flags().BoolVar(&wait, "wait", false, "Wait until provisioning reaches a terminal state")
	getCmd.Flags().DurationVar(&pollInterval, "poll-interval", 5*time.Second, "Interval between provisioning checks")
	redisCmd.AddCommand(getCmd)

	var database string
	keysCmd := &cobra.Command{
		Use:   "keys <cluster>",
		Short: "Show the access keys of a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("resource-group", resourceGroup); err != nil {
				return err
			}
			c, err := client()
			if err != nil {
				return err
			}

			keys, err := c.Databases().ListKeys(resourceGroup, args[0], database).Do(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), keys, tableView{
				headers: []string{"KEY", "VALUE"},
				rows: [][]string{
					{"primary", str(keys.PrimaryKey)},
					{"secondary", str(keys.SecondaryKey)},
				},
			})
		},
	}
	keysCmd.Flags().StringVar(&database, "database", "default", "Database name")
	redisCmd.AddCommand(keysCmd)

	return redisCmd
}

func clusterState(c *redisenterprise.Cluster) string {
	if c.Properties == nil {
		return ""
	}
	return str(c.Properties.ProvisioningState)
}

func clustersView(clusters []redisenterprise.Cluster) tableView {
	view := tableView{headers: []string{"NAME", "LOCATION", "SKU", "STATE", "HOST"}}
	for i := range clusters {
		c := &clusters[i]
		var host string
		if c.Properties != nil {
			host = str(c.Properties.HostName)
		}
		view.rows = append(view.rows, []string{
			c.ResourceName(), c.Location, string(c.Sku.Name), clusterState(c), host,
		})
	}
	return view
}
