package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yaroslav/azrest/cmd/azrest/config"
)

func newProfileCmd(opts *options) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect connection profiles",
	}

	profileCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the profiles in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := tableView{headers: []string{"NAME", "DEFAULT", "ENDPOINT", "SUBSCRIPTION"}}
			for _, name := range opts.file.Names() {
				p := opts.file.Profiles[name]
				marker := ""
				if name == opts.file.DefaultProfile {
					marker = "*"
				}
				view.rows = append(view.rows, []string{name, marker, p.Endpoint, p.SubscriptionID})
			}
			return opts.render(cmd.OutOrStdout(), opts.file, view)
		},
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "show [name]",
		Short: "Show a profile after flag overrides",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := opts.profile
			if len(args) == 1 {
				var err error
				if p, err = opts.file.Profile(args[0]); err != nil {
					return err
				}
			}
			return opts.render(cmd.OutOrStdout(), p, profileView(p))
		},
	})

	return profileCmd
}

func profileView(p config.Profile) tableView {
	return tableView{
		headers: []string{"SETTING", "VALUE"},
		rows: [][]string{
			{"endpoint", p.Endpoint},
			{"subscription_id", p.SubscriptionID},
			{"tenant_id", p.TenantID},
			{"client_id", p.ClientID},
			{"proxy_url", p.ProxyURL},
			{"token_env", p.TokenVariable()},
			{"queue_endpoint", p.QueueEndpoint},
			{"pubsub_endpoint", p.PubSubEndpoint},
		},
	}
}
