package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yaroslav/azrest/services/billingbenefits"
)

func newSavingsPlansCmd(opts *options) *cobra.Command {
	savingsCmd := &cobra.Command{
		Use:     "savings-plans",
		Aliases: []string{"sp"},
		Short:   "Inspect billing benefit savings plans",
	}

	var filter, orderBy string
	var take float64
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the savings plans visible to the caller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.clientConfig(opts.profile.Endpoint)
			if err != nil {
				return err
			}
			c, err := billingbenefits.NewClient(cfg)
			if err != nil {
				return err
			}

			call := c.SavingsPlans().ListAll()
			if filter != "" {
				call = call.Filter(filter)
			}
			if orderBy != "" {
				call = call.OrderBy(orderBy)
			}
			if take > 0 {
				call = call.Take(take)
			}

			pages, err := call.Pager().All(cmd.Context())
			if err != nil {
				return err
			}
			var plans []billingbenefits.SavingsPlanModel
			for _, page := range pages {
				plans = append(plans, page.Value...)
			}
			return opts.render(cmd.OutOrStdout(), plans, savingsPlansView(plans))
		},
	}
	listCmd.Flags().StringVar(&filter, "filter", "", "OData filter, e.g. \"properties/displayProvisioningState eq 'Succeeded'\"")
	listCmd.Flags().StringVar(&orderBy, "order-by", "", "OData ordering")
	listCmd.Flags().Float64Var(&take, "take", 0, "Plans per page")
	savingsCmd.AddCommand(listCmd)

	return savingsCmd
}

func savingsPlansView(plans []billingbenefits.SavingsPlanModel) tableView {
	view := tableView{headers: []string{"NAME", "DISPLAY NAME", "SKU", "TERM", "BILLING", "STATE"}}
	for _, p := range plans {
		row := []string{p.ResourceName(), "", str(p.Sku.Name), "", "", ""}
		if props := p.Properties; props != nil {
			row[1] = str(props.DisplayName)
			row[3] = str(props.Term)
			row[4] = str(props.BillingPlan)
			row[5] = str(props.ProvisioningState)
		}
		view.rows = append(view.rows, row)
	}
	return view
}
