package cmd

import (
	"context"
	"net/http"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yaroslav/azrest/cmd/azrest/tui"
	"github.com/yaroslav/azrest/sdk"
)

// resourcePage is a page of any ARM collection.
type resourcePage struct {
	Value    []genericResource `json:"value"`
	NextLink *string           `json:"nextLink,omitempty"`
}

// genericResource holds the envelope fields the browser shows.
type genericResource struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Location   string `json:"location"`
	Properties struct {
		ProvisioningState string `json:"provisioningState"`
		State             string `json:"state"`
	} `json:"properties"`
}

func (r genericResource) item() tui.Item {
	state := r.Properties.State
	if state == "" {
		state = r.Properties.ProvisioningState
	}
	return tui.Item{Name: r.Name, Type: r.Type, Location: r.Location, State: state}
}

// collectionPath resolves a collection argument. Paths without a leading
// slash are relative to the subscription.
func collectionPath(subscriptionID, collection string) string {
	if strings.HasPrefix(collection, "/") {
		return collection
	}
	return "/subscriptions/" + subscriptionID + "/" + collection
}

// newCollectionLoader returns a LoadFunc walking the pages of path.
func newCollectionLoader(c *sdk.Client, path string) tui.LoadFunc {
	pager := sdk.NewNextLinkPager(c,
		func() (*sdk.Request, error) {
			return c.NewRequest(http.MethodGet, path), nil
		},
		func(p *resourcePage) string { return sdk.NextLink(p.NextLink) },
	)
	return func(ctx context.Context) ([]tui.Item, bool, error) {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, pager.More(), err
		}
		items := make([]tui.Item, 0, len(page.Value))
		for _, r := range page.Value {
			items = append(items, r.item())
		}
		return items, pager.More(), nil
	}
}

func newBrowseCmd(opts *options) *cobra.Command {
	var apiVersion string
	browseCmd := &cobra.Command{
		Use:   "browse <collection>",
		Short: "Page through an ARM collection interactively",
		Long: `Page through any ARM collection in a terminal table.

The collection is a path such as
providers/Microsoft.Cache/redisEnterprise (relative to the subscription) or
/subscriptions/{id}/resourceGroups/{rg}/providers/Microsoft.Kusto/clusters.
Press n for the next page and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("api-version", apiVersion); err != nil {
				return err
			}
			subscriptionID, cfg, err := opts.armConfig()
			if err != nil {
				return err
			}
			if cfg.Endpoint == "" {
				cfg.Endpoint = sdk.DefaultEndpoint
			}
			cfg.APIVersion = apiVersion
			c, err := sdk.NewClient(cfg)
			if err != nil {
				return err
			}

			path := collectionPath(subscriptionID, args[0])
			browser := tui.NewBrowser(path, newCollectionLoader(c, path))
			_, err = tea.NewProgram(browser,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}
	browseCmd.Flags().StringVar(&apiVersion, "api-version", "", "API version of the collection")
	return browseCmd
}
