package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaroslav/azrest/services/authorization"
)

func newRolesCmd(opts *options) *cobra.Command {
	var scope, filter string
	rolesCmd := &cobra.Command{
		Use:   "roles",
		Short: "Inspect role definitions and assignments",
	}
	rolesCmd.PersistentFlags().StringVar(&scope, "scope", "", "Scope (defaults to the subscription)")

	// client also returns the effective scope.
	client := func() (*authorization.Client, string, error) {
		subscriptionID, cfg, err := opts.armConfig()
		if err != nil {
			return nil, "", err
		}
		c, err := authorization.NewClient(subscriptionID, cfg)
		if err != nil {
			return nil, "", err
		}
		if scope == "" {
			return c, "/subscriptions/" + subscriptionID, nil
		}
		return c, scope, nil
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List role definitions at a scope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, at, err := client()
			if err != nil {
				return err
			}
			call := c.RoleDefinitions().List(at)
			if filter != "" {
				call = call.Filter(filter)
			}

			pages, err := call.Pager().All(cmd.Context())
			if err != nil {
				return err
			}
			var defs []authorization.RoleDefinition
			for _, page := range pages {
				defs = append(defs, page.Value...)
			}
			return opts.render(cmd.OutOrStdout(), defs, roleDefinitionsView(defs))
		},
	}
	listCmd.Flags().StringVar(&filter, "filter", "", "OData filter, e.g. \"type eq 'CustomRole'\"")
	rolesCmd.AddCommand(listCmd)

	rolesCmd.AddCommand(&cobra.Command{
		Use:   "get <role-definition-id>",
		Short: "Show a role definition by GUID or full ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, at, err := client()
			if err != nil {
				return err
			}

			call := c.RoleDefinitions().Get(at, args[0])
			if strings.HasPrefix(args[0], "/") {
				call = c.RoleDefinitions().GetByID(args[0])
			}
			def, err := call.Do(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), def, roleDefinitionsView([]authorization.RoleDefinition{*def}))
		},
	})

	var assignmentFilter string
	assignmentsCmd := &cobra.Command{
		Use:   "assignments",
		Short: "List role assignments at a scope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, at, err := client()
			if err != nil {
				return err
			}
			call := c.RoleAssignments().ListForScope(at)
			if assignmentFilter != "" {
				call = call.Filter(assignmentFilter)
			}

			pages, err := call.Pager().All(cmd.Context())
			if err != nil {
				return err
			}
			var assignments []authorization.RoleAssignment
			for _, page := range pages {
				assignments = append(assignments, page.Value...)
			}
			return opts.render(cmd.OutOrStdout(), assignments, roleAssignmentsView(assignments))
		},
	}
	assignmentsCmd.Flags().StringVar(&assignmentFilter, "filter", "", "OData filter, e.g. \"atScope()\"")
	rolesCmd.AddCommand(assignmentsCmd)

	return rolesCmd
}

func roleDefinitionsView(defs []authorization.RoleDefinition) tableView {
	view := tableView{headers: []string{"NAME", "ROLE", "TYPE", "DESCRIPTION"}}
	for _, d := range defs {
		var role, typ, desc string
		if d.Properties != nil {
			role = str(d.Properties.RoleName)
			typ = str(d.Properties.RoleType)
			desc = str(d.Properties.Description)
		}
		view.rows = append(view.rows, []string{str(d.Name), role, typ, desc})
	}
	return view
}

func roleAssignmentsView(assignments []authorization.RoleAssignment) tableView {
	view := tableView{headers: []string{"NAME", "PRINCIPAL", "TYPE", "ROLE", "SCOPE"}}
	for _, a := range assignments {
		row := []string{str(a.Name), "", "", "", ""}
		if p := a.Properties; p != nil {
			row[1] = p.PrincipalID
			row[2] = str(p.PrincipalType)
			row[3] = lastSegment(p.RoleDefinitionID)
			row[4] = str(p.Scope)
		}
		view.rows = append(view.rows, row)
	}
	return view
}

// lastSegment returns the part of a resource ID after the final slash.
func lastSegment(id string) string {
	return id[strings.LastIndex(id, "/")+1:]
}
