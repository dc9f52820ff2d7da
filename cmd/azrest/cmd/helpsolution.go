package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/yaroslav/azrest/services/help"
)

func newHelpSolutionCmd(opts *options) *cobra.Command {
	var scope string
	var raw bool
	showCmd := &cobra.Command{
		Use:   "show <solution>",
		Short: "Render a troubleshooting solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("scope", scope); err != nil {
				return err
			}
			cfg, err := opts.clientConfig(opts.profile.Endpoint)
			if err != nil {
				return err
			}
			c, err := help.NewClient(cfg)
			if err != nil {
				return err
			}

			solution, err := c.Solution().Get(scope, args[0]).Do(cmd.Context())
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), solution)
			}

			doc := solutionMarkdown(solution)
			if raw {
				_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
				return err
			}
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return fmt.Errorf("failed to create markdown renderer: %w", err)
			}
			out, err := renderer.Render(doc)
			if err != nil {
				return fmt.Errorf("failed to render solution: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	showCmd.Flags().StringVar(&scope, "scope", "", "Resource ID the solution is attached to")
	showCmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without terminal styling")

	helpCmd := &cobra.Command{
		Use:   "help-solution",
		Short: "Read Azure Help solutions",
	}
	helpCmd.AddCommand(showCmd)
	return helpCmd
}

// solutionMarkdown lays out a solution as one markdown document: the
// title as a heading, the body, then each section under its own heading.
func solutionMarkdown(s *help.SolutionResource) string {
	var b strings.Builder
	props := s.Properties
	if props == nil {
		props = &help.SolutionResourceProperties{}
	}

	title := str(props.Title)
	if title == "" {
		title = str(s.Name)
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if content := strings.TrimSpace(str(props.Content)); content != "" {
		b.WriteString(content)
		b.WriteString("\n\n")
	}
	for _, section := range props.Sections {
		if t := str(section.Title); t != "" {
			fmt.Fprintf(&b, "## %s\n\n", t)
		}
		if content := strings.TrimSpace(str(section.Content)); content != "" {
			b.WriteString(content)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
