package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaroslav/azrest/services/queuestorage"
)

func newQueueCmd(opts *options) *cobra.Command {
	queueCmd := &cobra.Command{
		Use:   "queue",
		Short: "Work with Azure Queue Storage",
	}

	client := func() (*queuestorage.Client, error) {
		cfg, err := opts.dataPlaneConfig(opts.profile.QueueEndpoint, "queue_endpoint")
		if err != nil {
			return nil, err
		}
		return queuestorage.NewClient(cfg)
	}

	var (
		prefix     string
		maxResults int32
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List queues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			call := c.Service().ListQueues().IncludeMetadata()
			if prefix != "" {
				call = call.Prefix(prefix)
			}
			if maxResults > 0 {
				call = call.MaxResults(maxResults)
			}

			pages, err := call.Pager().All(cmd.Context())
			if err != nil {
				return err
			}
			var queues []queuestorage.QueueItem
			for _, page := range pages {
				queues = append(queues, page.Queues...)
			}
			return opts.render(cmd.OutOrStdout(), queues, queuesView(queues))
		},
	}
	listCmd.Flags().StringVar(&prefix, "prefix", "", "Only list queues starting with prefix")
	listCmd.Flags().Int32Var(&maxResults, "page-size", 0, "Queues per page")
	queueCmd.AddCommand(listCmd)

	var metadata map[string]string
	createCmd := &cobra.Command{
		Use:   "create <queue>",
		Short: "Create a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			created, err := c.Queues().Create(args[0]).Metadata(metadata).Do(cmd.Context())
			if err != nil {
				return err
			}
			if !created {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Queue %s already exists.\n", args[0])
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created queue %s.\n", args[0])
			return err
		},
	}
	createCmd.Flags().StringToStringVar(&metadata, "metadata", nil, "Metadata as key=value pairs")
	queueCmd.AddCommand(createCmd)

	queueCmd.AddCommand(&cobra.Command{
		Use:   "delete <queue>",
		Short: "Delete a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			if err := c.Queues().Delete(args[0]).Do(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted queue %s.\n", args[0])
			return err
		},
	})

	var ttl, visibility time.Duration
	sendCmd := &cobra.Command{
		Use:   "send <queue> <text>",
		Short: "Add a message to a queue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			call := c.Messages().Enqueue(args[0], args[1])
			if ttl != 0 {
				call = call.MessageTTL(int(ttl / time.Second))
			}
			if visibility > 0 {
				call = call.VisibilityTimeout(int(visibility / time.Second))
			}

			msg, err := call.Do(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), msg, tableView{
				headers: []string{"MESSAGE ID", "INSERTED", "EXPIRES", "VISIBLE"},
				rows: [][]string{{
					msg.MessageID,
					formatTime(msg.InsertionTime),
					formatTime(msg.ExpirationTime),
					formatTime(msg.TimeNextVisible),
				}},
			})
		},
	}
	sendCmd.Flags().DurationVar(&ttl, "ttl", 0, "Message time to live (-1s never expires)")
	sendCmd.Flags().DurationVar(&visibility, "visibility-timeout", 0, "Delay before the message becomes visible")
	queueCmd.AddCommand(sendCmd)

	var count int
	peekCmd := &cobra.Command{
		Use:   "peek <queue>",
		Short: "Read messages without dequeuing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			msgs, err := c.Messages().Peek(args[0]).NumberOfMessages(count).Do(cmd.Context())
			if err != nil {
				return err
			}

			view := tableView{headers: []string{"MESSAGE ID", "INSERTED", "DEQUEUES", "TEXT"}}
			for _, m := range msgs {
				view.rows = append(view.rows, []string{
					m.MessageID, formatTime(m.InsertionTime), strconv.FormatInt(m.DequeueCount, 10), m.MessageText,
				})
			}
			return opts.render(cmd.OutOrStdout(), msgs, view)
		},
	}
	peekCmd.Flags().IntVarP(&count, "count", "n", 1, "Number of messages, up to 32")
	queueCmd.AddCommand(peekCmd)

	return queueCmd
}

func queuesView(queues []queuestorage.QueueItem) tableView {
	view := tableView{headers: []string{"NAME", "METADATA"}}
	for _, q := range queues {
		view.rows = append(view.rows, []string{q.Name, formatMetadata(q.Metadata)})
	}
	return view
}

// formatMetadata renders metadata as sorted key=value pairs.
func formatMetadata(m map[string]string) string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func formatTime(t queuestorage.TimeRFC1123) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
