package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaroslav/azrest/services/webpubsub/dataplane"
)

// errAmbiguousTarget is returned when more than one target flag is set.
var errAmbiguousTarget = errors.New("at most one of --connection, --group and --user may be set")

// pubsubTarget selects the recipients of send and close.
type pubsubTarget struct {
	connection string
	group      string
	user       string
	excluded   []string
}

func (t *pubsubTarget) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&t.connection, "connection", "", "Target a single connection")
	cmd.Flags().StringVar(&t.group, "group", "", "Target the connections of a group")
	cmd.Flags().StringVar(&t.user, "user", "", "Target the connections of a user")
	cmd.Flags().StringSliceVar(&t.excluded, "exclude", nil, "Connection IDs to leave out")
}

func (t *pubsubTarget) validate() error {
	set := 0
	for _, v := range []string{t.connection, t.group, t.user} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return errAmbiguousTarget
	}
	if t.connection != "" && len(t.excluded) > 0 {
		return errors.New("--exclude cannot be combined with --connection")
	}
	return nil
}

// pubsubMessage builds the message to send from the command arguments.
func pubsubMessage(text string, asJSON bool) (dataplane.Message, error) {
	if !asJSON {
		return dataplane.TextMessage(text), nil
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return dataplane.Message{}, fmt.Errorf("message is not valid JSON: %w", err)
	}
	return dataplane.JSONMessage(v)
}

func newPubSubCmd(opts *options) *cobra.Command {
	var hub string
	pubsubCmd := &cobra.Command{
		Use:   "pubsub",
		Short: "Talk to a Web PubSub service",
	}
	pubsubCmd.PersistentFlags().StringVar(&hub, "hub", "", "Hub name")

	client := func() (*dataplane.Client, error) {
		if !dataplane.ValidHub(hub) {
			return nil, fmt.Errorf("%w: %q", dataplane.ErrInvalidHub, hub)
		}
		cfg, err := opts.dataPlaneConfig(opts.profile.PubSubEndpoint, "pubsub_endpoint")
		if err != nil {
			return nil, err
		}
		return dataplane.NewClient(cfg)
	}

	var (
		userID  string
		roles   []string
		minutes int32
	)
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a client access token for the hub",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}
			call := c.GenerateClientToken(hub).Role(roles...)
			if userID != "" {
				call = call.UserID(userID)
			}
			if minutes > 0 {
				call = call.MinutesToExpire(minutes)
			}

			res, err := call.Do(cmd.Context())
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), str(res.Token))
			return err
		},
	}
	tokenCmd.Flags().StringVar(&userID, "user-id", "", "User the token is issued for")
	tokenCmd.Flags().StringSliceVar(&roles, "role", nil, "Role granted to the client, repeatable")
	tokenCmd.Flags().Int32Var(&minutes, "minutes", 0, "Token lifetime in minutes (service default when 0)")
	pubsubCmd.AddCommand(tokenCmd)

	var (
		sendTarget pubsubTarget
		asJSON     bool
	)
	sendCmd := &cobra.Command{
		Use:   "send <message>",
		Short: "Send a message to the hub, a group, a user or a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sendTarget.validate(); err != nil {
				return err
			}
			msg, err := pubsubMessage(args[0], asJSON)
			if err != nil {
				return err
			}
			c, err := client()
			if err != nil {
				return err
			}

			var call *dataplane.SendCall
			switch {
			case sendTarget.connection != "":
				call = c.Connections(hub).Send(sendTarget.connection, msg)
			case sendTarget.group != "":
				call = c.Groups(hub).Send(sendTarget.group, msg)
			case sendTarget.user != "":
				call = c.Users(hub).Send(sendTarget.user, msg)
			default:
				call = c.SendToAll(hub, msg)
			}
			if len(sendTarget.excluded) > 0 {
				call = call.Excluded(sendTarget.excluded...)
			}
			if err := call.Do(cmd.Context()); err != nil {
				return err
			}
			opts.logger.Info("message accepted")
			return nil
		},
	}
	sendTarget.register(sendCmd)
	sendCmd.Flags().BoolVar(&asJSON, "json", false, "Send the message as application/json")
	pubsubCmd.AddCommand(sendCmd)

	var (
		closeTarget pubsubTarget
		reason      string
	)
	closeCmd := &cobra.Command{
		Use:   "close",
		Short: "Close connections of the hub, a group, a user or a single connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := closeTarget.validate(); err != nil {
				return err
			}
			c, err := client()
			if err != nil {
				return err
			}

			if closeTarget.connection != "" {
				return c.Connections(hub).Close(closeTarget.connection).Reason(reason).Do(cmd.Context())
			}

			var call *dataplane.CloseCall
			switch {
			case closeTarget.group != "":
				call = c.Groups(hub).CloseConnections(closeTarget.group)
			case closeTarget.user != "":
				call = c.Users(hub).CloseConnections(closeTarget.user)
			default:
				call = c.CloseAllConnections(hub)
			}
			if len(closeTarget.excluded) > 0 {
				call = call.Excluded(closeTarget.excluded...)
			}
			if reason != "" {
				call = call.Reason(reason)
			}
			return call.Do(cmd.Context())
		},
	}
	closeTarget.register(closeCmd)
	closeCmd.Flags().StringVar(&reason, "reason", "", "Reason reported to the closed clients")
	pubsubCmd.AddCommand(closeCmd)

	return pubsubCmd
}
