package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
	"github.com/ziadkadry99/opspanel/internal/forms"
	"github.com/ziadkadry99/opspanel/internal/render"
)

// jsonView prints indented JSON; any failure fails the interaction.
func jsonView(res apiclient.Result) (string, bool) {
	return render.JSON(res), !res.Failed()
}

// envelopeView wraps a renderer for endpoints that answer with a
// {success, message} envelope.
func envelopeView(fn func(apiclient.Result) string) view {
	return func(res apiclient.Result) (string, bool) {
		return fn(res), res.Accepted()
	}
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the API is up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return interact(cmd, render.PendingHealth,
			func(ctx context.Context, c *apiclient.Client) apiclient.Result { return c.Health(ctx) },
			jsonView)
	},
}

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Work with items",
}

var itemSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a named item with an integer value",
	Long: `Submits {name, value} to the items endpoint. The name is trimmed and the
value uses its leading integer ("12abc" is 12). An empty name or a value
without digits is rejected locally and nothing is sent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		value, _ := cmd.Flags().GetString("value")

		item, err := forms.ParseItem(name, value)
		if err != nil {
			return printInvalid(cmd, render.InvalidItem)
		}
		return interact(cmd, render.PendingItem,
			func(ctx context.Context, c *apiclient.Client) apiclient.Result { return c.SubmitItem(ctx, item) },
			jsonView)
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List all users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return interact(cmd, render.PendingUsers,
			func(ctx context.Context, c *apiclient.Client) apiclient.Result { return c.ListUsers(ctx) },
			envelopeView(render.UsersText))
	},
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a key/value pair",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		kv, err := forms.ParseKeyValue(key, value)
		if err != nil {
			return printInvalid(cmd, render.InvalidKeyValue)
		}
		return interact(cmd, render.PendingSet,
			func(ctx context.Context, c *apiclient.Client) apiclient.Result { return c.SetKey(ctx, kv) },
			envelopeView(render.Trigger))
	},
}

var func1Cmd = &cobra.Command{
	Use:   "func1",
	Short: "Fire the func1 trigger endpoint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return interact(cmd, render.PendingFunc1,
			func(ctx context.Context, c *apiclient.Client) apiclient.Result { return c.TriggerFunc1(ctx) },
			envelopeView(render.Trigger))
	},
}

var func2Cmd = &cobra.Command{
	Use:   "func2",
	Short: "Fire the func2 trigger endpoint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return interact(cmd, render.PendingFunc2,
			func(ctx context.Context, c *apiclient.Client) apiclient.Result { return c.TriggerFunc2(ctx) },
			envelopeView(render.Trigger))
	},
}

func init() {
	itemSubmitCmd.Flags().String("name", "", "item name")
	itemSubmitCmd.Flags().String("value", "", "integer value")
	itemCmd.AddCommand(itemSubmitCmd)

	setCmd.Flags().String("key", "", "key to store")
	setCmd.Flags().String("value", "", "value to store")

	rootCmd.AddCommand(healthCmd, itemCmd, usersCmd, setCmd, func1Cmd, func2Cmd)
}
