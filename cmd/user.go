package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
	"github.com/ziadkadry99/opspanel/internal/forms"
	"github.com/ziadkadry99/opspanel/internal/render"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Work with users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Long: `Creates a user from --first-name, --last-name, --age and --married.
When neither name flag is given the fields are prompted for interactively.
A blank age is sent as 0 and a non-numeric age as null.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		first, _ := flags.GetString("first-name")
		last, _ := flags.GetString("last-name")
		age, _ := flags.GetString("age")
		married, _ := flags.GetBool("married")

		if !flags.Changed("first-name") && !flags.Changed("last-name") {
			var err error
			first, last, age, married, err = promptUser()
			if err != nil {
				return err
			}
		}

		user := forms.ParseUser(first, last, age, fmt.Sprint(married))
		return interact(cmd, render.PendingUser,
			func(ctx context.Context, c *apiclient.Client) apiclient.Result { return c.CreateUser(ctx, user) },
			envelopeView(render.UserCreated))
	},
}

// promptUser collects the user form fields interactively.
func promptUser() (first, last, age string, married bool, err error) {
	firstPrompt := promptui.Prompt{Label: "First name"}
	if first, err = firstPrompt.Run(); err != nil {
		return "", "", "", false, fmt.Errorf("first name: %w", err)
	}

	lastPrompt := promptui.Prompt{Label: "Last name"}
	if last, err = lastPrompt.Run(); err != nil {
		return "", "", "", false, fmt.Errorf("last name: %w", err)
	}

	agePrompt := promptui.Prompt{Label: "Age"}
	if age, err = agePrompt.Run(); err != nil {
		return "", "", "", false, fmt.Errorf("age: %w", err)
	}

	marriedPrompt := promptui.Prompt{Label: "Married", IsConfirm: true}
	if _, err = marriedPrompt.Run(); err != nil {
		if err != promptui.ErrAbort {
			return "", "", "", false, fmt.Errorf("married: %w", err)
		}
		return strings.TrimSpace(first), strings.TrimSpace(last), age, false, nil
	}
	return strings.TrimSpace(first), strings.TrimSpace(last), age, true, nil
}

func init() {
	userCreateCmd.Flags().String("first-name", "", "first name")
	userCreateCmd.Flags().String("last-name", "", "last name")
	userCreateCmd.Flags().String("age", "", "age in years")
	userCreateCmd.Flags().Bool("married", false, "marital status")
	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}
