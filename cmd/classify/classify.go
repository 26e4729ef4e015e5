// Package classify implements the single-message classify command
package classify

import (
	"os"

	"fjacquet/nexus-classifier/cmd/common"
	"fjacquet/nexus-classifier/cmd/root"

	"github.com/spf13/cobra"
)

var text string

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify [message...]",
	Short: "Classify a single message",
	Long: `Classify a single legal-support message and print the result as JSON.

The message is taken from --text, else from the positional arguments, else from stdin.
An empty message is rejected with the same validation error the HTTP API returns.

Example:
  nexus-classifier classify "Gostaria de saber o andamento do processo"
  echo "Minha senha expirou" | nexus-classifier classify`,
	RunE: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&text, "text", "t", "", "Message to classify")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	message, err := common.ReadText(text, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	c, err := root.NewContainer(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close container")
		}
	}()

	out := cmd.OutOrStdout()
	if out == nil {
		out = os.Stdout
	}
	return common.ClassifyAndPrint(ctx, c.GetClassifier(), message, out, root.Log)
}
