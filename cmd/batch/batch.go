// Package batch handles batch classification of CSV files
package batch

import (
	"fmt"

	"fjacquet/nexus-classifier/cmd/root"
	"fjacquet/nexus-classifier/internal/common"
	"fjacquet/nexus-classifier/internal/logging"

	"github.com/spf13/cobra"
)

var (
	workers   int
	delimiter string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch classify messages from a CSV file",
	Long: `Batch classify messages from a CSV file and write the results to another CSV file.

The input file needs an "id" and a "text" column. The output file carries the id, category,
reasoning, model, strategy and error columns. Rows with an empty text are kept in the output
with the validation error in the "error" column; they never stop the run.

Example:
  nexus-classifier batch -i messages.csv -o classified.csv --workers 8`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent classifications (defaults to batch.workers from configuration)")
	Cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", `CSV delimiter (use "\t" for tab)`)
}

func batchFunc(cmd *cobra.Command, args []string) error {
	inputFile := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output
	if inputFile == "" || outputFile == "" {
		return fmt.Errorf("input and output files must be specified")
	}

	delim, err := common.ParseDelimiter(delimiter)
	if err != nil {
		return err
	}

	if workers > 0 && root.AppConfig != nil {
		root.AppConfig.Batch.Workers = workers
	}

	ctx := cmd.Context()
	c, err := root.NewContainer(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close container")
		}
	}()

	summary, err := c.NewBatchProcessor(delim).ProcessFile(ctx, inputFile, outputFile)
	if err != nil {
		return err
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: summary.Total},
	).Info(fmt.Sprintf("Batch processing completed: %d via AI, %d via keywords, %d rejected.",
		summary.AI, summary.Heuristic, summary.Rejected))
	return nil
}
