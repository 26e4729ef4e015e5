// Package batch classifies many messages from a CSV file with bounded concurrency.
package batch

import (
	"context"
	"fmt"

	"fjacquet/nexus-classifier/internal/classifiererror"
	"fjacquet/nexus-classifier/internal/common"
	"fjacquet/nexus-classifier/internal/logging"
	"fjacquet/nexus-classifier/internal/models"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of concurrent classifications when none is configured.
const DefaultWorkers = 4

// InputRow is one message of the batch input file.
type InputRow struct {
	ID   string `csv:"id"`
	Text string `csv:"text"`
}

// OutputRow is one classified message of the batch output file.
type OutputRow struct {
	ID        string `csv:"id"`
	Category  string `csv:"category"`
	Reasoning string `csv:"reasoning"`
	Model     string `csv:"model"`
	Strategy  string `csv:"strategy"`
	Error     string `csv:"error"`
}

// Summary counts the outcome of a batch run.
type Summary struct {
	Total     int
	AI        int
	Heuristic int
	Rejected  int
}

// Classifier is the part of the orchestrator the batch processor depends on.
type Classifier interface {
	Classify(ctx context.Context, req models.ClassificationRequest) (models.ClassificationResponse, error)
}

// Processor fans rows out to the classifier.
type Processor struct {
	classifier Classifier
	workers    int
	delimiter  rune
	logger     logging.Logger
}

// NewProcessor creates a new Processor instance.
func NewProcessor(classifier Classifier, workers int, delimiter rune, logger logging.Logger) *Processor {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if delimiter == 0 {
		delimiter = common.DefaultDelimiter
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Processor{
		classifier: classifier,
		workers:    workers,
		delimiter:  delimiter,
		logger:     logger,
	}
}

// ClassifyRows classifies every row and returns the results in input order.
// A row with blank text is reported in its Error column, it does not stop the run.
func (p *Processor) ClassifyRows(ctx context.Context, rows []InputRow) ([]OutputRow, error) {
	results := make([]OutputRow, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			resp, err := p.classifier.Classify(gctx, models.ClassificationRequest{Text: row.Text})
			if err != nil {
				if classifiererror.IsValidation(err) {
					results[i] = OutputRow{ID: row.ID, Error: err.Error()}
					return nil
				}
				return fmt.Errorf("row %s: %w", row.ID, err)
			}
			results[i] = OutputRow{
				ID:        row.ID,
				Category:  resp.Category,
				Reasoning: resp.Reasoning,
				Model:     resp.Model,
				Strategy:  resp.Strategy,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessFile reads inputFile, classifies its rows and writes outputFile.
func (p *Processor) ProcessFile(ctx context.Context, inputFile, outputFile string) (Summary, error) {
	rows, err := common.ReadCSVFile[InputRow](inputFile, p.delimiter, p.logger)
	if err != nil {
		return Summary{}, err
	}

	results, err := p.ClassifyRows(ctx, rows)
	if err != nil {
		return Summary{}, fmt.Errorf("batch classification failed: %w", err)
	}

	if err := common.WriteCSVFile(results, outputFile, p.delimiter, p.logger); err != nil {
		return Summary{}, err
	}

	summary := Summarize(results)
	p.logger.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: summary.Total},
		logging.Field{Key: "ai", Value: summary.AI},
		logging.Field{Key: "heuristic", Value: summary.Heuristic},
		logging.Field{Key: "rejected", Value: summary.Rejected},
	).Info("Batch classification completed")

	return summary, nil
}

// Summarize counts results per outcome.
func Summarize(results []OutputRow) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Error != "":
			s.Rejected++
		case r.Strategy == string(models.StrategyAI):
			s.AI++
		default:
			s.Heuristic++
		}
	}
	return s
}
