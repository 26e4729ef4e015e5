// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/nexus-classifier/internal/logging"
	"fjacquet/nexus-classifier/internal/models"
)

// TextClassifier classifies a single request.
type TextClassifier interface {
	Classify(ctx context.Context, req models.ClassificationRequest) (models.ClassificationResponse, error)
}

// ReadText returns the message to classify: the flag value when set, else the
// positional arguments joined by spaces, else the whole of stdin.
func ReadText(flagText string, args []string, stdin io.Reader) (string, error) {
	if flagText != "" {
		return flagText, nil
	}
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	if stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}

// ClassifyAndPrint classifies text and writes the response to w as indented JSON.
func ClassifyAndPrint(ctx context.Context, cls TextClassifier, text string, w io.Writer, log logging.Logger) error {
	resp, err := cls.Classify(ctx, models.ClassificationRequest{Text: text})
	if err != nil {
		return err
	}

	log.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: resp.Category},
		logging.Field{Key: logging.FieldStrategy, Value: resp.Strategy},
	).Debug("Classification printed")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(resp); err != nil {
		return fmt.Errorf("error writing response: %w", err)
	}
	return nil
}
