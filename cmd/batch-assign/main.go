// Command batch-assign assigns a list of complaints to officers, one at a
// time, paced by the assignment batch limiter. A failing item does not stop
// the batch; every item is reported.
//
// The items file is YAML:
//
//	assigner: <admin id or uid>
//	notes: optional text applied to every assignment
//	items:
//	  - complaint_id: <uuid>
//	    officer_id: <officer id or uid>
//
// Flags:
//
//	--file      path to the items file (required)
//	--assigner  overrides the file's assigner
//	--notes     overrides the file's notes
//	--config    path to the YAML config (default: CONFIG_PATH)
//
// Exit codes: 0 = every item assigned, 1 = error or at least one item failed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/app"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/config"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/service/assignment"
)

// batchFile is the on-disk form of a batch.
type batchFile struct {
	Assigner string                 `yaml:"assigner"`
	Notes    *string                `yaml:"notes"`
	Items    []assignment.BatchItem `yaml:"items"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup finishes before exit.
func run(args []string) int {
	fs := flag.NewFlagSet("batch-assign", flag.ContinueOnError)
	filePath := fs.String("file", "", "path to the YAML items file")
	assigner := fs.String("assigner", "", "admin id or uid, overrides the file")
	notes := fs.String("notes", "", "notes for every assignment, overrides the file")
	configPath := fs.String("config", "", "path to the YAML config file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	if *filePath == "" {
		logger.Error("--file is required")
		return 1
	}

	input, err := readBatch(*filePath, *assigner, *notes)
	if err != nil {
		logger.Error("read batch", slog.String("error", err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("start", slog.String("error", err.Error()))
		return 1
	}
	defer a.Close()

	res, err := a.Assignment.BatchAssign(ctx, input)
	if err != nil {
		logger.Error("batch rejected", slog.String("error", err.Error()))
		return 1
	}
	return report(logger, res)
}

// report logs every item and returns 1 when any item failed.
func report(logger *slog.Logger, res *assignment.BatchResult) int {
	for _, item := range res.Items {
		if item.OK() {
			logger.Info("assigned",
				slog.Int("index", item.Index),
				slog.String("complaint_id", item.ComplaintID.String()),
				slog.String("officer", item.Outcome.OfficerName),
			)
			continue
		}
		logger.Warn("not assigned",
			slog.Int("index", item.Index),
			slog.String("complaint_id", item.ComplaintID.String()),
			slog.String("officer_ref", item.OfficerRef),
			slog.String("kind", item.Kind.String()),
			slog.Bool("retryable", item.Kind.Retryable()),
			slog.String("error", item.Err.Error()),
		)
	}

	logger.Info("batch finished",
		slog.String("batch_id", res.BatchID),
		slog.Int("succeeded", res.SuccessCount),
		slog.Int("failed", res.FailureCount),
	)
	if res.FailureCount > 0 {
		return 1
	}
	return 0
}

func readBatch(path, assigner, notes string) (assignment.BatchInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return assignment.BatchInput{}, err
	}
	defer f.Close()

	bf, err := decodeBatch(f)
	if err != nil {
		return assignment.BatchInput{}, fmt.Errorf("%s: %w", path, err)
	}
	if assigner != "" {
		bf.Assigner = assigner
	}
	if notes != "" {
		bf.Notes = &notes
	}
	return assignment.BatchInput{Items: bf.Items, AssignerRef: bf.Assigner, Notes: bf.Notes}, nil
}

func decodeBatch(r io.Reader) (*batchFile, error) {
	var bf batchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&bf); err != nil {
		if errors.Is(err, io.EOF) {
			return &bf, nil
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &bf, nil
}
