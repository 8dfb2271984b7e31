package vm

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jbweber/virtbatch/internal/config"
	"github.com/jbweber/virtbatch/internal/manifest"
	"github.com/jbweber/virtbatch/internal/naming"
	"github.com/jbweber/virtbatch/internal/output"
)

const (
	// DefaultInitialDelay is the pause between printing the summary and
	// submitting the first manifest. It exists purely as an interrupt
	// window for the operator.
	DefaultInitialDelay = 5 * time.Second

	// DefaultInterval is the pacing delay between consecutive submissions.
	DefaultInterval = 1 * time.Second
)

// CreateBatch renders and submits every instance in the configured range.
//
// This orchestrates the whole batch:
//  1. Print the pre-flight summary
//  2. Wait the initial delay (operator interrupt window)
//  3. For each index: render, submit, pace
//  4. Print the final result line
//
// A failed creation is reported and counted but does not abort the loop;
// previously created instances remain. There is no rollback and no retry.
func CreateBatch(ctx context.Context, cfg *config.BatchConfig) error {
	client := newCLIClient(cfg.Client, os.Stdout)
	return createBatchWithDeps(ctx, cfg, client, os.Stdout, DefaultInitialDelay, DefaultInterval)
}

// createBatchWithDeps runs the batch with injected dependencies.
// This allows for testing by accepting interfaces instead of concrete types.
func createBatchWithDeps(ctx context.Context, cfg *config.BatchConfig, client manifestClient, out io.Writer, initialDelay, interval time.Duration) error {
	// One batch ID per invocation; every manifest carries it as a label.
	batchID := uuid.NewString()

	fmt.Fprint(out, output.Summary(cfg, batchID))

	if initialDelay > 0 {
		fmt.Fprintf(out, "\nStarting in %s (interrupt to abort)...\n", initialDelay)
	}
	if err := sleep(ctx, initialDelay); err != nil {
		return err
	}

	var created, failed int
	for index := cfg.Start; index <= cfg.End; index++ {
		name := naming.InstanceName(cfg.Prefix, index)

		// Render failures abort: they indicate a bad request that every
		// remaining index would hit identically.
		vmManifest, err := manifest.Render(cfg, index, batchID)
		if err != nil {
			return fmt.Errorf("failed to render manifest for %s: %w", name, err)
		}
		data, err := manifest.Encode(vmManifest)
		if err != nil {
			return fmt.Errorf("failed to encode manifest for %s: %w", name, err)
		}

		fmt.Fprintf(out, "Creating %s...\n", name)
		if err := client.Create(ctx, data); err != nil {
			// Per-instance failures do not abort the batch.
			fmt.Fprintf(out, "Error creating %s: %v\n", name, err)
			failed++
		} else {
			created++
		}

		if index < cfg.End {
			if err := sleep(ctx, interval); err != nil {
				return err
			}
		}
	}

	fmt.Fprint(out, output.Result(created, failed))
	return nil
}

// sleep blocks for d or until the context is cancelled, whichever comes
// first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
