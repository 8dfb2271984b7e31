// Package output formats the human-readable reporting around a batch run:
// the pre-flight summary block and the closing result line.
package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/jbweber/virtbatch/internal/config"
	"github.com/jbweber/virtbatch/internal/naming"
)

// Summary renders the pre-flight summary block printed before submission
// starts. It shows the operator exactly what is about to be created.
func Summary(cfg *config.BatchConfig, batchID string) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	first := naming.InstanceName(cfg.Prefix, cfg.Start)
	last := naming.InstanceName(cfg.Prefix, cfg.End)

	fmt.Fprintln(&buf, "Batch summary:")
	fmt.Fprintf(w, "  PREFIX\t%s\n", cfg.Prefix)
	fmt.Fprintf(w, "  RANGE\t%s .. %s (indexes %d-%d)\n", first, last, cfg.Start, cfg.End)
	fmt.Fprintf(w, "  INSTANCES\t%d\n", cfg.InstanceCount())
	fmt.Fprintf(w, "  CPU\t%d core(s) x %d socket(s) x %d thread(s) = %d vCPU(s)\n",
		cfg.Cores, cfg.Sockets, cfg.Threads, cfg.VCPUs())
	fmt.Fprintf(w, "  MEMORY\t%s\n", cfg.Memory)
	fmt.Fprintf(w, "  STORAGE CLASS\t%s\n", cfg.StorageClass)
	fmt.Fprintf(w, "  IMAGE URL\t%s\n", cfg.ImageURL)
	fmt.Fprintf(w, "  NAMESPACE\t%s\n", cfg.Namespace)
	fmt.Fprintf(w, "  CLIENT\t%s\n", cfg.Client)
	if batchID != "" {
		fmt.Fprintf(w, "  BATCH ID\t%s\n", batchID)
	}
	_ = w.Flush()

	return buf.String()
}

// Result renders the closing line after the submission loop finishes.
func Result(created, failed int) string {
	if failed > 0 {
		return fmt.Sprintf("Done: %d virtual machine(s) created, %d failed\n", created, failed)
	}
	return fmt.Sprintf("✓ %d virtual machine(s) created successfully\n", created)
}
