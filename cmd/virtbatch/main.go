package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jbweber/virtbatch/internal/config"
	"github.com/jbweber/virtbatch/internal/vm"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd(runBatch).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runBatch is the production run step: submit the batch, stopping on
// operator interrupt.
func runBatch(cmd *cobra.Command, cfg *config.BatchConfig) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return vm.CreateBatch(ctx, cfg)
}

// flags holds the raw command-line values before they are resolved into a
// validated BatchConfig.
type flags struct {
	prefix       string
	start        int
	end          int
	count        int
	cores        int
	sockets      int
	threads      int
	memory       string
	storageClass string
	imageURL     string
	namespace    string
	client       string
}

// newRootCmd builds the root command. The tool is single-purpose, so the
// provisioning flags live directly on the root instead of a subcommand.
// The run step is injected so tests can capture the resolved config
// without submitting anything.
func newRootCmd(run func(cmd *cobra.Command, cfg *config.BatchConfig) error) *cobra.Command {
	var fl flags

	cmd := &cobra.Command{
		Use:   "virtbatch [count]",
		Short: "Virtbatch - batch KubeVirt VM creation tool",
		Long: `Virtbatch renders a numbered batch of KubeVirt VirtualMachine manifests
and submits each one to the cluster through an external client
(kubectl by default), sequentially, with a short pacing delay.

Instances are named {prefix}-{index} for every index in the requested
range. Each instance gets a boot volume imported from the image URL and
a blank data volume, both on the configured storage class.

Examples:
  # Ten VMs named vm-1 .. vm-10 with defaults
  virtbatch 10

  # The same ten VMs, spelled out
  virtbatch --prefix vm --count 10

  # web-5 .. web-8 with a larger footprint
  virtbatch -p web -s 5 -e 8 --cores 2 --sockets 2 --memory 16Gi`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, &fl, args)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fl.prefix, "prefix", "p", config.DefaultPrefix, "instance name prefix")
	f.IntVarP(&fl.start, "start", "s", config.DefaultStart, "first instance index (inclusive)")
	f.IntVarP(&fl.end, "end", "e", config.DefaultEnd, "last instance index (inclusive)")
	f.IntVarP(&fl.count, "count", "c", 0, "instance count; resolves to end = start + count - 1")
	f.IntVar(&fl.cores, "cores", config.DefaultCores, "CPU cores per instance")
	f.IntVar(&fl.sockets, "sockets", config.DefaultSockets, "CPU sockets per instance")
	f.IntVar(&fl.threads, "threads", config.DefaultThreads, "CPU threads per core")
	f.StringVar(&fl.memory, "memory", config.DefaultMemory, "memory per instance (must match <n>Gi)")
	f.StringVar(&fl.storageClass, "storageclass", config.DefaultStorageClass, "storage class for all volumes")
	f.StringVar(&fl.imageURL, "imageurl", config.DefaultImageURL, "HTTP URL of the boot disk image")
	f.StringVar(&fl.namespace, "namespace", config.DefaultNamespace, "target namespace")
	f.StringVar(&fl.client, "client", config.DefaultClient, "orchestrator client binary (kubectl or oc)")

	return cmd
}

// buildConfig assembles and validates the batch request from the parsed
// flags and the optional legacy positional count argument.
func buildConfig(cmd *cobra.Command, fl *flags, args []string) (*config.BatchConfig, error) {
	cfg := config.Default()
	cfg.Prefix = fl.prefix
	cfg.Start = fl.start
	cfg.End = fl.end
	cfg.Cores = fl.cores
	cfg.Sockets = fl.sockets
	cfg.Threads = fl.threads
	cfg.Memory = fl.memory
	cfg.StorageClass = fl.storageClass
	cfg.ImageURL = fl.imageURL
	cfg.Namespace = fl.namespace
	cfg.Client = fl.client

	count := 0
	hasCount := cmd.Flags().Changed("count")
	if hasCount {
		count = fl.count
	}

	// Legacy mode: a single bare positive integer is an instance count.
	if len(args) == 1 {
		if hasCount {
			return nil, fmt.Errorf("count supplied both as --count and as a positional argument")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("legacy count argument must be a positive integer, got %q", args[0])
		}
		count = n
		hasCount = true
	}

	if hasCount {
		if err := cfg.ResolveCount(count); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
