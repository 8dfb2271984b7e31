// Package config defines the batch provisioning request and its validation.
//
// A BatchConfig is built once from command-line flags, validated, and then
// treated as immutable for the rest of the run.
package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Default values for fields not supplied on the command line.
const (
	DefaultPrefix       = "vm"
	DefaultStart        = 1
	DefaultEnd          = 1
	DefaultCores        = 1
	DefaultSockets      = 1
	DefaultThreads      = 1
	DefaultMemory       = "8Gi"
	DefaultStorageClass = "ocs-storagecluster-ceph-rbd"
	DefaultImageURL     = "https://download.fedoraproject.org/pub/fedora/linux/releases/40/Cloud/x86_64/images/Fedora-Cloud-Base-Generic.x86_64-40-1.14.qcow2"
	DefaultNamespace    = "default"
	DefaultClient       = "kubectl"
)

// memoryPattern matches a positive integer immediately followed by the
// literal Gi suffix. Other units are rejected on purpose: the rendered
// manifests only ever request gibibytes.
var memoryPattern = regexp.MustCompile(`^[0-9]+Gi$`)

// prefixPattern matches a DNS-1123 label fragment. The prefix becomes part
// of a Kubernetes object name, so it has to survive the API server's name
// validation once the index is appended.
var prefixPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// BatchConfig is the complete provisioning request for one invocation.
type BatchConfig struct {
	// Prefix is the instance name prefix; instances are named
	// {Prefix}-{index}.
	Prefix string

	// Start and End are the inclusive instance index range.
	Start int
	End   int

	// Cores, Sockets and Threads form the guest CPU topology.
	Cores   int
	Sockets int
	Threads int

	// Memory is the per-instance memory request, e.g. "8Gi".
	Memory string

	// StorageClass is the storage class for both rendered volumes.
	StorageClass string

	// ImageURL is the HTTP source of the boot disk image.
	ImageURL string

	// Namespace is the target namespace for all created resources.
	Namespace string

	// Client is the orchestrator CLI binary manifests are piped to.
	Client string
}

// Default returns a BatchConfig populated with all default values.
func Default() *BatchConfig {
	return &BatchConfig{
		Prefix:       DefaultPrefix,
		Start:        DefaultStart,
		End:          DefaultEnd,
		Cores:        DefaultCores,
		Sockets:      DefaultSockets,
		Threads:      DefaultThreads,
		Memory:       DefaultMemory,
		StorageClass: DefaultStorageClass,
		ImageURL:     DefaultImageURL,
		Namespace:    DefaultNamespace,
		Client:       DefaultClient,
	}
}

// ResolveCount translates a requested instance count into the index range,
// anchored at the configured start: end = start + count - 1.
func (c *BatchConfig) ResolveCount(count int) error {
	if count < 1 {
		return fmt.Errorf("count must be >= 1, got %d", count)
	}
	c.End = c.Start + count - 1
	return nil
}

// Validate checks the request and returns the first violated rule.
//
// The checks run in a fixed order so the reported failure is stable:
// index signs, index ordering, CPU topology, memory format, then the
// supplementary prefix and client checks.
func (c *BatchConfig) Validate() error {
	if c.Start < 0 {
		return fmt.Errorf("start must be a non-negative integer, got %d", c.Start)
	}
	if c.End < 0 {
		return fmt.Errorf("end must be a non-negative integer, got %d", c.End)
	}
	if c.Start > c.End {
		return fmt.Errorf("start index %d must not exceed end index %d", c.Start, c.End)
	}
	if c.Cores < 1 {
		return fmt.Errorf("cores must be >= 1, got %d", c.Cores)
	}
	if c.Sockets < 1 {
		return fmt.Errorf("sockets must be >= 1, got %d", c.Sockets)
	}
	if c.Threads < 1 {
		return fmt.Errorf("threads must be >= 1, got %d", c.Threads)
	}
	if !memoryPattern.MatchString(c.Memory) {
		return fmt.Errorf("memory must be a positive integer followed by Gi (e.g. 8Gi), got %q", c.Memory)
	}
	if !prefixPattern.MatchString(c.Prefix) {
		return fmt.Errorf("prefix must be a lowercase alphanumeric label (DNS-1123), got %q", c.Prefix)
	}
	if strings.TrimSpace(c.Client) == "" {
		return fmt.Errorf("client binary must not be empty")
	}
	if strings.TrimSpace(c.ImageURL) == "" {
		return fmt.Errorf("image URL must not be empty")
	}
	return nil
}

// InstanceCount returns the number of instances in the requested range.
// Only meaningful after Validate has accepted the range.
func (c *BatchConfig) InstanceCount() int {
	return c.End - c.Start + 1
}

// VCPUs returns the effective per-instance vCPU count,
// cores * sockets * threads.
func (c *BatchConfig) VCPUs() int {
	return c.Cores * c.Sockets * c.Threads
}
