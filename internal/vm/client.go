package vm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// cliClient submits manifests by piping them to an external orchestrator
// CLI (kubectl by default, oc works identically) on standard input.
//
// The subprocess's own output is streamed through to the operator: this
// tool does not classify or interpret what the client reports.
type cliClient struct {
	binary string
	out    io.Writer
}

// newCLIClient creates a client that invokes the given binary and writes
// the subprocess output to out.
func newCLIClient(binary string, out io.Writer) *cliClient {
	return &cliClient{binary: binary, out: out}
}

// Create runs `{binary} create -f -` with the manifest on stdin.
//
// No timeout is applied beyond the context: the call blocks on whatever
// the orchestrator client does.
func (c *cliClient) Create(ctx context.Context, manifest []byte) error {
	cmd := exec.CommandContext(ctx, c.binary, "create", "-f", "-")
	cmd.Stdin = bytes.NewReader(manifest)
	cmd.Stdout = c.out
	cmd.Stderr = c.out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s create failed: %w", c.binary, err)
	}
	return nil
}
