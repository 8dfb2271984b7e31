// Package vm runs the batch submission loop: render each instance
// manifest, pipe it to the orchestrator client, pace with fixed delays,
// and keep going when an individual creation fails.
package vm
