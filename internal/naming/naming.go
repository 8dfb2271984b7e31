// Package naming provides the naming conventions for batch-created
// virtual machine resources. Instance names, volume names, and the batch
// label key all live here so the renderer, the summary output, and any
// operator-side label selectors agree on one pattern.
package naming

import "fmt"

// BatchIDLabel is the label key stamped on every manifest of a batch.
// All VMs from one invocation share the same label value, so a whole
// batch can be selected (or deleted) with a single label selector.
const BatchIDLabel = "virtbatch.cofront.xyz/batch-id"

// InstanceName returns the name for the instance at the given index.
// Format: {prefix}-{index}
//
// Example: prefix "test", index 3 → "test-3"
func InstanceName(prefix string, index int) string {
	return fmt.Sprintf("%s-%d", prefix, index)
}

// RootDiskVolume returns the DataVolume name for an instance's boot disk.
// Format: {instanceName}-rootdisk
func RootDiskVolume(instanceName string) string {
	return fmt.Sprintf("%s-rootdisk", instanceName)
}

// DataDiskVolume returns the DataVolume name for an instance's blank
// data disk.
// Format: {instanceName}-datadisk
func DataDiskVolume(instanceName string) string {
	return fmt.Sprintf("%s-datadisk", instanceName)
}
