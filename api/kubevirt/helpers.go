package kubevirt

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// GroupName is the API group for KubeVirt resources.
	GroupName = "kubevirt.io"

	// Version is the KubeVirt API version rendered by this tool.
	Version = "v1"

	// VirtualMachineKind is the kind string for VirtualMachine resources.
	VirtualMachineKind = "VirtualMachine"

	// CDIGroupName is the API group for Containerized Data Importer resources.
	CDIGroupName = "cdi.kubevirt.io"

	// CDIVersion is the CDI API version used for DataVolume templates.
	CDIVersion = "v1beta1"
)

// APIVersion returns the apiVersion string for KubeVirt resources.
func APIVersion() string {
	return GroupName + "/" + Version
}

// NewVirtualMachine creates a VirtualMachine with TypeMeta set and the
// run-on-create policy the cluster expects from this tool.
func NewVirtualMachine(name, namespace string) *VirtualMachine {
	running := true

	return &VirtualMachine{
		TypeMeta: metav1.TypeMeta{
			APIVersion: APIVersion(),
			Kind:       VirtualMachineKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: VirtualMachineSpec{
			Running: &running,
		},
	}
}

// SetDefaultTypeMeta ensures the VM has the correct apiVersion and kind.
// Useful for manifests built field by field rather than via NewVirtualMachine.
func SetDefaultTypeMeta(vm *VirtualMachine) {
	if vm.APIVersion == "" {
		vm.APIVersion = APIVersion()
	}
	if vm.Kind == "" {
		vm.Kind = VirtualMachineKind
	}
}

// IsRunning returns true if the VM is configured to start on creation.
// Handles nil pointer by returning the KubeVirt default (false).
func (vm *VirtualMachine) IsRunning() bool {
	if vm.Spec.Running == nil {
		return false
	}
	return *vm.Spec.Running
}
