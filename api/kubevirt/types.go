// Package kubevirt defines the subset of the KubeVirt and CDI resource
// schemas that virtbatch renders.
//
// These are plain serialization types, not generated API machinery: the
// tool only ever builds manifests and hands them to an external client, so
// it carries just the fields it sets. Field names and JSON tags match the
// kubevirt.io/v1 and cdi.kubevirt.io/v1beta1 wire formats exactly.
package kubevirt

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// VirtualMachine is a kubevirt.io/v1 VirtualMachine manifest.
type VirtualMachine struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Spec defines the desired state of the VirtualMachine.
	Spec VirtualMachineSpec `json:"spec"`
}

// VirtualMachineSpec defines the desired state of a VirtualMachine.
type VirtualMachineSpec struct {
	// Running requests the VM to be started immediately after creation.
	Running *bool `json:"running,omitempty"`

	// DataVolumeTemplates are CDI DataVolumes created alongside the VM.
	// Their lifecycle is owned by the VM.
	DataVolumeTemplates []DataVolumeTemplateSpec `json:"dataVolumeTemplates,omitempty"`

	// Template describes the VirtualMachineInstance created from this VM.
	Template *VirtualMachineInstanceTemplateSpec `json:"template"`
}

// DataVolumeTemplateSpec is a cdi.kubevirt.io/v1beta1 DataVolume embedded
// in a VirtualMachine.
type DataVolumeTemplateSpec struct {
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec DataVolumeSpec `json:"spec"`
}

// DataVolumeSpec defines how a DataVolume is provisioned and populated.
type DataVolumeSpec struct {
	// Storage configures the backing PVC via the CDI storage API.
	Storage *StorageSpec `json:"storage,omitempty"`

	// Source is where the volume contents come from.
	Source *DataVolumeSource `json:"source,omitempty"`
}

// StorageSpec configures the PVC requested for a DataVolume.
type StorageSpec struct {
	Resources        corev1.VolumeResourceRequirements `json:"resources,omitempty"`
	StorageClassName *string                           `json:"storageClassName,omitempty"`
}

// DataVolumeSource selects exactly one population source for a DataVolume.
type DataVolumeSource struct {
	// HTTP imports a disk image from a URL.
	HTTP *DataVolumeSourceHTTP `json:"http,omitempty"`

	// Blank provisions an empty volume.
	Blank *DataVolumeBlankImage `json:"blank,omitempty"`
}

// DataVolumeSourceHTTP imports a disk image from an HTTP endpoint.
type DataVolumeSourceHTTP struct {
	URL string `json:"url"`
}

// DataVolumeBlankImage provisions an empty volume.
type DataVolumeBlankImage struct{}

// VirtualMachineInstanceTemplateSpec describes the VMI stamped out by a VM.
type VirtualMachineInstanceTemplateSpec struct {
	ObjectMeta metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec VirtualMachineInstanceSpec `json:"spec"`
}

// VirtualMachineInstanceSpec defines a single virtual machine instance.
type VirtualMachineInstanceSpec struct {
	// Domain is the virtualized hardware configuration.
	Domain DomainSpec `json:"domain"`

	// AccessCredentials are dynamically injected into the guest.
	AccessCredentials []AccessCredential `json:"accessCredentials,omitempty"`

	// Networks map interface names to cluster network sources.
	Networks []Network `json:"networks,omitempty"`

	// Volumes map disk names to volume sources.
	Volumes []Volume `json:"volumes,omitempty"`
}

// DomainSpec is the virtualized hardware configuration of an instance.
type DomainSpec struct {
	CPU       *CPU                 `json:"cpu,omitempty"`
	Devices   Devices              `json:"devices"`
	Resources ResourceRequirements `json:"resources,omitempty"`
}

// CPU is the guest CPU topology. Effective vCPU count is
// cores * sockets * threads.
type CPU struct {
	Cores   uint32 `json:"cores,omitempty"`
	Sockets uint32 `json:"sockets,omitempty"`
	Threads uint32 `json:"threads,omitempty"`
}

// ResourceRequirements are compute resources requested for the instance.
type ResourceRequirements struct {
	Requests corev1.ResourceList `json:"requests,omitempty"`
}

// Devices lists the devices attached to the instance.
type Devices struct {
	Disks      []Disk      `json:"disks,omitempty"`
	Inputs     []Input     `json:"inputs,omitempty"`
	Interfaces []Interface `json:"interfaces,omitempty"`
}

// Disk attaches a named volume as a guest disk.
type Disk struct {
	Name string `json:"name"`

	// Disk exposes the volume as an ordinary disk device.
	Disk *DiskTarget `json:"disk,omitempty"`
}

// DiskTarget configures how a disk device is exposed to the guest.
type DiskTarget struct {
	// Bus is the disk bus type (e.g. "virtio", "sata").
	Bus string `json:"bus,omitempty"`
}

// Input is a guest input device such as a tablet.
type Input struct {
	Type string `json:"type"`
	Bus  string `json:"bus,omitempty"`
	Name string `json:"name"`
}

// Interface is a guest network interface and its binding method.
type Interface struct {
	Name string `json:"name"`

	// Masquerade binds the interface using NAT on the pod network.
	Masquerade *InterfaceMasquerade `json:"masquerade,omitempty"`
}

// InterfaceMasquerade binds an interface via masquerade (NAT).
type InterfaceMasquerade struct{}

// Network names a source of connectivity for an interface.
type Network struct {
	Name string `json:"name"`

	// Pod uses the pod network of the cluster.
	Pod *PodNetwork `json:"pod,omitempty"`
}

// PodNetwork uses the default pod network.
type PodNetwork struct{}

// Volume is a named volume source available to the instance.
type Volume struct {
	Name string `json:"name"`

	// DataVolume references a DataVolume by name.
	DataVolume *DataVolumeVolumeSource `json:"dataVolume,omitempty"`

	// CloudInitNoCloud provides cloud-init data via the NoCloud datasource.
	CloudInitNoCloud *CloudInitNoCloudSource `json:"cloudInitNoCloud,omitempty"`
}

// DataVolumeVolumeSource references a DataVolume by name.
type DataVolumeVolumeSource struct {
	Name string `json:"name"`
}

// CloudInitNoCloudSource carries inline cloud-init configuration.
type CloudInitNoCloudSource struct {
	UserData string `json:"userData,omitempty"`
}

// AccessCredential injects a credential into the guest.
type AccessCredential struct {
	SSHPublicKey *SSHPublicKeyAccessCredential `json:"sshPublicKey,omitempty"`
}

// SSHPublicKeyAccessCredential injects SSH public keys from a cluster
// secret into the guest's authorized keys.
type SSHPublicKeyAccessCredential struct {
	Source            SSHPublicKeyAccessCredentialSource            `json:"source"`
	PropagationMethod SSHPublicKeyAccessCredentialPropagationMethod `json:"propagationMethod"`
}

// SSHPublicKeyAccessCredentialSource selects where the keys come from.
type SSHPublicKeyAccessCredentialSource struct {
	Secret *AccessCredentialSecretSource `json:"secret,omitempty"`
}

// AccessCredentialSecretSource references a secret holding credentials.
type AccessCredentialSecretSource struct {
	SecretName string `json:"secretName"`
}

// SSHPublicKeyAccessCredentialPropagationMethod selects how keys reach
// the guest.
type SSHPublicKeyAccessCredentialPropagationMethod struct {
	// ConfigDrive delivers the keys through the config-drive metadata.
	ConfigDrive *ConfigDriveSSHPublicKeyAccessCredentialPropagation `json:"configDrive,omitempty"`
}

// ConfigDriveSSHPublicKeyAccessCredentialPropagation delivers keys via
// config drive.
type ConfigDriveSSHPublicKeyAccessCredentialPropagation struct{}
