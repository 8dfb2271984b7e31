// Package manifest renders VirtualMachine manifests for batch submission.
//
// Render is a pure function from (request, index) to a typed manifest:
// no I/O, no clock, no randomness. The same inputs always produce
// byte-identical encoded output, which keeps submissions reproducible and
// the renderer trivially testable.
package manifest

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/jbweber/virtbatch/api/kubevirt"
	"github.com/jbweber/virtbatch/internal/cloudinit"
	"github.com/jbweber/virtbatch/internal/config"
	"github.com/jbweber/virtbatch/internal/naming"
)

// Fixed per-instance volume sizes. The boot disk holds the imported base
// image, the data disk starts blank.
var (
	rootDiskSize = resource.MustParse("10Gi")
	dataDiskSize = resource.MustParse("50Gi")
)

// Fixed device and credential defaults shared by every rendered instance.
const (
	diskBus       = "virtio"
	rootDiskName  = "rootdisk"
	dataDiskName  = "datadisk"
	cloudInitDisk = "cloudinitdisk"
	networkName   = "default"

	// sshKeySecret is the cluster secret whose public keys are propagated
	// into each guest via the config drive.
	sshKeySecret = "vm-ssh-pub-key"
)

// Render builds the VirtualMachine manifest for one instance index.
//
// batchID is stamped as a label on the manifest so all instances of one
// invocation can be selected together; pass the same value for every index
// of a batch.
func Render(cfg *config.BatchConfig, index int, batchID string) (*kubevirt.VirtualMachine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("batch configuration cannot be nil")
	}

	memory, err := resource.ParseQuantity(cfg.Memory)
	if err != nil {
		return nil, fmt.Errorf("invalid memory quantity %q: %w", cfg.Memory, err)
	}

	name := naming.InstanceName(cfg.Prefix, index)
	rootVolume := naming.RootDiskVolume(name)
	dataVolume := naming.DataDiskVolume(name)

	userData, err := cloudinit.GenerateUserData(name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate cloud-init user-data: %w", err)
	}

	labels := map[string]string{
		"app": name,
	}
	if batchID != "" {
		labels[naming.BatchIDLabel] = batchID
	}

	storageClass := cfg.StorageClass

	vm := kubevirt.NewVirtualMachine(name, cfg.Namespace)
	vm.Labels = labels

	vm.Spec.DataVolumeTemplates = []kubevirt.DataVolumeTemplateSpec{
		{
			ObjectMeta: metav1.ObjectMeta{Name: rootVolume},
			Spec: kubevirt.DataVolumeSpec{
				Storage: &kubevirt.StorageSpec{
					Resources: corev1.VolumeResourceRequirements{
						Requests: corev1.ResourceList{
							corev1.ResourceStorage: rootDiskSize,
						},
					},
					StorageClassName: &storageClass,
				},
				Source: &kubevirt.DataVolumeSource{
					HTTP: &kubevirt.DataVolumeSourceHTTP{URL: cfg.ImageURL},
				},
			},
		},
		{
			ObjectMeta: metav1.ObjectMeta{Name: dataVolume},
			Spec: kubevirt.DataVolumeSpec{
				Storage: &kubevirt.StorageSpec{
					Resources: corev1.VolumeResourceRequirements{
						Requests: corev1.ResourceList{
							corev1.ResourceStorage: dataDiskSize,
						},
					},
					StorageClassName: &storageClass,
				},
				Source: &kubevirt.DataVolumeSource{
					Blank: &kubevirt.DataVolumeBlankImage{},
				},
			},
		},
	}

	vm.Spec.Template = &kubevirt.VirtualMachineInstanceTemplateSpec{
		ObjectMeta: metav1.ObjectMeta{
			Labels: map[string]string{"app": name},
		},
		Spec: kubevirt.VirtualMachineInstanceSpec{
			Domain: kubevirt.DomainSpec{
				CPU: &kubevirt.CPU{
					Cores:   uint32(cfg.Cores),
					Sockets: uint32(cfg.Sockets),
					Threads: uint32(cfg.Threads),
				},
				Devices: kubevirt.Devices{
					Disks: []kubevirt.Disk{
						{Name: rootDiskName, Disk: &kubevirt.DiskTarget{Bus: diskBus}},
						{Name: dataDiskName, Disk: &kubevirt.DiskTarget{Bus: diskBus}},
						{Name: cloudInitDisk, Disk: &kubevirt.DiskTarget{Bus: diskBus}},
					},
					Inputs: []kubevirt.Input{
						{Type: "tablet", Bus: diskBus, Name: "tablet"},
					},
					Interfaces: []kubevirt.Interface{
						{Name: networkName, Masquerade: &kubevirt.InterfaceMasquerade{}},
					},
				},
				Resources: kubevirt.ResourceRequirements{
					Requests: corev1.ResourceList{
						corev1.ResourceMemory: memory,
					},
				},
			},
			AccessCredentials: []kubevirt.AccessCredential{
				{
					SSHPublicKey: &kubevirt.SSHPublicKeyAccessCredential{
						Source: kubevirt.SSHPublicKeyAccessCredentialSource{
							Secret: &kubevirt.AccessCredentialSecretSource{
								SecretName: sshKeySecret,
							},
						},
						PropagationMethod: kubevirt.SSHPublicKeyAccessCredentialPropagationMethod{
							ConfigDrive: &kubevirt.ConfigDriveSSHPublicKeyAccessCredentialPropagation{},
						},
					},
				},
			},
			Networks: []kubevirt.Network{
				{Name: networkName, Pod: &kubevirt.PodNetwork{}},
			},
			Volumes: []kubevirt.Volume{
				{Name: rootDiskName, DataVolume: &kubevirt.DataVolumeVolumeSource{Name: rootVolume}},
				{Name: dataDiskName, DataVolume: &kubevirt.DataVolumeVolumeSource{Name: dataVolume}},
				{Name: cloudInitDisk, CloudInitNoCloud: &kubevirt.CloudInitNoCloudSource{UserData: userData}},
			},
		},
	}

	return vm, nil
}

// Encode serializes a manifest to the YAML document fed to the
// orchestrator client.
func Encode(vm *kubevirt.VirtualMachine) ([]byte, error) {
	if vm == nil {
		return nil, fmt.Errorf("manifest cannot be nil")
	}

	kubevirt.SetDefaultTypeMeta(vm)

	data, err := yaml.Marshal(vm)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest to YAML: %w", err)
	}

	return data, nil
}
