package kubevirt

import (
	"strings"
	"testing"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

func TestNewVirtualMachine(t *testing.T) {
	vm := NewVirtualMachine("web-1", "default")

	if vm.APIVersion != "kubevirt.io/v1" {
		t.Errorf("Expected apiVersion 'kubevirt.io/v1', got %q", vm.APIVersion)
	}
	if vm.Kind != "VirtualMachine" {
		t.Errorf("Expected kind 'VirtualMachine', got %q", vm.Kind)
	}
	if vm.Name != "web-1" {
		t.Errorf("Expected name 'web-1', got %q", vm.Name)
	}
	if vm.Namespace != "default" {
		t.Errorf("Expected namespace 'default', got %q", vm.Namespace)
	}
	if !vm.IsRunning() {
		t.Error("Expected new VM to be configured running")
	}
}

func TestSetDefaultTypeMeta(t *testing.T) {
	tests := []struct {
		name        string
		vm          VirtualMachine
		wantVersion string
		wantKind    string
	}{
		{
			name:        "empty type meta gets defaults",
			vm:          VirtualMachine{},
			wantVersion: "kubevirt.io/v1",
			wantKind:    "VirtualMachine",
		},
		{
			name: "existing values preserved",
			vm: VirtualMachine{
				TypeMeta: metav1.TypeMeta{APIVersion: "kubevirt.io/v1alpha3", Kind: "VirtualMachine"},
			},
			wantVersion: "kubevirt.io/v1alpha3",
			wantKind:    "VirtualMachine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetDefaultTypeMeta(&tt.vm)
			if tt.vm.APIVersion != tt.wantVersion {
				t.Errorf("Expected apiVersion %q, got %q", tt.wantVersion, tt.vm.APIVersion)
			}
			if tt.vm.Kind != tt.wantKind {
				t.Errorf("Expected kind %q, got %q", tt.wantKind, tt.vm.Kind)
			}
		})
	}
}

func TestIsRunning_NilPointer(t *testing.T) {
	vm := &VirtualMachine{}
	if vm.IsRunning() {
		t.Error("Expected nil Running to report false")
	}
}

// TestVirtualMachineWireFormat checks that the rendered field names match
// what the kubevirt.io/v1 API server expects. The external client does no
// schema translation, so the JSON tags are the contract.
func TestVirtualMachineWireFormat(t *testing.T) {
	sc := "fast"
	vm := NewVirtualMachine("wire-1", "default")
	vm.Spec.DataVolumeTemplates = []DataVolumeTemplateSpec{
		{
			ObjectMeta: metav1.ObjectMeta{Name: "wire-1-rootdisk"},
			Spec: DataVolumeSpec{
				Storage: &StorageSpec{
					Resources: corev1.VolumeResourceRequirements{
						Requests: corev1.ResourceList{
							corev1.ResourceStorage: resource.MustParse("10Gi"),
						},
					},
					StorageClassName: &sc,
				},
				Source: &DataVolumeSource{
					HTTP: &DataVolumeSourceHTTP{URL: "https://example.com/disk.qcow2"},
				},
			},
		},
	}
	vm.Spec.Template = &VirtualMachineInstanceTemplateSpec{
		Spec: VirtualMachineInstanceSpec{
			Domain: DomainSpec{
				CPU: &CPU{Cores: 2, Sockets: 1, Threads: 1},
				Devices: Devices{
					Disks:      []Disk{{Name: "rootdisk", Disk: &DiskTarget{Bus: "virtio"}}},
					Interfaces: []Interface{{Name: "default", Masquerade: &InterfaceMasquerade{}}},
				},
				Resources: ResourceRequirements{
					Requests: corev1.ResourceList{
						corev1.ResourceMemory: resource.MustParse("8Gi"),
					},
				},
			},
			Networks: []Network{{Name: "default", Pod: &PodNetwork{}}},
			Volumes: []Volume{
				{Name: "rootdisk", DataVolume: &DataVolumeVolumeSource{Name: "wire-1-rootdisk"}},
				{Name: "cloudinitdisk", CloudInitNoCloud: &CloudInitNoCloudSource{UserData: "#cloud-config\n"}},
			},
		},
	}

	data, err := yaml.Marshal(vm)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	doc := string(data)

	// Spot-check the wire field names the API server is strict about.
	for _, want := range []string{
		"apiVersion: kubevirt.io/v1",
		"kind: VirtualMachine",
		"dataVolumeTemplates:",
		"storageClassName: fast",
		"storage: 10Gi",
		"url: https://example.com/disk.qcow2",
		"masquerade: {}",
		"cloudInitNoCloud:",
		"memory: 8Gi",
		"running: true",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Expected marshaled VM to contain %q, got:\n%s", want, doc)
		}
	}

	// Empty source selectors must render as empty objects, not be dropped.
	if strings.Contains(doc, "blank:") {
		t.Errorf("Unset blank source should not be rendered, got:\n%s", doc)
	}
}
