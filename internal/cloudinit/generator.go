// Package cloudinit generates the cloud-config block injected into each
// instance through the KubeVirt cloudInitNoCloud volume source.
//
// See https://cloudinit.readthedocs.io/en/latest/explanation/format.html#cloud-config-data
package cloudinit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The injected login is deliberately fixed: every batch instance boots with
// the same known root credentials, and real access is expected to come from
// the SSH key secret propagated by the access credential in the manifest.
const (
	loginUser     = "root"
	loginPassword = "changeme"
)

// UserData represents the cloud-config user-data structure.
// This is marshaled to YAML and prefixed with the "#cloud-config" header.
type UserData struct {
	User            string   `yaml:"user"`
	Password        string   `yaml:"password"`
	Chpasswd        Chpasswd `yaml:"chpasswd"`
	SSHPasswordAuth bool     `yaml:"ssh_pwauth"`
}

// Chpasswd configures user password settings.
type Chpasswd struct {
	Expire bool `yaml:"expire"` // Whether to expire the password on first login
}

// GenerateUserData generates the user-data content for one instance.
//
// The hostname comes from the instance name; everything else is fixed.
// Returns the complete block including the "#cloud-config" header.
func GenerateUserData(instanceName string) (string, error) {
	if instanceName == "" {
		return "", fmt.Errorf("instance name cannot be empty")
	}

	userData := struct {
		Hostname string `yaml:"hostname"`
		UserData `yaml:",inline"`
	}{
		Hostname: instanceName,
		UserData: UserData{
			User:            loginUser,
			Password:        loginPassword,
			Chpasswd:        Chpasswd{Expire: false},
			SSHPasswordAuth: true,
		},
	}

	yamlBytes, err := yaml.Marshal(&userData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal user-data to YAML: %w", err)
	}

	// Prepend #cloud-config header (required by the cloud-init spec)
	return "#cloud-config\n" + string(yamlBytes), nil
}
