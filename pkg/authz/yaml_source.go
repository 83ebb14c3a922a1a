package authz

import (
	"context"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// fileRoleSource loads the capability table from a YAML file so deployments
// can re-map capabilities without a rebuild. File format:
//
//	roles:
//	  admin: ["*"]
//	  viewer: ["order.read", "customer.read"]
//	overrides:
//	  ceo@example.com:
//	    name: CEO Name
//	    role: admin
type fileRoleSource struct {
	path string
}

// NewFileRoleSource creates a RoleSource reading the table from a YAML file.
// The file is read when the authorization service is constructed.
func NewFileRoleSource(path string) RoleSource {
	return &fileRoleSource{path: path}
}

type authzFile struct {
	Roles     map[Role][]string   `yaml:"roles"`
	Overrides map[string]Override `yaml:"overrides"`
}

func (s *fileRoleSource) Load(ctx context.Context) (map[Role][]string, error) {
	cfg, err := readAuthzFile(s.path)
	if err != nil {
		return nil, err
	}
	return cfg.Roles, nil
}

// LoadOverridesFile reads the special-user override table from the same YAML
// format. Missing or empty overrides sections yield an empty table, which is
// a valid configuration.
func LoadOverridesFile(path string) (Overrides, error) {
	cfg, err := readAuthzFile(path)
	if err != nil {
		return Overrides{}, err
	}
	return NewOverrides(cfg.Overrides), nil
}

func readAuthzFile(path string) (authzFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return authzFile{}, errors.Join(ErrFailedToLoadRoles, err)
	}

	var cfg authzFile
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return authzFile{}, errors.Join(ErrFailedToLoadRoles, err)
	}
	return cfg, nil
}
