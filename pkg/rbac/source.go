package rbac

import (
	"context"
	"errors"
	"sync"

	"gopkg.in/yaml.v3"
)

// defaultLevels is the built-in three-role hierarchy.
var defaultLevels = map[string]int{
	RoleUser:       0,
	RoleAdmin:      50,
	RoleSuperAdmin: 100,
}

// inMemRoleSource is a simple RoleSource that serves a fixed level map.
type inMemRoleSource struct {
	mu     sync.RWMutex
	levels map[string]int
}

// NewInMemRoleSource creates an in-memory role source. A nil map yields the
// built-in user/admin/super_admin hierarchy. The input is copied to prevent
// external modification.
func NewInMemRoleSource(levels map[string]int) RoleSource {
	if levels == nil {
		levels = defaultLevels
	}

	copied := make(map[string]int, len(levels))
	for k, v := range levels {
		copied[k] = v
	}
	return &inMemRoleSource{levels: copied}
}

func (s *inMemRoleSource) Load(ctx context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.levels, nil
}

// yamlRoleSource loads the role hierarchy from a YAML document of the form:
//
//	roles:
//	  user: 0
//	  admin: 50
//	  super_admin: 100
type yamlRoleSource struct {
	data []byte
}

// NewYAMLRoleSource creates a RoleSource backed by YAML content, typically
// read from a deployment-managed config file.
func NewYAMLRoleSource(data []byte) RoleSource {
	return &yamlRoleSource{data: data}
}

func (s *yamlRoleSource) Load(ctx context.Context) (map[string]int, error) {
	var doc struct {
		Roles map[string]int `yaml:"roles"`
	}
	if err := yaml.Unmarshal(s.data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidRoleSource, err)
	}
	if len(doc.Roles) == 0 {
		return nil, ErrInvalidRoleSource
	}
	return doc.Roles, nil
}
