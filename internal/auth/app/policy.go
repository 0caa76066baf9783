package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/aussiebroadwan/userauth/internal/auth/domain"
	"github.com/aussiebroadwan/userauth/pkg/httpx"
	"gopkg.in/yaml.v3"
)

// DefaultPolicy is the built-in access table. Paths it does not name are
// open to everyone.
func DefaultPolicy() httpx.Policy {
	return httpx.Policy{
		Rules: []httpx.Rule{
			{Pattern: "/notice/**", Access: httpx.AnyRole, Roles: []string{domain.RoleUser}},
			{Pattern: "/html/user/**", Access: httpx.Authenticated},
			{Pattern: "/admin/**", Access: httpx.AnyRole, Roles: []string{domain.RoleAdmin}},
		},
		Default: httpx.PermitAll,
	}
}

type policyFile struct {
	Default string       `yaml:"default"`
	Rules   []policyRule `yaml:"rules"`
}

type policyRule struct {
	Pattern string   `yaml:"pattern"`
	Require string   `yaml:"require"`
	Roles   []string `yaml:"roles"`
}

// LoadPolicy reads an access policy from a YAML file:
//
//	default: permit
//	rules:
//	  - pattern: /admin/**
//	    require: hasAnyRole
//	    roles: [ROLE_ADMIN]
//
// An empty path yields DefaultPolicy.
func LoadPolicy(path string) (httpx.Policy, error) {
	if path == "" {
		return DefaultPolicy(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return httpx.Policy{}, fmt.Errorf("read access policy: %w", err)
	}
	return parsePolicy(b)
}

func parsePolicy(b []byte) (httpx.Policy, error) {
	var f policyFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return httpx.Policy{}, fmt.Errorf("parse access policy: %w", err)
	}

	def, err := httpx.ParseAccess(f.Default)
	if err != nil {
		return httpx.Policy{}, fmt.Errorf("access policy default: %w", err)
	}

	p := httpx.Policy{Default: def, Rules: make([]httpx.Rule, 0, len(f.Rules))}
	for i, r := range f.Rules {
		access, err := httpx.ParseAccess(r.Require)
		if err != nil {
			return httpx.Policy{}, fmt.Errorf("access policy rule %d: %w", i, err)
		}
		p.Rules = append(p.Rules, httpx.Rule{
			Pattern: r.Pattern,
			Access:  access,
			Roles:   domain.ParseRoles(strings.Join(r.Roles, ",")),
		})
	}

	if err := p.Validate(); err != nil {
		return httpx.Policy{}, fmt.Errorf("access policy: %w", err)
	}
	return p, nil
}
