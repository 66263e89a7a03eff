package authz

import (
	"fmt"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/logger"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleAdministrator,
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
			},
		},
		{
			Role: constants.RoleSeller,
			Policies: []Policy{
				{Object: "/seller/*", Action: "*"},
			},
		},
		{
			Role: constants.RoleCustomer,
			Policies: []Policy{
				{Object: "/me", Action: "*"},
				{Object: "/cart", Action: "*"},
				{Object: "/cart/:id", Action: "*"},
				{Object: "/orders", Action: "*"},
				{Object: "/orders/:id", Action: "*"},
				{Object: "/payments", Action: "*"},
				{Object: "/payments/:id", Action: "*"},
				{Object: "/reviews", Action: "*"},
				{Object: "/reviews/:id", Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles 将预置角色策略同步到 casbin_rule：补齐缺失项，撤销预置角色下已不在矩阵中的旧策略
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	for _, seed := range BuiltinRoleSeeds() {
		wanted := make(map[string]struct{}, len(seed.Policies))
		for _, policy := range seed.Policies {
			if _, err := s.GrantRolePolicy(seed.Role, policy.Object, policy.Action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
			wanted[policyKey(policy.Object, policy.Action)] = struct{}{}
		}
		current, err := s.GetRolePolicies(seed.Role)
		if err != nil {
			return err
		}
		for _, policy := range current {
			if _, ok := wanted[policyKey(policy.Object, policy.Action)]; ok {
				continue
			}
			if err := s.RevokeRolePolicy(seed.Role, policy.Object, policy.Action); err != nil {
				return err
			}
			logger.Infow("authz_stale_policy_revoked", "role", seed.Role, "object", policy.Object, "action", policy.Action)
		}
	}
	return nil
}

func policyKey(object, action string) string {
	return NormalizeObject(object) + " " + NormalizeAction(action)
}
