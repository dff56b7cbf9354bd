package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := []PermissionPolicy{
		// Admin: god mode
		{RoleAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Editor: author questionnaires end to end, read collected data
		{RoleEditor, DomainSys, ResourceQuestionnaire, ActionManage, EffectAllow},
		{RoleEditor, DomainSys, ResourceQuestionnaire, ActionPublish, EffectAllow},
		{RoleEditor, DomainSys, ResourceDimension, ActionManage, EffectAllow},
		{RoleEditor, DomainSys, ResourceQuestion, ActionManage, EffectAllow},
		{RoleEditor, DomainSys, ResourceBranchRule, ActionManage, EffectAllow},
		{RoleEditor, DomainSys, ResourceAssessmentLevel, ActionManage, EffectAllow},
		{RoleEditor, DomainSys, ResourceSubmission, ActionRead, EffectAllow},
		{RoleEditor, DomainSys, ResourceSubmission, ActionList, EffectAllow},
		{RoleEditor, DomainSys, ResourceStats, ActionRead, EffectAllow},

		// Viewer: read-only access to everything collected
		{RoleViewer, DomainSys, ResourceQuestionnaire, ActionRead, EffectAllow},
		{RoleViewer, DomainSys, ResourceQuestionnaire, ActionList, EffectAllow},
		{RoleViewer, DomainSys, ResourceSubmission, ActionRead, EffectAllow},
		{RoleViewer, DomainSys, ResourceSubmission, ActionList, EffectAllow},
		{RoleViewer, DomainSys, ResourceStats, ActionRead, EffectAllow},
	}

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	return nil
}

// AssignAdminRole assigns an RBAC role to an admin account.
// Call this when creating a new admin or changing its role.
func AssignAdminRole(ctx context.Context, auth IAuthorization, adminID string, role Role) error {
	if _, ok := KnownRoles[role]; !ok {
		return ErrInvalidArgs
	}
	_, err := auth.AddRoleForAdmin(ctx, GroupSubject(adminID), role)
	return err
}

// RevokeAdminRole removes an RBAC role from an admin account.
func RevokeAdminRole(ctx context.Context, auth IAuthorization, adminID string, role Role) error {
	_, err := auth.RemoveRoleForAdmin(ctx, GroupSubject(adminID), role)
	return err
}
