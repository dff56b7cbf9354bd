package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"legacy scoped domain", Domain("clinic:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionPublish,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	// Verify all expected resources are in the known map
	expectedResources := []Resource{
		ResourceAdmin, ResourceAuthSession,
		ResourceQuestionnaire, ResourceDimension, ResourceQuestion,
		ResourceBranchRule, ResourceAssessmentLevel,
		ResourceSubmission, ResourceStats,
		ResourceSystem, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	expectedRoles := []Role{RoleAdmin, RoleEditor, RoleViewer}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestAdminRoleToRBACRole(t *testing.T) {
	tests := []struct {
		stored string
		want   Role
	}{
		{"admin", RoleAdmin},
		{"editor", RoleEditor},
		{"viewer", RoleViewer},
	}

	for _, tt := range tests {
		got, ok := AdminRoleToRBACRole[tt.stored]
		if !ok || got != tt.want {
			t.Errorf("AdminRoleToRBACRole[%q] = %q (ok=%v), want %q", tt.stored, got, ok, tt.want)
		}
	}
}
