package authorize

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionPublish Action = "publish" // open/close a questionnaire for filling

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionPublish: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceAdmin       Resource = "admin"
	ResourceAuthSession Resource = "auth_session"

	// Questionnaire authoring
	ResourceQuestionnaire   Resource = "questionnaire"
	ResourceDimension       Resource = "dimension"
	ResourceQuestion        Resource = "question"
	ResourceBranchRule      Resource = "branch_rule"
	ResourceAssessmentLevel Resource = "assessment_level"

	// Collected data
	ResourceSubmission Resource = "submission"
	ResourceStats      Resource = "stats"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceAdmin: {}, ResourceAuthSession: {},
	ResourceQuestionnaire: {}, ResourceDimension: {}, ResourceQuestion: {},
	ResourceBranchRule: {}, ResourceAssessmentLevel: {},
	ResourceSubmission: {}, ResourceStats: {},
	ResourceSystem: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to admin accounts via
// grouping policies. The deployment is single-tenant, so there is one
// flat domain.

const (
	WildcardRole Role = "*"

	RoleAdmin  Role = "role:admin"  // full control including RBAC
	RoleEditor Role = "role:editor" // author questionnaires, read results
	RoleViewer Role = "role:viewer" // read-only access to results and stats
)

var KnownRoles = map[Role]struct{}{
	RoleAdmin:  {},
	RoleEditor: {},
	RoleViewer: {},
}

// AdminRoleToRBACRole maps the role string stored on the admin row to a
// Casbin role.
var AdminRoleToRBACRole = map[string]Role{
	"admin":  RoleAdmin,
	"editor": RoleEditor,
	"viewer": RoleViewer,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys      Domain = "sys"
	WildcardDomain Domain = "*"
)

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	return d == DomainSys || d == WildcardDomain
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// GroupSubject is the g.sub in Casbin: a concrete principal id (admin_id).
type GroupSubject string

// Grouping rows: g, admin_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
