// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/admin"
	"github.com/halouxiaoyu/survey_backend/internal/repo/adminsession"
	"github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	"github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	"github.com/halouxiaoyu/survey_backend/internal/repo/predicate"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
	"github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdmin           = "Admin"
	TypeAdminSession    = "AdminSession"
	TypeAnswer          = "Answer"
	TypeAssessmentLevel = "AssessmentLevel"
	TypeBranchRule      = "BranchRule"
	TypeDimension       = "Dimension"
	TypeDimensionScore  = "DimensionScore"
	TypeQuestion        = "Question"
	TypeQuestionnaire   = "Questionnaire"
	TypeSubmission      = "Submission"
	TypeSurveyOption    = "SurveyOption"
)

// AdminMutation represents an operation that mutates the Admin nodes in the graph.
type AdminMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	username        *string
	password_hash   *string
	role            *admin.Role
	is_active       *bool
	last_login_at   *time.Time
	clearedFields   map[string]struct{}
	sessions        map[uuid.UUID]struct{}
	removedsessions map[uuid.UUID]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*Admin, error)
	predicates      []predicate.Admin
}

var _ ent.Mutation = (*AdminMutation)(nil)

// adminOption allows management of the mutation configuration using functional options.
type adminOption func(*AdminMutation)

// newAdminMutation creates new mutation for the Admin entity.
func newAdminMutation(c config, op Op, opts ...adminOption) *AdminMutation {
	m := &AdminMutation{
		config:        c,
		op:            op,
		typ:           TypeAdmin,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminID sets the ID field of the mutation.
func withAdminID(id uuid.UUID) adminOption {
	return func(m *AdminMutation) {
		var (
			err   error
			once  sync.Once
			value *Admin
		)
		m.oldValue = func(ctx context.Context) (*Admin, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Admin.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdmin sets the old Admin of the mutation.
func withAdmin(node *Admin) adminOption {
	return func(m *AdminMutation) {
		m.oldValue = func(context.Context) (*Admin, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Admin entities.
func (m *AdminMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Admin.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdminMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AdminMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AdminMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AdminMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *AdminMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *AdminMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *AdminMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[admin.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *AdminMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[admin.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *AdminMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, admin.FieldDeletedAt)
}

// SetUsername sets the "username" field.
func (m *AdminMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *AdminMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *AdminMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *AdminMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *AdminMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *AdminMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *AdminMutation) SetRole(a admin.Role) {
	m.role = &a
}

// Role returns the value of the "role" field in the mutation.
func (m *AdminMutation) Role() (r admin.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldRole(ctx context.Context) (v admin.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AdminMutation) ResetRole() {
	m.role = nil
}

// SetIsActive sets the "is_active" field.
func (m *AdminMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AdminMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AdminMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *AdminMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *AdminMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *AdminMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[admin.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *AdminMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[admin.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *AdminMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, admin.FieldLastLoginAt)
}

// AddSessionIDs adds the "sessions" edge to the AdminSession entity by ids.
func (m *AdminMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AdminSession entity.
func (m *AdminMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AdminSession entity was cleared.
func (m *AdminMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AdminSession entity by IDs.
func (m *AdminMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AdminSession entity.
func (m *AdminMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *AdminMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *AdminMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the AdminMutation builder.
func (m *AdminMutation) Where(ps ...predicate.Admin) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Admin, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Admin).
func (m *AdminMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, admin.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, admin.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, admin.FieldDeletedAt)
	}
	if m.username != nil {
		fields = append(fields, admin.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, admin.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, admin.FieldRole)
	}
	if m.is_active != nil {
		fields = append(fields, admin.FieldIsActive)
	}
	if m.last_login_at != nil {
		fields = append(fields, admin.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case admin.FieldCreatedAt:
		return m.CreatedAt()
	case admin.FieldUpdatedAt:
		return m.UpdatedAt()
	case admin.FieldDeletedAt:
		return m.DeletedAt()
	case admin.FieldUsername:
		return m.Username()
	case admin.FieldPasswordHash:
		return m.PasswordHash()
	case admin.FieldRole:
		return m.Role()
	case admin.FieldIsActive:
		return m.IsActive()
	case admin.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case admin.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case admin.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case admin.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case admin.FieldUsername:
		return m.OldUsername(ctx)
	case admin.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case admin.FieldRole:
		return m.OldRole(ctx)
	case admin.FieldIsActive:
		return m.OldIsActive(ctx)
	case admin.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown Admin field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminMutation) SetField(name string, value ent.Value) error {
	switch name {
	case admin.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case admin.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case admin.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case admin.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case admin.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case admin.FieldRole:
		v, ok := value.(admin.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case admin.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case admin.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown Admin field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Admin numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(admin.FieldDeletedAt) {
		fields = append(fields, admin.FieldDeletedAt)
	}
	if m.FieldCleared(admin.FieldLastLoginAt) {
		fields = append(fields, admin.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminMutation) ClearField(name string) error {
	switch name {
	case admin.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case admin.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown Admin nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminMutation) ResetField(name string) error {
	switch name {
	case admin.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case admin.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case admin.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case admin.FieldUsername:
		m.ResetUsername()
		return nil
	case admin.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case admin.FieldRole:
		m.ResetRole()
		return nil
	case admin.FieldIsActive:
		m.ResetIsActive()
		return nil
	case admin.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown Admin field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sessions != nil {
		edges = append(edges, admin.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case admin.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsessions != nil {
		edges = append(edges, admin.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case admin.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsessions {
		edges = append(edges, admin.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminMutation) EdgeCleared(name string) bool {
	switch name {
	case admin.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Admin unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminMutation) ResetEdge(name string) error {
	switch name {
	case admin.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Admin edge %s", name)
}

// AdminSessionMutation represents an operation that mutates the AdminSession nodes in the graph.
type AdminSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	session_id         *string
	refresh_token_hash *string
	user_agent         *string
	ip_address         *string
	expires_at         *time.Time
	last_used_at       *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	admin              *uuid.UUID
	clearedadmin       bool
	done               bool
	oldValue           func(context.Context) (*AdminSession, error)
	predicates         []predicate.AdminSession
}

var _ ent.Mutation = (*AdminSessionMutation)(nil)

// adminsessionOption allows management of the mutation configuration using functional options.
type adminsessionOption func(*AdminSessionMutation)

// newAdminSessionMutation creates new mutation for the AdminSession entity.
func newAdminSessionMutation(c config, op Op, opts ...adminsessionOption) *AdminSessionMutation {
	m := &AdminSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAdminSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminSessionID sets the ID field of the mutation.
func withAdminSessionID(id uuid.UUID) adminsessionOption {
	return func(m *AdminSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AdminSession
		)
		m.oldValue = func(ctx context.Context) (*AdminSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdminSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdminSession sets the old AdminSession of the mutation.
func withAdminSession(node *AdminSession) adminsessionOption {
	return func(m *AdminSessionMutation) {
		m.oldValue = func(context.Context) (*AdminSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdminSession entities.
func (m *AdminSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdminSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdminSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AdminSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AdminSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AdminSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAdminID sets the "admin_id" field.
func (m *AdminSessionMutation) SetAdminID(u uuid.UUID) {
	m.admin = &u
}

// AdminID returns the value of the "admin_id" field in the mutation.
func (m *AdminSessionMutation) AdminID() (r uuid.UUID, exists bool) {
	v := m.admin
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminID returns the old "admin_id" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldAdminID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminID: %w", err)
	}
	return oldValue.AdminID, nil
}

// ResetAdminID resets all changes to the "admin_id" field.
func (m *AdminSessionMutation) ResetAdminID() {
	m.admin = nil
}

// SetSessionID sets the "session_id" field.
func (m *AdminSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AdminSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AdminSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *AdminSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *AdminSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldRefreshTokenHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (m *AdminSessionMutation) ClearRefreshTokenHash() {
	m.refresh_token_hash = nil
	m.clearedFields[adminsession.FieldRefreshTokenHash] = struct{}{}
}

// RefreshTokenHashCleared returns if the "refresh_token_hash" field was cleared in this mutation.
func (m *AdminSessionMutation) RefreshTokenHashCleared() bool {
	_, ok := m.clearedFields[adminsession.FieldRefreshTokenHash]
	return ok
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *AdminSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
	delete(m.clearedFields, adminsession.FieldRefreshTokenHash)
}

// SetUserAgent sets the "user_agent" field.
func (m *AdminSessionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *AdminSessionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *AdminSessionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[adminsession.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *AdminSessionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[adminsession.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *AdminSessionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, adminsession.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *AdminSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *AdminSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *AdminSessionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[adminsession.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *AdminSessionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[adminsession.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *AdminSessionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, adminsession.FieldIPAddress)
}

// SetExpiresAt sets the "expires_at" field.
func (m *AdminSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *AdminSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *AdminSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *AdminSessionMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *AdminSessionMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *AdminSessionMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[adminsession.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *AdminSessionMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[adminsession.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *AdminSessionMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, adminsession.FieldLastUsedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *AdminSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *AdminSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the AdminSession entity.
// If the AdminSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *AdminSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[adminsession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *AdminSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[adminsession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *AdminSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, adminsession.FieldRevokedAt)
}

// ClearAdmin clears the "admin" edge to the Admin entity.
func (m *AdminSessionMutation) ClearAdmin() {
	m.clearedadmin = true
	m.clearedFields[adminsession.FieldAdminID] = struct{}{}
}

// AdminCleared reports if the "admin" edge to the Admin entity was cleared.
func (m *AdminSessionMutation) AdminCleared() bool {
	return m.clearedadmin
}

// AdminIDs returns the "admin" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AdminID instead. It exists only for internal usage by the builders.
func (m *AdminSessionMutation) AdminIDs() (ids []uuid.UUID) {
	if id := m.admin; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAdmin resets all changes to the "admin" edge.
func (m *AdminSessionMutation) ResetAdmin() {
	m.admin = nil
	m.clearedadmin = false
}

// Where appends a list predicates to the AdminSessionMutation builder.
func (m *AdminSessionMutation) Where(ps ...predicate.AdminSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdminSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdminSession).
func (m *AdminSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, adminsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, adminsession.FieldUpdatedAt)
	}
	if m.admin != nil {
		fields = append(fields, adminsession.FieldAdminID)
	}
	if m.session_id != nil {
		fields = append(fields, adminsession.FieldSessionID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, adminsession.FieldRefreshTokenHash)
	}
	if m.user_agent != nil {
		fields = append(fields, adminsession.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, adminsession.FieldIPAddress)
	}
	if m.expires_at != nil {
		fields = append(fields, adminsession.FieldExpiresAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, adminsession.FieldLastUsedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, adminsession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adminsession.FieldCreatedAt:
		return m.CreatedAt()
	case adminsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case adminsession.FieldAdminID:
		return m.AdminID()
	case adminsession.FieldSessionID:
		return m.SessionID()
	case adminsession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case adminsession.FieldUserAgent:
		return m.UserAgent()
	case adminsession.FieldIPAddress:
		return m.IPAddress()
	case adminsession.FieldExpiresAt:
		return m.ExpiresAt()
	case adminsession.FieldLastUsedAt:
		return m.LastUsedAt()
	case adminsession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adminsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case adminsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case adminsession.FieldAdminID:
		return m.OldAdminID(ctx)
	case adminsession.FieldSessionID:
		return m.OldSessionID(ctx)
	case adminsession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case adminsession.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case adminsession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case adminsession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case adminsession.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case adminsession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdminSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adminsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case adminsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case adminsession.FieldAdminID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminID(v)
		return nil
	case adminsession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case adminsession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case adminsession.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case adminsession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case adminsession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case adminsession.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case adminsession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdminSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdminSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(adminsession.FieldRefreshTokenHash) {
		fields = append(fields, adminsession.FieldRefreshTokenHash)
	}
	if m.FieldCleared(adminsession.FieldUserAgent) {
		fields = append(fields, adminsession.FieldUserAgent)
	}
	if m.FieldCleared(adminsession.FieldIPAddress) {
		fields = append(fields, adminsession.FieldIPAddress)
	}
	if m.FieldCleared(adminsession.FieldLastUsedAt) {
		fields = append(fields, adminsession.FieldLastUsedAt)
	}
	if m.FieldCleared(adminsession.FieldRevokedAt) {
		fields = append(fields, adminsession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminSessionMutation) ClearField(name string) error {
	switch name {
	case adminsession.FieldRefreshTokenHash:
		m.ClearRefreshTokenHash()
		return nil
	case adminsession.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case adminsession.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case adminsession.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case adminsession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown AdminSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminSessionMutation) ResetField(name string) error {
	switch name {
	case adminsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case adminsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case adminsession.FieldAdminID:
		m.ResetAdminID()
		return nil
	case adminsession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case adminsession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case adminsession.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case adminsession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case adminsession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case adminsession.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case adminsession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown AdminSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.admin != nil {
		edges = append(edges, adminsession.EdgeAdmin)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case adminsession.EdgeAdmin:
		if id := m.admin; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedadmin {
		edges = append(edges, adminsession.EdgeAdmin)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case adminsession.EdgeAdmin:
		return m.clearedadmin
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminSessionMutation) ClearEdge(name string) error {
	switch name {
	case adminsession.EdgeAdmin:
		m.ClearAdmin()
		return nil
	}
	return fmt.Errorf("unknown AdminSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminSessionMutation) ResetEdge(name string) error {
	switch name {
	case adminsession.EdgeAdmin:
		m.ResetAdmin()
		return nil
	}
	return fmt.Errorf("unknown AdminSession edge %s", name)
}

// AnswerMutation represents an operation that mutates the Answer nodes in the graph.
type AnswerMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	created_at                *time.Time
	option_id                 *uuid.UUID
	value                     *float64
	addvalue                  *float64
	selected_option_ids       *[]uuid.UUID
	appendselected_option_ids []uuid.UUID
	text_answer               *string
	clearedFields             map[string]struct{}
	submission                *uuid.UUID
	clearedsubmission         bool
	question                  *uuid.UUID
	clearedquestion           bool
	done                      bool
	oldValue                  func(context.Context) (*Answer, error)
	predicates                []predicate.Answer
}

var _ ent.Mutation = (*AnswerMutation)(nil)

// answerOption allows management of the mutation configuration using functional options.
type answerOption func(*AnswerMutation)

// newAnswerMutation creates new mutation for the Answer entity.
func newAnswerMutation(c config, op Op, opts ...answerOption) *AnswerMutation {
	m := &AnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerID sets the ID field of the mutation.
func withAnswerID(id uuid.UUID) answerOption {
	return func(m *AnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *Answer
		)
		m.oldValue = func(ctx context.Context) (*Answer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Answer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswer sets the old Answer of the mutation.
func withAnswer(node *Answer) answerOption {
	return func(m *AnswerMutation) {
		m.oldValue = func(context.Context) (*Answer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Answer entities.
func (m *AnswerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Answer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AnswerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnswerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnswerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSubmissionID sets the "submission_id" field.
func (m *AnswerMutation) SetSubmissionID(u uuid.UUID) {
	m.submission = &u
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *AnswerMutation) SubmissionID() (r uuid.UUID, exists bool) {
	v := m.submission
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSubmissionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *AnswerMutation) ResetSubmissionID() {
	m.submission = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerMutation) SetQuestionID(u uuid.UUID) {
	m.question = &u
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerMutation) QuestionID() (r uuid.UUID, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldQuestionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerMutation) ResetQuestionID() {
	m.question = nil
}

// SetOptionID sets the "option_id" field.
func (m *AnswerMutation) SetOptionID(u uuid.UUID) {
	m.option_id = &u
}

// OptionID returns the value of the "option_id" field in the mutation.
func (m *AnswerMutation) OptionID() (r uuid.UUID, exists bool) {
	v := m.option_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionID returns the old "option_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldOptionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionID: %w", err)
	}
	return oldValue.OptionID, nil
}

// ClearOptionID clears the value of the "option_id" field.
func (m *AnswerMutation) ClearOptionID() {
	m.option_id = nil
	m.clearedFields[answer.FieldOptionID] = struct{}{}
}

// OptionIDCleared returns if the "option_id" field was cleared in this mutation.
func (m *AnswerMutation) OptionIDCleared() bool {
	_, ok := m.clearedFields[answer.FieldOptionID]
	return ok
}

// ResetOptionID resets all changes to the "option_id" field.
func (m *AnswerMutation) ResetOptionID() {
	m.option_id = nil
	delete(m.clearedFields, answer.FieldOptionID)
}

// SetValue sets the "value" field.
func (m *AnswerMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *AnswerMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *AnswerMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *AnswerMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ClearValue clears the value of the "value" field.
func (m *AnswerMutation) ClearValue() {
	m.value = nil
	m.addvalue = nil
	m.clearedFields[answer.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *AnswerMutation) ValueCleared() bool {
	_, ok := m.clearedFields[answer.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *AnswerMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
	delete(m.clearedFields, answer.FieldValue)
}

// SetSelectedOptionIds sets the "selected_option_ids" field.
func (m *AnswerMutation) SetSelectedOptionIds(u []uuid.UUID) {
	m.selected_option_ids = &u
	m.appendselected_option_ids = nil
}

// SelectedOptionIds returns the value of the "selected_option_ids" field in the mutation.
func (m *AnswerMutation) SelectedOptionIds() (r []uuid.UUID, exists bool) {
	v := m.selected_option_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedOptionIds returns the old "selected_option_ids" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSelectedOptionIds(ctx context.Context) (v []uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedOptionIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedOptionIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedOptionIds: %w", err)
	}
	return oldValue.SelectedOptionIds, nil
}

// AppendSelectedOptionIds adds u to the "selected_option_ids" field.
func (m *AnswerMutation) AppendSelectedOptionIds(u []uuid.UUID) {
	m.appendselected_option_ids = append(m.appendselected_option_ids, u...)
}

// AppendedSelectedOptionIds returns the list of values that were appended to the "selected_option_ids" field in this mutation.
func (m *AnswerMutation) AppendedSelectedOptionIds() ([]uuid.UUID, bool) {
	if len(m.appendselected_option_ids) == 0 {
		return nil, false
	}
	return m.appendselected_option_ids, true
}

// ClearSelectedOptionIds clears the value of the "selected_option_ids" field.
func (m *AnswerMutation) ClearSelectedOptionIds() {
	m.selected_option_ids = nil
	m.appendselected_option_ids = nil
	m.clearedFields[answer.FieldSelectedOptionIds] = struct{}{}
}

// SelectedOptionIdsCleared returns if the "selected_option_ids" field was cleared in this mutation.
func (m *AnswerMutation) SelectedOptionIdsCleared() bool {
	_, ok := m.clearedFields[answer.FieldSelectedOptionIds]
	return ok
}

// ResetSelectedOptionIds resets all changes to the "selected_option_ids" field.
func (m *AnswerMutation) ResetSelectedOptionIds() {
	m.selected_option_ids = nil
	m.appendselected_option_ids = nil
	delete(m.clearedFields, answer.FieldSelectedOptionIds)
}

// SetTextAnswer sets the "text_answer" field.
func (m *AnswerMutation) SetTextAnswer(s string) {
	m.text_answer = &s
}

// TextAnswer returns the value of the "text_answer" field in the mutation.
func (m *AnswerMutation) TextAnswer() (r string, exists bool) {
	v := m.text_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldTextAnswer returns the old "text_answer" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldTextAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextAnswer: %w", err)
	}
	return oldValue.TextAnswer, nil
}

// ClearTextAnswer clears the value of the "text_answer" field.
func (m *AnswerMutation) ClearTextAnswer() {
	m.text_answer = nil
	m.clearedFields[answer.FieldTextAnswer] = struct{}{}
}

// TextAnswerCleared returns if the "text_answer" field was cleared in this mutation.
func (m *AnswerMutation) TextAnswerCleared() bool {
	_, ok := m.clearedFields[answer.FieldTextAnswer]
	return ok
}

// ResetTextAnswer resets all changes to the "text_answer" field.
func (m *AnswerMutation) ResetTextAnswer() {
	m.text_answer = nil
	delete(m.clearedFields, answer.FieldTextAnswer)
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (m *AnswerMutation) ClearSubmission() {
	m.clearedsubmission = true
	m.clearedFields[answer.FieldSubmissionID] = struct{}{}
}

// SubmissionCleared reports if the "submission" edge to the Submission entity was cleared.
func (m *AnswerMutation) SubmissionCleared() bool {
	return m.clearedsubmission
}

// SubmissionIDs returns the "submission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmissionID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) SubmissionIDs() (ids []uuid.UUID) {
	if id := m.submission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmission resets all changes to the "submission" edge.
func (m *AnswerMutation) ResetSubmission() {
	m.submission = nil
	m.clearedsubmission = false
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *AnswerMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[answer.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *AnswerMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) QuestionIDs() (ids []uuid.UUID) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *AnswerMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the AnswerMutation builder.
func (m *AnswerMutation) Where(ps ...predicate.Answer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Answer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Answer).
func (m *AnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, answer.FieldCreatedAt)
	}
	if m.submission != nil {
		fields = append(fields, answer.FieldSubmissionID)
	}
	if m.question != nil {
		fields = append(fields, answer.FieldQuestionID)
	}
	if m.option_id != nil {
		fields = append(fields, answer.FieldOptionID)
	}
	if m.value != nil {
		fields = append(fields, answer.FieldValue)
	}
	if m.selected_option_ids != nil {
		fields = append(fields, answer.FieldSelectedOptionIds)
	}
	if m.text_answer != nil {
		fields = append(fields, answer.FieldTextAnswer)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldCreatedAt:
		return m.CreatedAt()
	case answer.FieldSubmissionID:
		return m.SubmissionID()
	case answer.FieldQuestionID:
		return m.QuestionID()
	case answer.FieldOptionID:
		return m.OptionID()
	case answer.FieldValue:
		return m.Value()
	case answer.FieldSelectedOptionIds:
		return m.SelectedOptionIds()
	case answer.FieldTextAnswer:
		return m.TextAnswer()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case answer.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case answer.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case answer.FieldOptionID:
		return m.OldOptionID(ctx)
	case answer.FieldValue:
		return m.OldValue(ctx)
	case answer.FieldSelectedOptionIds:
		return m.OldSelectedOptionIds(ctx)
	case answer.FieldTextAnswer:
		return m.OldTextAnswer(ctx)
	}
	return nil, fmt.Errorf("unknown Answer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case answer.FieldSubmissionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case answer.FieldQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case answer.FieldOptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionID(v)
		return nil
	case answer.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case answer.FieldSelectedOptionIds:
		v, ok := value.([]uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedOptionIds(v)
		return nil
	case answer.FieldTextAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextAnswer(v)
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, answer.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answer.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown Answer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answer.FieldOptionID) {
		fields = append(fields, answer.FieldOptionID)
	}
	if m.FieldCleared(answer.FieldValue) {
		fields = append(fields, answer.FieldValue)
	}
	if m.FieldCleared(answer.FieldSelectedOptionIds) {
		fields = append(fields, answer.FieldSelectedOptionIds)
	}
	if m.FieldCleared(answer.FieldTextAnswer) {
		fields = append(fields, answer.FieldTextAnswer)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerMutation) ClearField(name string) error {
	switch name {
	case answer.FieldOptionID:
		m.ClearOptionID()
		return nil
	case answer.FieldValue:
		m.ClearValue()
		return nil
	case answer.FieldSelectedOptionIds:
		m.ClearSelectedOptionIds()
		return nil
	case answer.FieldTextAnswer:
		m.ClearTextAnswer()
		return nil
	}
	return fmt.Errorf("unknown Answer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerMutation) ResetField(name string) error {
	switch name {
	case answer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case answer.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case answer.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case answer.FieldOptionID:
		m.ResetOptionID()
		return nil
	case answer.FieldValue:
		m.ResetValue()
		return nil
	case answer.FieldSelectedOptionIds:
		m.ResetSelectedOptionIds()
		return nil
	case answer.FieldTextAnswer:
		m.ResetTextAnswer()
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.submission != nil {
		edges = append(edges, answer.EdgeSubmission)
	}
	if m.question != nil {
		edges = append(edges, answer.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answer.EdgeSubmission:
		if id := m.submission; id != nil {
			return []ent.Value{*id}
		}
	case answer.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsubmission {
		edges = append(edges, answer.EdgeSubmission)
	}
	if m.clearedquestion {
		edges = append(edges, answer.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerMutation) EdgeCleared(name string) bool {
	switch name {
	case answer.EdgeSubmission:
		return m.clearedsubmission
	case answer.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerMutation) ClearEdge(name string) error {
	switch name {
	case answer.EdgeSubmission:
		m.ClearSubmission()
		return nil
	case answer.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown Answer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerMutation) ResetEdge(name string) error {
	switch name {
	case answer.EdgeSubmission:
		m.ResetSubmission()
		return nil
	case answer.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown Answer edge %s", name)
}

// AssessmentLevelMutation represents an operation that mutates the AssessmentLevel nodes in the graph.
type AssessmentLevelMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	deleted_at           *time.Time
	name                 *string
	min_score            *float64
	addmin_score         *float64
	max_score            *float64
	addmax_score         *float64
	opinion              *string
	group_key            *string
	dimension_id         *uuid.UUID
	clearedFields        map[string]struct{}
	questionnaire        *uuid.UUID
	clearedquestionnaire bool
	done                 bool
	oldValue             func(context.Context) (*AssessmentLevel, error)
	predicates           []predicate.AssessmentLevel
}

var _ ent.Mutation = (*AssessmentLevelMutation)(nil)

// assessmentlevelOption allows management of the mutation configuration using functional options.
type assessmentlevelOption func(*AssessmentLevelMutation)

// newAssessmentLevelMutation creates new mutation for the AssessmentLevel entity.
func newAssessmentLevelMutation(c config, op Op, opts ...assessmentlevelOption) *AssessmentLevelMutation {
	m := &AssessmentLevelMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentLevel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentLevelID sets the ID field of the mutation.
func withAssessmentLevelID(id uuid.UUID) assessmentlevelOption {
	return func(m *AssessmentLevelMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentLevel
		)
		m.oldValue = func(ctx context.Context) (*AssessmentLevel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentLevel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentLevel sets the old AssessmentLevel of the mutation.
func withAssessmentLevel(node *AssessmentLevel) assessmentlevelOption {
	return func(m *AssessmentLevelMutation) {
		m.oldValue = func(context.Context) (*AssessmentLevel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentLevelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentLevelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AssessmentLevel entities.
func (m *AssessmentLevelMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentLevelMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentLevelMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentLevel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentLevelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentLevelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AssessmentLevel entity.
// If the AssessmentLevel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentLevelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssessmentLevelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssessmentLevelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssessmentLevelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AssessmentLevel entity.
// If the AssessmentLevel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentLevelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssessmentLevelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *AssessmentLevelMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *AssessmentLevelMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the AssessmentLevel entity.
// If the AssessmentLevel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentLevelMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *AssessmentLevelMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[assessmentlevel.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *AssessmentLevelMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[assessmentlevel.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *AssessmentLevelMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, assessmentlevel.FieldDeletedAt)
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (m *AssessmentLevelMutation) SetQuestionnaireID(u uuid.UUID) {
	m.questionnaire = &u
}

// QuestionnaireID returns the value of the "questionnaire_id" field in the mutation.
func (m *AssessmentLevelMutation) QuestionnaireID() (r uuid.UUID, exists bool) {
	v := m.questionnaire
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionnaireID returns the old "questionnaire_id" field's value of the AssessmentLevel entity.
// If the AssessmentLevel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentLevelMutation) OldQuestionnaireID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionnaireID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionnaireID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionnaireID: %w", err)
	}
	return oldValue.QuestionnaireID, nil
}

// ResetQuestionnaireID resets all changes to the "questionnaire_id" field.
func (m *AssessmentLevelMutation) ResetQuestionnaireID() {
	m.questionnaire = nil
}

// SetName sets the "name" field.
func (m *AssessmentLevelMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AssessmentLevelMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AssessmentLevel entity.
// If the AssessmentLevel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentLevelMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AssessmentLevelMutation) ResetName() {
	m.name = nil
}

// SetMinScore sets the "min_score" field.
func (m *AssessmentLevelMutation) SetMinScore(f float64) {
	m.min_score = &f
	m.addmin_score = nil
}

// MinScore returns the value of the "min_score" field in the mutation.
func (m *AssessmentLevelMutation) MinScore() (r float64, exists bool) {
	v := m.min_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMinScore returns the old "min_score" field's value of the AssessmentLevel entity.
// If the AssessmentLevel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentLevelMutation) OldMinScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinScore: %w", err)
	}
	return oldValue.MinScore, nil
}

// AddMinScore adds f to the "min_score" field.
func (m *AssessmentLevelMutation) AddMinScore(f float64) {
	if m.addmin_score != nil {
		*m.addmin_score += f
	} else {
		m.addmin_score = &f
	}
}

// AddedMinScore returns the value that was added to the "min_score" field in this mutation.
func (m *AssessmentLevelMutation) AddedMinScore() (r float64, exists bool) {
	v := m.addmin_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinScore resets all changes to the "min_score" field.
func (m *AssessmentLevelMutation) ResetMinScore() {
	m.min_score = nil
	m.addmin_score = nil
}

// SetMaxScore sets the "max_score" field.
func (m *AssessmentLevelMutation) SetMaxScore(f float64) {
	m.max_score = &f
	m.addmax_score = nil
}

// MaxScore returns the value of the "max_score" field in the mutation.
func (m *AssessmentLevelMutation) MaxScore() (r float64, exists bool) {
	v := m.max_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxScore returns the old "max_score" field's value of the AssessmentLevel entity.
// If the AssessmentLevel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentLevelMutation) OldMaxScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxScore: %w", err)
	}
	return oldValue.MaxScore, nil
}

// AddMaxScore adds f to the "max_score" field.
func (m *AssessmentLevelMutation) AddMaxScore(f float64) {
	if m.addmax_score != nil {
		*m.addmax_score += f
	} else {
		m.addmax_score = &f
	}
}

// AddedMaxScore returns the value that was added to the "max_score" field in this mutation.
func (m *AssessmentLevelMutation) AddedMaxScore() (r float64, exists bool) {
	v := m.addmax_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxScore resets all changes to the "max_score" field.
func (m *AssessmentLevelMutation) ResetMaxScore() {
	m.max_score = nil
	m.addmax_score = nil
}

// SetOpinion sets the "opinion" field.
func (m *AssessmentLevelMutation) SetOpinion(s string) {
	m.opinion = &s
}

// Opinion returns the value of the "opinion" field in the mutation.
func (m *AssessmentLevelMutation) Opinion() (r string, exists bool) {
	v := m.opinion
	if v == nil {
		return
	}
	return *v, true
}

// OldOpinion returns the old "opinion" field's value of the AssessmentLevel entity.
// If the AssessmentLevel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentLevelMutation) OldOpinion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpinion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpinion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpinion: %w", err)
	}
	return oldValue.Opinion, nil
}

// ResetOpinion resets all changes to the "opinion" field.
func (m *AssessmentLevelMutation) ResetOpinion() {
	m.opinion = nil
}

// SetGroupKey sets the "group_key" field.
func (m *AssessmentLevelMutation) SetGroupKey(s string) {
	m.group_key = &s
}

// GroupKey returns the value of the "group_key" field in the mutation.
func (m *AssessmentLevelMutation) GroupKey() (r string, exists bool) {
	v := m.group_key
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupKey returns the old "group_key" field's value of the AssessmentLevel entity.
// If the AssessmentLevel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentLevelMutation) OldGroupKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupKey: %w", err)
	}
	return oldValue.GroupKey, nil
}

// ClearGroupKey clears the value of the "group_key" field.
func (m *AssessmentLevelMutation) ClearGroupKey() {
	m.group_key = nil
	m.clearedFields[assessmentlevel.FieldGroupKey] = struct{}{}
}

// GroupKeyCleared returns if the "group_key" field was cleared in this mutation.
func (m *AssessmentLevelMutation) GroupKeyCleared() bool {
	_, ok := m.clearedFields[assessmentlevel.FieldGroupKey]
	return ok
}

// ResetGroupKey resets all changes to the "group_key" field.
func (m *AssessmentLevelMutation) ResetGroupKey() {
	m.group_key = nil
	delete(m.clearedFields, assessmentlevel.FieldGroupKey)
}

// SetDimensionID sets the "dimension_id" field.
func (m *AssessmentLevelMutation) SetDimensionID(u uuid.UUID) {
	m.dimension_id = &u
}

// DimensionID returns the value of the "dimension_id" field in the mutation.
func (m *AssessmentLevelMutation) DimensionID() (r uuid.UUID, exists bool) {
	v := m.dimension_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDimensionID returns the old "dimension_id" field's value of the AssessmentLevel entity.
// If the AssessmentLevel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentLevelMutation) OldDimensionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDimensionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDimensionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDimensionID: %w", err)
	}
	return oldValue.DimensionID, nil
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (m *AssessmentLevelMutation) ClearDimensionID() {
	m.dimension_id = nil
	m.clearedFields[assessmentlevel.FieldDimensionID] = struct{}{}
}

// DimensionIDCleared returns if the "dimension_id" field was cleared in this mutation.
func (m *AssessmentLevelMutation) DimensionIDCleared() bool {
	_, ok := m.clearedFields[assessmentlevel.FieldDimensionID]
	return ok
}

// ResetDimensionID resets all changes to the "dimension_id" field.
func (m *AssessmentLevelMutation) ResetDimensionID() {
	m.dimension_id = nil
	delete(m.clearedFields, assessmentlevel.FieldDimensionID)
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (m *AssessmentLevelMutation) ClearQuestionnaire() {
	m.clearedquestionnaire = true
	m.clearedFields[assessmentlevel.FieldQuestionnaireID] = struct{}{}
}

// QuestionnaireCleared reports if the "questionnaire" edge to the Questionnaire entity was cleared.
func (m *AssessmentLevelMutation) QuestionnaireCleared() bool {
	return m.clearedquestionnaire
}

// QuestionnaireIDs returns the "questionnaire" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionnaireID instead. It exists only for internal usage by the builders.
func (m *AssessmentLevelMutation) QuestionnaireIDs() (ids []uuid.UUID) {
	if id := m.questionnaire; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestionnaire resets all changes to the "questionnaire" edge.
func (m *AssessmentLevelMutation) ResetQuestionnaire() {
	m.questionnaire = nil
	m.clearedquestionnaire = false
}

// Where appends a list predicates to the AssessmentLevelMutation builder.
func (m *AssessmentLevelMutation) Where(ps ...predicate.AssessmentLevel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentLevelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentLevelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentLevel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentLevelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentLevelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentLevel).
func (m *AssessmentLevelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentLevelMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, assessmentlevel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, assessmentlevel.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, assessmentlevel.FieldDeletedAt)
	}
	if m.questionnaire != nil {
		fields = append(fields, assessmentlevel.FieldQuestionnaireID)
	}
	if m.name != nil {
		fields = append(fields, assessmentlevel.FieldName)
	}
	if m.min_score != nil {
		fields = append(fields, assessmentlevel.FieldMinScore)
	}
	if m.max_score != nil {
		fields = append(fields, assessmentlevel.FieldMaxScore)
	}
	if m.opinion != nil {
		fields = append(fields, assessmentlevel.FieldOpinion)
	}
	if m.group_key != nil {
		fields = append(fields, assessmentlevel.FieldGroupKey)
	}
	if m.dimension_id != nil {
		fields = append(fields, assessmentlevel.FieldDimensionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentLevelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentlevel.FieldCreatedAt:
		return m.CreatedAt()
	case assessmentlevel.FieldUpdatedAt:
		return m.UpdatedAt()
	case assessmentlevel.FieldDeletedAt:
		return m.DeletedAt()
	case assessmentlevel.FieldQuestionnaireID:
		return m.QuestionnaireID()
	case assessmentlevel.FieldName:
		return m.Name()
	case assessmentlevel.FieldMinScore:
		return m.MinScore()
	case assessmentlevel.FieldMaxScore:
		return m.MaxScore()
	case assessmentlevel.FieldOpinion:
		return m.Opinion()
	case assessmentlevel.FieldGroupKey:
		return m.GroupKey()
	case assessmentlevel.FieldDimensionID:
		return m.DimensionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentLevelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentlevel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assessmentlevel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case assessmentlevel.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case assessmentlevel.FieldQuestionnaireID:
		return m.OldQuestionnaireID(ctx)
	case assessmentlevel.FieldName:
		return m.OldName(ctx)
	case assessmentlevel.FieldMinScore:
		return m.OldMinScore(ctx)
	case assessmentlevel.FieldMaxScore:
		return m.OldMaxScore(ctx)
	case assessmentlevel.FieldOpinion:
		return m.OldOpinion(ctx)
	case assessmentlevel.FieldGroupKey:
		return m.OldGroupKey(ctx)
	case assessmentlevel.FieldDimensionID:
		return m.OldDimensionID(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentLevel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentLevelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentlevel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assessmentlevel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case assessmentlevel.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case assessmentlevel.FieldQuestionnaireID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionnaireID(v)
		return nil
	case assessmentlevel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case assessmentlevel.FieldMinScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinScore(v)
		return nil
	case assessmentlevel.FieldMaxScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxScore(v)
		return nil
	case assessmentlevel.FieldOpinion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpinion(v)
		return nil
	case assessmentlevel.FieldGroupKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupKey(v)
		return nil
	case assessmentlevel.FieldDimensionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDimensionID(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentLevel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentLevelMutation) AddedFields() []string {
	var fields []string
	if m.addmin_score != nil {
		fields = append(fields, assessmentlevel.FieldMinScore)
	}
	if m.addmax_score != nil {
		fields = append(fields, assessmentlevel.FieldMaxScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentLevelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentlevel.FieldMinScore:
		return m.AddedMinScore()
	case assessmentlevel.FieldMaxScore:
		return m.AddedMaxScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentLevelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentlevel.FieldMinScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinScore(v)
		return nil
	case assessmentlevel.FieldMaxScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxScore(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentLevel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentLevelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessmentlevel.FieldDeletedAt) {
		fields = append(fields, assessmentlevel.FieldDeletedAt)
	}
	if m.FieldCleared(assessmentlevel.FieldGroupKey) {
		fields = append(fields, assessmentlevel.FieldGroupKey)
	}
	if m.FieldCleared(assessmentlevel.FieldDimensionID) {
		fields = append(fields, assessmentlevel.FieldDimensionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentLevelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentLevelMutation) ClearField(name string) error {
	switch name {
	case assessmentlevel.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case assessmentlevel.FieldGroupKey:
		m.ClearGroupKey()
		return nil
	case assessmentlevel.FieldDimensionID:
		m.ClearDimensionID()
		return nil
	}
	return fmt.Errorf("unknown AssessmentLevel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentLevelMutation) ResetField(name string) error {
	switch name {
	case assessmentlevel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assessmentlevel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case assessmentlevel.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case assessmentlevel.FieldQuestionnaireID:
		m.ResetQuestionnaireID()
		return nil
	case assessmentlevel.FieldName:
		m.ResetName()
		return nil
	case assessmentlevel.FieldMinScore:
		m.ResetMinScore()
		return nil
	case assessmentlevel.FieldMaxScore:
		m.ResetMaxScore()
		return nil
	case assessmentlevel.FieldOpinion:
		m.ResetOpinion()
		return nil
	case assessmentlevel.FieldGroupKey:
		m.ResetGroupKey()
		return nil
	case assessmentlevel.FieldDimensionID:
		m.ResetDimensionID()
		return nil
	}
	return fmt.Errorf("unknown AssessmentLevel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentLevelMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.questionnaire != nil {
		edges = append(edges, assessmentlevel.EdgeQuestionnaire)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentLevelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assessmentlevel.EdgeQuestionnaire:
		if id := m.questionnaire; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentLevelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentLevelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentLevelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestionnaire {
		edges = append(edges, assessmentlevel.EdgeQuestionnaire)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentLevelMutation) EdgeCleared(name string) bool {
	switch name {
	case assessmentlevel.EdgeQuestionnaire:
		return m.clearedquestionnaire
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentLevelMutation) ClearEdge(name string) error {
	switch name {
	case assessmentlevel.EdgeQuestionnaire:
		m.ClearQuestionnaire()
		return nil
	}
	return fmt.Errorf("unknown AssessmentLevel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentLevelMutation) ResetEdge(name string) error {
	switch name {
	case assessmentlevel.EdgeQuestionnaire:
		m.ResetQuestionnaire()
		return nil
	}
	return fmt.Errorf("unknown AssessmentLevel edge %s", name)
}

// BranchRuleMutation represents an operation that mutates the BranchRule nodes in the graph.
type BranchRuleMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	deleted_at            *time.Time
	option_id             *uuid.UUID
	next_questionnaire_id *uuid.UUID
	clearedFields         map[string]struct{}
	questionnaire         *uuid.UUID
	clearedquestionnaire  bool
	question              *uuid.UUID
	clearedquestion       bool
	done                  bool
	oldValue              func(context.Context) (*BranchRule, error)
	predicates            []predicate.BranchRule
}

var _ ent.Mutation = (*BranchRuleMutation)(nil)

// branchruleOption allows management of the mutation configuration using functional options.
type branchruleOption func(*BranchRuleMutation)

// newBranchRuleMutation creates new mutation for the BranchRule entity.
func newBranchRuleMutation(c config, op Op, opts ...branchruleOption) *BranchRuleMutation {
	m := &BranchRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeBranchRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBranchRuleID sets the ID field of the mutation.
func withBranchRuleID(id uuid.UUID) branchruleOption {
	return func(m *BranchRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *BranchRule
		)
		m.oldValue = func(ctx context.Context) (*BranchRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BranchRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBranchRule sets the old BranchRule of the mutation.
func withBranchRule(node *BranchRule) branchruleOption {
	return func(m *BranchRuleMutation) {
		m.oldValue = func(context.Context) (*BranchRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BranchRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BranchRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BranchRule entities.
func (m *BranchRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BranchRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BranchRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BranchRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BranchRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BranchRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BranchRule entity.
// If the BranchRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BranchRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BranchRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BranchRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BranchRule entity.
// If the BranchRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BranchRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *BranchRuleMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *BranchRuleMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the BranchRule entity.
// If the BranchRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchRuleMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *BranchRuleMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[branchrule.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *BranchRuleMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[branchrule.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *BranchRuleMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, branchrule.FieldDeletedAt)
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (m *BranchRuleMutation) SetQuestionnaireID(u uuid.UUID) {
	m.questionnaire = &u
}

// QuestionnaireID returns the value of the "questionnaire_id" field in the mutation.
func (m *BranchRuleMutation) QuestionnaireID() (r uuid.UUID, exists bool) {
	v := m.questionnaire
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionnaireID returns the old "questionnaire_id" field's value of the BranchRule entity.
// If the BranchRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchRuleMutation) OldQuestionnaireID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionnaireID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionnaireID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionnaireID: %w", err)
	}
	return oldValue.QuestionnaireID, nil
}

// ResetQuestionnaireID resets all changes to the "questionnaire_id" field.
func (m *BranchRuleMutation) ResetQuestionnaireID() {
	m.questionnaire = nil
}

// SetQuestionID sets the "question_id" field.
func (m *BranchRuleMutation) SetQuestionID(u uuid.UUID) {
	m.question = &u
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *BranchRuleMutation) QuestionID() (r uuid.UUID, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the BranchRule entity.
// If the BranchRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchRuleMutation) OldQuestionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *BranchRuleMutation) ResetQuestionID() {
	m.question = nil
}

// SetOptionID sets the "option_id" field.
func (m *BranchRuleMutation) SetOptionID(u uuid.UUID) {
	m.option_id = &u
}

// OptionID returns the value of the "option_id" field in the mutation.
func (m *BranchRuleMutation) OptionID() (r uuid.UUID, exists bool) {
	v := m.option_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionID returns the old "option_id" field's value of the BranchRule entity.
// If the BranchRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchRuleMutation) OldOptionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionID: %w", err)
	}
	return oldValue.OptionID, nil
}

// ClearOptionID clears the value of the "option_id" field.
func (m *BranchRuleMutation) ClearOptionID() {
	m.option_id = nil
	m.clearedFields[branchrule.FieldOptionID] = struct{}{}
}

// OptionIDCleared returns if the "option_id" field was cleared in this mutation.
func (m *BranchRuleMutation) OptionIDCleared() bool {
	_, ok := m.clearedFields[branchrule.FieldOptionID]
	return ok
}

// ResetOptionID resets all changes to the "option_id" field.
func (m *BranchRuleMutation) ResetOptionID() {
	m.option_id = nil
	delete(m.clearedFields, branchrule.FieldOptionID)
}

// SetNextQuestionnaireID sets the "next_questionnaire_id" field.
func (m *BranchRuleMutation) SetNextQuestionnaireID(u uuid.UUID) {
	m.next_questionnaire_id = &u
}

// NextQuestionnaireID returns the value of the "next_questionnaire_id" field in the mutation.
func (m *BranchRuleMutation) NextQuestionnaireID() (r uuid.UUID, exists bool) {
	v := m.next_questionnaire_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNextQuestionnaireID returns the old "next_questionnaire_id" field's value of the BranchRule entity.
// If the BranchRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BranchRuleMutation) OldNextQuestionnaireID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextQuestionnaireID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextQuestionnaireID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextQuestionnaireID: %w", err)
	}
	return oldValue.NextQuestionnaireID, nil
}

// ResetNextQuestionnaireID resets all changes to the "next_questionnaire_id" field.
func (m *BranchRuleMutation) ResetNextQuestionnaireID() {
	m.next_questionnaire_id = nil
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (m *BranchRuleMutation) ClearQuestionnaire() {
	m.clearedquestionnaire = true
	m.clearedFields[branchrule.FieldQuestionnaireID] = struct{}{}
}

// QuestionnaireCleared reports if the "questionnaire" edge to the Questionnaire entity was cleared.
func (m *BranchRuleMutation) QuestionnaireCleared() bool {
	return m.clearedquestionnaire
}

// QuestionnaireIDs returns the "questionnaire" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionnaireID instead. It exists only for internal usage by the builders.
func (m *BranchRuleMutation) QuestionnaireIDs() (ids []uuid.UUID) {
	if id := m.questionnaire; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestionnaire resets all changes to the "questionnaire" edge.
func (m *BranchRuleMutation) ResetQuestionnaire() {
	m.questionnaire = nil
	m.clearedquestionnaire = false
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *BranchRuleMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[branchrule.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *BranchRuleMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *BranchRuleMutation) QuestionIDs() (ids []uuid.UUID) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *BranchRuleMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the BranchRuleMutation builder.
func (m *BranchRuleMutation) Where(ps ...predicate.BranchRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BranchRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BranchRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BranchRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BranchRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BranchRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BranchRule).
func (m *BranchRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BranchRuleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, branchrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, branchrule.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, branchrule.FieldDeletedAt)
	}
	if m.questionnaire != nil {
		fields = append(fields, branchrule.FieldQuestionnaireID)
	}
	if m.question != nil {
		fields = append(fields, branchrule.FieldQuestionID)
	}
	if m.option_id != nil {
		fields = append(fields, branchrule.FieldOptionID)
	}
	if m.next_questionnaire_id != nil {
		fields = append(fields, branchrule.FieldNextQuestionnaireID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BranchRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case branchrule.FieldCreatedAt:
		return m.CreatedAt()
	case branchrule.FieldUpdatedAt:
		return m.UpdatedAt()
	case branchrule.FieldDeletedAt:
		return m.DeletedAt()
	case branchrule.FieldQuestionnaireID:
		return m.QuestionnaireID()
	case branchrule.FieldQuestionID:
		return m.QuestionID()
	case branchrule.FieldOptionID:
		return m.OptionID()
	case branchrule.FieldNextQuestionnaireID:
		return m.NextQuestionnaireID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BranchRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case branchrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case branchrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case branchrule.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case branchrule.FieldQuestionnaireID:
		return m.OldQuestionnaireID(ctx)
	case branchrule.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case branchrule.FieldOptionID:
		return m.OldOptionID(ctx)
	case branchrule.FieldNextQuestionnaireID:
		return m.OldNextQuestionnaireID(ctx)
	}
	return nil, fmt.Errorf("unknown BranchRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BranchRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case branchrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case branchrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case branchrule.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case branchrule.FieldQuestionnaireID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionnaireID(v)
		return nil
	case branchrule.FieldQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case branchrule.FieldOptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionID(v)
		return nil
	case branchrule.FieldNextQuestionnaireID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextQuestionnaireID(v)
		return nil
	}
	return fmt.Errorf("unknown BranchRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BranchRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BranchRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BranchRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BranchRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BranchRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(branchrule.FieldDeletedAt) {
		fields = append(fields, branchrule.FieldDeletedAt)
	}
	if m.FieldCleared(branchrule.FieldOptionID) {
		fields = append(fields, branchrule.FieldOptionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BranchRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BranchRuleMutation) ClearField(name string) error {
	switch name {
	case branchrule.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case branchrule.FieldOptionID:
		m.ClearOptionID()
		return nil
	}
	return fmt.Errorf("unknown BranchRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BranchRuleMutation) ResetField(name string) error {
	switch name {
	case branchrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case branchrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case branchrule.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case branchrule.FieldQuestionnaireID:
		m.ResetQuestionnaireID()
		return nil
	case branchrule.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case branchrule.FieldOptionID:
		m.ResetOptionID()
		return nil
	case branchrule.FieldNextQuestionnaireID:
		m.ResetNextQuestionnaireID()
		return nil
	}
	return fmt.Errorf("unknown BranchRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BranchRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.questionnaire != nil {
		edges = append(edges, branchrule.EdgeQuestionnaire)
	}
	if m.question != nil {
		edges = append(edges, branchrule.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BranchRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case branchrule.EdgeQuestionnaire:
		if id := m.questionnaire; id != nil {
			return []ent.Value{*id}
		}
	case branchrule.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BranchRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BranchRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BranchRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedquestionnaire {
		edges = append(edges, branchrule.EdgeQuestionnaire)
	}
	if m.clearedquestion {
		edges = append(edges, branchrule.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BranchRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case branchrule.EdgeQuestionnaire:
		return m.clearedquestionnaire
	case branchrule.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BranchRuleMutation) ClearEdge(name string) error {
	switch name {
	case branchrule.EdgeQuestionnaire:
		m.ClearQuestionnaire()
		return nil
	case branchrule.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown BranchRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BranchRuleMutation) ResetEdge(name string) error {
	switch name {
	case branchrule.EdgeQuestionnaire:
		m.ResetQuestionnaire()
		return nil
	case branchrule.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown BranchRule edge %s", name)
}

// DimensionMutation represents an operation that mutates the Dimension nodes in the graph.
type DimensionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	deleted_at           *time.Time
	name                 *string
	weight               *float64
	addweight            *float64
	is_basic_info        *bool
	clearedFields        map[string]struct{}
	questionnaire        *uuid.UUID
	clearedquestionnaire bool
	questions            map[uuid.UUID]struct{}
	removedquestions     map[uuid.UUID]struct{}
	clearedquestions     bool
	done                 bool
	oldValue             func(context.Context) (*Dimension, error)
	predicates           []predicate.Dimension
}

var _ ent.Mutation = (*DimensionMutation)(nil)

// dimensionOption allows management of the mutation configuration using functional options.
type dimensionOption func(*DimensionMutation)

// newDimensionMutation creates new mutation for the Dimension entity.
func newDimensionMutation(c config, op Op, opts ...dimensionOption) *DimensionMutation {
	m := &DimensionMutation{
		config:        c,
		op:            op,
		typ:           TypeDimension,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDimensionID sets the ID field of the mutation.
func withDimensionID(id uuid.UUID) dimensionOption {
	return func(m *DimensionMutation) {
		var (
			err   error
			once  sync.Once
			value *Dimension
		)
		m.oldValue = func(ctx context.Context) (*Dimension, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Dimension.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDimension sets the old Dimension of the mutation.
func withDimension(node *Dimension) dimensionOption {
	return func(m *DimensionMutation) {
		m.oldValue = func(context.Context) (*Dimension, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DimensionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DimensionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Dimension entities.
func (m *DimensionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DimensionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DimensionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Dimension.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DimensionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DimensionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Dimension entity.
// If the Dimension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DimensionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DimensionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DimensionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Dimension entity.
// If the Dimension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DimensionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DimensionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DimensionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Dimension entity.
// If the Dimension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DimensionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[dimension.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DimensionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[dimension.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DimensionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, dimension.FieldDeletedAt)
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (m *DimensionMutation) SetQuestionnaireID(u uuid.UUID) {
	m.questionnaire = &u
}

// QuestionnaireID returns the value of the "questionnaire_id" field in the mutation.
func (m *DimensionMutation) QuestionnaireID() (r uuid.UUID, exists bool) {
	v := m.questionnaire
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionnaireID returns the old "questionnaire_id" field's value of the Dimension entity.
// If the Dimension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionMutation) OldQuestionnaireID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionnaireID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionnaireID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionnaireID: %w", err)
	}
	return oldValue.QuestionnaireID, nil
}

// ResetQuestionnaireID resets all changes to the "questionnaire_id" field.
func (m *DimensionMutation) ResetQuestionnaireID() {
	m.questionnaire = nil
}

// SetName sets the "name" field.
func (m *DimensionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DimensionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Dimension entity.
// If the Dimension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DimensionMutation) ResetName() {
	m.name = nil
}

// SetWeight sets the "weight" field.
func (m *DimensionMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *DimensionMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the Dimension entity.
// If the Dimension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *DimensionMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *DimensionMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *DimensionMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetIsBasicInfo sets the "is_basic_info" field.
func (m *DimensionMutation) SetIsBasicInfo(b bool) {
	m.is_basic_info = &b
}

// IsBasicInfo returns the value of the "is_basic_info" field in the mutation.
func (m *DimensionMutation) IsBasicInfo() (r bool, exists bool) {
	v := m.is_basic_info
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBasicInfo returns the old "is_basic_info" field's value of the Dimension entity.
// If the Dimension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionMutation) OldIsBasicInfo(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBasicInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBasicInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBasicInfo: %w", err)
	}
	return oldValue.IsBasicInfo, nil
}

// ResetIsBasicInfo resets all changes to the "is_basic_info" field.
func (m *DimensionMutation) ResetIsBasicInfo() {
	m.is_basic_info = nil
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (m *DimensionMutation) ClearQuestionnaire() {
	m.clearedquestionnaire = true
	m.clearedFields[dimension.FieldQuestionnaireID] = struct{}{}
}

// QuestionnaireCleared reports if the "questionnaire" edge to the Questionnaire entity was cleared.
func (m *DimensionMutation) QuestionnaireCleared() bool {
	return m.clearedquestionnaire
}

// QuestionnaireIDs returns the "questionnaire" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionnaireID instead. It exists only for internal usage by the builders.
func (m *DimensionMutation) QuestionnaireIDs() (ids []uuid.UUID) {
	if id := m.questionnaire; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestionnaire resets all changes to the "questionnaire" edge.
func (m *DimensionMutation) ResetQuestionnaire() {
	m.questionnaire = nil
	m.clearedquestionnaire = false
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *DimensionMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *DimensionMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *DimensionMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *DimensionMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *DimensionMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *DimensionMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *DimensionMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the DimensionMutation builder.
func (m *DimensionMutation) Where(ps ...predicate.Dimension) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DimensionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DimensionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Dimension, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DimensionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DimensionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Dimension).
func (m *DimensionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DimensionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, dimension.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dimension.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, dimension.FieldDeletedAt)
	}
	if m.questionnaire != nil {
		fields = append(fields, dimension.FieldQuestionnaireID)
	}
	if m.name != nil {
		fields = append(fields, dimension.FieldName)
	}
	if m.weight != nil {
		fields = append(fields, dimension.FieldWeight)
	}
	if m.is_basic_info != nil {
		fields = append(fields, dimension.FieldIsBasicInfo)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DimensionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dimension.FieldCreatedAt:
		return m.CreatedAt()
	case dimension.FieldUpdatedAt:
		return m.UpdatedAt()
	case dimension.FieldDeletedAt:
		return m.DeletedAt()
	case dimension.FieldQuestionnaireID:
		return m.QuestionnaireID()
	case dimension.FieldName:
		return m.Name()
	case dimension.FieldWeight:
		return m.Weight()
	case dimension.FieldIsBasicInfo:
		return m.IsBasicInfo()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DimensionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dimension.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dimension.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case dimension.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case dimension.FieldQuestionnaireID:
		return m.OldQuestionnaireID(ctx)
	case dimension.FieldName:
		return m.OldName(ctx)
	case dimension.FieldWeight:
		return m.OldWeight(ctx)
	case dimension.FieldIsBasicInfo:
		return m.OldIsBasicInfo(ctx)
	}
	return nil, fmt.Errorf("unknown Dimension field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DimensionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dimension.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dimension.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case dimension.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case dimension.FieldQuestionnaireID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionnaireID(v)
		return nil
	case dimension.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case dimension.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case dimension.FieldIsBasicInfo:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBasicInfo(v)
		return nil
	}
	return fmt.Errorf("unknown Dimension field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DimensionMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, dimension.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DimensionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dimension.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DimensionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dimension.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown Dimension numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DimensionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dimension.FieldDeletedAt) {
		fields = append(fields, dimension.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DimensionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DimensionMutation) ClearField(name string) error {
	switch name {
	case dimension.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Dimension nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DimensionMutation) ResetField(name string) error {
	switch name {
	case dimension.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dimension.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case dimension.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case dimension.FieldQuestionnaireID:
		m.ResetQuestionnaireID()
		return nil
	case dimension.FieldName:
		m.ResetName()
		return nil
	case dimension.FieldWeight:
		m.ResetWeight()
		return nil
	case dimension.FieldIsBasicInfo:
		m.ResetIsBasicInfo()
		return nil
	}
	return fmt.Errorf("unknown Dimension field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DimensionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.questionnaire != nil {
		edges = append(edges, dimension.EdgeQuestionnaire)
	}
	if m.questions != nil {
		edges = append(edges, dimension.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DimensionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dimension.EdgeQuestionnaire:
		if id := m.questionnaire; id != nil {
			return []ent.Value{*id}
		}
	case dimension.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DimensionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedquestions != nil {
		edges = append(edges, dimension.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DimensionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case dimension.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DimensionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedquestionnaire {
		edges = append(edges, dimension.EdgeQuestionnaire)
	}
	if m.clearedquestions {
		edges = append(edges, dimension.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DimensionMutation) EdgeCleared(name string) bool {
	switch name {
	case dimension.EdgeQuestionnaire:
		return m.clearedquestionnaire
	case dimension.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DimensionMutation) ClearEdge(name string) error {
	switch name {
	case dimension.EdgeQuestionnaire:
		m.ClearQuestionnaire()
		return nil
	}
	return fmt.Errorf("unknown Dimension unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DimensionMutation) ResetEdge(name string) error {
	switch name {
	case dimension.EdgeQuestionnaire:
		m.ResetQuestionnaire()
		return nil
	case dimension.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Dimension edge %s", name)
}

// DimensionScoreMutation represents an operation that mutates the DimensionScore nodes in the graph.
type DimensionScoreMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	dimension_id       *uuid.UUID
	score              *float64
	addscore           *float64
	weight             *float64
	addweight          *float64
	assessment_level   *string
	assessment_opinion *string
	clearedFields      map[string]struct{}
	submission         *uuid.UUID
	clearedsubmission  bool
	done               bool
	oldValue           func(context.Context) (*DimensionScore, error)
	predicates         []predicate.DimensionScore
}

var _ ent.Mutation = (*DimensionScoreMutation)(nil)

// dimensionscoreOption allows management of the mutation configuration using functional options.
type dimensionscoreOption func(*DimensionScoreMutation)

// newDimensionScoreMutation creates new mutation for the DimensionScore entity.
func newDimensionScoreMutation(c config, op Op, opts ...dimensionscoreOption) *DimensionScoreMutation {
	m := &DimensionScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeDimensionScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDimensionScoreID sets the ID field of the mutation.
func withDimensionScoreID(id uuid.UUID) dimensionscoreOption {
	return func(m *DimensionScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *DimensionScore
		)
		m.oldValue = func(ctx context.Context) (*DimensionScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DimensionScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDimensionScore sets the old DimensionScore of the mutation.
func withDimensionScore(node *DimensionScore) dimensionscoreOption {
	return func(m *DimensionScoreMutation) {
		m.oldValue = func(context.Context) (*DimensionScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DimensionScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DimensionScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DimensionScore entities.
func (m *DimensionScoreMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DimensionScoreMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DimensionScoreMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DimensionScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DimensionScoreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DimensionScoreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DimensionScore entity.
// If the DimensionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionScoreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DimensionScoreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSubmissionID sets the "submission_id" field.
func (m *DimensionScoreMutation) SetSubmissionID(u uuid.UUID) {
	m.submission = &u
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *DimensionScoreMutation) SubmissionID() (r uuid.UUID, exists bool) {
	v := m.submission
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the DimensionScore entity.
// If the DimensionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionScoreMutation) OldSubmissionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *DimensionScoreMutation) ResetSubmissionID() {
	m.submission = nil
}

// SetDimensionID sets the "dimension_id" field.
func (m *DimensionScoreMutation) SetDimensionID(u uuid.UUID) {
	m.dimension_id = &u
}

// DimensionID returns the value of the "dimension_id" field in the mutation.
func (m *DimensionScoreMutation) DimensionID() (r uuid.UUID, exists bool) {
	v := m.dimension_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDimensionID returns the old "dimension_id" field's value of the DimensionScore entity.
// If the DimensionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionScoreMutation) OldDimensionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDimensionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDimensionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDimensionID: %w", err)
	}
	return oldValue.DimensionID, nil
}

// ResetDimensionID resets all changes to the "dimension_id" field.
func (m *DimensionScoreMutation) ResetDimensionID() {
	m.dimension_id = nil
}

// SetScore sets the "score" field.
func (m *DimensionScoreMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *DimensionScoreMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the DimensionScore entity.
// If the DimensionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionScoreMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *DimensionScoreMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *DimensionScoreMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *DimensionScoreMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetWeight sets the "weight" field.
func (m *DimensionScoreMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *DimensionScoreMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the DimensionScore entity.
// If the DimensionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionScoreMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *DimensionScoreMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *DimensionScoreMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *DimensionScoreMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetAssessmentLevel sets the "assessment_level" field.
func (m *DimensionScoreMutation) SetAssessmentLevel(s string) {
	m.assessment_level = &s
}

// AssessmentLevel returns the value of the "assessment_level" field in the mutation.
func (m *DimensionScoreMutation) AssessmentLevel() (r string, exists bool) {
	v := m.assessment_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentLevel returns the old "assessment_level" field's value of the DimensionScore entity.
// If the DimensionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionScoreMutation) OldAssessmentLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentLevel: %w", err)
	}
	return oldValue.AssessmentLevel, nil
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (m *DimensionScoreMutation) ClearAssessmentLevel() {
	m.assessment_level = nil
	m.clearedFields[dimensionscore.FieldAssessmentLevel] = struct{}{}
}

// AssessmentLevelCleared returns if the "assessment_level" field was cleared in this mutation.
func (m *DimensionScoreMutation) AssessmentLevelCleared() bool {
	_, ok := m.clearedFields[dimensionscore.FieldAssessmentLevel]
	return ok
}

// ResetAssessmentLevel resets all changes to the "assessment_level" field.
func (m *DimensionScoreMutation) ResetAssessmentLevel() {
	m.assessment_level = nil
	delete(m.clearedFields, dimensionscore.FieldAssessmentLevel)
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (m *DimensionScoreMutation) SetAssessmentOpinion(s string) {
	m.assessment_opinion = &s
}

// AssessmentOpinion returns the value of the "assessment_opinion" field in the mutation.
func (m *DimensionScoreMutation) AssessmentOpinion() (r string, exists bool) {
	v := m.assessment_opinion
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentOpinion returns the old "assessment_opinion" field's value of the DimensionScore entity.
// If the DimensionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DimensionScoreMutation) OldAssessmentOpinion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentOpinion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentOpinion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentOpinion: %w", err)
	}
	return oldValue.AssessmentOpinion, nil
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (m *DimensionScoreMutation) ClearAssessmentOpinion() {
	m.assessment_opinion = nil
	m.clearedFields[dimensionscore.FieldAssessmentOpinion] = struct{}{}
}

// AssessmentOpinionCleared returns if the "assessment_opinion" field was cleared in this mutation.
func (m *DimensionScoreMutation) AssessmentOpinionCleared() bool {
	_, ok := m.clearedFields[dimensionscore.FieldAssessmentOpinion]
	return ok
}

// ResetAssessmentOpinion resets all changes to the "assessment_opinion" field.
func (m *DimensionScoreMutation) ResetAssessmentOpinion() {
	m.assessment_opinion = nil
	delete(m.clearedFields, dimensionscore.FieldAssessmentOpinion)
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (m *DimensionScoreMutation) ClearSubmission() {
	m.clearedsubmission = true
	m.clearedFields[dimensionscore.FieldSubmissionID] = struct{}{}
}

// SubmissionCleared reports if the "submission" edge to the Submission entity was cleared.
func (m *DimensionScoreMutation) SubmissionCleared() bool {
	return m.clearedsubmission
}

// SubmissionIDs returns the "submission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmissionID instead. It exists only for internal usage by the builders.
func (m *DimensionScoreMutation) SubmissionIDs() (ids []uuid.UUID) {
	if id := m.submission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmission resets all changes to the "submission" edge.
func (m *DimensionScoreMutation) ResetSubmission() {
	m.submission = nil
	m.clearedsubmission = false
}

// Where appends a list predicates to the DimensionScoreMutation builder.
func (m *DimensionScoreMutation) Where(ps ...predicate.DimensionScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DimensionScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DimensionScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DimensionScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DimensionScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DimensionScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DimensionScore).
func (m *DimensionScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DimensionScoreMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, dimensionscore.FieldCreatedAt)
	}
	if m.submission != nil {
		fields = append(fields, dimensionscore.FieldSubmissionID)
	}
	if m.dimension_id != nil {
		fields = append(fields, dimensionscore.FieldDimensionID)
	}
	if m.score != nil {
		fields = append(fields, dimensionscore.FieldScore)
	}
	if m.weight != nil {
		fields = append(fields, dimensionscore.FieldWeight)
	}
	if m.assessment_level != nil {
		fields = append(fields, dimensionscore.FieldAssessmentLevel)
	}
	if m.assessment_opinion != nil {
		fields = append(fields, dimensionscore.FieldAssessmentOpinion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DimensionScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dimensionscore.FieldCreatedAt:
		return m.CreatedAt()
	case dimensionscore.FieldSubmissionID:
		return m.SubmissionID()
	case dimensionscore.FieldDimensionID:
		return m.DimensionID()
	case dimensionscore.FieldScore:
		return m.Score()
	case dimensionscore.FieldWeight:
		return m.Weight()
	case dimensionscore.FieldAssessmentLevel:
		return m.AssessmentLevel()
	case dimensionscore.FieldAssessmentOpinion:
		return m.AssessmentOpinion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DimensionScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dimensionscore.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dimensionscore.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case dimensionscore.FieldDimensionID:
		return m.OldDimensionID(ctx)
	case dimensionscore.FieldScore:
		return m.OldScore(ctx)
	case dimensionscore.FieldWeight:
		return m.OldWeight(ctx)
	case dimensionscore.FieldAssessmentLevel:
		return m.OldAssessmentLevel(ctx)
	case dimensionscore.FieldAssessmentOpinion:
		return m.OldAssessmentOpinion(ctx)
	}
	return nil, fmt.Errorf("unknown DimensionScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DimensionScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dimensionscore.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dimensionscore.FieldSubmissionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case dimensionscore.FieldDimensionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDimensionID(v)
		return nil
	case dimensionscore.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case dimensionscore.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case dimensionscore.FieldAssessmentLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentLevel(v)
		return nil
	case dimensionscore.FieldAssessmentOpinion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentOpinion(v)
		return nil
	}
	return fmt.Errorf("unknown DimensionScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DimensionScoreMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, dimensionscore.FieldScore)
	}
	if m.addweight != nil {
		fields = append(fields, dimensionscore.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DimensionScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dimensionscore.FieldScore:
		return m.AddedScore()
	case dimensionscore.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DimensionScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dimensionscore.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case dimensionscore.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown DimensionScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DimensionScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dimensionscore.FieldAssessmentLevel) {
		fields = append(fields, dimensionscore.FieldAssessmentLevel)
	}
	if m.FieldCleared(dimensionscore.FieldAssessmentOpinion) {
		fields = append(fields, dimensionscore.FieldAssessmentOpinion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DimensionScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DimensionScoreMutation) ClearField(name string) error {
	switch name {
	case dimensionscore.FieldAssessmentLevel:
		m.ClearAssessmentLevel()
		return nil
	case dimensionscore.FieldAssessmentOpinion:
		m.ClearAssessmentOpinion()
		return nil
	}
	return fmt.Errorf("unknown DimensionScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DimensionScoreMutation) ResetField(name string) error {
	switch name {
	case dimensionscore.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dimensionscore.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case dimensionscore.FieldDimensionID:
		m.ResetDimensionID()
		return nil
	case dimensionscore.FieldScore:
		m.ResetScore()
		return nil
	case dimensionscore.FieldWeight:
		m.ResetWeight()
		return nil
	case dimensionscore.FieldAssessmentLevel:
		m.ResetAssessmentLevel()
		return nil
	case dimensionscore.FieldAssessmentOpinion:
		m.ResetAssessmentOpinion()
		return nil
	}
	return fmt.Errorf("unknown DimensionScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DimensionScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.submission != nil {
		edges = append(edges, dimensionscore.EdgeSubmission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DimensionScoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dimensionscore.EdgeSubmission:
		if id := m.submission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DimensionScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DimensionScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DimensionScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubmission {
		edges = append(edges, dimensionscore.EdgeSubmission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DimensionScoreMutation) EdgeCleared(name string) bool {
	switch name {
	case dimensionscore.EdgeSubmission:
		return m.clearedsubmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DimensionScoreMutation) ClearEdge(name string) error {
	switch name {
	case dimensionscore.EdgeSubmission:
		m.ClearSubmission()
		return nil
	}
	return fmt.Errorf("unknown DimensionScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DimensionScoreMutation) ResetEdge(name string) error {
	switch name {
	case dimensionscore.EdgeSubmission:
		m.ResetSubmission()
		return nil
	}
	return fmt.Errorf("unknown DimensionScore edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	deleted_at           *time.Time
	text                 *string
	_type                *question.Type
	display_order        *int
	adddisplay_order     *int
	is_grouping          *bool
	multiline            *bool
	input_rows           *int
	addinput_rows        *int
	input_type           *string
	clearedFields        map[string]struct{}
	questionnaire        *uuid.UUID
	clearedquestionnaire bool
	dimension            *uuid.UUID
	cleareddimension     bool
	options              map[uuid.UUID]struct{}
	removedoptions       map[uuid.UUID]struct{}
	clearedoptions       bool
	branch_rules         map[uuid.UUID]struct{}
	removedbranch_rules  map[uuid.UUID]struct{}
	clearedbranch_rules  bool
	answers              map[uuid.UUID]struct{}
	removedanswers       map[uuid.UUID]struct{}
	clearedanswers       bool
	done                 bool
	oldValue             func(context.Context) (*Question, error)
	predicates           []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id uuid.UUID) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *QuestionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *QuestionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *QuestionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[question.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *QuestionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[question.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *QuestionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, question.FieldDeletedAt)
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (m *QuestionMutation) SetQuestionnaireID(u uuid.UUID) {
	m.questionnaire = &u
}

// QuestionnaireID returns the value of the "questionnaire_id" field in the mutation.
func (m *QuestionMutation) QuestionnaireID() (r uuid.UUID, exists bool) {
	v := m.questionnaire
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionnaireID returns the old "questionnaire_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionnaireID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionnaireID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionnaireID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionnaireID: %w", err)
	}
	return oldValue.QuestionnaireID, nil
}

// ResetQuestionnaireID resets all changes to the "questionnaire_id" field.
func (m *QuestionMutation) ResetQuestionnaireID() {
	m.questionnaire = nil
}

// SetDimensionID sets the "dimension_id" field.
func (m *QuestionMutation) SetDimensionID(u uuid.UUID) {
	m.dimension = &u
}

// DimensionID returns the value of the "dimension_id" field in the mutation.
func (m *QuestionMutation) DimensionID() (r uuid.UUID, exists bool) {
	v := m.dimension
	if v == nil {
		return
	}
	return *v, true
}

// OldDimensionID returns the old "dimension_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDimensionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDimensionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDimensionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDimensionID: %w", err)
	}
	return oldValue.DimensionID, nil
}

// ClearDimensionID clears the value of the "dimension_id" field.
func (m *QuestionMutation) ClearDimensionID() {
	m.dimension = nil
	m.clearedFields[question.FieldDimensionID] = struct{}{}
}

// DimensionIDCleared returns if the "dimension_id" field was cleared in this mutation.
func (m *QuestionMutation) DimensionIDCleared() bool {
	_, ok := m.clearedFields[question.FieldDimensionID]
	return ok
}

// ResetDimensionID resets all changes to the "dimension_id" field.
func (m *QuestionMutation) ResetDimensionID() {
	m.dimension = nil
	delete(m.clearedFields, question.FieldDimensionID)
}

// SetText sets the "text" field.
func (m *QuestionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuestionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuestionMutation) ResetText() {
	m.text = nil
}

// SetType sets the "type" field.
func (m *QuestionMutation) SetType(q question.Type) {
	m._type = &q
}

// GetType returns the value of the "type" field in the mutation.
func (m *QuestionMutation) GetType() (r question.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldType(ctx context.Context) (v question.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *QuestionMutation) ResetType() {
	m._type = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *QuestionMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *QuestionMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *QuestionMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *QuestionMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *QuestionMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// SetIsGrouping sets the "is_grouping" field.
func (m *QuestionMutation) SetIsGrouping(b bool) {
	m.is_grouping = &b
}

// IsGrouping returns the value of the "is_grouping" field in the mutation.
func (m *QuestionMutation) IsGrouping() (r bool, exists bool) {
	v := m.is_grouping
	if v == nil {
		return
	}
	return *v, true
}

// OldIsGrouping returns the old "is_grouping" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldIsGrouping(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsGrouping is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsGrouping requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsGrouping: %w", err)
	}
	return oldValue.IsGrouping, nil
}

// ResetIsGrouping resets all changes to the "is_grouping" field.
func (m *QuestionMutation) ResetIsGrouping() {
	m.is_grouping = nil
}

// SetMultiline sets the "multiline" field.
func (m *QuestionMutation) SetMultiline(b bool) {
	m.multiline = &b
}

// Multiline returns the value of the "multiline" field in the mutation.
func (m *QuestionMutation) Multiline() (r bool, exists bool) {
	v := m.multiline
	if v == nil {
		return
	}
	return *v, true
}

// OldMultiline returns the old "multiline" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldMultiline(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMultiline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMultiline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMultiline: %w", err)
	}
	return oldValue.Multiline, nil
}

// ResetMultiline resets all changes to the "multiline" field.
func (m *QuestionMutation) ResetMultiline() {
	m.multiline = nil
}

// SetInputRows sets the "input_rows" field.
func (m *QuestionMutation) SetInputRows(i int) {
	m.input_rows = &i
	m.addinput_rows = nil
}

// InputRows returns the value of the "input_rows" field in the mutation.
func (m *QuestionMutation) InputRows() (r int, exists bool) {
	v := m.input_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldInputRows returns the old "input_rows" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldInputRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputRows: %w", err)
	}
	return oldValue.InputRows, nil
}

// AddInputRows adds i to the "input_rows" field.
func (m *QuestionMutation) AddInputRows(i int) {
	if m.addinput_rows != nil {
		*m.addinput_rows += i
	} else {
		m.addinput_rows = &i
	}
}

// AddedInputRows returns the value that was added to the "input_rows" field in this mutation.
func (m *QuestionMutation) AddedInputRows() (r int, exists bool) {
	v := m.addinput_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputRows resets all changes to the "input_rows" field.
func (m *QuestionMutation) ResetInputRows() {
	m.input_rows = nil
	m.addinput_rows = nil
}

// SetInputType sets the "input_type" field.
func (m *QuestionMutation) SetInputType(s string) {
	m.input_type = &s
}

// InputType returns the value of the "input_type" field in the mutation.
func (m *QuestionMutation) InputType() (r string, exists bool) {
	v := m.input_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInputType returns the old "input_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldInputType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputType: %w", err)
	}
	return oldValue.InputType, nil
}

// ClearInputType clears the value of the "input_type" field.
func (m *QuestionMutation) ClearInputType() {
	m.input_type = nil
	m.clearedFields[question.FieldInputType] = struct{}{}
}

// InputTypeCleared returns if the "input_type" field was cleared in this mutation.
func (m *QuestionMutation) InputTypeCleared() bool {
	_, ok := m.clearedFields[question.FieldInputType]
	return ok
}

// ResetInputType resets all changes to the "input_type" field.
func (m *QuestionMutation) ResetInputType() {
	m.input_type = nil
	delete(m.clearedFields, question.FieldInputType)
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (m *QuestionMutation) ClearQuestionnaire() {
	m.clearedquestionnaire = true
	m.clearedFields[question.FieldQuestionnaireID] = struct{}{}
}

// QuestionnaireCleared reports if the "questionnaire" edge to the Questionnaire entity was cleared.
func (m *QuestionMutation) QuestionnaireCleared() bool {
	return m.clearedquestionnaire
}

// QuestionnaireIDs returns the "questionnaire" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionnaireID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) QuestionnaireIDs() (ids []uuid.UUID) {
	if id := m.questionnaire; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestionnaire resets all changes to the "questionnaire" edge.
func (m *QuestionMutation) ResetQuestionnaire() {
	m.questionnaire = nil
	m.clearedquestionnaire = false
}

// ClearDimension clears the "dimension" edge to the Dimension entity.
func (m *QuestionMutation) ClearDimension() {
	m.cleareddimension = true
	m.clearedFields[question.FieldDimensionID] = struct{}{}
}

// DimensionCleared reports if the "dimension" edge to the Dimension entity was cleared.
func (m *QuestionMutation) DimensionCleared() bool {
	return m.DimensionIDCleared() || m.cleareddimension
}

// DimensionIDs returns the "dimension" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DimensionID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) DimensionIDs() (ids []uuid.UUID) {
	if id := m.dimension; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDimension resets all changes to the "dimension" edge.
func (m *QuestionMutation) ResetDimension() {
	m.dimension = nil
	m.cleareddimension = false
}

// AddOptionIDs adds the "options" edge to the SurveyOption entity by ids.
func (m *QuestionMutation) AddOptionIDs(ids ...uuid.UUID) {
	if m.options == nil {
		m.options = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.options[ids[i]] = struct{}{}
	}
}

// ClearOptions clears the "options" edge to the SurveyOption entity.
func (m *QuestionMutation) ClearOptions() {
	m.clearedoptions = true
}

// OptionsCleared reports if the "options" edge to the SurveyOption entity was cleared.
func (m *QuestionMutation) OptionsCleared() bool {
	return m.clearedoptions
}

// RemoveOptionIDs removes the "options" edge to the SurveyOption entity by IDs.
func (m *QuestionMutation) RemoveOptionIDs(ids ...uuid.UUID) {
	if m.removedoptions == nil {
		m.removedoptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.options, ids[i])
		m.removedoptions[ids[i]] = struct{}{}
	}
}

// RemovedOptions returns the removed IDs of the "options" edge to the SurveyOption entity.
func (m *QuestionMutation) RemovedOptionsIDs() (ids []uuid.UUID) {
	for id := range m.removedoptions {
		ids = append(ids, id)
	}
	return
}

// OptionsIDs returns the "options" edge IDs in the mutation.
func (m *QuestionMutation) OptionsIDs() (ids []uuid.UUID) {
	for id := range m.options {
		ids = append(ids, id)
	}
	return
}

// ResetOptions resets all changes to the "options" edge.
func (m *QuestionMutation) ResetOptions() {
	m.options = nil
	m.clearedoptions = false
	m.removedoptions = nil
}

// AddBranchRuleIDs adds the "branch_rules" edge to the BranchRule entity by ids.
func (m *QuestionMutation) AddBranchRuleIDs(ids ...uuid.UUID) {
	if m.branch_rules == nil {
		m.branch_rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.branch_rules[ids[i]] = struct{}{}
	}
}

// ClearBranchRules clears the "branch_rules" edge to the BranchRule entity.
func (m *QuestionMutation) ClearBranchRules() {
	m.clearedbranch_rules = true
}

// BranchRulesCleared reports if the "branch_rules" edge to the BranchRule entity was cleared.
func (m *QuestionMutation) BranchRulesCleared() bool {
	return m.clearedbranch_rules
}

// RemoveBranchRuleIDs removes the "branch_rules" edge to the BranchRule entity by IDs.
func (m *QuestionMutation) RemoveBranchRuleIDs(ids ...uuid.UUID) {
	if m.removedbranch_rules == nil {
		m.removedbranch_rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.branch_rules, ids[i])
		m.removedbranch_rules[ids[i]] = struct{}{}
	}
}

// RemovedBranchRules returns the removed IDs of the "branch_rules" edge to the BranchRule entity.
func (m *QuestionMutation) RemovedBranchRulesIDs() (ids []uuid.UUID) {
	for id := range m.removedbranch_rules {
		ids = append(ids, id)
	}
	return
}

// BranchRulesIDs returns the "branch_rules" edge IDs in the mutation.
func (m *QuestionMutation) BranchRulesIDs() (ids []uuid.UUID) {
	for id := range m.branch_rules {
		ids = append(ids, id)
	}
	return
}

// ResetBranchRules resets all changes to the "branch_rules" edge.
func (m *QuestionMutation) ResetBranchRules() {
	m.branch_rules = nil
	m.clearedbranch_rules = false
	m.removedbranch_rules = nil
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by ids.
func (m *QuestionMutation) AddAnswerIDs(ids ...uuid.UUID) {
	if m.answers == nil {
		m.answers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Answer entity.
func (m *QuestionMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Answer entity was cleared.
func (m *QuestionMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Answer entity by IDs.
func (m *QuestionMutation) RemoveAnswerIDs(ids ...uuid.UUID) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Answer entity.
func (m *QuestionMutation) RemovedAnswersIDs() (ids []uuid.UUID) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *QuestionMutation) AnswersIDs() (ids []uuid.UUID) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *QuestionMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, question.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, question.FieldDeletedAt)
	}
	if m.questionnaire != nil {
		fields = append(fields, question.FieldQuestionnaireID)
	}
	if m.dimension != nil {
		fields = append(fields, question.FieldDimensionID)
	}
	if m.text != nil {
		fields = append(fields, question.FieldText)
	}
	if m._type != nil {
		fields = append(fields, question.FieldType)
	}
	if m.display_order != nil {
		fields = append(fields, question.FieldDisplayOrder)
	}
	if m.is_grouping != nil {
		fields = append(fields, question.FieldIsGrouping)
	}
	if m.multiline != nil {
		fields = append(fields, question.FieldMultiline)
	}
	if m.input_rows != nil {
		fields = append(fields, question.FieldInputRows)
	}
	if m.input_type != nil {
		fields = append(fields, question.FieldInputType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldUpdatedAt:
		return m.UpdatedAt()
	case question.FieldDeletedAt:
		return m.DeletedAt()
	case question.FieldQuestionnaireID:
		return m.QuestionnaireID()
	case question.FieldDimensionID:
		return m.DimensionID()
	case question.FieldText:
		return m.Text()
	case question.FieldType:
		return m.GetType()
	case question.FieldDisplayOrder:
		return m.DisplayOrder()
	case question.FieldIsGrouping:
		return m.IsGrouping()
	case question.FieldMultiline:
		return m.Multiline()
	case question.FieldInputRows:
		return m.InputRows()
	case question.FieldInputType:
		return m.InputType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case question.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case question.FieldQuestionnaireID:
		return m.OldQuestionnaireID(ctx)
	case question.FieldDimensionID:
		return m.OldDimensionID(ctx)
	case question.FieldText:
		return m.OldText(ctx)
	case question.FieldType:
		return m.OldType(ctx)
	case question.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	case question.FieldIsGrouping:
		return m.OldIsGrouping(ctx)
	case question.FieldMultiline:
		return m.OldMultiline(ctx)
	case question.FieldInputRows:
		return m.OldInputRows(ctx)
	case question.FieldInputType:
		return m.OldInputType(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case question.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case question.FieldQuestionnaireID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionnaireID(v)
		return nil
	case question.FieldDimensionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDimensionID(v)
		return nil
	case question.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case question.FieldType:
		v, ok := value.(question.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case question.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	case question.FieldIsGrouping:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsGrouping(v)
		return nil
	case question.FieldMultiline:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMultiline(v)
		return nil
	case question.FieldInputRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputRows(v)
		return nil
	case question.FieldInputType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputType(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.adddisplay_order != nil {
		fields = append(fields, question.FieldDisplayOrder)
	}
	if m.addinput_rows != nil {
		fields = append(fields, question.FieldInputRows)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	case question.FieldInputRows:
		return m.AddedInputRows()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	case question.FieldInputRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputRows(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldDeletedAt) {
		fields = append(fields, question.FieldDeletedAt)
	}
	if m.FieldCleared(question.FieldDimensionID) {
		fields = append(fields, question.FieldDimensionID)
	}
	if m.FieldCleared(question.FieldInputType) {
		fields = append(fields, question.FieldInputType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case question.FieldDimensionID:
		m.ClearDimensionID()
		return nil
	case question.FieldInputType:
		m.ClearInputType()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case question.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case question.FieldQuestionnaireID:
		m.ResetQuestionnaireID()
		return nil
	case question.FieldDimensionID:
		m.ResetDimensionID()
		return nil
	case question.FieldText:
		m.ResetText()
		return nil
	case question.FieldType:
		m.ResetType()
		return nil
	case question.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	case question.FieldIsGrouping:
		m.ResetIsGrouping()
		return nil
	case question.FieldMultiline:
		m.ResetMultiline()
		return nil
	case question.FieldInputRows:
		m.ResetInputRows()
		return nil
	case question.FieldInputType:
		m.ResetInputType()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.questionnaire != nil {
		edges = append(edges, question.EdgeQuestionnaire)
	}
	if m.dimension != nil {
		edges = append(edges, question.EdgeDimension)
	}
	if m.options != nil {
		edges = append(edges, question.EdgeOptions)
	}
	if m.branch_rules != nil {
		edges = append(edges, question.EdgeBranchRules)
	}
	if m.answers != nil {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeQuestionnaire:
		if id := m.questionnaire; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgeDimension:
		if id := m.dimension; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgeOptions:
		ids := make([]ent.Value, 0, len(m.options))
		for id := range m.options {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeBranchRules:
		ids := make([]ent.Value, 0, len(m.branch_rules))
		for id := range m.branch_rules {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedoptions != nil {
		edges = append(edges, question.EdgeOptions)
	}
	if m.removedbranch_rules != nil {
		edges = append(edges, question.EdgeBranchRules)
	}
	if m.removedanswers != nil {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeOptions:
		ids := make([]ent.Value, 0, len(m.removedoptions))
		for id := range m.removedoptions {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeBranchRules:
		ids := make([]ent.Value, 0, len(m.removedbranch_rules))
		for id := range m.removedbranch_rules {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedquestionnaire {
		edges = append(edges, question.EdgeQuestionnaire)
	}
	if m.cleareddimension {
		edges = append(edges, question.EdgeDimension)
	}
	if m.clearedoptions {
		edges = append(edges, question.EdgeOptions)
	}
	if m.clearedbranch_rules {
		edges = append(edges, question.EdgeBranchRules)
	}
	if m.clearedanswers {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeQuestionnaire:
		return m.clearedquestionnaire
	case question.EdgeDimension:
		return m.cleareddimension
	case question.EdgeOptions:
		return m.clearedoptions
	case question.EdgeBranchRules:
		return m.clearedbranch_rules
	case question.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	case question.EdgeQuestionnaire:
		m.ClearQuestionnaire()
		return nil
	case question.EdgeDimension:
		m.ClearDimension()
		return nil
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeQuestionnaire:
		m.ResetQuestionnaire()
		return nil
	case question.EdgeDimension:
		m.ResetDimension()
		return nil
	case question.EdgeOptions:
		m.ResetOptions()
		return nil
	case question.EdgeBranchRules:
		m.ResetBranchRules()
		return nil
	case question.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// QuestionnaireMutation represents an operation that mutates the Questionnaire nodes in the graph.
type QuestionnaireMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	deleted_at               *time.Time
	title                    *string
	description              *string
	status                   *questionnaire.Status
	is_published             *bool
	published_at             *time.Time
	access_code              *string
	clearedFields            map[string]struct{}
	parent                   *uuid.UUID
	clearedparent            bool
	children                 map[uuid.UUID]struct{}
	removedchildren          map[uuid.UUID]struct{}
	clearedchildren          bool
	dimensions               map[uuid.UUID]struct{}
	removeddimensions        map[uuid.UUID]struct{}
	cleareddimensions        bool
	questions                map[uuid.UUID]struct{}
	removedquestions         map[uuid.UUID]struct{}
	clearedquestions         bool
	submissions              map[uuid.UUID]struct{}
	removedsubmissions       map[uuid.UUID]struct{}
	clearedsubmissions       bool
	assessment_levels        map[uuid.UUID]struct{}
	removedassessment_levels map[uuid.UUID]struct{}
	clearedassessment_levels bool
	branch_rules             map[uuid.UUID]struct{}
	removedbranch_rules      map[uuid.UUID]struct{}
	clearedbranch_rules      bool
	done                     bool
	oldValue                 func(context.Context) (*Questionnaire, error)
	predicates               []predicate.Questionnaire
}

var _ ent.Mutation = (*QuestionnaireMutation)(nil)

// questionnaireOption allows management of the mutation configuration using functional options.
type questionnaireOption func(*QuestionnaireMutation)

// newQuestionnaireMutation creates new mutation for the Questionnaire entity.
func newQuestionnaireMutation(c config, op Op, opts ...questionnaireOption) *QuestionnaireMutation {
	m := &QuestionnaireMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionnaire,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionnaireID sets the ID field of the mutation.
func withQuestionnaireID(id uuid.UUID) questionnaireOption {
	return func(m *QuestionnaireMutation) {
		var (
			err   error
			once  sync.Once
			value *Questionnaire
		)
		m.oldValue = func(ctx context.Context) (*Questionnaire, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Questionnaire.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionnaire sets the old Questionnaire of the mutation.
func withQuestionnaire(node *Questionnaire) questionnaireOption {
	return func(m *QuestionnaireMutation) {
		m.oldValue = func(context.Context) (*Questionnaire, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionnaireMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionnaireMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Questionnaire entities.
func (m *QuestionnaireMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionnaireMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionnaireMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Questionnaire.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionnaireMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionnaireMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionnaireMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionnaireMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionnaireMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionnaireMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *QuestionnaireMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *QuestionnaireMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *QuestionnaireMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[questionnaire.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *QuestionnaireMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[questionnaire.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *QuestionnaireMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, questionnaire.FieldDeletedAt)
}

// SetTitle sets the "title" field.
func (m *QuestionnaireMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *QuestionnaireMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *QuestionnaireMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *QuestionnaireMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *QuestionnaireMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *QuestionnaireMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[questionnaire.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *QuestionnaireMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[questionnaire.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *QuestionnaireMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, questionnaire.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *QuestionnaireMutation) SetStatus(q questionnaire.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QuestionnaireMutation) Status() (r questionnaire.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldStatus(ctx context.Context) (v questionnaire.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QuestionnaireMutation) ResetStatus() {
	m.status = nil
}

// SetIsPublished sets the "is_published" field.
func (m *QuestionnaireMutation) SetIsPublished(b bool) {
	m.is_published = &b
}

// IsPublished returns the value of the "is_published" field in the mutation.
func (m *QuestionnaireMutation) IsPublished() (r bool, exists bool) {
	v := m.is_published
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublished returns the old "is_published" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldIsPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublished: %w", err)
	}
	return oldValue.IsPublished, nil
}

// ResetIsPublished resets all changes to the "is_published" field.
func (m *QuestionnaireMutation) ResetIsPublished() {
	m.is_published = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *QuestionnaireMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *QuestionnaireMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *QuestionnaireMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[questionnaire.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *QuestionnaireMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[questionnaire.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *QuestionnaireMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, questionnaire.FieldPublishedAt)
}

// SetAccessCode sets the "access_code" field.
func (m *QuestionnaireMutation) SetAccessCode(s string) {
	m.access_code = &s
}

// AccessCode returns the value of the "access_code" field in the mutation.
func (m *QuestionnaireMutation) AccessCode() (r string, exists bool) {
	v := m.access_code
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCode returns the old "access_code" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldAccessCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCode: %w", err)
	}
	return oldValue.AccessCode, nil
}

// ClearAccessCode clears the value of the "access_code" field.
func (m *QuestionnaireMutation) ClearAccessCode() {
	m.access_code = nil
	m.clearedFields[questionnaire.FieldAccessCode] = struct{}{}
}

// AccessCodeCleared returns if the "access_code" field was cleared in this mutation.
func (m *QuestionnaireMutation) AccessCodeCleared() bool {
	_, ok := m.clearedFields[questionnaire.FieldAccessCode]
	return ok
}

// ResetAccessCode resets all changes to the "access_code" field.
func (m *QuestionnaireMutation) ResetAccessCode() {
	m.access_code = nil
	delete(m.clearedFields, questionnaire.FieldAccessCode)
}

// SetParentID sets the "parent_id" field.
func (m *QuestionnaireMutation) SetParentID(u uuid.UUID) {
	m.parent = &u
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *QuestionnaireMutation) ParentID() (r uuid.UUID, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Questionnaire entity.
// If the Questionnaire object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionnaireMutation) OldParentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *QuestionnaireMutation) ClearParentID() {
	m.parent = nil
	m.clearedFields[questionnaire.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *QuestionnaireMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[questionnaire.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *QuestionnaireMutation) ResetParentID() {
	m.parent = nil
	delete(m.clearedFields, questionnaire.FieldParentID)
}

// ClearParent clears the "parent" edge to the Questionnaire entity.
func (m *QuestionnaireMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[questionnaire.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Questionnaire entity was cleared.
func (m *QuestionnaireMutation) ParentCleared() bool {
	return m.ParentIDCleared() || m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *QuestionnaireMutation) ParentIDs() (ids []uuid.UUID) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *QuestionnaireMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the Questionnaire entity by ids.
func (m *QuestionnaireMutation) AddChildIDs(ids ...uuid.UUID) {
	if m.children == nil {
		m.children = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Questionnaire entity.
func (m *QuestionnaireMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Questionnaire entity was cleared.
func (m *QuestionnaireMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Questionnaire entity by IDs.
func (m *QuestionnaireMutation) RemoveChildIDs(ids ...uuid.UUID) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Questionnaire entity.
func (m *QuestionnaireMutation) RemovedChildrenIDs() (ids []uuid.UUID) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *QuestionnaireMutation) ChildrenIDs() (ids []uuid.UUID) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *QuestionnaireMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddDimensionIDs adds the "dimensions" edge to the Dimension entity by ids.
func (m *QuestionnaireMutation) AddDimensionIDs(ids ...uuid.UUID) {
	if m.dimensions == nil {
		m.dimensions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.dimensions[ids[i]] = struct{}{}
	}
}

// ClearDimensions clears the "dimensions" edge to the Dimension entity.
func (m *QuestionnaireMutation) ClearDimensions() {
	m.cleareddimensions = true
}

// DimensionsCleared reports if the "dimensions" edge to the Dimension entity was cleared.
func (m *QuestionnaireMutation) DimensionsCleared() bool {
	return m.cleareddimensions
}

// RemoveDimensionIDs removes the "dimensions" edge to the Dimension entity by IDs.
func (m *QuestionnaireMutation) RemoveDimensionIDs(ids ...uuid.UUID) {
	if m.removeddimensions == nil {
		m.removeddimensions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.dimensions, ids[i])
		m.removeddimensions[ids[i]] = struct{}{}
	}
}

// RemovedDimensions returns the removed IDs of the "dimensions" edge to the Dimension entity.
func (m *QuestionnaireMutation) RemovedDimensionsIDs() (ids []uuid.UUID) {
	for id := range m.removeddimensions {
		ids = append(ids, id)
	}
	return
}

// DimensionsIDs returns the "dimensions" edge IDs in the mutation.
func (m *QuestionnaireMutation) DimensionsIDs() (ids []uuid.UUID) {
	for id := range m.dimensions {
		ids = append(ids, id)
	}
	return
}

// ResetDimensions resets all changes to the "dimensions" edge.
func (m *QuestionnaireMutation) ResetDimensions() {
	m.dimensions = nil
	m.cleareddimensions = false
	m.removeddimensions = nil
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *QuestionnaireMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *QuestionnaireMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *QuestionnaireMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *QuestionnaireMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *QuestionnaireMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *QuestionnaireMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *QuestionnaireMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *QuestionnaireMutation) AddSubmissionIDs(ids ...uuid.UUID) {
	if m.submissions == nil {
		m.submissions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *QuestionnaireMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *QuestionnaireMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *QuestionnaireMutation) RemoveSubmissionIDs(ids ...uuid.UUID) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *QuestionnaireMutation) RemovedSubmissionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *QuestionnaireMutation) SubmissionsIDs() (ids []uuid.UUID) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *QuestionnaireMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// AddAssessmentLevelIDs adds the "assessment_levels" edge to the AssessmentLevel entity by ids.
func (m *QuestionnaireMutation) AddAssessmentLevelIDs(ids ...uuid.UUID) {
	if m.assessment_levels == nil {
		m.assessment_levels = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.assessment_levels[ids[i]] = struct{}{}
	}
}

// ClearAssessmentLevels clears the "assessment_levels" edge to the AssessmentLevel entity.
func (m *QuestionnaireMutation) ClearAssessmentLevels() {
	m.clearedassessment_levels = true
}

// AssessmentLevelsCleared reports if the "assessment_levels" edge to the AssessmentLevel entity was cleared.
func (m *QuestionnaireMutation) AssessmentLevelsCleared() bool {
	return m.clearedassessment_levels
}

// RemoveAssessmentLevelIDs removes the "assessment_levels" edge to the AssessmentLevel entity by IDs.
func (m *QuestionnaireMutation) RemoveAssessmentLevelIDs(ids ...uuid.UUID) {
	if m.removedassessment_levels == nil {
		m.removedassessment_levels = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.assessment_levels, ids[i])
		m.removedassessment_levels[ids[i]] = struct{}{}
	}
}

// RemovedAssessmentLevels returns the removed IDs of the "assessment_levels" edge to the AssessmentLevel entity.
func (m *QuestionnaireMutation) RemovedAssessmentLevelsIDs() (ids []uuid.UUID) {
	for id := range m.removedassessment_levels {
		ids = append(ids, id)
	}
	return
}

// AssessmentLevelsIDs returns the "assessment_levels" edge IDs in the mutation.
func (m *QuestionnaireMutation) AssessmentLevelsIDs() (ids []uuid.UUID) {
	for id := range m.assessment_levels {
		ids = append(ids, id)
	}
	return
}

// ResetAssessmentLevels resets all changes to the "assessment_levels" edge.
func (m *QuestionnaireMutation) ResetAssessmentLevels() {
	m.assessment_levels = nil
	m.clearedassessment_levels = false
	m.removedassessment_levels = nil
}

// AddBranchRuleIDs adds the "branch_rules" edge to the BranchRule entity by ids.
func (m *QuestionnaireMutation) AddBranchRuleIDs(ids ...uuid.UUID) {
	if m.branch_rules == nil {
		m.branch_rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.branch_rules[ids[i]] = struct{}{}
	}
}

// ClearBranchRules clears the "branch_rules" edge to the BranchRule entity.
func (m *QuestionnaireMutation) ClearBranchRules() {
	m.clearedbranch_rules = true
}

// BranchRulesCleared reports if the "branch_rules" edge to the BranchRule entity was cleared.
func (m *QuestionnaireMutation) BranchRulesCleared() bool {
	return m.clearedbranch_rules
}

// RemoveBranchRuleIDs removes the "branch_rules" edge to the BranchRule entity by IDs.
func (m *QuestionnaireMutation) RemoveBranchRuleIDs(ids ...uuid.UUID) {
	if m.removedbranch_rules == nil {
		m.removedbranch_rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.branch_rules, ids[i])
		m.removedbranch_rules[ids[i]] = struct{}{}
	}
}

// RemovedBranchRules returns the removed IDs of the "branch_rules" edge to the BranchRule entity.
func (m *QuestionnaireMutation) RemovedBranchRulesIDs() (ids []uuid.UUID) {
	for id := range m.removedbranch_rules {
		ids = append(ids, id)
	}
	return
}

// BranchRulesIDs returns the "branch_rules" edge IDs in the mutation.
func (m *QuestionnaireMutation) BranchRulesIDs() (ids []uuid.UUID) {
	for id := range m.branch_rules {
		ids = append(ids, id)
	}
	return
}

// ResetBranchRules resets all changes to the "branch_rules" edge.
func (m *QuestionnaireMutation) ResetBranchRules() {
	m.branch_rules = nil
	m.clearedbranch_rules = false
	m.removedbranch_rules = nil
}

// Where appends a list predicates to the QuestionnaireMutation builder.
func (m *QuestionnaireMutation) Where(ps ...predicate.Questionnaire) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionnaireMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionnaireMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Questionnaire, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionnaireMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionnaireMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Questionnaire).
func (m *QuestionnaireMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionnaireMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, questionnaire.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, questionnaire.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, questionnaire.FieldDeletedAt)
	}
	if m.title != nil {
		fields = append(fields, questionnaire.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, questionnaire.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, questionnaire.FieldStatus)
	}
	if m.is_published != nil {
		fields = append(fields, questionnaire.FieldIsPublished)
	}
	if m.published_at != nil {
		fields = append(fields, questionnaire.FieldPublishedAt)
	}
	if m.access_code != nil {
		fields = append(fields, questionnaire.FieldAccessCode)
	}
	if m.parent != nil {
		fields = append(fields, questionnaire.FieldParentID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionnaireMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionnaire.FieldCreatedAt:
		return m.CreatedAt()
	case questionnaire.FieldUpdatedAt:
		return m.UpdatedAt()
	case questionnaire.FieldDeletedAt:
		return m.DeletedAt()
	case questionnaire.FieldTitle:
		return m.Title()
	case questionnaire.FieldDescription:
		return m.Description()
	case questionnaire.FieldStatus:
		return m.Status()
	case questionnaire.FieldIsPublished:
		return m.IsPublished()
	case questionnaire.FieldPublishedAt:
		return m.PublishedAt()
	case questionnaire.FieldAccessCode:
		return m.AccessCode()
	case questionnaire.FieldParentID:
		return m.ParentID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionnaireMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionnaire.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionnaire.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case questionnaire.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case questionnaire.FieldTitle:
		return m.OldTitle(ctx)
	case questionnaire.FieldDescription:
		return m.OldDescription(ctx)
	case questionnaire.FieldStatus:
		return m.OldStatus(ctx)
	case questionnaire.FieldIsPublished:
		return m.OldIsPublished(ctx)
	case questionnaire.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case questionnaire.FieldAccessCode:
		return m.OldAccessCode(ctx)
	case questionnaire.FieldParentID:
		return m.OldParentID(ctx)
	}
	return nil, fmt.Errorf("unknown Questionnaire field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionnaireMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionnaire.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionnaire.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case questionnaire.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case questionnaire.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case questionnaire.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case questionnaire.FieldStatus:
		v, ok := value.(questionnaire.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case questionnaire.FieldIsPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublished(v)
		return nil
	case questionnaire.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case questionnaire.FieldAccessCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCode(v)
		return nil
	case questionnaire.FieldParentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	}
	return fmt.Errorf("unknown Questionnaire field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionnaireMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionnaireMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionnaireMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Questionnaire numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionnaireMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionnaire.FieldDeletedAt) {
		fields = append(fields, questionnaire.FieldDeletedAt)
	}
	if m.FieldCleared(questionnaire.FieldDescription) {
		fields = append(fields, questionnaire.FieldDescription)
	}
	if m.FieldCleared(questionnaire.FieldPublishedAt) {
		fields = append(fields, questionnaire.FieldPublishedAt)
	}
	if m.FieldCleared(questionnaire.FieldAccessCode) {
		fields = append(fields, questionnaire.FieldAccessCode)
	}
	if m.FieldCleared(questionnaire.FieldParentID) {
		fields = append(fields, questionnaire.FieldParentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionnaireMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionnaireMutation) ClearField(name string) error {
	switch name {
	case questionnaire.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case questionnaire.FieldDescription:
		m.ClearDescription()
		return nil
	case questionnaire.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case questionnaire.FieldAccessCode:
		m.ClearAccessCode()
		return nil
	case questionnaire.FieldParentID:
		m.ClearParentID()
		return nil
	}
	return fmt.Errorf("unknown Questionnaire nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionnaireMutation) ResetField(name string) error {
	switch name {
	case questionnaire.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionnaire.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case questionnaire.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case questionnaire.FieldTitle:
		m.ResetTitle()
		return nil
	case questionnaire.FieldDescription:
		m.ResetDescription()
		return nil
	case questionnaire.FieldStatus:
		m.ResetStatus()
		return nil
	case questionnaire.FieldIsPublished:
		m.ResetIsPublished()
		return nil
	case questionnaire.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case questionnaire.FieldAccessCode:
		m.ResetAccessCode()
		return nil
	case questionnaire.FieldParentID:
		m.ResetParentID()
		return nil
	}
	return fmt.Errorf("unknown Questionnaire field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionnaireMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.parent != nil {
		edges = append(edges, questionnaire.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, questionnaire.EdgeChildren)
	}
	if m.dimensions != nil {
		edges = append(edges, questionnaire.EdgeDimensions)
	}
	if m.questions != nil {
		edges = append(edges, questionnaire.EdgeQuestions)
	}
	if m.submissions != nil {
		edges = append(edges, questionnaire.EdgeSubmissions)
	}
	if m.assessment_levels != nil {
		edges = append(edges, questionnaire.EdgeAssessmentLevels)
	}
	if m.branch_rules != nil {
		edges = append(edges, questionnaire.EdgeBranchRules)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionnaireMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case questionnaire.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case questionnaire.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case questionnaire.EdgeDimensions:
		ids := make([]ent.Value, 0, len(m.dimensions))
		for id := range m.dimensions {
			ids = append(ids, id)
		}
		return ids
	case questionnaire.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	case questionnaire.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	case questionnaire.EdgeAssessmentLevels:
		ids := make([]ent.Value, 0, len(m.assessment_levels))
		for id := range m.assessment_levels {
			ids = append(ids, id)
		}
		return ids
	case questionnaire.EdgeBranchRules:
		ids := make([]ent.Value, 0, len(m.branch_rules))
		for id := range m.branch_rules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionnaireMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedchildren != nil {
		edges = append(edges, questionnaire.EdgeChildren)
	}
	if m.removeddimensions != nil {
		edges = append(edges, questionnaire.EdgeDimensions)
	}
	if m.removedquestions != nil {
		edges = append(edges, questionnaire.EdgeQuestions)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, questionnaire.EdgeSubmissions)
	}
	if m.removedassessment_levels != nil {
		edges = append(edges, questionnaire.EdgeAssessmentLevels)
	}
	if m.removedbranch_rules != nil {
		edges = append(edges, questionnaire.EdgeBranchRules)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionnaireMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case questionnaire.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case questionnaire.EdgeDimensions:
		ids := make([]ent.Value, 0, len(m.removeddimensions))
		for id := range m.removeddimensions {
			ids = append(ids, id)
		}
		return ids
	case questionnaire.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	case questionnaire.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	case questionnaire.EdgeAssessmentLevels:
		ids := make([]ent.Value, 0, len(m.removedassessment_levels))
		for id := range m.removedassessment_levels {
			ids = append(ids, id)
		}
		return ids
	case questionnaire.EdgeBranchRules:
		ids := make([]ent.Value, 0, len(m.removedbranch_rules))
		for id := range m.removedbranch_rules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionnaireMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedparent {
		edges = append(edges, questionnaire.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, questionnaire.EdgeChildren)
	}
	if m.cleareddimensions {
		edges = append(edges, questionnaire.EdgeDimensions)
	}
	if m.clearedquestions {
		edges = append(edges, questionnaire.EdgeQuestions)
	}
	if m.clearedsubmissions {
		edges = append(edges, questionnaire.EdgeSubmissions)
	}
	if m.clearedassessment_levels {
		edges = append(edges, questionnaire.EdgeAssessmentLevels)
	}
	if m.clearedbranch_rules {
		edges = append(edges, questionnaire.EdgeBranchRules)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionnaireMutation) EdgeCleared(name string) bool {
	switch name {
	case questionnaire.EdgeParent:
		return m.clearedparent
	case questionnaire.EdgeChildren:
		return m.clearedchildren
	case questionnaire.EdgeDimensions:
		return m.cleareddimensions
	case questionnaire.EdgeQuestions:
		return m.clearedquestions
	case questionnaire.EdgeSubmissions:
		return m.clearedsubmissions
	case questionnaire.EdgeAssessmentLevels:
		return m.clearedassessment_levels
	case questionnaire.EdgeBranchRules:
		return m.clearedbranch_rules
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionnaireMutation) ClearEdge(name string) error {
	switch name {
	case questionnaire.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Questionnaire unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionnaireMutation) ResetEdge(name string) error {
	switch name {
	case questionnaire.EdgeParent:
		m.ResetParent()
		return nil
	case questionnaire.EdgeChildren:
		m.ResetChildren()
		return nil
	case questionnaire.EdgeDimensions:
		m.ResetDimensions()
		return nil
	case questionnaire.EdgeQuestions:
		m.ResetQuestions()
		return nil
	case questionnaire.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	case questionnaire.EdgeAssessmentLevels:
		m.ResetAssessmentLevels()
		return nil
	case questionnaire.EdgeBranchRules:
		m.ResetBranchRules()
		return nil
	}
	return fmt.Errorf("unknown Questionnaire edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	deleted_at              *time.Time
	submitted_at            *time.Time
	total_score             *float64
	addtotal_score          *float64
	assessment_level        *string
	assessment_opinion      *string
	group_key               *string
	clearedFields           map[string]struct{}
	questionnaire           *uuid.UUID
	clearedquestionnaire    bool
	answers                 map[uuid.UUID]struct{}
	removedanswers          map[uuid.UUID]struct{}
	clearedanswers          bool
	dimension_scores        map[uuid.UUID]struct{}
	removeddimension_scores map[uuid.UUID]struct{}
	cleareddimension_scores bool
	done                    bool
	oldValue                func(context.Context) (*Submission, error)
	predicates              []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id uuid.UUID) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Submission entities.
func (m *SubmissionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SubmissionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SubmissionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SubmissionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[submission.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SubmissionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[submission.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SubmissionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, submission.FieldDeletedAt)
}

// SetQuestionnaireID sets the "questionnaire_id" field.
func (m *SubmissionMutation) SetQuestionnaireID(u uuid.UUID) {
	m.questionnaire = &u
}

// QuestionnaireID returns the value of the "questionnaire_id" field in the mutation.
func (m *SubmissionMutation) QuestionnaireID() (r uuid.UUID, exists bool) {
	v := m.questionnaire
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionnaireID returns the old "questionnaire_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldQuestionnaireID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionnaireID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionnaireID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionnaireID: %w", err)
	}
	return oldValue.QuestionnaireID, nil
}

// ResetQuestionnaireID resets all changes to the "questionnaire_id" field.
func (m *SubmissionMutation) ResetQuestionnaireID() {
	m.questionnaire = nil
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *SubmissionMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *SubmissionMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *SubmissionMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// SetTotalScore sets the "total_score" field.
func (m *SubmissionMutation) SetTotalScore(f float64) {
	m.total_score = &f
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *SubmissionMutation) TotalScore() (r float64, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldTotalScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds f to the "total_score" field.
func (m *SubmissionMutation) AddTotalScore(f float64) {
	if m.addtotal_score != nil {
		*m.addtotal_score += f
	} else {
		m.addtotal_score = &f
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *SubmissionMutation) AddedTotalScore() (r float64, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalScore clears the value of the "total_score" field.
func (m *SubmissionMutation) ClearTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
	m.clearedFields[submission.FieldTotalScore] = struct{}{}
}

// TotalScoreCleared returns if the "total_score" field was cleared in this mutation.
func (m *SubmissionMutation) TotalScoreCleared() bool {
	_, ok := m.clearedFields[submission.FieldTotalScore]
	return ok
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *SubmissionMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
	delete(m.clearedFields, submission.FieldTotalScore)
}

// SetAssessmentLevel sets the "assessment_level" field.
func (m *SubmissionMutation) SetAssessmentLevel(s string) {
	m.assessment_level = &s
}

// AssessmentLevel returns the value of the "assessment_level" field in the mutation.
func (m *SubmissionMutation) AssessmentLevel() (r string, exists bool) {
	v := m.assessment_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentLevel returns the old "assessment_level" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldAssessmentLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentLevel: %w", err)
	}
	return oldValue.AssessmentLevel, nil
}

// ClearAssessmentLevel clears the value of the "assessment_level" field.
func (m *SubmissionMutation) ClearAssessmentLevel() {
	m.assessment_level = nil
	m.clearedFields[submission.FieldAssessmentLevel] = struct{}{}
}

// AssessmentLevelCleared returns if the "assessment_level" field was cleared in this mutation.
func (m *SubmissionMutation) AssessmentLevelCleared() bool {
	_, ok := m.clearedFields[submission.FieldAssessmentLevel]
	return ok
}

// ResetAssessmentLevel resets all changes to the "assessment_level" field.
func (m *SubmissionMutation) ResetAssessmentLevel() {
	m.assessment_level = nil
	delete(m.clearedFields, submission.FieldAssessmentLevel)
}

// SetAssessmentOpinion sets the "assessment_opinion" field.
func (m *SubmissionMutation) SetAssessmentOpinion(s string) {
	m.assessment_opinion = &s
}

// AssessmentOpinion returns the value of the "assessment_opinion" field in the mutation.
func (m *SubmissionMutation) AssessmentOpinion() (r string, exists bool) {
	v := m.assessment_opinion
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentOpinion returns the old "assessment_opinion" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldAssessmentOpinion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentOpinion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentOpinion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentOpinion: %w", err)
	}
	return oldValue.AssessmentOpinion, nil
}

// ClearAssessmentOpinion clears the value of the "assessment_opinion" field.
func (m *SubmissionMutation) ClearAssessmentOpinion() {
	m.assessment_opinion = nil
	m.clearedFields[submission.FieldAssessmentOpinion] = struct{}{}
}

// AssessmentOpinionCleared returns if the "assessment_opinion" field was cleared in this mutation.
func (m *SubmissionMutation) AssessmentOpinionCleared() bool {
	_, ok := m.clearedFields[submission.FieldAssessmentOpinion]
	return ok
}

// ResetAssessmentOpinion resets all changes to the "assessment_opinion" field.
func (m *SubmissionMutation) ResetAssessmentOpinion() {
	m.assessment_opinion = nil
	delete(m.clearedFields, submission.FieldAssessmentOpinion)
}

// SetGroupKey sets the "group_key" field.
func (m *SubmissionMutation) SetGroupKey(s string) {
	m.group_key = &s
}

// GroupKey returns the value of the "group_key" field in the mutation.
func (m *SubmissionMutation) GroupKey() (r string, exists bool) {
	v := m.group_key
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupKey returns the old "group_key" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldGroupKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupKey: %w", err)
	}
	return oldValue.GroupKey, nil
}

// ClearGroupKey clears the value of the "group_key" field.
func (m *SubmissionMutation) ClearGroupKey() {
	m.group_key = nil
	m.clearedFields[submission.FieldGroupKey] = struct{}{}
}

// GroupKeyCleared returns if the "group_key" field was cleared in this mutation.
func (m *SubmissionMutation) GroupKeyCleared() bool {
	_, ok := m.clearedFields[submission.FieldGroupKey]
	return ok
}

// ResetGroupKey resets all changes to the "group_key" field.
func (m *SubmissionMutation) ResetGroupKey() {
	m.group_key = nil
	delete(m.clearedFields, submission.FieldGroupKey)
}

// ClearQuestionnaire clears the "questionnaire" edge to the Questionnaire entity.
func (m *SubmissionMutation) ClearQuestionnaire() {
	m.clearedquestionnaire = true
	m.clearedFields[submission.FieldQuestionnaireID] = struct{}{}
}

// QuestionnaireCleared reports if the "questionnaire" edge to the Questionnaire entity was cleared.
func (m *SubmissionMutation) QuestionnaireCleared() bool {
	return m.clearedquestionnaire
}

// QuestionnaireIDs returns the "questionnaire" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionnaireID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) QuestionnaireIDs() (ids []uuid.UUID) {
	if id := m.questionnaire; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestionnaire resets all changes to the "questionnaire" edge.
func (m *SubmissionMutation) ResetQuestionnaire() {
	m.questionnaire = nil
	m.clearedquestionnaire = false
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by ids.
func (m *SubmissionMutation) AddAnswerIDs(ids ...uuid.UUID) {
	if m.answers == nil {
		m.answers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Answer entity.
func (m *SubmissionMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Answer entity was cleared.
func (m *SubmissionMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Answer entity by IDs.
func (m *SubmissionMutation) RemoveAnswerIDs(ids ...uuid.UUID) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Answer entity.
func (m *SubmissionMutation) RemovedAnswersIDs() (ids []uuid.UUID) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *SubmissionMutation) AnswersIDs() (ids []uuid.UUID) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *SubmissionMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// AddDimensionScoreIDs adds the "dimension_scores" edge to the DimensionScore entity by ids.
func (m *SubmissionMutation) AddDimensionScoreIDs(ids ...uuid.UUID) {
	if m.dimension_scores == nil {
		m.dimension_scores = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.dimension_scores[ids[i]] = struct{}{}
	}
}

// ClearDimensionScores clears the "dimension_scores" edge to the DimensionScore entity.
func (m *SubmissionMutation) ClearDimensionScores() {
	m.cleareddimension_scores = true
}

// DimensionScoresCleared reports if the "dimension_scores" edge to the DimensionScore entity was cleared.
func (m *SubmissionMutation) DimensionScoresCleared() bool {
	return m.cleareddimension_scores
}

// RemoveDimensionScoreIDs removes the "dimension_scores" edge to the DimensionScore entity by IDs.
func (m *SubmissionMutation) RemoveDimensionScoreIDs(ids ...uuid.UUID) {
	if m.removeddimension_scores == nil {
		m.removeddimension_scores = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.dimension_scores, ids[i])
		m.removeddimension_scores[ids[i]] = struct{}{}
	}
}

// RemovedDimensionScores returns the removed IDs of the "dimension_scores" edge to the DimensionScore entity.
func (m *SubmissionMutation) RemovedDimensionScoresIDs() (ids []uuid.UUID) {
	for id := range m.removeddimension_scores {
		ids = append(ids, id)
	}
	return
}

// DimensionScoresIDs returns the "dimension_scores" edge IDs in the mutation.
func (m *SubmissionMutation) DimensionScoresIDs() (ids []uuid.UUID) {
	for id := range m.dimension_scores {
		ids = append(ids, id)
	}
	return
}

// ResetDimensionScores resets all changes to the "dimension_scores" edge.
func (m *SubmissionMutation) ResetDimensionScores() {
	m.dimension_scores = nil
	m.cleareddimension_scores = false
	m.removeddimension_scores = nil
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, submission.FieldDeletedAt)
	}
	if m.questionnaire != nil {
		fields = append(fields, submission.FieldQuestionnaireID)
	}
	if m.submitted_at != nil {
		fields = append(fields, submission.FieldSubmittedAt)
	}
	if m.total_score != nil {
		fields = append(fields, submission.FieldTotalScore)
	}
	if m.assessment_level != nil {
		fields = append(fields, submission.FieldAssessmentLevel)
	}
	if m.assessment_opinion != nil {
		fields = append(fields, submission.FieldAssessmentOpinion)
	}
	if m.group_key != nil {
		fields = append(fields, submission.FieldGroupKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	case submission.FieldDeletedAt:
		return m.DeletedAt()
	case submission.FieldQuestionnaireID:
		return m.QuestionnaireID()
	case submission.FieldSubmittedAt:
		return m.SubmittedAt()
	case submission.FieldTotalScore:
		return m.TotalScore()
	case submission.FieldAssessmentLevel:
		return m.AssessmentLevel()
	case submission.FieldAssessmentOpinion:
		return m.AssessmentOpinion()
	case submission.FieldGroupKey:
		return m.GroupKey()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case submission.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case submission.FieldQuestionnaireID:
		return m.OldQuestionnaireID(ctx)
	case submission.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case submission.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case submission.FieldAssessmentLevel:
		return m.OldAssessmentLevel(ctx)
	case submission.FieldAssessmentOpinion:
		return m.OldAssessmentOpinion(ctx)
	case submission.FieldGroupKey:
		return m.OldGroupKey(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case submission.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case submission.FieldQuestionnaireID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionnaireID(v)
		return nil
	case submission.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case submission.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case submission.FieldAssessmentLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentLevel(v)
		return nil
	case submission.FieldAssessmentOpinion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentOpinion(v)
		return nil
	case submission.FieldGroupKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupKey(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_score != nil {
		fields = append(fields, submission.FieldTotalScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldTotalScore:
		return m.AddedTotalScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submission.FieldTotalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldDeletedAt) {
		fields = append(fields, submission.FieldDeletedAt)
	}
	if m.FieldCleared(submission.FieldTotalScore) {
		fields = append(fields, submission.FieldTotalScore)
	}
	if m.FieldCleared(submission.FieldAssessmentLevel) {
		fields = append(fields, submission.FieldAssessmentLevel)
	}
	if m.FieldCleared(submission.FieldAssessmentOpinion) {
		fields = append(fields, submission.FieldAssessmentOpinion)
	}
	if m.FieldCleared(submission.FieldGroupKey) {
		fields = append(fields, submission.FieldGroupKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case submission.FieldTotalScore:
		m.ClearTotalScore()
		return nil
	case submission.FieldAssessmentLevel:
		m.ClearAssessmentLevel()
		return nil
	case submission.FieldAssessmentOpinion:
		m.ClearAssessmentOpinion()
		return nil
	case submission.FieldGroupKey:
		m.ClearGroupKey()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case submission.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case submission.FieldQuestionnaireID:
		m.ResetQuestionnaireID()
		return nil
	case submission.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case submission.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case submission.FieldAssessmentLevel:
		m.ResetAssessmentLevel()
		return nil
	case submission.FieldAssessmentOpinion:
		m.ResetAssessmentOpinion()
		return nil
	case submission.FieldGroupKey:
		m.ResetGroupKey()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.questionnaire != nil {
		edges = append(edges, submission.EdgeQuestionnaire)
	}
	if m.answers != nil {
		edges = append(edges, submission.EdgeAnswers)
	}
	if m.dimension_scores != nil {
		edges = append(edges, submission.EdgeDimensionScores)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeQuestionnaire:
		if id := m.questionnaire; id != nil {
			return []ent.Value{*id}
		}
	case submission.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	case submission.EdgeDimensionScores:
		ids := make([]ent.Value, 0, len(m.dimension_scores))
		for id := range m.dimension_scores {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedanswers != nil {
		edges = append(edges, submission.EdgeAnswers)
	}
	if m.removeddimension_scores != nil {
		edges = append(edges, submission.EdgeDimensionScores)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	case submission.EdgeDimensionScores:
		ids := make([]ent.Value, 0, len(m.removeddimension_scores))
		for id := range m.removeddimension_scores {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedquestionnaire {
		edges = append(edges, submission.EdgeQuestionnaire)
	}
	if m.clearedanswers {
		edges = append(edges, submission.EdgeAnswers)
	}
	if m.cleareddimension_scores {
		edges = append(edges, submission.EdgeDimensionScores)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case submission.EdgeQuestionnaire:
		return m.clearedquestionnaire
	case submission.EdgeAnswers:
		return m.clearedanswers
	case submission.EdgeDimensionScores:
		return m.cleareddimension_scores
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	switch name {
	case submission.EdgeQuestionnaire:
		m.ClearQuestionnaire()
		return nil
	}
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	switch name {
	case submission.EdgeQuestionnaire:
		m.ResetQuestionnaire()
		return nil
	case submission.EdgeAnswers:
		m.ResetAnswers()
		return nil
	case submission.EdgeDimensionScores:
		m.ResetDimensionScores()
		return nil
	}
	return fmt.Errorf("unknown Submission edge %s", name)
}

// SurveyOptionMutation represents an operation that mutates the SurveyOption nodes in the graph.
type SurveyOptionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	text            *string
	value           *float64
	addvalue        *float64
	is_other        *bool
	clearedFields   map[string]struct{}
	question        *uuid.UUID
	clearedquestion bool
	done            bool
	oldValue        func(context.Context) (*SurveyOption, error)
	predicates      []predicate.SurveyOption
}

var _ ent.Mutation = (*SurveyOptionMutation)(nil)

// surveyoptionOption allows management of the mutation configuration using functional options.
type surveyoptionOption func(*SurveyOptionMutation)

// newSurveyOptionMutation creates new mutation for the SurveyOption entity.
func newSurveyOptionMutation(c config, op Op, opts ...surveyoptionOption) *SurveyOptionMutation {
	m := &SurveyOptionMutation{
		config:        c,
		op:            op,
		typ:           TypeSurveyOption,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSurveyOptionID sets the ID field of the mutation.
func withSurveyOptionID(id uuid.UUID) surveyoptionOption {
	return func(m *SurveyOptionMutation) {
		var (
			err   error
			once  sync.Once
			value *SurveyOption
		)
		m.oldValue = func(ctx context.Context) (*SurveyOption, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SurveyOption.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSurveyOption sets the old SurveyOption of the mutation.
func withSurveyOption(node *SurveyOption) surveyoptionOption {
	return func(m *SurveyOptionMutation) {
		m.oldValue = func(context.Context) (*SurveyOption, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SurveyOptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SurveyOptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SurveyOption entities.
func (m *SurveyOptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SurveyOptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SurveyOptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SurveyOption.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SurveyOptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SurveyOptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SurveyOption entity.
// If the SurveyOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyOptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SurveyOptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SurveyOptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SurveyOptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SurveyOption entity.
// If the SurveyOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyOptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SurveyOptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SurveyOptionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SurveyOptionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the SurveyOption entity.
// If the SurveyOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyOptionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SurveyOptionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[surveyoption.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SurveyOptionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[surveyoption.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SurveyOptionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, surveyoption.FieldDeletedAt)
}

// SetQuestionID sets the "question_id" field.
func (m *SurveyOptionMutation) SetQuestionID(u uuid.UUID) {
	m.question = &u
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *SurveyOptionMutation) QuestionID() (r uuid.UUID, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the SurveyOption entity.
// If the SurveyOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyOptionMutation) OldQuestionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *SurveyOptionMutation) ResetQuestionID() {
	m.question = nil
}

// SetText sets the "text" field.
func (m *SurveyOptionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *SurveyOptionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the SurveyOption entity.
// If the SurveyOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyOptionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *SurveyOptionMutation) ResetText() {
	m.text = nil
}

// SetValue sets the "value" field.
func (m *SurveyOptionMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *SurveyOptionMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the SurveyOption entity.
// If the SurveyOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyOptionMutation) OldValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *SurveyOptionMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *SurveyOptionMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ClearValue clears the value of the "value" field.
func (m *SurveyOptionMutation) ClearValue() {
	m.value = nil
	m.addvalue = nil
	m.clearedFields[surveyoption.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *SurveyOptionMutation) ValueCleared() bool {
	_, ok := m.clearedFields[surveyoption.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *SurveyOptionMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
	delete(m.clearedFields, surveyoption.FieldValue)
}

// SetIsOther sets the "is_other" field.
func (m *SurveyOptionMutation) SetIsOther(b bool) {
	m.is_other = &b
}

// IsOther returns the value of the "is_other" field in the mutation.
func (m *SurveyOptionMutation) IsOther() (r bool, exists bool) {
	v := m.is_other
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOther returns the old "is_other" field's value of the SurveyOption entity.
// If the SurveyOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyOptionMutation) OldIsOther(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOther is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOther requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOther: %w", err)
	}
	return oldValue.IsOther, nil
}

// ResetIsOther resets all changes to the "is_other" field.
func (m *SurveyOptionMutation) ResetIsOther() {
	m.is_other = nil
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *SurveyOptionMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[surveyoption.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *SurveyOptionMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *SurveyOptionMutation) QuestionIDs() (ids []uuid.UUID) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *SurveyOptionMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the SurveyOptionMutation builder.
func (m *SurveyOptionMutation) Where(ps ...predicate.SurveyOption) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SurveyOptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SurveyOptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SurveyOption, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SurveyOptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SurveyOptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SurveyOption).
func (m *SurveyOptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SurveyOptionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, surveyoption.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, surveyoption.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, surveyoption.FieldDeletedAt)
	}
	if m.question != nil {
		fields = append(fields, surveyoption.FieldQuestionID)
	}
	if m.text != nil {
		fields = append(fields, surveyoption.FieldText)
	}
	if m.value != nil {
		fields = append(fields, surveyoption.FieldValue)
	}
	if m.is_other != nil {
		fields = append(fields, surveyoption.FieldIsOther)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SurveyOptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case surveyoption.FieldCreatedAt:
		return m.CreatedAt()
	case surveyoption.FieldUpdatedAt:
		return m.UpdatedAt()
	case surveyoption.FieldDeletedAt:
		return m.DeletedAt()
	case surveyoption.FieldQuestionID:
		return m.QuestionID()
	case surveyoption.FieldText:
		return m.Text()
	case surveyoption.FieldValue:
		return m.Value()
	case surveyoption.FieldIsOther:
		return m.IsOther()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SurveyOptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case surveyoption.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case surveyoption.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case surveyoption.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case surveyoption.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case surveyoption.FieldText:
		return m.OldText(ctx)
	case surveyoption.FieldValue:
		return m.OldValue(ctx)
	case surveyoption.FieldIsOther:
		return m.OldIsOther(ctx)
	}
	return nil, fmt.Errorf("unknown SurveyOption field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyOptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case surveyoption.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case surveyoption.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case surveyoption.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case surveyoption.FieldQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case surveyoption.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case surveyoption.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case surveyoption.FieldIsOther:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOther(v)
		return nil
	}
	return fmt.Errorf("unknown SurveyOption field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SurveyOptionMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, surveyoption.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SurveyOptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case surveyoption.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyOptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case surveyoption.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown SurveyOption numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SurveyOptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(surveyoption.FieldDeletedAt) {
		fields = append(fields, surveyoption.FieldDeletedAt)
	}
	if m.FieldCleared(surveyoption.FieldValue) {
		fields = append(fields, surveyoption.FieldValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SurveyOptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SurveyOptionMutation) ClearField(name string) error {
	switch name {
	case surveyoption.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case surveyoption.FieldValue:
		m.ClearValue()
		return nil
	}
	return fmt.Errorf("unknown SurveyOption nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SurveyOptionMutation) ResetField(name string) error {
	switch name {
	case surveyoption.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case surveyoption.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case surveyoption.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case surveyoption.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case surveyoption.FieldText:
		m.ResetText()
		return nil
	case surveyoption.FieldValue:
		m.ResetValue()
		return nil
	case surveyoption.FieldIsOther:
		m.ResetIsOther()
		return nil
	}
	return fmt.Errorf("unknown SurveyOption field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SurveyOptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.question != nil {
		edges = append(edges, surveyoption.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SurveyOptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case surveyoption.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SurveyOptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SurveyOptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SurveyOptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestion {
		edges = append(edges, surveyoption.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SurveyOptionMutation) EdgeCleared(name string) bool {
	switch name {
	case surveyoption.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SurveyOptionMutation) ClearEdge(name string) error {
	switch name {
	case surveyoption.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown SurveyOption unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SurveyOptionMutation) ResetEdge(name string) error {
	switch name {
	case surveyoption.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown SurveyOption edge %s", name)
}
