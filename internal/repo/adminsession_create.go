// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/admin"
	"github.com/halouxiaoyu/survey_backend/internal/repo/adminsession"
)

// AdminSessionCreate is the builder for creating a AdminSession entity.
type AdminSessionCreate struct {
	config
	mutation *AdminSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdminSessionCreate) SetCreatedAt(v time.Time) *AdminSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableCreatedAt(v *time.Time) *AdminSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AdminSessionCreate) SetUpdatedAt(v time.Time) *AdminSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableUpdatedAt(v *time.Time) *AdminSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAdminID sets the "admin_id" field.
func (_c *AdminSessionCreate) SetAdminID(v uuid.UUID) *AdminSessionCreate {
	_c.mutation.SetAdminID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AdminSessionCreate) SetSessionID(v string) *AdminSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (_c *AdminSessionCreate) SetRefreshTokenHash(v string) *AdminSessionCreate {
	_c.mutation.SetRefreshTokenHash(v)
	return _c
}

// SetNillableRefreshTokenHash sets the "refresh_token_hash" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableRefreshTokenHash(v *string) *AdminSessionCreate {
	if v != nil {
		_c.SetRefreshTokenHash(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *AdminSessionCreate) SetUserAgent(v string) *AdminSessionCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableUserAgent(v *string) *AdminSessionCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *AdminSessionCreate) SetIPAddress(v string) *AdminSessionCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableIPAddress(v *string) *AdminSessionCreate {
	if v != nil {
		_c.SetIPAddress(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *AdminSessionCreate) SetExpiresAt(v time.Time) *AdminSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *AdminSessionCreate) SetLastUsedAt(v time.Time) *AdminSessionCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableLastUsedAt(v *time.Time) *AdminSessionCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *AdminSessionCreate) SetRevokedAt(v time.Time) *AdminSessionCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableRevokedAt(v *time.Time) *AdminSessionCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AdminSessionCreate) SetID(v uuid.UUID) *AdminSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableID(v *uuid.UUID) *AdminSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAdmin sets the "admin" edge to the Admin entity.
func (_c *AdminSessionCreate) SetAdmin(v *Admin) *AdminSessionCreate {
	return _c.SetAdminID(v.ID)
}

// Mutation returns the AdminSessionMutation object of the builder.
func (_c *AdminSessionCreate) Mutation() *AdminSessionMutation {
	return _c.mutation
}

// Save creates the AdminSession in the database.
func (_c *AdminSessionCreate) Save(ctx context.Context) (*AdminSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdminSessionCreate) SaveX(ctx context.Context) *AdminSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdminSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := adminsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := adminsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := adminsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdminSessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AdminSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AdminSession.updated_at"`)}
	}
	if _, ok := _c.mutation.AdminID(); !ok {
		return &ValidationError{Name: "admin_id", err: errors.New(`repo: missing required field "AdminSession.admin_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`repo: missing required field "AdminSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := adminsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`repo: validator failed for field "AdminSession.session_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RefreshTokenHash(); ok {
		if err := adminsession.RefreshTokenHashValidator(v); err != nil {
			return &ValidationError{Name: "refresh_token_hash", err: fmt.Errorf(`repo: validator failed for field "AdminSession.refresh_token_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IPAddress(); ok {
		if err := adminsession.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`repo: validator failed for field "AdminSession.ip_address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`repo: missing required field "AdminSession.expires_at"`)}
	}
	if len(_c.mutation.AdminIDs()) == 0 {
		return &ValidationError{Name: "admin", err: errors.New(`repo: missing required edge "AdminSession.admin"`)}
	}
	return nil
}

func (_c *AdminSessionCreate) sqlSave(ctx context.Context) (*AdminSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdminSessionCreate) createSpec() (*AdminSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AdminSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adminsession.Table, sqlgraph.NewFieldSpec(adminsession.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(adminsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(adminsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(adminsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.RefreshTokenHash(); ok {
		_spec.SetField(adminsession.FieldRefreshTokenHash, field.TypeString, value)
		_node.RefreshTokenHash = &value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(adminsession.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = &value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(adminsession.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(adminsession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(adminsession.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(adminsession.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	if nodes := _c.mutation.AdminIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   adminsession.AdminTable,
			Columns: []string{adminsession.AdminColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admin.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AdminID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdminSession.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdminSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AdminSessionCreate) OnConflict(opts ...sql.ConflictOption) *AdminSessionUpsertOne {
	_c.conflict = opts
	return &AdminSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdminSessionCreate) OnConflictColumns(columns ...string) *AdminSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdminSessionUpsertOne{
		create: _c,
	}
}

type (
	// AdminSessionUpsertOne is the builder for "upsert"-ing
	//  one AdminSession node.
	AdminSessionUpsertOne struct {
		create *AdminSessionCreate
	}

	// AdminSessionUpsert is the "OnConflict" setter.
	AdminSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AdminSessionUpsert) SetUpdatedAt(v time.Time) *AdminSessionUpsert {
	u.Set(adminsession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateUpdatedAt() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldUpdatedAt)
	return u
}

// SetAdminID sets the "admin_id" field.
func (u *AdminSessionUpsert) SetAdminID(v uuid.UUID) *AdminSessionUpsert {
	u.Set(adminsession.FieldAdminID, v)
	return u
}

// UpdateAdminID sets the "admin_id" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateAdminID() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldAdminID)
	return u
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (u *AdminSessionUpsert) SetRefreshTokenHash(v string) *AdminSessionUpsert {
	u.Set(adminsession.FieldRefreshTokenHash, v)
	return u
}

// UpdateRefreshTokenHash sets the "refresh_token_hash" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateRefreshTokenHash() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldRefreshTokenHash)
	return u
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (u *AdminSessionUpsert) ClearRefreshTokenHash() *AdminSessionUpsert {
	u.SetNull(adminsession.FieldRefreshTokenHash)
	return u
}

// SetUserAgent sets the "user_agent" field.
func (u *AdminSessionUpsert) SetUserAgent(v string) *AdminSessionUpsert {
	u.Set(adminsession.FieldUserAgent, v)
	return u
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateUserAgent() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldUserAgent)
	return u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *AdminSessionUpsert) ClearUserAgent() *AdminSessionUpsert {
	u.SetNull(adminsession.FieldUserAgent)
	return u
}

// SetIPAddress sets the "ip_address" field.
func (u *AdminSessionUpsert) SetIPAddress(v string) *AdminSessionUpsert {
	u.Set(adminsession.FieldIPAddress, v)
	return u
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateIPAddress() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldIPAddress)
	return u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *AdminSessionUpsert) ClearIPAddress() *AdminSessionUpsert {
	u.SetNull(adminsession.FieldIPAddress)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *AdminSessionUpsert) SetExpiresAt(v time.Time) *AdminSessionUpsert {
	u.Set(adminsession.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateExpiresAt() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldExpiresAt)
	return u
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *AdminSessionUpsert) SetLastUsedAt(v time.Time) *AdminSessionUpsert {
	u.Set(adminsession.FieldLastUsedAt, v)
	return u
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateLastUsedAt() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldLastUsedAt)
	return u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *AdminSessionUpsert) ClearLastUsedAt() *AdminSessionUpsert {
	u.SetNull(adminsession.FieldLastUsedAt)
	return u
}

// SetRevokedAt sets the "revoked_at" field.
func (u *AdminSessionUpsert) SetRevokedAt(v time.Time) *AdminSessionUpsert {
	u.Set(adminsession.FieldRevokedAt, v)
	return u
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateRevokedAt() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldRevokedAt)
	return u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *AdminSessionUpsert) ClearRevokedAt() *AdminSessionUpsert {
	u.SetNull(adminsession.FieldRevokedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(adminsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AdminSessionUpsertOne) UpdateNewValues() *AdminSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(adminsession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(adminsession.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(adminsession.FieldSessionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AdminSessionUpsertOne) Ignore() *AdminSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdminSessionUpsertOne) DoNothing() *AdminSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdminSessionCreate.OnConflict
// documentation for more info.
func (u *AdminSessionUpsertOne) Update(set func(*AdminSessionUpsert)) *AdminSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdminSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AdminSessionUpsertOne) SetUpdatedAt(v time.Time) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateUpdatedAt() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAdminID sets the "admin_id" field.
func (u *AdminSessionUpsertOne) SetAdminID(v uuid.UUID) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetAdminID(v)
	})
}

// UpdateAdminID sets the "admin_id" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateAdminID() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateAdminID()
	})
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (u *AdminSessionUpsertOne) SetRefreshTokenHash(v string) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetRefreshTokenHash(v)
	})
}

// UpdateRefreshTokenHash sets the "refresh_token_hash" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateRefreshTokenHash() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateRefreshTokenHash()
	})
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (u *AdminSessionUpsertOne) ClearRefreshTokenHash() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearRefreshTokenHash()
	})
}

// SetUserAgent sets the "user_agent" field.
func (u *AdminSessionUpsertOne) SetUserAgent(v string) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetUserAgent(v)
	})
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateUserAgent() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateUserAgent()
	})
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *AdminSessionUpsertOne) ClearUserAgent() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearUserAgent()
	})
}

// SetIPAddress sets the "ip_address" field.
func (u *AdminSessionUpsertOne) SetIPAddress(v string) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetIPAddress(v)
	})
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateIPAddress() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateIPAddress()
	})
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *AdminSessionUpsertOne) ClearIPAddress() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearIPAddress()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *AdminSessionUpsertOne) SetExpiresAt(v time.Time) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateExpiresAt() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *AdminSessionUpsertOne) SetLastUsedAt(v time.Time) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateLastUsedAt() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateLastUsedAt()
	})
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *AdminSessionUpsertOne) ClearLastUsedAt() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearLastUsedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *AdminSessionUpsertOne) SetRevokedAt(v time.Time) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateRevokedAt() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *AdminSessionUpsertOne) ClearRevokedAt() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearRevokedAt()
	})
}

// Exec executes the query.
func (u *AdminSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AdminSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdminSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AdminSessionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AdminSessionUpsertOne.ID is not supported by MySQL driver. Use AdminSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AdminSessionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AdminSessionCreateBulk is the builder for creating many AdminSession entities in bulk.
type AdminSessionCreateBulk struct {
	config
	err      error
	builders []*AdminSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the AdminSession entities in the database.
func (_c *AdminSessionCreateBulk) Save(ctx context.Context) ([]*AdminSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdminSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdminSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AdminSessionCreateBulk) SaveX(ctx context.Context) []*AdminSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdminSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdminSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AdminSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AdminSessionUpsertBulk {
	_c.conflict = opts
	return &AdminSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdminSessionCreateBulk) OnConflictColumns(columns ...string) *AdminSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdminSessionUpsertBulk{
		create: _c,
	}
}

// AdminSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of AdminSession nodes.
type AdminSessionUpsertBulk struct {
	create *AdminSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(adminsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AdminSessionUpsertBulk) UpdateNewValues() *AdminSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(adminsession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(adminsession.FieldCreatedAt)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(adminsession.FieldSessionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AdminSessionUpsertBulk) Ignore() *AdminSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdminSessionUpsertBulk) DoNothing() *AdminSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdminSessionCreateBulk.OnConflict
// documentation for more info.
func (u *AdminSessionUpsertBulk) Update(set func(*AdminSessionUpsert)) *AdminSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdminSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AdminSessionUpsertBulk) SetUpdatedAt(v time.Time) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateUpdatedAt() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAdminID sets the "admin_id" field.
func (u *AdminSessionUpsertBulk) SetAdminID(v uuid.UUID) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetAdminID(v)
	})
}

// UpdateAdminID sets the "admin_id" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateAdminID() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateAdminID()
	})
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (u *AdminSessionUpsertBulk) SetRefreshTokenHash(v string) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetRefreshTokenHash(v)
	})
}

// UpdateRefreshTokenHash sets the "refresh_token_hash" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateRefreshTokenHash() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateRefreshTokenHash()
	})
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (u *AdminSessionUpsertBulk) ClearRefreshTokenHash() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearRefreshTokenHash()
	})
}

// SetUserAgent sets the "user_agent" field.
func (u *AdminSessionUpsertBulk) SetUserAgent(v string) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetUserAgent(v)
	})
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateUserAgent() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateUserAgent()
	})
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *AdminSessionUpsertBulk) ClearUserAgent() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearUserAgent()
	})
}

// SetIPAddress sets the "ip_address" field.
func (u *AdminSessionUpsertBulk) SetIPAddress(v string) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetIPAddress(v)
	})
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateIPAddress() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateIPAddress()
	})
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *AdminSessionUpsertBulk) ClearIPAddress() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearIPAddress()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *AdminSessionUpsertBulk) SetExpiresAt(v time.Time) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateExpiresAt() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *AdminSessionUpsertBulk) SetLastUsedAt(v time.Time) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateLastUsedAt() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateLastUsedAt()
	})
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *AdminSessionUpsertBulk) ClearLastUsedAt() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearLastUsedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *AdminSessionUpsertBulk) SetRevokedAt(v time.Time) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateRevokedAt() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *AdminSessionUpsertBulk) ClearRevokedAt() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearRevokedAt()
	})
}

// Exec executes the query.
func (u *AdminSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AdminSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AdminSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdminSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
