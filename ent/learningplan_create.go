// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studiq/ent/learningplan"
)

// LearningPlanCreate is the builder for creating a LearningPlan entity.
type LearningPlanCreate struct {
	config
	mutation *LearningPlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlanID sets the "plan_id" field.
func (_c *LearningPlanCreate) SetPlanID(v string) *LearningPlanCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetData sets the "data" field.
func (_c *LearningPlanCreate) SetData(v map[string]interface{}) *LearningPlanCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningPlanCreate) SetCreatedAt(v time.Time) *LearningPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableCreatedAt(v *time.Time) *LearningPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LearningPlanCreate) SetCompletedAt(v time.Time) *LearningPlanCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableCompletedAt(v *time.Time) *LearningPlanCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_c *LearningPlanCreate) Mutation() *LearningPlanMutation {
	return _c.mutation
}

// Save creates the LearningPlan in the database.
func (_c *LearningPlanCreate) Save(ctx context.Context) (*LearningPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPlanCreate) SaveX(ctx context.Context) *LearningPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPlanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPlanCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "LearningPlan.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := learningplan.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "LearningPlan.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningPlan.created_at"`)}
	}
	return nil
}

func (_c *LearningPlanCreate) sqlSave(ctx context.Context) (*LearningPlan, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningPlanCreate) createSpec() (*LearningPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningplan.Table, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(learningplan.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(learningplan.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(learningplan.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearningPlan.Create().
//		SetPlanID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearningPlanUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *LearningPlanCreate) OnConflict(opts ...sql.ConflictOption) *LearningPlanUpsertOne {
	_c.conflict = opts
	return &LearningPlanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearningPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearningPlanCreate) OnConflictColumns(columns ...string) *LearningPlanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearningPlanUpsertOne{
		create: _c,
	}
}

type (
	// LearningPlanUpsertOne is the builder for "upsert"-ing
	//  one LearningPlan node.
	LearningPlanUpsertOne struct {
		create *LearningPlanCreate
	}

	// LearningPlanUpsert is the "OnConflict" setter.
	LearningPlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlanID sets the "plan_id" field.
func (u *LearningPlanUpsert) SetPlanID(v string) *LearningPlanUpsert {
	u.Set(learningplan.FieldPlanID, v)
	return u
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *LearningPlanUpsert) UpdatePlanID() *LearningPlanUpsert {
	u.SetExcluded(learningplan.FieldPlanID)
	return u
}

// SetData sets the "data" field.
func (u *LearningPlanUpsert) SetData(v map[string]interface{}) *LearningPlanUpsert {
	u.Set(learningplan.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *LearningPlanUpsert) UpdateData() *LearningPlanUpsert {
	u.SetExcluded(learningplan.FieldData)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *LearningPlanUpsert) SetCreatedAt(v time.Time) *LearningPlanUpsert {
	u.Set(learningplan.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *LearningPlanUpsert) UpdateCreatedAt() *LearningPlanUpsert {
	u.SetExcluded(learningplan.FieldCreatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *LearningPlanUpsert) SetCompletedAt(v time.Time) *LearningPlanUpsert {
	u.Set(learningplan.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LearningPlanUpsert) UpdateCompletedAt() *LearningPlanUpsert {
	u.SetExcluded(learningplan.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LearningPlanUpsert) ClearCompletedAt() *LearningPlanUpsert {
	u.SetNull(learningplan.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LearningPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LearningPlanUpsertOne) UpdateNewValues() *LearningPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearningPlan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LearningPlanUpsertOne) Ignore() *LearningPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearningPlanUpsertOne) DoNothing() *LearningPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearningPlanCreate.OnConflict
// documentation for more info.
func (u *LearningPlanUpsertOne) Update(set func(*LearningPlanUpsert)) *LearningPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearningPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlanID sets the "plan_id" field.
func (u *LearningPlanUpsertOne) SetPlanID(v string) *LearningPlanUpsertOne {
	return u.Update(func(s *LearningPlanUpsert) {
		s.SetPlanID(v)
	})
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *LearningPlanUpsertOne) UpdatePlanID() *LearningPlanUpsertOne {
	return u.Update(func(s *LearningPlanUpsert) {
		s.UpdatePlanID()
	})
}

// SetData sets the "data" field.
func (u *LearningPlanUpsertOne) SetData(v map[string]interface{}) *LearningPlanUpsertOne {
	return u.Update(func(s *LearningPlanUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *LearningPlanUpsertOne) UpdateData() *LearningPlanUpsertOne {
	return u.Update(func(s *LearningPlanUpsert) {
		s.UpdateData()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *LearningPlanUpsertOne) SetCreatedAt(v time.Time) *LearningPlanUpsertOne {
	return u.Update(func(s *LearningPlanUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *LearningPlanUpsertOne) UpdateCreatedAt() *LearningPlanUpsertOne {
	return u.Update(func(s *LearningPlanUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *LearningPlanUpsertOne) SetCompletedAt(v time.Time) *LearningPlanUpsertOne {
	return u.Update(func(s *LearningPlanUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LearningPlanUpsertOne) UpdateCompletedAt() *LearningPlanUpsertOne {
	return u.Update(func(s *LearningPlanUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LearningPlanUpsertOne) ClearCompletedAt() *LearningPlanUpsertOne {
	return u.Update(func(s *LearningPlanUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *LearningPlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearningPlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearningPlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LearningPlanUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LearningPlanUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LearningPlanCreateBulk is the builder for creating many LearningPlan entities in bulk.
type LearningPlanCreateBulk struct {
	config
	err      error
	builders []*LearningPlanCreate
	conflict []sql.ConflictOption
}

// Save creates the LearningPlan entities in the database.
func (_c *LearningPlanCreateBulk) Save(ctx context.Context) ([]*LearningPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPlanMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *LearningPlanCreateBulk) SaveX(ctx context.Context) []*LearningPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearningPlan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearningPlanUpsert) {
//			SetPlanID(v+v).
//		}).
//		Exec(ctx)
func (_c *LearningPlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *LearningPlanUpsertBulk {
	_c.conflict = opts
	return &LearningPlanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearningPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearningPlanCreateBulk) OnConflictColumns(columns ...string) *LearningPlanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearningPlanUpsertBulk{
		create: _c,
	}
}

// LearningPlanUpsertBulk is the builder for "upsert"-ing
// a bulk of LearningPlan nodes.
type LearningPlanUpsertBulk struct {
	create *LearningPlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LearningPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LearningPlanUpsertBulk) UpdateNewValues() *LearningPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearningPlan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LearningPlanUpsertBulk) Ignore() *LearningPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearningPlanUpsertBulk) DoNothing() *LearningPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearningPlanCreateBulk.OnConflict
// documentation for more info.
func (u *LearningPlanUpsertBulk) Update(set func(*LearningPlanUpsert)) *LearningPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearningPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlanID sets the "plan_id" field.
func (u *LearningPlanUpsertBulk) SetPlanID(v string) *LearningPlanUpsertBulk {
	return u.Update(func(s *LearningPlanUpsert) {
		s.SetPlanID(v)
	})
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *LearningPlanUpsertBulk) UpdatePlanID() *LearningPlanUpsertBulk {
	return u.Update(func(s *LearningPlanUpsert) {
		s.UpdatePlanID()
	})
}

// SetData sets the "data" field.
func (u *LearningPlanUpsertBulk) SetData(v map[string]interface{}) *LearningPlanUpsertBulk {
	return u.Update(func(s *LearningPlanUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *LearningPlanUpsertBulk) UpdateData() *LearningPlanUpsertBulk {
	return u.Update(func(s *LearningPlanUpsert) {
		s.UpdateData()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *LearningPlanUpsertBulk) SetCreatedAt(v time.Time) *LearningPlanUpsertBulk {
	return u.Update(func(s *LearningPlanUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *LearningPlanUpsertBulk) UpdateCreatedAt() *LearningPlanUpsertBulk {
	return u.Update(func(s *LearningPlanUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *LearningPlanUpsertBulk) SetCompletedAt(v time.Time) *LearningPlanUpsertBulk {
	return u.Update(func(s *LearningPlanUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LearningPlanUpsertBulk) UpdateCompletedAt() *LearningPlanUpsertBulk {
	return u.Update(func(s *LearningPlanUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LearningPlanUpsertBulk) ClearCompletedAt() *LearningPlanUpsertBulk {
	return u.Update(func(s *LearningPlanUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *LearningPlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LearningPlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearningPlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearningPlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
