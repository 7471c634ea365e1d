// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/touchpoint/ent/activitylog"
	"github.com/jordanlanch/touchpoint/ent/predicate"
	"github.com/jordanlanch/touchpoint/ent/preset"
	"github.com/jordanlanch/touchpoint/ent/presetstep"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
	"github.com/jordanlanch/touchpoint/pkg/domain"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivityLog  = "ActivityLog"
	TypePreset       = "Preset"
	TypePresetStep   = "PresetStep"
	TypeSubscription = "Subscription"
	TypeTouch        = "Touch"
	TypeTouchLog     = "TouchLog"
)

// ActivityLogMutation represents an operation that mutates the ActivityLog nodes in the graph.
type ActivityLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	actor_id      *int
	addactor_id   *int
	action        *activitylog.Action
	resource_type *string
	resource_id   *string
	metadata      *map[string]interface{}
	severity      *activitylog.Severity
	description   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ActivityLog, error)
	predicates    []predicate.ActivityLog
}

var _ ent.Mutation = (*ActivityLogMutation)(nil)

// activitylogOption allows management of the mutation configuration using functional options.
type activitylogOption func(*ActivityLogMutation)

// newActivityLogMutation creates new mutation for the ActivityLog entity.
func newActivityLogMutation(c config, op Op, opts ...activitylogOption) *ActivityLogMutation {
	m := &ActivityLogMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityLogID sets the ID field of the mutation.
func withActivityLogID(id int) activitylogOption {
	return func(m *ActivityLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityLog
		)
		m.oldValue = func(ctx context.Context) (*ActivityLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityLog sets the old ActivityLog of the mutation.
func withActivityLog(node *ActivityLog) activitylogOption {
	return func(m *ActivityLogMutation) {
		m.oldValue = func(context.Context) (*ActivityLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActorID sets the "actor_id" field.
func (m *ActivityLogMutation) SetActorID(i int) {
	m.actor_id = &i
	m.addactor_id = nil
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *ActivityLogMutation) ActorID() (r int, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldActorID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// AddActorID adds i to the "actor_id" field.
func (m *ActivityLogMutation) AddActorID(i int) {
	if m.addactor_id != nil {
		*m.addactor_id += i
	} else {
		m.addactor_id = &i
	}
}

// AddedActorID returns the value that was added to the "actor_id" field in this mutation.
func (m *ActivityLogMutation) AddedActorID() (r int, exists bool) {
	v := m.addactor_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearActorID clears the value of the "actor_id" field.
func (m *ActivityLogMutation) ClearActorID() {
	m.actor_id = nil
	m.addactor_id = nil
	m.clearedFields[activitylog.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *ActivityLogMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *ActivityLogMutation) ResetActorID() {
	m.actor_id = nil
	m.addactor_id = nil
	delete(m.clearedFields, activitylog.FieldActorID)
}

// SetAction sets the "action" field.
func (m *ActivityLogMutation) SetAction(a activitylog.Action) {
	m.action = &a
}

// Action returns the value of the "action" field in the mutation.
func (m *ActivityLogMutation) Action() (r activitylog.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldAction(ctx context.Context) (v activitylog.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ActivityLogMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *ActivityLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *ActivityLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *ActivityLogMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[activitylog.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *ActivityLogMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *ActivityLogMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, activitylog.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *ActivityLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *ActivityLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *ActivityLogMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[activitylog.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *ActivityLogMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *ActivityLogMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, activitylog.FieldResourceID)
}

// SetMetadata sets the "metadata" field.
func (m *ActivityLogMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ActivityLogMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ActivityLogMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[activitylog.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ActivityLogMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ActivityLogMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, activitylog.FieldMetadata)
}

// SetSeverity sets the "severity" field.
func (m *ActivityLogMutation) SetSeverity(a activitylog.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ActivityLogMutation) Severity() (r activitylog.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldSeverity(ctx context.Context) (v activitylog.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ActivityLogMutation) ResetSeverity() {
	m.severity = nil
}

// SetDescription sets the "description" field.
func (m *ActivityLogMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ActivityLogMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *ActivityLogMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[activitylog.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ActivityLogMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ActivityLogMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, activitylog.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ActivityLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ActivityLogMutation builder.
func (m *ActivityLogMutation) Where(ps ...predicate.ActivityLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityLog).
func (m *ActivityLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.actor_id != nil {
		fields = append(fields, activitylog.FieldActorID)
	}
	if m.action != nil {
		fields = append(fields, activitylog.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, activitylog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, activitylog.FieldResourceID)
	}
	if m.metadata != nil {
		fields = append(fields, activitylog.FieldMetadata)
	}
	if m.severity != nil {
		fields = append(fields, activitylog.FieldSeverity)
	}
	if m.description != nil {
		fields = append(fields, activitylog.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, activitylog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activitylog.FieldActorID:
		return m.ActorID()
	case activitylog.FieldAction:
		return m.Action()
	case activitylog.FieldResourceType:
		return m.ResourceType()
	case activitylog.FieldResourceID:
		return m.ResourceID()
	case activitylog.FieldMetadata:
		return m.Metadata()
	case activitylog.FieldSeverity:
		return m.Severity()
	case activitylog.FieldDescription:
		return m.Description()
	case activitylog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activitylog.FieldActorID:
		return m.OldActorID(ctx)
	case activitylog.FieldAction:
		return m.OldAction(ctx)
	case activitylog.FieldResourceType:
		return m.OldResourceType(ctx)
	case activitylog.FieldResourceID:
		return m.OldResourceID(ctx)
	case activitylog.FieldMetadata:
		return m.OldMetadata(ctx)
	case activitylog.FieldSeverity:
		return m.OldSeverity(ctx)
	case activitylog.FieldDescription:
		return m.OldDescription(ctx)
	case activitylog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activitylog.FieldActorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case activitylog.FieldAction:
		v, ok := value.(activitylog.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case activitylog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case activitylog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case activitylog.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case activitylog.FieldSeverity:
		v, ok := value.(activitylog.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case activitylog.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case activitylog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityLogMutation) AddedFields() []string {
	var fields []string
	if m.addactor_id != nil {
		fields = append(fields, activitylog.FieldActorID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activitylog.FieldActorID:
		return m.AddedActorID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activitylog.FieldActorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActorID(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activitylog.FieldActorID) {
		fields = append(fields, activitylog.FieldActorID)
	}
	if m.FieldCleared(activitylog.FieldResourceType) {
		fields = append(fields, activitylog.FieldResourceType)
	}
	if m.FieldCleared(activitylog.FieldResourceID) {
		fields = append(fields, activitylog.FieldResourceID)
	}
	if m.FieldCleared(activitylog.FieldMetadata) {
		fields = append(fields, activitylog.FieldMetadata)
	}
	if m.FieldCleared(activitylog.FieldDescription) {
		fields = append(fields, activitylog.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityLogMutation) ClearField(name string) error {
	switch name {
	case activitylog.FieldActorID:
		m.ClearActorID()
		return nil
	case activitylog.FieldResourceType:
		m.ClearResourceType()
		return nil
	case activitylog.FieldResourceID:
		m.ClearResourceID()
		return nil
	case activitylog.FieldMetadata:
		m.ClearMetadata()
		return nil
	case activitylog.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityLogMutation) ResetField(name string) error {
	switch name {
	case activitylog.FieldActorID:
		m.ResetActorID()
		return nil
	case activitylog.FieldAction:
		m.ResetAction()
		return nil
	case activitylog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case activitylog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case activitylog.FieldMetadata:
		m.ResetMetadata()
		return nil
	case activitylog.FieldSeverity:
		m.ResetSeverity()
		return nil
	case activitylog.FieldDescription:
		m.ResetDescription()
		return nil
	case activitylog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActivityLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActivityLog edge %s", name)
}

// PresetMutation represents an operation that mutates the Preset nodes in the graph.
type PresetMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	name                   *string
	description            *string
	default_cycle_behavior *preset.DefaultCycleBehavior
	is_active              *bool
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	steps                  map[int]struct{}
	removedsteps           map[int]struct{}
	clearedsteps           bool
	subscriptions          map[int]struct{}
	removedsubscriptions   map[int]struct{}
	clearedsubscriptions   bool
	done                   bool
	oldValue               func(context.Context) (*Preset, error)
	predicates             []predicate.Preset
}

var _ ent.Mutation = (*PresetMutation)(nil)

// presetOption allows management of the mutation configuration using functional options.
type presetOption func(*PresetMutation)

// newPresetMutation creates new mutation for the Preset entity.
func newPresetMutation(c config, op Op, opts ...presetOption) *PresetMutation {
	m := &PresetMutation{
		config:        c,
		op:            op,
		typ:           TypePreset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPresetID sets the ID field of the mutation.
func withPresetID(id int) presetOption {
	return func(m *PresetMutation) {
		var (
			err   error
			once  sync.Once
			value *Preset
		)
		m.oldValue = func(ctx context.Context) (*Preset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Preset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPreset sets the old Preset of the mutation.
func withPreset(node *Preset) presetOption {
	return func(m *PresetMutation) {
		m.oldValue = func(context.Context) (*Preset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PresetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PresetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PresetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PresetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Preset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PresetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PresetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Preset entity.
// If the Preset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *PresetMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *PresetMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PresetMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Preset entity.
// If the Preset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetMutation) OldDescription(ctx context.Context) (v string, err error) {
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
func (m *PresetMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[preset.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PresetMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[preset.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PresetMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, preset.FieldDescription)
}

// SetDefaultCycleBehavior sets the "default_cycle_behavior" field.
func (m *PresetMutation) SetDefaultCycleBehavior(pcb preset.DefaultCycleBehavior) {
	m.default_cycle_behavior = &pcb
}

// DefaultCycleBehavior returns the value of the "default_cycle_behavior" field in the mutation.
func (m *PresetMutation) DefaultCycleBehavior() (r preset.DefaultCycleBehavior, exists bool) {
	v := m.default_cycle_behavior
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCycleBehavior returns the old "default_cycle_behavior" field's value of the Preset entity.
// If the Preset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetMutation) OldDefaultCycleBehavior(ctx context.Context) (v preset.DefaultCycleBehavior, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCycleBehavior is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCycleBehavior requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCycleBehavior: %w", err)
	}
	return oldValue.DefaultCycleBehavior, nil
}

// ResetDefaultCycleBehavior resets all changes to the "default_cycle_behavior" field.
func (m *PresetMutation) ResetDefaultCycleBehavior() {
	m.default_cycle_behavior = nil
}

// SetIsActive sets the "is_active" field.
func (m *PresetMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PresetMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Preset entity.
// If the Preset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetMutation) OldIsActive(ctx context.Context) (v bool, err error) {
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
func (m *PresetMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PresetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PresetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Preset entity.
// If the Preset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PresetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PresetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PresetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Preset entity.
// If the Preset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PresetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddStepIDs adds the "steps" edge to the PresetStep entity by ids.
func (m *PresetMutation) AddStepIDs(ids ...int) {
	if m.steps == nil {
		m.steps = make(map[int]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the PresetStep entity.
func (m *PresetMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the PresetStep entity was cleared.
func (m *PresetMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the PresetStep entity by IDs.
func (m *PresetMutation) RemoveStepIDs(ids ...int) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the PresetStep entity.
func (m *PresetMutation) RemovedStepsIDs() (ids []int) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *PresetMutation) StepsIDs() (ids []int) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *PresetMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by ids.
func (m *PresetMutation) AddSubscriptionIDs(ids ...int) {
	if m.subscriptions == nil {
		m.subscriptions = make(map[int]struct{})
	}
	for i := range ids {
		m.subscriptions[ids[i]] = struct{}{}
	}
}

// ClearSubscriptions clears the "subscriptions" edge to the Subscription entity.
func (m *PresetMutation) ClearSubscriptions() {
	m.clearedsubscriptions = true
}

// SubscriptionsCleared reports if the "subscriptions" edge to the Subscription entity was cleared.
func (m *PresetMutation) SubscriptionsCleared() bool {
	return m.clearedsubscriptions
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to the Subscription entity by IDs.
func (m *PresetMutation) RemoveSubscriptionIDs(ids ...int) {
	if m.removedsubscriptions == nil {
		m.removedsubscriptions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.subscriptions, ids[i])
		m.removedsubscriptions[ids[i]] = struct{}{}
	}
}

// RemovedSubscriptions returns the removed IDs of the "subscriptions" edge to the Subscription entity.
func (m *PresetMutation) RemovedSubscriptionsIDs() (ids []int) {
	for id := range m.removedsubscriptions {
		ids = append(ids, id)
	}
	return
}

// SubscriptionsIDs returns the "subscriptions" edge IDs in the mutation.
func (m *PresetMutation) SubscriptionsIDs() (ids []int) {
	for id := range m.subscriptions {
		ids = append(ids, id)
	}
	return
}

// ResetSubscriptions resets all changes to the "subscriptions" edge.
func (m *PresetMutation) ResetSubscriptions() {
	m.subscriptions = nil
	m.clearedsubscriptions = false
	m.removedsubscriptions = nil
}

// Where appends a list predicates to the PresetMutation builder.
func (m *PresetMutation) Where(ps ...predicate.Preset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PresetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PresetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Preset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PresetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PresetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Preset).
func (m *PresetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PresetMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, preset.FieldName)
	}
	if m.description != nil {
		fields = append(fields, preset.FieldDescription)
	}
	if m.default_cycle_behavior != nil {
		fields = append(fields, preset.FieldDefaultCycleBehavior)
	}
	if m.is_active != nil {
		fields = append(fields, preset.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, preset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, preset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PresetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case preset.FieldName:
		return m.Name()
	case preset.FieldDescription:
		return m.Description()
	case preset.FieldDefaultCycleBehavior:
		return m.DefaultCycleBehavior()
	case preset.FieldIsActive:
		return m.IsActive()
	case preset.FieldCreatedAt:
		return m.CreatedAt()
	case preset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PresetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case preset.FieldName:
		return m.OldName(ctx)
	case preset.FieldDescription:
		return m.OldDescription(ctx)
	case preset.FieldDefaultCycleBehavior:
		return m.OldDefaultCycleBehavior(ctx)
	case preset.FieldIsActive:
		return m.OldIsActive(ctx)
	case preset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case preset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Preset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PresetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case preset.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case preset.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case preset.FieldDefaultCycleBehavior:
		v, ok := value.(preset.DefaultCycleBehavior)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCycleBehavior(v)
		return nil
	case preset.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case preset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case preset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Preset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PresetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PresetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PresetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Preset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PresetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(preset.FieldDescription) {
		fields = append(fields, preset.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PresetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PresetMutation) ClearField(name string) error {
	switch name {
	case preset.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Preset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PresetMutation) ResetField(name string) error {
	switch name {
	case preset.FieldName:
		m.ResetName()
		return nil
	case preset.FieldDescription:
		m.ResetDescription()
		return nil
	case preset.FieldDefaultCycleBehavior:
		m.ResetDefaultCycleBehavior()
		return nil
	case preset.FieldIsActive:
		m.ResetIsActive()
		return nil
	case preset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case preset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Preset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PresetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.steps != nil {
		edges = append(edges, preset.EdgeSteps)
	}
	if m.subscriptions != nil {
		edges = append(edges, preset.EdgeSubscriptions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PresetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case preset.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case preset.EdgeSubscriptions:
		ids := make([]ent.Value, 0, len(m.subscriptions))
		for id := range m.subscriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PresetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, preset.EdgeSteps)
	}
	if m.removedsubscriptions != nil {
		edges = append(edges, preset.EdgeSubscriptions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PresetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case preset.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case preset.EdgeSubscriptions:
		ids := make([]ent.Value, 0, len(m.removedsubscriptions))
		for id := range m.removedsubscriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PresetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsteps {
		edges = append(edges, preset.EdgeSteps)
	}
	if m.clearedsubscriptions {
		edges = append(edges, preset.EdgeSubscriptions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PresetMutation) EdgeCleared(name string) bool {
	switch name {
	case preset.EdgeSteps:
		return m.clearedsteps
	case preset.EdgeSubscriptions:
		return m.clearedsubscriptions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PresetMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Preset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PresetMutation) ResetEdge(name string) error {
	switch name {
	case preset.EdgeSteps:
		m.ResetSteps()
		return nil
	case preset.EdgeSubscriptions:
		m.ResetSubscriptions()
		return nil
	}
	return fmt.Errorf("unknown Preset edge %s", name)
}

// PresetStepMutation represents an operation that mutates the PresetStep nodes in the graph.
type PresetStepMutation struct {
	config
	op               Op
	typ              string
	id               *int
	step_order       *int
	addstep_order    *int
	method           *presetstep.Method
	interval_days    *int
	addinterval_days *int
	assignee_rule    *presetstep.AssigneeRule
	assignee_id      *int
	addassignee_id   *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	preset           *int
	clearedpreset    bool
	done             bool
	oldValue         func(context.Context) (*PresetStep, error)
	predicates       []predicate.PresetStep
}

var _ ent.Mutation = (*PresetStepMutation)(nil)

// presetstepOption allows management of the mutation configuration using functional options.
type presetstepOption func(*PresetStepMutation)

// newPresetStepMutation creates new mutation for the PresetStep entity.
func newPresetStepMutation(c config, op Op, opts ...presetstepOption) *PresetStepMutation {
	m := &PresetStepMutation{
		config:        c,
		op:            op,
		typ:           TypePresetStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPresetStepID sets the ID field of the mutation.
func withPresetStepID(id int) presetstepOption {
	return func(m *PresetStepMutation) {
		var (
			err   error
			once  sync.Once
			value *PresetStep
		)
		m.oldValue = func(ctx context.Context) (*PresetStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PresetStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPresetStep sets the old PresetStep of the mutation.
func withPresetStep(node *PresetStep) presetstepOption {
	return func(m *PresetStepMutation) {
		m.oldValue = func(context.Context) (*PresetStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PresetStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PresetStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PresetStepMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PresetStepMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PresetStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPresetID sets the "preset_id" field.
func (m *PresetStepMutation) SetPresetID(i int) {
	m.preset = &i
}

// PresetID returns the value of the "preset_id" field in the mutation.
func (m *PresetStepMutation) PresetID() (r int, exists bool) {
	v := m.preset
	if v == nil {
		return
	}
	return *v, true
}

// OldPresetID returns the old "preset_id" field's value of the PresetStep entity.
// If the PresetStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetStepMutation) OldPresetID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresetID: %w", err)
	}
	return oldValue.PresetID, nil
}

// ResetPresetID resets all changes to the "preset_id" field.
func (m *PresetStepMutation) ResetPresetID() {
	m.preset = nil
}

// SetStepOrder sets the "step_order" field.
func (m *PresetStepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *PresetStepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the PresetStep entity.
// If the PresetStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetStepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *PresetStepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *PresetStepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *PresetStepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetMethod sets the "method" field.
func (m *PresetStepMutation) SetMethod(pr presetstep.Method) {
	m.method = &pr
}

// Method returns the value of the "method" field in the mutation.
func (m *PresetStepMutation) Method() (r presetstep.Method, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the PresetStep entity.
// If the PresetStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetStepMutation) OldMethod(ctx context.Context) (v presetstep.Method, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *PresetStepMutation) ResetMethod() {
	m.method = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *PresetStepMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *PresetStepMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the PresetStep entity.
// If the PresetStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetStepMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *PresetStepMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *PresetStepMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *PresetStepMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetAssigneeRule sets the "assignee_rule" field.
func (m *PresetStepMutation) SetAssigneeRule(pr presetstep.AssigneeRule) {
	m.assignee_rule = &pr
}

// AssigneeRule returns the value of the "assignee_rule" field in the mutation.
func (m *PresetStepMutation) AssigneeRule() (r presetstep.AssigneeRule, exists bool) {
	v := m.assignee_rule
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeRule returns the old "assignee_rule" field's value of the PresetStep entity.
// If the PresetStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetStepMutation) OldAssigneeRule(ctx context.Context) (v presetstep.AssigneeRule, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeRule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeRule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeRule: %w", err)
	}
	return oldValue.AssigneeRule, nil
}

// ResetAssigneeRule resets all changes to the "assignee_rule" field.
func (m *PresetStepMutation) ResetAssigneeRule() {
	m.assignee_rule = nil
}

// SetAssigneeID sets the "assignee_id" field.
func (m *PresetStepMutation) SetAssigneeID(i int) {
	m.assignee_id = &i
	m.addassignee_id = nil
}

// AssigneeID returns the value of the "assignee_id" field in the mutation.
func (m *PresetStepMutation) AssigneeID() (r int, exists bool) {
	v := m.assignee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeID returns the old "assignee_id" field's value of the PresetStep entity.
// If the PresetStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetStepMutation) OldAssigneeID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeID: %w", err)
	}
	return oldValue.AssigneeID, nil
}

// AddAssigneeID adds i to the "assignee_id" field.
func (m *PresetStepMutation) AddAssigneeID(i int) {
	if m.addassignee_id != nil {
		*m.addassignee_id += i
	} else {
		m.addassignee_id = &i
	}
}

// AddedAssigneeID returns the value that was added to the "assignee_id" field in this mutation.
func (m *PresetStepMutation) AddedAssigneeID() (r int, exists bool) {
	v := m.addassignee_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (m *PresetStepMutation) ClearAssigneeID() {
	m.assignee_id = nil
	m.addassignee_id = nil
	m.clearedFields[presetstep.FieldAssigneeID] = struct{}{}
}

// AssigneeIDCleared returns if the "assignee_id" field was cleared in this mutation.
func (m *PresetStepMutation) AssigneeIDCleared() bool {
	_, ok := m.clearedFields[presetstep.FieldAssigneeID]
	return ok
}

// ResetAssigneeID resets all changes to the "assignee_id" field.
func (m *PresetStepMutation) ResetAssigneeID() {
	m.assignee_id = nil
	m.addassignee_id = nil
	delete(m.clearedFields, presetstep.FieldAssigneeID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PresetStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PresetStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PresetStep entity.
// If the PresetStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresetStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PresetStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPreset clears the "preset" edge to the Preset entity.
func (m *PresetStepMutation) ClearPreset() {
	m.clearedpreset = true
	m.clearedFields[presetstep.FieldPresetID] = struct{}{}
}

// PresetCleared reports if the "preset" edge to the Preset entity was cleared.
func (m *PresetStepMutation) PresetCleared() bool {
	return m.clearedpreset
}

// PresetIDs returns the "preset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PresetID instead. It exists only for internal usage by the builders.
func (m *PresetStepMutation) PresetIDs() (ids []int) {
	if id := m.preset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPreset resets all changes to the "preset" edge.
func (m *PresetStepMutation) ResetPreset() {
	m.preset = nil
	m.clearedpreset = false
}

// Where appends a list predicates to the PresetStepMutation builder.
func (m *PresetStepMutation) Where(ps ...predicate.PresetStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PresetStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PresetStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PresetStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PresetStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PresetStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PresetStep).
func (m *PresetStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PresetStepMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.preset != nil {
		fields = append(fields, presetstep.FieldPresetID)
	}
	if m.step_order != nil {
		fields = append(fields, presetstep.FieldStepOrder)
	}
	if m.method != nil {
		fields = append(fields, presetstep.FieldMethod)
	}
	if m.interval_days != nil {
		fields = append(fields, presetstep.FieldIntervalDays)
	}
	if m.assignee_rule != nil {
		fields = append(fields, presetstep.FieldAssigneeRule)
	}
	if m.assignee_id != nil {
		fields = append(fields, presetstep.FieldAssigneeID)
	}
	if m.created_at != nil {
		fields = append(fields, presetstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PresetStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case presetstep.FieldPresetID:
		return m.PresetID()
	case presetstep.FieldStepOrder:
		return m.StepOrder()
	case presetstep.FieldMethod:
		return m.Method()
	case presetstep.FieldIntervalDays:
		return m.IntervalDays()
	case presetstep.FieldAssigneeRule:
		return m.AssigneeRule()
	case presetstep.FieldAssigneeID:
		return m.AssigneeID()
	case presetstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PresetStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case presetstep.FieldPresetID:
		return m.OldPresetID(ctx)
	case presetstep.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case presetstep.FieldMethod:
		return m.OldMethod(ctx)
	case presetstep.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case presetstep.FieldAssigneeRule:
		return m.OldAssigneeRule(ctx)
	case presetstep.FieldAssigneeID:
		return m.OldAssigneeID(ctx)
	case presetstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PresetStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PresetStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case presetstep.FieldPresetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresetID(v)
		return nil
	case presetstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case presetstep.FieldMethod:
		v, ok := value.(presetstep.Method)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case presetstep.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case presetstep.FieldAssigneeRule:
		v, ok := value.(presetstep.AssigneeRule)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeRule(v)
		return nil
	case presetstep.FieldAssigneeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeID(v)
		return nil
	case presetstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PresetStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PresetStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, presetstep.FieldStepOrder)
	}
	if m.addinterval_days != nil {
		fields = append(fields, presetstep.FieldIntervalDays)
	}
	if m.addassignee_id != nil {
		fields = append(fields, presetstep.FieldAssigneeID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PresetStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case presetstep.FieldStepOrder:
		return m.AddedStepOrder()
	case presetstep.FieldIntervalDays:
		return m.AddedIntervalDays()
	case presetstep.FieldAssigneeID:
		return m.AddedAssigneeID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PresetStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case presetstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	case presetstep.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case presetstep.FieldAssigneeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssigneeID(v)
		return nil
	}
	return fmt.Errorf("unknown PresetStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PresetStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(presetstep.FieldAssigneeID) {
		fields = append(fields, presetstep.FieldAssigneeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PresetStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PresetStepMutation) ClearField(name string) error {
	switch name {
	case presetstep.FieldAssigneeID:
		m.ClearAssigneeID()
		return nil
	}
	return fmt.Errorf("unknown PresetStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PresetStepMutation) ResetField(name string) error {
	switch name {
	case presetstep.FieldPresetID:
		m.ResetPresetID()
		return nil
	case presetstep.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case presetstep.FieldMethod:
		m.ResetMethod()
		return nil
	case presetstep.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case presetstep.FieldAssigneeRule:
		m.ResetAssigneeRule()
		return nil
	case presetstep.FieldAssigneeID:
		m.ResetAssigneeID()
		return nil
	case presetstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PresetStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PresetStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.preset != nil {
		edges = append(edges, presetstep.EdgePreset)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PresetStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case presetstep.EdgePreset:
		if id := m.preset; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PresetStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PresetStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PresetStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpreset {
		edges = append(edges, presetstep.EdgePreset)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PresetStepMutation) EdgeCleared(name string) bool {
	switch name {
	case presetstep.EdgePreset:
		return m.clearedpreset
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PresetStepMutation) ClearEdge(name string) error {
	switch name {
	case presetstep.EdgePreset:
		m.ClearPreset()
		return nil
	}
	return fmt.Errorf("unknown PresetStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PresetStepMutation) ResetEdge(name string) error {
	switch name {
	case presetstep.EdgePreset:
		m.ResetPreset()
		return nil
	}
	return fmt.Errorf("unknown PresetStep edge %s", name)
}

// SubscriptionMutation represents an operation that mutates the Subscription nodes in the graph.
type SubscriptionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	entity_type     *subscription.EntityType
	entity_id       *int
	addentity_id    *int
	entity_name     *string
	entity_phone    *string
	steps           *[]domain.TemplateStep
	appendsteps     []domain.TemplateStep
	cycle_behavior  *subscription.CycleBehavior
	assigned_to     *int
	addassigned_to  *int
	status          *subscription.Status
	cycle_count     *int
	addcycle_count  *int
	max_cycles      *int
	addmax_cycles   *int
	current_step    *int
	addcurrent_step *int
	pause_until     *time.Time
	pause_reason    *string
	skip_weekends   *bool
	started_at      *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	preset          *int
	clearedpreset   bool
	touches         map[int]struct{}
	removedtouches  map[int]struct{}
	clearedtouches  bool
	done            bool
	oldValue        func(context.Context) (*Subscription, error)
	predicates      []predicate.Subscription
}

var _ ent.Mutation = (*SubscriptionMutation)(nil)

// subscriptionOption allows management of the mutation configuration using functional options.
type subscriptionOption func(*SubscriptionMutation)

// newSubscriptionMutation creates new mutation for the Subscription entity.
func newSubscriptionMutation(c config, op Op, opts ...subscriptionOption) *SubscriptionMutation {
	m := &SubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubscriptionID sets the ID field of the mutation.
func withSubscriptionID(id int) subscriptionOption {
	return func(m *SubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Subscription
		)
		m.oldValue = func(ctx context.Context) (*Subscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubscription sets the old Subscription of the mutation.
func withSubscription(node *Subscription) subscriptionOption {
	return func(m *SubscriptionMutation) {
		m.oldValue = func(context.Context) (*Subscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubscriptionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubscriptionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityType sets the "entity_type" field.
func (m *SubscriptionMutation) SetEntityType(st subscription.EntityType) {
	m.entity_type = &st
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *SubscriptionMutation) EntityType() (r subscription.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldEntityType(ctx context.Context) (v subscription.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *SubscriptionMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *SubscriptionMutation) SetEntityID(i int) {
	m.entity_id = &i
	m.addentity_id = nil
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *SubscriptionMutation) EntityID() (r int, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldEntityID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// AddEntityID adds i to the "entity_id" field.
func (m *SubscriptionMutation) AddEntityID(i int) {
	if m.addentity_id != nil {
		*m.addentity_id += i
	} else {
		m.addentity_id = &i
	}
}

// AddedEntityID returns the value that was added to the "entity_id" field in this mutation.
func (m *SubscriptionMutation) AddedEntityID() (r int, exists bool) {
	v := m.addentity_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *SubscriptionMutation) ResetEntityID() {
	m.entity_id = nil
	m.addentity_id = nil
}

// SetEntityName sets the "entity_name" field.
func (m *SubscriptionMutation) SetEntityName(s string) {
	m.entity_name = &s
}

// EntityName returns the value of the "entity_name" field in the mutation.
func (m *SubscriptionMutation) EntityName() (r string, exists bool) {
	v := m.entity_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityName returns the old "entity_name" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldEntityName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityName: %w", err)
	}
	return oldValue.EntityName, nil
}

// ClearEntityName clears the value of the "entity_name" field.
func (m *SubscriptionMutation) ClearEntityName() {
	m.entity_name = nil
	m.clearedFields[subscription.FieldEntityName] = struct{}{}
}

// EntityNameCleared returns if the "entity_name" field was cleared in this mutation.
func (m *SubscriptionMutation) EntityNameCleared() bool {
	_, ok := m.clearedFields[subscription.FieldEntityName]
	return ok
}

// ResetEntityName resets all changes to the "entity_name" field.
func (m *SubscriptionMutation) ResetEntityName() {
	m.entity_name = nil
	delete(m.clearedFields, subscription.FieldEntityName)
}

// SetEntityPhone sets the "entity_phone" field.
func (m *SubscriptionMutation) SetEntityPhone(s string) {
	m.entity_phone = &s
}

// EntityPhone returns the value of the "entity_phone" field in the mutation.
func (m *SubscriptionMutation) EntityPhone() (r string, exists bool) {
	v := m.entity_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityPhone returns the old "entity_phone" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldEntityPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityPhone: %w", err)
	}
	return oldValue.EntityPhone, nil
}

// ClearEntityPhone clears the value of the "entity_phone" field.
func (m *SubscriptionMutation) ClearEntityPhone() {
	m.entity_phone = nil
	m.clearedFields[subscription.FieldEntityPhone] = struct{}{}
}

// EntityPhoneCleared returns if the "entity_phone" field was cleared in this mutation.
func (m *SubscriptionMutation) EntityPhoneCleared() bool {
	_, ok := m.clearedFields[subscription.FieldEntityPhone]
	return ok
}

// ResetEntityPhone resets all changes to the "entity_phone" field.
func (m *SubscriptionMutation) ResetEntityPhone() {
	m.entity_phone = nil
	delete(m.clearedFields, subscription.FieldEntityPhone)
}

// SetPresetID sets the "preset_id" field.
func (m *SubscriptionMutation) SetPresetID(i int) {
	m.preset = &i
}

// PresetID returns the value of the "preset_id" field in the mutation.
func (m *SubscriptionMutation) PresetID() (r int, exists bool) {
	v := m.preset
	if v == nil {
		return
	}
	return *v, true
}

// OldPresetID returns the old "preset_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldPresetID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresetID: %w", err)
	}
	return oldValue.PresetID, nil
}

// ClearPresetID clears the value of the "preset_id" field.
func (m *SubscriptionMutation) ClearPresetID() {
	m.preset = nil
	m.clearedFields[subscription.FieldPresetID] = struct{}{}
}

// PresetIDCleared returns if the "preset_id" field was cleared in this mutation.
func (m *SubscriptionMutation) PresetIDCleared() bool {
	_, ok := m.clearedFields[subscription.FieldPresetID]
	return ok
}

// ResetPresetID resets all changes to the "preset_id" field.
func (m *SubscriptionMutation) ResetPresetID() {
	m.preset = nil
	delete(m.clearedFields, subscription.FieldPresetID)
}

// SetSteps sets the "steps" field.
func (m *SubscriptionMutation) SetSteps(ds []domain.TemplateStep) {
	m.steps = &ds
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *SubscriptionMutation) Steps() (r []domain.TemplateStep, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldSteps(ctx context.Context) (v []domain.TemplateStep, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds ds to the "steps" field.
func (m *SubscriptionMutation) AppendSteps(ds []domain.TemplateStep) {
	m.appendsteps = append(m.appendsteps, ds...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *SubscriptionMutation) AppendedSteps() ([]domain.TemplateStep, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ResetSteps resets all changes to the "steps" field.
func (m *SubscriptionMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
}

// SetCycleBehavior sets the "cycle_behavior" field.
func (m *SubscriptionMutation) SetCycleBehavior(sb subscription.CycleBehavior) {
	m.cycle_behavior = &sb
}

// CycleBehavior returns the value of the "cycle_behavior" field in the mutation.
func (m *SubscriptionMutation) CycleBehavior() (r subscription.CycleBehavior, exists bool) {
	v := m.cycle_behavior
	if v == nil {
		return
	}
	return *v, true
}

// OldCycleBehavior returns the old "cycle_behavior" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCycleBehavior(ctx context.Context) (v subscription.CycleBehavior, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycleBehavior is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycleBehavior requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycleBehavior: %w", err)
	}
	return oldValue.CycleBehavior, nil
}

// ResetCycleBehavior resets all changes to the "cycle_behavior" field.
func (m *SubscriptionMutation) ResetCycleBehavior() {
	m.cycle_behavior = nil
}

// SetAssignedTo sets the "assigned_to" field.
func (m *SubscriptionMutation) SetAssignedTo(i int) {
	m.assigned_to = &i
	m.addassigned_to = nil
}

// AssignedTo returns the value of the "assigned_to" field in the mutation.
func (m *SubscriptionMutation) AssignedTo() (r int, exists bool) {
	v := m.assigned_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedTo returns the old "assigned_to" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldAssignedTo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedTo: %w", err)
	}
	return oldValue.AssignedTo, nil
}

// AddAssignedTo adds i to the "assigned_to" field.
func (m *SubscriptionMutation) AddAssignedTo(i int) {
	if m.addassigned_to != nil {
		*m.addassigned_to += i
	} else {
		m.addassigned_to = &i
	}
}

// AddedAssignedTo returns the value that was added to the "assigned_to" field in this mutation.
func (m *SubscriptionMutation) AddedAssignedTo() (r int, exists bool) {
	v := m.addassigned_to
	if v == nil {
		return
	}
	return *v, true
}

// ResetAssignedTo resets all changes to the "assigned_to" field.
func (m *SubscriptionMutation) ResetAssignedTo() {
	m.assigned_to = nil
	m.addassigned_to = nil
}

// SetStatus sets the "status" field.
func (m *SubscriptionMutation) SetStatus(s subscription.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubscriptionMutation) Status() (r subscription.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldStatus(ctx context.Context) (v subscription.Status, err error) {
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
func (m *SubscriptionMutation) ResetStatus() {
	m.status = nil
}

// SetCycleCount sets the "cycle_count" field.
func (m *SubscriptionMutation) SetCycleCount(i int) {
	m.cycle_count = &i
	m.addcycle_count = nil
}

// CycleCount returns the value of the "cycle_count" field in the mutation.
func (m *SubscriptionMutation) CycleCount() (r int, exists bool) {
	v := m.cycle_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCycleCount returns the old "cycle_count" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCycleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycleCount: %w", err)
	}
	return oldValue.CycleCount, nil
}

// AddCycleCount adds i to the "cycle_count" field.
func (m *SubscriptionMutation) AddCycleCount(i int) {
	if m.addcycle_count != nil {
		*m.addcycle_count += i
	} else {
		m.addcycle_count = &i
	}
}

// AddedCycleCount returns the value that was added to the "cycle_count" field in this mutation.
func (m *SubscriptionMutation) AddedCycleCount() (r int, exists bool) {
	v := m.addcycle_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycleCount resets all changes to the "cycle_count" field.
func (m *SubscriptionMutation) ResetCycleCount() {
	m.cycle_count = nil
	m.addcycle_count = nil
}

// SetMaxCycles sets the "max_cycles" field.
func (m *SubscriptionMutation) SetMaxCycles(i int) {
	m.max_cycles = &i
	m.addmax_cycles = nil
}

// MaxCycles returns the value of the "max_cycles" field in the mutation.
func (m *SubscriptionMutation) MaxCycles() (r int, exists bool) {
	v := m.max_cycles
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxCycles returns the old "max_cycles" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldMaxCycles(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxCycles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxCycles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxCycles: %w", err)
	}
	return oldValue.MaxCycles, nil
}

// AddMaxCycles adds i to the "max_cycles" field.
func (m *SubscriptionMutation) AddMaxCycles(i int) {
	if m.addmax_cycles != nil {
		*m.addmax_cycles += i
	} else {
		m.addmax_cycles = &i
	}
}

// AddedMaxCycles returns the value that was added to the "max_cycles" field in this mutation.
func (m *SubscriptionMutation) AddedMaxCycles() (r int, exists bool) {
	v := m.addmax_cycles
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxCycles clears the value of the "max_cycles" field.
func (m *SubscriptionMutation) ClearMaxCycles() {
	m.max_cycles = nil
	m.addmax_cycles = nil
	m.clearedFields[subscription.FieldMaxCycles] = struct{}{}
}

// MaxCyclesCleared returns if the "max_cycles" field was cleared in this mutation.
func (m *SubscriptionMutation) MaxCyclesCleared() bool {
	_, ok := m.clearedFields[subscription.FieldMaxCycles]
	return ok
}

// ResetMaxCycles resets all changes to the "max_cycles" field.
func (m *SubscriptionMutation) ResetMaxCycles() {
	m.max_cycles = nil
	m.addmax_cycles = nil
	delete(m.clearedFields, subscription.FieldMaxCycles)
}

// SetCurrentStep sets the "current_step" field.
func (m *SubscriptionMutation) SetCurrentStep(i int) {
	m.current_step = &i
	m.addcurrent_step = nil
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *SubscriptionMutation) CurrentStep() (r int, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCurrentStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// AddCurrentStep adds i to the "current_step" field.
func (m *SubscriptionMutation) AddCurrentStep(i int) {
	if m.addcurrent_step != nil {
		*m.addcurrent_step += i
	} else {
		m.addcurrent_step = &i
	}
}

// AddedCurrentStep returns the value that was added to the "current_step" field in this mutation.
func (m *SubscriptionMutation) AddedCurrentStep() (r int, exists bool) {
	v := m.addcurrent_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *SubscriptionMutation) ResetCurrentStep() {
	m.current_step = nil
	m.addcurrent_step = nil
}

// SetPauseUntil sets the "pause_until" field.
func (m *SubscriptionMutation) SetPauseUntil(t time.Time) {
	m.pause_until = &t
}

// PauseUntil returns the value of the "pause_until" field in the mutation.
func (m *SubscriptionMutation) PauseUntil() (r time.Time, exists bool) {
	v := m.pause_until
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseUntil returns the old "pause_until" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldPauseUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseUntil: %w", err)
	}
	return oldValue.PauseUntil, nil
}

// ClearPauseUntil clears the value of the "pause_until" field.
func (m *SubscriptionMutation) ClearPauseUntil() {
	m.pause_until = nil
	m.clearedFields[subscription.FieldPauseUntil] = struct{}{}
}

// PauseUntilCleared returns if the "pause_until" field was cleared in this mutation.
func (m *SubscriptionMutation) PauseUntilCleared() bool {
	_, ok := m.clearedFields[subscription.FieldPauseUntil]
	return ok
}

// ResetPauseUntil resets all changes to the "pause_until" field.
func (m *SubscriptionMutation) ResetPauseUntil() {
	m.pause_until = nil
	delete(m.clearedFields, subscription.FieldPauseUntil)
}

// SetPauseReason sets the "pause_reason" field.
func (m *SubscriptionMutation) SetPauseReason(s string) {
	m.pause_reason = &s
}

// PauseReason returns the value of the "pause_reason" field in the mutation.
func (m *SubscriptionMutation) PauseReason() (r string, exists bool) {
	v := m.pause_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseReason returns the old "pause_reason" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldPauseReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseReason: %w", err)
	}
	return oldValue.PauseReason, nil
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (m *SubscriptionMutation) ClearPauseReason() {
	m.pause_reason = nil
	m.clearedFields[subscription.FieldPauseReason] = struct{}{}
}

// PauseReasonCleared returns if the "pause_reason" field was cleared in this mutation.
func (m *SubscriptionMutation) PauseReasonCleared() bool {
	_, ok := m.clearedFields[subscription.FieldPauseReason]
	return ok
}

// ResetPauseReason resets all changes to the "pause_reason" field.
func (m *SubscriptionMutation) ResetPauseReason() {
	m.pause_reason = nil
	delete(m.clearedFields, subscription.FieldPauseReason)
}

// SetSkipWeekends sets the "skip_weekends" field.
func (m *SubscriptionMutation) SetSkipWeekends(b bool) {
	m.skip_weekends = &b
}

// SkipWeekends returns the value of the "skip_weekends" field in the mutation.
func (m *SubscriptionMutation) SkipWeekends() (r bool, exists bool) {
	v := m.skip_weekends
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipWeekends returns the old "skip_weekends" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldSkipWeekends(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipWeekends is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipWeekends requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipWeekends: %w", err)
	}
	return oldValue.SkipWeekends, nil
}

// ResetSkipWeekends resets all changes to the "skip_weekends" field.
func (m *SubscriptionMutation) ResetSkipWeekends() {
	m.skip_weekends = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SubscriptionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SubscriptionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SubscriptionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubscriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubscriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SubscriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPreset clears the "preset" edge to the Preset entity.
func (m *SubscriptionMutation) ClearPreset() {
	m.clearedpreset = true
	m.clearedFields[subscription.FieldPresetID] = struct{}{}
}

// PresetCleared reports if the "preset" edge to the Preset entity was cleared.
func (m *SubscriptionMutation) PresetCleared() bool {
	return m.PresetIDCleared() || m.clearedpreset
}

// PresetIDs returns the "preset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PresetID instead. It exists only for internal usage by the builders.
func (m *SubscriptionMutation) PresetIDs() (ids []int) {
	if id := m.preset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPreset resets all changes to the "preset" edge.
func (m *SubscriptionMutation) ResetPreset() {
	m.preset = nil
	m.clearedpreset = false
}

// AddTouchIDs adds the "touches" edge to the Touch entity by ids.
func (m *SubscriptionMutation) AddTouchIDs(ids ...int) {
	if m.touches == nil {
		m.touches = make(map[int]struct{})
	}
	for i := range ids {
		m.touches[ids[i]] = struct{}{}
	}
}

// ClearTouches clears the "touches" edge to the Touch entity.
func (m *SubscriptionMutation) ClearTouches() {
	m.clearedtouches = true
}

// TouchesCleared reports if the "touches" edge to the Touch entity was cleared.
func (m *SubscriptionMutation) TouchesCleared() bool {
	return m.clearedtouches
}

// RemoveTouchIDs removes the "touches" edge to the Touch entity by IDs.
func (m *SubscriptionMutation) RemoveTouchIDs(ids ...int) {
	if m.removedtouches == nil {
		m.removedtouches = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.touches, ids[i])
		m.removedtouches[ids[i]] = struct{}{}
	}
}

// RemovedTouches returns the removed IDs of the "touches" edge to the Touch entity.
func (m *SubscriptionMutation) RemovedTouchesIDs() (ids []int) {
	for id := range m.removedtouches {
		ids = append(ids, id)
	}
	return
}

// TouchesIDs returns the "touches" edge IDs in the mutation.
func (m *SubscriptionMutation) TouchesIDs() (ids []int) {
	for id := range m.touches {
		ids = append(ids, id)
	}
	return
}

// ResetTouches resets all changes to the "touches" edge.
func (m *SubscriptionMutation) ResetTouches() {
	m.touches = nil
	m.clearedtouches = false
	m.removedtouches = nil
}

// Where appends a list predicates to the SubscriptionMutation builder.
func (m *SubscriptionMutation) Where(ps ...predicate.Subscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subscription).
func (m *SubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.entity_type != nil {
		fields = append(fields, subscription.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, subscription.FieldEntityID)
	}
	if m.entity_name != nil {
		fields = append(fields, subscription.FieldEntityName)
	}
	if m.entity_phone != nil {
		fields = append(fields, subscription.FieldEntityPhone)
	}
	if m.preset != nil {
		fields = append(fields, subscription.FieldPresetID)
	}
	if m.steps != nil {
		fields = append(fields, subscription.FieldSteps)
	}
	if m.cycle_behavior != nil {
		fields = append(fields, subscription.FieldCycleBehavior)
	}
	if m.assigned_to != nil {
		fields = append(fields, subscription.FieldAssignedTo)
	}
	if m.status != nil {
		fields = append(fields, subscription.FieldStatus)
	}
	if m.cycle_count != nil {
		fields = append(fields, subscription.FieldCycleCount)
	}
	if m.max_cycles != nil {
		fields = append(fields, subscription.FieldMaxCycles)
	}
	if m.current_step != nil {
		fields = append(fields, subscription.FieldCurrentStep)
	}
	if m.pause_until != nil {
		fields = append(fields, subscription.FieldPauseUntil)
	}
	if m.pause_reason != nil {
		fields = append(fields, subscription.FieldPauseReason)
	}
	if m.skip_weekends != nil {
		fields = append(fields, subscription.FieldSkipWeekends)
	}
	if m.started_at != nil {
		fields = append(fields, subscription.FieldStartedAt)
	}
	if m.created_at != nil {
		fields = append(fields, subscription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subscription.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subscription.FieldEntityType:
		return m.EntityType()
	case subscription.FieldEntityID:
		return m.EntityID()
	case subscription.FieldEntityName:
		return m.EntityName()
	case subscription.FieldEntityPhone:
		return m.EntityPhone()
	case subscription.FieldPresetID:
		return m.PresetID()
	case subscription.FieldSteps:
		return m.Steps()
	case subscription.FieldCycleBehavior:
		return m.CycleBehavior()
	case subscription.FieldAssignedTo:
		return m.AssignedTo()
	case subscription.FieldStatus:
		return m.Status()
	case subscription.FieldCycleCount:
		return m.CycleCount()
	case subscription.FieldMaxCycles:
		return m.MaxCycles()
	case subscription.FieldCurrentStep:
		return m.CurrentStep()
	case subscription.FieldPauseUntil:
		return m.PauseUntil()
	case subscription.FieldPauseReason:
		return m.PauseReason()
	case subscription.FieldSkipWeekends:
		return m.SkipWeekends()
	case subscription.FieldStartedAt:
		return m.StartedAt()
	case subscription.FieldCreatedAt:
		return m.CreatedAt()
	case subscription.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subscription.FieldEntityType:
		return m.OldEntityType(ctx)
	case subscription.FieldEntityID:
		return m.OldEntityID(ctx)
	case subscription.FieldEntityName:
		return m.OldEntityName(ctx)
	case subscription.FieldEntityPhone:
		return m.OldEntityPhone(ctx)
	case subscription.FieldPresetID:
		return m.OldPresetID(ctx)
	case subscription.FieldSteps:
		return m.OldSteps(ctx)
	case subscription.FieldCycleBehavior:
		return m.OldCycleBehavior(ctx)
	case subscription.FieldAssignedTo:
		return m.OldAssignedTo(ctx)
	case subscription.FieldStatus:
		return m.OldStatus(ctx)
	case subscription.FieldCycleCount:
		return m.OldCycleCount(ctx)
	case subscription.FieldMaxCycles:
		return m.OldMaxCycles(ctx)
	case subscription.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case subscription.FieldPauseUntil:
		return m.OldPauseUntil(ctx)
	case subscription.FieldPauseReason:
		return m.OldPauseReason(ctx)
	case subscription.FieldSkipWeekends:
		return m.OldSkipWeekends(ctx)
	case subscription.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case subscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subscription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subscription.FieldEntityType:
		v, ok := value.(subscription.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case subscription.FieldEntityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case subscription.FieldEntityName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityName(v)
		return nil
	case subscription.FieldEntityPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityPhone(v)
		return nil
	case subscription.FieldPresetID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresetID(v)
		return nil
	case subscription.FieldSteps:
		v, ok := value.([]domain.TemplateStep)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case subscription.FieldCycleBehavior:
		v, ok := value.(subscription.CycleBehavior)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycleBehavior(v)
		return nil
	case subscription.FieldAssignedTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedTo(v)
		return nil
	case subscription.FieldStatus:
		v, ok := value.(subscription.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subscription.FieldCycleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycleCount(v)
		return nil
	case subscription.FieldMaxCycles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxCycles(v)
		return nil
	case subscription.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case subscription.FieldPauseUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseUntil(v)
		return nil
	case subscription.FieldPauseReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseReason(v)
		return nil
	case subscription.FieldSkipWeekends:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipWeekends(v)
		return nil
	case subscription.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case subscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subscription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubscriptionMutation) AddedFields() []string {
	var fields []string
	if m.addentity_id != nil {
		fields = append(fields, subscription.FieldEntityID)
	}
	if m.addassigned_to != nil {
		fields = append(fields, subscription.FieldAssignedTo)
	}
	if m.addcycle_count != nil {
		fields = append(fields, subscription.FieldCycleCount)
	}
	if m.addmax_cycles != nil {
		fields = append(fields, subscription.FieldMaxCycles)
	}
	if m.addcurrent_step != nil {
		fields = append(fields, subscription.FieldCurrentStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subscription.FieldEntityID:
		return m.AddedEntityID()
	case subscription.FieldAssignedTo:
		return m.AddedAssignedTo()
	case subscription.FieldCycleCount:
		return m.AddedCycleCount()
	case subscription.FieldMaxCycles:
		return m.AddedMaxCycles()
	case subscription.FieldCurrentStep:
		return m.AddedCurrentStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subscription.FieldEntityID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntityID(v)
		return nil
	case subscription.FieldAssignedTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssignedTo(v)
		return nil
	case subscription.FieldCycleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycleCount(v)
		return nil
	case subscription.FieldMaxCycles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxCycles(v)
		return nil
	case subscription.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStep(v)
		return nil
	}
	return fmt.Errorf("unknown Subscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subscription.FieldEntityName) {
		fields = append(fields, subscription.FieldEntityName)
	}
	if m.FieldCleared(subscription.FieldEntityPhone) {
		fields = append(fields, subscription.FieldEntityPhone)
	}
	if m.FieldCleared(subscription.FieldPresetID) {
		fields = append(fields, subscription.FieldPresetID)
	}
	if m.FieldCleared(subscription.FieldMaxCycles) {
		fields = append(fields, subscription.FieldMaxCycles)
	}
	if m.FieldCleared(subscription.FieldPauseUntil) {
		fields = append(fields, subscription.FieldPauseUntil)
	}
	if m.FieldCleared(subscription.FieldPauseReason) {
		fields = append(fields, subscription.FieldPauseReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubscriptionMutation) ClearField(name string) error {
	switch name {
	case subscription.FieldEntityName:
		m.ClearEntityName()
		return nil
	case subscription.FieldEntityPhone:
		m.ClearEntityPhone()
		return nil
	case subscription.FieldPresetID:
		m.ClearPresetID()
		return nil
	case subscription.FieldMaxCycles:
		m.ClearMaxCycles()
		return nil
	case subscription.FieldPauseUntil:
		m.ClearPauseUntil()
		return nil
	case subscription.FieldPauseReason:
		m.ClearPauseReason()
		return nil
	}
	return fmt.Errorf("unknown Subscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubscriptionMutation) ResetField(name string) error {
	switch name {
	case subscription.FieldEntityType:
		m.ResetEntityType()
		return nil
	case subscription.FieldEntityID:
		m.ResetEntityID()
		return nil
	case subscription.FieldEntityName:
		m.ResetEntityName()
		return nil
	case subscription.FieldEntityPhone:
		m.ResetEntityPhone()
		return nil
	case subscription.FieldPresetID:
		m.ResetPresetID()
		return nil
	case subscription.FieldSteps:
		m.ResetSteps()
		return nil
	case subscription.FieldCycleBehavior:
		m.ResetCycleBehavior()
		return nil
	case subscription.FieldAssignedTo:
		m.ResetAssignedTo()
		return nil
	case subscription.FieldStatus:
		m.ResetStatus()
		return nil
	case subscription.FieldCycleCount:
		m.ResetCycleCount()
		return nil
	case subscription.FieldMaxCycles:
		m.ResetMaxCycles()
		return nil
	case subscription.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case subscription.FieldPauseUntil:
		m.ResetPauseUntil()
		return nil
	case subscription.FieldPauseReason:
		m.ResetPauseReason()
		return nil
	case subscription.FieldSkipWeekends:
		m.ResetSkipWeekends()
		return nil
	case subscription.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case subscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subscription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.preset != nil {
		edges = append(edges, subscription.EdgePreset)
	}
	if m.touches != nil {
		edges = append(edges, subscription.EdgeTouches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subscription.EdgePreset:
		if id := m.preset; id != nil {
			return []ent.Value{*id}
		}
	case subscription.EdgeTouches:
		ids := make([]ent.Value, 0, len(m.touches))
		for id := range m.touches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtouches != nil {
		edges = append(edges, subscription.EdgeTouches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubscriptionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case subscription.EdgeTouches:
		ids := make([]ent.Value, 0, len(m.removedtouches))
		for id := range m.removedtouches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpreset {
		edges = append(edges, subscription.EdgePreset)
	}
	if m.clearedtouches {
		edges = append(edges, subscription.EdgeTouches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case subscription.EdgePreset:
		return m.clearedpreset
	case subscription.EdgeTouches:
		return m.clearedtouches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubscriptionMutation) ClearEdge(name string) error {
	switch name {
	case subscription.EdgePreset:
		m.ClearPreset()
		return nil
	}
	return fmt.Errorf("unknown Subscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubscriptionMutation) ResetEdge(name string) error {
	switch name {
	case subscription.EdgePreset:
		m.ResetPreset()
		return nil
	case subscription.EdgeTouches:
		m.ResetTouches()
		return nil
	}
	return fmt.Errorf("unknown Subscription edge %s", name)
}

// TouchMutation represents an operation that mutates the Touch nodes in the graph.
type TouchMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	cycle               *int
	addcycle            *int
	sequence_index      *int
	addsequence_index   *int
	method              *touch.Method
	scheduled_date      *time.Time
	scheduled_time      *string
	assigned_to         *int
	addassigned_to      *int
	status              *touch.Status
	outcome             *string
	outcome_notes       *string
	linked_task_id      *string
	linked_reminder_id  *string
	resolved_at         *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	subscription        *int
	clearedsubscription bool
	logs                map[int]struct{}
	removedlogs         map[int]struct{}
	clearedlogs         bool
	done                bool
	oldValue            func(context.Context) (*Touch, error)
	predicates          []predicate.Touch
}

var _ ent.Mutation = (*TouchMutation)(nil)

// touchOption allows management of the mutation configuration using functional options.
type touchOption func(*TouchMutation)

// newTouchMutation creates new mutation for the Touch entity.
func newTouchMutation(c config, op Op, opts ...touchOption) *TouchMutation {
	m := &TouchMutation{
		config:        c,
		op:            op,
		typ:           TypeTouch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTouchID sets the ID field of the mutation.
func withTouchID(id int) touchOption {
	return func(m *TouchMutation) {
		var (
			err   error
			once  sync.Once
			value *Touch
		)
		m.oldValue = func(ctx context.Context) (*Touch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Touch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTouch sets the old Touch of the mutation.
func withTouch(node *Touch) touchOption {
	return func(m *TouchMutation) {
		m.oldValue = func(context.Context) (*Touch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TouchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TouchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TouchMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TouchMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Touch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubscriptionID sets the "subscription_id" field.
func (m *TouchMutation) SetSubscriptionID(i int) {
	m.subscription = &i
}

// SubscriptionID returns the value of the "subscription_id" field in the mutation.
func (m *TouchMutation) SubscriptionID() (r int, exists bool) {
	v := m.subscription
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionID returns the old "subscription_id" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldSubscriptionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionID: %w", err)
	}
	return oldValue.SubscriptionID, nil
}

// ResetSubscriptionID resets all changes to the "subscription_id" field.
func (m *TouchMutation) ResetSubscriptionID() {
	m.subscription = nil
}

// SetCycle sets the "cycle" field.
func (m *TouchMutation) SetCycle(i int) {
	m.cycle = &i
	m.addcycle = nil
}

// Cycle returns the value of the "cycle" field in the mutation.
func (m *TouchMutation) Cycle() (r int, exists bool) {
	v := m.cycle
	if v == nil {
		return
	}
	return *v, true
}

// OldCycle returns the old "cycle" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldCycle(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycle: %w", err)
	}
	return oldValue.Cycle, nil
}

// AddCycle adds i to the "cycle" field.
func (m *TouchMutation) AddCycle(i int) {
	if m.addcycle != nil {
		*m.addcycle += i
	} else {
		m.addcycle = &i
	}
}

// AddedCycle returns the value that was added to the "cycle" field in this mutation.
func (m *TouchMutation) AddedCycle() (r int, exists bool) {
	v := m.addcycle
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycle resets all changes to the "cycle" field.
func (m *TouchMutation) ResetCycle() {
	m.cycle = nil
	m.addcycle = nil
}

// SetSequenceIndex sets the "sequence_index" field.
func (m *TouchMutation) SetSequenceIndex(i int) {
	m.sequence_index = &i
	m.addsequence_index = nil
}

// SequenceIndex returns the value of the "sequence_index" field in the mutation.
func (m *TouchMutation) SequenceIndex() (r int, exists bool) {
	v := m.sequence_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceIndex returns the old "sequence_index" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldSequenceIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceIndex: %w", err)
	}
	return oldValue.SequenceIndex, nil
}

// AddSequenceIndex adds i to the "sequence_index" field.
func (m *TouchMutation) AddSequenceIndex(i int) {
	if m.addsequence_index != nil {
		*m.addsequence_index += i
	} else {
		m.addsequence_index = &i
	}
}

// AddedSequenceIndex returns the value that was added to the "sequence_index" field in this mutation.
func (m *TouchMutation) AddedSequenceIndex() (r int, exists bool) {
	v := m.addsequence_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceIndex resets all changes to the "sequence_index" field.
func (m *TouchMutation) ResetSequenceIndex() {
	m.sequence_index = nil
	m.addsequence_index = nil
}

// SetMethod sets the "method" field.
func (m *TouchMutation) SetMethod(t touch.Method) {
	m.method = &t
}

// Method returns the value of the "method" field in the mutation.
func (m *TouchMutation) Method() (r touch.Method, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldMethod(ctx context.Context) (v touch.Method, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *TouchMutation) ResetMethod() {
	m.method = nil
}

// SetScheduledDate sets the "scheduled_date" field.
func (m *TouchMutation) SetScheduledDate(t time.Time) {
	m.scheduled_date = &t
}

// ScheduledDate returns the value of the "scheduled_date" field in the mutation.
func (m *TouchMutation) ScheduledDate() (r time.Time, exists bool) {
	v := m.scheduled_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledDate returns the old "scheduled_date" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldScheduledDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledDate: %w", err)
	}
	return oldValue.ScheduledDate, nil
}

// ResetScheduledDate resets all changes to the "scheduled_date" field.
func (m *TouchMutation) ResetScheduledDate() {
	m.scheduled_date = nil
}

// SetScheduledTime sets the "scheduled_time" field.
func (m *TouchMutation) SetScheduledTime(s string) {
	m.scheduled_time = &s
}

// ScheduledTime returns the value of the "scheduled_time" field in the mutation.
func (m *TouchMutation) ScheduledTime() (r string, exists bool) {
	v := m.scheduled_time
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledTime returns the old "scheduled_time" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldScheduledTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledTime: %w", err)
	}
	return oldValue.ScheduledTime, nil
}

// ClearScheduledTime clears the value of the "scheduled_time" field.
func (m *TouchMutation) ClearScheduledTime() {
	m.scheduled_time = nil
	m.clearedFields[touch.FieldScheduledTime] = struct{}{}
}

// ScheduledTimeCleared returns if the "scheduled_time" field was cleared in this mutation.
func (m *TouchMutation) ScheduledTimeCleared() bool {
	_, ok := m.clearedFields[touch.FieldScheduledTime]
	return ok
}

// ResetScheduledTime resets all changes to the "scheduled_time" field.
func (m *TouchMutation) ResetScheduledTime() {
	m.scheduled_time = nil
	delete(m.clearedFields, touch.FieldScheduledTime)
}

// SetAssignedTo sets the "assigned_to" field.
func (m *TouchMutation) SetAssignedTo(i int) {
	m.assigned_to = &i
	m.addassigned_to = nil
}

// AssignedTo returns the value of the "assigned_to" field in the mutation.
func (m *TouchMutation) AssignedTo() (r int, exists bool) {
	v := m.assigned_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedTo returns the old "assigned_to" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldAssignedTo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedTo: %w", err)
	}
	return oldValue.AssignedTo, nil
}

// AddAssignedTo adds i to the "assigned_to" field.
func (m *TouchMutation) AddAssignedTo(i int) {
	if m.addassigned_to != nil {
		*m.addassigned_to += i
	} else {
		m.addassigned_to = &i
	}
}

// AddedAssignedTo returns the value that was added to the "assigned_to" field in this mutation.
func (m *TouchMutation) AddedAssignedTo() (r int, exists bool) {
	v := m.addassigned_to
	if v == nil {
		return
	}
	return *v, true
}

// ResetAssignedTo resets all changes to the "assigned_to" field.
func (m *TouchMutation) ResetAssignedTo() {
	m.assigned_to = nil
	m.addassigned_to = nil
}

// SetStatus sets the "status" field.
func (m *TouchMutation) SetStatus(t touch.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TouchMutation) Status() (r touch.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldStatus(ctx context.Context) (v touch.Status, err error) {
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
func (m *TouchMutation) ResetStatus() {
	m.status = nil
}

// SetOutcome sets the "outcome" field.
func (m *TouchMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *TouchMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *TouchMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[touch.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *TouchMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[touch.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *TouchMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, touch.FieldOutcome)
}

// SetOutcomeNotes sets the "outcome_notes" field.
func (m *TouchMutation) SetOutcomeNotes(s string) {
	m.outcome_notes = &s
}

// OutcomeNotes returns the value of the "outcome_notes" field in the mutation.
func (m *TouchMutation) OutcomeNotes() (r string, exists bool) {
	v := m.outcome_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeNotes returns the old "outcome_notes" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldOutcomeNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeNotes: %w", err)
	}
	return oldValue.OutcomeNotes, nil
}

// ClearOutcomeNotes clears the value of the "outcome_notes" field.
func (m *TouchMutation) ClearOutcomeNotes() {
	m.outcome_notes = nil
	m.clearedFields[touch.FieldOutcomeNotes] = struct{}{}
}

// OutcomeNotesCleared returns if the "outcome_notes" field was cleared in this mutation.
func (m *TouchMutation) OutcomeNotesCleared() bool {
	_, ok := m.clearedFields[touch.FieldOutcomeNotes]
	return ok
}

// ResetOutcomeNotes resets all changes to the "outcome_notes" field.
func (m *TouchMutation) ResetOutcomeNotes() {
	m.outcome_notes = nil
	delete(m.clearedFields, touch.FieldOutcomeNotes)
}

// SetLinkedTaskID sets the "linked_task_id" field.
func (m *TouchMutation) SetLinkedTaskID(s string) {
	m.linked_task_id = &s
}

// LinkedTaskID returns the value of the "linked_task_id" field in the mutation.
func (m *TouchMutation) LinkedTaskID() (r string, exists bool) {
	v := m.linked_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedTaskID returns the old "linked_task_id" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldLinkedTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedTaskID: %w", err)
	}
	return oldValue.LinkedTaskID, nil
}

// ClearLinkedTaskID clears the value of the "linked_task_id" field.
func (m *TouchMutation) ClearLinkedTaskID() {
	m.linked_task_id = nil
	m.clearedFields[touch.FieldLinkedTaskID] = struct{}{}
}

// LinkedTaskIDCleared returns if the "linked_task_id" field was cleared in this mutation.
func (m *TouchMutation) LinkedTaskIDCleared() bool {
	_, ok := m.clearedFields[touch.FieldLinkedTaskID]
	return ok
}

// ResetLinkedTaskID resets all changes to the "linked_task_id" field.
func (m *TouchMutation) ResetLinkedTaskID() {
	m.linked_task_id = nil
	delete(m.clearedFields, touch.FieldLinkedTaskID)
}

// SetLinkedReminderID sets the "linked_reminder_id" field.
func (m *TouchMutation) SetLinkedReminderID(s string) {
	m.linked_reminder_id = &s
}

// LinkedReminderID returns the value of the "linked_reminder_id" field in the mutation.
func (m *TouchMutation) LinkedReminderID() (r string, exists bool) {
	v := m.linked_reminder_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedReminderID returns the old "linked_reminder_id" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldLinkedReminderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedReminderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedReminderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedReminderID: %w", err)
	}
	return oldValue.LinkedReminderID, nil
}

// ClearLinkedReminderID clears the value of the "linked_reminder_id" field.
func (m *TouchMutation) ClearLinkedReminderID() {
	m.linked_reminder_id = nil
	m.clearedFields[touch.FieldLinkedReminderID] = struct{}{}
}

// LinkedReminderIDCleared returns if the "linked_reminder_id" field was cleared in this mutation.
func (m *TouchMutation) LinkedReminderIDCleared() bool {
	_, ok := m.clearedFields[touch.FieldLinkedReminderID]
	return ok
}

// ResetLinkedReminderID resets all changes to the "linked_reminder_id" field.
func (m *TouchMutation) ResetLinkedReminderID() {
	m.linked_reminder_id = nil
	delete(m.clearedFields, touch.FieldLinkedReminderID)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *TouchMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *TouchMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *TouchMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[touch.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *TouchMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[touch.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *TouchMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, touch.FieldResolvedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TouchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TouchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TouchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TouchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TouchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Touch entity.
// If the Touch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TouchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSubscription clears the "subscription" edge to the Subscription entity.
func (m *TouchMutation) ClearSubscription() {
	m.clearedsubscription = true
	m.clearedFields[touch.FieldSubscriptionID] = struct{}{}
}

// SubscriptionCleared reports if the "subscription" edge to the Subscription entity was cleared.
func (m *TouchMutation) SubscriptionCleared() bool {
	return m.clearedsubscription
}

// SubscriptionIDs returns the "subscription" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubscriptionID instead. It exists only for internal usage by the builders.
func (m *TouchMutation) SubscriptionIDs() (ids []int) {
	if id := m.subscription; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubscription resets all changes to the "subscription" edge.
func (m *TouchMutation) ResetSubscription() {
	m.subscription = nil
	m.clearedsubscription = false
}

// AddLogIDs adds the "logs" edge to the TouchLog entity by ids.
func (m *TouchMutation) AddLogIDs(ids ...int) {
	if m.logs == nil {
		m.logs = make(map[int]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the TouchLog entity.
func (m *TouchMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the TouchLog entity was cleared.
func (m *TouchMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the TouchLog entity by IDs.
func (m *TouchMutation) RemoveLogIDs(ids ...int) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the TouchLog entity.
func (m *TouchMutation) RemovedLogsIDs() (ids []int) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *TouchMutation) LogsIDs() (ids []int) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *TouchMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// Where appends a list predicates to the TouchMutation builder.
func (m *TouchMutation) Where(ps ...predicate.Touch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TouchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TouchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Touch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TouchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TouchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Touch).
func (m *TouchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TouchMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.subscription != nil {
		fields = append(fields, touch.FieldSubscriptionID)
	}
	if m.cycle != nil {
		fields = append(fields, touch.FieldCycle)
	}
	if m.sequence_index != nil {
		fields = append(fields, touch.FieldSequenceIndex)
	}
	if m.method != nil {
		fields = append(fields, touch.FieldMethod)
	}
	if m.scheduled_date != nil {
		fields = append(fields, touch.FieldScheduledDate)
	}
	if m.scheduled_time != nil {
		fields = append(fields, touch.FieldScheduledTime)
	}
	if m.assigned_to != nil {
		fields = append(fields, touch.FieldAssignedTo)
	}
	if m.status != nil {
		fields = append(fields, touch.FieldStatus)
	}
	if m.outcome != nil {
		fields = append(fields, touch.FieldOutcome)
	}
	if m.outcome_notes != nil {
		fields = append(fields, touch.FieldOutcomeNotes)
	}
	if m.linked_task_id != nil {
		fields = append(fields, touch.FieldLinkedTaskID)
	}
	if m.linked_reminder_id != nil {
		fields = append(fields, touch.FieldLinkedReminderID)
	}
	if m.resolved_at != nil {
		fields = append(fields, touch.FieldResolvedAt)
	}
	if m.created_at != nil {
		fields = append(fields, touch.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, touch.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TouchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case touch.FieldSubscriptionID:
		return m.SubscriptionID()
	case touch.FieldCycle:
		return m.Cycle()
	case touch.FieldSequenceIndex:
		return m.SequenceIndex()
	case touch.FieldMethod:
		return m.Method()
	case touch.FieldScheduledDate:
		return m.ScheduledDate()
	case touch.FieldScheduledTime:
		return m.ScheduledTime()
	case touch.FieldAssignedTo:
		return m.AssignedTo()
	case touch.FieldStatus:
		return m.Status()
	case touch.FieldOutcome:
		return m.Outcome()
	case touch.FieldOutcomeNotes:
		return m.OutcomeNotes()
	case touch.FieldLinkedTaskID:
		return m.LinkedTaskID()
	case touch.FieldLinkedReminderID:
		return m.LinkedReminderID()
	case touch.FieldResolvedAt:
		return m.ResolvedAt()
	case touch.FieldCreatedAt:
		return m.CreatedAt()
	case touch.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TouchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case touch.FieldSubscriptionID:
		return m.OldSubscriptionID(ctx)
	case touch.FieldCycle:
		return m.OldCycle(ctx)
	case touch.FieldSequenceIndex:
		return m.OldSequenceIndex(ctx)
	case touch.FieldMethod:
		return m.OldMethod(ctx)
	case touch.FieldScheduledDate:
		return m.OldScheduledDate(ctx)
	case touch.FieldScheduledTime:
		return m.OldScheduledTime(ctx)
	case touch.FieldAssignedTo:
		return m.OldAssignedTo(ctx)
	case touch.FieldStatus:
		return m.OldStatus(ctx)
	case touch.FieldOutcome:
		return m.OldOutcome(ctx)
	case touch.FieldOutcomeNotes:
		return m.OldOutcomeNotes(ctx)
	case touch.FieldLinkedTaskID:
		return m.OldLinkedTaskID(ctx)
	case touch.FieldLinkedReminderID:
		return m.OldLinkedReminderID(ctx)
	case touch.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case touch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case touch.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Touch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TouchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case touch.FieldSubscriptionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionID(v)
		return nil
	case touch.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycle(v)
		return nil
	case touch.FieldSequenceIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceIndex(v)
		return nil
	case touch.FieldMethod:
		v, ok := value.(touch.Method)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case touch.FieldScheduledDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledDate(v)
		return nil
	case touch.FieldScheduledTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledTime(v)
		return nil
	case touch.FieldAssignedTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedTo(v)
		return nil
	case touch.FieldStatus:
		v, ok := value.(touch.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case touch.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case touch.FieldOutcomeNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeNotes(v)
		return nil
	case touch.FieldLinkedTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedTaskID(v)
		return nil
	case touch.FieldLinkedReminderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedReminderID(v)
		return nil
	case touch.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case touch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case touch.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Touch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TouchMutation) AddedFields() []string {
	var fields []string
	if m.addcycle != nil {
		fields = append(fields, touch.FieldCycle)
	}
	if m.addsequence_index != nil {
		fields = append(fields, touch.FieldSequenceIndex)
	}
	if m.addassigned_to != nil {
		fields = append(fields, touch.FieldAssignedTo)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TouchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case touch.FieldCycle:
		return m.AddedCycle()
	case touch.FieldSequenceIndex:
		return m.AddedSequenceIndex()
	case touch.FieldAssignedTo:
		return m.AddedAssignedTo()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TouchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case touch.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycle(v)
		return nil
	case touch.FieldSequenceIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceIndex(v)
		return nil
	case touch.FieldAssignedTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssignedTo(v)
		return nil
	}
	return fmt.Errorf("unknown Touch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TouchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(touch.FieldScheduledTime) {
		fields = append(fields, touch.FieldScheduledTime)
	}
	if m.FieldCleared(touch.FieldOutcome) {
		fields = append(fields, touch.FieldOutcome)
	}
	if m.FieldCleared(touch.FieldOutcomeNotes) {
		fields = append(fields, touch.FieldOutcomeNotes)
	}
	if m.FieldCleared(touch.FieldLinkedTaskID) {
		fields = append(fields, touch.FieldLinkedTaskID)
	}
	if m.FieldCleared(touch.FieldLinkedReminderID) {
		fields = append(fields, touch.FieldLinkedReminderID)
	}
	if m.FieldCleared(touch.FieldResolvedAt) {
		fields = append(fields, touch.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TouchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TouchMutation) ClearField(name string) error {
	switch name {
	case touch.FieldScheduledTime:
		m.ClearScheduledTime()
		return nil
	case touch.FieldOutcome:
		m.ClearOutcome()
		return nil
	case touch.FieldOutcomeNotes:
		m.ClearOutcomeNotes()
		return nil
	case touch.FieldLinkedTaskID:
		m.ClearLinkedTaskID()
		return nil
	case touch.FieldLinkedReminderID:
		m.ClearLinkedReminderID()
		return nil
	case touch.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Touch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TouchMutation) ResetField(name string) error {
	switch name {
	case touch.FieldSubscriptionID:
		m.ResetSubscriptionID()
		return nil
	case touch.FieldCycle:
		m.ResetCycle()
		return nil
	case touch.FieldSequenceIndex:
		m.ResetSequenceIndex()
		return nil
	case touch.FieldMethod:
		m.ResetMethod()
		return nil
	case touch.FieldScheduledDate:
		m.ResetScheduledDate()
		return nil
	case touch.FieldScheduledTime:
		m.ResetScheduledTime()
		return nil
	case touch.FieldAssignedTo:
		m.ResetAssignedTo()
		return nil
	case touch.FieldStatus:
		m.ResetStatus()
		return nil
	case touch.FieldOutcome:
		m.ResetOutcome()
		return nil
	case touch.FieldOutcomeNotes:
		m.ResetOutcomeNotes()
		return nil
	case touch.FieldLinkedTaskID:
		m.ResetLinkedTaskID()
		return nil
	case touch.FieldLinkedReminderID:
		m.ResetLinkedReminderID()
		return nil
	case touch.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case touch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case touch.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Touch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TouchMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.subscription != nil {
		edges = append(edges, touch.EdgeSubscription)
	}
	if m.logs != nil {
		edges = append(edges, touch.EdgeLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TouchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case touch.EdgeSubscription:
		if id := m.subscription; id != nil {
			return []ent.Value{*id}
		}
	case touch.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TouchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlogs != nil {
		edges = append(edges, touch.EdgeLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TouchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case touch.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TouchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsubscription {
		edges = append(edges, touch.EdgeSubscription)
	}
	if m.clearedlogs {
		edges = append(edges, touch.EdgeLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TouchMutation) EdgeCleared(name string) bool {
	switch name {
	case touch.EdgeSubscription:
		return m.clearedsubscription
	case touch.EdgeLogs:
		return m.clearedlogs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TouchMutation) ClearEdge(name string) error {
	switch name {
	case touch.EdgeSubscription:
		m.ClearSubscription()
		return nil
	}
	return fmt.Errorf("unknown Touch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TouchMutation) ResetEdge(name string) error {
	switch name {
	case touch.EdgeSubscription:
		m.ResetSubscription()
		return nil
	case touch.EdgeLogs:
		m.ResetLogs()
		return nil
	}
	return fmt.Errorf("unknown Touch edge %s", name)
}

// TouchLogMutation represents an operation that mutates the TouchLog nodes in the graph.
type TouchLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	outcome       *string
	notes         *string
	follow_up     *touchlog.FollowUp
	created_at    *time.Time
	clearedFields map[string]struct{}
	touch         *int
	clearedtouch  bool
	done          bool
	oldValue      func(context.Context) (*TouchLog, error)
	predicates    []predicate.TouchLog
}

var _ ent.Mutation = (*TouchLogMutation)(nil)

// touchlogOption allows management of the mutation configuration using functional options.
type touchlogOption func(*TouchLogMutation)

// newTouchLogMutation creates new mutation for the TouchLog entity.
func newTouchLogMutation(c config, op Op, opts ...touchlogOption) *TouchLogMutation {
	m := &TouchLogMutation{
		config:        c,
		op:            op,
		typ:           TypeTouchLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTouchLogID sets the ID field of the mutation.
func withTouchLogID(id int) touchlogOption {
	return func(m *TouchLogMutation) {
		var (
			err   error
			once  sync.Once
			value *TouchLog
		)
		m.oldValue = func(ctx context.Context) (*TouchLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TouchLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTouchLog sets the old TouchLog of the mutation.
func withTouchLog(node *TouchLog) touchlogOption {
	return func(m *TouchLogMutation) {
		m.oldValue = func(context.Context) (*TouchLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TouchLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TouchLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TouchLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TouchLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TouchLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTouchID sets the "touch_id" field.
func (m *TouchLogMutation) SetTouchID(i int) {
	m.touch = &i
}

// TouchID returns the value of the "touch_id" field in the mutation.
func (m *TouchLogMutation) TouchID() (r int, exists bool) {
	v := m.touch
	if v == nil {
		return
	}
	return *v, true
}

// OldTouchID returns the old "touch_id" field's value of the TouchLog entity.
// If the TouchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchLogMutation) OldTouchID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTouchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTouchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTouchID: %w", err)
	}
	return oldValue.TouchID, nil
}

// ResetTouchID resets all changes to the "touch_id" field.
func (m *TouchLogMutation) ResetTouchID() {
	m.touch = nil
}

// SetOutcome sets the "outcome" field.
func (m *TouchLogMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *TouchLogMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the TouchLog entity.
// If the TouchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchLogMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *TouchLogMutation) ResetOutcome() {
	m.outcome = nil
}

// SetNotes sets the "notes" field.
func (m *TouchLogMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *TouchLogMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the TouchLog entity.
// If the TouchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchLogMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *TouchLogMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[touchlog.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *TouchLogMutation) NotesCleared() bool {
	_, ok := m.clearedFields[touchlog.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *TouchLogMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, touchlog.FieldNotes)
}

// SetFollowUp sets the "follow_up" field.
func (m *TouchLogMutation) SetFollowUp(tu touchlog.FollowUp) {
	m.follow_up = &tu
}

// FollowUp returns the value of the "follow_up" field in the mutation.
func (m *TouchLogMutation) FollowUp() (r touchlog.FollowUp, exists bool) {
	v := m.follow_up
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUp returns the old "follow_up" field's value of the TouchLog entity.
// If the TouchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchLogMutation) OldFollowUp(ctx context.Context) (v touchlog.FollowUp, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUp: %w", err)
	}
	return oldValue.FollowUp, nil
}

// ResetFollowUp resets all changes to the "follow_up" field.
func (m *TouchLogMutation) ResetFollowUp() {
	m.follow_up = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TouchLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TouchLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TouchLog entity.
// If the TouchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TouchLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TouchLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTouch clears the "touch" edge to the Touch entity.
func (m *TouchLogMutation) ClearTouch() {
	m.clearedtouch = true
	m.clearedFields[touchlog.FieldTouchID] = struct{}{}
}

// TouchCleared reports if the "touch" edge to the Touch entity was cleared.
func (m *TouchLogMutation) TouchCleared() bool {
	return m.clearedtouch
}

// TouchIDs returns the "touch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TouchID instead. It exists only for internal usage by the builders.
func (m *TouchLogMutation) TouchIDs() (ids []int) {
	if id := m.touch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTouch resets all changes to the "touch" edge.
func (m *TouchLogMutation) ResetTouch() {
	m.touch = nil
	m.clearedtouch = false
}

// Where appends a list predicates to the TouchLogMutation builder.
func (m *TouchLogMutation) Where(ps ...predicate.TouchLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TouchLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TouchLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TouchLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TouchLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TouchLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TouchLog).
func (m *TouchLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TouchLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.touch != nil {
		fields = append(fields, touchlog.FieldTouchID)
	}
	if m.outcome != nil {
		fields = append(fields, touchlog.FieldOutcome)
	}
	if m.notes != nil {
		fields = append(fields, touchlog.FieldNotes)
	}
	if m.follow_up != nil {
		fields = append(fields, touchlog.FieldFollowUp)
	}
	if m.created_at != nil {
		fields = append(fields, touchlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TouchLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case touchlog.FieldTouchID:
		return m.TouchID()
	case touchlog.FieldOutcome:
		return m.Outcome()
	case touchlog.FieldNotes:
		return m.Notes()
	case touchlog.FieldFollowUp:
		return m.FollowUp()
	case touchlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TouchLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case touchlog.FieldTouchID:
		return m.OldTouchID(ctx)
	case touchlog.FieldOutcome:
		return m.OldOutcome(ctx)
	case touchlog.FieldNotes:
		return m.OldNotes(ctx)
	case touchlog.FieldFollowUp:
		return m.OldFollowUp(ctx)
	case touchlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TouchLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TouchLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case touchlog.FieldTouchID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTouchID(v)
		return nil
	case touchlog.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case touchlog.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case touchlog.FieldFollowUp:
		v, ok := value.(touchlog.FollowUp)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUp(v)
		return nil
	case touchlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TouchLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TouchLogMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TouchLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TouchLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TouchLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TouchLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(touchlog.FieldNotes) {
		fields = append(fields, touchlog.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TouchLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TouchLogMutation) ClearField(name string) error {
	switch name {
	case touchlog.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown TouchLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TouchLogMutation) ResetField(name string) error {
	switch name {
	case touchlog.FieldTouchID:
		m.ResetTouchID()
		return nil
	case touchlog.FieldOutcome:
		m.ResetOutcome()
		return nil
	case touchlog.FieldNotes:
		m.ResetNotes()
		return nil
	case touchlog.FieldFollowUp:
		m.ResetFollowUp()
		return nil
	case touchlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TouchLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TouchLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.touch != nil {
		edges = append(edges, touchlog.EdgeTouch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TouchLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case touchlog.EdgeTouch:
		if id := m.touch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TouchLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TouchLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TouchLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtouch {
		edges = append(edges, touchlog.EdgeTouch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TouchLogMutation) EdgeCleared(name string) bool {
	switch name {
	case touchlog.EdgeTouch:
		return m.clearedtouch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TouchLogMutation) ClearEdge(name string) error {
	switch name {
	case touchlog.EdgeTouch:
		m.ClearTouch()
		return nil
	}
	return fmt.Errorf("unknown TouchLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TouchLogMutation) ResetEdge(name string) error {
	switch name {
	case touchlog.EdgeTouch:
		m.ResetTouch()
		return nil
	}
	return fmt.Errorf("unknown TouchLog edge %s", name)
}
