// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/jordanlanch/touchpoint/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jordanlanch/touchpoint/ent/activitylog"
	"github.com/jordanlanch/touchpoint/ent/preset"
	"github.com/jordanlanch/touchpoint/ent/presetstep"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/ent/touchlog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivityLog is the client for interacting with the ActivityLog builders.
	ActivityLog *ActivityLogClient
	// Preset is the client for interacting with the Preset builders.
	Preset *PresetClient
	// PresetStep is the client for interacting with the PresetStep builders.
	PresetStep *PresetStepClient
	// Subscription is the client for interacting with the Subscription builders.
	Subscription *SubscriptionClient
	// Touch is the client for interacting with the Touch builders.
	Touch *TouchClient
	// TouchLog is the client for interacting with the TouchLog builders.
	TouchLog *TouchLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivityLog = NewActivityLogClient(c.config)
	c.Preset = NewPresetClient(c.config)
	c.PresetStep = NewPresetStepClient(c.config)
	c.Subscription = NewSubscriptionClient(c.config)
	c.Touch = NewTouchClient(c.config)
	c.TouchLog = NewTouchLogClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		ActivityLog:  NewActivityLogClient(cfg),
		Preset:       NewPresetClient(cfg),
		PresetStep:   NewPresetStepClient(cfg),
		Subscription: NewSubscriptionClient(cfg),
		Touch:        NewTouchClient(cfg),
		TouchLog:     NewTouchLogClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		ActivityLog:  NewActivityLogClient(cfg),
		Preset:       NewPresetClient(cfg),
		PresetStep:   NewPresetStepClient(cfg),
		Subscription: NewSubscriptionClient(cfg),
		Touch:        NewTouchClient(cfg),
		TouchLog:     NewTouchLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivityLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ActivityLog, c.Preset, c.PresetStep, c.Subscription, c.Touch, c.TouchLog,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActivityLog, c.Preset, c.PresetStep, c.Subscription, c.Touch, c.TouchLog,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityLogMutation:
		return c.ActivityLog.mutate(ctx, m)
	case *PresetMutation:
		return c.Preset.mutate(ctx, m)
	case *PresetStepMutation:
		return c.PresetStep.mutate(ctx, m)
	case *SubscriptionMutation:
		return c.Subscription.mutate(ctx, m)
	case *TouchMutation:
		return c.Touch.mutate(ctx, m)
	case *TouchLogMutation:
		return c.TouchLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivityLogClient is a client for the ActivityLog schema.
type ActivityLogClient struct {
	config
}

// NewActivityLogClient returns a client for the ActivityLog from the given config.
func NewActivityLogClient(c config) *ActivityLogClient {
	return &ActivityLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activitylog.Hooks(f(g(h())))`.
func (c *ActivityLogClient) Use(hooks ...Hook) {
	c.hooks.ActivityLog = append(c.hooks.ActivityLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activitylog.Intercept(f(g(h())))`.
func (c *ActivityLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityLog = append(c.inters.ActivityLog, interceptors...)
}

// Create returns a builder for creating a ActivityLog entity.
func (c *ActivityLogClient) Create() *ActivityLogCreate {
	mutation := newActivityLogMutation(c.config, OpCreate)
	return &ActivityLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityLog entities.
func (c *ActivityLogClient) CreateBulk(builders ...*ActivityLogCreate) *ActivityLogCreateBulk {
	return &ActivityLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityLogClient) MapCreateBulk(slice any, setFunc func(*ActivityLogCreate, int)) *ActivityLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityLogCreateBulk{err: fmt.Errorf("calling to ActivityLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityLog.
func (c *ActivityLogClient) Update() *ActivityLogUpdate {
	mutation := newActivityLogMutation(c.config, OpUpdate)
	return &ActivityLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityLogClient) UpdateOne(_m *ActivityLog) *ActivityLogUpdateOne {
	mutation := newActivityLogMutation(c.config, OpUpdateOne, withActivityLog(_m))
	return &ActivityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityLogClient) UpdateOneID(id int) *ActivityLogUpdateOne {
	mutation := newActivityLogMutation(c.config, OpUpdateOne, withActivityLogID(id))
	return &ActivityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityLog.
func (c *ActivityLogClient) Delete() *ActivityLogDelete {
	mutation := newActivityLogMutation(c.config, OpDelete)
	return &ActivityLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityLogClient) DeleteOne(_m *ActivityLog) *ActivityLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityLogClient) DeleteOneID(id int) *ActivityLogDeleteOne {
	builder := c.Delete().Where(activitylog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityLogDeleteOne{builder}
}

// Query returns a query builder for ActivityLog.
func (c *ActivityLogClient) Query() *ActivityLogQuery {
	return &ActivityLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityLog entity by its id.
func (c *ActivityLogClient) Get(ctx context.Context, id int) (*ActivityLog, error) {
	return c.Query().Where(activitylog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityLogClient) GetX(ctx context.Context, id int) *ActivityLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityLogClient) Hooks() []Hook {
	return c.hooks.ActivityLog
}

// Interceptors returns the client interceptors.
func (c *ActivityLogClient) Interceptors() []Interceptor {
	return c.inters.ActivityLog
}

func (c *ActivityLogClient) mutate(ctx context.Context, m *ActivityLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityLog mutation op: %q", m.Op())
	}
}

// PresetClient is a client for the Preset schema.
type PresetClient struct {
	config
}

// NewPresetClient returns a client for the Preset from the given config.
func NewPresetClient(c config) *PresetClient {
	return &PresetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `preset.Hooks(f(g(h())))`.
func (c *PresetClient) Use(hooks ...Hook) {
	c.hooks.Preset = append(c.hooks.Preset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `preset.Intercept(f(g(h())))`.
func (c *PresetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Preset = append(c.inters.Preset, interceptors...)
}

// Create returns a builder for creating a Preset entity.
func (c *PresetClient) Create() *PresetCreate {
	mutation := newPresetMutation(c.config, OpCreate)
	return &PresetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Preset entities.
func (c *PresetClient) CreateBulk(builders ...*PresetCreate) *PresetCreateBulk {
	return &PresetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PresetClient) MapCreateBulk(slice any, setFunc func(*PresetCreate, int)) *PresetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PresetCreateBulk{err: fmt.Errorf("calling to PresetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PresetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PresetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Preset.
func (c *PresetClient) Update() *PresetUpdate {
	mutation := newPresetMutation(c.config, OpUpdate)
	return &PresetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PresetClient) UpdateOne(_m *Preset) *PresetUpdateOne {
	mutation := newPresetMutation(c.config, OpUpdateOne, withPreset(_m))
	return &PresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PresetClient) UpdateOneID(id int) *PresetUpdateOne {
	mutation := newPresetMutation(c.config, OpUpdateOne, withPresetID(id))
	return &PresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Preset.
func (c *PresetClient) Delete() *PresetDelete {
	mutation := newPresetMutation(c.config, OpDelete)
	return &PresetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PresetClient) DeleteOne(_m *Preset) *PresetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PresetClient) DeleteOneID(id int) *PresetDeleteOne {
	builder := c.Delete().Where(preset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PresetDeleteOne{builder}
}

// Query returns a query builder for Preset.
func (c *PresetClient) Query() *PresetQuery {
	return &PresetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePreset},
		inters: c.Interceptors(),
	}
}

// Get returns a Preset entity by its id.
func (c *PresetClient) Get(ctx context.Context, id int) (*Preset, error) {
	return c.Query().Where(preset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PresetClient) GetX(ctx context.Context, id int) *Preset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a Preset.
func (c *PresetClient) QuerySteps(_m *Preset) *PresetStepQuery {
	query := (&PresetStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(preset.Table, preset.FieldID, id),
			sqlgraph.To(presetstep.Table, presetstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, preset.StepsTable, preset.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubscriptions queries the subscriptions edge of a Preset.
func (c *PresetClient) QuerySubscriptions(_m *Preset) *SubscriptionQuery {
	query := (&SubscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(preset.Table, preset.FieldID, id),
			sqlgraph.To(subscription.Table, subscription.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, preset.SubscriptionsTable, preset.SubscriptionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PresetClient) Hooks() []Hook {
	return c.hooks.Preset
}

// Interceptors returns the client interceptors.
func (c *PresetClient) Interceptors() []Interceptor {
	return c.inters.Preset
}

func (c *PresetClient) mutate(ctx context.Context, m *PresetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PresetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PresetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PresetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Preset mutation op: %q", m.Op())
	}
}

// PresetStepClient is a client for the PresetStep schema.
type PresetStepClient struct {
	config
}

// NewPresetStepClient returns a client for the PresetStep from the given config.
func NewPresetStepClient(c config) *PresetStepClient {
	return &PresetStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `presetstep.Hooks(f(g(h())))`.
func (c *PresetStepClient) Use(hooks ...Hook) {
	c.hooks.PresetStep = append(c.hooks.PresetStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `presetstep.Intercept(f(g(h())))`.
func (c *PresetStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.PresetStep = append(c.inters.PresetStep, interceptors...)
}

// Create returns a builder for creating a PresetStep entity.
func (c *PresetStepClient) Create() *PresetStepCreate {
	mutation := newPresetStepMutation(c.config, OpCreate)
	return &PresetStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PresetStep entities.
func (c *PresetStepClient) CreateBulk(builders ...*PresetStepCreate) *PresetStepCreateBulk {
	return &PresetStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PresetStepClient) MapCreateBulk(slice any, setFunc func(*PresetStepCreate, int)) *PresetStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PresetStepCreateBulk{err: fmt.Errorf("calling to PresetStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PresetStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PresetStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PresetStep.
func (c *PresetStepClient) Update() *PresetStepUpdate {
	mutation := newPresetStepMutation(c.config, OpUpdate)
	return &PresetStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PresetStepClient) UpdateOne(_m *PresetStep) *PresetStepUpdateOne {
	mutation := newPresetStepMutation(c.config, OpUpdateOne, withPresetStep(_m))
	return &PresetStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PresetStepClient) UpdateOneID(id int) *PresetStepUpdateOne {
	mutation := newPresetStepMutation(c.config, OpUpdateOne, withPresetStepID(id))
	return &PresetStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PresetStep.
func (c *PresetStepClient) Delete() *PresetStepDelete {
	mutation := newPresetStepMutation(c.config, OpDelete)
	return &PresetStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PresetStepClient) DeleteOne(_m *PresetStep) *PresetStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PresetStepClient) DeleteOneID(id int) *PresetStepDeleteOne {
	builder := c.Delete().Where(presetstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PresetStepDeleteOne{builder}
}

// Query returns a query builder for PresetStep.
func (c *PresetStepClient) Query() *PresetStepQuery {
	return &PresetStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePresetStep},
		inters: c.Interceptors(),
	}
}

// Get returns a PresetStep entity by its id.
func (c *PresetStepClient) Get(ctx context.Context, id int) (*PresetStep, error) {
	return c.Query().Where(presetstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PresetStepClient) GetX(ctx context.Context, id int) *PresetStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPreset queries the preset edge of a PresetStep.
func (c *PresetStepClient) QueryPreset(_m *PresetStep) *PresetQuery {
	query := (&PresetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(presetstep.Table, presetstep.FieldID, id),
			sqlgraph.To(preset.Table, preset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, presetstep.PresetTable, presetstep.PresetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PresetStepClient) Hooks() []Hook {
	return c.hooks.PresetStep
}

// Interceptors returns the client interceptors.
func (c *PresetStepClient) Interceptors() []Interceptor {
	return c.inters.PresetStep
}

func (c *PresetStepClient) mutate(ctx context.Context, m *PresetStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PresetStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PresetStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PresetStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PresetStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PresetStep mutation op: %q", m.Op())
	}
}

// SubscriptionClient is a client for the Subscription schema.
type SubscriptionClient struct {
	config
}

// NewSubscriptionClient returns a client for the Subscription from the given config.
func NewSubscriptionClient(c config) *SubscriptionClient {
	return &SubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subscription.Hooks(f(g(h())))`.
func (c *SubscriptionClient) Use(hooks ...Hook) {
	c.hooks.Subscription = append(c.hooks.Subscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subscription.Intercept(f(g(h())))`.
func (c *SubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subscription = append(c.inters.Subscription, interceptors...)
}

// Create returns a builder for creating a Subscription entity.
func (c *SubscriptionClient) Create() *SubscriptionCreate {
	mutation := newSubscriptionMutation(c.config, OpCreate)
	return &SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subscription entities.
func (c *SubscriptionClient) CreateBulk(builders ...*SubscriptionCreate) *SubscriptionCreateBulk {
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubscriptionClient) MapCreateBulk(slice any, setFunc func(*SubscriptionCreate, int)) *SubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubscriptionCreateBulk{err: fmt.Errorf("calling to SubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subscription.
func (c *SubscriptionClient) Update() *SubscriptionUpdate {
	mutation := newSubscriptionMutation(c.config, OpUpdate)
	return &SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubscriptionClient) UpdateOne(_m *Subscription) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscription(_m))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubscriptionClient) UpdateOneID(id int) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscriptionID(id))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subscription.
func (c *SubscriptionClient) Delete() *SubscriptionDelete {
	mutation := newSubscriptionMutation(c.config, OpDelete)
	return &SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubscriptionClient) DeleteOne(_m *Subscription) *SubscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubscriptionClient) DeleteOneID(id int) *SubscriptionDeleteOne {
	builder := c.Delete().Where(subscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubscriptionDeleteOne{builder}
}

// Query returns a query builder for Subscription.
func (c *SubscriptionClient) Query() *SubscriptionQuery {
	return &SubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a Subscription entity by its id.
func (c *SubscriptionClient) Get(ctx context.Context, id int) (*Subscription, error) {
	return c.Query().Where(subscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubscriptionClient) GetX(ctx context.Context, id int) *Subscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPreset queries the preset edge of a Subscription.
func (c *SubscriptionClient) QueryPreset(_m *Subscription) *PresetQuery {
	query := (&PresetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subscription.Table, subscription.FieldID, id),
			sqlgraph.To(preset.Table, preset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subscription.PresetTable, subscription.PresetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTouches queries the touches edge of a Subscription.
func (c *SubscriptionClient) QueryTouches(_m *Subscription) *TouchQuery {
	query := (&TouchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subscription.Table, subscription.FieldID, id),
			sqlgraph.To(touch.Table, touch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, subscription.TouchesTable, subscription.TouchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubscriptionClient) Hooks() []Hook {
	return c.hooks.Subscription
}

// Interceptors returns the client interceptors.
func (c *SubscriptionClient) Interceptors() []Interceptor {
	return c.inters.Subscription
}

func (c *SubscriptionClient) mutate(ctx context.Context, m *SubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subscription mutation op: %q", m.Op())
	}
}

// TouchClient is a client for the Touch schema.
type TouchClient struct {
	config
}

// NewTouchClient returns a client for the Touch from the given config.
func NewTouchClient(c config) *TouchClient {
	return &TouchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `touch.Hooks(f(g(h())))`.
func (c *TouchClient) Use(hooks ...Hook) {
	c.hooks.Touch = append(c.hooks.Touch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `touch.Intercept(f(g(h())))`.
func (c *TouchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Touch = append(c.inters.Touch, interceptors...)
}

// Create returns a builder for creating a Touch entity.
func (c *TouchClient) Create() *TouchCreate {
	mutation := newTouchMutation(c.config, OpCreate)
	return &TouchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Touch entities.
func (c *TouchClient) CreateBulk(builders ...*TouchCreate) *TouchCreateBulk {
	return &TouchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TouchClient) MapCreateBulk(slice any, setFunc func(*TouchCreate, int)) *TouchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TouchCreateBulk{err: fmt.Errorf("calling to TouchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TouchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TouchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Touch.
func (c *TouchClient) Update() *TouchUpdate {
	mutation := newTouchMutation(c.config, OpUpdate)
	return &TouchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TouchClient) UpdateOne(_m *Touch) *TouchUpdateOne {
	mutation := newTouchMutation(c.config, OpUpdateOne, withTouch(_m))
	return &TouchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TouchClient) UpdateOneID(id int) *TouchUpdateOne {
	mutation := newTouchMutation(c.config, OpUpdateOne, withTouchID(id))
	return &TouchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Touch.
func (c *TouchClient) Delete() *TouchDelete {
	mutation := newTouchMutation(c.config, OpDelete)
	return &TouchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TouchClient) DeleteOne(_m *Touch) *TouchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TouchClient) DeleteOneID(id int) *TouchDeleteOne {
	builder := c.Delete().Where(touch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TouchDeleteOne{builder}
}

// Query returns a query builder for Touch.
func (c *TouchClient) Query() *TouchQuery {
	return &TouchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTouch},
		inters: c.Interceptors(),
	}
}

// Get returns a Touch entity by its id.
func (c *TouchClient) Get(ctx context.Context, id int) (*Touch, error) {
	return c.Query().Where(touch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TouchClient) GetX(ctx context.Context, id int) *Touch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubscription queries the subscription edge of a Touch.
func (c *TouchClient) QuerySubscription(_m *Touch) *SubscriptionQuery {
	query := (&SubscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(touch.Table, touch.FieldID, id),
			sqlgraph.To(subscription.Table, subscription.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, touch.SubscriptionTable, touch.SubscriptionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogs queries the logs edge of a Touch.
func (c *TouchClient) QueryLogs(_m *Touch) *TouchLogQuery {
	query := (&TouchLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(touch.Table, touch.FieldID, id),
			sqlgraph.To(touchlog.Table, touchlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, touch.LogsTable, touch.LogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TouchClient) Hooks() []Hook {
	return c.hooks.Touch
}

// Interceptors returns the client interceptors.
func (c *TouchClient) Interceptors() []Interceptor {
	return c.inters.Touch
}

func (c *TouchClient) mutate(ctx context.Context, m *TouchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TouchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TouchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TouchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TouchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Touch mutation op: %q", m.Op())
	}
}

// TouchLogClient is a client for the TouchLog schema.
type TouchLogClient struct {
	config
}

// NewTouchLogClient returns a client for the TouchLog from the given config.
func NewTouchLogClient(c config) *TouchLogClient {
	return &TouchLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `touchlog.Hooks(f(g(h())))`.
func (c *TouchLogClient) Use(hooks ...Hook) {
	c.hooks.TouchLog = append(c.hooks.TouchLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `touchlog.Intercept(f(g(h())))`.
func (c *TouchLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.TouchLog = append(c.inters.TouchLog, interceptors...)
}

// Create returns a builder for creating a TouchLog entity.
func (c *TouchLogClient) Create() *TouchLogCreate {
	mutation := newTouchLogMutation(c.config, OpCreate)
	return &TouchLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TouchLog entities.
func (c *TouchLogClient) CreateBulk(builders ...*TouchLogCreate) *TouchLogCreateBulk {
	return &TouchLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TouchLogClient) MapCreateBulk(slice any, setFunc func(*TouchLogCreate, int)) *TouchLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TouchLogCreateBulk{err: fmt.Errorf("calling to TouchLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TouchLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TouchLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TouchLog.
func (c *TouchLogClient) Update() *TouchLogUpdate {
	mutation := newTouchLogMutation(c.config, OpUpdate)
	return &TouchLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TouchLogClient) UpdateOne(_m *TouchLog) *TouchLogUpdateOne {
	mutation := newTouchLogMutation(c.config, OpUpdateOne, withTouchLog(_m))
	return &TouchLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TouchLogClient) UpdateOneID(id int) *TouchLogUpdateOne {
	mutation := newTouchLogMutation(c.config, OpUpdateOne, withTouchLogID(id))
	return &TouchLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TouchLog.
func (c *TouchLogClient) Delete() *TouchLogDelete {
	mutation := newTouchLogMutation(c.config, OpDelete)
	return &TouchLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TouchLogClient) DeleteOne(_m *TouchLog) *TouchLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TouchLogClient) DeleteOneID(id int) *TouchLogDeleteOne {
	builder := c.Delete().Where(touchlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TouchLogDeleteOne{builder}
}

// Query returns a query builder for TouchLog.
func (c *TouchLogClient) Query() *TouchLogQuery {
	return &TouchLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTouchLog},
		inters: c.Interceptors(),
	}
}

// Get returns a TouchLog entity by its id.
func (c *TouchLogClient) Get(ctx context.Context, id int) (*TouchLog, error) {
	return c.Query().Where(touchlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TouchLogClient) GetX(ctx context.Context, id int) *TouchLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTouch queries the touch edge of a TouchLog.
func (c *TouchLogClient) QueryTouch(_m *TouchLog) *TouchQuery {
	query := (&TouchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(touchlog.Table, touchlog.FieldID, id),
			sqlgraph.To(touch.Table, touch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, touchlog.TouchTable, touchlog.TouchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TouchLogClient) Hooks() []Hook {
	return c.hooks.TouchLog
}

// Interceptors returns the client interceptors.
func (c *TouchLogClient) Interceptors() []Interceptor {
	return c.inters.TouchLog
}

func (c *TouchLogClient) mutate(ctx context.Context, m *TouchLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TouchLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TouchLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TouchLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TouchLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TouchLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivityLog, Preset, PresetStep, Subscription, Touch, TouchLog []ent.Hook
	}
	inters struct {
		ActivityLog, Preset, PresetStep, Subscription, Touch, TouchLog []ent.Interceptor
	}
)
