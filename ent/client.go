// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/questline/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/questline/ent/drillevent"
	"github.com/abhisek/questline/ent/outcomeevent"
	"github.com/abhisek/questline/ent/skill"
	"github.com/abhisek/questline/ent/weekplan"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DrillEvent is the client for interacting with the DrillEvent builders.
	DrillEvent *DrillEventClient
	// OutcomeEvent is the client for interacting with the OutcomeEvent builders.
	OutcomeEvent *OutcomeEventClient
	// Skill is the client for interacting with the Skill builders.
	Skill *SkillClient
	// WeekPlan is the client for interacting with the WeekPlan builders.
	WeekPlan *WeekPlanClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DrillEvent = NewDrillEventClient(c.config)
	c.OutcomeEvent = NewOutcomeEventClient(c.config)
	c.Skill = NewSkillClient(c.config)
	c.WeekPlan = NewWeekPlanClient(c.config)
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
		DrillEvent:   NewDrillEventClient(cfg),
		OutcomeEvent: NewOutcomeEventClient(cfg),
		Skill:        NewSkillClient(cfg),
		WeekPlan:     NewWeekPlanClient(cfg),
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
		DrillEvent:   NewDrillEventClient(cfg),
		OutcomeEvent: NewOutcomeEventClient(cfg),
		Skill:        NewSkillClient(cfg),
		WeekPlan:     NewWeekPlanClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DrillEvent.
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
	c.DrillEvent.Use(hooks...)
	c.OutcomeEvent.Use(hooks...)
	c.Skill.Use(hooks...)
	c.WeekPlan.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DrillEvent.Intercept(interceptors...)
	c.OutcomeEvent.Intercept(interceptors...)
	c.Skill.Intercept(interceptors...)
	c.WeekPlan.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DrillEventMutation:
		return c.DrillEvent.mutate(ctx, m)
	case *OutcomeEventMutation:
		return c.OutcomeEvent.mutate(ctx, m)
	case *SkillMutation:
		return c.Skill.mutate(ctx, m)
	case *WeekPlanMutation:
		return c.WeekPlan.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DrillEventClient is a client for the DrillEvent schema.
type DrillEventClient struct {
	config
}

// NewDrillEventClient returns a client for the DrillEvent from the given config.
func NewDrillEventClient(c config) *DrillEventClient {
	return &DrillEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `drillevent.Hooks(f(g(h())))`.
func (c *DrillEventClient) Use(hooks ...Hook) {
	c.hooks.DrillEvent = append(c.hooks.DrillEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `drillevent.Intercept(f(g(h())))`.
func (c *DrillEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.DrillEvent = append(c.inters.DrillEvent, interceptors...)
}

// Create returns a builder for creating a DrillEvent entity.
func (c *DrillEventClient) Create() *DrillEventCreate {
	mutation := newDrillEventMutation(c.config, OpCreate)
	return &DrillEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DrillEvent entities.
func (c *DrillEventClient) CreateBulk(builders ...*DrillEventCreate) *DrillEventCreateBulk {
	return &DrillEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DrillEventClient) MapCreateBulk(slice any, setFunc func(*DrillEventCreate, int)) *DrillEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DrillEventCreateBulk{err: fmt.Errorf("calling to DrillEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DrillEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DrillEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DrillEvent.
func (c *DrillEventClient) Update() *DrillEventUpdate {
	mutation := newDrillEventMutation(c.config, OpUpdate)
	return &DrillEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DrillEventClient) UpdateOne(_m *DrillEvent) *DrillEventUpdateOne {
	mutation := newDrillEventMutation(c.config, OpUpdateOne, withDrillEvent(_m))
	return &DrillEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DrillEventClient) UpdateOneID(id int) *DrillEventUpdateOne {
	mutation := newDrillEventMutation(c.config, OpUpdateOne, withDrillEventID(id))
	return &DrillEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DrillEvent.
func (c *DrillEventClient) Delete() *DrillEventDelete {
	mutation := newDrillEventMutation(c.config, OpDelete)
	return &DrillEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DrillEventClient) DeleteOne(_m *DrillEvent) *DrillEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DrillEventClient) DeleteOneID(id int) *DrillEventDeleteOne {
	builder := c.Delete().Where(drillevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DrillEventDeleteOne{builder}
}

// Query returns a query builder for DrillEvent.
func (c *DrillEventClient) Query() *DrillEventQuery {
	return &DrillEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDrillEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a DrillEvent entity by its id.
func (c *DrillEventClient) Get(ctx context.Context, id int) (*DrillEvent, error) {
	return c.Query().Where(drillevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DrillEventClient) GetX(ctx context.Context, id int) *DrillEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DrillEventClient) Hooks() []Hook {
	return c.hooks.DrillEvent
}

// Interceptors returns the client interceptors.
func (c *DrillEventClient) Interceptors() []Interceptor {
	return c.inters.DrillEvent
}

func (c *DrillEventClient) mutate(ctx context.Context, m *DrillEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DrillEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DrillEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DrillEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DrillEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DrillEvent mutation op: %q", m.Op())
	}
}

// OutcomeEventClient is a client for the OutcomeEvent schema.
type OutcomeEventClient struct {
	config
}

// NewOutcomeEventClient returns a client for the OutcomeEvent from the given config.
func NewOutcomeEventClient(c config) *OutcomeEventClient {
	return &OutcomeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outcomeevent.Hooks(f(g(h())))`.
func (c *OutcomeEventClient) Use(hooks ...Hook) {
	c.hooks.OutcomeEvent = append(c.hooks.OutcomeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outcomeevent.Intercept(f(g(h())))`.
func (c *OutcomeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutcomeEvent = append(c.inters.OutcomeEvent, interceptors...)
}

// Create returns a builder for creating a OutcomeEvent entity.
func (c *OutcomeEventClient) Create() *OutcomeEventCreate {
	mutation := newOutcomeEventMutation(c.config, OpCreate)
	return &OutcomeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutcomeEvent entities.
func (c *OutcomeEventClient) CreateBulk(builders ...*OutcomeEventCreate) *OutcomeEventCreateBulk {
	return &OutcomeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutcomeEventClient) MapCreateBulk(slice any, setFunc func(*OutcomeEventCreate, int)) *OutcomeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutcomeEventCreateBulk{err: fmt.Errorf("calling to OutcomeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutcomeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutcomeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutcomeEvent.
func (c *OutcomeEventClient) Update() *OutcomeEventUpdate {
	mutation := newOutcomeEventMutation(c.config, OpUpdate)
	return &OutcomeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutcomeEventClient) UpdateOne(_m *OutcomeEvent) *OutcomeEventUpdateOne {
	mutation := newOutcomeEventMutation(c.config, OpUpdateOne, withOutcomeEvent(_m))
	return &OutcomeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutcomeEventClient) UpdateOneID(id int) *OutcomeEventUpdateOne {
	mutation := newOutcomeEventMutation(c.config, OpUpdateOne, withOutcomeEventID(id))
	return &OutcomeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutcomeEvent.
func (c *OutcomeEventClient) Delete() *OutcomeEventDelete {
	mutation := newOutcomeEventMutation(c.config, OpDelete)
	return &OutcomeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutcomeEventClient) DeleteOne(_m *OutcomeEvent) *OutcomeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutcomeEventClient) DeleteOneID(id int) *OutcomeEventDeleteOne {
	builder := c.Delete().Where(outcomeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutcomeEventDeleteOne{builder}
}

// Query returns a query builder for OutcomeEvent.
func (c *OutcomeEventClient) Query() *OutcomeEventQuery {
	return &OutcomeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutcomeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OutcomeEvent entity by its id.
func (c *OutcomeEventClient) Get(ctx context.Context, id int) (*OutcomeEvent, error) {
	return c.Query().Where(outcomeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutcomeEventClient) GetX(ctx context.Context, id int) *OutcomeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutcomeEventClient) Hooks() []Hook {
	return c.hooks.OutcomeEvent
}

// Interceptors returns the client interceptors.
func (c *OutcomeEventClient) Interceptors() []Interceptor {
	return c.inters.OutcomeEvent
}

func (c *OutcomeEventClient) mutate(ctx context.Context, m *OutcomeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutcomeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutcomeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutcomeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutcomeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutcomeEvent mutation op: %q", m.Op())
	}
}

// SkillClient is a client for the Skill schema.
type SkillClient struct {
	config
}

// NewSkillClient returns a client for the Skill from the given config.
func NewSkillClient(c config) *SkillClient {
	return &SkillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skill.Hooks(f(g(h())))`.
func (c *SkillClient) Use(hooks ...Hook) {
	c.hooks.Skill = append(c.hooks.Skill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skill.Intercept(f(g(h())))`.
func (c *SkillClient) Intercept(interceptors ...Interceptor) {
	c.inters.Skill = append(c.inters.Skill, interceptors...)
}

// Create returns a builder for creating a Skill entity.
func (c *SkillClient) Create() *SkillCreate {
	mutation := newSkillMutation(c.config, OpCreate)
	return &SkillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Skill entities.
func (c *SkillClient) CreateBulk(builders ...*SkillCreate) *SkillCreateBulk {
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillClient) MapCreateBulk(slice any, setFunc func(*SkillCreate, int)) *SkillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillCreateBulk{err: fmt.Errorf("calling to SkillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Skill.
func (c *SkillClient) Update() *SkillUpdate {
	mutation := newSkillMutation(c.config, OpUpdate)
	return &SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillClient) UpdateOne(_m *Skill) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkill(_m))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillClient) UpdateOneID(id int) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkillID(id))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Skill.
func (c *SkillClient) Delete() *SkillDelete {
	mutation := newSkillMutation(c.config, OpDelete)
	return &SkillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillClient) DeleteOne(_m *Skill) *SkillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillClient) DeleteOneID(id int) *SkillDeleteOne {
	builder := c.Delete().Where(skill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillDeleteOne{builder}
}

// Query returns a query builder for Skill.
func (c *SkillClient) Query() *SkillQuery {
	return &SkillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkill},
		inters: c.Interceptors(),
	}
}

// Get returns a Skill entity by its id.
func (c *SkillClient) Get(ctx context.Context, id int) (*Skill, error) {
	return c.Query().Where(skill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillClient) GetX(ctx context.Context, id int) *Skill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillClient) Hooks() []Hook {
	return c.hooks.Skill
}

// Interceptors returns the client interceptors.
func (c *SkillClient) Interceptors() []Interceptor {
	return c.inters.Skill
}

func (c *SkillClient) mutate(ctx context.Context, m *SkillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Skill mutation op: %q", m.Op())
	}
}

// WeekPlanClient is a client for the WeekPlan schema.
type WeekPlanClient struct {
	config
}

// NewWeekPlanClient returns a client for the WeekPlan from the given config.
func NewWeekPlanClient(c config) *WeekPlanClient {
	return &WeekPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weekplan.Hooks(f(g(h())))`.
func (c *WeekPlanClient) Use(hooks ...Hook) {
	c.hooks.WeekPlan = append(c.hooks.WeekPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weekplan.Intercept(f(g(h())))`.
func (c *WeekPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeekPlan = append(c.inters.WeekPlan, interceptors...)
}

// Create returns a builder for creating a WeekPlan entity.
func (c *WeekPlanClient) Create() *WeekPlanCreate {
	mutation := newWeekPlanMutation(c.config, OpCreate)
	return &WeekPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeekPlan entities.
func (c *WeekPlanClient) CreateBulk(builders ...*WeekPlanCreate) *WeekPlanCreateBulk {
	return &WeekPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeekPlanClient) MapCreateBulk(slice any, setFunc func(*WeekPlanCreate, int)) *WeekPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeekPlanCreateBulk{err: fmt.Errorf("calling to WeekPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeekPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeekPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeekPlan.
func (c *WeekPlanClient) Update() *WeekPlanUpdate {
	mutation := newWeekPlanMutation(c.config, OpUpdate)
	return &WeekPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeekPlanClient) UpdateOne(_m *WeekPlan) *WeekPlanUpdateOne {
	mutation := newWeekPlanMutation(c.config, OpUpdateOne, withWeekPlan(_m))
	return &WeekPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeekPlanClient) UpdateOneID(id int) *WeekPlanUpdateOne {
	mutation := newWeekPlanMutation(c.config, OpUpdateOne, withWeekPlanID(id))
	return &WeekPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeekPlan.
func (c *WeekPlanClient) Delete() *WeekPlanDelete {
	mutation := newWeekPlanMutation(c.config, OpDelete)
	return &WeekPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeekPlanClient) DeleteOne(_m *WeekPlan) *WeekPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeekPlanClient) DeleteOneID(id int) *WeekPlanDeleteOne {
	builder := c.Delete().Where(weekplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeekPlanDeleteOne{builder}
}

// Query returns a query builder for WeekPlan.
func (c *WeekPlanClient) Query() *WeekPlanQuery {
	return &WeekPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeekPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a WeekPlan entity by its id.
func (c *WeekPlanClient) Get(ctx context.Context, id int) (*WeekPlan, error) {
	return c.Query().Where(weekplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeekPlanClient) GetX(ctx context.Context, id int) *WeekPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WeekPlanClient) Hooks() []Hook {
	return c.hooks.WeekPlan
}

// Interceptors returns the client interceptors.
func (c *WeekPlanClient) Interceptors() []Interceptor {
	return c.inters.WeekPlan
}

func (c *WeekPlanClient) mutate(ctx context.Context, m *WeekPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeekPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeekPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeekPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeekPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WeekPlan mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DrillEvent, OutcomeEvent, Skill, WeekPlan []ent.Hook
	}
	inters struct {
		DrillEvent, OutcomeEvent, Skill, WeekPlan []ent.Interceptor
	}
)
