// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/halouxiaoyu/survey_backend/internal/repo/admin"
	"github.com/halouxiaoyu/survey_backend/internal/repo/adminsession"
	"github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	"github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
	"github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Admin is the client for interacting with the Admin builders.
	Admin *AdminClient
	// AdminSession is the client for interacting with the AdminSession builders.
	AdminSession *AdminSessionClient
	// Answer is the client for interacting with the Answer builders.
	Answer *AnswerClient
	// AssessmentLevel is the client for interacting with the AssessmentLevel builders.
	AssessmentLevel *AssessmentLevelClient
	// BranchRule is the client for interacting with the BranchRule builders.
	BranchRule *BranchRuleClient
	// Dimension is the client for interacting with the Dimension builders.
	Dimension *DimensionClient
	// DimensionScore is the client for interacting with the DimensionScore builders.
	DimensionScore *DimensionScoreClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// Questionnaire is the client for interacting with the Questionnaire builders.
	Questionnaire *QuestionnaireClient
	// Submission is the client for interacting with the Submission builders.
	Submission *SubmissionClient
	// SurveyOption is the client for interacting with the SurveyOption builders.
	SurveyOption *SurveyOptionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Admin = NewAdminClient(c.config)
	c.AdminSession = NewAdminSessionClient(c.config)
	c.Answer = NewAnswerClient(c.config)
	c.AssessmentLevel = NewAssessmentLevelClient(c.config)
	c.BranchRule = NewBranchRuleClient(c.config)
	c.Dimension = NewDimensionClient(c.config)
	c.DimensionScore = NewDimensionScoreClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.Questionnaire = NewQuestionnaireClient(c.config)
	c.Submission = NewSubmissionClient(c.config)
	c.SurveyOption = NewSurveyOptionClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Admin:           NewAdminClient(cfg),
		AdminSession:    NewAdminSessionClient(cfg),
		Answer:          NewAnswerClient(cfg),
		AssessmentLevel: NewAssessmentLevelClient(cfg),
		BranchRule:      NewBranchRuleClient(cfg),
		Dimension:       NewDimensionClient(cfg),
		DimensionScore:  NewDimensionScoreClient(cfg),
		Question:        NewQuestionClient(cfg),
		Questionnaire:   NewQuestionnaireClient(cfg),
		Submission:      NewSubmissionClient(cfg),
		SurveyOption:    NewSurveyOptionClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Admin:           NewAdminClient(cfg),
		AdminSession:    NewAdminSessionClient(cfg),
		Answer:          NewAnswerClient(cfg),
		AssessmentLevel: NewAssessmentLevelClient(cfg),
		BranchRule:      NewBranchRuleClient(cfg),
		Dimension:       NewDimensionClient(cfg),
		DimensionScore:  NewDimensionScoreClient(cfg),
		Question:        NewQuestionClient(cfg),
		Questionnaire:   NewQuestionnaireClient(cfg),
		Submission:      NewSubmissionClient(cfg),
		SurveyOption:    NewSurveyOptionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Admin.
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
		c.Admin, c.AdminSession, c.Answer, c.AssessmentLevel, c.BranchRule, c.Dimension,
		c.DimensionScore, c.Question, c.Questionnaire, c.Submission, c.SurveyOption,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Admin, c.AdminSession, c.Answer, c.AssessmentLevel, c.BranchRule, c.Dimension,
		c.DimensionScore, c.Question, c.Questionnaire, c.Submission, c.SurveyOption,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdminMutation:
		return c.Admin.mutate(ctx, m)
	case *AdminSessionMutation:
		return c.AdminSession.mutate(ctx, m)
	case *AnswerMutation:
		return c.Answer.mutate(ctx, m)
	case *AssessmentLevelMutation:
		return c.AssessmentLevel.mutate(ctx, m)
	case *BranchRuleMutation:
		return c.BranchRule.mutate(ctx, m)
	case *DimensionMutation:
		return c.Dimension.mutate(ctx, m)
	case *DimensionScoreMutation:
		return c.DimensionScore.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *QuestionnaireMutation:
		return c.Questionnaire.mutate(ctx, m)
	case *SubmissionMutation:
		return c.Submission.mutate(ctx, m)
	case *SurveyOptionMutation:
		return c.SurveyOption.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AdminClient is a client for the Admin schema.
type AdminClient struct {
	config
}

// NewAdminClient returns a client for the Admin from the given config.
func NewAdminClient(c config) *AdminClient {
	return &AdminClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `admin.Hooks(f(g(h())))`.
func (c *AdminClient) Use(hooks ...Hook) {
	c.hooks.Admin = append(c.hooks.Admin, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `admin.Intercept(f(g(h())))`.
func (c *AdminClient) Intercept(interceptors ...Interceptor) {
	c.inters.Admin = append(c.inters.Admin, interceptors...)
}

// Create returns a builder for creating a Admin entity.
func (c *AdminClient) Create() *AdminCreate {
	mutation := newAdminMutation(c.config, OpCreate)
	return &AdminCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Admin entities.
func (c *AdminClient) CreateBulk(builders ...*AdminCreate) *AdminCreateBulk {
	return &AdminCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdminClient) MapCreateBulk(slice any, setFunc func(*AdminCreate, int)) *AdminCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdminCreateBulk{err: fmt.Errorf("calling to AdminClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdminCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdminCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Admin.
func (c *AdminClient) Update() *AdminUpdate {
	mutation := newAdminMutation(c.config, OpUpdate)
	return &AdminUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdminClient) UpdateOne(_m *Admin) *AdminUpdateOne {
	mutation := newAdminMutation(c.config, OpUpdateOne, withAdmin(_m))
	return &AdminUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdminClient) UpdateOneID(id uuid.UUID) *AdminUpdateOne {
	mutation := newAdminMutation(c.config, OpUpdateOne, withAdminID(id))
	return &AdminUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Admin.
func (c *AdminClient) Delete() *AdminDelete {
	mutation := newAdminMutation(c.config, OpDelete)
	return &AdminDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdminClient) DeleteOne(_m *Admin) *AdminDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdminClient) DeleteOneID(id uuid.UUID) *AdminDeleteOne {
	builder := c.Delete().Where(admin.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdminDeleteOne{builder}
}

// Query returns a query builder for Admin.
func (c *AdminClient) Query() *AdminQuery {
	return &AdminQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdmin},
		inters: c.Interceptors(),
	}
}

// Get returns a Admin entity by its id.
func (c *AdminClient) Get(ctx context.Context, id uuid.UUID) (*Admin, error) {
	return c.Query().Where(admin.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdminClient) GetX(ctx context.Context, id uuid.UUID) *Admin {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessions queries the sessions edge of a Admin.
func (c *AdminClient) QuerySessions(_m *Admin) *AdminSessionQuery {
	query := (&AdminSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(admin.Table, admin.FieldID, id),
			sqlgraph.To(adminsession.Table, adminsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, admin.SessionsTable, admin.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AdminClient) Hooks() []Hook {
	return c.hooks.Admin
}

// Interceptors returns the client interceptors.
func (c *AdminClient) Interceptors() []Interceptor {
	return c.inters.Admin
}

func (c *AdminClient) mutate(ctx context.Context, m *AdminMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdminCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdminUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdminUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdminDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Admin mutation op: %q", m.Op())
	}
}

// AdminSessionClient is a client for the AdminSession schema.
type AdminSessionClient struct {
	config
}

// NewAdminSessionClient returns a client for the AdminSession from the given config.
func NewAdminSessionClient(c config) *AdminSessionClient {
	return &AdminSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adminsession.Hooks(f(g(h())))`.
func (c *AdminSessionClient) Use(hooks ...Hook) {
	c.hooks.AdminSession = append(c.hooks.AdminSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adminsession.Intercept(f(g(h())))`.
func (c *AdminSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdminSession = append(c.inters.AdminSession, interceptors...)
}

// Create returns a builder for creating a AdminSession entity.
func (c *AdminSessionClient) Create() *AdminSessionCreate {
	mutation := newAdminSessionMutation(c.config, OpCreate)
	return &AdminSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdminSession entities.
func (c *AdminSessionClient) CreateBulk(builders ...*AdminSessionCreate) *AdminSessionCreateBulk {
	return &AdminSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdminSessionClient) MapCreateBulk(slice any, setFunc func(*AdminSessionCreate, int)) *AdminSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdminSessionCreateBulk{err: fmt.Errorf("calling to AdminSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdminSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdminSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdminSession.
func (c *AdminSessionClient) Update() *AdminSessionUpdate {
	mutation := newAdminSessionMutation(c.config, OpUpdate)
	return &AdminSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdminSessionClient) UpdateOne(_m *AdminSession) *AdminSessionUpdateOne {
	mutation := newAdminSessionMutation(c.config, OpUpdateOne, withAdminSession(_m))
	return &AdminSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdminSessionClient) UpdateOneID(id uuid.UUID) *AdminSessionUpdateOne {
	mutation := newAdminSessionMutation(c.config, OpUpdateOne, withAdminSessionID(id))
	return &AdminSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdminSession.
func (c *AdminSessionClient) Delete() *AdminSessionDelete {
	mutation := newAdminSessionMutation(c.config, OpDelete)
	return &AdminSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdminSessionClient) DeleteOne(_m *AdminSession) *AdminSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdminSessionClient) DeleteOneID(id uuid.UUID) *AdminSessionDeleteOne {
	builder := c.Delete().Where(adminsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdminSessionDeleteOne{builder}
}

// Query returns a query builder for AdminSession.
func (c *AdminSessionClient) Query() *AdminSessionQuery {
	return &AdminSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdminSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AdminSession entity by its id.
func (c *AdminSessionClient) Get(ctx context.Context, id uuid.UUID) (*AdminSession, error) {
	return c.Query().Where(adminsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdminSessionClient) GetX(ctx context.Context, id uuid.UUID) *AdminSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAdmin queries the admin edge of a AdminSession.
func (c *AdminSessionClient) QueryAdmin(_m *AdminSession) *AdminQuery {
	query := (&AdminClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(adminsession.Table, adminsession.FieldID, id),
			sqlgraph.To(admin.Table, admin.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, adminsession.AdminTable, adminsession.AdminColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AdminSessionClient) Hooks() []Hook {
	return c.hooks.AdminSession
}

// Interceptors returns the client interceptors.
func (c *AdminSessionClient) Interceptors() []Interceptor {
	return c.inters.AdminSession
}

func (c *AdminSessionClient) mutate(ctx context.Context, m *AdminSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdminSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdminSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdminSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdminSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AdminSession mutation op: %q", m.Op())
	}
}

// AnswerClient is a client for the Answer schema.
type AnswerClient struct {
	config
}

// NewAnswerClient returns a client for the Answer from the given config.
func NewAnswerClient(c config) *AnswerClient {
	return &AnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answer.Hooks(f(g(h())))`.
func (c *AnswerClient) Use(hooks ...Hook) {
	c.hooks.Answer = append(c.hooks.Answer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answer.Intercept(f(g(h())))`.
func (c *AnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Answer = append(c.inters.Answer, interceptors...)
}

// Create returns a builder for creating a Answer entity.
func (c *AnswerClient) Create() *AnswerCreate {
	mutation := newAnswerMutation(c.config, OpCreate)
	return &AnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Answer entities.
func (c *AnswerClient) CreateBulk(builders ...*AnswerCreate) *AnswerCreateBulk {
	return &AnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerClient) MapCreateBulk(slice any, setFunc func(*AnswerCreate, int)) *AnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerCreateBulk{err: fmt.Errorf("calling to AnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Answer.
func (c *AnswerClient) Update() *AnswerUpdate {
	mutation := newAnswerMutation(c.config, OpUpdate)
	return &AnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerClient) UpdateOne(_m *Answer) *AnswerUpdateOne {
	mutation := newAnswerMutation(c.config, OpUpdateOne, withAnswer(_m))
	return &AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerClient) UpdateOneID(id uuid.UUID) *AnswerUpdateOne {
	mutation := newAnswerMutation(c.config, OpUpdateOne, withAnswerID(id))
	return &AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Answer.
func (c *AnswerClient) Delete() *AnswerDelete {
	mutation := newAnswerMutation(c.config, OpDelete)
	return &AnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerClient) DeleteOne(_m *Answer) *AnswerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerClient) DeleteOneID(id uuid.UUID) *AnswerDeleteOne {
	builder := c.Delete().Where(answer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerDeleteOne{builder}
}

// Query returns a query builder for Answer.
func (c *AnswerClient) Query() *AnswerQuery {
	return &AnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a Answer entity by its id.
func (c *AnswerClient) Get(ctx context.Context, id uuid.UUID) (*Answer, error) {
	return c.Query().Where(answer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerClient) GetX(ctx context.Context, id uuid.UUID) *Answer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmission queries the submission edge of a Answer.
func (c *AnswerClient) QuerySubmission(_m *Answer) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answer.Table, answer.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, answer.SubmissionTable, answer.SubmissionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestion queries the question edge of a Answer.
func (c *AnswerClient) QueryQuestion(_m *Answer) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answer.Table, answer.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, answer.QuestionTable, answer.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnswerClient) Hooks() []Hook {
	return c.hooks.Answer
}

// Interceptors returns the client interceptors.
func (c *AnswerClient) Interceptors() []Interceptor {
	return c.inters.Answer
}

func (c *AnswerClient) mutate(ctx context.Context, m *AnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Answer mutation op: %q", m.Op())
	}
}

// AssessmentLevelClient is a client for the AssessmentLevel schema.
type AssessmentLevelClient struct {
	config
}

// NewAssessmentLevelClient returns a client for the AssessmentLevel from the given config.
func NewAssessmentLevelClient(c config) *AssessmentLevelClient {
	return &AssessmentLevelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentlevel.Hooks(f(g(h())))`.
func (c *AssessmentLevelClient) Use(hooks ...Hook) {
	c.hooks.AssessmentLevel = append(c.hooks.AssessmentLevel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentlevel.Intercept(f(g(h())))`.
func (c *AssessmentLevelClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentLevel = append(c.inters.AssessmentLevel, interceptors...)
}

// Create returns a builder for creating a AssessmentLevel entity.
func (c *AssessmentLevelClient) Create() *AssessmentLevelCreate {
	mutation := newAssessmentLevelMutation(c.config, OpCreate)
	return &AssessmentLevelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentLevel entities.
func (c *AssessmentLevelClient) CreateBulk(builders ...*AssessmentLevelCreate) *AssessmentLevelCreateBulk {
	return &AssessmentLevelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentLevelClient) MapCreateBulk(slice any, setFunc func(*AssessmentLevelCreate, int)) *AssessmentLevelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentLevelCreateBulk{err: fmt.Errorf("calling to AssessmentLevelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentLevelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentLevelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentLevel.
func (c *AssessmentLevelClient) Update() *AssessmentLevelUpdate {
	mutation := newAssessmentLevelMutation(c.config, OpUpdate)
	return &AssessmentLevelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentLevelClient) UpdateOne(_m *AssessmentLevel) *AssessmentLevelUpdateOne {
	mutation := newAssessmentLevelMutation(c.config, OpUpdateOne, withAssessmentLevel(_m))
	return &AssessmentLevelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentLevelClient) UpdateOneID(id uuid.UUID) *AssessmentLevelUpdateOne {
	mutation := newAssessmentLevelMutation(c.config, OpUpdateOne, withAssessmentLevelID(id))
	return &AssessmentLevelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentLevel.
func (c *AssessmentLevelClient) Delete() *AssessmentLevelDelete {
	mutation := newAssessmentLevelMutation(c.config, OpDelete)
	return &AssessmentLevelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentLevelClient) DeleteOne(_m *AssessmentLevel) *AssessmentLevelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentLevelClient) DeleteOneID(id uuid.UUID) *AssessmentLevelDeleteOne {
	builder := c.Delete().Where(assessmentlevel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentLevelDeleteOne{builder}
}

// Query returns a query builder for AssessmentLevel.
func (c *AssessmentLevelClient) Query() *AssessmentLevelQuery {
	return &AssessmentLevelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentLevel},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentLevel entity by its id.
func (c *AssessmentLevelClient) Get(ctx context.Context, id uuid.UUID) (*AssessmentLevel, error) {
	return c.Query().Where(assessmentlevel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentLevelClient) GetX(ctx context.Context, id uuid.UUID) *AssessmentLevel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestionnaire queries the questionnaire edge of a AssessmentLevel.
func (c *AssessmentLevelClient) QueryQuestionnaire(_m *AssessmentLevel) *QuestionnaireQuery {
	query := (&QuestionnaireClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentlevel.Table, assessmentlevel.FieldID, id),
			sqlgraph.To(questionnaire.Table, questionnaire.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentlevel.QuestionnaireTable, assessmentlevel.QuestionnaireColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssessmentLevelClient) Hooks() []Hook {
	return c.hooks.AssessmentLevel
}

// Interceptors returns the client interceptors.
func (c *AssessmentLevelClient) Interceptors() []Interceptor {
	return c.inters.AssessmentLevel
}

func (c *AssessmentLevelClient) mutate(ctx context.Context, m *AssessmentLevelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentLevelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentLevelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentLevelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentLevelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AssessmentLevel mutation op: %q", m.Op())
	}
}

// BranchRuleClient is a client for the BranchRule schema.
type BranchRuleClient struct {
	config
}

// NewBranchRuleClient returns a client for the BranchRule from the given config.
func NewBranchRuleClient(c config) *BranchRuleClient {
	return &BranchRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `branchrule.Hooks(f(g(h())))`.
func (c *BranchRuleClient) Use(hooks ...Hook) {
	c.hooks.BranchRule = append(c.hooks.BranchRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `branchrule.Intercept(f(g(h())))`.
func (c *BranchRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.BranchRule = append(c.inters.BranchRule, interceptors...)
}

// Create returns a builder for creating a BranchRule entity.
func (c *BranchRuleClient) Create() *BranchRuleCreate {
	mutation := newBranchRuleMutation(c.config, OpCreate)
	return &BranchRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BranchRule entities.
func (c *BranchRuleClient) CreateBulk(builders ...*BranchRuleCreate) *BranchRuleCreateBulk {
	return &BranchRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BranchRuleClient) MapCreateBulk(slice any, setFunc func(*BranchRuleCreate, int)) *BranchRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BranchRuleCreateBulk{err: fmt.Errorf("calling to BranchRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BranchRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BranchRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BranchRule.
func (c *BranchRuleClient) Update() *BranchRuleUpdate {
	mutation := newBranchRuleMutation(c.config, OpUpdate)
	return &BranchRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BranchRuleClient) UpdateOne(_m *BranchRule) *BranchRuleUpdateOne {
	mutation := newBranchRuleMutation(c.config, OpUpdateOne, withBranchRule(_m))
	return &BranchRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BranchRuleClient) UpdateOneID(id uuid.UUID) *BranchRuleUpdateOne {
	mutation := newBranchRuleMutation(c.config, OpUpdateOne, withBranchRuleID(id))
	return &BranchRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BranchRule.
func (c *BranchRuleClient) Delete() *BranchRuleDelete {
	mutation := newBranchRuleMutation(c.config, OpDelete)
	return &BranchRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BranchRuleClient) DeleteOne(_m *BranchRule) *BranchRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BranchRuleClient) DeleteOneID(id uuid.UUID) *BranchRuleDeleteOne {
	builder := c.Delete().Where(branchrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BranchRuleDeleteOne{builder}
}

// Query returns a query builder for BranchRule.
func (c *BranchRuleClient) Query() *BranchRuleQuery {
	return &BranchRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBranchRule},
		inters: c.Interceptors(),
	}
}

// Get returns a BranchRule entity by its id.
func (c *BranchRuleClient) Get(ctx context.Context, id uuid.UUID) (*BranchRule, error) {
	return c.Query().Where(branchrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BranchRuleClient) GetX(ctx context.Context, id uuid.UUID) *BranchRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestionnaire queries the questionnaire edge of a BranchRule.
func (c *BranchRuleClient) QueryQuestionnaire(_m *BranchRule) *QuestionnaireQuery {
	query := (&QuestionnaireClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(branchrule.Table, branchrule.FieldID, id),
			sqlgraph.To(questionnaire.Table, questionnaire.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, branchrule.QuestionnaireTable, branchrule.QuestionnaireColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestion queries the question edge of a BranchRule.
func (c *BranchRuleClient) QueryQuestion(_m *BranchRule) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(branchrule.Table, branchrule.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, branchrule.QuestionTable, branchrule.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BranchRuleClient) Hooks() []Hook {
	return c.hooks.BranchRule
}

// Interceptors returns the client interceptors.
func (c *BranchRuleClient) Interceptors() []Interceptor {
	return c.inters.BranchRule
}

func (c *BranchRuleClient) mutate(ctx context.Context, m *BranchRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BranchRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BranchRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BranchRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BranchRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BranchRule mutation op: %q", m.Op())
	}
}

// DimensionClient is a client for the Dimension schema.
type DimensionClient struct {
	config
}

// NewDimensionClient returns a client for the Dimension from the given config.
func NewDimensionClient(c config) *DimensionClient {
	return &DimensionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dimension.Hooks(f(g(h())))`.
func (c *DimensionClient) Use(hooks ...Hook) {
	c.hooks.Dimension = append(c.hooks.Dimension, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dimension.Intercept(f(g(h())))`.
func (c *DimensionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Dimension = append(c.inters.Dimension, interceptors...)
}

// Create returns a builder for creating a Dimension entity.
func (c *DimensionClient) Create() *DimensionCreate {
	mutation := newDimensionMutation(c.config, OpCreate)
	return &DimensionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Dimension entities.
func (c *DimensionClient) CreateBulk(builders ...*DimensionCreate) *DimensionCreateBulk {
	return &DimensionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DimensionClient) MapCreateBulk(slice any, setFunc func(*DimensionCreate, int)) *DimensionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DimensionCreateBulk{err: fmt.Errorf("calling to DimensionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DimensionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DimensionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Dimension.
func (c *DimensionClient) Update() *DimensionUpdate {
	mutation := newDimensionMutation(c.config, OpUpdate)
	return &DimensionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DimensionClient) UpdateOne(_m *Dimension) *DimensionUpdateOne {
	mutation := newDimensionMutation(c.config, OpUpdateOne, withDimension(_m))
	return &DimensionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DimensionClient) UpdateOneID(id uuid.UUID) *DimensionUpdateOne {
	mutation := newDimensionMutation(c.config, OpUpdateOne, withDimensionID(id))
	return &DimensionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Dimension.
func (c *DimensionClient) Delete() *DimensionDelete {
	mutation := newDimensionMutation(c.config, OpDelete)
	return &DimensionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DimensionClient) DeleteOne(_m *Dimension) *DimensionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DimensionClient) DeleteOneID(id uuid.UUID) *DimensionDeleteOne {
	builder := c.Delete().Where(dimension.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DimensionDeleteOne{builder}
}

// Query returns a query builder for Dimension.
func (c *DimensionClient) Query() *DimensionQuery {
	return &DimensionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDimension},
		inters: c.Interceptors(),
	}
}

// Get returns a Dimension entity by its id.
func (c *DimensionClient) Get(ctx context.Context, id uuid.UUID) (*Dimension, error) {
	return c.Query().Where(dimension.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DimensionClient) GetX(ctx context.Context, id uuid.UUID) *Dimension {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestionnaire queries the questionnaire edge of a Dimension.
func (c *DimensionClient) QueryQuestionnaire(_m *Dimension) *QuestionnaireQuery {
	query := (&QuestionnaireClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dimension.Table, dimension.FieldID, id),
			sqlgraph.To(questionnaire.Table, questionnaire.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dimension.QuestionnaireTable, dimension.QuestionnaireColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a Dimension.
func (c *DimensionClient) QueryQuestions(_m *Dimension) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dimension.Table, dimension.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dimension.QuestionsTable, dimension.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DimensionClient) Hooks() []Hook {
	return c.hooks.Dimension
}

// Interceptors returns the client interceptors.
func (c *DimensionClient) Interceptors() []Interceptor {
	return c.inters.Dimension
}

func (c *DimensionClient) mutate(ctx context.Context, m *DimensionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DimensionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DimensionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DimensionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DimensionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Dimension mutation op: %q", m.Op())
	}
}

// DimensionScoreClient is a client for the DimensionScore schema.
type DimensionScoreClient struct {
	config
}

// NewDimensionScoreClient returns a client for the DimensionScore from the given config.
func NewDimensionScoreClient(c config) *DimensionScoreClient {
	return &DimensionScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dimensionscore.Hooks(f(g(h())))`.
func (c *DimensionScoreClient) Use(hooks ...Hook) {
	c.hooks.DimensionScore = append(c.hooks.DimensionScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dimensionscore.Intercept(f(g(h())))`.
func (c *DimensionScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.DimensionScore = append(c.inters.DimensionScore, interceptors...)
}

// Create returns a builder for creating a DimensionScore entity.
func (c *DimensionScoreClient) Create() *DimensionScoreCreate {
	mutation := newDimensionScoreMutation(c.config, OpCreate)
	return &DimensionScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DimensionScore entities.
func (c *DimensionScoreClient) CreateBulk(builders ...*DimensionScoreCreate) *DimensionScoreCreateBulk {
	return &DimensionScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DimensionScoreClient) MapCreateBulk(slice any, setFunc func(*DimensionScoreCreate, int)) *DimensionScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DimensionScoreCreateBulk{err: fmt.Errorf("calling to DimensionScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DimensionScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DimensionScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DimensionScore.
func (c *DimensionScoreClient) Update() *DimensionScoreUpdate {
	mutation := newDimensionScoreMutation(c.config, OpUpdate)
	return &DimensionScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DimensionScoreClient) UpdateOne(_m *DimensionScore) *DimensionScoreUpdateOne {
	mutation := newDimensionScoreMutation(c.config, OpUpdateOne, withDimensionScore(_m))
	return &DimensionScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DimensionScoreClient) UpdateOneID(id uuid.UUID) *DimensionScoreUpdateOne {
	mutation := newDimensionScoreMutation(c.config, OpUpdateOne, withDimensionScoreID(id))
	return &DimensionScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DimensionScore.
func (c *DimensionScoreClient) Delete() *DimensionScoreDelete {
	mutation := newDimensionScoreMutation(c.config, OpDelete)
	return &DimensionScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DimensionScoreClient) DeleteOne(_m *DimensionScore) *DimensionScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DimensionScoreClient) DeleteOneID(id uuid.UUID) *DimensionScoreDeleteOne {
	builder := c.Delete().Where(dimensionscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DimensionScoreDeleteOne{builder}
}

// Query returns a query builder for DimensionScore.
func (c *DimensionScoreClient) Query() *DimensionScoreQuery {
	return &DimensionScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDimensionScore},
		inters: c.Interceptors(),
	}
}

// Get returns a DimensionScore entity by its id.
func (c *DimensionScoreClient) Get(ctx context.Context, id uuid.UUID) (*DimensionScore, error) {
	return c.Query().Where(dimensionscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DimensionScoreClient) GetX(ctx context.Context, id uuid.UUID) *DimensionScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmission queries the submission edge of a DimensionScore.
func (c *DimensionScoreClient) QuerySubmission(_m *DimensionScore) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dimensionscore.Table, dimensionscore.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dimensionscore.SubmissionTable, dimensionscore.SubmissionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DimensionScoreClient) Hooks() []Hook {
	return c.hooks.DimensionScore
}

// Interceptors returns the client interceptors.
func (c *DimensionScoreClient) Interceptors() []Interceptor {
	return c.inters.DimensionScore
}

func (c *DimensionScoreClient) mutate(ctx context.Context, m *DimensionScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DimensionScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DimensionScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DimensionScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DimensionScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DimensionScore mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id uuid.UUID) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id uuid.UUID) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id uuid.UUID) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id uuid.UUID) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestionnaire queries the questionnaire edge of a Question.
func (c *QuestionClient) QueryQuestionnaire(_m *Question) *QuestionnaireQuery {
	query := (&QuestionnaireClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(questionnaire.Table, questionnaire.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, question.QuestionnaireTable, question.QuestionnaireColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDimension queries the dimension edge of a Question.
func (c *QuestionClient) QueryDimension(_m *Question) *DimensionQuery {
	query := (&DimensionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(dimension.Table, dimension.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, question.DimensionTable, question.DimensionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOptions queries the options edge of a Question.
func (c *QuestionClient) QueryOptions(_m *Question) *SurveyOptionQuery {
	query := (&SurveyOptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(surveyoption.Table, surveyoption.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, question.OptionsTable, question.OptionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBranchRules queries the branch_rules edge of a Question.
func (c *QuestionClient) QueryBranchRules(_m *Question) *BranchRuleQuery {
	query := (&BranchRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(branchrule.Table, branchrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, question.BranchRulesTable, question.BranchRulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnswers queries the answers edge of a Question.
func (c *QuestionClient) QueryAnswers(_m *Question) *AnswerQuery {
	query := (&AnswerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(answer.Table, answer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, question.AnswersTable, question.AnswersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Question mutation op: %q", m.Op())
	}
}

// QuestionnaireClient is a client for the Questionnaire schema.
type QuestionnaireClient struct {
	config
}

// NewQuestionnaireClient returns a client for the Questionnaire from the given config.
func NewQuestionnaireClient(c config) *QuestionnaireClient {
	return &QuestionnaireClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionnaire.Hooks(f(g(h())))`.
func (c *QuestionnaireClient) Use(hooks ...Hook) {
	c.hooks.Questionnaire = append(c.hooks.Questionnaire, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionnaire.Intercept(f(g(h())))`.
func (c *QuestionnaireClient) Intercept(interceptors ...Interceptor) {
	c.inters.Questionnaire = append(c.inters.Questionnaire, interceptors...)
}

// Create returns a builder for creating a Questionnaire entity.
func (c *QuestionnaireClient) Create() *QuestionnaireCreate {
	mutation := newQuestionnaireMutation(c.config, OpCreate)
	return &QuestionnaireCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Questionnaire entities.
func (c *QuestionnaireClient) CreateBulk(builders ...*QuestionnaireCreate) *QuestionnaireCreateBulk {
	return &QuestionnaireCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionnaireClient) MapCreateBulk(slice any, setFunc func(*QuestionnaireCreate, int)) *QuestionnaireCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionnaireCreateBulk{err: fmt.Errorf("calling to QuestionnaireClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionnaireCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionnaireCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Questionnaire.
func (c *QuestionnaireClient) Update() *QuestionnaireUpdate {
	mutation := newQuestionnaireMutation(c.config, OpUpdate)
	return &QuestionnaireUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionnaireClient) UpdateOne(_m *Questionnaire) *QuestionnaireUpdateOne {
	mutation := newQuestionnaireMutation(c.config, OpUpdateOne, withQuestionnaire(_m))
	return &QuestionnaireUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionnaireClient) UpdateOneID(id uuid.UUID) *QuestionnaireUpdateOne {
	mutation := newQuestionnaireMutation(c.config, OpUpdateOne, withQuestionnaireID(id))
	return &QuestionnaireUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Questionnaire.
func (c *QuestionnaireClient) Delete() *QuestionnaireDelete {
	mutation := newQuestionnaireMutation(c.config, OpDelete)
	return &QuestionnaireDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionnaireClient) DeleteOne(_m *Questionnaire) *QuestionnaireDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionnaireClient) DeleteOneID(id uuid.UUID) *QuestionnaireDeleteOne {
	builder := c.Delete().Where(questionnaire.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionnaireDeleteOne{builder}
}

// Query returns a query builder for Questionnaire.
func (c *QuestionnaireClient) Query() *QuestionnaireQuery {
	return &QuestionnaireQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionnaire},
		inters: c.Interceptors(),
	}
}

// Get returns a Questionnaire entity by its id.
func (c *QuestionnaireClient) Get(ctx context.Context, id uuid.UUID) (*Questionnaire, error) {
	return c.Query().Where(questionnaire.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionnaireClient) GetX(ctx context.Context, id uuid.UUID) *Questionnaire {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a Questionnaire.
func (c *QuestionnaireClient) QueryParent(_m *Questionnaire) *QuestionnaireQuery {
	query := (&QuestionnaireClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionnaire.Table, questionnaire.FieldID, id),
			sqlgraph.To(questionnaire.Table, questionnaire.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, questionnaire.ParentTable, questionnaire.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a Questionnaire.
func (c *QuestionnaireClient) QueryChildren(_m *Questionnaire) *QuestionnaireQuery {
	query := (&QuestionnaireClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionnaire.Table, questionnaire.FieldID, id),
			sqlgraph.To(questionnaire.Table, questionnaire.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionnaire.ChildrenTable, questionnaire.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDimensions queries the dimensions edge of a Questionnaire.
func (c *QuestionnaireClient) QueryDimensions(_m *Questionnaire) *DimensionQuery {
	query := (&DimensionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionnaire.Table, questionnaire.FieldID, id),
			sqlgraph.To(dimension.Table, dimension.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionnaire.DimensionsTable, questionnaire.DimensionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a Questionnaire.
func (c *QuestionnaireClient) QueryQuestions(_m *Questionnaire) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionnaire.Table, questionnaire.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionnaire.QuestionsTable, questionnaire.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubmissions queries the submissions edge of a Questionnaire.
func (c *QuestionnaireClient) QuerySubmissions(_m *Questionnaire) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionnaire.Table, questionnaire.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionnaire.SubmissionsTable, questionnaire.SubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssessmentLevels queries the assessment_levels edge of a Questionnaire.
func (c *QuestionnaireClient) QueryAssessmentLevels(_m *Questionnaire) *AssessmentLevelQuery {
	query := (&AssessmentLevelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionnaire.Table, questionnaire.FieldID, id),
			sqlgraph.To(assessmentlevel.Table, assessmentlevel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionnaire.AssessmentLevelsTable, questionnaire.AssessmentLevelsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBranchRules queries the branch_rules edge of a Questionnaire.
func (c *QuestionnaireClient) QueryBranchRules(_m *Questionnaire) *BranchRuleQuery {
	query := (&BranchRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(questionnaire.Table, questionnaire.FieldID, id),
			sqlgraph.To(branchrule.Table, branchrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, questionnaire.BranchRulesTable, questionnaire.BranchRulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionnaireClient) Hooks() []Hook {
	return c.hooks.Questionnaire
}

// Interceptors returns the client interceptors.
func (c *QuestionnaireClient) Interceptors() []Interceptor {
	return c.inters.Questionnaire
}

func (c *QuestionnaireClient) mutate(ctx context.Context, m *QuestionnaireMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionnaireCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionnaireUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionnaireUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionnaireDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Questionnaire mutation op: %q", m.Op())
	}
}

// SubmissionClient is a client for the Submission schema.
type SubmissionClient struct {
	config
}

// NewSubmissionClient returns a client for the Submission from the given config.
func NewSubmissionClient(c config) *SubmissionClient {
	return &SubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submission.Hooks(f(g(h())))`.
func (c *SubmissionClient) Use(hooks ...Hook) {
	c.hooks.Submission = append(c.hooks.Submission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submission.Intercept(f(g(h())))`.
func (c *SubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Submission = append(c.inters.Submission, interceptors...)
}

// Create returns a builder for creating a Submission entity.
func (c *SubmissionClient) Create() *SubmissionCreate {
	mutation := newSubmissionMutation(c.config, OpCreate)
	return &SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Submission entities.
func (c *SubmissionClient) CreateBulk(builders ...*SubmissionCreate) *SubmissionCreateBulk {
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionClient) MapCreateBulk(slice any, setFunc func(*SubmissionCreate, int)) *SubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionCreateBulk{err: fmt.Errorf("calling to SubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Submission.
func (c *SubmissionClient) Update() *SubmissionUpdate {
	mutation := newSubmissionMutation(c.config, OpUpdate)
	return &SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionClient) UpdateOne(_m *Submission) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmission(_m))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionClient) UpdateOneID(id uuid.UUID) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmissionID(id))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Submission.
func (c *SubmissionClient) Delete() *SubmissionDelete {
	mutation := newSubmissionMutation(c.config, OpDelete)
	return &SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionClient) DeleteOne(_m *Submission) *SubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionClient) DeleteOneID(id uuid.UUID) *SubmissionDeleteOne {
	builder := c.Delete().Where(submission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionDeleteOne{builder}
}

// Query returns a query builder for Submission.
func (c *SubmissionClient) Query() *SubmissionQuery {
	return &SubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a Submission entity by its id.
func (c *SubmissionClient) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	return c.Query().Where(submission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionClient) GetX(ctx context.Context, id uuid.UUID) *Submission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestionnaire queries the questionnaire edge of a Submission.
func (c *SubmissionClient) QueryQuestionnaire(_m *Submission) *QuestionnaireQuery {
	query := (&QuestionnaireClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(questionnaire.Table, questionnaire.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submission.QuestionnaireTable, submission.QuestionnaireColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnswers queries the answers edge of a Submission.
func (c *SubmissionClient) QueryAnswers(_m *Submission) *AnswerQuery {
	query := (&AnswerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(answer.Table, answer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submission.AnswersTable, submission.AnswersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDimensionScores queries the dimension_scores edge of a Submission.
func (c *SubmissionClient) QueryDimensionScores(_m *Submission) *DimensionScoreQuery {
	query := (&DimensionScoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(dimensionscore.Table, dimensionscore.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submission.DimensionScoresTable, submission.DimensionScoresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmissionClient) Hooks() []Hook {
	return c.hooks.Submission
}

// Interceptors returns the client interceptors.
func (c *SubmissionClient) Interceptors() []Interceptor {
	return c.inters.Submission
}

func (c *SubmissionClient) mutate(ctx context.Context, m *SubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Submission mutation op: %q", m.Op())
	}
}

// SurveyOptionClient is a client for the SurveyOption schema.
type SurveyOptionClient struct {
	config
}

// NewSurveyOptionClient returns a client for the SurveyOption from the given config.
func NewSurveyOptionClient(c config) *SurveyOptionClient {
	return &SurveyOptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `surveyoption.Hooks(f(g(h())))`.
func (c *SurveyOptionClient) Use(hooks ...Hook) {
	c.hooks.SurveyOption = append(c.hooks.SurveyOption, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `surveyoption.Intercept(f(g(h())))`.
func (c *SurveyOptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SurveyOption = append(c.inters.SurveyOption, interceptors...)
}

// Create returns a builder for creating a SurveyOption entity.
func (c *SurveyOptionClient) Create() *SurveyOptionCreate {
	mutation := newSurveyOptionMutation(c.config, OpCreate)
	return &SurveyOptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SurveyOption entities.
func (c *SurveyOptionClient) CreateBulk(builders ...*SurveyOptionCreate) *SurveyOptionCreateBulk {
	return &SurveyOptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SurveyOptionClient) MapCreateBulk(slice any, setFunc func(*SurveyOptionCreate, int)) *SurveyOptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SurveyOptionCreateBulk{err: fmt.Errorf("calling to SurveyOptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SurveyOptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SurveyOptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SurveyOption.
func (c *SurveyOptionClient) Update() *SurveyOptionUpdate {
	mutation := newSurveyOptionMutation(c.config, OpUpdate)
	return &SurveyOptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SurveyOptionClient) UpdateOne(_m *SurveyOption) *SurveyOptionUpdateOne {
	mutation := newSurveyOptionMutation(c.config, OpUpdateOne, withSurveyOption(_m))
	return &SurveyOptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SurveyOptionClient) UpdateOneID(id uuid.UUID) *SurveyOptionUpdateOne {
	mutation := newSurveyOptionMutation(c.config, OpUpdateOne, withSurveyOptionID(id))
	return &SurveyOptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SurveyOption.
func (c *SurveyOptionClient) Delete() *SurveyOptionDelete {
	mutation := newSurveyOptionMutation(c.config, OpDelete)
	return &SurveyOptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SurveyOptionClient) DeleteOne(_m *SurveyOption) *SurveyOptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SurveyOptionClient) DeleteOneID(id uuid.UUID) *SurveyOptionDeleteOne {
	builder := c.Delete().Where(surveyoption.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SurveyOptionDeleteOne{builder}
}

// Query returns a query builder for SurveyOption.
func (c *SurveyOptionClient) Query() *SurveyOptionQuery {
	return &SurveyOptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSurveyOption},
		inters: c.Interceptors(),
	}
}

// Get returns a SurveyOption entity by its id.
func (c *SurveyOptionClient) Get(ctx context.Context, id uuid.UUID) (*SurveyOption, error) {
	return c.Query().Where(surveyoption.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SurveyOptionClient) GetX(ctx context.Context, id uuid.UUID) *SurveyOption {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestion queries the question edge of a SurveyOption.
func (c *SurveyOptionClient) QueryQuestion(_m *SurveyOption) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(surveyoption.Table, surveyoption.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, surveyoption.QuestionTable, surveyoption.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SurveyOptionClient) Hooks() []Hook {
	return c.hooks.SurveyOption
}

// Interceptors returns the client interceptors.
func (c *SurveyOptionClient) Interceptors() []Interceptor {
	return c.inters.SurveyOption
}

func (c *SurveyOptionClient) mutate(ctx context.Context, m *SurveyOptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SurveyOptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SurveyOptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SurveyOptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SurveyOptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SurveyOption mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Admin, AdminSession, Answer, AssessmentLevel, BranchRule, Dimension,
		DimensionScore, Question, Questionnaire, Submission, SurveyOption []ent.Hook
	}
	inters struct {
		Admin, AdminSession, Answer, AssessmentLevel, BranchRule, Dimension,
		DimensionScore, Question, Questionnaire, Submission,
		SurveyOption []ent.Interceptor
	}
)
