package di

import (
	"net/http"
	"strings"

	"github.com/uptrace/bun"

	"github.com/draftforge/go-sitegen/internal/editor"
	"github.com/draftforge/go-sitegen/internal/generation"
	"github.com/draftforge/go-sitegen/internal/logging"
	"github.com/draftforge/go-sitegen/internal/logging/console"
	"github.com/draftforge/go-sitegen/internal/logging/gologger"
	"github.com/draftforge/go-sitegen/internal/render"
	"github.com/draftforge/go-sitegen/internal/runtimeconfig"
	"github.com/draftforge/go-sitegen/internal/storage"
	"github.com/draftforge/go-sitegen/pkg/interfaces"
)

// Container wires module dependencies from configuration. Every binding can
// be overridden with an Option before services are constructed.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	bunDB          *bun.DB
	httpClient     generation.HTTPClient
	idGenerator    editor.IDGenerator

	store         storage.Store
	registry      *render.Registry
	editorSvc     *editor.Engine
	generationSvc *generation.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the configured logging provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBunDB supplies the database used when storage is configured as "bun".
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithStore overrides the document store binding entirely.
func WithStore(store storage.Store) Option {
	return func(c *Container) {
		c.store = store
	}
}

// WithRegistry overrides the section renderer registry. The override is used
// as-is; RenderConfig defaults are not applied to it.
func WithRegistry(registry *render.Registry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// WithHTTPClient overrides the HTTP client used by the generation service.
func WithHTTPClient(client generation.HTTPClient) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithIDGenerator overrides section id generation in the editor.
func WithIDGenerator(generator editor.IDGenerator) Option {
	return func(c *Container) {
		c.idGenerator = generator
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if c.registry == nil {
		c.registry = render.NewRegistry(
			render.WithAssetBaseURL(cfg.Render.AssetBaseURL),
			render.WithLogger(logging.RenderLogger(c.loggerProvider)),
		)
	}
	c.configureStorage()
	c.configureEditor()
	if err := c.configureGeneration(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	case "noop":
		// Module loggers already default to no-op.
	default:
		level := consoleLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{MinLevel: &level})
	}
	return nil
}

func (c *Container) configureStorage() {
	if c.store != nil {
		return
	}
	if !c.Config.Features.Persistence {
		return
	}

	if strings.ToLower(strings.TrimSpace(c.Config.Storage.Provider)) == "bun" && c.bunDB != nil {
		c.store = storage.NewBunStore(c.bunDB,
			storage.WithBunLogger(logging.StorageLogger(c.loggerProvider)),
		)
		return
	}
	c.store = storage.NewMemoryStore()
}

func (c *Container) configureEditor() {
	editorOpts := []editor.Option{
		editor.WithLogger(logging.EditorLogger(c.loggerProvider)),
	}
	if c.idGenerator != nil {
		editorOpts = append(editorOpts, editor.WithIDGenerator(c.idGenerator))
	}
	c.editorSvc = editor.NewEngine(c.registry, editorOpts...)
}

func (c *Container) configureGeneration() error {
	if !c.Config.Features.Generation {
		return nil
	}

	client := c.httpClient
	if client == nil {
		client = &http.Client{Timeout: c.Config.Generator.Timeout}
	}

	svcOpts := []generation.Option{
		generation.WithHTTPClient(client),
		generation.WithLogger(logging.GenerationLogger(c.loggerProvider)),
	}
	if endpoint := strings.TrimSpace(c.Config.Generator.RegenerationEndpoint); endpoint != "" {
		svcOpts = append(svcOpts, generation.WithRegenerationEndpoint(endpoint))
	}

	svc, err := generation.NewService(c.Config.Generator.Endpoint, svcOpts...)
	if err != nil {
		return err
	}
	c.generationSvc = svc
	return nil
}

// LoggerProvider exposes the configured logging provider, possibly nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Store exposes the document store. It is nil when the persistence feature is
// off and no override was supplied.
func (c *Container) Store() storage.Store {
	return c.store
}

// Registry exposes the section renderer registry.
func (c *Container) Registry() *render.Registry {
	return c.registry
}

// Editor exposes the document mutation engine.
func (c *Container) Editor() *editor.Engine {
	return c.editorSvc
}

// Generation exposes the generation service, nil when the feature is off.
func (c *Container) Generation() *generation.Service {
	return c.generationSvc
}

func consoleLevel(raw string) console.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}
