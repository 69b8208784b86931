package component

import (
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/logfields"
	"git.home.luguber.info/inful/docweaver/internal/styles"
)

const fileExt = ".html"

// Registry resolves component names to definitions. It is safe for concurrent use.
type Registry struct {
	defs   map[string]*definition
	names  []string
	salt   string
	logger *slog.Logger

	mu     sync.Mutex
	owners map[string]string
	scoped map[string]*styles.Scoped
}

type definition struct {
	name   string
	source string

	once   sync.Once
	scoped *styles.Scoped
	err    error
}

// Option configures a Registry.
type Option func(*Registry)

// WithSalt sets the salt mixed into every scoped class suffix.
func WithSalt(salt string) Option {
	return func(r *Registry) { r.salt = salt }
}

// WithLogger sets the registry logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry builds a registry from in-memory definitions keyed by component name.
func NewRegistry(defs map[string]string, opts ...Option) *Registry {
	r := &Registry{
		defs:   make(map[string]*definition, len(defs)),
		logger: slog.Default(),
		owners: map[string]string{},
		scoped: map[string]*styles.Scoped{},
	}
	for _, opt := range opts {
		opt(r)
	}
	for name, source := range defs {
		r.defs[name] = &definition{name: name, source: source}
		r.names = append(r.names, name)
	}
	slices.Sort(r.names)
	return r
}

// LoadRegistry reads every *.html file in dir. A missing directory yields an empty registry.
func LoadRegistry(dir string, opts ...Option) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return NewRegistry(nil, opts...), nil
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read components directory").
			WithContext("path", dir).
			Build()
	}

	defs := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExt {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "read component").
				WithContext("path", path).
				Build()
		}
		defs[strings.TrimSuffix(entry.Name(), fileExt)] = string(data)
	}

	r := NewRegistry(defs, opts...)
	r.logger.Debug("Loaded components", logfields.Path(dir), logfields.Count(len(defs)))
	return r, nil
}

// Names returns the component names in sorted order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Has reports whether name is a known component.
func (r *Registry) Has(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Len returns the number of known components.
func (r *Registry) Len() int {
	return len(r.defs)
}

func (r *Registry) lookup(name string) (*definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, errors.ResolutionError("unknown component").
			WithContext("component", name).
			Build()
	}
	return def, nil
}

// scope runs once per definition: it scopes the component's style text and records
// the result in the registry's style collection.
func (r *Registry) scope(def *definition) {
	def.once.Do(func() {
		styleText, err := extractStyle(def.source)
		if err != nil {
			def.err = err
			return
		}
		scoped, err := styles.Scope(def.name, styleText, styles.WithSalt(r.salt))
		if err != nil {
			def.err = err
			return
		}
		if err := r.record(def.name, scoped); err != nil {
			def.err = err
			return
		}
		def.scoped = scoped
		r.logger.Debug("Scoped component styles",
			logfields.Component(def.name),
			logfields.Count(len(scoped.Classes)))
	})
}

func (r *Registry) record(name string, scoped *styles.Scoped) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for class, replacement := range scoped.Classes {
		if owner, taken := r.owners[replacement]; taken && owner != name {
			return errors.ResolutionError("scoped class name collision").
				WithContext("component", name).
				WithContext("class", class).
				WithContext("other", owner).
				Build()
		}
	}
	for _, replacement := range scoped.Classes {
		r.owners[replacement] = name
	}
	r.scoped[name] = scoped
	return nil
}

// Classes returns the scoped class mapping of name, scoping it on first use.
func (r *Registry) Classes(name string) (map[string]string, error) {
	def, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	r.scope(def)
	if def.err != nil {
		return nil, def.err
	}
	return maps.Clone(def.scoped.Classes), nil
}
