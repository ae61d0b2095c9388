package marquee

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrUnknownMethod is returned by Call for method names that do not exist.
	ErrUnknownMethod = errors.New("marquee: unknown method")
	// ErrNotInitialized is returned for containers that were never passed to
	// Init, or were destroyed.
	ErrNotInitialized = errors.New("marquee: container not initialized")
)

// instance is the per-container state kept by a Registry.
type instance struct {
	reg       *Registry
	container *Node
	options   Options
	cancel    Selector
	filter    Selector
	handlers  handlerRegistry
	down      ListenerHandle
	session   *session
}

// Registry owns box selection for every container of a Document. It maps
// each container to its options, callbacks and the gesture in progress.
type Registry struct {
	doc       *Document
	instances map[*Node]*instance
	logger    *slog.Logger
	sink      EventSink
	debug     bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets a structured logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithEventSink forwards every notification to sink after the
// per-container callbacks.
func WithEventSink(sink EventSink) RegistryOption {
	return func(r *Registry) {
		r.sink = sink
	}
}

// NewRegistry creates a Registry bound to doc.
func NewRegistry(doc *Document, opts ...RegistryOption) *Registry {
	r := &Registry{
		doc:       doc,
		instances: make(map[*Node]*instance),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = discardLogger()
	}
	return r
}

// Document returns the document the registry listens on.
func (r *Registry) Document() *Document {
	return r.doc
}

// SetDebugMode enables or disables debug mode. When enabled, this
// Registry's gesture transitions are logged at debug level.
//
// Node tree checks (disposed-node panics, tree size warnings) are
// process-wide because nodes carry no Registry. They stay on while any
// Registry has debug mode enabled and log to the logger of the Registry
// that enabled debug mode most recently.
func (r *Registry) SetDebugMode(enabled bool) {
	if enabled == r.debug {
		return
	}
	r.debug = enabled
	if enabled {
		debugRegistries++
		debugLogger = r.logger
	} else {
		debugRegistries--
		if debugRegistries == 0 {
			debugLogger = discardLogger()
		}
	}
	globalDebug = debugRegistries > 0
}

// Init activates box selection on container. Initializing a container
// twice replaces the previous configuration and callbacks.
func (r *Registry) Init(container *Node, opts Options) error {
	if container == nil {
		panic("marquee: cannot init nil container")
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if _, ok := r.instances[container]; ok {
		r.destroy(container)
	}
	inst := &instance{reg: r, container: container, options: opts}
	inst.compileSelectors()
	r.instances[container] = inst
	r.debugf(container, "init", "disabled", opts.Disabled)
	if !opts.Disabled {
		inst.enable()
	}
	return nil
}

// Destroy deactivates box selection on container and drops its callbacks.
// Destroying a container mid-gesture leaves the gesture running until the
// pointer is released.
func (r *Registry) Destroy(container *Node) error {
	if _, err := r.lookup(container); err != nil {
		return err
	}
	r.destroy(container)
	return nil
}

func (r *Registry) destroy(container *Node) {
	inst := r.instances[container]
	inst.disable()
	delete(r.instances, container)
	r.debugf(container, "destroy")
}

// Enable turns pointer-down handling on.
func (r *Registry) Enable(container *Node) error {
	inst, err := r.lookup(container)
	if err != nil {
		return err
	}
	inst.enable()
	return nil
}

// Disable turns pointer-down handling off. Disabling mid-gesture leaves the
// gesture running until the pointer is released.
func (r *Registry) Disable(container *Node) error {
	inst, err := r.lookup(container)
	if err != nil {
		return err
	}
	inst.disable()
	return nil
}

// Option gets or sets a single option by key. With no value it returns the
// current value; with one value it sets it and returns nil. Setting
// "disabled" enables or disables the container. The change applies from
// the next gesture.
func (r *Registry) Option(container *Node, key string, value ...any) (any, error) {
	inst, err := r.lookup(container)
	if err != nil {
		return nil, err
	}
	switch len(value) {
	case 0:
		return inst.options.Get(key)
	case 1:
	default:
		return nil, fmt.Errorf("%w: option takes at most one value, got %d", ErrInvalidOption, len(value))
	}
	if err := inst.options.Set(key, value[0]); err != nil {
		return nil, err
	}
	switch key {
	case "cancel", "filter":
		inst.compileSelectors()
	case "disabled":
		if inst.options.Disabled {
			inst.disable()
		} else {
			inst.enable()
		}
	}
	return nil, nil
}

// Options returns a copy of container's options.
func (r *Registry) Options(container *Node) (Options, error) {
	inst, err := r.lookup(container)
	if err != nil {
		return Options{}, err
	}
	return inst.options, nil
}

// On registers fn for notifications of type t on container.
func (r *Registry) On(container *Node, t EventType, fn func(Event)) (CallbackHandle, error) {
	inst, err := r.lookup(container)
	if err != nil {
		return CallbackHandle{}, err
	}
	if t >= eventTypeCount {
		return CallbackHandle{}, fmt.Errorf("marquee: unknown event type %d", t)
	}
	return inst.handlers.add(t, fn), nil
}

// State reports the gesture phase of container. Containers that are not
// initialized are always idle.
func (r *Registry) State(container *Node) State {
	inst, ok := r.instances[container]
	if !ok || inst.session == nil {
		return StateIdle
	}
	return inst.session.state()
}

// Initialized reports whether container has been passed to Init and not
// destroyed since.
func (r *Registry) Initialized(container *Node) bool {
	_, ok := r.instances[container]
	return ok
}

// Call dispatches a method by name: "init" (optional Options or
// map[string]any), "destroy", "enable", "disable" and "option" (key, then
// an optional value). Unknown names return ErrUnknownMethod.
func (r *Registry) Call(container *Node, method string, args ...any) (any, error) {
	switch method {
	case "init":
		opts := DefaultOptions()
		if len(args) > 0 {
			switch a := args[0].(type) {
			case Options:
				opts = a
			case map[string]any:
				var err error
				if opts, err = DecodeOptions(a); err != nil {
					return nil, err
				}
			case nil:
			default:
				return nil, fmt.Errorf("%w: init expects Options or map[string]any, got %T", ErrInvalidOption, a)
			}
		}
		return nil, r.Init(container, opts)
	case "destroy":
		return nil, r.Destroy(container)
	case "enable":
		return nil, r.Enable(container)
	case "disable":
		return nil, r.Disable(container)
	case "option":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: option requires a key", ErrInvalidOption)
		}
		key, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: option key must be a string, got %T", ErrInvalidOption, args[0])
		}
		return r.Option(container, key, args[1:]...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

func (r *Registry) lookup(container *Node) (*instance, error) {
	inst, ok := r.instances[container]
	if !ok {
		name := "<nil>"
		if container != nil {
			name = container.Name
		}
		return nil, fmt.Errorf("%w: %q", ErrNotInitialized, name)
	}
	return inst, nil
}

// --- instance ---

func (i *instance) compileSelectors() {
	// Options were validated before reaching here.
	i.cancel, _ = ParseSelector(i.options.Cancel)
	i.filter, _ = ParseSelector(i.options.Filter)
}

func (i *instance) enable() {
	i.options.Disabled = false
	if i.down.Active() {
		return
	}
	i.down = i.reg.doc.OnPointerDown(i.container, i.onPointerDown)
	i.reg.debugf(i.container, "enabled")
}

func (i *instance) disable() {
	i.options.Disabled = true
	i.down.Remove()
	i.down = ListenerHandle{}
	i.reg.debugf(i.container, "disabled")
}

// emit fires ev on the container's callbacks, then on the registry sink.
func (i *instance) emit(ev Event) {
	ev.Container = i.container
	i.handlers.fire(ev)
	if i.reg.sink != nil {
		i.reg.sink.EmitEvent(ev)
	}
}
