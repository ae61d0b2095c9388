package marquee

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownOption is returned for option keys that do not exist.
	ErrUnknownOption = errors.New("marquee: unknown option")
	// ErrInvalidOption is returned when an option value has the wrong type
	// or is out of range.
	ErrInvalidOption = errors.New("marquee: invalid option value")
)

// Options configures box selection on a container. Keys used by Get, Set,
// DecodeOptions and option files are the mapstructure tag names.
type Options struct {
	// Distance is the drag tolerance, in pixels, before the selection box
	// appears.
	Distance float64 `mapstructure:"distance"`

	// Disabled turns off pointer-down handling for the container.
	Disabled bool `mapstructure:"disabled"`

	// Cancel prevents a gesture from starting on elements matching the
	// selector, or inside them.
	Cancel string `mapstructure:"cancel"`

	// Filter selects which descendants of the container are selectable.
	Filter string `mapstructure:"filter"`

	// ScrollingThreshold is the pixel distance from a viewport border that
	// triggers auto-scroll.
	ScrollingThreshold float64 `mapstructure:"scrollingThreshold"`

	// ScrollSpeedMultiplier scales auto-scroll speed.
	ScrollSpeedMultiplier float64 `mapstructure:"scrollSpeedMultiplier"`

	// Scroller builds the container's Scroller at gesture start. Nil means
	// NewNativeScroller.
	Scroller ScrollerFactory `mapstructure:"-"`

	// Positioner measures selectables at gesture start. Nil means
	// OffsetPositioner.
	Positioner Positioner `mapstructure:"-"`
}

const (
	optScroller   = "scroller"
	optPositioner = "positioner"
)

// optionKeys lists every key in declaration order.
var optionKeys = []string{
	"distance",
	"disabled",
	"cancel",
	"filter",
	"scrollingThreshold",
	"scrollSpeedMultiplier",
	optScroller,
	optPositioner,
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Distance:              0,
		Disabled:              false,
		Cancel:                "input,option",
		Filter:                "*",
		ScrollingThreshold:    100,
		ScrollSpeedMultiplier: 1,
	}
}

// OptionKeys returns the names accepted by Get and Set.
func OptionKeys() []string {
	return slices.Clone(optionKeys)
}

// Get returns the value of the option named key.
func (o Options) Get(key string) (any, error) {
	switch key {
	case optScroller:
		return o.Scroller, nil
	case optPositioner:
		return o.Positioner, nil
	}
	if !slices.Contains(optionKeys, key) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	m := make(map[string]any, len(optionKeys))
	if err := mapstructure.Decode(o, &m); err != nil {
		return nil, fmt.Errorf("read option %q: %w", key, err)
	}
	return m[key], nil
}

// Set assigns the option named key. Scalar values are converted weakly
// ("5" and 5 both set a float option to 5). A nil value resets the option
// to its default.
func (o *Options) Set(key string, value any) error {
	if !slices.Contains(optionKeys, key) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	if key == optScroller || key == optPositioner {
		return o.setProvider(key, value)
	}
	if value == nil {
		value, _ = DefaultOptions().Get(key)
	}

	next := *o
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &next,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any{key: value}); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidOption, key, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*o = next
	return nil
}

func (o *Options) setProvider(key string, value any) error {
	switch key {
	case optScroller:
		switch f := value.(type) {
		case nil:
			o.Scroller = nil
		case ScrollerFactory:
			o.Scroller = f
		case func(*Node, Rect) Scroller:
			o.Scroller = f
		default:
			return fmt.Errorf("%w: %q: %T is not a ScrollerFactory", ErrInvalidOption, key, value)
		}
	case optPositioner:
		switch p := value.(type) {
		case nil:
			o.Positioner = nil
		case Positioner:
			o.Positioner = p
		case func(*Node, *Node) Rect:
			o.Positioner = PositionerFunc(p)
		default:
			return fmt.Errorf("%w: %q: %T is not a Positioner", ErrInvalidOption, key, value)
		}
	}
	return nil
}

// Validate checks option ranges and selector syntax.
func (o Options) Validate() error {
	if o.Distance < 0 {
		return fmt.Errorf("%w: distance must be >= 0, got %v", ErrInvalidOption, o.Distance)
	}
	if o.ScrollingThreshold < 0 {
		return fmt.Errorf("%w: scrollingThreshold must be >= 0, got %v", ErrInvalidOption, o.ScrollingThreshold)
	}
	if _, err := ParseSelector(o.Cancel); err != nil {
		return fmt.Errorf("%w: cancel: %w", ErrInvalidOption, err)
	}
	if _, err := ParseSelector(o.Filter); err != nil {
		return fmt.Errorf("%w: filter: %w", ErrInvalidOption, err)
	}
	return nil
}

// DecodeOptions applies m over the defaults. Keys absent from m keep their
// default value.
func DecodeOptions(m map[string]any) (Options, error) {
	opts := DefaultOptions()
	for _, key := range optionKeys {
		v, ok := m[key]
		if !ok {
			continue
		}
		if err := opts.Set(key, v); err != nil {
			return Options{}, err
		}
	}
	for key := range m {
		if !slices.Contains(optionKeys, key) {
			return Options{}, fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
	}
	return opts, nil
}

// LoadOptions reads a YAML (or JSON) document of option keys and applies it
// over the defaults. Provider options cannot be set from a file.
func LoadOptions(r io.Reader) (Options, error) {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultOptions(), nil
		}
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	if _, ok := m[optScroller]; ok {
		return Options{}, fmt.Errorf("%w: %q cannot be set from a file", ErrInvalidOption, optScroller)
	}
	if _, ok := m[optPositioner]; ok {
		return Options{}, fmt.Errorf("%w: %q cannot be set from a file", ErrInvalidOption, optPositioner)
	}
	return DecodeOptions(m)
}
