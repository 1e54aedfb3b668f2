package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Option is one typed entry of the configuration-option registry. Validate
// parses a raw string into the typed value; Values, when non-nil, lists the
// accepted raw forms for help output.
type Option struct {
	Name     string
	Help     string
	Default  string
	Values   []string
	Validate func(raw string) (any, error)
}

// Usage renders the allowed values and default for help output.
func (o *Option) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", o.Name, o.Help)
	if len(o.Values) > 0 {
		fmt.Fprintf(&b, " (one of: %s)", strings.Join(o.Values, ", "))
	}
	fmt.Fprintf(&b, " [default: %s]", o.Default)
	return b.String()
}

// Options is the registry of typed configuration options consumed by the
// external CLI component.
type Options struct {
	order  []string
	byName map[string]*Option
	values map[string]any
}

// NewOptions creates an empty registry.
func NewOptions() *Options {
	return &Options{
		byName: make(map[string]*Option),
		values: make(map[string]any),
	}
}

// Register adds an option and applies its default. Registering the same name
// twice overwrites the previous entry.
func (o *Options) Register(opt *Option) error {
	v, err := opt.Validate(opt.Default)
	if err != nil {
		return zerr.With(ErrInvalidOptionValue, "option", opt.Name)
	}
	if _, exists := o.byName[opt.Name]; !exists {
		o.order = append(o.order, opt.Name)
	}
	o.byName[opt.Name] = opt
	o.values[opt.Name] = v
	return nil
}

// Set validates and stores a raw value for a registered option.
func (o *Options) Set(name, raw string) error {
	opt, ok := o.byName[name]
	if !ok {
		return zerr.With(ErrUnknownOption, "option", name)
	}
	v, err := opt.Validate(raw)
	if err != nil {
		return zerr.With(zerr.With(ErrInvalidOptionValue, "option", name), "value", raw)
	}
	o.values[name] = v
	return nil
}

// Get returns the typed value of an option, or nil if unregistered.
func (o *Options) Get(name string) any {
	return o.values[name]
}

// String returns a string option's value.
func (o *Options) String(name string) string {
	s, _ := o.values[name].(string)
	return s
}

// Bool returns a bool option's value.
func (o *Options) Bool(name string) bool {
	b, _ := o.values[name].(bool)
	return b
}

// List returns all registered options in registration order.
func (o *Options) List() []*Option {
	opts := make([]*Option, 0, len(o.order))
	for _, name := range o.order {
		opts = append(opts, o.byName[name])
	}
	return opts
}

// Help renders the usage lines of every registered option.
func (o *Options) Help() string {
	var b strings.Builder
	for _, opt := range o.List() {
		b.WriteString("  " + opt.Usage() + "\n")
	}
	return b.String()
}

// BoolOption builds a boolean option.
func BoolOption(name, help string, def bool) *Option {
	return &Option{
		Name:    name,
		Help:    help,
		Default: strconv.FormatBool(def),
		Values:  []string{"true", "false"},
		Validate: func(raw string) (any, error) {
			return strconv.ParseBool(raw)
		},
	}
}

// StringOption builds a free-form string option.
func StringOption(name, help, def string) *Option {
	return &Option{
		Name:    name,
		Help:    help,
		Default: def,
		Validate: func(raw string) (any, error) {
			return raw, nil
		},
	}
}

// ChoiceOption builds an option whose value must be one of the given strings.
func ChoiceOption(name, help string, values []string, def string) *Option {
	return &Option{
		Name:    name,
		Help:    help,
		Default: def,
		Values:  values,
		Validate: func(raw string) (any, error) {
			if !slices.Contains(values, raw) {
				return nil, fmt.Errorf("%q is not an accepted value", raw)
			}
			return raw, nil
		},
	}
}

// ChoiceMapOption builds an option whose raw value selects from a map of
// typed values.
func ChoiceMapOption(name, help string, values map[string]any, def string) *Option {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return &Option{
		Name:    name,
		Help:    help,
		Default: def,
		Values:  keys,
		Validate: func(raw string) (any, error) {
			v, ok := values[raw]
			if !ok {
				return nil, fmt.Errorf("%q is not an accepted value", raw)
			}
			return v, nil
		},
	}
}
