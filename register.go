package settings

import (
	"fmt"
	"sort"
	"strings"
)

// Kind describes how an option consumes tokens.
type Kind int

const (
	// KindValue consumes exactly one following token.
	KindValue Kind = iota
	// KindFlag consumes no token and stores true.
	KindFlag
	// KindCount consumes no token and increments per occurrence.
	KindCount
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindFlag:
		return "flag"
	case KindCount:
		return "count"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Option is a registered setting definition.
type Option struct {
	// Names lists the aliases, e.g. "-t" and "--token".
	Names []string
	// Help is shown in the generated usage text.
	Help string
	// Kind selects value, flag or count semantics.
	Kind Kind
	// Default is stored when no source supplies the option.
	Default any
	// ConfigPath marks the option whose value replaces the config file search.
	ConfigPath bool
	// Metavar overrides the value placeholder in usage text.
	Metavar string
}

// Key returns the canonical settings key. The first long alias wins,
// falling back to the first alias.
func (o Option) Key() string {
	for _, name := range o.Names {
		if isLongAlias(name) {
			return canonicalKey(name)
		}
	}
	if len(o.Names) == 0 {
		return ""
	}
	return canonicalKey(o.Names[0])
}

// metavar returns the placeholder used after the alias in usage text.
func (o Option) metavar() string {
	if o.Metavar != "" {
		return o.Metavar
	}
	return strings.ToUpper(o.Key())
}

// initial returns the value stored before any source is applied.
func (o Option) initial() (any, bool) {
	switch o.Kind {
	case KindFlag:
		if o.Default != nil {
			return o.Default, true
		}
		return false, true
	case KindCount:
		if o.Default != nil {
			return o.Default, true
		}
		return 0, true
	default:
		return o.Default, o.Default != nil
	}
}

// Registry holds the set of recognized options.
type Registry struct {
	options []*Option
	long    map[string]*Option // canonical long name -> option
	short   map[string]*Option // exact short alias -> option
	keys    map[string]*Option
	config  *Option
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		long:  make(map[string]*Option),
		short: make(map[string]*Option),
		keys:  make(map[string]*Option),
	}
}

// Register adds an option. Aliases must be unique across the registry and at
// most one option may be marked ConfigPath.
func (r *Registry) Register(opt Option) error {
	if len(opt.Names) == 0 {
		return fmt.Errorf("%w: option has no names", ErrInvalidOption)
	}
	if opt.Kind < KindValue || opt.Kind > KindCount {
		return fmt.Errorf("%w: unknown kind %s for %v", ErrInvalidOption, opt.Kind, opt.Names)
	}
	if opt.ConfigPath && opt.Kind != KindValue {
		return fmt.Errorf("%w: config path option %v must take a value", ErrInvalidOption, opt.Names)
	}

	seen := make(map[string]bool, len(opt.Names))
	for _, name := range opt.Names {
		if len(name) < 2 || name[0] != '-' || name == "--" || strings.ContainsAny(name, "= \t") {
			return fmt.Errorf("%w: invalid alias %q", ErrInvalidOption, name)
		}
		lookup := aliasLookupKey(name)
		if seen[lookup] {
			return fmt.Errorf("%w: alias %q repeated in %v", ErrRegistrationConflict, name, opt.Names)
		}
		seen[lookup] = true
		if r.find(name) != nil {
			return fmt.Errorf("%w: alias %q already registered", ErrRegistrationConflict, name)
		}
	}

	key := opt.Key()
	if key == "" {
		return fmt.Errorf("%w: no usable key in %v", ErrInvalidOption, opt.Names)
	}
	if existing, ok := r.keys[key]; ok {
		return fmt.Errorf("%w: key %q already used by %v", ErrRegistrationConflict, key, existing.Names)
	}
	if opt.ConfigPath && r.config != nil {
		return fmt.Errorf("%w: config path option already registered as %v", ErrRegistrationConflict, r.config.Names)
	}

	stored := opt
	stored.Names = append([]string(nil), opt.Names...)
	o := &stored

	for _, name := range o.Names {
		if isLongAlias(name) {
			r.long[canonicalKey(name)] = o
		} else {
			r.short[name] = o
		}
	}
	r.keys[key] = o
	if o.ConfigPath {
		r.config = o
	}
	r.options = append(r.options, o)

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(opt Option) {
	if err := r.Register(opt); err != nil {
		panic(fmt.Sprintf("settings: %v", err))
	}
}

// Lookup finds an option by alias ("--token", "-t") or by key ("token").
func (r *Registry) Lookup(name string) (Option, bool) {
	if o := r.find(name); o != nil {
		return cloneOption(o), true
	}
	if o, ok := r.keys[canonicalKey(name)]; ok {
		return cloneOption(o), true
	}
	return Option{}, false
}

// Options returns the registered options in registration order.
func (r *Registry) Options() []Option {
	out := make([]Option, 0, len(r.options))
	for _, o := range r.options {
		out = append(out, cloneOption(o))
	}
	return out
}

// ConfigOption returns the option marked ConfigPath, if any.
func (r *Registry) ConfigOption() (Option, bool) {
	if r.config == nil {
		return Option{}, false
	}
	return cloneOption(r.config), true
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.options)
}

// find resolves an alias exactly as written in a token.
func (r *Registry) find(alias string) *Option {
	if isLongAlias(alias) {
		return r.long[canonicalKey(alias)]
	}
	return r.short[alias]
}

// shortAliases returns short aliases ordered longest first.
func (r *Registry) shortAliases() []string {
	aliases := make([]string, 0, len(r.short))
	for alias := range r.short {
		aliases = append(aliases, alias)
	}
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i]) != len(aliases[j]) {
			return len(aliases[i]) > len(aliases[j])
		}
		return aliases[i] < aliases[j]
	})
	return aliases
}

// Usage renders argparse-style usage and option help for prog.
func (r *Registry) Usage(prog string) string {
	var b strings.Builder

	b.WriteString("usage: ")
	b.WriteString(prog)
	for _, o := range r.options {
		b.WriteString(" [")
		b.WriteString(o.Names[0])
		if o.Kind == KindValue {
			b.WriteString(" " + o.metavar())
		}
		b.WriteString("]")
	}
	b.WriteString("\n")

	if len(r.options) == 0 {
		return b.String()
	}

	b.WriteString("\noptions:\n")

	const helpColumn = 24
	for _, o := range r.options {
		parts := make([]string, 0, len(o.Names))
		for _, name := range o.Names {
			if o.Kind == KindValue {
				parts = append(parts, name+" "+o.metavar())
			} else {
				parts = append(parts, name)
			}
		}
		invocation := "  " + strings.Join(parts, ", ")

		help := o.Help
		if o.Kind == KindValue && o.Default != nil {
			help = strings.TrimSpace(fmt.Sprintf("%s (default: %s)", help, stringify(o.Default)))
		}

		b.WriteString(invocation)
		if help != "" {
			if len(invocation) < helpColumn-1 {
				b.WriteString(strings.Repeat(" ", helpColumn-len(invocation)))
			} else {
				b.WriteString("\n" + strings.Repeat(" ", helpColumn))
			}
			b.WriteString(help)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func aliasLookupKey(alias string) string {
	if isLongAlias(alias) {
		return "--" + canonicalKey(alias)
	}
	return alias
}

func cloneOption(o *Option) Option {
	c := *o
	c.Names = append([]string(nil), o.Names...)
	return c
}
