package impls

import (
	"sort"

	"github.com/funvibe/deriva/internal/config"
	"github.com/funvibe/deriva/internal/derive"
)

var registry = map[string]func() derive.Generator{
	config.EqInterface:          Eq,
	config.OrdInterface:         Ord,
	config.NumInterface:         Num,
	config.NegInterface:         Neg,
	config.AbsInterface:         Abs,
	config.FractionalInterface:  Fractional,
	config.IntegralInterface:    Integral,
	config.ShowInterface:        Show,
	config.UninhabitedInterface: Uninhabited,
	config.SemigroupInterface:   Semigroup,
	config.MonoidInterface:      Monoid,
}

// ForName returns the bundled generator for an interface name.
func ForName(name string) (derive.Generator, bool) {
	ctor, ok := registry[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names lists all derivable interface names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
