package dialect

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownVersion is returned by Resolve for a version string outside the catalog.
var ErrUnknownVersion = errors.New("unknown EVM version")

// Version is an EVM release. The zero value is Unknown.
type Version int

const (
	Unknown Version = iota
	Homestead
	TangerineWhistle
	SpuriousDragon
	Byzantium
	Constantinople
	Petersburg
)

// Default is the version used when none is requested.
const Default = "petersburg"

var versionNames = []string{
	Unknown:          "unknown",
	Homestead:        "homestead",
	TangerineWhistle: "tangerineWhistle",
	SpuriousDragon:   "spuriousDragon",
	Byzantium:        "byzantium",
	Constantinople:   "constantinople",
	Petersburg:       "petersburg",
}

func (v Version) String() string {
	if v < Unknown || int(v) >= len(versionNames) {
		return versionNames[Unknown]
	}
	return versionNames[v]
}

// ParseVersion maps a release name onto the catalog. Matching is exact and case-sensitive.
func ParseVersion(name string) (Version, bool) {
	for v := Homestead; int(v) < len(versionNames); v++ {
		if versionNames[v] == name {
			return v, true
		}
	}
	return Unknown, false
}

// Versions returns the known release names, oldest first.
func Versions() []string {
	out := make([]string, 0, len(versionNames)-1)
	for v := Homestead; int(v) < len(versionNames); v++ {
		out = append(out, versionNames[v])
	}
	return out
}

// Dialect is the set of builtins available under one EVM version.
type Dialect struct {
	Version  Version
	builtins map[string]Builtin
}

// Name returns the release name of the dialect.
func (d *Dialect) Name() string {
	return d.Version.String()
}

// Builtin looks up a builtin by name.
func (d *Dialect) Builtin(name string) (Builtin, bool) {
	b, ok := d.builtins[name]
	return b, ok
}

// IsBuiltin reports whether name is a builtin of the dialect.
func (d *Dialect) IsBuiltin(name string) bool {
	_, ok := d.builtins[name]
	return ok
}

// Names returns the sorted builtin names.
func (d *Dialect) Names() []string {
	names := make([]string, 0, len(d.builtins))
	for name := range d.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtins returns every builtin sorted by name.
func (d *Dialect) Builtins() []Builtin {
	out := make([]Builtin, 0, len(d.builtins))
	for _, name := range d.Names() {
		out = append(out, d.builtins[name])
	}
	return out
}

// Resolve returns the dialect for a release name.
func Resolve(version string) (*Dialect, error) {
	v, ok := ParseVersion(version)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, version)
	}
	return ForVersion(v), nil
}

// MustResolve is Resolve for names known to be valid.
func MustResolve(version string) *Dialect {
	d, err := Resolve(version)
	if err != nil {
		panic(err)
	}
	return d
}

// ForVersion builds the dialect of a known version.
func ForVersion(v Version) *Dialect {
	d := &Dialect{Version: v, builtins: make(map[string]Builtin, len(opcodes))}
	for _, b := range opcodes {
		if b.Since <= v {
			d.builtins[b.Name] = b
		}
	}
	return d
}
