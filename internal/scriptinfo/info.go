// Package scriptinfo extracts typed parameter metadata from a script's
// header and caches it until explicitly invalidated.
//
// A script declares its inputs and outputs in a comment preamble, one
// directive per line:
//
//	// @int count
//	// @INPUT(min=1, max=10, label="Count") int count
//	// @OUTPUT string greeting
//
// Any line whose only characters before the first `@` are non-word
// characters is treated as a directive line; this matches comment
// prefixes of any scripting language without knowing its comment
// syntax. Scanning stops at the first line that contains a word
// character without matching that pattern, which is taken to be the
// first real code line.
package scriptinfo

import (
	"context"
	"net/url"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/vk/scriptpipe/internal/directive"
	"github.com/vk/scriptpipe/internal/param"
)

// ReturnValue is the reserved name for the value returned by the script
// itself. When no directive declares it, an untyped output of this name
// is synthesized.
const ReturnValue = "result"

// Info holds the parsed parameter metadata of one script.
//
// Extraction is lazy: the first accessor call parses the source, and the
// result is cached until Invalidate or ParseParameters rebuilds it from
// scratch. Info is not safe for concurrent use while parsing; once
// parsed it may be shared read-only between any number of run modules.
type Info struct {
	path     string
	source   string
	inMemory bool

	fs       afs.Service
	resolver directive.Resolver

	parsed              bool
	inputs              []*param.Item
	outputs             []*param.Item
	returnValueDeclared bool
	parseErr            error
}

// New creates metadata for the script stored at the given path. The
// path is read through the abstract file service on first access.
func New(res directive.Resolver, path string) *Info {
	return &Info{path: path, fs: afs.New(), resolver: res}
}

// NewFromSource creates metadata for a script whose content is already
// in memory. The path is a pseudo-path used only to name the script; it
// does not need to exist.
func NewFromSource(res directive.Resolver, path, source string) *Info {
	return &Info{path: path, source: source, inMemory: true, fs: afs.New(), resolver: res}
}

// Path returns the path (or pseudo-path) naming the script.
func (i *Info) Path() string { return i.path }

// Identifier returns a stable identity string for the script.
func (i *Info) Identifier() string { return "script:" + i.path }

// Location returns the script's path as a file URL.
func (i *Info) Location() string {
	abs, err := filepath.Abs(i.path)
	if err != nil {
		abs = i.path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

// EnsureParsed parses the source if no cached result exists. It is the
// lazy half of the cached-state contract; Invalidate is the other half.
func (i *Info) EnsureParsed(ctx context.Context) {
	if i.parsed {
		return
	}
	i.ParseParameters(ctx)
}

// Invalidate discards the cached parameter list so the next access
// re-parses the source. Callers must drop any Item references they hold:
// re-parsing rebuilds the list wholesale.
func (i *Info) Invalidate() {
	i.parsed = false
	i.inputs = nil
	i.outputs = nil
	i.returnValueDeclared = false
	i.parseErr = nil
}

// Inputs returns the script's input items in source order.
func (i *Info) Inputs(ctx context.Context) []*param.Item {
	i.EnsureParsed(ctx)
	return i.inputs
}

// Outputs returns the script's output items in source order.
func (i *Info) Outputs(ctx context.Context) []*param.Item {
	i.EnsureParsed(ctx)
	return i.outputs
}

// Input returns the named input item, or nil.
func (i *Info) Input(ctx context.Context, name string) *param.Item {
	return itemByName(i.Inputs(ctx), name)
}

// Output returns the named output item, or nil.
func (i *Info) Output(ctx context.Context, name string) *param.Item {
	return itemByName(i.Outputs(ctx), name)
}

// ReturnValueDeclared reports whether the script explicitly declared the
// reserved return-value output rather than having it synthesized.
func (i *Info) ReturnValueDeclared(ctx context.Context) bool {
	i.EnsureParsed(ctx)
	return i.returnValueDeclared
}

// ParseError returns the error that terminated the last extraction pass,
// or nil if the pass completed. Extraction never fails the caller; the
// error is recorded here and logged, and the items collected before the
// failure remain available.
func (i *Info) ParseError() error { return i.parseErr }

func itemByName(items []*param.Item, name string) *param.Item {
	for _, it := range items {
		if it.Name == name {
			return it
		}
	}
	return nil
}
