package scriptinfo

import (
	"bufio"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/vk/scriptpipe/internal/ctxlog"
	"github.com/vk/scriptpipe/internal/directive"
	"github.com/vk/scriptpipe/internal/param"
	"github.com/zclconf/go-cty/cty"
)

// maxLineBytes caps a single header line. Should be enough.
const maxLineBytes = 640 * 1024

var (
	// directiveLine matches lines whose only characters before the first
	// `@` are non-word characters, i.e. a comment prefix in any language.
	directiveLine = regexp.MustCompile(`^\W*@`)
	// wordChar detects the first real code line, which ends the header.
	wordChar = regexp.MustCompile(`\w`)
)

// SourceReadError reports that the script's source text could not be
// read.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("error reading script %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

// ParseParameters re-scans the script's source from the beginning,
// discarding any previously extracted items first.
//
// Each directive line in the preamble is handed to the directive parser;
// blank and plain comment lines are skipped; the first line that looks
// like code ends the scan. Read and parse failures are logged and
// recorded via ParseError rather than returned: the items registered
// before the failure are kept as a partial result, and the implicit
// return-value output is not synthesized for a failed pass.
func (i *Info) ParseParameters(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	i.Invalidate()
	i.parsed = true

	reader, err := i.open(ctx)
	if err != nil {
		i.parseErr = &SourceReadError{Path: i.path, Err: err}
		logger.Error("Error reading script.", "path", i.path, "error", err)
		return
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if directiveLine.MatchString(line) {
			at := strings.Index(line, "@")
			if err := i.parseDirective(ctx, line[at+1:]); err != nil {
				i.parseErr = err
				logger.Error("Invalid parameter syntax for script.",
					"path", i.path, "error", err)
				return
			}
		} else if wordChar.MatchString(line) {
			// First real code line: the preamble is over.
			break
		}
	}
	if err := scanner.Err(); err != nil {
		i.parseErr = &SourceReadError{Path: i.path, Err: err}
		logger.Error("Error reading script.", "path", i.path, "error", err)
		return
	}

	if !i.returnValueDeclared {
		i.register(newReturnValueItem(), ReturnValue)
	}
}

// parseDirective parses one directive's text and registers the result.
func (i *Info) parseDirective(ctx context.Context, text string) error {
	item, declared, err := directive.Parse(ctx, i.resolver, text)
	if err != nil {
		return err
	}
	i.register(item, declared)
	return nil
}

// register appends the item to the input and/or output sequences and
// tracks whether the reserved return-value name was claimed.
func (i *Info) register(item *param.Item, declared string) {
	if item.IsInput() {
		i.inputs = append(i.inputs, item)
	}
	if item.IsOutput() {
		i.outputs = append(i.outputs, item)
	}
	if declared == ReturnValue {
		i.returnValueDeclared = true
	}
}

// newReturnValueItem builds the implicit untyped output for the value
// returned by the script itself.
func newReturnValueItem() *param.Item {
	item := param.New(ReturnValue, cty.DynamicPseudoType)
	item.Kind = param.Output
	return item
}

// open yields the script's source text, either from the in-memory copy
// or through the file service.
func (i *Info) open(ctx context.Context) (*strings.Reader, error) {
	if i.inMemory {
		return strings.NewReader(i.source), nil
	}
	data, err := i.fs.DownloadWithURL(ctx, i.path)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(string(data)), nil
}
