package checker

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/jparise/durstr/durationstring"
	"github.com/mgutz/ansi"
)

// Output handles all output formatting with optional color and hyperlink support.
type Output struct {
	mu         sync.Mutex
	stdout     io.Writer
	stderr     io.Writer
	hostname   string
	hyperlinks bool

	cyan   func(string) string
	green  func(string) string
	white  func(string) string
	yellow func(string) string
	red    func(string) string
}

// NewOutput creates a new Output with optional color and hyperlink support.
func NewOutput(stdout, stderr io.Writer, colorize, hyperlinks bool) *Output {
	hostname, _ := auth.DefaultHost()

	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout:     stdout,
		stderr:     stderr,
		hostname:   hostname,
		hyperlinks: hyperlinks,
		cyan:       color("cyan"),
		green:      color("green+b"),
		white:      color("white"),
		yellow:     color("yellow"),
		red:        color("red+b"),
	}
}

func makeHyperlink(link, text string) string {
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", link, text)
}

// escapeSegments escapes each "/"-separated segment of p for use in a URL path.
func escapeSegments(p string) string {
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// location formats where a finding was found: owner/repo:path:line:col for
// repositories and dir/path:line:col for local files.
func (o *Output) location(f Finding) string {
	if f.Repo == nil {
		return fmt.Sprintf("%s:%d:%d", o.white(filepath.Join(f.Root, f.Path)), f.Field.Line, f.Field.Column)
	}

	formatted := fmt.Sprintf("%s/%s:%s:%d:%d",
		o.cyan(f.Repo.Owner),
		o.green(f.Repo.Name),
		o.white(f.Path),
		f.Field.Line,
		f.Field.Column)

	if o.hyperlinks {
		link := fmt.Sprintf("https://%s/%s/%s/blob/%s/%s#L%d",
			o.hostname, f.Repo.Owner, f.Repo.Name,
			escapeSegments(f.Repo.Ref), escapeSegments(f.Path), f.Field.Line)
		formatted = makeHyperlink(link, formatted)
	}

	return formatted
}

// cause strips the *durationstring.ParseError wrapper, whose input is
// already part of the message.
func cause(err error) error {
	var perr *durationstring.ParseError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}

// Invalid writes a field whose value is not a valid duration.
func (o *Output) Invalid(f Finding) {
	o.mu.Lock()
	defer o.mu.Unlock()

	fmt.Fprintf(o.stdout, "%s: %s %s: %q: %v\n",
		o.location(f), o.red("error"), f.Field.Key, f.Field.Value, cause(f.Err))
}

// NonCanonical writes a valid field whose value is not in canonical form.
func (o *Output) NonCanonical(f Finding) {
	o.mu.Lock()
	defer o.mu.Unlock()

	fmt.Fprintf(o.stdout, "%s: %s %s: %q should be written as %q\n",
		o.location(f), o.yellow("warning"), f.Field.Key, f.Field.Value, f.Canonical)
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}
