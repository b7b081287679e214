package format

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/charindex"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls the segment dump layout.
type Config struct {
	LineWidth int            // dump line width in fixed-width ‘en’s
	Colors    bool           // colorize header and segment rows
	Context   *uax11.Context // East Asian width context for sample clipping
}

// ConfigFromTerminal creates a dump configuration from the current
// terminal's properties. If stdout is not interactive, a default width of 80
// is used and colors are switched off.
func ConfigFromTerminal() *Config {
	config := &Config{
		LineWidth: 80,
		Context:   uax11.LatinContext,
	}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			tracer().Errorf("cannot get terminal size: %s", err.Error())
		} else if w > 0 {
			config.LineWidth = w
		}
		config.Colors = true
		config.Context = uax11.ContextFromEnvironment()
	}
	return config
}

// Print dumps the segment structure of an indexed string to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print(text charindex.IndexedString, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Dump(text, os.Stdout, config)
}

// Dump writes the segment structure of an indexed string to w, one row per
// segment.
func Dump(text charindex.IndexedString, w io.Writer, config *Config) error {
	if w == nil {
		return charindex.ErrIllegalArguments
	}
	if config == nil {
		config = &Config{LineWidth: 80, Context: uax11.LatinContext}
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	header := color.New(color.Bold)
	ascii := color.New(color.FgCyan)
	mixed := color.New(color.FgYellow)
	if !config.Colors {
		header.DisableColor()
		ascii.DisableColor()
		mixed.DisableColor()
	}
	if _, err := header.Fprintf(w, "index: %d chars, %d bytes\n",
		text.CharCount(), text.Len()); err != nil {
		return err
	}
	n := 0
	for seg := range text.Segments() {
		row := fmt.Sprintf("seg %3d  chars %6d–%-6d  @%-7d %4d B  ",
			n, seg.StartChar, seg.StartChar+seg.Chars-1, seg.StartByte, seg.Bytes)
		budget := config.LineWidth - len(row) - 2
		sample := clip(text.String()[seg.StartByte:seg.StartByte+seg.Bytes], budget, context)
		c := ascii
		if seg.Bytes > seg.Chars {
			c = mixed
		}
		if _, err := c.Fprintf(w, "%s“%s”\n", row, sample); err != nil {
			return err
		}
		n++
	}
	tracer().Debugf("dumped %d segments", n)
	return nil
}

// clip shortens s to at most width display columns, as counted by UAX#11.
func clip(s string, width int, context *uax11.Context) string {
	if width < 1 {
		return ""
	}
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, context) <= width {
		return s
	}
	cols := 1 // reserve a column for the ellipsis
	out := ""
	for _, r := range s {
		rw := uax11.StringWidth(grapheme.StringFromString(string(r)), context)
		if cols+rw > width {
			break
		}
		out += string(r)
		cols += rw
	}
	return out + "…"
}
