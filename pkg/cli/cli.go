package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/wordindex/pkg/ledger"
	"github.com/khalid-nowaf/wordindex/pkg/session"
	"github.com/khalid-nowaf/wordindex/pkg/wordsource"
)

// Context is handed to every command.
type Context struct {
	session *session.Session
	writer  Writer
	out     io.Writer
	logger  *slog.Logger
}

// CLI is the command line grammar. Every global flag can also be set through
// its environment variable, or a JSON configuration file.
type CLI struct {
	Dir      string `help:"Directory holding the word list files" default:"filestxt" env:"WORDINDEX_DIR" type:"path"`
	Ledger   string `help:"Path of the session ledger database" default:"wordindex.db" env:"WORDINDEX_LEDGER" type:"path"`
	File     string `help:"Word list to use for this run instead of the selected one" env:"WORDINDEX_FILE"`
	Format   string `help:"Output format (${enum})" default:"text" enum:"text,json,csv" env:"WORDINDEX_FORMAT"`
	LogLevel string `help:"Log level (${enum})" default:"warn" enum:"debug,info,warn,error" env:"WORDINDEX_LOG_LEVEL"`

	Files  FilesCmd  `cmd:"" help:"List the available word lists"`
	Select SelectCmd `cmd:"" help:"Select the word list to work on, forgetting its recorded changes"`
	Check  CheckCmd  `cmd:"" help:"Check if a word is in the word list"`
	Prefix PrefixCmd `cmd:"" help:"List the words starting with a prefix"`
	Suffix SuffixCmd `cmd:"" help:"List the words ending with a suffix"`
	Words  WordsCmd  `cmd:"" help:"List every word and count them"`
	Insert InsertCmd `cmd:"" help:"Insert a word into the word list"`
	Remove RemoveCmd `cmd:"" help:"Remove a word from the word list"`
	Reset  ResetCmd  `cmd:"" help:"Forget every recorded change and the selection"`
}

// Options returns the kong options the binary parses the command line with.
func Options(configPaths ...string) []kong.Option {
	return []kong.Option{
		kong.Name("wordindex"),
		kong.Description("Look up, enumerate and edit word lists through a prefix tree."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, configPaths...),
	}
}

// Execute opens the ledger and the session described by the flags, then runs the
// selected command, writing its report to out and logs to errOut.
func (c *CLI) Execute(ctx *kong.Context, out io.Writer, errOut io.Writer) error {
	logger, err := NewLogger(errOut, c.LogLevel)
	if err != nil {
		return err
	}
	writer, err := NewWriter(c.Format)
	if err != nil {
		return err
	}

	l, err := ledger.Open(c.Ledger)
	if err != nil {
		return err
	}
	defer l.Close()

	opts := []session.Option{session.WithLogger(logger)}
	if c.File != "" {
		opts = append(opts, session.WithSource(c.File))
	}

	logger.Debug("running command", "command", ctx.Command(), "dir", c.Dir, "ledger", c.Ledger)
	return ctx.Run(&Context{
		session: session.New(wordsource.NewDirectory(c.Dir), l, opts...),
		writer:  writer,
		out:     out,
		logger:  logger,
	})
}

// NewLogger returns a text logger writing to w, dropping records below level.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func (ctx *Context) write(report *Report) error {
	return ctx.writer.Write(ctx.out, report)
}
