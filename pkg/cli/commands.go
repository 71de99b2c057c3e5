package cli

import (
	"fmt"
	"strings"

	"github.com/khalid-nowaf/wordindex/pkg/session"
	"github.com/khalid-nowaf/wordindex/pkg/wordindex"
)

// openIndex builds the index of the word list in use.
func openIndex(ctx *Context) (string, *wordindex.WordIndex, error) {
	source, err := ctx.session.Source()
	if err != nil {
		return "", nil, err
	}
	index, err := ctx.session.Index()
	if err != nil {
		return "", nil, err
	}
	return source, index, nil
}

type FilesCmd struct{}

// Run lists the word lists, reporting the one in use as the source.
func (cmd *FilesCmd) Run(ctx *Context) error {
	files, err := ctx.session.Files()
	if err != nil {
		return err
	}
	source, err := ctx.session.Source()
	if err != nil {
		return err
	}
	return ctx.write(&Report{
		Command: "files",
		Source:  source,
		Words:   files,
		Count:   len(files),
	})
}

type SelectCmd struct {
	File string `arg:"" help:"Name of the word list, as listed by the files command"`
}

func (cmd *SelectCmd) Run(ctx *Context) error {
	file := strings.TrimSpace(cmd.File)
	if err := ctx.session.Select(file); err != nil {
		return err
	}
	return ctx.write(&Report{
		Command: "select",
		Source:  file,
		Message: fmt.Sprintf("Selected %s", file),
	})
}

type CheckCmd struct {
	Word string `arg:"" help:"Word to look up, case is ignored"`
}

// Run reports whether the word is present. A miss is a result, not a failure.
func (cmd *CheckCmd) Run(ctx *Context) error {
	source, index, err := openIndex(ctx)
	if err != nil {
		return err
	}
	word := strings.TrimSpace(cmd.Word)

	found := true
	if err := index.Search(word); err != nil {
		if !session.IsMiss(err) {
			return err
		}
		found = false
	}
	return ctx.write(&Report{
		Command: "check",
		Source:  source,
		Query:   word,
		Found:   &found,
	})
}

type PrefixCmd struct {
	Prefix string `arg:"" help:"Prefix the words must start with"`
}

func (cmd *PrefixCmd) Run(ctx *Context) error {
	source, index, err := openIndex(ctx)
	if err != nil {
		return err
	}
	prefix := strings.TrimSpace(cmd.Prefix)
	words := index.WordsWithPrefix(prefix)
	return ctx.write(&Report{
		Command: "prefix",
		Source:  source,
		Query:   prefix,
		Words:   words,
		Count:   len(words),
	})
}

type SuffixCmd struct {
	Suffix string `arg:"" help:"Suffix the words must end with"`
}

// Run lists the words ending with the suffix. Every word of the list is visited.
func (cmd *SuffixCmd) Run(ctx *Context) error {
	source, index, err := openIndex(ctx)
	if err != nil {
		return err
	}
	suffix := strings.TrimSpace(cmd.Suffix)
	words := index.WordsWithSuffix(suffix)
	return ctx.write(&Report{
		Command: "suffix",
		Source:  source,
		Query:   suffix,
		Words:   words,
		Count:   len(words),
	})
}

type WordsCmd struct{}

func (cmd *WordsCmd) Run(ctx *Context) error {
	source, index, err := openIndex(ctx)
	if err != nil {
		return err
	}
	return ctx.write(&Report{
		Command: "words",
		Source:  source,
		Words:   index.AllWords(),
		Count:   index.WordCount(),
	})
}

type InsertCmd struct {
	Word string `arg:"" help:"Word to insert"`
}

func (cmd *InsertCmd) Run(ctx *Context) error {
	word := strings.TrimSpace(cmd.Word)
	if err := ctx.session.Insert(word); err != nil {
		return err
	}
	source, err := ctx.session.Source()
	if err != nil {
		return err
	}
	return ctx.write(&Report{
		Command: "insert",
		Source:  source,
		Query:   word,
		Message: fmt.Sprintf("Inserted '%s'", word),
	})
}

type RemoveCmd struct {
	Word string `arg:"" help:"Word to remove"`
}

func (cmd *RemoveCmd) Run(ctx *Context) error {
	word := strings.TrimSpace(cmd.Word)
	if err := ctx.session.Remove(word); err != nil {
		return err
	}
	source, err := ctx.session.Source()
	if err != nil {
		return err
	}
	return ctx.write(&Report{
		Command: "remove",
		Source:  source,
		Query:   word,
		Message: fmt.Sprintf("Removed '%s'", word),
	})
}

type ResetCmd struct{}

func (cmd *ResetCmd) Run(ctx *Context) error {
	if err := ctx.session.Reset(); err != nil {
		return err
	}
	return ctx.write(&Report{
		Command: "reset",
		Source:  session.DefaultSource,
		Message: "Session reset",
	})
}
