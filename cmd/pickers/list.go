package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/drake/pickers/country"
	"github.com/drake/pickers/languages"
	"github.com/drake/pickers/list"
)

type listOptions struct {
	query   string
	page    int
	shuffle bool
	output  string
}

func newListCmd(a *app) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list countries|languages",
		Short: "Print the visible items without the terminal UI",
		Example: `  pickers list countries --query fr
  pickers list languages --page 1 --output json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"countries", "languages"},
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.visible(args[0], opts)
			if err != nil {
				return err
			}
			return writeItems(cmd.OutOrStdout(), items, opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "filter labels (case-insensitive)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "page to filter (languages only)")
	cmd.Flags().BoolVar(&opts.shuffle, "shuffle", false, "shuffle the list (countries only)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

// visible builds the requested list and returns what a screen would show
// for the given page and query.
func (a *app) visible(kind string, opts *listOptions) ([]list.Item, error) {
	var groups [][]list.Item
	switch kind {
	case "countries":
		groups = [][]list.Item{country.NewGenerator().Generate(opts.shuffle)}
	case "languages":
		if opts.shuffle {
			return nil, errors.New("--shuffle only applies to countries")
		}
		icons := languages.Icons{Even: a.cfg.Language.IconEven, Odd: a.cfg.Language.IconOdd}
		groups = languages.Groups(a.cfg.Language.Count, a.cfg.Language.GroupSize, icons)
	default:
		return nil, fmt.Errorf("unknown list %q (want countries or languages)", kind)
	}

	engine := list.NewEngine(groups)
	if err := engine.SetPage(opts.page); err != nil {
		return nil, fmt.Errorf("page %d: %w", opts.page, err)
	}
	engine.SetQuery(opts.query)
	return engine.Visible(), nil
}

func writeItems(w io.Writer, items []list.Item, format string) error {
	if items == nil {
		items = []list.Item{}
	}

	switch strings.ToLower(format) {
	case "", "text":
		for _, it := range items {
			line := it.Label
			if it.Icon != "" && !strings.Contains(it.Label, it.Icon) {
				line += "\t" + it.Icon
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
