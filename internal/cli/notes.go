package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gerunddev/notemark/internal/diff"
	"github.com/gerunddev/notemark/internal/notes"
	"github.com/gerunddev/notemark/internal/styles"
	"github.com/spf13/cobra"
)

const emptyListText = "Nothing to do! Add a task?"

func addCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>|-",
		Short: "Add a note (use - to read the text from stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}

			a, cleanup, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := a.notes.Add(cmd.Context(), text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render(fmt.Sprintf("✓ Added note %d", n.ID)))
			return nil
		},
	}
}

func listCmd(opts *rootOptions) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			printList(cmd.OutOrStdout(), a.notes.Notes(), width)
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 60, "maximum title width")
	return cmd
}

func searchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find notes whose text contains query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			matches := a.notes.Search(strings.Join(args, " "))
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), styles.DimStyle.Render("(no matching notes)"))
				return nil
			}
			printList(cmd.OutOrStdout(), matches, 60)
			return nil
		},
	}
}

func showCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, cleanup, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			n, ok := a.notes.FindByID(id)
			if !ok {
				return fmt.Errorf("note %d: %w", id, notes.ErrNotFound)
			}
			return renderTo(cmd.OutOrStdout(), n.Parse(), format, pretty, a.cfg.Width)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTerminal, "output format: terminal, html, markdown, plain")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render through the markdown pager style")
	return cmd
}

func editCmd(opts *rootOptions) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "edit <id> <text>|-",
		Short: "Replace a note's text (empty text keeps the note unchanged)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			text, err := textArg(cmd, args[1:])
			if err != nil {
				return err
			}

			a, cleanup, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			before, ok := a.notes.FindByID(id)
			if !ok {
				return fmt.Errorf("note %d: %w", id, notes.ErrNotFound)
			}
			after, err := a.notes.Edit(cmd.Context(), id, text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			unified := diff.Unified(fmt.Sprintf("note-%d", id), before.Text, after.Text)
			if unified == "" {
				fmt.Fprintln(out, styles.DimStyle.Render(fmt.Sprintf("Note %d unchanged", id)))
				return nil
			}
			if !quiet {
				fmt.Fprintln(out, diff.Colorize(unified))
			}
			fmt.Fprintln(out, styles.SuccessStyle.Render(fmt.Sprintf("✓ Saved note %d", id)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the diff")
	return cmd
}

func deleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, cleanup, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.notes.Delete(cmd.Context(), id); err != nil {
				if errors.Is(err, notes.ErrNotFound) {
					return fmt.Errorf("note %d: %w", id, err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render(fmt.Sprintf("✓ Deleted note %d", id)))
			return nil
		},
	}
}

func printList(w io.Writer, list []notes.Note, width int) {
	if len(list) == 0 {
		fmt.Fprintln(w, styles.DimStyle.Render(emptyListText))
		return
	}

	for _, n := range list {
		updated := ""
		if !n.UpdatedAt.IsZero() {
			updated = styles.DimStyle.Render(n.UpdatedAt.Local().Format(time.DateTime))
		}
		fmt.Fprintf(w, "%s  %s  %s\n",
			styles.HighlightStyle.Render(fmt.Sprintf("%3d", n.ID)),
			n.Title(width),
			updated)
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id '%s'", s)
	}
	return id, nil
}

// textArg joins args into note text; a lone "-" reads stdin instead.
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
