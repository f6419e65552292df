package cli

import (
	"fmt"
	"io"

	"github.com/gerunddev/notemark/internal/markup"
	"github.com/gerunddev/notemark/internal/render"
	"github.com/spf13/cobra"
)

const (
	formatTerminal = "terminal"
	formatHTML     = "html"
	formatMarkdown = "markdown"
	formatPlain    = "plain"
)

func previewCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "preview [text|-]",
		Short: "Render markup without storing it (reads stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			return renderTo(cmd.OutOrStdout(), markup.Parse(text), format, pretty, 80)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTerminal, "output format: terminal, html, markdown, plain")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render through the markdown pager style")
	return cmd
}

func markersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markers",
		Short: "Show the markup syntax",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), render.Cheatsheet())
		},
	}
}

func renderTo(w io.Writer, frag markup.Fragment, format string, pretty bool, width int) error {
	if pretty {
		out, err := render.Glamour(frag, width)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}

	switch format {
	case formatTerminal:
		_, err := fmt.Fprintln(w, render.Terminal(frag))
		return err
	case formatHTML:
		if err := render.HTML(w, frag); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	case formatMarkdown:
		_, err := io.WriteString(w, render.Markdown(frag))
		return err
	case formatPlain:
		_, err := fmt.Fprintln(w, render.Plain(frag))
		return err
	default:
		return fmt.Errorf("unknown format '%s': must be one of: terminal, html, markdown, plain", format)
	}
}
