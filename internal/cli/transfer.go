package cli

import (
	"fmt"
	"os"

	"github.com/gerunddev/notemark/internal/export"
	"github.com/gerunddev/notemark/internal/styles"
	"github.com/spf13/cobra"
)

func exportCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all notes as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if out == "" {
				return export.Write(cmd.OutOrStdout(), a.notes.Notes())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			if err := export.Write(f, a.notes.Notes()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render("✓ Exported notes to "+out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func importCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append notes from a YAML export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()

			list, err := export.Read(f)
			if err != nil {
				return err
			}

			a, cleanup, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := export.Import(cmd.Context(), a.notes, list)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render(fmt.Sprintf("✓ Imported %d note(s)", added)))
			return nil
		},
	}
}
