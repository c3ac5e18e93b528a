package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cartodocs/tagdoc/internal/catalog"
	"github.com/cartodocs/tagdoc/internal/registry"
	"github.com/cartodocs/tagdoc/pkg/tagdoc"
)

// Terminal styles for the list output, minimal and accessible.
var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	listKeyStyle    = lipgloss.NewStyle().Bold(true)
	listBadgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	listValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered tags on the terminal",
	Long: `Build the tag catalog for a namespace and print one line per tag.

Examples:
  tagdoc list
  tagdoc list --namespace osm/roads`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listNamespace string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listNamespace, "namespace", "n", tagdoc.DefaultNamespace, "Namespace to scan for tag definitions")
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := catalog.NewForNamespace(registry.Default(), listNamespace)
	if err != nil {
		return err
	}
	return writeList(cmd.OutOrStdout(), cat)
}

// writeList prints the catalog, one tag per line, keys first so the
// output stays grep-friendly.
func writeList(w io.Writer, cat *catalog.Catalog) error {
	fmt.Fprintln(w, listHeaderStyle.Render(fmt.Sprintf("%d tags under %q", cat.Len(), cat.Namespace())))

	err := cat.Walk(func(rec tagdoc.Record) error {
		var badges []string
		if rec.Localized {
			badges = append(badges, "localized")
		}
		if rec.Synthetic {
			badges = append(badges, "synthetic")
		}

		line := fmt.Sprintf("%s  %s", listKeyStyle.Render(fmt.Sprintf("%-20s", rec.Key)), rec.ValidationKind)
		if len(badges) > 0 {
			line += "  " + listBadgeStyle.Render(strings.Join(badges, ", "))
		}
		if len(rec.ValidValues) > 0 {
			line += "  " + listValueStyle.Render("["+strings.Join(rec.ValidValues, " ")+"]")
		}
		_, err := fmt.Fprintln(w, line)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", tagdoc.ErrRenderFailed, err)
	}
	return nil
}
