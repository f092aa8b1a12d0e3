package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/pthm/cmpengine"
)

var (
	typeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	childStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (a *app) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered component types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			palette := a.engine.Registry().Palette()
			width := 0
			for _, entry := range palette {
				width = max(width, len(entry.Type))
			}
			for _, entry := range palette {
				fmt.Fprintln(cmd.OutOrStdout(), paletteLine(entry, width))
			}
		},
	}
}

func paletteLine(entry cmpengine.PaletteEntry, width int) string {
	name := typeStyle.Render(fmt.Sprintf("%-*s", width, entry.Type))
	line := name + "  " + titleStyle.Render(entry.Title)
	if entry.HasChildren {
		line += " " + childStyle.Render("[children]")
	}
	if n := len(entry.EditableProps); n > 0 {
		line += " " + dimStyle.Render(fmt.Sprintf("(%d props)", n))
	}
	return line
}

func (a *app) newDescribeCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "describe TYPE",
		Short: "Show metadata for a component type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := a.engine.Registry()
			if _, ok := reg.Lookup(args[0]); !ok {
				return fmt.Errorf("%w: %s", cmpengine.ErrNotFound, args[0])
			}
			doc := describeMarkdown(reg, args[0])
			if plain {
				fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			out, err := glamour.Render(doc, "auto")
			if err != nil {
				return fmt.Errorf("failed to render description: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown")

	return cmd
}

func describeMarkdown(reg *cmpengine.Registry, componentType string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", reg.Title(componentType))
	fmt.Fprintf(&sb, "Type: `%s`\n\n", componentType)
	if d := reg.Description(componentType); d != "" {
		sb.WriteString(d + "\n\n")
	}
	if reg.HasChildren(componentType) {
		sb.WriteString("Accepts children.\n\n")
	}

	props := reg.EditableProps(componentType)
	if len(props) > 0 {
		sb.WriteString("## Props\n\n| Name | Type | Label | Default |\n|---|---|---|---|\n")
		names := lo.Keys(props)
		slices.Sort(names)
		for _, name := range names {
			p := props[name]
			def := ""
			if p.Default != nil {
				def = fmt.Sprint(p.Default)
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", name, p.Type, p.Label, def)
		}
		sb.WriteString("\n")
	}

	if css := reg.MetadataFor(componentType).Styles; css != "" {
		sb.WriteString("## Styles\n\n```css\n" + strings.TrimSpace(css) + "\n```\n")
	}
	return sb.String()
}
