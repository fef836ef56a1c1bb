package helpmenus

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var examples = []struct{ cmd, desc string }{
	{"wv2setup", "install the runtime if it is missing"},
	{"wv2setup check --min-version 110.0.1587.40", "exit 1 unless a recent runtime is present"},
	{"wv2setup --yes --elevate=false", "install for the current user without prompts"},
	{"wv2setup --prompt dialog", "ask with Windows dialogs instead of the terminal"},
}

// RenderRootHelp writes the styled help page for the root command to out.
func RenderRootHelp(cmd *cobra.Command, out io.Writer) {
	InitHelpStyles(out)
	var output strings.Builder

	header := "WebView2 Runtime Setup"
	if v := cmd.Root().Version; v != "" {
		header += "  v" + v
	}
	output.WriteString(HeaderStyle.Render(header))
	output.WriteString("\n")
	output.WriteString(DescStyle.Render(cmd.Long))
	output.WriteString("\n\n")

	output.WriteString(SectionStyle.Render("● COMMANDS"))
	output.WriteString("\n\n")
	for _, subcmd := range cmd.Commands() {
		if subcmd.IsAvailableCommand() && subcmd.Name() != "help" {
			output.WriteString("  ")
			output.WriteString(CommandStyle.Render(subcmd.Name()))
			output.WriteString(DescStyle.Render(subcmd.Short))
			output.WriteString("\n")
		}
	}
	output.WriteString("\n")

	output.WriteString(SectionStyle.Render("● FLAGS"))
	output.WriteString("\n\n")
	cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) { writeFlag(&output, f) })
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) { writeFlag(&output, f) })
	output.WriteString("\n")

	output.WriteString(SectionStyle.Render("● EXAMPLES"))
	output.WriteString("\n\n")
	for _, ex := range examples {
		output.WriteString("  ")
		output.WriteString(ExampleStyle.Render(ex.cmd))
		output.WriteString("\n      ")
		output.WriteString(DescStyle.Render(ex.desc))
		output.WriteString("\n")
	}
	output.WriteString("\n")

	fmt.Fprint(out, output.String())
}

func writeFlag(b *strings.Builder, f *pflag.Flag) {
	if f.Hidden {
		return
	}
	name := "--" + f.Name
	if f.Shorthand != "" {
		name = "-" + f.Shorthand + ", " + name
	}
	b.WriteString("  ")
	b.WriteString(FlagStyle.Render(name))
	b.WriteString(DescStyle.Render(f.Usage))
	b.WriteString("\n")
}
