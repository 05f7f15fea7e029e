// Command swatch browses the demo token set under the built-in palettes.
// Interactive in a terminal; prints a static listing otherwise.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/tintlab/tint/internal/config"
	"github.com/tintlab/tint/internal/palette"
	"github.com/tintlab/tint/internal/tui"
	"github.com/tintlab/tint/tint"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the application logic and returns the exit code, so tests
// can invoke it without os.Exit tearing down the runner.
func run(args []string) int {
	fs := flag.NewFlagSet("swatch", flag.ContinueOnError)
	themeName := fs.String("theme", "", "palette to install as the current theme")
	defaultName := fs.String("default-theme", "", "palette to install as the default theme")
	noColor := fs.Bool("no-color", false, "strip color from all resolved values")
	list := fs.Bool("list", false, "list built-in palettes and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		fmt.Println(strings.Join(palette.Names(), "\n"))
		return 0
	}

	noColorSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "no-color" {
			noColorSet = true
		}
	})

	resolved, err := config.ResolveConfig(config.CliFlags{
		ThemeName:        *themeName,
		DefaultThemeName: *defaultName,
		NoColor:          *noColor,
		NoColorSet:       noColorSet,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "swatch:", err)
		return 2
	}

	store := tint.NewStore()
	if theme, ok := palette.ByName(resolved.DefaultTheme); ok {
		store.SetDefault(theme)
	}
	if theme, ok := palette.ByName(resolved.Theme); ok {
		store.SetCurrent(theme)
	}
	if resolved.NoColor {
		store.SetColorTransform(tint.NoColor())
		store.SetStyleTransform(tint.Monochrome())
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(tui.RenderStatic(store, resolved.Theme))
		return 0
	}

	p := tea.NewProgram(tui.New(store, resolved.Theme), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "swatch:", err)
		return 1
	}
	return 0
}
