package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numbers/internal/config"
	"github.com/vovakirdan/numbers/internal/locale"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show round lengths, locales and preferences",
	Long: `Show the round length of every difficulty, the bundled languages and
the stored preferences.

Examples:
  numbers info
  numbers info --config ./my-numbers.yaml --prefs ./settings.cfg`,
	Run: runInfo,
}

var titleStyle = lipgloss.NewStyle().Bold(true)

func runInfo(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal(err)
	}
	locales, err := locale.Load()
	if err != nil {
		fatal(err)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Grid %dx%d, %d tiles", cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.Tiles())))
	fmt.Println()

	fmt.Println(titleStyle.Render("Round length"))
	fmt.Println(durationsTable(cfg.Durations))
	fmt.Println()

	fmt.Println(titleStyle.Render("Languages"))
	fmt.Println(localesTable(locales))
	fmt.Println()

	path := prefsPath()
	prefs, ok := config.NewFilePrefs(path).Load()
	fmt.Println(titleStyle.Render("Preferences"), path)
	if !ok {
		fmt.Println("  none stored yet, the game starts at the language picker")
		return
	}
	name := "?"
	if prefs.Locale >= 0 && prefs.Locale < locales.Len() {
		name = locales.At(prefs.Locale).Name
	}
	fmt.Printf("  difficulty %s, language %s\n", prefs.Difficulty, name)
}

func durationsTable(d config.DurationsConfig) string {
	rows := make([]table.Row, 0, len(config.Difficulties))
	for _, diff := range config.Difficulties {
		rows = append(rows, table.Row{
			diff.String(),
			d.Release.For(diff).String(),
			d.Debug.For(diff).String(),
		})
	}
	return staticTable([]table.Column{
		{Title: "Difficulty", Width: 12},
		{Title: "Release", Width: 10},
		{Title: "Debug", Width: 10},
	}, rows)
}

func localesTable(set *locale.Set) string {
	rows := make([]table.Row, 0, set.Len())
	for i, c := range set.All() {
		missing := "-"
		if m := c.Missing(); len(m) > 0 {
			missing = strings.Join(m, ", ")
		}
		rows = append(rows, table.Row{strconv.Itoa(i), c.Code, c.Name, missing})
	}
	return staticTable([]table.Column{
		{Title: "#", Width: 3},
		{Title: "Code", Width: 6},
		{Title: "Name", Width: 14},
		{Title: "Missing keys", Width: 30},
	}, rows)
}

// staticTable renders a table once, without a cursor.
func staticTable(cols []table.Column, rows []table.Row) string {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Cell

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(styles),
	)
	return t.View()
}
