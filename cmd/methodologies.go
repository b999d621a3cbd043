package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/registrame/registrame/internal/lesson"
)

var methodologiesCmd = &cobra.Command{
	Use:   "methodologies",
	Short: "List the available methodologies and education levels",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-14s  %-18s  %s\n", "ID", "Nombre", "Descripción")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, m := range lesson.Methodologies() {
			fmt.Fprintf(out, "%-14s  %-18s  %s\n", m.ID, m.Name, m.Description)
		}

		levels := make([]string, 0, len(lesson.Levels()))
		for _, l := range lesson.Levels() {
			levels = append(levels, string(l))
		}
		fmt.Fprintf(out, "\nNiveles: %s (por defecto %s)\n", strings.Join(levels, ", "), lesson.DefaultLevel)
	},
}
