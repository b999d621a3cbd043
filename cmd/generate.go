package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/registrame/registrame/internal/document"
	"github.com/registrame/registrame/internal/gateway"
	"github.com/registrame/registrame/internal/lesson"
	"github.com/registrame/registrame/internal/logging"
	"github.com/registrame/registrame/internal/plan"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a lesson plan without the TUI",
	Long: `Generate the DUA & STEM overview and the selected sections for one lesson,
then print the assembled Markdown plan or write it to --out.

Flags override the fields of --request, a JSON or YAML file with the keys
subject, topic, level, duration, context and methodology.`,
	Example: `  registrame generate --subject Biología --topic "La Célula" --duration "90 min" --methodology inquiry
  registrame generate --request lesson.yaml --sections objectives,rubric --out plan.md`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("subject", "", "Subject (Asignatura)")
	f.String("topic", "", "Topic (Tema)")
	f.String("level", "", "Education level: Primaria, Secundaria, Universitario, Posgrado (default Secundaria)")
	f.String("duration", "", "Session duration, e.g. \"90 min\"")
	f.String("context", "", "Optional description of the group")
	f.String("methodology", "", "Methodology ID (see 'registrame methodologies')")
	f.String("request", "", "Read the lesson request from a JSON or YAML file")
	f.StringSlice("sections", []string{"objectives", "sequence", "rubric"}, "Dependent sections to generate after the overview")
	f.StringP("out", "o", "", "Write the plan to this file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.New(cfg, cmd.ErrOrStderr())

	draft, err := draftFromFlags(cmd)
	if err != nil {
		return err
	}
	names, _ := cmd.Flags().GetStringSlice("sections")
	sections, err := parseSections(names)
	if err != nil {
		return err
	}

	st, err := openAuditStore(cmd)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	w := newWizard(ctx, eventRepo(st), logger)
	if w.ConfigErr != nil {
		return fmt.Errorf("generation backend not configured: %w", w.ConfigErr)
	}

	if err := w.Machine.SubmitOverview(ctx, draft); err != nil {
		return describe(err)
	}
	for _, sec := range sections {
		if err := w.Machine.GenerateSection(ctx, sec); err != nil {
			return describe(err)
		}
	}

	state := w.Machine.State()
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), document.Assemble(state))
		return err
	}
	if err := document.Export(out, state); err != nil {
		return err
	}
	logger.Info().Str("path", out).Msg("plan written")
	return nil
}

// draftFromFlags merges --request with the individual field flags; flags win.
func draftFromFlags(cmd *cobra.Command) (lesson.Draft, error) {
	var d lesson.Draft
	if path, _ := cmd.Flags().GetString("request"); path != "" {
		loaded, err := lesson.LoadDraft(path)
		if err != nil {
			return d, err
		}
		d = loaded
	}

	str := func(name string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	str("subject", &d.Subject)
	str("topic", &d.Topic)
	str("duration", &d.Duration)
	str("context", &d.Context)
	str("methodology", &d.Methodology)

	if cmd.Flags().Changed("level") {
		raw, _ := cmd.Flags().GetString("level")
		level, err := lesson.ParseLevel(raw)
		if err != nil {
			return d, err
		}
		d.Level = level
	}
	return d, nil
}

// parseSections validates --sections. The overview is always generated and
// may be listed without effect.
func parseSections(names []string) ([]plan.Section, error) {
	var out []plan.Section
	seen := make(map[plan.Section]bool)
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		sec, err := plan.ParseSection(name)
		if err != nil {
			return nil, err
		}
		if sec.Dependent() && !seen[sec] {
			seen[sec] = true
			out = append(out, sec)
		}
	}
	return out, nil
}

// describe adds a hint for the errors a user can act on.
func describe(err error) error {
	var incomplete *lesson.IncompleteRequestError
	switch {
	case errors.As(err, &incomplete):
		return fmt.Errorf("%w (set --%s)", err, strings.Join(incomplete.Missing, ", --"))
	case errors.Is(err, lesson.ErrInvalidLevel):
		return fmt.Errorf("%w (run registrame methodologies for the levels)", err)
	case errors.Is(err, gateway.ErrConfiguration):
		return fmt.Errorf("%w (see registrame --help for the API key variables)", err)
	}
	return err
}

