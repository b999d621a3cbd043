package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/registrame/registrame/internal/app"
	"github.com/registrame/registrame/internal/logging"
	"github.com/registrame/registrame/internal/session"
)

// runApp builds dependencies and launches the TUI. Logs go to a file since
// the TUI owns the terminal.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	logPath, err := cfg.ResolveLogFile()
	if err != nil {
		return fmt.Errorf("resolve log file: %w", err)
	}
	logger, closeLog, err := logging.NewFile(cfg, logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openAuditStore(cmd)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	w := newWizard(ctx, eventRepo(st), logger)

	sess := session.New(ctx, w.Machine, cfg.ExportDir, logger)
	sess.Backend = w.Backend
	sess.ConfigErr = w.ConfigErr

	skip, _ := cmd.Flags().GetBool("no-splash")
	logger.Info().Str("session_id", w.Machine.SessionID()).Str("backend", w.Backend).Msg("tui started")
	return app.Run(app.Options{Session: sess, SkipWelcome: skip})
}
