package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"notescape/local-app/internal/cli"
	"notescape/local-app/internal/config"
	"notescape/local-app/internal/data"
	"notescape/local-app/internal/log"
	"notescape/local-app/internal/ui"
)

var (
	cfgFile    string
	logDir     string
	scriptFile string
	noColor    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "notescape",
	Short: "A console manager for a tree of notes",
	Long: `Notescape keeps a tree of notes for the length of a session.
Notes carry a title, content, an optional reminder and an optional image path.
Nothing is saved between runs; use the export command to write a snapshot.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./notescape.yaml or $HOME/.config/notescape/notescape.yaml)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "directory for the command and error logs (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "also log informational events")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&scriptFile, "script", "", "read menu input from a file instead of the terminal")
}

// run builds the session context once and hands it to the menu loop.
func run(stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if logDir != "" {
		cfg.LogFolder = logDir
	}

	logger, err := log.NewLogger(cfg.LogFolder, cfg.CommandLog, cfg.ErrorLog, cfg.InfoLog || verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	u := ui.NewUI(stdout, cfg.UseColor && !noColor && ui.IsTerminal(stdout))

	var input cli.LineReader
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		input = cli.NewScriptReader(f, stdout)
	} else {
		rl, err := cli.NewReadline(cfg.HistoryFile, io.NopCloser(stdin), stdout)
		if err != nil {
			return err
		}
		input = rl
	}
	defer input.Close()

	logger.Info("session started", log.Fields{"config": cfg})

	c := cli.NewCLI(data.NewNoteManager(logger), input, u, logger, cfg)
	if err := c.Run(); err != nil {
		logger.LogError(err, nil)
		return err
	}

	logger.Info("session ended", nil)
	return nil
}
