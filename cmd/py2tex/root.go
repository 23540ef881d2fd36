package main

import (
	"github.com/spf13/cobra"

	"github.com/kjk/py2tex/config"
	"github.com/kjk/py2tex/log"
	"github.com/kjk/py2tex/texvars"
)

type rootOptions struct {
	ConfigPath string
	File       string
	LogDir     string
	Verbose    bool

	cfg *config.Config
}

func (o *rootOptions) openStore() *texvars.Store {
	return texvars.Open(o.cfg.File)
}

// loadConfig reads the config file and applies flags given explicitly
func (o *rootOptions) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = o.File
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = o.LogDir
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.Verbose
	}
	o.cfg = cfg
	return nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "py2tex",
		Short: "Save computed values as LaTeX macros",
		Long: `py2tex keeps a file of \newcommand{\name}{value} definitions.
Include it in a LaTeX document with \input and refer to values by name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.loadConfig(cmd); err != nil {
				return err
			}
			// notices go to stderr so that stdout can be piped
			log.Output = cmd.ErrOrStderr()
			log.Verbose = opts.cfg.Verbose
			log.Init(&log.Config{Dir: opts.cfg.LogDir})
			log.Verbosef("using '%s'\n", opts.cfg.File)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Close()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", config.DefaultPath, "config file")
	pf.StringVarP(&opts.File, "file", "f", "", "definitions file (overrides config)")
	pf.StringVar(&opts.LogDir, "log-dir", "", "directory for log files (overrides config)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newSetCommand(opts))
	cmd.AddCommand(newSciCommand(opts))
	cmd.AddCommand(newPctCommand(opts))
	cmd.AddCommand(newRmCommand(opts))
	cmd.AddCommand(newGetCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newInitCommand(opts))
	return cmd
}
