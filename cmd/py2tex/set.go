package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/kjk/py2tex/log"
	"github.com/kjk/py2tex/texfmt"
	"github.com/kjk/py2tex/texvars"
	"github.com/kjk/py2tex/u"
)

// saveValue saves name => value or, with dryRun, prints a diff of
// the file instead of writing it
func saveValue(opts *rootOptions, w io.Writer, name, value string, dryRun bool) error {
	if !texvars.IsValidName(name) {
		log.Warnf("'%s' is not a valid LaTeX macro name, use only letters\n", name)
	}
	s := opts.openStore()
	if !dryRun {
		return s.Save(name, value)
	}
	before, _, err := u.ReadFileMaybe(s.Path)
	if err != nil {
		return err
	}
	if _, _, err = s.Set(name, value); err != nil {
		return err
	}
	after, err := s.Render()
	if err != nil {
		return err
	}
	if string(before) == string(after) {
		fmt.Fprintf(w, "no changes to '%s'\n", s.Path)
		return nil
	}
	diff, err := unifiedDiff(s.Path, string(before), string(after))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, diff)
	return err
}

func unifiedDiff(path string, before, after string) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (new)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a number", s)
	}
	return v, nil
}

func newSetCommand(opts *rootOptions) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Save a pre-formatted value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveValue(opts, cmd.OutOrStdout(), args[0], args[1], dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show changes without writing the file")
	return cmd
}

func newSciCommand(opts *rootOptions) *cobra.Command {
	var dryRun bool
	var sigFigs int
	cmd := &cobra.Command{
		Use:   "sci <name> <number>",
		Short: `Save a number in scientific notation e.g. 1.2\times10^{8}`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("sig-figs") {
				sigFigs = opts.cfg.SigFigs
			}
			value, err := texfmt.Scientific(v, sigFigs)
			if err != nil {
				return err
			}
			return saveValue(opts, cmd.OutOrStdout(), args[0], value, dryRun)
		},
	}
	cmd.Flags().IntVar(&sigFigs, "sig-figs", texfmt.DefaultSigFigs, "significant figures, 0 for only the power of 10")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show changes without writing the file")
	return cmd
}

func newPctCommand(opts *rootOptions) *cobra.Command {
	var dryRun, noSign bool
	var precision int
	cmd := &cobra.Command{
		Use:   "pct <name> <fraction>",
		Short: `Save a fraction as a percentage e.g. 0.573 => 57\%`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("precision") {
				precision = opts.cfg.Precision
			}
			withSign := opts.cfg.PercentSign
			if cmd.Flags().Changed("no-sign") {
				withSign = !noSign
			}
			value, err := texfmt.Percentage(v, precision, withSign)
			if err != nil {
				return err
			}
			return saveValue(opts, cmd.OutOrStdout(), args[0], value, dryRun)
		},
	}
	cmd.Flags().IntVar(&precision, "precision", texfmt.DefaultPrecision, "number of digits")
	cmd.Flags().BoolVar(&noSign, "no-sign", false, `don't append \%`)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show changes without writing the file")
	return cmd
}
