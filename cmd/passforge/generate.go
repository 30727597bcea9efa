package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/passforge/internal/cli"
	"github.com/Veraticus/passforge/internal/clipboard"
	"github.com/Veraticus/passforge/internal/common"
	"github.com/Veraticus/passforge/internal/model"
	"github.com/Veraticus/passforge/internal/password"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	length     int
	count      int
	noNumbers  bool
	noSymbols  bool
	copyResult bool
}

func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [type]",
		Short: "Print passwords without the interactive picker",
		Long: `Generate one or more passwords of the given type (pin or random, default pin)
and print them one per line. Length defaults to the type's minimum.`,
		Example: `  passforge generate random --length 24 --no-symbols
  passforge generate pin -n 5
  passforge generate random --copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := string(model.KindPin)
			if len(args) == 1 {
				name = args[0]
			}
			return runGenerate(cmd, name, opts, clipboardFor(settings.ClipboardEnabled))
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "l", 0, "password length (default: minimum for the type)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of passwords to print")
	cmd.Flags().BoolVar(&opts.noNumbers, "no-numbers", false, "leave digits out of random passwords")
	cmd.Flags().BoolVar(&opts.noSymbols, "no-symbols", false, "leave symbols out of random passwords")
	cmd.Flags().BoolVarP(&opts.copyResult, "copy", "c", false, "copy the last password to the clipboard")

	return cmd
}

func clipboardFor(enabled bool) clipboard.Clipboard {
	if !enabled {
		return clipboard.Disabled{}
	}
	return clipboard.NewSystem()
}

func runGenerate(cmd *cobra.Command, name string, opts generateOptions, cb clipboard.Clipboard) error {
	category, err := model.Lookup(name)
	if err != nil {
		return common.NewUserError("Unknown password type", err)
	}

	length := opts.length
	if length == 0 {
		length = category.Bounds.Min
	}
	if !category.Bounds.Contains(length) {
		return common.NewUserError(
			fmt.Sprintf("%s passwords must be %s characters long", category.Name, category.Bounds),
			fmt.Errorf("%w: %d", common.ErrLengthOutOfBounds, length),
		)
	}
	if opts.count < 1 {
		return common.NewUserError("Count must be at least 1", fmt.Errorf("%w: count %d", common.ErrInvalidConfig, opts.count))
	}

	flags := category.DefaultOptions()
	if opts.noNumbers {
		flags = model.WithOption(flags, model.OptionNumbers, false)
	}
	if opts.noSymbols {
		flags = model.WithOption(flags, model.OptionSymbols, false)
	}

	src := password.NewSource(settings.Seed)
	out := cmd.OutOrStdout()

	var last string
	for range opts.count {
		pw, err := password.ForCategory(src, category, length, flags)
		if err != nil {
			common.LogError(err, "Failed to generate password", common.Fields{
				"type":   category.Name,
				"length": length,
			})
			return err
		}
		if _, err := fmt.Fprintln(out, pw); err != nil {
			return err
		}
		last = pw
	}

	slog.Debug("Generated passwords", "type", category.Name, "length", length, "count", opts.count)

	if !opts.copyResult {
		return nil
	}
	if !clipboard.Copy(cb, last) {
		slog.Warn("Password printed but not copied", "type", category.Name)
		return nil
	}
	// Stdout carries only passwords so output stays pipeable.
	_, err = fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess("Copied to clipboard"))
	return err
}
