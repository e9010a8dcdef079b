package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/toolcatalog/loader"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog-file]",
		Short: "Check a catalog file (or the builtin catalog) and report its size",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := a.source(firstArg(args))
			reg, closeSearcher, err := a.registry(cmd.Context(), src, nil)
			if err != nil {
				return err
			}
			defer closeSearcher()

			d := reg.Dump()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d categories (%d enabled), %d tools (%d visible)\n",
				src, d.Counts.Categories, d.Counts.EnabledCategories, d.Counts.Tools, d.Counts.VisibleTools)
			return nil
		},
	}
}

func newDumpCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump [catalog-file]",
		Short: "Print the catalog as a diagnostic report or as yaml, toml or json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeSearcher, err := a.registry(cmd.Context(), a.source(firstArg(args)), nil)
			if err != nil {
				return err
			}
			defer closeSearcher()

			out := cmd.OutOrStdout()
			if format == "report" {
				return writeJSON(out, reg.Dump())
			}
			f, err := loader.ParseFormat(format)
			if err != nil {
				return err
			}
			return loader.Encode(out, reg.Index().Catalog(), f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "report", "output format: report, yaml, toml or json")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of catalog files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := loader.SchemaJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
