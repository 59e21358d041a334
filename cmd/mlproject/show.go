package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mlproject/mlproject/internal/common"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect YAML configuration documents",
	}

	var key string
	show := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a YAML document, or one dotted key of it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.files.ReadYAML(args[0])
			if err != nil {
				return err
			}
			return printDocument(cmd.OutOrStdout(), doc, key, yamlEncoder)
		},
	}
	show.Flags().StringVar(&key, "key", "", "dotted path of the value to print, e.g. model.depth")

	cmd.AddCommand(show)
	return cmd
}

func newJSONCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Inspect JSON documents",
	}

	var key string
	show := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a JSON document, or one dotted key of it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.files.LoadJSON(args[0])
			if err != nil {
				return err
			}
			return printDocument(cmd.OutOrStdout(), doc, key, jsonEncoder)
		},
	}
	show.Flags().StringVar(&key, "key", "", "dotted path of the value to print, e.g. metrics.rmse")

	cmd.AddCommand(show)
	return cmd
}

type encodeFunc func(w io.Writer, v any) error

func yamlEncoder(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func jsonEncoder(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

func printDocument(w io.Writer, doc *common.Box[any], key string, encode encodeFunc) error {
	if key == "" {
		return encode(w, doc.Map())
	}

	v, err := doc.Lookup(key)
	if err != nil {
		return err
	}

	switch v.(type) {
	case map[string]any, map[any]any, []any:
		return encode(w, v)
	}

	_, err = fmt.Fprintln(w, v)
	return err
}
