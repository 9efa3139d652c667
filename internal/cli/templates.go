package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/printgrid/pkg/layout"
	"github.com/matzehuels/printgrid/pkg/templates"
)

// templatesCommand creates the templates management command.
func (c *CLI) templatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage layout templates",
	}

	cmd.AddCommand(c.templatesListCommand())
	cmd.AddCommand(c.templatesShowCommand())
	cmd.AddCommand(c.templatesAddCommand())
	cmd.AddCommand(c.templatesRemoveCommand())
	cmd.AddCommand(c.templatesPickCommand())

	return cmd
}

// templatesListCommand creates the "templates list" subcommand.
func (c *CLI) templatesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and user-defined templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := c.newRegistry(cmd.Context())
			if err != nil {
				return err
			}
			defer registry.Close()

			fmt.Println(StyleTitle.Render("Built-in templates"))
			for _, t := range templates.Presets() {
				printTemplateLine(t)
			}

			custom := registry.List()
			if len(custom) > 0 {
				printNewline()
				fmt.Println(StyleTitle.Render("User templates"))
				for _, t := range custom {
					printTemplateLine(t)
				}
			}
			return nil
		},
	}
}

func printTemplateLine(t layout.Template) {
	desc := t.Name
	if desc == "" {
		desc = t.Description
	}
	shape := fmt.Sprintf("%dx%d", t.Grid.Cols, t.Grid.Rows)
	if t.IsCustom() {
		shape += fmt.Sprintf(", %d cells", len(t.Cells))
	}
	printKeyValue(t.ID, desc+" "+StyleDim.Render("("+shape+")"))
}

// templatesShowCommand creates the "templates show" subcommand.
func (c *CLI) templatesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one template as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := c.newRegistry(cmd.Context())
			if err != nil {
				return err
			}
			defer registry.Close()

			t, ok := registry.Resolve(args[0])
			if !ok {
				return fmt.Errorf("no template %q", args[0])
			}
			data, err := json.MarshalIndent(t, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}

// templatesAddCommand creates the "templates add" subcommand.
func (c *CLI) templatesAddCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a template from a JSON file",
		Long: `Register a template from a JSON file.

The file holds one template document, for example:

  {
    "id": "my-collage",
    "name": "My Collage",
    "grid": {"cols": 3, "rows": 3},
    "gap": 4,
    "cells": [
      {"x": 0, "y": 0, "col_span": 2, "row_span": 2},
      {"x": 2, "y": 0},
      {"x": 2, "y": 1},
      {"x": 0, "y": 2},
      {"x": 1, "y": 2},
      {"x": 2, "y": 2}
    ]
  }

Omitting the id assigns a generated one. Registering an existing id
replaces that template.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTemplatesAdd(cmd.Context(), file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "template JSON file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (c *CLI) runTemplatesAdd(ctx context.Context, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read template %s: %w", file, err)
	}
	var t layout.Template
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse template %s: %w", file, err)
	}

	registry, err := c.newRegistry(ctx)
	if err != nil {
		return err
	}
	defer registry.Close()

	stored, err := registry.Register(ctx, t)
	if err != nil {
		return err
	}

	printSuccess("Registered template %s", stored.ID)
	printNextStep("Use it", fmt.Sprintf("%s render ./photos -t %s", appName, stored.ID))
	return nil
}

// templatesRemoveCommand creates the "templates remove" subcommand.
func (c *CLI) templatesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a user-defined template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := c.newRegistry(cmd.Context())
			if err != nil {
				return err
			}
			defer registry.Close()

			removed, err := registry.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !removed {
				if _, isPreset := templates.Preset(args[0]); isPreset {
					printWarning("%s is a built-in template and cannot be removed", args[0])
					return nil
				}
				return fmt.Errorf("no template %q", args[0])
			}
			printSuccess("Removed template %s", args[0])
			return nil
		},
	}
}
