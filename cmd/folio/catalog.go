package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/folio/pkg/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the document catalog",
	Long:  `Lists lines of business, templates and template fields, and validates catalog sources.`,
}

var catalogLOBsCmd = &cobra.Command{
	Use:   "lobs",
	Short: "List lines of business",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, lob := range c.ListLOBs() {
			fmt.Fprintf(w, "%s\t%s\n", lob.ID, lob.Name)
		}
		return w.Flush()
	},
}

var catalogTemplatesCmd = &cobra.Command{
	Use:   "templates <lob-id>",
	Short: "List the templates of a line of business",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		if _, err := c.LOB(args[0]); err != nil {
			return err
		}
		search, _ := cmd.Flags().GetString("search")

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tKIND\tEDITOR")
		for _, t := range c.ListTemplatesForLOB(args[0], search) {
			editor := "structured"
			if t.UsesRichEditor {
				editor = "rich"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Kind, editor)
		}
		return w.Flush()
	},
}

var catalogFieldsCmd = &cobra.Command{
	Use:   "fields <template-id>",
	Short: "List the fields of a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		if _, err := c.Template(args[0]); err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLABEL\tINPUT\tREQUIRED")
		for _, f := range c.FieldDefinitionsFor(args[0]) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", f.ID, f.Label, f.InputKind, f.Required)
		}
		return w.Flush()
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [dir|file.yaml]",
	Short: "Check a catalog for consistency",
	Long:  `Loads a catalog directory (Loam) or YAML file and reports invalid entries and configuration warnings.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := cfg.CatalogDir
		if len(args) > 0 {
			source = args[0]
		}
		c, err := openCatalog(cmd, source)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		out := cmd.OutOrStdout()
		for _, w := range c.Warnings() {
			fmt.Fprintf(out, "warning: %v\n", w)
		}
		fmt.Fprintf(out, "Catalog is valid: %d lines of business, %d templates, %d sections\n",
			len(c.ListLOBs()), len(c.Data().Templates), len(c.Sections()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogLOBsCmd, catalogTemplatesCmd, catalogFieldsCmd, catalogValidateCmd)
	catalogTemplatesCmd.Flags().StringP("search", "s", "", "Filter templates by name")
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	return openCatalog(cmd, cfg.CatalogDir)
}

// openCatalog loads source as a YAML file, a Loam directory, or the built-in
// catalog when source is empty.
func openCatalog(cmd *cobra.Command, source string) (*catalog.Catalog, error) {
	opts := []catalog.Option{catalog.WithLogger(logger)}
	switch ext := strings.ToLower(filepath.Ext(source)); {
	case source == "":
		return catalog.Default(opts...)
	case ext == ".yaml" || ext == ".yml":
		return catalog.LoadFile(source, opts...)
	default:
		return catalog.LoadDir(cmd.Context(), source, opts...)
	}
}
