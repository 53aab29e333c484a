package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/folio"
	"github.com/aretw0/folio/internal/presentation/tui"
	"github.com/aretw0/folio/pkg/document"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage saved documents",
	Long:  `Create, list, inspect, preview, export and remove the documents kept in the configured store.`,
}

var docsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved documents, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), tui.Notifier(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		defer e.Close()

		docs := e.App.Documents(cmd.Context())
		if len(docs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved documents found.")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tTEMPLATE\tSAVED")
		for _, d := range docs {
			templateID := "-"
			if d.Template != nil {
				templateID = d.Template.ID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Title(), templateID, d.SavedAt.Local().Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var docsShowCmd = &cobra.Command{
	Use:   "show <doc-id>",
	Short: "Print a saved document as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer e.Close()

		rec, err := e.App.History().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling document: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var docsRmCmd = &cobra.Command{
	Use:   "rm <doc-id>...",
	Short: "Remove one or more saved documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer e.Close()

		failed := 0
		for _, id := range args {
			if err := e.App.Delete(cmd.Context(), id); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error removing '%s': %v\n", id, err)
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed document '%s'\n", id)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d documents could not be removed", failed, len(args))
		}
		return nil
	},
}

var docsPreviewCmd = &cobra.Command{
	Use:   "preview <doc-id>",
	Short: "Render a saved document in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer e.Close()

		m, err := openDocument(cmd, e.App, args[0])
		if err != nil {
			return err
		}
		out, err := tui.NewRenderer(os.Stdout)(e.App.View(m, args[0]).Markdown())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var docsPDFCmd = &cobra.Command{
	Use:   "pdf <doc-id>",
	Short: "Export a saved document to PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		e, err := openEnv(cmd.Context(), tui.Notifier(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		defer e.Close()

		m, err := openDocument(cmd, e.App, args[0])
		if err != nil {
			return err
		}
		if output == "" {
			output = args[0] + ".pdf"
		}
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		if err := e.App.ExportView(cmd.Context(), e.App.View(m, args[0]), f); err != nil {
			_ = f.Close()
			_ = os.Remove(output)
			return err
		}
		return f.Close()
	},
}

var docsPrintCmd = &cobra.Command{
	Use:   "print <doc-id>",
	Short: "Send a saved document to the printer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), tui.Notifier(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		defer e.Close()

		m, err := openDocument(cmd, e.App, args[0])
		if err != nil {
			return err
		}
		return e.App.PrintView(cmd.Context(), e.App.View(m, args[0]))
	},
}

var docsNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Compose and save a document",
	Long: `Builds a document from flags and saves it.

Example:
  folio docs new --lob personal_banking --template poa-revocation \
    --field declarantName="Jane Roe" --field revocationDate=2024-03-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := newDocumentRequests(cmd)
		if err != nil {
			return err
		}
		e, err := openEnv(cmd.Context(), tui.Notifier(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		defer e.Close()

		template, _ := cmd.Flags().GetString("template")
		defs := e.App.Catalog().FieldDefinitionsFor(template)
		if err := typeFieldValues(defs, raw); err != nil {
			return err
		}
		reqs, err := document.DecodeRequests(raw)
		if err != nil {
			return err
		}
		edits, err := document.ResolveAll(e.App.Catalog(), reqs)
		if err != nil {
			return err
		}
		m := e.App.NewDocument()
		m.Apply(edits...)

		if err := schema.Validate(defs, m.TemplateFields()); err != nil {
			if force, _ := cmd.Flags().GetBool("force"); !force {
				return err
			}
			logger.Warn("Saving document with invalid fields", "err", err)
		}

		rec, err := e.App.Save(cmd.Context(), m)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rec.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.AddCommand(docsLsCmd, docsShowCmd, docsRmCmd, docsPreviewCmd, docsPDFCmd, docsPrintCmd, docsNewCmd)

	docsPDFCmd.Flags().StringP("output", "o", "", "Output file (default <doc-id>.pdf)")
	docsPrintCmd.Flags().StringVar(&cfg.Printer, "printer", cfg.Printer, "Printer name from the printers file")
	docsPrintCmd.Flags().StringVar(&cfg.PrintersFile, "printers", cfg.PrintersFile, "Printers file (YAML or JSON)")

	addNewDocumentFlags(docsNewCmd.Flags())
	_ = docsNewCmd.MarkFlagRequired("template")
}

func addNewDocumentFlags(fs *pflag.FlagSet) {
	fs.String("lob", "", "Line of business ID")
	fs.String("template", "", "Template ID")
	fs.String("subject", "", "Subject")
	fs.String("recipient", "", "Recipient name")
	fs.StringToString("field", nil, "Template field as id=value (repeatable)")
	fs.String("body", "", "Rich body markup (rich templates only)")
	fs.StringSlice("section", nil, "Common section IDs to insert, in order")
	fs.Bool("force", false, "Save even when required or typed fields are invalid")
}

// typeFieldValues parses raw flag values according to the template's field
// definitions, so a number field stores a number rather than text.
func typeFieldValues(defs []domain.FieldDefinition, raw []map[string]any) error {
	byID := make(map[string]domain.FieldDefinition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	for _, r := range raw {
		if r["op"] != document.OpUpdateField {
			continue
		}
		id, _ := r["fieldId"].(string)
		def, ok := byID[id]
		str, isString := r["value"].(string)
		if !ok || !isString {
			continue
		}
		v, err := schema.Parse(def, str)
		if err != nil {
			return err
		}
		r["value"] = v
	}
	return nil
}

// newDocumentRequests turns the flags of `docs new` into edit requests, in
// the order an editor would apply them.
func newDocumentRequests(cmd *cobra.Command) ([]map[string]any, error) {
	flags := cmd.Flags()
	lob, _ := flags.GetString("lob")
	template, _ := flags.GetString("template")
	fields, _ := flags.GetStringToString("field")
	sections, _ := flags.GetStringSlice("section")

	var raw []map[string]any
	if lob != "" {
		raw = append(raw, map[string]any{"op": document.OpSelectLOB, "lobId": lob})
	}
	if template == "" {
		return nil, fmt.Errorf("%w: a template is required", document.ErrInvalidEdit)
	}
	raw = append(raw, map[string]any{"op": document.OpSelectTemplate, "templateId": template})

	common := map[string]any{"op": document.OpUpdateCommon}
	if flags.Changed("subject") {
		common["subject"], _ = flags.GetString("subject")
	}
	if flags.Changed("recipient") {
		common["recipientName"], _ = flags.GetString("recipient")
	}
	if len(common) > 1 {
		raw = append(raw, common)
	}

	ids := make([]string, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		raw = append(raw, map[string]any{"op": document.OpUpdateField, "fieldId": id, "value": fields[id]})
	}

	if flags.Changed("body") {
		body, _ := flags.GetString("body")
		raw = append(raw, map[string]any{"op": document.OpSetBody, "markup": body})
	}
	for _, s := range sections {
		raw = append(raw, map[string]any{"op": document.OpInsertSection, "sectionId": strings.TrimSpace(s)})
	}
	return raw, nil
}

func openDocument(cmd *cobra.Command, app *folio.App, id string) (*document.Model, error) {
	m := app.NewDocument()
	if _, err := app.Open(cmd.Context(), m, id); err != nil {
		return nil, err
	}
	return m, nil
}
