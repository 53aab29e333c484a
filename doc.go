/*
Package folio is a document-generation library: pick a line of business and a
template from a catalog, fill its fields or rich body, keep a bounded history of
saved documents, and export the result to PDF or a printer.

# Concept

A document in progress is a document.Model, a small state machine owned by one
caller. The App wires the model to its collaborators: the catalog
(lines of business, templates, field definitions), the history store (the ten
most recent saved snapshots in a single blob), the exporter and a Notifier that
receives one user-facing message per boundary operation.

Storage is a ports.BlobStore, so the same history works in memory, on disk,
in SQLite or in Redis, optionally behind encryption and PII masking middleware.

# Usage

	app, err := folio.New(folio.WithBlobStore(file.New(".folio/store")))
	if err != nil {
		log.Fatal(err)
	}

	doc := app.NewDocument()
	tmpl, _ := app.Catalog().Template("poa-revocation")
	doc.Apply(
		document.SelectLOB{LOB: &personal},
		document.SelectTemplate{Template: &tmpl},
		document.UpdateField{ID: "declarantName", Value: domain.Text("Jane Doe")},
	)

	rec, err := app.Save(ctx, doc)
	...
	err = app.ExportPDF(ctx, doc, out)
*/
package folio
