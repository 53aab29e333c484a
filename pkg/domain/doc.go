/*
Package domain contains the core domain models of the Folio document tool.

It defines the catalog entities (lines of business, templates, field definitions),
the document data (common fields, template field bags, the rich body) and the
persisted snapshot shapes. This package is kept pure and free of I/O, following
Hexagonal Architecture principles.

# Key Entities

  - LineOfBusiness: A top-level category grouping templates.
  - Template: A named document type with a rendering kind and capability flags.
  - FieldValue / FieldData: Tagged field values and the ordered bag that holds them.
  - Snapshot: Everything needed to reconstruct one in-progress document.
  - SavedDocumentRecord: A Snapshot stamped with an id and a save time.
*/
package domain
