// Package schema validates template field values against their definitions.
//
// Each domain.InputKind maps to a Type that can parse raw form input into a
// domain.FieldValue and check an already typed value. Validation is limited to
// required and format checks; the document model itself never calls it.
//
// Basic usage:
//
//	defs := catalog.FieldDefinitionsFor("poa-revocation")
//
//	v, err := schema.Parse(defs[1], "2024-02-29")
//	if err != nil {
//	    // reject the input
//	}
//
//	if err := schema.Validate(defs, snapshot.Fields); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // show e next to its field
//	    }
//	}
package schema
