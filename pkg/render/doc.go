// Package render turns a document snapshot into a View: an ordered list of
// presentation blocks shared by the CLI preview, the HTTP API and the PDF
// rasterizer. Each template kind has its own renderer; kinds without one use
// a generic field listing.
package render
