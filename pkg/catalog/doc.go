/*
Package catalog is the static registry of lines of business, templates, field
definitions and reusable sections.

A Catalog is built once from Data (bundled YAML, a YAML file or a Loam document
directory), validated, and never mutated afterwards. Every query returns copies.
*/
package catalog
