// Package export turns a rendered View into a PDF or a print job.
//
// At most one export per view key runs at a time. Around every capture the
// configured Chrome is hidden and then restored, whatever the outcome.
package export
