// Package importer sequences the end-to-end import: fetch the listing
// page, extract its attributes, and publish them as a Trello card with
// a cover image and a traceability link back to the source page.
//
// The sequence is strictly linear with no retries and no rollback: any
// failure aborts the import where it stands, and a partially created
// card is left on the board for the operator to deal with.
package importer
