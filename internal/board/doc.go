// Package board renders a Trello board snapshot for the operator:
// lists in board order, each with the cards it contains. Trello returns
// cards as a flat sequence referencing their list by identifier, so the
// hierarchy shown here is a derived view.
//
// Two formats are supported: a plain-text writer for terminal display
// and a Markdown writer for documentation and sharing.
package board
