// Package main provides the entry point for the daft2trello CLI.
//
// daft2trello scrapes a Daft.ie property listing and republishes it as
// a card on a Trello board, with the listing photo as the card cover
// and a link back to the original page.
//
// Usage:
//
//	daft2trello configure
//	daft2trello import <listing-url>
//
// See --help for all available options.
package main

// main is the entry point for daft2trello.
func main() {
	Execute()
}
