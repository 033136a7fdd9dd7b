// Package core provides the non-interactive logic shared by the commands.
//
// Functions here load and save the configuration file, build the REST
// Countries client from it and produce the plain text and JSON output of
// the list and show commands. They return errors instead of printing them;
// printing is limited to the io.Writer the caller passes in.
//
// [ListPage] derives a page through the same catalog.Listing the
// interactive listing uses, so both surfaces agree on filtering and
// pagination.
package core
