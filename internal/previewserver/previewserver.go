// Package previewserver declares the contract a blogc-runserver
// implementation would sit behind: a local HTTP server that serves a
// compiled site's output directory and recompiles on request. Per spec §1
// this is an external collaborator — only the interface is specified here;
// HTTP serving, MIME sniffing, and directory-watching are out of scope
// (see SPEC_FULL.md §12.6).
//
// Grounded on original_source/src/blogc-runserver.c and
// blogc-runserver/httpd.h.
package previewserver

// Server is what a local preview server implementation would expose: a
// blocking call that serves dir on addr until ctx-equivalent shutdown.
type Server interface {
	Serve(addr, dir string) error
}
