// Package receiver declares the contract a blogc-git-receiver
// implementation would sit behind: a git post-receive hook that checks out
// a pushed ref and compiles it. Per spec §1 this is an external
// collaborator — only the interface is specified here; hook-mirroring, git
// plumbing, and ref validation are out of scope (see SPEC_FULL.md §12.6).
//
// Grounded on original_source/src/blogc-git-receiver.c, which wires the
// same compile step this interface exposes into a post-receive hook.
package receiver

import "github.com/gopherblog/blogc/internal/container"

// Compiler is the entry point a git-receiver hook calls once per pushed
// ref: compile the checked-out tree's sources against a template and
// global config, exactly like the CLI's build command does.
type Compiler interface {
	Compile(sources []*container.Map, template []byte, global *container.Map, listing bool) ([]byte, error)
}
