package model

// Repository is a discovered git working tree under the working directory.
type Repository struct {
	Name   string // directory name, relative to the working directory
	Path   string // absolute path, used as the working directory for every command
	Branch string // current branch at discovery time; "" when HEAD is detached
}

// MergeRequest is the finalized request opened in every selected repository.
type MergeRequest struct {
	Title       string
	Description string
	Reviewers   []string
	Labels      []string // at most one entry
	Assignee    string   // "" means no --assignee flag
}
