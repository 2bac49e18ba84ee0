package model

// RepoFileRef holds the parts of a GitHub blob URL
type RepoFileRef struct {
	Owner      string
	Repository string
	Ref        string
	Path       string
}

// FullName returns owner/repository.
func (r RepoFileRef) FullName() string {
	return r.Owner + "/" + r.Repository
}
