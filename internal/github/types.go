package github

// Repository represents a GitHub repository.
type Repository struct {
	Owner         string
	Name          string
	FullName      string // owner/name
	DefaultBranch string
	Ref           string // branch, tag or SHA to read files from
	Size          int    // kilobytes; zero for repositories without commits
	Fork          bool
	Archived      bool
}

// apiRepository is the REST API representation of a repository.
type apiRepository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		Login string `json:"login"`
	} `json:"owner"`
	DefaultBranch string `json:"default_branch"`
	Size          int    `json:"size"`
	Fork          bool   `json:"fork"`
	Archived      bool   `json:"archived"`
}

func (r apiRepository) repository() Repository {
	return Repository{
		Owner:         r.Owner.Login,
		Name:          r.Name,
		FullName:      r.FullName,
		DefaultBranch: r.DefaultBranch,
		Ref:           r.DefaultBranch,
		Size:          r.Size,
		Fork:          r.Fork,
		Archived:      r.Archived,
	}
}

// RepoFilter selects which of an owner's repositories are listed. Empty
// repositories are always skipped.
type RepoFilter struct {
	Forks    bool
	Archived bool
}

// TreeEntry represents a file or directory in a Git tree.
type TreeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"` // blob, tree, commit
	SHA  string `json:"sha"`
	Size int64  `json:"size"`
}

// TreeResponse represents the GitHub API tree response.
type TreeResponse struct {
	SHA       string      `json:"sha"`
	Tree      []TreeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

// Blobs returns the paths of the tree's file entries.
func (t *TreeResponse) Blobs() []string {
	paths := make([]string, 0, len(t.Tree))
	for _, entry := range t.Tree {
		if entry.Type == "blob" {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}

// File is the text content of a file in a repository.
type File struct {
	Path string
	Text string
}
