package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	// batchSize is the number of files to query per GraphQL request.
	batchSize = 100
)

// GetFileContents fetches the text of multiple files at the repository's
// ref. Missing files and binary files are omitted from the result.
func (c *Client) GetFileContents(ctx context.Context, repo Repository, paths []string) ([]File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	results := make([]File, 0, len(paths))

	// Process files in batches to stay within GraphQL API limits.
	for i := 0; i < len(paths); i += batchSize {
		end := min(i+batchSize, len(paths))
		batch := paths[i:end]

		query := buildBlobQuery(repo.Owner, repo.Name, repo.Ref, batch)

		var response struct {
			Repository map[string]*struct {
				Text     *string `json:"text"`
				IsBinary bool    `json:"isBinary"`
			} `json:"repository"`
		}

		err := c.graphql.DoWithContext(ctx, query, nil, &response)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch file contents: %w", err)
		}

		for j, path := range batch {
			blob := response.Repository["file"+strconv.Itoa(j)]
			if blob == nil || blob.IsBinary || blob.Text == nil {
				continue
			}

			results = append(results, File{
				Path: path,
				Text: *blob.Text,
			})
		}
	}

	return results, nil
}

// buildBlobQuery builds a compact GraphQL query with aliases for each file.
// Query structure (shown formatted for readability, actual query is compact):
//
//	{
//	  repository(owner: "owner", name: "repo") {
//	    file0: object(expression: "ref:path0") {
//	      ... on Blob { text isBinary }
//	    }
//	    file1: object(expression: "ref:path1") {
//	      ... on Blob { text isBinary }
//	    }
//	  }
//	}
func buildBlobQuery(owner, repo, ref string, paths []string) string {
	var buf strings.Builder
	buf.Grow(100 + len(paths)*80) // estimate: 100 bytes base overhead + ~80 bytes per path

	fmt.Fprintf(&buf, "{repository(owner:%q,name:%q){", owner, repo)

	for i, path := range paths {
		expression, _ := json.Marshal(ref + ":" + path)
		fmt.Fprintf(&buf, "%s:object(expression:%s){...on Blob{text isBinary}}", "file"+strconv.Itoa(i), expression)
	}

	buf.WriteString("}}")

	return buf.String()
}
