package hub

import (
	"errors"
	"fmt"
)

var ErrMalformedPayload = errors.New("malformed payload")

// RepositoryList is one page of /v2/repositories/<organization>/. Every field
// is optional so that a missing key can be told apart from a zero value.
type RepositoryList struct {
	Count   *int         `json:"count"`
	Next    *string      `json:"next"`
	Results []Repository `json:"results"`
}

type Repository struct {
	Name      *string `json:"name"`
	Namespace *string `json:"namespace"`
	PullCount *int64  `json:"pull_count"`
}

// HasRepositories treats a missing count like zero: the organization is
// either empty or unknown to Docker Hub.
func (l *RepositoryList) HasRepositories() bool {
	return l != nil && l.Count != nil && *l.Count > 0
}

// Repositories returns the results of the page, failing on the first entry
// that lacks a field needed to publish it.
func (l *RepositoryList) Repositories() ([]Repository, error) {
	if l.Results == nil {
		return nil, fmt.Errorf("%w: results is missing", ErrMalformedPayload)
	}

	for i, repo := range l.Results {
		switch {
		case repo.Name == nil:
			return nil, fmt.Errorf("%w: results[%d]: name is missing", ErrMalformedPayload, i)
		case repo.Namespace == nil:
			return nil, fmt.Errorf("%w: results[%d]: namespace is missing", ErrMalformedPayload, i)
		case repo.PullCount == nil:
			return nil, fmt.Errorf("%w: results[%d]: pull_count is missing", ErrMalformedPayload, i)
		}
	}

	return l.Results, nil
}
