package hub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-containerregistry/pkg/v1/remote/transport"
	"sigs.k8s.io/yaml"

	pkgcontext "github.com/flant/dockerhub-pulls-exporter/pkg/context"
)

const (
	DefaultBaseURL = "https://hub.docker.com"

	requestTimeout = 10 * time.Second
	pageSize       = 25
	userAgent      = "dockerhub-pulls-exporter"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	customTransport := http.DefaultTransport.(*http.Transport).Clone()

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: transport.NewUserAgent(customTransport, userAgent),
			Timeout:   requestTimeout,
		},
	}
}

// RepositoriesURL points at the first page of the organization's repositories.
func (c *Client) RepositoriesURL(organization string) string {
	return fmt.Sprintf("%s/v2/repositories/%s/?page_size=%d&page=1", c.baseURL, url.PathEscape(organization), pageSize)
}

// FetchRepositories requests the first page of the organization's
// repositories. Request failures are logged here; a body that doesn't fit
// RepositoryList is returned as ErrMalformedPayload and left to the caller.
func (c *Client) FetchRepositories(ctx context.Context, organization string) (*RepositoryList, int, error) {
	log := pkgcontext.GetLogger(ctx)

	list, code, err := c.fetch(ctx, c.RepositoriesURL(organization))
	if err != nil && !errors.Is(err, ErrMalformedPayload) {
		log.WithField("reason", Reason(err)).Errorf("HTTP request failed: %s", err)
	}

	return list, code, err
}

func (c *Client) fetch(ctx context.Context, queryURL string) (*RepositoryList, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, transport.CheckError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	list := &RepositoryList{}
	if err := yaml.Unmarshal(body, list); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}

	return list, resp.StatusCode, nil
}
