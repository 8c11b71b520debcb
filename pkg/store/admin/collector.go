package admin

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/api"
	"github.com/rs/zerolog"
)

// Collection is the result of one forward pass over a paginated resource.
// Complete is false when a page after the first failed: the records gathered
// so far are still usable, and Cause keeps the failure for reporting. A
// first-page failure returns an error instead, since nothing partial exists.
type Collection struct {
	Records  []json.RawMessage
	Complete bool
	Cause    error
}

// collectAll follows continuation tokens until the API stops returning one.
func (c *Client) collectAll(ctx context.Context, resource, path string) (Collection, error) {
	logger := zerolog.Ctx(ctx)

	var records []json.RawMessage
	var token string
	firstPage := true

	for {
		query := url.Values{}
		if token != "" {
			query.Set("continuationToken", token)
		}

		body, retries, err := c.get(ctx, resource, c.resourceURL(path, query))
		if retries > 0 && err == nil {
			logger.Debug().Str("resource", resource).Int("retries", retries).Msg("page fetched after retries")
		}
		if err != nil {
			if firstPage {
				return Collection{}, err
			}
			logger.Warn().Err(err).Str("resource", resource).
				Int("records", len(records)).
				Msg("pagination aborted, keeping partial collection")
			return Collection{Records: records, Complete: false, Cause: err}, nil
		}

		var page api.ListEnvelope
		if err := json.Unmarshal(body, &page); err != nil {
			if firstPage {
				return Collection{}, &TransientError{Resource: resource, Attempts: retries + 1, Err: err}
			}
			return Collection{Records: records, Complete: false, Cause: err}, nil
		}

		records = append(records, page.Value...)
		firstPage = false

		if page.ContinuationToken == nil || *page.ContinuationToken == "" {
			return Collection{Records: records, Complete: true}, nil
		}
		token = *page.ContinuationToken
	}
}
