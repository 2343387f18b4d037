package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ytget/character-viewer/internal/model"
)

// DefaultEndpoint is the fixed character endpoint; only its first page is read
const DefaultEndpoint = "https://rickandmortyapi.com/api/character"

var tracer = otel.Tracer("fetch")

// Service fetches characters over HTTP
type Service struct {
	endpoint string
	client   *http.Client
	l        logrus.FieldLogger
}

// NewService creates a fetcher bound to DefaultEndpoint
func NewService(l logrus.FieldLogger) *Service {
	return NewServiceWithEndpoint(l, DefaultEndpoint)
}

// NewServiceWithEndpoint creates a fetcher bound to the given endpoint.
// The client has no timeout: a request that never resolves keeps the caller waiting.
func NewServiceWithEndpoint(l logrus.FieldLogger, endpoint string) *Service {
	return &Service{
		endpoint: endpoint,
		client:   &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		l:        l,
	}
}

// Endpoint returns the URL the service requests
func (s *Service) Endpoint() string {
	return s.endpoint
}

// FetchCharacters issues one GET and extracts the results array
func (s *Service) FetchCharacters(ctx context.Context) ([]model.Character, error) {
	ctx, span := tracer.Start(ctx, "Service.FetchCharacters")
	defer span.End()
	span.SetAttributes(attribute.String("http.url", s.endpoint))

	page, err := s.fetchPage(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, &FetchFailure{Endpoint: s.endpoint, Cause: err}
	}

	s.l.WithFields(logrus.Fields{
		"results": len(page.Results),
		"count":   page.Info.Count,
		"pages":   page.Info.Pages,
	}).Infof("Fetched characters from [%s].", s.endpoint)
	span.SetAttributes(attribute.Int("characters.count", len(page.Results)))

	return page.Results, nil
}

// fetchPage performs the request and decodes the envelope
func (s *Service) fetchPage(ctx context.Context) (*model.CharacterPage, error) {
	s.l.Debugf("Requesting characters from [%s].", s.endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrap(ErrUnexpectedStatus, fmt.Sprintf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read body")
	}

	var page model.CharacterPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrap(err, "failed to decode body")
	}
	if page.Results == nil {
		return nil, ErrMissingResults
	}

	return &page, nil
}
