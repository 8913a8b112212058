package airport

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/dharmasatrya/flightfinder/internal/models"
)

//go:embed data/airports.json
var embeddedAirports []byte

var ErrInvalidDataset = errors.New("invalid airports data format")

// Source produces the raw airport dataset, a JSON document shaped
// {"airports": [...]}.
type Source interface {
	Load(ctx context.Context) ([]models.Airport, error)
}

type SourceFunc func(ctx context.Context) ([]models.Airport, error)

func (f SourceFunc) Load(ctx context.Context) ([]models.Airport, error) {
	return f(ctx)
}

// NewSource picks a source from a location: empty means the embedded dataset,
// http(s) URLs are fetched, anything else is read from disk.
func NewSource(location string, client *http.Client) Source {
	switch {
	case location == "":
		return EmbeddedSource{}
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return &HTTPSource{URL: location, Client: client}
	default:
		return FileSource{Path: location}
	}
}

type EmbeddedSource struct{}

func (EmbeddedSource) Load(ctx context.Context) ([]models.Airport, error) {
	return decode(embeddedAirports)
}

type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]models.Airport, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Load(ctx context.Context) ([]models.Airport, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to load airports data: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func decode(data []byte) ([]models.Airport, error) {
	var doc struct {
		Airports []models.Airport `json:"airports"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	if len(doc.Airports) == 0 {
		return nil, fmt.Errorf("%w: no airports", ErrInvalidDataset)
	}
	return doc.Airports, nil
}
