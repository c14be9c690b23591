package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yakov-partners/know2-cli/internal/domain"
	"github.com/yakov-partners/know2-cli/internal/ports"
)

var errEmptySearchIndex = errors.New("search index is required")

// SearchService executes one on-demand query against the remote index over
// an already authenticated session. The query itself is opaque and is passed
// through untouched; paging is caller-controlled and nothing is cached.
type SearchService struct {
	catalog ports.Catalog
	log     zerolog.Logger
}

func NewSearchService(catalog ports.Catalog, log zerolog.Logger) *SearchService {
	return &SearchService{
		catalog: catalog,
		log:     log.With().Str("component", "search").Logger(),
	}
}

func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	if req.Index == "" {
		return domain.SearchResult{}, errEmptySearchIndex
	}
	if req.Take <= 0 {
		req.Take = 10
	}

	result, err := s.catalog.Search(ctx, req)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("search index %s: %w", req.Index, err)
	}

	s.log.Debug().Str("index", req.Index).Int("hits", len(result.Hits)).Int("total", result.Total).Msg("search completed")
	return result, nil
}
