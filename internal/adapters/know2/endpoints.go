package know2

import (
	"context"
	"net/http"

	"github.com/yakov-partners/know2-cli/internal/domain"
)

// The catalog surface: eighteen fixed fetch operations plus the search
// pass-through. Each fetch binds one path and one envelope payload shape;
// the "params" family returns a flat row list, everything else arrives
// paged. Non-2xx statuses become RemoteError with the raw body attached.

func remoteErr(method, path string) func(status int, body string) error {
	return func(status int, body string) error {
		return &domain.RemoteError{Method: method, Path: path, StatusCode: status, Body: body}
	}
}

func (s *Session) flatParams(ctx context.Context, path string) ([]domain.ParamsRow, error) {
	env, err := fetch[[]paramsRow](ctx, s.client, http.MethodGet, path, nil, nil, remoteErr(http.MethodGet, path))
	if err != nil {
		return nil, err
	}
	return paramsRows(env.Payload), nil
}

func (s *Session) pagedTaxonomy(ctx context.Context, path, orderBy, order string) ([]domain.TaxonomyRow, error) {
	query := orderedBy(orderBy, order)
	env, err := fetch[paged[taxonomyRow]](ctx, s.client, http.MethodGet, path, query, nil, remoteErr(http.MethodGet, path))
	if err != nil {
		return nil, err
	}
	return taxonomyRows(env.Payload.Items), nil
}

func (s *Session) ExpertAvailabilityStatuses(ctx context.Context) ([]domain.ParamsRow, error) {
	return s.flatParams(ctx, "/api/v1/experts/expert_availability_statuses")
}

func (s *Session) ExpertContractStatuses(ctx context.Context) ([]domain.ParamsRow, error) {
	return s.flatParams(ctx, "/api/v1/experts/expert_contract_statuses")
}

func (s *Session) ExpertSubdivisions(ctx context.Context) ([]domain.ParamsRow, error) {
	return s.flatParams(ctx, "/api/v1/experts/expert_subdivisions")
}

func (s *Session) ExpertTypes(ctx context.Context) ([]domain.ParamsRow, error) {
	return s.flatParams(ctx, "/api/v1/experts/expert_types")
}

// ExpertStaffCategories comes back through the paged metadata shape, unlike
// the rest of the expert params endpoints.
func (s *Session) ExpertStaffCategories(ctx context.Context) ([]domain.TaxonomyRow, error) {
	const path = "/api/v1/experts/expert_staff_categories"
	env, err := fetch[paged[taxonomyRow]](ctx, s.client, http.MethodGet, path, nil, nil, remoteErr(http.MethodGet, path))
	if err != nil {
		return nil, err
	}
	return taxonomyRows(env.Payload.Items), nil
}

func (s *Session) ExpertJobs(ctx context.Context) ([]domain.ParamsRow, error) {
	return s.flatParams(ctx, "/api/v1/experts/expert_jobs")
}

func (s *Session) Projects(ctx context.Context) ([]domain.ProjectRow, error) {
	const path = "/api/v1/projects/minimal"
	env, err := fetch[paged[projectRow]](ctx, s.client, http.MethodGet, path, orderedBy("created_at", "desc"), nil, remoteErr(http.MethodGet, path))
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ProjectRow, 0, len(env.Payload.Items))
	for _, row := range env.Payload.Items {
		rows = append(rows, row.toDomain())
	}
	return rows, nil
}

func (s *Session) Experts(ctx context.Context) ([]domain.ExpertRow, error) {
	const path = "/api/v1/experts/minimal"
	env, err := fetch[paged[expertRow]](ctx, s.client, http.MethodGet, path, orderedBy("created_at", "desc"), nil, remoteErr(http.MethodGet, path))
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ExpertRow, 0, len(env.Payload.Items))
	for _, row := range env.Payload.Items {
		rows = append(rows, row.toDomain())
	}
	return rows, nil
}

func (s *Session) Documents(ctx context.Context) ([]domain.DocumentRow, error) {
	const path = "/api/v1/documents/minimal"
	env, err := fetch[paged[documentRow]](ctx, s.client, http.MethodGet, path, orderedBy("created_at", "desc"), nil, remoteErr(http.MethodGet, path))
	if err != nil {
		return nil, err
	}

	rows := make([]domain.DocumentRow, 0, len(env.Payload.Items))
	for _, row := range env.Payload.Items {
		rows = append(rows, row.toDomain())
	}
	return rows, nil
}

func (s *Session) ProjectStatuses(ctx context.Context) ([]domain.ParamsRow, error) {
	return s.flatParams(ctx, "/api/v1/projects/metadata/project-statuses")
}

func (s *Session) ProjectTypes(ctx context.Context) ([]domain.ParamsRow, error) {
	return s.flatParams(ctx, "/api/v1/projects/metadata/project-types")
}

func (s *Session) DocumentAvailabilities(ctx context.Context) ([]domain.ParamsRow, error) {
	return s.flatParams(ctx, "/api/v1/documents/metadata/document-availabilities")
}

func (s *Session) DocumentSources(ctx context.Context) ([]domain.ParamsRow, error) {
	return s.flatParams(ctx, "/api/v1/documents/metadata/document-sources")
}

func (s *Session) MetadataDocumentTypes(ctx context.Context) ([]domain.TaxonomyRow, error) {
	return s.pagedTaxonomy(ctx, "/api/v1/metadata/document-types", "order_num", "asc")
}

func (s *Session) MetadataLanguages(ctx context.Context) ([]domain.ParamsRow, error) {
	return s.flatParams(ctx, "/api/v1/metadata/languages")
}

func (s *Session) MetadataFunctions(ctx context.Context) ([]domain.TaxonomyRow, error) {
	return s.pagedTaxonomy(ctx, "/api/v1/metadata/functions", "name", "asc")
}

func (s *Session) MetadataIndustries(ctx context.Context) ([]domain.TaxonomyRow, error) {
	return s.pagedTaxonomy(ctx, "/api/v1/metadata/industries", "name", "asc")
}

func (s *Session) MetadataGeographies(ctx context.Context) ([]domain.TaxonomyRow, error) {
	return s.pagedTaxonomy(ctx, "/api/v1/metadata/geographies", "name", "asc")
}

// Search forwards the caller's structured query to the remote index
// verbatim and returns the raw hits. Paging is caller-controlled through
// Skip/Take.
func (s *Session) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	const path = "/api/v1/search/search-by-query"
	body := searchRequest{Query: req.Query, Index: req.Index, Skip: req.Skip, Take: req.Take}

	env, err := fetch[searchBody](ctx, s.client, http.MethodPost, path, nil, body, remoteErr(http.MethodPost, path))
	if err != nil {
		return domain.SearchResult{}, err
	}

	hits := make([]domain.SearchHit, 0, len(env.Payload.Hits))
	for _, hit := range env.Payload.Hits {
		hits = append(hits, hit.toDomain())
	}

	return domain.SearchResult{Hits: hits, Total: env.Payload.Total}, nil
}
