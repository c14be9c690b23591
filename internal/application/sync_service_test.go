package application

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakov-partners/know2-cli/internal/domain"
)

type fakeCatalog struct {
	params    []domain.ParamsRow
	taxonomy  []domain.TaxonomyRow
	projects  []domain.ProjectRow
	experts   []domain.ExpertRow
	documents []domain.DocumentRow

	// failures maps a dataset name to the error its fetch returns.
	failures map[string]error
}

func (f *fakeCatalog) paramsFor(ctx context.Context, dataset string) ([]domain.ParamsRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.failures[dataset]; err != nil {
		return nil, err
	}
	return f.params, nil
}

func (f *fakeCatalog) taxonomyFor(ctx context.Context, dataset string) ([]domain.TaxonomyRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.failures[dataset]; err != nil {
		return nil, err
	}
	return f.taxonomy, nil
}

func (f *fakeCatalog) ExpertAvailabilityStatuses(ctx context.Context) ([]domain.ParamsRow, error) {
	return f.paramsFor(ctx, domain.DatasetExpertAvailabilityStatuses)
}

func (f *fakeCatalog) ExpertContractStatuses(ctx context.Context) ([]domain.ParamsRow, error) {
	return f.paramsFor(ctx, domain.DatasetExpertContractStatuses)
}

func (f *fakeCatalog) ExpertSubdivisions(ctx context.Context) ([]domain.ParamsRow, error) {
	return f.paramsFor(ctx, domain.DatasetExpertSubdivisions)
}

func (f *fakeCatalog) ExpertTypes(ctx context.Context) ([]domain.ParamsRow, error) {
	return f.paramsFor(ctx, domain.DatasetExpertTypes)
}

func (f *fakeCatalog) ExpertStaffCategories(ctx context.Context) ([]domain.TaxonomyRow, error) {
	return f.taxonomyFor(ctx, domain.DatasetExpertStaffCategories)
}

func (f *fakeCatalog) ExpertJobs(ctx context.Context) ([]domain.ParamsRow, error) {
	return f.paramsFor(ctx, domain.DatasetExpertJobs)
}

func (f *fakeCatalog) Projects(ctx context.Context) ([]domain.ProjectRow, error) {
	if err := f.failures[domain.DatasetProjects]; err != nil {
		return nil, err
	}
	return f.projects, nil
}

func (f *fakeCatalog) Experts(ctx context.Context) ([]domain.ExpertRow, error) {
	if err := f.failures[domain.DatasetExperts]; err != nil {
		return nil, err
	}
	return f.experts, nil
}

func (f *fakeCatalog) Documents(ctx context.Context) ([]domain.DocumentRow, error) {
	if err := f.failures[domain.DatasetDocuments]; err != nil {
		return nil, err
	}
	return f.documents, nil
}

func (f *fakeCatalog) ProjectStatuses(ctx context.Context) ([]domain.ParamsRow, error) {
	return f.paramsFor(ctx, domain.DatasetProjectStatuses)
}

func (f *fakeCatalog) ProjectTypes(ctx context.Context) ([]domain.ParamsRow, error) {
	return f.paramsFor(ctx, domain.DatasetProjectTypes)
}

func (f *fakeCatalog) DocumentAvailabilities(ctx context.Context) ([]domain.ParamsRow, error) {
	return f.paramsFor(ctx, domain.DatasetDocumentAvailabilities)
}

func (f *fakeCatalog) DocumentSources(ctx context.Context) ([]domain.ParamsRow, error) {
	return f.paramsFor(ctx, domain.DatasetDocumentSources)
}

func (f *fakeCatalog) MetadataDocumentTypes(ctx context.Context) ([]domain.TaxonomyRow, error) {
	return f.taxonomyFor(ctx, domain.DatasetMetadataDocumentTypes)
}

func (f *fakeCatalog) MetadataLanguages(ctx context.Context) ([]domain.ParamsRow, error) {
	return f.paramsFor(ctx, domain.DatasetMetadataLanguages)
}

func (f *fakeCatalog) MetadataFunctions(ctx context.Context) ([]domain.TaxonomyRow, error) {
	return f.taxonomyFor(ctx, domain.DatasetMetadataFunctions)
}

func (f *fakeCatalog) MetadataIndustries(ctx context.Context) ([]domain.TaxonomyRow, error) {
	return f.taxonomyFor(ctx, domain.DatasetMetadataIndustries)
}

func (f *fakeCatalog) MetadataGeographies(ctx context.Context) ([]domain.TaxonomyRow, error) {
	return f.taxonomyFor(ctx, domain.DatasetMetadataGeographies)
}

func (f *fakeCatalog) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	return domain.SearchResult{}, nil
}

func populatedCatalog() *fakeCatalog {
	return &fakeCatalog{
		params: []domain.ParamsRow{
			{ID: "1", Name: "active", RussianName: "Активен"},
		},
		taxonomy: []domain.TaxonomyRow{
			{ID: "top", Name: "Top", RussianName: "Верхний"},
			{ID: "child", Name: "Child", RussianName: "Дочерний", ParentID: "top"},
		},
		projects:  []domain.ProjectRow{{ID: "p-1", Title: "Market entry"}},
		experts:   []domain.ExpertRow{{ID: "e-1", FirstName: "Ivan", LastName: "Petrov"}},
		documents: []domain.DocumentRow{{ID: "d-1", Title: "Final report"}},
		failures:  map[string]error{},
	}
}

func TestSyncPopulatesAllMappings(t *testing.T) {
	t.Parallel()

	service := NewSyncService(populatedCatalog(), zerolog.Nop())

	cache, err := service.Sync(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cache)

	for _, name := range domain.DatasetNames {
		assert.NotEmpty(t, cache.Mapping(name), "dataset %s", name)
	}

	assert.Equal(t, map[string]string{"Активен": "1"}, cache.ExpertAvailabilityStatuses)
	assert.Equal(t, map[string]string{"e-1": "Ivan Petrov "}, cache.Experts)
	assert.Equal(t, map[string]string{"top": "Top"}, cache.MetadataIndustries)
	assert.Equal(t, map[string]string{"child": "Child"}, cache.MetadataGeographies)
	assert.Equal(t, map[string]string{"Верхний": "top", "Дочерний": "child"}, cache.MetadataDocumentTypes)
}

func TestSyncFailsWhenOneDatasetFails(t *testing.T) {
	t.Parallel()

	catalog := populatedCatalog()
	catalog.failures[domain.DatasetDocuments] = &domain.RemoteError{
		Method:     "GET",
		Path:       "/api/v1/documents/minimal",
		StatusCode: 502,
		Body:       "bad gateway",
	}

	service := NewSyncService(catalog, zerolog.Nop())

	cache, err := service.Sync(context.Background())
	require.Error(t, err)
	assert.Nil(t, cache)

	var syncErr *domain.SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, domain.DatasetDocuments, syncErr.Dataset)

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 502, remoteErr.StatusCode)
}

func TestSyncSecondPassWithEmptyPayloadsYieldsEmptyMappings(t *testing.T) {
	t.Parallel()

	catalog := populatedCatalog()
	service := NewSyncService(catalog, zerolog.Nop())

	first, err := service.Sync(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, first.Projects)

	catalog.params = nil
	catalog.taxonomy = nil
	catalog.projects = nil
	catalog.experts = nil
	catalog.documents = nil

	second, err := service.Sync(context.Background())
	require.NoError(t, err)

	for _, name := range domain.DatasetNames {
		assert.Empty(t, second.Mapping(name), "dataset %s", name)
	}

	// The first cache is untouched: each pass builds a fresh value.
	assert.Equal(t, map[string]string{"p-1": "Market entry"}, first.Projects)
}

func TestSyncPropagatesCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := NewSyncService(populatedCatalog(), zerolog.Nop())

	cache, err := service.Sync(ctx)
	require.Error(t, err)
	assert.Nil(t, cache)
}
