package ports

import (
	"context"

	"github.com/yakov-partners/know2-cli/internal/domain"
)

// Catalog is the fixed set of reference-data fetch operations exposed by an
// authenticated Know2 session, plus the search pass-through. Every call
// borrows the session; none takes ownership of it.
type Catalog interface {
	ExpertAvailabilityStatuses(ctx context.Context) ([]domain.ParamsRow, error)
	ExpertContractStatuses(ctx context.Context) ([]domain.ParamsRow, error)
	ExpertSubdivisions(ctx context.Context) ([]domain.ParamsRow, error)
	ExpertTypes(ctx context.Context) ([]domain.ParamsRow, error)
	ExpertStaffCategories(ctx context.Context) ([]domain.TaxonomyRow, error)
	ExpertJobs(ctx context.Context) ([]domain.ParamsRow, error)
	Projects(ctx context.Context) ([]domain.ProjectRow, error)
	Experts(ctx context.Context) ([]domain.ExpertRow, error)
	Documents(ctx context.Context) ([]domain.DocumentRow, error)
	ProjectStatuses(ctx context.Context) ([]domain.ParamsRow, error)
	ProjectTypes(ctx context.Context) ([]domain.ParamsRow, error)
	DocumentAvailabilities(ctx context.Context) ([]domain.ParamsRow, error)
	DocumentSources(ctx context.Context) ([]domain.ParamsRow, error)
	MetadataDocumentTypes(ctx context.Context) ([]domain.TaxonomyRow, error)
	MetadataLanguages(ctx context.Context) ([]domain.ParamsRow, error)
	MetadataFunctions(ctx context.Context) ([]domain.TaxonomyRow, error)
	MetadataIndustries(ctx context.Context) ([]domain.TaxonomyRow, error)
	MetadataGeographies(ctx context.Context) ([]domain.TaxonomyRow, error)

	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error)
}
