package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yakov-partners/know2-cli/internal/domain"
	"github.com/yakov-partners/know2-cli/internal/ports"
)

// SyncService runs one full synchronization pass: every dataset of the
// catalog is fetched and normalized concurrently, each unit writing exactly
// one slot of a fresh cache. The pass is binary: the cache is returned only
// when all eighteen datasets loaded, otherwise the caller gets a SyncError
// and must treat reference data as unusable.
type SyncService struct {
	catalog ports.Catalog
	log     zerolog.Logger
}

func NewSyncService(catalog ports.Catalog, log zerolog.Logger) *SyncService {
	return &SyncService{
		catalog: catalog,
		log:     log.With().Str("component", "sync").Logger(),
	}
}

// dataset binds a name to a loader producing the finished lookup table and
// a slot assignment on the cache being built. Each loader owns its slot, so
// the fan-out needs no locking; the errgroup join is the only barrier.
type dataset struct {
	name string
	load func(ctx context.Context, cache *domain.ReferenceCache) error
}

func (s *SyncService) Sync(ctx context.Context) (*domain.ReferenceCache, error) {
	cache := domain.NewReferenceCache()

	g, ctx := errgroup.WithContext(ctx)
	for _, d := range s.datasets() {
		g.Go(func() error {
			if err := d.load(ctx, cache); err != nil {
				// Context errors from cancelled siblings are not the root
				// cause; keep only the dataset that actually failed.
				if errors.Is(err, context.Canceled) && ctx.Err() != nil {
					return err
				}
				s.log.Error().Str("dataset", d.name).Err(err).Msg("dataset load failed")
				return &domain.SyncError{Dataset: d.name, Err: err}
			}
			s.log.Debug().Str("dataset", d.name).Msg("dataset loaded")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var syncErr *domain.SyncError
		if errors.As(err, &syncErr) {
			return nil, syncErr
		}
		return nil, fmt.Errorf("sync reference data: %w", err)
	}

	s.log.Info().Int("datasets", len(domain.DatasetNames)).Msg("reference data synchronized")
	return cache, nil
}

func (s *SyncService) datasets() []dataset {
	return []dataset{
		{domain.DatasetExpertAvailabilityStatuses, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.ExpertAvailabilityStatuses(ctx)
			if err != nil {
				return err
			}
			c.ExpertAvailabilityStatuses = NormalizeParams(rows)
			return nil
		}},
		{domain.DatasetExpertContractStatuses, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.ExpertContractStatuses(ctx)
			if err != nil {
				return err
			}
			c.ExpertContractStatuses = NormalizeParams(rows)
			return nil
		}},
		{domain.DatasetExpertSubdivisions, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.ExpertSubdivisions(ctx)
			if err != nil {
				return err
			}
			c.ExpertSubdivisions = NormalizeParams(rows)
			return nil
		}},
		{domain.DatasetExpertTypes, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.ExpertTypes(ctx)
			if err != nil {
				return err
			}
			c.ExpertTypes = NormalizeParams(rows)
			return nil
		}},
		{domain.DatasetExpertStaffCategories, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.ExpertStaffCategories(ctx)
			if err != nil {
				return err
			}
			c.ExpertStaffCategories = NormalizeMetadata(rows)
			return nil
		}},
		{domain.DatasetExpertJobs, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.ExpertJobs(ctx)
			if err != nil {
				return err
			}
			c.ExpertJobs = NormalizeParams(rows)
			return nil
		}},
		{domain.DatasetProjects, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.Projects(ctx)
			if err != nil {
				return err
			}
			c.Projects = NormalizeProjects(rows)
			return nil
		}},
		{domain.DatasetExperts, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.Experts(ctx)
			if err != nil {
				return err
			}
			c.Experts = NormalizeExperts(rows)
			return nil
		}},
		{domain.DatasetDocuments, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.Documents(ctx)
			if err != nil {
				return err
			}
			c.Documents = NormalizeDocuments(rows)
			return nil
		}},
		{domain.DatasetProjectStatuses, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.ProjectStatuses(ctx)
			if err != nil {
				return err
			}
			c.ProjectStatuses = NormalizeParams(rows)
			return nil
		}},
		{domain.DatasetProjectTypes, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.ProjectTypes(ctx)
			if err != nil {
				return err
			}
			c.ProjectTypes = NormalizeParams(rows)
			return nil
		}},
		{domain.DatasetDocumentAvailabilities, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.DocumentAvailabilities(ctx)
			if err != nil {
				return err
			}
			c.DocumentAvailabilities = NormalizeParams(rows)
			return nil
		}},
		{domain.DatasetDocumentSources, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.DocumentSources(ctx)
			if err != nil {
				return err
			}
			c.DocumentSources = NormalizeParams(rows)
			return nil
		}},
		{domain.DatasetMetadataDocumentTypes, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.MetadataDocumentTypes(ctx)
			if err != nil {
				return err
			}
			c.MetadataDocumentTypes = NormalizeMetadata(rows)
			return nil
		}},
		{domain.DatasetMetadataLanguages, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.MetadataLanguages(ctx)
			if err != nil {
				return err
			}
			c.MetadataLanguages = NormalizeParams(rows)
			return nil
		}},
		{domain.DatasetMetadataFunctions, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.MetadataFunctions(ctx)
			if err != nil {
				return err
			}
			c.MetadataFunctions = NormalizeTopLevelTaxonomy(rows)
			return nil
		}},
		{domain.DatasetMetadataIndustries, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.MetadataIndustries(ctx)
			if err != nil {
				return err
			}
			c.MetadataIndustries = NormalizeTopLevelTaxonomy(rows)
			return nil
		}},
		{domain.DatasetMetadataGeographies, func(ctx context.Context, c *domain.ReferenceCache) error {
			rows, err := s.catalog.MetadataGeographies(ctx)
			if err != nil {
				return err
			}
			c.MetadataGeographies = NormalizeSecondLevelTaxonomy(rows)
			return nil
		}},
	}
}
