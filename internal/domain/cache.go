package domain

// ReferenceCache holds the eighteen lookup tables produced by one full sync
// pass. A cache value is built fresh on every pass and handed to the caller
// only when all datasets loaded, so readers never observe a mix of passes.
type ReferenceCache struct {
	ExpertAvailabilityStatuses map[string]string
	ExpertContractStatuses     map[string]string
	ExpertSubdivisions         map[string]string
	ExpertTypes                map[string]string
	ExpertStaffCategories      map[string]string
	ExpertJobs                 map[string]string
	Projects                   map[string]string
	Experts                    map[string]string
	Documents                  map[string]string
	ProjectStatuses            map[string]string
	ProjectTypes               map[string]string
	DocumentAvailabilities     map[string]string
	DocumentSources            map[string]string
	MetadataDocumentTypes      map[string]string
	MetadataLanguages          map[string]string
	MetadataFunctions          map[string]string
	MetadataIndustries         map[string]string
	MetadataGeographies        map[string]string
}

func NewReferenceCache() *ReferenceCache {
	return &ReferenceCache{}
}

// Dataset names, used for sync reporting and error attribution.
const (
	DatasetExpertAvailabilityStatuses = "expert_availability_statuses"
	DatasetExpertContractStatuses     = "expert_contract_statuses"
	DatasetExpertSubdivisions         = "expert_subdivisions"
	DatasetExpertTypes                = "expert_types"
	DatasetExpertStaffCategories      = "expert_staff_categories"
	DatasetExpertJobs                 = "expert_jobs"
	DatasetProjects                   = "projects"
	DatasetExperts                    = "experts"
	DatasetDocuments                  = "documents"
	DatasetProjectStatuses            = "project_statuses"
	DatasetProjectTypes               = "project_types"
	DatasetDocumentAvailabilities     = "document_availabilities"
	DatasetDocumentSources            = "document_sources"
	DatasetMetadataDocumentTypes      = "metadata_document_types"
	DatasetMetadataLanguages          = "metadata_languages"
	DatasetMetadataFunctions          = "metadata_functions"
	DatasetMetadataIndustries         = "metadata_industries"
	DatasetMetadataGeographies        = "metadata_geographies"
)

// DatasetNames lists every dataset of a sync pass in catalog order.
var DatasetNames = []string{
	DatasetExpertAvailabilityStatuses,
	DatasetExpertContractStatuses,
	DatasetExpertSubdivisions,
	DatasetExpertTypes,
	DatasetExpertStaffCategories,
	DatasetExpertJobs,
	DatasetProjects,
	DatasetExperts,
	DatasetDocuments,
	DatasetProjectStatuses,
	DatasetProjectTypes,
	DatasetDocumentAvailabilities,
	DatasetDocumentSources,
	DatasetMetadataDocumentTypes,
	DatasetMetadataLanguages,
	DatasetMetadataFunctions,
	DatasetMetadataIndustries,
	DatasetMetadataGeographies,
}

// Mapping returns the lookup table stored under a dataset name, or nil when
// the name is unknown.
func (c *ReferenceCache) Mapping(name string) map[string]string {
	switch name {
	case DatasetExpertAvailabilityStatuses:
		return c.ExpertAvailabilityStatuses
	case DatasetExpertContractStatuses:
		return c.ExpertContractStatuses
	case DatasetExpertSubdivisions:
		return c.ExpertSubdivisions
	case DatasetExpertTypes:
		return c.ExpertTypes
	case DatasetExpertStaffCategories:
		return c.ExpertStaffCategories
	case DatasetExpertJobs:
		return c.ExpertJobs
	case DatasetProjects:
		return c.Projects
	case DatasetExperts:
		return c.Experts
	case DatasetDocuments:
		return c.Documents
	case DatasetProjectStatuses:
		return c.ProjectStatuses
	case DatasetProjectTypes:
		return c.ProjectTypes
	case DatasetDocumentAvailabilities:
		return c.DocumentAvailabilities
	case DatasetDocumentSources:
		return c.DocumentSources
	case DatasetMetadataDocumentTypes:
		return c.MetadataDocumentTypes
	case DatasetMetadataLanguages:
		return c.MetadataLanguages
	case DatasetMetadataFunctions:
		return c.MetadataFunctions
	case DatasetMetadataIndustries:
		return c.MetadataIndustries
	case DatasetMetadataGeographies:
		return c.MetadataGeographies
	default:
		return nil
	}
}
