package domain

// ParamsRow is a row of the flat "params" reference families
// (availability/contract statuses, subdivisions, types, jobs, languages).
type ParamsRow struct {
	ID                    string
	Name                  string
	RussianName           string
	IsActive              *bool
	RequiredDocumentTypes []string
}

// TaxonomyRow is a hierarchical reference entry. ParentID links a row to its
// parent; an empty ParentID marks a top-level node. The catalog never nests
// deeper than two levels in practice, but rows below that are still decoded.
type TaxonomyRow struct {
	ID          string
	Name        string
	OrderNum    *int
	RussianName string
	IsEditable  *bool
	ExternalID  string
	ParentID    string
}

type ProjectRow struct {
	ID         string
	Title      string
	ChargeCode string
}

type ExpertRow struct {
	ID         string
	FirstName  string
	LastName   string
	Patronymic string
}

type DocumentRow struct {
	ID    string
	Title string
}
