package know2

import "github.com/yakov-partners/know2-cli/internal/domain"

// Every catalog response arrives wrapped in the standard envelope; only the
// payload shape varies by endpoint family.
type envelope[T any] struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message,omitempty"`
	Payload    T      `json:"payload"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// paged wraps the item-list payloads (projects, experts, documents,
// metadata families).
type paged[T any] struct {
	Items    []T  `json:"items"`
	Total    int  `json:"total"`
	Page     *int `json:"page,omitempty"`
	PageSize *int `json:"page_size,omitempty"`
}

type paramsRow struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	RussianName           string   `json:"russian_name,omitempty"`
	IsActive              *bool    `json:"is_active,omitempty"`
	RequiredDocumentTypes []string `json:"required_document_types,omitempty"`
}

type taxonomyRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OrderNum    *int   `json:"order_num,omitempty"`
	RussianName string `json:"russian_name,omitempty"`
	IsEditable  *bool  `json:"is_editable,omitempty"`
	ExternalID  string `json:"external_id,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
}

type projectRow struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ChargeCode string `json:"charge_code,omitempty"`
}

type expertRow struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Patronymic string `json:"patronymic,omitempty"`
}

type documentRow struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type searchRequest struct {
	Query map[string]any `json:"query"`
	Index string         `json:"index"`
	Skip  int            `json:"skip"`
	Take  int            `json:"take"`
}

type searchHit struct {
	ID        string         `json:"_id"`
	Index     string         `json:"_index"`
	Score     float64        `json:"_score"`
	Source    map[string]any `json:"_source"`
	Type      string         `json:"_type"`
	InnerHits map[string]any `json:"inner_hits,omitempty"`
}

type searchBody struct {
	Hits  []searchHit `json:"hits"`
	Total int         `json:"total"`
}

func (r paramsRow) toDomain() domain.ParamsRow {
	return domain.ParamsRow{
		ID:                    r.ID,
		Name:                  r.Name,
		RussianName:           r.RussianName,
		IsActive:              r.IsActive,
		RequiredDocumentTypes: r.RequiredDocumentTypes,
	}
}

func (r taxonomyRow) toDomain() domain.TaxonomyRow {
	return domain.TaxonomyRow{
		ID:          r.ID,
		Name:        r.Name,
		OrderNum:    r.OrderNum,
		RussianName: r.RussianName,
		IsEditable:  r.IsEditable,
		ExternalID:  r.ExternalID,
		ParentID:    r.ParentID,
	}
}

func (r projectRow) toDomain() domain.ProjectRow {
	return domain.ProjectRow{ID: r.ID, Title: r.Title, ChargeCode: r.ChargeCode}
}

func (r expertRow) toDomain() domain.ExpertRow {
	return domain.ExpertRow{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Patronymic: r.Patronymic,
	}
}

func (r documentRow) toDomain() domain.DocumentRow {
	return domain.DocumentRow{ID: r.ID, Title: r.Title}
}

func (h searchHit) toDomain() domain.SearchHit {
	return domain.SearchHit{
		ID:        h.ID,
		Index:     h.Index,
		Score:     h.Score,
		Source:    h.Source,
		Type:      h.Type,
		InnerHits: h.InnerHits,
	}
}

func paramsRows(rows []paramsRow) []domain.ParamsRow {
	out := make([]domain.ParamsRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

func taxonomyRows(rows []taxonomyRow) []domain.TaxonomyRow {
	out := make([]domain.TaxonomyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
