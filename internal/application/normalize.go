package application

import (
	"github.com/yakov-partners/know2-cli/internal/domain"
)

// Normalizers flatten typed catalog payloads into the string lookup tables
// held by the reference cache. They are pure and assume the payload already
// decoded successfully; a missing required field is a contract violation on
// the remote side, not something to recover from here.

// NormalizeTopLevelTaxonomy maps id -> name for top-level rows only.
// Children are dropped. Used by the one-level families (industries,
// functions).
func NormalizeTopLevelTaxonomy(rows []domain.TaxonomyRow) map[string]string {
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.ParentID != "" {
			continue
		}
		out[row.ID] = row.Name
	}
	return out
}

// NormalizeSecondLevelTaxonomy maps id -> name for exactly the second-level
// children of top-level nodes. Top-level rows themselves and anything three
// levels deep or more are excluded, so a pure top-level geography never
// appears as a key. Two passes: collect top-level ids, then keep rows whose
// parent is in that set.
func NormalizeSecondLevelTaxonomy(rows []domain.TaxonomyRow) map[string]string {
	topLevel := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if row.ParentID == "" {
			topLevel[row.ID] = struct{}{}
		}
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		if _, ok := topLevel[row.ParentID]; ok {
			out[row.ID] = row.Name
		}
	}
	return out
}

// NormalizeParams maps russian_name -> id when the first row carries a
// non-empty russian_name, otherwise name -> id. The field choice is made by
// inspecting only row zero, so a payload with mixed presence mis-keys later
// rows. That matches the upstream behavior and stays until product says
// otherwise.
func NormalizeParams(rows []domain.ParamsRow) map[string]string {
	out := make(map[string]string, len(rows))
	if len(rows) == 0 {
		return out
	}

	useRussian := rows[0].RussianName != ""
	for _, row := range rows {
		if useRussian {
			out[row.RussianName] = row.ID
		} else {
			out[row.Name] = row.ID
		}
	}
	return out
}

// NormalizeMetadata maps russian_name -> id unconditionally. Used by the
// non-taxonomy metadata families (document types, staff categories).
func NormalizeMetadata(rows []domain.TaxonomyRow) map[string]string {
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.RussianName] = row.ID
	}
	return out
}

// NormalizeProjects and NormalizeDocuments map id -> title.
func NormalizeProjects(rows []domain.ProjectRow) map[string]string {
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Title
	}
	return out
}

func NormalizeDocuments(rows []domain.DocumentRow) map[string]string {
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Title
	}
	return out
}

// NormalizeExperts maps id -> "first last patronymic". The patronymic is
// concatenated even when empty, leaving a trailing space; downstream
// consumers key on this exact form.
func NormalizeExperts(rows []domain.ExpertRow) map[string]string {
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ID] = row.FirstName + " " + row.LastName + " " + row.Patronymic
	}
	return out
}
