package onboarding

import (
	"github.com/caredir/caredir/internal/reference"
)

// Selection holds the provider classification chosen for one location draft:
// category IDs, subcategory IDs, and care-service IDs. Order is insertion
// order; duplicates never occur.
//
// Invariants maintained by the engine:
//   - a subcategory ID appears only while its owning category is selected;
//   - a care-service ID appears only while reachable from a selected
//     category (directly) or one of its subcategories.
type Selection struct {
	CategoryIDs    []string `json:"category_ids"`
	SubcategoryIDs []string `json:"subcategory_ids"`
	CareServiceIDs []string `json:"care_service_ids"`
}

func (s Selection) hasCategory(id string) bool { return contains(s.CategoryIDs, id) }

// Normalized replaces nil ID slices with empty ones. Drafts that never touched
// a tier carry nil slices, which would persist as NULL instead of an empty
// array; every selection crossing the persistence boundary goes through here.
func (s Selection) Normalized() Selection {
	if s.CategoryIDs == nil {
		s.CategoryIDs = []string{}
	}
	if s.SubcategoryIDs == nil {
		s.SubcategoryIDs = []string{}
	}
	if s.CareServiceIDs == nil {
		s.CareServiceIDs = []string{}
	}
	return s
}

// Engine applies selection transitions against a fixed reference catalog.
// Every operation takes a Selection snapshot and returns the next snapshot;
// the engine itself carries no mutable state.
type Engine struct {
	catalog *reference.Catalog
}

func NewEngine(catalog *reference.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// ToggleCategory selects the category if it is not selected, otherwise
// deselects it and prunes every subcategory it owns and every care service
// it introduced, whether or not those subcategories were selected.
// Deselecting always wins: children are removed unconditionally.
func (e *Engine) ToggleCategory(sel Selection, id string) Selection {
	if !sel.hasCategory(id) {
		return Selection{
			CategoryIDs:    appendID(sel.CategoryIDs, id),
			SubcategoryIDs: sel.SubcategoryIDs,
			CareServiceIDs: sel.CareServiceIDs,
		}
	}

	subIDs := e.catalog.SubcategoryIDs(id)
	svcIDs := e.catalog.ReachableServiceIDs(id)
	return Selection{
		CategoryIDs:    removeID(sel.CategoryIDs, id),
		SubcategoryIDs: removeAll(sel.SubcategoryIDs, subIDs),
		CareServiceIDs: removeAll(sel.CareServiceIDs, svcIDs),
	}
}

// ToggleSubcategory adds or removes a subcategory. Callers only offer
// subcategories of currently-selected categories, so the owning category is
// assumed selected on input. Deselecting a subcategory leaves its care
// services untouched; they remain until the owning category is deselected.
func (e *Engine) ToggleSubcategory(sel Selection, id string, checked bool) Selection {
	next := sel
	if checked {
		next.SubcategoryIDs = appendID(sel.SubcategoryIDs, id)
	} else {
		next.SubcategoryIDs = removeID(sel.SubcategoryIDs, id)
	}
	return next
}

// ToggleCareService adds or removes a care service. No cascade.
func (e *Engine) ToggleCareService(sel Selection, id string, checked bool) Selection {
	next := sel
	if checked {
		next.CareServiceIDs = appendID(sel.CareServiceIDs, id)
	} else {
		next.CareServiceIDs = removeID(sel.CareServiceIDs, id)
	}
	return next
}

// AvailableCareServices derives the candidate service list for the current
// selection and reference code: the union of each selected category's direct
// services and each selected subcategory's own services, locale-filtered and
// de-duplicated, stable by first encounter in catalog order.
func (e *Engine) AvailableCareServices(sel Selection, code string) []reference.CareService {
	var out []reference.CareService
	seen := make(map[string]bool)

	add := func(svc reference.CareService) {
		if seen[svc.ID] || !svc.AppliesTo(code) {
			return
		}
		seen[svc.ID] = true
		out = append(out, svc)
	}

	for _, catID := range sel.CategoryIDs {
		cat := e.catalog.Category(catID)
		if cat == nil {
			continue
		}
		for _, svc := range cat.CareServices {
			add(svc)
		}
		for _, sub := range cat.Subcategories {
			if !contains(sel.SubcategoryIDs, sub.ID) {
				continue
			}
			for _, svc := range sub.CareServices {
				add(svc)
			}
		}
	}
	return out
}

// PruneForLocale drops every selected ID whose reference node is not valid
// for the given code. Called when a location's country of operation changes
// so the selection never retains out-of-locale entries.
func (e *Engine) PruneForLocale(sel Selection, code string) Selection {
	next := Selection{}
	for _, id := range sel.CategoryIDs {
		if cat := e.catalog.Category(id); cat != nil && cat.AppliesTo(code) {
			next.CategoryIDs = append(next.CategoryIDs, id)
		}
	}
	for _, id := range sel.SubcategoryIDs {
		sub, owner := e.catalog.Subcategory(id)
		if sub != nil && sub.AppliesTo(code) && owner != nil && contains(next.CategoryIDs, owner.ID) {
			next.SubcategoryIDs = append(next.SubcategoryIDs, id)
		}
	}
	valid := make(map[string]bool)
	for _, svc := range e.AvailableCareServices(Selection{
		CategoryIDs:    next.CategoryIDs,
		SubcategoryIDs: next.SubcategoryIDs,
	}, code) {
		valid[svc.ID] = true
	}
	for _, id := range sel.CareServiceIDs {
		if valid[id] {
			next.CareServiceIDs = append(next.CareServiceIDs, id)
		}
	}
	return next
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func appendID(ids []string, id string) []string {
	if contains(ids, id) {
		return ids
	}
	out := make([]string, len(ids), len(ids)+1)
	copy(out, ids)
	return append(out, id)
}

func removeID(ids []string, id string) []string {
	var out []string
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func removeAll(ids []string, drop []string) []string {
	dropSet := make(map[string]bool, len(drop))
	for _, id := range drop {
		dropSet[id] = true
	}
	var out []string
	for _, v := range ids {
		if !dropSet[v] {
			out = append(out, v)
		}
	}
	return out
}
