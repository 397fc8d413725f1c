package onboarding

import (
	"testing"

	"github.com/caredir/caredir/internal/reference"
)

func newTestEngine() *Engine {
	return NewEngine(reference.Default())
}

func TestToggleCategory_Select(t *testing.T) {
	e := newTestEngine()

	sel := e.ToggleCategory(Selection{}, "long_term_care")
	if !contains(sel.CategoryIDs, "long_term_care") {
		t.Error("expected category to be selected")
	}
	if len(sel.SubcategoryIDs) != 0 || len(sel.CareServiceIDs) != 0 {
		t.Error("selecting a category must not touch subcategories or services")
	}
}

func TestToggleCategory_DeselectCascades(t *testing.T) {
	e := newTestEngine()

	sel := e.ToggleCategory(Selection{}, "long_term_care")
	sel = e.ToggleCategory(sel, "mental_health")
	sel = e.ToggleSubcategory(sel, "nursing_homes", true)
	sel = e.ToggleSubcategory(sel, "substance_abuse_facilities", true)
	sel = e.ToggleCareService(sel, "rehabilitation", true)
	sel = e.ToggleCareService(sel, "detox", true)

	sel = e.ToggleCategory(sel, "long_term_care")

	if contains(sel.CategoryIDs, "long_term_care") {
		t.Error("expected category to be deselected")
	}
	if contains(sel.SubcategoryIDs, "nursing_homes") {
		t.Error("expected owned subcategory to be pruned")
	}
	if contains(sel.CareServiceIDs, "rehabilitation") {
		t.Error("expected reachable service to be pruned")
	}
	if !contains(sel.CategoryIDs, "mental_health") {
		t.Error("other category must survive")
	}
	if !contains(sel.SubcategoryIDs, "substance_abuse_facilities") {
		t.Error("other category's subcategory must survive")
	}
	if !contains(sel.CareServiceIDs, "detox") {
		t.Error("other category's service must survive")
	}
}

func TestToggleCategory_DeselectPrunesUnselectedChildren(t *testing.T) {
	e := newTestEngine()

	// Services picked without their subcategory ever being selected still
	// fall when the category goes.
	sel := e.ToggleCategory(Selection{}, "mental_health")
	sel = e.ToggleSubcategory(sel, "substance_abuse_facilities", true)
	sel = e.ToggleCareService(sel, "detox", true)
	sel = e.ToggleSubcategory(sel, "substance_abuse_facilities", false)

	sel = e.ToggleCategory(sel, "mental_health")
	if len(sel.CareServiceIDs) != 0 {
		t.Errorf("expected all services pruned, got %v", sel.CareServiceIDs)
	}
}

func TestToggleSubcategory_DeselectKeepsServices(t *testing.T) {
	e := newTestEngine()

	sel := e.ToggleCategory(Selection{}, "mental_health")
	sel = e.ToggleSubcategory(sel, "substance_abuse_facilities", true)
	sel = e.ToggleCareService(sel, "detox", true)

	sel = e.ToggleSubcategory(sel, "substance_abuse_facilities", false)

	if contains(sel.SubcategoryIDs, "substance_abuse_facilities") {
		t.Error("expected subcategory to be deselected")
	}
	if !contains(sel.CareServiceIDs, "detox") {
		t.Error("deselecting a subcategory must not prune its services")
	}
}

func TestToggleCareService_NoDuplicates(t *testing.T) {
	e := newTestEngine()

	sel := e.ToggleCareService(Selection{}, "detox", true)
	sel = e.ToggleCareService(sel, "detox", true)
	if len(sel.CareServiceIDs) != 1 {
		t.Errorf("expected 1 service, got %d", len(sel.CareServiceIDs))
	}
}

func TestAvailableCareServices_DirectServices(t *testing.T) {
	e := newTestEngine()

	sel := e.ToggleCategory(Selection{}, "long_term_care")
	services := e.AvailableCareServices(sel, "uk")
	if len(services) != 12 {
		t.Fatalf("expected 12 services, got %d", len(services))
	}
	if services[0].ID != "rehabilitation" {
		t.Errorf("expected catalog order, got %s first", services[0].ID)
	}
}

func TestAvailableCareServices_SubcategoryGated(t *testing.T) {
	e := newTestEngine()

	sel := e.ToggleCategory(Selection{}, "mental_health")
	if got := e.AvailableCareServices(sel, "uk"); len(got) != 0 {
		t.Fatalf("expected no services before subcategory selection, got %d", len(got))
	}

	sel = e.ToggleSubcategory(sel, "substance_abuse_facilities", true)
	got := e.AvailableCareServices(sel, "uk")
	if len(got) != 3 {
		t.Fatalf("expected 3 services, got %d", len(got))
	}
}

func TestAvailableCareServices_LocaleFilter(t *testing.T) {
	e := newTestEngine()

	sel := e.ToggleCategory(Selection{}, "long_term_care")
	uk := e.AvailableCareServices(sel, "uk")
	us := e.AvailableCareServices(sel, "us")
	if len(uk) != len(us) {
		t.Errorf("long_term_care direct services are market-wide: uk=%d us=%d", len(uk), len(us))
	}
}

func TestPruneForLocale_DropsOutOfMarketSelections(t *testing.T) {
	e := newTestEngine()

	sel := e.ToggleCategory(Selection{}, "long_term_care")
	sel = e.ToggleSubcategory(sel, "adult_day", true)
	sel = e.ToggleCareService(sel, "respite", true)

	pruned := e.PruneForLocale(sel, "us")

	if !contains(pruned.CategoryIDs, "long_term_care") {
		t.Error("market-wide category must survive")
	}
	if contains(pruned.SubcategoryIDs, "adult_day") {
		t.Error("uk-only subcategory must be dropped for us")
	}
	if !contains(pruned.CareServiceIDs, "respite") {
		t.Error("market-wide service must survive")
	}
}

func TestPruneForLocale_OrphanedServicesDropped(t *testing.T) {
	e := newTestEngine()

	sel := e.ToggleCategory(Selection{}, "mental_health")
	sel = e.ToggleSubcategory(sel, "substance_abuse_facilities", true)
	sel = e.ToggleCareService(sel, "detox", true)
	// Fake an out-of-market category by pruning against a code no entry
	// carries; everything must go.
	pruned := e.PruneForLocale(sel, "fr")
	if len(pruned.CategoryIDs)+len(pruned.SubcategoryIDs)+len(pruned.CareServiceIDs) != 0 {
		t.Errorf("expected empty selection, got %+v", pruned)
	}
}
