// Package reference holds the read-only provider classification catalog:
// categories, their subcategories, and the care services each may offer.
// Every node carries the set of reference codes (see the locale package) it
// is valid for. The catalog is fixed for the lifetime of the process and is
// never mutated by callers.
package reference

// CareService is a single offered care service.
type CareService struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Locale      []string `json:"locale"`
}

// Subcategory is a provider sub-type within a category. A subcategory may
// own its own care services.
type Subcategory struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Locale       []string      `json:"locale"`
	CareServices []CareService `json:"care_services,omitempty"`
}

// Category is a top-level provider type. It may carry care services directly
// and owns zero or more subcategories.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Locale        []string      `json:"locale"`
	CareServices  []CareService `json:"care_services,omitempty"`
	Subcategories []Subcategory `json:"subcategories"`
}

// AppliesTo reports whether the node is valid for the given reference code.
func (c Category) AppliesTo(code string) bool    { return containsCode(c.Locale, code) }
func (s Subcategory) AppliesTo(code string) bool { return containsCode(s.Locale, code) }
func (cs CareService) AppliesTo(code string) bool {
	return containsCode(cs.Locale, code)
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// Catalog is an ordered, indexed set of categories.
type Catalog struct {
	categories []Category
	byID       map[string]*Category
}

// NewCatalog builds a catalog from an ordered category list. Catalog order is
// preserved by all listing operations.
func NewCatalog(categories []Category) *Catalog {
	c := &Catalog{
		categories: categories,
		byID:       make(map[string]*Category, len(categories)),
	}
	for i := range c.categories {
		c.byID[c.categories[i].ID] = &c.categories[i]
	}
	return c
}

// Categories returns every category in catalog order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category returns the category with the given ID, or nil.
func (c *Catalog) Category(id string) *Category {
	return c.byID[id]
}

// FilteredCategories returns the categories valid for the reference code,
// preserving catalog order.
func (c *Catalog) FilteredCategories(code string) []Category {
	var out []Category
	for _, cat := range c.categories {
		if cat.AppliesTo(code) {
			out = append(out, cat)
		}
	}
	return out
}

// Subcategory returns the subcategory with the given ID along with its owning
// category, or nil if no category owns it.
func (c *Catalog) Subcategory(id string) (*Subcategory, *Category) {
	for i := range c.categories {
		cat := &c.categories[i]
		for j := range cat.Subcategories {
			if cat.Subcategories[j].ID == id {
				return &cat.Subcategories[j], cat
			}
		}
	}
	return nil, nil
}

// CareService returns the care service with the given ID, searching category
// direct services first, then subcategory services, in catalog order.
func (c *Catalog) CareService(id string) *CareService {
	for i := range c.categories {
		cat := &c.categories[i]
		for j := range cat.CareServices {
			if cat.CareServices[j].ID == id {
				return &cat.CareServices[j]
			}
		}
		for j := range cat.Subcategories {
			sub := &cat.Subcategories[j]
			for k := range sub.CareServices {
				if sub.CareServices[k].ID == id {
					return &sub.CareServices[k]
				}
			}
		}
	}
	return nil
}

// SubcategoryIDs returns the IDs of every subcategory owned by the category.
func (c *Catalog) SubcategoryIDs(categoryID string) []string {
	cat := c.byID[categoryID]
	if cat == nil {
		return nil
	}
	ids := make([]string, 0, len(cat.Subcategories))
	for _, sub := range cat.Subcategories {
		ids = append(ids, sub.ID)
	}
	return ids
}

// ReachableServiceIDs returns every care-service ID introduced by the
// category: its direct services plus the services of all its subcategories,
// whether or not those subcategories are selected anywhere.
func (c *Catalog) ReachableServiceIDs(categoryID string) []string {
	cat := c.byID[categoryID]
	if cat == nil {
		return nil
	}
	var ids []string
	for _, svc := range cat.CareServices {
		ids = append(ids, svc.ID)
	}
	for _, sub := range cat.Subcategories {
		for _, svc := range sub.CareServices {
			ids = append(ids, svc.ID)
		}
	}
	return ids
}
