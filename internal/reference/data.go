package reference

// Default returns the built-in provider classification catalog. In a later
// release this will be loaded from the reference-data service; the shape is
// already what that service returns.
func Default() *Catalog {
	return NewCatalog(defaultCategories)
}

var allMarkets = []string{"us", "uk", "ni", "ie"}

var defaultCategories = []Category{
	{
		ID:     "long_term_care",
		Name:   "Long-Term Care and Social Care",
		Locale: allMarkets,
		CareServices: []CareService{
			{ID: "rehabilitation", Name: "Rehabilitation Services", Locale: allMarkets},
			{ID: "homeHealth", Name: "Home Health Care", Locale: allMarkets},
			{ID: "palliative", Name: "Palliative Care", Locale: allMarkets},
			{ID: "physicalTherapy", Name: "Physical Therapy", Locale: allMarkets},
			{ID: "endOfLife", Name: "End-of-Life Care", Locale: allMarkets},
			{ID: "alzheimers", Name: "Alzheimer's Care", Locale: allMarkets},
			{ID: "memory", Name: "Memory Care", Locale: allMarkets},
			{ID: "assistedLiving", Name: "Assisted Living Support", Locale: allMarkets},
			{ID: "skilledNursing", Name: "Skilled Nursing Care", Locale: allMarkets},
			{ID: "occupational", Name: "Occupational Therapy", Locale: allMarkets},
			{ID: "dementia", Name: "Dementia Care", Locale: allMarkets},
			{ID: "respite", Name: "Respite Care", Locale: allMarkets},
		},
		Subcategories: []Subcategory{
			{ID: "nursing_homes", Name: "Nursing Homes / Care Homes", Locale: allMarkets},
			{ID: "assisted_living", Name: "Assisted Living Facilities", Locale: allMarkets},
			{ID: "home_care", Name: "Home Care Agencies", Locale: allMarkets},
			{ID: "hospice", Name: "Hospice Providers", Locale: allMarkets},
			{ID: "adult_day", Name: "Adult Day Care Centres", Locale: []string{"uk", "ni", "ie"}},
		},
	},
	{
		ID:     "mental_health",
		Name:   "Mental Health and Behavioral Health Services",
		Locale: allMarkets,
		Subcategories: []Subcategory{
			{
				ID:     "substance_abuse_facilities",
				Name:   "Substance Abuse Treatment Facilities",
				Locale: allMarkets,
				CareServices: []CareService{
					{ID: "detox", Name: "Detoxification Services", Locale: allMarkets},
					{ID: "outpatient_rehab", Name: "Outpatient Rehabilitation", Locale: allMarkets},
					{ID: "inpatient_rehab", Name: "Inpatient Rehabilitation", Locale: allMarkets},
				},
			},
			{ID: "psychiatric_hospitals", Name: "Psychiatric Hospitals", Locale: allMarkets},
			{ID: "counselling_centres", Name: "Counselling Centres", Locale: []string{"uk", "ni", "ie"}},
			{ID: "counseling_centers", Name: "Counseling Centers", Locale: []string{"us"}},
		},
	},
}
