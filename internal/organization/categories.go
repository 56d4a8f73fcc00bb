package organization

// DefaultCategories is the sector catalog seeded on deploy. Names are what
// the product shows to owners picking a sector for their organization.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Technologie", Description: "Entreprises du secteur technologique et informatique"},
		{Name: "Santé", Description: "Établissements de santé, cliniques, hôpitaux"},
		{Name: "Éducation", Description: "Écoles, universités, centres de formation"},
		{Name: "Commerce", Description: "Commerces de détail et distribution"},
		{Name: "Services", Description: "Entreprises de services professionnels"},
		{Name: "Finance", Description: "Banques, assurances, institutions financières"},
		{Name: "Industrie", Description: "Entreprises industrielles et manufacturières"},
		{Name: "Restauration", Description: "Restaurants, hôtels, services de restauration"},
	}
}
