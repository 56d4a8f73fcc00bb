package organization

type CreateOrganizationRequest struct {
	Name       string  `json:"name" binding:"required"`
	Subdomain  string  `json:"subdomain" binding:"required,hostname_rfc1123"`
	LogoURL    *string `json:"logo_url"`
	CategoryID *string `json:"category_id" binding:"omitempty,uuid"`
}

type UpdateOrganizationRequest struct {
	Name       string  `json:"name"`
	LogoURL    *string `json:"logo_url"`
	CategoryID *string `json:"category_id"`
	IsActive   *bool   `json:"is_active"`
}

type UpdateSettingsRequest struct {
	Country      *string `json:"country"`
	Currency     string  `json:"currency"`
	Theme        *string `json:"theme"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
}

type SettingsResponse struct {
	Country      *string `json:"country"`
	Currency     string  `json:"currency"`
	Theme        *string `json:"theme"`
	ContactEmail *string `json:"contact_email"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type OrganizationResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Subdomain    string            `json:"subdomain"`
	LogoURL      *string           `json:"logo_url,omitempty"`
	AdminID      string            `json:"admin_id"`
	CategoryID   *string           `json:"category_id,omitempty"`
	CategoryName string            `json:"category_name,omitempty"`
	IsActive     bool              `json:"is_active"`
	Settings     *SettingsResponse `json:"settings,omitempty"`
}
