package permission

type PermissionResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type SyncResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}
