package transfer

type ProjectCreation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Timezone    string `json:"timezone"`
	LogoURL     string `json:"logoUrl,omitempty"`
}
