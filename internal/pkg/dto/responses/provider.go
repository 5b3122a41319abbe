package responses

type Provider struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
}

type ProviderResult = APIResponse[Provider]

type ProviderList = APIResponse[[]Provider]
