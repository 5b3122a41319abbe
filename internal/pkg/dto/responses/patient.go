package responses

type Patient struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	Email       string `json:"email,omitempty"`
}

type PatientResult = APIResponse[Patient]

type PatientList = APIResponse[[]Patient]
