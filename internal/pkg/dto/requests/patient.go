package requests

type Patient struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=50"`
	LastName  string `json:"lastName" validate:"required,min=1,max=50"`
	Gender    string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	BirthDate string `json:"birthDate" validate:"required,date_any"`
	Email     string `json:"email,omitempty" validate:"omitempty,email_format"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,phone"`
}

type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zipcode string `json:"zipcode"`
}

type EmergencyContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile" validate:"omitempty,phone"`
}

type PatientInsurance struct {
	Active                 bool           `json:"active"`
	InsuranceID            string         `json:"insuranceId"`
	CopayType              string         `json:"copayType"`
	CoInsurance            string         `json:"coInsurance"`
	ClaimNumber            string         `json:"claimNumber"`
	Note                   string         `json:"note"`
	DeductibleAmount       string         `json:"deductibleAmount"`
	EmployerName           string         `json:"employerName"`
	EmployerAddress        Address        `json:"employerAddress"`
	SubscriberFirstName    string         `json:"subscriberFirstName"`
	SubscriberLastName     string         `json:"subscriberLastName"`
	SubscriberMiddleName   string         `json:"subscriberMiddleName"`
	SubscriberSsn          string         `json:"subscriberSsn"`
	SubscriberMobileNumber string         `json:"subscriberMobileNumber"`
	SubscriberAddress      Address        `json:"subscriberAddress"`
	GroupID                string         `json:"groupId"`
	MemberID               string         `json:"memberId"`
	GroupName              string         `json:"groupName"`
	FrontPhoto             string         `json:"frontPhoto"`
	BackPhoto              string         `json:"backPhoto"`
	InsuredFirstName       string         `json:"insuredFirstName"`
	InsuredLastName        string         `json:"insuredLastName"`
	Address                Address        `json:"address"`
	InsuredBirthDate       string         `json:"insuredBirthDate" validate:"omitempty,date_any"`
	CoPay                  string         `json:"coPay"`
	InsurancePayer         map[string]any `json:"insurancePayer"`
}

type PatientConsentEntity struct {
	SignedDate string `json:"signedDate"`
}

// CreatePatient is the full registration payload accepted by the patient
// endpoint.
type CreatePatient struct {
	PhoneNotAvailable      bool                   `json:"phoneNotAvailable"`
	EmailNotAvailable      bool                   `json:"emailNotAvailable"`
	RegistrationDate       string                 `json:"registrationDate" validate:"omitempty,date_any"`
	FirstName              string                 `json:"firstName" validate:"required,min=1,max=50"`
	MiddleName             string                 `json:"middleName"`
	LastName               string                 `json:"lastName" validate:"required,min=1,max=50"`
	Timezone               string                 `json:"timezone"`
	BirthDate              string                 `json:"birthDate" validate:"required,date_any"`
	Gender                 string                 `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Ssn                    string                 `json:"ssn"`
	Mrn                    string                 `json:"mrn"`
	Languages              []string               `json:"languages"`
	Avatar                 string                 `json:"avatar"`
	MobileNumber           string                 `json:"mobileNumber" validate:"omitempty,phone"`
	FaxNumber              string                 `json:"faxNumber"`
	HomePhone              string                 `json:"homePhone"`
	Address                Address                `json:"address"`
	EmergencyContacts      []EmergencyContact     `json:"emergencyContacts" validate:"dive"`
	PatientInsurances      []PatientInsurance     `json:"patientInsurances" validate:"dive"`
	EmailConsent           bool                   `json:"emailConsent"`
	MessageConsent         bool                   `json:"messageConsent"`
	CallConsent            bool                   `json:"callConsent"`
	PatientConsentEntities []PatientConsentEntity `json:"patientConsentEntities"`
}
