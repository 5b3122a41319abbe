package requests

type Provider struct {
	FirstName      string `json:"firstName" validate:"required,min=1,max=50"`
	LastName       string `json:"lastName" validate:"required,min=1,max=50"`
	Email          string `json:"email" validate:"required,email_format"`
	Role           string `json:"role" validate:"required,oneof=PROVIDER ADMIN"`
	Specialization string `json:"specialization,omitempty"`
}

type LicenseInformation struct {
	UUID          string `json:"uuid"`
	LicenseState  string `json:"licenseState"`
	LicenseNumber string `json:"licenseNumber"`
}

type DeaInformation struct {
	DeaState      string `json:"deaState"`
	DeaNumber     string `json:"deaNumber"`
	DeaTermDate   string `json:"deaTermDate"`
	DeaActiveDate string `json:"deaActiveDate"`
}

// CreateProvider mirrors the provider form of the web application. Nullable
// list fields are sent as null when unset.
type CreateProvider struct {
	RoleType              string               `json:"roleType" validate:"required,oneof=PROVIDER ADMIN"`
	Active                bool                 `json:"active"`
	AdminAccess           bool                 `json:"admin_access"`
	Status                bool                 `json:"status"`
	Avatar                string               `json:"avatar"`
	Role                  string               `json:"role" validate:"required,oneof=PROVIDER ADMIN"`
	FirstName             string               `json:"firstName" validate:"required,min=1,max=50"`
	LastName              string               `json:"lastName" validate:"required,min=1,max=50"`
	Gender                string               `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	Phone                 string               `json:"phone" validate:"omitempty,phone"`
	Npi                   string               `json:"npi"`
	Specialities          []string             `json:"specialities"`
	GroupNpiNumber        string               `json:"groupNpiNumber"`
	LicensedStates        []string             `json:"licensedStates"`
	LicenseNumber         string               `json:"licenseNumber"`
	AcceptedInsurances    []string             `json:"acceptedInsurances"`
	Experience            string               `json:"experience"`
	TaxonomyNumber        string               `json:"taxonomyNumber"`
	WorkLocations         []string             `json:"workLocations"`
	Email                 string               `json:"email" validate:"required,email_format"`
	OfficeFaxNumber       string               `json:"officeFaxNumber"`
	AreaFocus             string               `json:"areaFocus"`
	HospitalAffiliation   string               `json:"hospitalAffiliation"`
	AgeGroupSeen          []string             `json:"ageGroupSeen"`
	SpokenLanguages       []string             `json:"spokenLanguages"`
	ProviderEmployment    string               `json:"providerEmployment"`
	InsuranceVerification string               `json:"insurance_verification"`
	PriorAuthorization    string               `json:"prior_authorization"`
	SecondOpinion         string               `json:"secondOpinion"`
	CareService           []string             `json:"careService"`
	Bio                   string               `json:"bio"`
	Expertise             string               `json:"expertise"`
	WorkExperience        string               `json:"workExperience"`
	LicenceInformation    []LicenseInformation `json:"licenceInformation"`
	DeaInformation        []DeaInformation     `json:"deaInformation"`
}
