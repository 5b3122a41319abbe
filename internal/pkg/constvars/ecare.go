package constvars

const (
	ResourceLogin                 = "/login"
	ResourcePatient               = "/patient"
	ResourceProvider              = "/provider"
	ResourceAvailabilitySetting   = "/provider/availability-setting"
	ResourceProviderAvailabilityF = "/provider/%s/availability-setting"
	ResourceAppointment           = "/appointment"
)

const (
	GenderMale             = "MALE"
	RoleProvider           = "PROVIDER"
	AppointmentTypeVirtual = "VIRTUAL"
)

const (
	TenantOriginFormat  = "https://%s.uat.provider.ecarehealth.com"
	TenantRefererFormat = "https://%s.uat.provider.ecarehealth.com/"

	BrowserAcceptLanguage  = "en-US,en;q=0.9"
	BrowserConnection      = "keep-alive"
	BrowserUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"
	BrowserSecFetchDest    = "empty"
	BrowserSecFetchMode    = "cors"
	BrowserSecFetchSite    = "same-site"
	BrowserSecCHUA         = `"Not)A;Brand";v="8", "Chromium";v="138", "Google Chrome";v="138"`
	BrowserSecCHUAMobile   = "?0"
	BrowserSecCHUAPlatform = `"Windows"`
)

const (
	StepLogin              = "Login"
	StepCreatePatient      = "Create Patient"
	StepCreateProvider     = "Create Provider"
	StepSetAvailability    = "Set Availability"
	StepBookAppointment    = "Book Appointment"
	StepVerifyProviders    = "Verify Providers"
	StepVerifyPatients     = "Verify Patients"
	StepVerifyAvailability = "Verify Availability"
)
