package workflow

import (
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/utils"
	"time"
)

const (
	PatientFirstName  = "Samuel"
	PatientMiddleName = "A."
	PatientLastName   = "Peterson"
	PatientBirthDate  = "1994-08-16"

	ProviderFirstName   = "Steven"
	ProviderLastName    = "Miller"
	providerEmailLocal  = "saurabh.kale+steven"
	providerEmailDomain = "@medarch.com"

	appointmentHour     = 17
	appointmentDuration = 30 * time.Minute
	chiefComplaint      = "appointment test"
)

func patientAddress() requests.Address {
	return requests.Address{
		Line1:   "123 Main St",
		Line2:   "Apt 4B",
		City:    "Pune",
		State:   "MH",
		Country: "India",
		Zipcode: "411001",
	}
}

func newPatientFixture(now time.Time) *requests.CreatePatient {
	return &requests.CreatePatient{
		RegistrationDate: now.UTC().Format("2006-01-02"),
		FirstName:        PatientFirstName,
		MiddleName:       PatientMiddleName,
		LastName:         PatientLastName,
		Timezone:         "IST",
		BirthDate:        PatientBirthDate,
		Gender:           constvars.GenderMale,
		Ssn:              "123-45-6789",
		Mrn:              "MRN123456",
		Languages:        []string{"English"},
		Avatar:           "https://randomuser.me/api/portraits/men/1.jpg",
		MobileNumber:     "7058659504",
		FaxNumber:        "020-12345678",
		HomePhone:        "020-87654321",
		Address:          patientAddress(),
		EmergencyContacts: []requests.EmergencyContact{
			{FirstName: "Jane", LastName: PatientLastName, Mobile: "9876543210"},
		},
		PatientInsurances: []requests.PatientInsurance{
			{
				Active:           true,
				InsuranceID:      "INS123456",
				CopayType:        "FIXED",
				CoInsurance:      "10%",
				ClaimNumber:      "CLM987654",
				Note:             "Primary insurance",
				DeductibleAmount: "5000",
				EmployerName:     "TechCorp",
				EmployerAddress: requests.Address{
					Line1:   "456 Tech Park",
					City:    "Pune",
					State:   "MH",
					Country: "India",
					Zipcode: "411045",
				},
				SubscriberFirstName:    PatientFirstName,
				SubscriberLastName:     PatientLastName,
				SubscriberMiddleName:   PatientMiddleName,
				SubscriberSsn:          "123-45-6789",
				SubscriberMobileNumber: "7058659504",
				SubscriberAddress:      patientAddress(),
				GroupID:                "GRP123",
				MemberID:               "MEM456",
				GroupName:              "Tech Employees",
				FrontPhoto:             "https://randomuser.me/api/portraits/men/1.jpg",
				BackPhoto:              "https://randomuser.me/api/portraits/men/2.jpg",
				InsuredFirstName:       PatientFirstName,
				InsuredLastName:        PatientLastName,
				Address:                patientAddress(),
				InsuredBirthDate:       PatientBirthDate,
				CoPay:                  "200",
				InsurancePayer:         map[string]any{"name": "HealthSecure"},
			},
		},
		EmailConsent:   true,
		MessageConsent: true,
		CallConsent:    true,
		PatientConsentEntities: []requests.PatientConsentEntity{
			{SignedDate: now.UTC().Format(time.RFC3339Nano)},
		},
	}
}

// ProviderEmail appends tag to the plus-address so repeated runs do not
// collide on the unique email.
func ProviderEmail(tag string) string {
	return providerEmailLocal + tag + providerEmailDomain
}

func newProviderFixture(tag string) *requests.CreateProvider {
	return &requests.CreateProvider{
		RoleType:           constvars.RoleProvider,
		Active:             false,
		AdminAccess:        true,
		Status:             false,
		Role:               constvars.RoleProvider,
		FirstName:          ProviderFirstName,
		LastName:           ProviderLastName,
		Gender:             constvars.GenderMale,
		Email:              ProviderEmail(tag),
		LicenceInformation: []requests.LicenseInformation{{}},
		DeaInformation:     []requests.DeaInformation{{}},
	}
}

func newAvailabilityFixture(providerID, tenantID string) *requests.SetAvailability {
	return &requests.SetAvailability{
		SetToWeekdays: false,
		ProviderID:    providerID,
		BookingWindow: "3",
		Timezone:      "EST",
		Settings: []requests.AvailabilitySetting{
			{Type: "NEW", SlotTime: "30", MinNoticeUnit: "8_HOUR"},
		},
		BlockDays: []string{},
		DaySlots: []requests.DaySlot{
			{Day: "MONDAY", StartTime: "12:00:00", EndTime: "13:00:00", AvailabilityMode: constvars.AppointmentTypeVirtual},
		},
		BookBefore: "undefined undefined",
		XTenantID:  tenantID,
	}
}

// newAppointmentFixture books 17:00-17:30 UTC on the Monday after now.
func newAppointmentFixture(patientID, providerID, tenantID string, now time.Time) *requests.BookAppointment {
	start := utils.NextWeekday(now, time.Monday, appointmentHour, 0)
	return &requests.BookAppointment{
		Mode:                 constvars.AppointmentTypeVirtual,
		PatientID:            patientID,
		Type:                 "NEW",
		PaymentType:          "CASH",
		ProviderID:           providerID,
		StartTime:            utils.FormatUTC(start),
		EndTime:              utils.FormatUTC(start.Add(appointmentDuration)),
		Forms:                []string{},
		ChiefComplaint:       chiefComplaint,
		IsRecurring:          false,
		RecurringFrequency:   "daily",
		EndType:              "never",
		EndDate:              now.UTC().Format(time.RFC3339Nano),
		EndAfter:             5,
		CustomFrequency:      1,
		CustomFrequencyUnit:  "days",
		SelectedWeekdays:     []string{},
		ReminderBeforeNumber: 1,
		Timezone:             "CST",
		Duration:             int(appointmentDuration / time.Minute),
		XTenantID:            tenantID,
	}
}
