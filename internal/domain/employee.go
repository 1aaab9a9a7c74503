package domain

// BillabilityStatus enumerates billing classifications.
type BillabilityStatus string

const (
	BillabilityAllocated     BillabilityStatus = "Allocated"
	BillabilityBillable      BillabilityStatus = "Billable"
	BillabilityBenchAssigned BillabilityStatus = "Bench-assigned"
	BillabilityInvestment    BillabilityStatus = "Investment"
)

// TagStatus enumerates project tagging confirmation states.
type TagStatus string

const (
	TagConfirmed    TagStatus = "Confirmed"
	TagNotConfirmed TagStatus = "Not Confirmed"
)

// AllocationStatus is the legacy status field kept for older records.
type AllocationStatus string

const (
	AllocationAllocated       AllocationStatus = "Allocated"
	AllocationBillable        AllocationStatus = "Billable"
	AllocationBenchShadow     AllocationStatus = "Bench-shadow"
	AllocationBenchSupport    AllocationStatus = "Bench-support"
	AllocationBenchUnassigned AllocationStatus = "Bench-unassigned"
)

// Employee is one person's allocation and availability profile. The enum-typed
// fields are advisory: records arriving from the external search service may
// carry out-of-enum values and are passed through rather than rejected.
//
// Date fields hold ISO yyyy-mm-dd strings with no time component, so
// lexicographic order matches chronological order. Availability percentages
// are integers in [0,100].
type Employee struct {
	ID                          string            `json:"id"`
	EmployeeCode                string            `json:"employeeCode"`
	Name                        string            `json:"name"`
	EmploymentStatus            string            `json:"employmentStatus"`
	FunctionGroup               string            `json:"functionGroup"`
	SubFunction                 string            `json:"subFunction"`
	Region                      string            `json:"region"`
	JobTitle                    string            `json:"jobTitle"`
	CurrentAvailability         int               `json:"currentAvailability"`
	Availability30Days          int               `json:"availability30Days"`
	Availability60Days          int               `json:"availability60Days"`
	Availability90Days          int               `json:"availability90Days"`
	Availability120Days         int               `json:"availability120Days"`
	PrimaryAccount              string            `json:"primaryAccount"`
	SOWName                     string            `json:"sowName"`
	BillabilityStatus           BillabilityStatus `json:"billabilityStatus"`
	EarliestAllocationStartDate string            `json:"earliestAllocationStartDate"`
	EarliestStartDate           string            `json:"earliestStartDate"`
	LatestEndDate               string            `json:"latestEndDate"`
	ExpectedStartDate           string            `json:"expectedStartDate"`
	DateOfJoining               string            `json:"dateOfJoining"`
	TagStatus                   TagStatus         `json:"tagStatus"`
	TaggedForProject            string            `json:"taggedForProject"`
	SMECategory                 string            `json:"smeCategory"`
	Comments                    string            `json:"comments"`
	Location                    string            `json:"location"`
	Skillset                    []string          `json:"skillset"`

	// Kept for backward compatibility with older records.
	Function string           `json:"function"`
	Status   AllocationStatus `json:"status"`
}

// DefaultSkill substitutes for records that arrive without any skill.
const DefaultSkill = "Power BI"

// ApplyDefaults fills unset optional fields so that every stored record is
// fully populated. Callers appending records are expected to run this first.
func ApplyDefaults(e Employee) Employee {
	if e.EmploymentStatus == "" {
		e.EmploymentStatus = "Active"
	}
	if e.FunctionGroup == "" {
		if e.Function != "" {
			e.FunctionGroup = e.Function
		} else {
			e.FunctionGroup = "Consulting"
		}
	}
	if e.SubFunction == "" {
		e.SubFunction = "Global Delivery"
	}
	if e.Region == "" {
		e.Region = "APAC"
	}
	if e.JobTitle == "" {
		e.JobTitle = "Consultant"
	}
	if e.BillabilityStatus == "" {
		e.BillabilityStatus = BillabilityAllocated
	}
	if e.EarliestAllocationStartDate == "" {
		e.EarliestAllocationStartDate = "2023-10-15"
	}
	if e.EarliestStartDate == "" {
		e.EarliestStartDate = "2023-10-15"
	}
	if e.ExpectedStartDate == "" {
		e.ExpectedStartDate = "2023-10-15"
	}
	if e.DateOfJoining == "" {
		e.DateOfJoining = "2019-06-12"
	}
	if e.TagStatus == "" {
		e.TagStatus = TagNotConfirmed
	}
	if len(e.Skillset) == 0 {
		e.Skillset = []string{DefaultSkill}
	}
	return e
}

// NormalizeSkillset constrains a record to a single skill, keeping the first
// one. Multi-skill records are valid in the model; this deployment stores and
// displays one skill per person.
func NormalizeSkillset(e Employee) Employee {
	if len(e.Skillset) > 1 {
		e.Skillset = e.Skillset[:1]
	}
	if len(e.Skillset) == 0 {
		e.Skillset = []string{DefaultSkill}
	}
	return e
}
