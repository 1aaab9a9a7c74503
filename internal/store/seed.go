package store

import (
	"strconv"

	"github.com/spec-kit/roster-service/internal/domain"
)

// Static seed: the working set is rebuilt from these fifty people on every
// run. Skills, functions, locations and legacy statuses rotate so each filter
// option has a spread of matching records.

var seedNames = []string{
	"Aditya Sharma", "Priya Patel", "Rajesh Kumar", "Sneha Gupta", "Vikram Singh",
	"Neha Reddy", "Arjun Nair", "Divya Krishnan", "Karthik Menon", "Ananya Desai",
	"Ravi Verma", "Meera Iyer", "Suresh Rao", "Kavita Mehta", "Prakash Joshi",
	"Lakshmi Narayan", "Venkat Raman", "Deepa Pillai", "Rahul Malhotra", "Jyoti Saxena",
	"Manoj Kumar", "Shalini Chopra", "Gopal Iyengar", "Nandini Sharma", "Amit Kapoor",
	"Sunita Bose", "Vijay Menon", "Pooja Rathore", "Sanjay Khanna", "Anjali Mathur",
	"Girish Agarwal", "Radha Krishnan", "Mohan Das", "Leela Chandra", "Dinesh Prabhu",
	"Usha Rani", "Ashok Mishra", "Sangeetha Nair", "Rakesh Tiwari", "Geeta Banerjee",
	"Rajiv Chadha", "Shobha Rao", "Naveen Reddy", "Asha Mirza", "Kishore Nayak",
	"Vimala Krishnan", "Harish Pillai", "Sarika Jain", "Nitin Saxena", "Latha Subramaniam",
}

var seedSkills = []string{
	"Power BI",
	"Strategic Sourcing",
	"Contract Management",
	"SAP",
	"Project Management",
	"Spend Analysis",
}

var seedFunctions = []string{"Consulting", "KS", "P-ops"}

var seedStatuses = []domain.AllocationStatus{
	domain.AllocationAllocated,
	domain.AllocationBenchShadow,
	domain.AllocationBillable,
	domain.AllocationBenchUnassigned,
	domain.AllocationBenchSupport,
}

// SeedEmployees builds the fifty-record seed collection, fully populated via
// the shared defaults and constrained to one skill per record.
func SeedEmployees() []domain.Employee {
	records := make([]domain.Employee, 0, len(seedNames))
	for i, name := range seedNames {
		e := domain.Employee{
			ID:           strconv.Itoa(i + 1),
			EmployeeCode: "GEP" + pad3(i+1),
			Name:         name,
			Skillset:     []string{seedSkills[i%len(seedSkills)]},
			Function:     seedFunctions[i%len(seedFunctions)],
			Location:     domain.AllowedLocations[i%len(domain.AllowedLocations)],
			Status:       seedStatuses[i%len(seedStatuses)],
		}
		records = append(records, domain.NormalizeSkillset(domain.ApplyDefaults(e)))
	}
	return records
}

func pad3(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
