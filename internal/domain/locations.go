package domain

// AllowedLocations is the location whitelist this deployment operates on.
// The seed dataset and the external-search instruction template are both
// scoped to these three sites; records from other locations are tolerated
// but flagged in logs.
var AllowedLocations = []string{
	"India – Mumbai",
	"India – Hyderabad",
	"India – Coimbatore",
}

// LocationAllowed reports whether loc is on the whitelist.
func LocationAllowed(loc string) bool {
	for _, allowed := range AllowedLocations {
		if loc == allowed {
			return true
		}
	}
	return false
}
