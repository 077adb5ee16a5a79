package leads

// DefaultServiceArea is the Delhi NCR pincode allow-list used when the
// configuration does not provide one.
var DefaultServiceArea = []string{
	"110012",
	"110033",
	"110034",
	"110035",
	"110042",
	"110081",
	"110082",
	"110083",
	"110084",
	"110085",
	"110086",
	"110088",
	"110089",
}

// ServiceArea classifies pincodes against the provider's coverage
type ServiceArea struct {
	pincodes map[string]struct{}
}

// NewServiceArea builds a service area from an allow-list. An empty
// list falls back to the default coverage.
func NewServiceArea(pincodes []string) *ServiceArea {
	if len(pincodes) == 0 {
		pincodes = DefaultServiceArea
	}

	area := &ServiceArea{pincodes: make(map[string]struct{}, len(pincodes))}
	for _, p := range pincodes {
		area.pincodes[p] = struct{}{}
	}

	return area
}

// Feasible reports whether the pincode is inside the service area.
// Feasibility only selects the confirmation message, the submission is
// dispatched either way.
func (a *ServiceArea) Feasible(pincode string) bool {
	_, ok := a.pincodes[pincode]
	return ok
}
