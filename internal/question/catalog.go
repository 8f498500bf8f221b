package question

// Module is static reference data for one certification study module.
// Test counts feed progress-percent computation; TotalQuestions is the
// advertised size of the full syllabus bank, not the shipped pool.
type Module struct {
	ID             string
	Name           string
	PracticeTests  int
	FinalTests     int
	TotalQuestions int
}

// TestCount returns the configured number of named tests for the module.
func (m Module) TestCount() int {
	return m.PracticeTests + m.FinalTests
}

// catalog is the fixed set of supported modules.
var catalog = []Module{
	{ID: "mutual-funds", Name: "Mutual Fund Distributors", PracticeTests: 5, FinalTests: 2, TotalQuestions: 150},
	{ID: "equity-derivatives", Name: "Equity Derivatives", PracticeTests: 8, FinalTests: 3, TotalQuestions: 200},
	{ID: "currency-derivatives", Name: "Currency Derivatives", PracticeTests: 4, FinalTests: 2, TotalQuestions: 100},
}

// Catalog returns the supported modules in display order.
func Catalog() []Module {
	out := make([]Module, len(catalog))
	copy(out, catalog)
	return out
}

// ModuleByID looks up a module. The zero Module (TestCount 0) is
// returned for unknown IDs; callers treat it as an empty module.
func ModuleByID(id string) (Module, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}
