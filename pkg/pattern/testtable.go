package pattern

// TestTable lists tests of one category with their status.
type TestTable struct {
	Label   string          `json:"label"`
	Results []TestTableItem `json:"results"`
}

// TestTableItem is a single test.
type TestTableItem struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "pass", "fail", "skip"
	Details string `json:"details,omitempty"`
}

func (t *TestTable) Type() PatternType { return PatternTypeTestTable }
