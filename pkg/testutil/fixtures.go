package testutil

// Canonical addresses for deterministic testing.
const (
	TestBorrower = "GBORROWER7XKZQX4GJ3TQXJZLKWVPM5Y6RHE4Q2AUB2DML4LIGNQFP6W"
	TestAdmin    = "GADMIN6P2QZLJ7WXKB3T4CVNRY5M8HALFDSE9UIOX2W7KQJYGVB4N3MC"
)
