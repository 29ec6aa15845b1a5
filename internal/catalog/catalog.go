package catalog

// Unit is a single academic module from the university catalog. Identity
// and equality follow Id: two units with the same id are the same unit.
// Catalog values are created once by the catalog and never mutated by the
// evaluator.
type Unit struct {
	Id           uint64
	Code         string
	Name         string
	CreditPoints uint64
}

// Course is a degree program a student can be enrolled in.
type Course struct {
	Id   uint64
	Code string
	Name string
}

// Sequence is a major or minor track within a course.
type Sequence struct {
	Id   uint64
	Code string
	Name string
}
