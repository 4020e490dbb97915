package employee

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is one employment record. Every field is owned by the value
// itself: Clone produces fully independent storage, so mutating a record
// never affects its copies.
type Employee struct {
	name       string
	employeeID int
	salary     decimal.Decimal
	department string // fixed at construction

	roster *Roster
	handle uuid.UUID
}

// ReadOnly is the view of a record that cannot mutate it.
type ReadOnly interface {
	Name() string
	ID() int
	Salary() decimal.Decimal
	Department() string
	DisplayInfo()
}

var _ ReadOnly = (*Employee)(nil)

// New constructs a record and registers it with the roster. Arguments are
// stored exactly as given; there is no validation.
func New(r *Roster, name string, id int, salary float64, department string) *Employee {
	e := &Employee{
		name:       name,
		employeeID: id,
		salary:     decimal.NewFromFloat(salary),
		department: department,
		roster:     r,
		handle:     r.add(),
	}
	fmt.Fprintf(r.out, "Employee created: %s\n", e.name)
	return e
}

// Clone returns a deep copy of the record under a new roster handle. The
// copy shares no storage with the original.
func (e *Employee) Clone() *Employee {
	fmt.Fprintf(e.roster.out, "Creating deep copy of: %s\n", e.name)
	return &Employee{
		name:       e.name,
		employeeID: e.employeeID,
		salary:     e.salary,
		department: e.department,
		roster:     e.roster,
		handle:     e.roster.add(),
	}
}

// Release removes the record from the roster. The roster handle is removed
// at most once, so repeated calls cannot drive the live count negative.
func (e *Employee) Release() error {
	if !e.roster.remove(e.handle) {
		return ErrAlreadyReleased
	}
	fmt.Fprintf(e.roster.out, "Destroying employee: %s\n", e.name)
	return nil
}

// DisplayInfo prints the record's details. It never mutates the record and
// is part of the ReadOnly view.
func (e *Employee) DisplayInfo() {
	out := e.roster.out
	fmt.Fprintf(out, "\n--- Employee Details ---\n")
	fmt.Fprintf(out, "Company: %s\n", e.roster.CompanyName())
	fmt.Fprintf(out, "Name: %s\n", e.name)
	fmt.Fprintf(out, "ID: %d\n", e.employeeID)
	fmt.Fprintf(out, "Department: %s\n", e.department)
	fmt.Fprintf(out, "Salary: $%s\n", e.salary)
}

// UpdateSalary replaces the salary unconditionally.
func (e *Employee) UpdateSalary(newSalary float64) {
	e.salary = decimal.NewFromFloat(newSalary)
}

// UpdateName replaces the name unconditionally.
func (e *Employee) UpdateName(newName string) {
	e.name = newName
}

func (e *Employee) Name() string            { return e.name }
func (e *Employee) ID() int                 { return e.employeeID }
func (e *Employee) Salary() decimal.Decimal { return e.salary }
func (e *Employee) Department() string      { return e.department }

// Self returns the record's own identity. No new record is created.
func (e *Employee) Self() *Employee {
	return e
}
