package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/techsolutions/employee-system/internal/config"
	"github.com/techsolutions/employee-system/internal/domain/employee"
	"github.com/techsolutions/employee-system/internal/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logging.Setup(cfg.App.LogLevel)
	slog.Info("starting walkthrough", "company", cfg.App.CompanyName, "env", cfg.App.Env)

	run(os.Stdout, cfg.App.CompanyName)

	slog.Info("walkthrough finished")
}

// run plays the whole lifecycle walkthrough on one writer. Every record it
// creates is released before it returns.
func run(out io.Writer, companyName string) {
	fmt.Fprintln(out, "======================================")
	fmt.Fprintf(out, "   %s EMPLOYEE SYSTEM\n", strings.ToUpper(companyName))
	fmt.Fprintln(out, "======================================")
	fmt.Fprintln(out)

	roster := employee.NewRoster(companyName, out)
	roster.DisplayCompanyInfo()

	fmt.Fprintln(out, "\n--- Creating Employees ---")
	emp1 := employee.New(roster, "Ahmed Khan", 101, 50000.0, "Engineering")
	defer emp1.Release()
	emp2 := employee.New(roster, "Sara Ali", 102, 55000.0, "Marketing")
	defer emp2.Release()

	emp1.DisplayInfo()
	emp2.DisplayInfo()

	fmt.Fprintln(out, "\n--- Explicitly Managed Record ---")
	emp3 := employee.New(roster, "Fatima Hassan", 103, 60000.0, "Finance")
	emp3.DisplayInfo()

	fmt.Fprintln(out, "\n--- Identity Reference Demo ---")
	fmt.Fprintf(out, "Address of emp1: %p\n", emp1)
	fmt.Fprintf(out, "Self reference:  %p\n", emp1.Self())

	fmt.Fprintln(out, "\n--- Passing Records ---")
	printEmployeeByValue(out, emp1.Clone())
	printEmployeeByReference(out, emp2)

	fmt.Fprintln(out, "\n--- Returning a Record ---")
	emp4 := hireEmployee(roster, "Ali Raza", 104, 52000.0, "HR")
	defer emp4.Release()
	emp4.DisplayInfo()

	fmt.Fprintln(out, "\n======================================")
	fmt.Fprintln(out, "   DEEP COPY DEMONSTRATION")
	fmt.Fprintln(out, "======================================")

	original := employee.New(roster, "Zain Malik", 105, 58000.0, "IT")
	defer original.Release()
	fmt.Fprintln(out, "\nOriginal Employee:")
	original.DisplayInfo()

	clone := original.Clone()
	defer clone.Release()
	fmt.Fprintln(out, "\nDeep Copy Created:")
	clone.DisplayInfo()

	fmt.Fprintln(out, "\n--- Modifying Original ---")
	original.UpdateName("Zain Malik (Senior)")
	original.UpdateSalary(65000.0)

	fmt.Fprintln(out, "\nOriginal (Modified):")
	original.DisplayInfo()

	fmt.Fprintln(out, "\nDeep Copy (Unchanged):")
	clone.DisplayInfo()

	fmt.Fprintln(out, "\n** Deep copy has independent storage **")

	fmt.Fprintln(out, "\n--- Adding New Employee ---")
	emp5 := employee.New(roster, "Ayesha Iqbal", 106, 54000.0, "Operations")
	defer emp5.Release()
	roster.DisplayCompanyInfo()

	fmt.Fprintln(out, "\n--- Read-Only View ---")
	emp6 := employee.New(roster, "Hassan Ahmed", 107, 56000.0, "QA")
	defer emp6.Release()
	var view employee.ReadOnly = emp6
	view.DisplayInfo()

	emp3.Release()

	fmt.Fprintln(out, "\n--- Final Statistics ---")
	roster.DisplayCompanyInfo()

	fmt.Fprintln(out, "\n======================================")
	fmt.Fprintln(out, "   PROGRAM COMPLETED")
	fmt.Fprintln(out, "======================================")
	fmt.Fprintln(out)
}

// printEmployeeByValue takes ownership of its own copy of a record, like a
// by-value parameter, and releases it before returning.
func printEmployeeByValue(out io.Writer, emp *employee.Employee) {
	defer emp.Release()
	fmt.Fprintf(out, "\n[Passed by Value] %s\n", emp.Name())
}

// printEmployeeByReference borrows the caller's record; nothing is copied.
func printEmployeeByReference(out io.Writer, emp employee.ReadOnly) {
	fmt.Fprintln(out, "\n[Passed by Reference]")
	emp.DisplayInfo()
}

// hireEmployee constructs and returns a record; ownership passes to the
// caller. No intermediate copy is made.
func hireEmployee(r *employee.Roster, name string, id int, salary float64, dept string) *employee.Employee {
	return employee.New(r, name, id, salary, dept)
}
