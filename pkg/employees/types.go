package employees

import "time"

// Header is the first line of every generated file.
const Header = "employee_id,name,department,salary,hire_date\n"

const (
	MinSalary = 45_000
	MaxSalary = 220_000
)

var (
	// HireDateStart and HireDateEnd bound hire dates, both inclusive.
	HireDateStart = time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)
	HireDateEnd   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Row is a single employee record.
type Row struct {
	ID         int64
	Name       string
	Department string
	Salary     int
	HireDate   time.Time
}

// Pool values must never contain a comma or a newline; rows are written unquoted.
var firstNames = []string{
	"Alice", "Bob", "Carol", "David", "Eva",
	"Frank", "Grace", "Henry", "Ivy", "Jack",
	"Liam", "Mia", "Noah", "Olivia", "Priya",
	"Quinn", "Rosa", "Sam", "Tina", "Uma",
	"Victor", "Wen", "Xavier", "Yara", "Zoe",
}

var lastNames = []string{
	"Johnson", "Martinez", "Lee", "Kim", "Smith",
	"Zhao", "Patel", "Nguyen", "Chen", "Brown",
	"Davis", "Wilson", "Garcia", "Hernandez", "Lopez",
	"Gonzalez", "Anderson", "Thomas", "Taylor", "Moore",
}

var departments = []string{
	"Engineering",
	"Sales",
	"Marketing",
	"Finance",
	"HR",
	"Product",
	"Support",
	"Operations",
}

