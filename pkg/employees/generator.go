package employees

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// hireDateSpan is the number of selectable days in [HireDateStart, HireDateEnd].
var hireDateSpan = int(HireDateEnd.Sub(HireDateStart)/(24*time.Hour)) + 1

// RowGenerator produces employee rows from its own random source.
// Two generators built from the same seed yield the same sequence.
type RowGenerator struct {
	rand *rand.Rand
}

// NewRowGenerator creates a generator seeded with seed.
func NewRowGenerator(seed int64) *RowGenerator {
	return &RowGenerator{
		rand: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Next draws the fields of a row. The ID is left at zero; callers assign
// it once the row is accepted.
func (g *RowGenerator) Next() Row {
	first := firstNames[g.rand.IntN(len(firstNames))]
	last := lastNames[g.rand.IntN(len(lastNames))]
	dept := departments[g.rand.IntN(len(departments))]
	salary := MinSalary + g.rand.IntN(MaxSalary-MinSalary+1)
	hired := HireDateStart.AddDate(0, 0, g.rand.IntN(hireDateSpan))

	return Row{
		Name:       first + " " + last,
		Department: dept,
		Salary:     salary,
		HireDate:   hired,
	}
}

// AppendRow appends the CSV line for r, newline included, to dst.
func AppendRow(dst []byte, r Row) []byte {
	dst = strconv.AppendInt(dst, r.ID, 10)
	dst = append(dst, ',')
	dst = append(dst, r.Name...)
	dst = append(dst, ',')
	dst = append(dst, r.Department...)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(r.Salary), 10)
	dst = append(dst, ',')
	dst = r.HireDate.AppendFormat(dst, dateLayout)
	return append(dst, '\n')
}
