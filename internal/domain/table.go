package domain

// Table is a seat resource with a fixed capacity
type Table struct {
	ID         int64
	BusinessID int64
	Name       string
	Capacity   int
}

// Fits returns true if the table seats the given number of people.
// A non-positive hint means "no hint" and every table fits.
func (t *Table) Fits(people int) bool {
	if people <= 0 {
		return true
	}
	return t.Capacity >= people
}
