package entity

// Doctor offers a fixed daily inventory of bookable time slots. The slot
// list is not date-specific: the same times are offered every calendar day.
// Seeded on first run and immutable afterwards.
type Doctor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DepartmentID string   `json:"department_id"`
	Slots        []string `json:"slots"`
}

// HasSlot reports whether t is part of the doctor's slot inventory.
func (d *Doctor) HasSlot(t string) bool {
	for _, s := range d.Slots {
		if s == t {
			return true
		}
	}
	return false
}
