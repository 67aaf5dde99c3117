package entity

// Department is static reference data seeded on first run and immutable
// afterwards.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
