package entity

type Exercise struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"` // free-text tag, e.g. "legs", "push"
}
