package models

// Table is a bookable table or hall
type Table struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Capacity    int     `db:"capacity" json:"capacity"`
	Type        string  `db:"type" json:"type"` // table, hall, ...
	IsAvailable bool    `db:"is_available" json:"isAvailable"`
	Description *string `db:"description" json:"description"`
}

// TableRequest is used for table creation
type TableRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Capacity    int     `json:"capacity" validate:"required,min=1"`
	Type        string  `json:"type" validate:"required,max=30"`
	IsAvailable *bool   `json:"isAvailable"`
	Description *string `json:"description"`
}

// TablePatch carries the fields of a partial table update
type TablePatch struct {
	Name        *string        `json:"name" validate:"omitnil,min=1,max=100"`
	Capacity    *int           `json:"capacity" validate:"omitnil,min=1"`
	Type        *string        `json:"type" validate:"omitnil,min=1,max=30"`
	IsAvailable *bool          `json:"isAvailable"`
	Description NullableString `json:"description"`
}

// Apply merges the present fields into t
func (p TablePatch) Apply(t *Table) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Capacity != nil {
		t.Capacity = *p.Capacity
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.IsAvailable != nil {
		t.IsAvailable = *p.IsAvailable
	}
	p.Description.apply(&t.Description)
}
