package models

// Category groups menu items under bilingual labels
type Category struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	NameEn      string  `db:"name_en" json:"nameEn"`
	NameSo      string  `db:"name_so" json:"nameSo"`
	Description *string `db:"description" json:"description"`
	IsActive    bool    `db:"is_active" json:"isActive"`
}

// CategoryRequest is used for category creation
type CategoryRequest struct {
	Name        string  `json:"name"`
	NameEn      string  `json:"nameEn" validate:"required,max=100"`
	NameSo      string  `json:"nameSo" validate:"required,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// CategoryPatch carries the fields of a partial category update
type CategoryPatch struct {
	Name        *string        `json:"name" validate:"omitnil,min=1,max=100"`
	NameEn      *string        `json:"nameEn" validate:"omitnil,min=1,max=100"`
	NameSo      *string        `json:"nameSo" validate:"omitnil,min=1,max=100"`
	Description NullableString `json:"description"`
	IsActive    *bool          `json:"isActive"`
}

// Apply merges the present fields into c
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.NameEn != nil {
		c.NameEn = *p.NameEn
	}
	if p.NameSo != nil {
		c.NameSo = *p.NameSo
	}
	p.Description.apply(&c.Description)
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
}

// CategoryFilter narrows a category listing
type CategoryFilter struct {
	IncludeInactive bool
}

// MenuItem represents a dish or drink on the menu
type MenuItem struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	NameEn      string  `db:"name_en" json:"nameEn"`
	NameSo      string  `db:"name_so" json:"nameSo"`
	Description string  `db:"description" json:"description"`
	Price       int64   `db:"price" json:"price"` // minor currency units
	CategoryID  int64   `db:"category_id" json:"categoryId"`
	Image       *string `db:"image" json:"image"`
	IsAvailable bool    `db:"is_available" json:"isAvailable"`
	IsActive    bool    `db:"is_active" json:"isActive"`
}

// MenuItemRequest is used for menu item creation
type MenuItemRequest struct {
	Name        string  `json:"name"`
	NameEn      string  `json:"nameEn" validate:"required,max=100"`
	NameSo      string  `json:"nameSo" validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	Price       *int64  `json:"price" validate:"required,gte=0"`
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
	Image       *string `json:"image"`
	IsAvailable *bool   `json:"isAvailable"`
	IsActive    *bool   `json:"isActive"`
}

// MenuItemPatch carries the fields of a partial menu item update
type MenuItemPatch struct {
	Name        *string        `json:"name" validate:"omitnil,min=1,max=100"`
	NameEn      *string        `json:"nameEn" validate:"omitnil,min=1,max=100"`
	NameSo      *string        `json:"nameSo" validate:"omitnil,min=1,max=100"`
	Description *string        `json:"description" validate:"omitnil,min=1"`
	Price       *int64         `json:"price" validate:"omitnil,gte=0"`
	CategoryID  *int64         `json:"categoryId" validate:"omitnil,gt=0"`
	Image       NullableString `json:"image"`
	IsAvailable *bool          `json:"isAvailable"`
	IsActive    *bool          `json:"isActive"`
}

// Apply merges the present fields into m
func (p MenuItemPatch) Apply(m *MenuItem) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.NameEn != nil {
		m.NameEn = *p.NameEn
	}
	if p.NameSo != nil {
		m.NameSo = *p.NameSo
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.CategoryID != nil {
		m.CategoryID = *p.CategoryID
	}
	p.Image.apply(&m.Image)
	if p.IsAvailable != nil {
		m.IsAvailable = *p.IsAvailable
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
}

// MenuItemFilter narrows a menu item listing
type MenuItemFilter struct {
	CategoryID      *int64
	IncludeInactive bool
}
