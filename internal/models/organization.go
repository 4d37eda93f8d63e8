// Package models contains data models for the ticket service.
package models

import "time"

// Role represents a permission group ("ejecutor", "admin", etc.).
// Roles are seeded externally and read-only to this service.
type Role struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for the Role model.
func (Role) TableName() string {
	return "roles"
}

// InternalSector represents an organizational unit ("Guest", "IT", etc.).
// Sectors are seeded externally and read-only to this service.
type InternalSector struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	DependencyID *int64    `json:"dependency_id" gorm:"column:dependency_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for the InternalSector model.
func (InternalSector) TableName() string {
	return "internal_sectors"
}

// Dependency represents an external unit that sectors and tickets can be
// linked to.
type Dependency struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for the Dependency model.
func (Dependency) TableName() string {
	return "dependencies"
}

// UserRole binds a user to a role. A user may accumulate several bindings;
// the earliest-created one is the user's effective role.
type UserRole struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	RoleID    int64     `json:"role_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	Role      Role      `json:"-" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the UserRole model.
func (UserRole) TableName() string {
	return "user_roles"
}

// UserInternalSector binds a user to an internal sector. Same effective-binding
// rule as UserRole: earliest created wins.
type UserInternalSector struct {
	ID               int64          `json:"id" gorm:"primaryKey"`
	UserID           int64          `json:"user_id" gorm:"not null;index"`
	InternalSectorID int64          `json:"internal_sector_id" gorm:"not null"`
	CreatedAt        time.Time      `json:"created_at"`
	InternalSector   InternalSector `json:"-" gorm:"foreignKey:InternalSectorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the UserInternalSector model.
func (UserInternalSector) TableName() string {
	return "user_internal_sectors"
}
