package models

// UserGroup defines the visibility group of a project or solution
type UserGroup string

const (
	UserGroupPublic  UserGroup = "public"
	UserGroupPlanner UserGroup = "planner"
	UserGroupManager UserGroup = "manager"
)

// UserRole defines the role of a portal user
type UserRole string

const (
	UserRolePlanner UserRole = "planner"
	UserRoleManager UserRole = "manager"
)

// LayerType defines how a project layer may be used in a solution
type LayerType string

const (
	LayerTypeTheme   LayerType = "theme"
	LayerTypeWeight  LayerType = "weight"
	LayerTypeInclude LayerType = "include"
	LayerTypeExclude LayerType = "exclude"
)

// LegendType defines how a layer's legend is rendered
type LegendType string

const (
	LegendTypeManual     LegendType = "manual"
	LegendTypeContinuous LegendType = "continuous"
)

// Provenance defines the origin of a layer's source data
type Provenance string

const (
	ProvenanceRegional Provenance = "regional"
	ProvenanceNational Provenance = "national"
	ProvenanceMissing  Provenance = "missing"
)

// IsValid checks if the UserGroup is valid
func (g UserGroup) IsValid() bool {
	switch g {
	case UserGroupPublic, UserGroupPlanner, UserGroupManager:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRolePlanner, UserRoleManager:
		return true
	}
	return false
}

// IsValid checks if the LayerType is valid
func (t LayerType) IsValid() bool {
	switch t {
	case LayerTypeTheme, LayerTypeWeight, LayerTypeInclude, LayerTypeExclude:
		return true
	}
	return false
}

// IsValid checks if the LegendType is valid
func (l LegendType) IsValid() bool {
	switch l {
	case LegendTypeManual, LegendTypeContinuous:
		return true
	}
	return false
}

// IsValid checks if the Provenance is valid
func (p Provenance) IsValid() bool {
	switch p {
	case ProvenanceRegional, ProvenanceNational, ProvenanceMissing:
		return true
	}
	return false
}
