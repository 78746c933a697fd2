package model

// Role is the platform-wide role of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// TranslationStatus is the review state of a submitted translation.
type TranslationStatus string

const (
	TranslationCurrent TranslationStatus = "current"
	TranslationWaiting TranslationStatus = "waiting"
	TranslationFuzzy   TranslationStatus = "fuzzy"
	TranslationOld     TranslationStatus = "old"
)

// OriginalStatus marks whether an original string is still part of the
// imported source material.
type OriginalStatus string

const (
	OriginalActive   OriginalStatus = "+active"
	OriginalObsolete OriginalStatus = "-obsolete"
)

// PermissionApprove is the only grantable action; it lets a user approve
// translations for a specific (project, locale, set) scope.
const PermissionApprove = "approve"
