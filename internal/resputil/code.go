package resputil

import "net/http"

// ErrorCode is the machine-readable identifier carried by every error
// response. Codes are stable: clients match on them, not on messages.
type ErrorCode string

const (
	// General
	InvalidRequest ErrorCode = "invalid_request"
	Unauthorized   ErrorCode = "unauthorized"
	Forbidden      ErrorCode = "forbidden"
	InternalError  ErrorCode = "internal_error"

	// Login
	InvalidCredentials ErrorCode = "invalid_credentials"

	// Projects
	ProjectNotFound       ErrorCode = "project_not_found"
	ProjectAlreadyExists  ErrorCode = "project_already_exists"
	ProjectMissingParams  ErrorCode = "project_missing_parameters"
	ProjectCreationFailed ErrorCode = "project_creation_failed"
	ProjectUpdateFailed   ErrorCode = "project_update_failed"
	ProjectDeletionFailed ErrorCode = "project_deletion_failed"

	// Translation sets
	TranslationSetNotFound       ErrorCode = "translation_set_not_found"
	TranslationSetAlreadyExists  ErrorCode = "translation_set_already_exists"
	SetMissingParams             ErrorCode = "set_missing_parameters"
	TranslationSetCreationFailed ErrorCode = "translation_set_creation_failed"
	TranslationSetUpdateFailed   ErrorCode = "translation_set_update_failed"
	TranslationSetDeletionFailed ErrorCode = "translation_set_deletion_failed"

	// Originals
	OriginalNotFound        ErrorCode = "original_not_found"
	OriginalDeletionFailed  ErrorCode = "original_deletion_failed"
	ImportMissingFile       ErrorCode = "import_missing_file"
	ImportInvalidFormat     ErrorCode = "import_invalid_format"
	ImportFormatUnsupported ErrorCode = "import_format_not_supported"
	ImportFileFailed        ErrorCode = "import_file_failed"
	ImportParseFailed       ErrorCode = "import_parse_failed"
	ImportFailed            ErrorCode = "import_failed"

	// Translations
	TranslationNotFound       ErrorCode = "translation_not_found"
	TranslationAlreadyExists  ErrorCode = "translation_already_exists"
	InvalidTranslationData    ErrorCode = "invalid_translation_data"
	TranslationErrors         ErrorCode = "translation_errors"
	TranslationCreationFailed ErrorCode = "translation_creation_failed"
	TranslationUpdateFailed   ErrorCode = "translation_update_failed"
	TranslationDeletionFailed ErrorCode = "translation_deletion_failed"

	// Locales
	LocaleNotFound ErrorCode = "locale_not_found"

	// Glossaries
	GlossaryNotFound       ErrorCode = "glossary_not_found"
	GlossaryAlreadyExists  ErrorCode = "glossary_already_exists"
	GlossaryMissingParams  ErrorCode = "glossary_missing_parameters"
	GlossaryCreationFailed ErrorCode = "glossary_creation_failed"
	GlossaryUpdateFailed   ErrorCode = "glossary_update_failed"
	GlossaryDeletionFailed ErrorCode = "glossary_deletion_failed"

	// Glossary entries
	EntryNotFound       ErrorCode = "glossary_entry_not_found"
	EntryAlreadyExists  ErrorCode = "glossary_entry_already_exists"
	InvalidEntryData    ErrorCode = "invalid_entry_data"
	EntryCreationFailed ErrorCode = "glossary_entry_creation_failed"
	EntryUpdateFailed   ErrorCode = "glossary_entry_update_failed"
	EntryDeletionFailed ErrorCode = "glossary_entry_deletion_failed"

	// Project permissions
	PermissionNotFound       ErrorCode = "project_permission_not_found"
	PermissionAlreadyExists  ErrorCode = "project_permission_already_exists"
	PermissionCreationFailed ErrorCode = "project_permission_creation_failed"
	PermissionDeletionFailed ErrorCode = "project_permission_deletion_failed"

	// Users
	UserNotFound ErrorCode = "user_not_found"
)

// statusOf maps every code to its canonical HTTP status.
var statusOf = map[ErrorCode]int{
	InvalidRequest:     http.StatusBadRequest,
	Unauthorized:       http.StatusUnauthorized,
	Forbidden:          http.StatusForbidden,
	InternalError:      http.StatusInternalServerError,
	InvalidCredentials: http.StatusUnauthorized,

	ProjectNotFound:       http.StatusNotFound,
	ProjectAlreadyExists:  http.StatusConflict,
	ProjectMissingParams:  http.StatusBadRequest,
	ProjectCreationFailed: http.StatusInternalServerError,
	ProjectUpdateFailed:   http.StatusInternalServerError,
	ProjectDeletionFailed: http.StatusInternalServerError,

	TranslationSetNotFound:       http.StatusNotFound,
	TranslationSetAlreadyExists:  http.StatusConflict,
	SetMissingParams:             http.StatusBadRequest,
	TranslationSetCreationFailed: http.StatusInternalServerError,
	TranslationSetUpdateFailed:   http.StatusInternalServerError,
	TranslationSetDeletionFailed: http.StatusInternalServerError,

	OriginalNotFound:        http.StatusNotFound,
	OriginalDeletionFailed:  http.StatusInternalServerError,
	ImportMissingFile:       http.StatusBadRequest,
	ImportInvalidFormat:     http.StatusBadRequest,
	ImportFormatUnsupported: http.StatusBadRequest,
	ImportFileFailed:        http.StatusInternalServerError,
	ImportParseFailed:       http.StatusBadRequest,
	ImportFailed:            http.StatusInternalServerError,

	TranslationNotFound:       http.StatusNotFound,
	TranslationAlreadyExists:  http.StatusConflict,
	InvalidTranslationData:    http.StatusBadRequest,
	TranslationErrors:         http.StatusBadRequest,
	TranslationCreationFailed: http.StatusInternalServerError,
	TranslationUpdateFailed:   http.StatusInternalServerError,
	TranslationDeletionFailed: http.StatusInternalServerError,

	LocaleNotFound: http.StatusNotFound,

	GlossaryNotFound:       http.StatusNotFound,
	GlossaryAlreadyExists:  http.StatusConflict,
	GlossaryMissingParams:  http.StatusBadRequest,
	GlossaryCreationFailed: http.StatusInternalServerError,
	GlossaryUpdateFailed:   http.StatusInternalServerError,
	GlossaryDeletionFailed: http.StatusInternalServerError,

	EntryNotFound:       http.StatusNotFound,
	EntryAlreadyExists:  http.StatusConflict,
	InvalidEntryData:    http.StatusBadRequest,
	EntryCreationFailed: http.StatusInternalServerError,
	EntryUpdateFailed:   http.StatusInternalServerError,
	EntryDeletionFailed: http.StatusInternalServerError,

	PermissionNotFound:       http.StatusNotFound,
	PermissionAlreadyExists:  http.StatusConflict,
	PermissionCreationFailed: http.StatusInternalServerError,
	PermissionDeletionFailed: http.StatusInternalServerError,

	UserNotFound: http.StatusNotFound,
}

// messageOf carries the default human-readable message per code.
var messageOf = map[ErrorCode]string{
	InvalidRequest:     "Invalid request.",
	Unauthorized:       "Authentication required.",
	Forbidden:          "You are not allowed to do that.",
	InternalError:      "Something went wrong.",
	InvalidCredentials: "Invalid login or password.",

	ProjectNotFound:       "Project not found.",
	ProjectAlreadyExists:  "An identical project already exists.",
	ProjectMissingParams:  "Name and slug are required.",
	ProjectCreationFailed: "Failed to create project.",
	ProjectUpdateFailed:   "Failed to update project.",
	ProjectDeletionFailed: "Failed to delete project.",

	TranslationSetNotFound:       "Translation set not found.",
	TranslationSetAlreadyExists:  "A translation set with the same project, locale, and slug already exists.",
	SetMissingParams:             "Name and slug are required.",
	TranslationSetCreationFailed: "Failed to create translation set.",
	TranslationSetUpdateFailed:   "Failed to update translation set.",
	TranslationSetDeletionFailed: "Failed to delete translation set.",

	OriginalNotFound:        "Original string not found.",
	OriginalDeletionFailed:  "Failed to delete original string.",
	ImportMissingFile:       "An import file is required.",
	ImportInvalidFormat:     "Unknown import format.",
	ImportFormatUnsupported: "No parser is available for this format.",
	ImportFileFailed:        "Failed to store the uploaded file.",
	ImportParseFailed:       "The uploaded file could not be parsed.",
	ImportFailed:            "Failed to import original strings.",

	TranslationNotFound:       "Translation not found.",
	TranslationAlreadyExists:  "An identical translation already exists.",
	InvalidTranslationData:    "Invalid translation data.",
	TranslationErrors:         "Translation contains errors.",
	TranslationCreationFailed: "Failed to create translation.",
	TranslationUpdateFailed:   "Failed to update translation.",
	TranslationDeletionFailed: "Failed to delete translation.",

	LocaleNotFound: "Locale not found.",

	GlossaryNotFound:       "Glossary not found.",
	GlossaryAlreadyExists:  "A glossary for this translation set already exists.",
	GlossaryMissingParams:  "A translation set is required.",
	GlossaryCreationFailed: "Failed to create glossary.",
	GlossaryUpdateFailed:   "Failed to update glossary.",
	GlossaryDeletionFailed: "Failed to delete glossary.",

	EntryNotFound:       "Glossary entry not found.",
	EntryAlreadyExists:  "Glossary entry already exists.",
	InvalidEntryData:    "Term and translation are required fields.",
	EntryCreationFailed: "Failed to create glossary entry.",
	EntryUpdateFailed:   "Failed to update glossary entry.",
	EntryDeletionFailed: "Failed to delete glossary entry.",

	PermissionNotFound:       "Project permission not found.",
	PermissionAlreadyExists:  "A project permission for this scope already exists.",
	PermissionCreationFailed: "Failed to create project permission.",
	PermissionDeletionFailed: "Failed to delete project permission.",

	UserNotFound: "User not found.",
}

// Status returns the HTTP status a code maps to; unknown codes fall back to
// 500.
func Status(code ErrorCode) int {
	if s, ok := statusOf[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Message returns the default human-readable message for a code.
func Message(code ErrorCode) string {
	if m, ok := messageOf[code]; ok {
		return m
	}
	return string(code)
}
