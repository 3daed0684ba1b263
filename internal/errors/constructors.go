package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigRequired(field string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Navbar errors

func DuplicateNavbar(locale string, differences int) *SiteError {
	return New(CategoryNavbar, SeverityFatal, "navbar defined twice with diverging content").
		WithContext("locale", locale).
		WithContext("differences", differences)
}

// Generation errors

func GenerateFailed(stage string, cause error) *SiteError {
	return Wrap(cause, CategoryGenerate, SeverityFatal, "generation failed").
		WithContext("stage", stage)
}

func WriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "writing output failed").
		WithContext("path", path)
}

// Git errors

func RepositoryLookup(dir string, cause error) *SiteError {
	return Wrap(cause, CategoryGit, SeverityWarning, "repository lookup failed").
		WithContext("dir", dir)
}

// Internal errors

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
