package release

// Export unexported functions for external tests.
var HandleError = handleError
