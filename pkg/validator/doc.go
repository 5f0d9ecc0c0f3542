// Package validator provides composable field validation rules.
//
// Rules are plain closures paired with the error to report on failure;
// Apply runs a set of them and returns the accumulated ValidationErrors.
package validator
