// Package teelog provides zerolog-backed side-effect logging for results.
// Like solo.Tee, nothing here alters the result: pipelines stay observable
// without becoming error-aware at every step.
package teelog
