// Package services contains the application services of the site admin:
//
//   - AuthService: the session guard (credential check, in-memory session)
//   - ProgramService: list editor over the programs of the site content
//   - AdminService: list editor over the admin accounts
//   - ContentService: edits of hero, about, stats and the hero image
//   - BackupService: export/import of both records as one JSON document
//
// Services never panic on expected conditions; they return the sentinel
// errors from internal/common (ErrNotFound, ErrDuplicateEmail, ErrParse,
// ErrAuthFailure, ErrLastAdmin, ErrValidation). Backend failures are
// returned wrapped and should be treated as fatal I/O errors.
package services
