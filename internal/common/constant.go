package common

// Record keys in the key/value backend. The "_v1" suffix is part of the
// persisted layout and must not change.
const (
	SiteContentKey = "site_content_v1"
	AdminUsersKey  = "admin_users_v1"
)

// BackupFileName is the default name of an exported backup document.
const BackupFileName = "site_admin_backup.json"
