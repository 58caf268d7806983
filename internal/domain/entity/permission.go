package entity

// PermissionType names a web feature a page can request.
type PermissionType string

const (
	PermissionGeolocation   PermissionType = "geolocation"
	PermissionNotifications PermissionType = "notifications"
	PermissionMedia         PermissionType = "media"
	PermissionClipboard     PermissionType = "clipboard"
	PermissionPointerLock   PermissionType = "pointer_lock"
	PermissionDataAccess    PermissionType = "website_data_access"
	PermissionOther         PermissionType = "other"
)

// PermissionDecision is the answer given to a permission request.
type PermissionDecision string

const (
	PermissionGrant PermissionDecision = "grant"
	PermissionDeny  PermissionDecision = "deny"
)

// ParsePermissionDecision accepts "grant"/"allow" and "deny"; ok is false otherwise.
func ParsePermissionDecision(s string) (PermissionDecision, bool) {
	switch s {
	case "grant", "allow":
		return PermissionGrant, true
	case "deny":
		return PermissionDeny, true
	default:
		return "", false
	}
}
