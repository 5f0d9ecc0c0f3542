// Package registration implements the account onboarding workflow.
//
// New users and admins never appear directly in the account collections.
// A submission lands in a pending collection first, and an approver with
// sufficient privileges either promotes it into the matching account
// collection or discards it. User approvals require an admin or above,
// admin approvals require the super admin.
//
// The package also owns first-run bootstrap: InitSuperAdmin seeds the very
// first super admin account from BootstrapConfig when no admins exist yet.
package registration
