// Package email sends transactional notifications for the registration
// workflow (approval and rejection notices).
//
// Production deployments use the Postmark-backed sender; local development
// uses NewDevSender which only logs. Both implement EmailSender, which the
// registration module receives as an optional collaborator.
package email
