// Package tracker implements the deployment-resolution pipeline for the
// tagtrack CLI.
//
// This package provides:
//   - Production environment selection (exact match for the status mode,
//     substring match for the report mode)
//   - Deployment location via two strategies: full history with a stable
//     newest-first sort, or the environment's last-deployment pointer
//   - Correlation of a deployment ref to its tag's commit creation time
//   - Release tag format validation (vX.Y.Z)
//
// Everything here is pure against the API interface so tests run with a
// fake client; the real adapter lives in internal/gitlab. No method exits
// the process — errors propagate to cmd/tagtrack, which owns termination.
package tracker
