// Package domain contains the core model for devapp: machine kinds, their fixed output
// lines, configuration and error classification.
//
// The domain does not depend on cobra, YAML parsing or the filesystem. Infra/adapters map
// into/from these types.
package domain
