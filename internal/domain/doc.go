// Package domain contains the core domain model for the Sourcegraph opener.
//
// The domain is transport- and filesystem-agnostic: it does not shell out to
// git, touch the terminal, or launch a browser. Infra/adapters map into/from
// these types.
package domain
