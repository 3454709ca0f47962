// Package services contains stateless domain services that operate across
// aggregates. The earnings calculator folds delivered orders into the
// reporting buckets without touching persistence.
package services
