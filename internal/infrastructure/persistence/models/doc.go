// Package models contains the GORM persistence models backing the
// reporting queries. They are kept separate from the domain records so
// the domain layer stays free of ORM tags; repositories translate rows
// into domain types at the boundary.
//
// This service never writes these tables. Rows are produced by the
// order, store, campaign and identity services and read here for
// aggregation.
package models
