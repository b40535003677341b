// Package store is the data access layer for the records table.
//
// Store wraps the five DynamoDB operations the service needs (put, get,
// scan, update, delete) behind a small API that speaks [record.Record]
// instead of raw attribute values. The table name is fixed at
// construction via [Config]; nothing reads the environment here.
//
// # Errors
//
// Every failing operation returns an [*Error] carrying an HTTP-ish
// status: the status of the underlying AWS response when one is present,
// otherwise 500 for the write path and 501 for reads, scans, updates and
// deletes. The asymmetric defaults are inherited behavior kept for
// compatibility with existing clients.
//
// # Known limitations
//
//   - ScanAll reads a single page. Tables larger than the scan page limit
//     are returned truncated.
//   - Absence is not an error: GetByID returns (nil, nil) for a missing
//     id, and Delete of a missing id succeeds.
package store
