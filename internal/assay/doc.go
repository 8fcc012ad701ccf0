// Package assay turns the free-form input surface into validated run
// settings and owns the state of one interactive session.
//
// A [Form] holds fields exactly as typed. [Form.Parse] produces [Settings] or
// a [*ValidationError] naming the field and the violated constraint. A
// [Session] keeps the current form and the most recent result, replacing the
// result only when a run completes.
//
// # Thread Safety
//
// Session is NOT thread-safe; it belongs to a single user interaction loop.
package assay
