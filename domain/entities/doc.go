// Package entities defines the core domain types of the validation engine:
// check statuses, outcomes, grouped reports, and the single domain error
// kind. These types double as the JSON wire format used to carry reports
// across process boundaries (e.g. into an API response body).
package entities
