// Package account holds the partner account aggregate and its satellites:
// the Profile with vehicle and availability state, uploaded compliance
// Documents, and the Ratings the partner submits for completed orders.
package account
