// Package order contains the Order aggregate: the entity binding a client,
// a delivery target, priced line items, a payment method, and a lifecycle
// status.
//
// An order is priced exactly once, at creation: every line item carries the
// unit price after the client discount, and the delivery target carries the
// zone name and cost as they were at that moment. Later edits to products,
// zones, or the client's discount never change an existing order.
//
// The lifecycle is a small state machine: issued → dispatched via driver
// assignment, dispatched → issued via unassignment, and either state →
// cancelled. A driver reference is present exactly when the order is
// dispatched. Cancelled orders accept no further mutation; deletion is only
// allowed for cancelled orders.
package order
