// Package order implements the purchase-order aggregate of the bookstore
// domain: the Order root entity, its owned OrderItem line items, the
// billing/shipping Address and CreditCard value objects, and the fulfillment
// state machine.
//
// Key business rules:
//   - an order always belongs to a user and always carries a completion date
//   - a book appears at most once per order; adding it again increments the
//     existing item's quantity and keeps the original price snapshot
//   - the fulfillment flow is in_progress -> in_processing -> in_delivery ->
//     delivered, with cancellation possible from in_processing and
//     in_delivery; delivered and canceled are terminal
//   - the cached total price is rewritten to items total + delivery price by
//     PrepareForSave before every persist
//
// State transitions are computed by the pure Transition function over a
// declarative table; the aggregate applies the result and owns all side
// effects. The package follows Domain-Driven Design conventions: private
// fields, constructor factories for live objects, Restore* factories for
// persistence, and Validate methods guarding against zero-value instances.
package order
