// Package order contains the Order aggregate, the heart of the fulfillment
// workflow.
//
// An order is created at checkout from a snapshot of the customer's cart and
// then advances through a strict state machine: the kitchen marks it
// prepared, a courier claims it (which fixes the delivery estimate), and the
// same courier closes it as delivered. Transitions never go backwards and
// every rule about who may perform which transition lives here, not in the
// handlers.
//
// Key types:
//   - Order: the aggregate root with lifecycle methods MarkPrepared, Assign
//     and Complete.
//   - Status: the Created -> Prepared -> Assigned -> Delivered state machine.
//   - Line: an immutable snapshot of one cart position at checkout time.
package order
