// Package cart provides the Cart aggregate: the per-customer accumulation of
// dish selections before checkout.
//
// Key business rules:
//   - Exactly one cart per customer, created lazily on the first add
//   - One item per dish; repeated adds merge quantities
//   - Quantity is always a positive integer
//   - Checkout empties the cart atomically with order creation
package cart
