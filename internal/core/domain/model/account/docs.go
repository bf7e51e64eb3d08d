// Package account contains the actors of the marketplace: customers,
// couriers and kitchen workers, plus the Role enum that scopes what an
// authenticated principal may do.
//
// The customer balance is the only ledger in the system. It has exactly two
// mutation paths, Debit at checkout and Credit on top-up, and can never go
// negative. The courier carries its last reported position so that distance
// and ETA calculations start from where the courier actually is.
package account
