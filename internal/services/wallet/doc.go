/*
Package wallet manages a customer's wallet: the ordered set of loyalty cards
(customer/business relations) the customer holds.

Usage:

	svc := wallet.NewService(store, metrics.Prometheus{})

	// Add a business; the card is appended at the end of the wallet.
	card, err := svc.Add(ctx, customerID, businessID)

	// Remove it again. The password is re-verified, the card's ledger
	// history is deleted and the remaining cards close the gap.
	err = svc.Remove(ctx, customerID, wallet.RemoveRequest{BusinessID: id, Password: pw})

	// Put cards in a new order.
	cards, err := svc.Reorder(ctx, customerID, []uuid.UUID{c, a, b})

Ordering:

For every customer the orderIndex values of its relations are exactly
0..n-1. Add appends at n, Remove decrements every index above the removed
card, and Reorder rewrites all indices densely. Each of these runs in a
single database transaction with the customer row locked, so concurrent
wallet edits for one customer are serialized.

Reorder accepts any list of business ids. Unknown ids are ignored, repeated
ids count at their first position, and cards missing from the list keep
their relative order after the listed ones.

Errors:

  - errors.ErrAlreadyInWallet: Add for a business already in the wallet
  - errors.ErrNotInWallet: Remove for a business not in the wallet
  - errors.ErrInvalidCredentials: Remove with a wrong password
*/
package wallet
