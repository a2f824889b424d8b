package transaction

import "strings"

// FindAccount returns the first account whose id equals id exactly.
func FindAccount(accounts []Account, id string) (Account, bool) {
	for _, account := range accounts {
		if account.ID == id {
			return account, true
		}
	}

	return Account{}, false
}

// ViewInRequestOrder collects every account whose id equals debitID or
// creditID, preserving the caller's original ordering regardless of which
// side of the transfer each account is on. Each view snapshots the current
// balance into BalanceBefore and uppercases the currency.
//
// The result is never nil so it serializes as an empty JSON array.
func ViewInRequestOrder(accounts []Account, debitID, creditID string) []AccountView {
	views := make([]AccountView, 0, 2)

	for _, account := range accounts {
		if account.ID != debitID && account.ID != creditID {
			continue
		}

		views = append(views, AccountView{
			ID:            account.ID,
			Balance:       account.Balance,
			BalanceBefore: account.Balance,
			Currency:      strings.ToUpper(account.Currency),
		})
	}

	return views
}
