package domain

import "context"

// Principal is the identity bound to a single request. The zero value is
// anonymous.
type Principal struct {
	account *Account
}

// Anonymous returns a principal carrying no identity.
func Anonymous() Principal {
	return Principal{}
}

// Authenticated returns a principal bound to account.
func Authenticated(account Account) Principal {
	return Principal{account: &account}
}

// Account returns the bound account and true, or false when anonymous.
func (p Principal) Account() (Account, bool) {
	if p.account == nil {
		return Account{}, false
	}
	return *p.account, true
}

// IsAuthenticated reports whether an account is bound.
func (p Principal) IsAuthenticated() bool {
	return p.account != nil
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal stored in ctx, or Anonymous.
func PrincipalFrom(ctx context.Context) Principal {
	p, _ := ctx.Value(principalKey{}).(Principal)
	return p
}

// RequirePrincipal returns the authenticated account bound to ctx. Every
// owner-scoped operation calls it before touching storage.
func RequirePrincipal(ctx context.Context) (Account, error) {
	account, ok := PrincipalFrom(ctx).Account()
	if !ok {
		return Account{}, ErrUnauthenticated
	}
	return account, nil
}
