// Package identity provides bearer tokens from the default Azure credential chain.
package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// TokenSource yields a bearer token for one fixed resource scope.
// Implementations must be safe for concurrent use.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Chain wraps DefaultAzureCredential (env vars, workload identity, managed
// identity, Azure CLI). The credential is built lazily on first use so the
// server can start on machines without ambient Azure credentials; sync.Once
// makes concurrent first use safe.
type Chain struct {
	once sync.Once
	cred azcore.TokenCredential
	err  error
}

// NewChain returns a chain that builds DefaultAzureCredential on first use.
func NewChain() *Chain {
	return &Chain{}
}

// NewChainWithCredential returns a chain backed by an explicit credential.
// Used by tests to substitute a fake.
func NewChainWithCredential(cred azcore.TokenCredential) *Chain {
	c := &Chain{cred: cred}
	c.once.Do(func() {})
	return c
}

// Credential returns the shared credential, building it if necessary.
func (c *Chain) Credential() (azcore.TokenCredential, error) {
	c.once.Do(func() {
		c.cred, c.err = azidentity.NewDefaultAzureCredential(nil)
		if c.err != nil {
			c.err = fmt.Errorf("build default azure credential: %w", c.err)
		}
	})
	return c.cred, c.err
}

// Scoped returns a TokenSource bound to a single resource scope,
// e.g. "https://database.windows.net/.default".
func (c *Chain) Scoped(scope string) TokenSource {
	return &scopedSource{chain: c, scope: scope}
}

type scopedSource struct {
	chain *Chain
	scope string
}

// Token fetches a fresh access token for the source's scope. The credential
// chain caches/refreshes internally; callers treat every call as a fresh
// acquisition.
func (s *scopedSource) Token(ctx context.Context) (string, error) {
	cred, err := s.chain.Credential()
	if err != nil {
		return "", err
	}
	tok, err := cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{s.scope},
	})
	if err != nil {
		return "", fmt.Errorf("acquire token for %s: %w", s.scope, err)
	}
	return tok.Token, nil
}
