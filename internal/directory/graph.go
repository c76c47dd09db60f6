// Package directory resolves free-text identifiers against Microsoft Entra ID
// through the Microsoft Graph API. Lookups try a direct by-key fetch first and
// fall back to a starts-with filter search only when the key does not exist.
package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	abstractions "github.com/microsoft/kiota-abstractions-go"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	graphapps "github.com/microsoftgraph/msgraph-sdk-go/applications"
	graphgroups "github.com/microsoftgraph/msgraph-sdk-go/groups"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/models/odataerrors"
	graphsps "github.com/microsoftgraph/msgraph-sdk-go/serviceprincipals"
	graphusers "github.com/microsoftgraph/msgraph-sdk-go/users"

	"github.com/stackbridge/entrasql/internal/identity"
)

// ErrNotFound indicates the directory object does not exist (Graph 404).
// Every other Graph failure propagates as-is so outages are never mistaken
// for empty results.
var ErrNotFound = errors.New("directory object not found")

// API is the Graph surface the lookup service needs. Tests substitute fakes.
type API interface {
	UserByID(ctx context.Context, id string) (*User, error)
	SearchUsers(ctx context.Context, query string) ([]User, error)
	GroupByID(ctx context.Context, id string) (*Group, error)
	SearchGroups(ctx context.Context, query string) ([]Group, error)
	SearchServicePrincipals(ctx context.Context, query string) ([]ServicePrincipal, error)
	SearchApplications(ctx context.Context, query string) ([]Application, error)
	ManagerOf(ctx context.Context, userID string) (*User, error)
}

// GraphClient implements API over the Microsoft Graph SDK. The underlying
// client is built lazily on first use and shared for the life of the process;
// sync.Once keeps concurrent first calls from racing the construction.
type GraphClient struct {
	chain *identity.Chain
	scope string

	once    sync.Once
	client  *msgraphsdk.GraphServiceClient
	initErr error
}

var _ API = (*GraphClient)(nil)

// NewGraphClient builds a lazily-initialized Graph adapter. scope is the
// Graph permission scope, normally "https://graph.microsoft.com/.default".
func NewGraphClient(chain *identity.Chain, scope string) *GraphClient {
	return &GraphClient{chain: chain, scope: scope}
}

func (g *GraphClient) graph() (*msgraphsdk.GraphServiceClient, error) {
	g.once.Do(func() {
		cred, err := g.chain.Credential()
		if err != nil {
			g.initErr = err
			return
		}
		g.client, g.initErr = msgraphsdk.NewGraphServiceClientWithCredentials(cred, []string{g.scope})
		if g.initErr != nil {
			g.initErr = fmt.Errorf("build graph client: %w", g.initErr)
		}
	})
	return g.client, g.initErr
}

// mapGraphError converts Graph 404s to ErrNotFound and leaves everything
// else untouched.
func mapGraphError(err error) error {
	var odataErr *odataerrors.ODataError
	if errors.As(err, &odataErr) && odataErr.ResponseStatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return err
}

// eventualConsistency returns the headers advanced filter queries require.
func eventualConsistency() *abstractions.RequestHeaders {
	headers := abstractions.NewRequestHeaders()
	headers.Add("ConsistencyLevel", "eventual")
	return headers
}

// UserByID fetches a user by object ID or userPrincipalName.
func (g *GraphClient) UserByID(ctx context.Context, id string) (*User, error) {
	client, err := g.graph()
	if err != nil {
		return nil, err
	}
	u, err := client.Users().ByUserId(id).Get(ctx, nil)
	if err != nil {
		return nil, mapGraphError(err)
	}
	return userSummary(u), nil
}

// SearchUsers lists users whose display name, UPN or mail starts with query.
func (g *GraphClient) SearchUsers(ctx context.Context, query string) ([]User, error) {
	client, err := g.graph()
	if err != nil {
		return nil, err
	}
	filter := userSearchFilter(query)
	count := true
	resp, err := client.Users().Get(ctx, &graphusers.UsersRequestBuilderGetRequestConfiguration{
		Headers: eventualConsistency(),
		QueryParameters: &graphusers.UsersRequestBuilderGetQueryParameters{
			Filter: &filter,
			Count:  &count,
		},
	})
	if err != nil {
		return nil, mapGraphError(err)
	}
	users := make([]User, 0, len(resp.GetValue()))
	for _, u := range resp.GetValue() {
		users = append(users, *userSummary(u))
	}
	return users, nil
}

// GroupByID fetches a group by object ID.
func (g *GraphClient) GroupByID(ctx context.Context, id string) (*Group, error) {
	client, err := g.graph()
	if err != nil {
		return nil, err
	}
	grp, err := client.Groups().ByGroupId(id).Get(ctx, nil)
	if err != nil {
		return nil, mapGraphError(err)
	}
	return groupSummary(grp), nil
}

// SearchGroups lists groups whose display name or mail starts with query.
func (g *GraphClient) SearchGroups(ctx context.Context, query string) ([]Group, error) {
	client, err := g.graph()
	if err != nil {
		return nil, err
	}
	filter := groupSearchFilter(query)
	count := true
	resp, err := client.Groups().Get(ctx, &graphgroups.GroupsRequestBuilderGetRequestConfiguration{
		Headers: eventualConsistency(),
		QueryParameters: &graphgroups.GroupsRequestBuilderGetQueryParameters{
			Filter: &filter,
			Count:  &count,
		},
	})
	if err != nil {
		return nil, mapGraphError(err)
	}
	groups := make([]Group, 0, len(resp.GetValue()))
	for _, grp := range resp.GetValue() {
		groups = append(groups, *groupSummary(grp))
	}
	return groups, nil
}

// SearchServicePrincipals lists service principals matching the appId exactly
// or whose display name starts with query. There is no direct-by-key variant:
// service principal lookups always go through the filter.
func (g *GraphClient) SearchServicePrincipals(ctx context.Context, query string) ([]ServicePrincipal, error) {
	client, err := g.graph()
	if err != nil {
		return nil, err
	}
	filter := appSearchFilter(query)
	count := true
	resp, err := client.ServicePrincipals().Get(ctx, &graphsps.ServicePrincipalsRequestBuilderGetRequestConfiguration{
		Headers: eventualConsistency(),
		QueryParameters: &graphsps.ServicePrincipalsRequestBuilderGetQueryParameters{
			Filter: &filter,
			Count:  &count,
		},
	})
	if err != nil {
		return nil, mapGraphError(err)
	}
	sps := make([]ServicePrincipal, 0, len(resp.GetValue()))
	for _, sp := range resp.GetValue() {
		sps = append(sps, *servicePrincipalSummary(sp))
	}
	return sps, nil
}

// SearchApplications lists app registrations matching the appId exactly or
// whose display name starts with query.
func (g *GraphClient) SearchApplications(ctx context.Context, query string) ([]Application, error) {
	client, err := g.graph()
	if err != nil {
		return nil, err
	}
	filter := appSearchFilter(query)
	count := true
	resp, err := client.Applications().Get(ctx, &graphapps.ApplicationsRequestBuilderGetRequestConfiguration{
		Headers: eventualConsistency(),
		QueryParameters: &graphapps.ApplicationsRequestBuilderGetQueryParameters{
			Filter: &filter,
			Count:  &count,
		},
	})
	if err != nil {
		return nil, mapGraphError(err)
	}
	apps := make([]Application, 0, len(resp.GetValue()))
	for _, app := range resp.GetValue() {
		apps = append(apps, *applicationSummary(app))
	}
	return apps, nil
}

// ManagerOf fetches the manager relationship of one user.
// Returns ErrNotFound when the user has no manager assigned.
func (g *GraphClient) ManagerOf(ctx context.Context, userID string) (*User, error) {
	client, err := g.graph()
	if err != nil {
		return nil, err
	}
	obj, err := client.Users().ByUserId(userID).Manager().Get(ctx, nil)
	if err != nil {
		return nil, mapGraphError(err)
	}
	if u, ok := obj.(models.Userable); ok {
		return userSummary(u), nil
	}
	// Managers are users in practice; fall back to the bare object ID.
	return &User{ID: strVal(obj.GetId())}, nil
}
