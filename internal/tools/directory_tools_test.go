package tools_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbridge/entrasql/internal/directory"
	"github.com/stackbridge/entrasql/internal/tools"
)

// fakeDirectory returns canned lookup results.
type fakeDirectory struct {
	userExact   *directory.User
	userMatches []directory.User
	userErr     error

	groupExact   *directory.Group
	groupMatches []directory.Group
	groupErr     error

	sps    []directory.ServicePrincipal
	spErr  error
	apps   []directory.Application
	appErr error

	resolved *directory.User
	manager  *directory.User
	mgrErr   error
}

func (f *fakeDirectory) LookupUser(_ context.Context, q string) (*directory.User, []directory.User, error) {
	return f.userExact, f.userMatches, f.userErr
}

func (f *fakeDirectory) LookupGroup(_ context.Context, q string) (*directory.Group, []directory.Group, error) {
	return f.groupExact, f.groupMatches, f.groupErr
}

func (f *fakeDirectory) LookupServicePrincipals(_ context.Context, q string) ([]directory.ServicePrincipal, error) {
	return f.sps, f.spErr
}

func (f *fakeDirectory) LookupApplications(_ context.Context, q string) ([]directory.Application, error) {
	return f.apps, f.appErr
}

func (f *fakeDirectory) UserManager(_ context.Context, q string) (*directory.User, *directory.User, error) {
	return f.resolved, f.manager, f.mgrErr
}

func dirDeps(dir tools.Directory) *tools.Dependencies {
	return &tools.Dependencies{
		Directory: dir,
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func TestLookupUserDirectHitReturnsSingleObject(t *testing.T) {
	dir := &fakeDirectory{userExact: &directory.User{ID: "u1", DisplayName: "Ada Lovelace"}}
	h := tools.NewLookupUserHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.LookupUserInput{Query: "u1"})
	require.NoError(t, err)

	text := textOf(t, res)
	assert.Contains(t, text, `"displayName": "Ada Lovelace"`)
	assert.NotContains(t, text, "[", "direct hit serializes one object, not an array")
}

func TestLookupUserFallbackReturnsArray(t *testing.T) {
	dir := &fakeDirectory{userMatches: []directory.User{
		{ID: "u1", DisplayName: "Ada Lovelace"},
		{ID: "u9", DisplayName: "Adam Smith"},
	}}
	h := tools.NewLookupUserHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.LookupUserInput{Query: "ada"})
	require.NoError(t, err)

	text := textOf(t, res)
	assert.True(t, text[0] == '[', "fallback serializes an array")
	assert.Contains(t, text, "Adam Smith")
}

func TestLookupUserEmptyMatchesIsEmptyArray(t *testing.T) {
	dir := &fakeDirectory{userMatches: []directory.User{}}
	h := tools.NewLookupUserHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.LookupUserInput{Query: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, "[]", textOf(t, res))
}

func TestLookupUserOmitsNullFields(t *testing.T) {
	dir := &fakeDirectory{userExact: &directory.User{ID: "u1", DisplayName: "Ada Lovelace"}}
	h := tools.NewLookupUserHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.LookupUserInput{Query: "u1"})
	require.NoError(t, err)

	text := textOf(t, res)
	assert.NotContains(t, text, "mail", "absent directory fields are omitted entirely")
	assert.NotContains(t, text, "null")
}

func TestLookupUserError(t *testing.T) {
	dir := &fakeDirectory{userErr: errors.New("503 service unavailable")}
	h := tools.NewLookupUserHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.LookupUserInput{Query: "ada"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "Error looking up user: 503 service unavailable", textOf(t, res))
}

func TestLookupGroup(t *testing.T) {
	dir := &fakeDirectory{groupExact: &directory.Group{ID: "g1", DisplayName: "Engineering"}}
	h := tools.NewLookupGroupHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.LookupGroupInput{Query: "g1"})
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), `"displayName": "Engineering"`)
}

func TestLookupGroupError(t *testing.T) {
	dir := &fakeDirectory{groupErr: errors.New("timeout")}
	h := tools.NewLookupGroupHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.LookupGroupInput{Query: "eng"})
	require.NoError(t, err)
	assert.Equal(t, "Error looking up group: timeout", textOf(t, res))
}

func TestLookupServicePrincipal(t *testing.T) {
	dir := &fakeDirectory{sps: []directory.ServicePrincipal{
		{ID: "sp1", AppID: "11111111-2222-3333-4444-555555555555", DisplayName: "ci-deployer"},
	}}
	h := tools.NewLookupServicePrincipalHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.LookupServicePrincipalInput{Query: "ci"})
	require.NoError(t, err)

	text := textOf(t, res)
	assert.Contains(t, text, `"appId": "11111111-2222-3333-4444-555555555555"`)
}

func TestLookupApplicationError(t *testing.T) {
	dir := &fakeDirectory{appErr: errors.New("insufficient privileges")}
	h := tools.NewLookupApplicationHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.LookupApplicationInput{Query: "my-app"})
	require.NoError(t, err)
	assert.Equal(t, "Error looking up application: insufficient privileges", textOf(t, res))
}

func TestGetUserManager(t *testing.T) {
	dir := &fakeDirectory{
		resolved: &directory.User{ID: "u1", DisplayName: "Ada Lovelace"},
		manager:  &directory.User{ID: "u2", DisplayName: "Grace Hopper"},
	}
	h := tools.NewGetUserManagerHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.GetUserManagerInput{UserQuery: "ada"})
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), `"displayName": "Grace Hopper"`)
}

func TestGetUserManagerUserNotFound(t *testing.T) {
	dir := &fakeDirectory{}
	h := tools.NewGetUserManagerHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.GetUserManagerInput{UserQuery: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, "User 'nobody' not found.", textOf(t, res))
}

func TestGetUserManagerNoManagerUsesResolvedName(t *testing.T) {
	// The message names the resolved user, not the query string.
	dir := &fakeDirectory{resolved: &directory.User{ID: "u1", DisplayName: "Ada Lovelace"}}
	h := tools.NewGetUserManagerHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.GetUserManagerInput{UserQuery: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "No manager found for user 'Ada Lovelace'.", textOf(t, res))
}

func TestGetUserManagerError(t *testing.T) {
	dir := &fakeDirectory{mgrErr: errors.New("502 bad gateway")}
	h := tools.NewGetUserManagerHandler(dirDeps(dir))

	res, _, err := h(context.Background(), nil, tools.GetUserManagerInput{UserQuery: "ada"})
	require.NoError(t, err)
	assert.Equal(t, "Error getting user manager: 502 bad gateway", textOf(t, res))
}
