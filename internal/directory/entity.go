package directory

import "github.com/microsoftgraph/msgraph-sdk-go/models"

// Summary shapes returned by directory lookups. All fields carry omitempty so
// absent directory attributes disappear from the JSON output instead of
// rendering as null.

// User is a trimmed Entra ID user record.
type User struct {
	ID                string `json:"id,omitempty"`
	DisplayName       string `json:"displayName,omitempty"`
	UserPrincipalName string `json:"userPrincipalName,omitempty"`
	Mail              string `json:"mail,omitempty"`
	JobTitle          string `json:"jobTitle,omitempty"`
	Department        string `json:"department,omitempty"`
	OfficeLocation    string `json:"officeLocation,omitempty"`
	MobilePhone       string `json:"mobilePhone,omitempty"`
	AccountEnabled    *bool  `json:"accountEnabled,omitempty"`
}

// Group is a trimmed Entra ID group record.
type Group struct {
	ID              string   `json:"id,omitempty"`
	DisplayName     string   `json:"displayName,omitempty"`
	Description     string   `json:"description,omitempty"`
	Mail            string   `json:"mail,omitempty"`
	MailNickname    string   `json:"mailNickname,omitempty"`
	SecurityEnabled *bool    `json:"securityEnabled,omitempty"`
	GroupTypes      []string `json:"groupTypes,omitempty"`
}

// ServicePrincipal is a trimmed Entra ID service principal record.
type ServicePrincipal struct {
	ID                   string `json:"id,omitempty"`
	AppID                string `json:"appId,omitempty"`
	DisplayName          string `json:"displayName,omitempty"`
	ServicePrincipalType string `json:"servicePrincipalType,omitempty"`
	AccountEnabled       *bool  `json:"accountEnabled,omitempty"`
}

// Application is a trimmed Entra ID application registration record.
type Application struct {
	ID              string `json:"id,omitempty"`
	AppID           string `json:"appId,omitempty"`
	DisplayName     string `json:"displayName,omitempty"`
	SignInAudience  string `json:"signInAudience,omitempty"`
	PublisherDomain string `json:"publisherDomain,omitempty"`
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func userSummary(u models.Userable) *User {
	return &User{
		ID:                strVal(u.GetId()),
		DisplayName:       strVal(u.GetDisplayName()),
		UserPrincipalName: strVal(u.GetUserPrincipalName()),
		Mail:              strVal(u.GetMail()),
		JobTitle:          strVal(u.GetJobTitle()),
		Department:        strVal(u.GetDepartment()),
		OfficeLocation:    strVal(u.GetOfficeLocation()),
		MobilePhone:       strVal(u.GetMobilePhone()),
		AccountEnabled:    u.GetAccountEnabled(),
	}
}

func groupSummary(g models.Groupable) *Group {
	return &Group{
		ID:              strVal(g.GetId()),
		DisplayName:     strVal(g.GetDisplayName()),
		Description:     strVal(g.GetDescription()),
		Mail:            strVal(g.GetMail()),
		MailNickname:    strVal(g.GetMailNickname()),
		SecurityEnabled: g.GetSecurityEnabled(),
		GroupTypes:      g.GetGroupTypes(),
	}
}

func servicePrincipalSummary(sp models.ServicePrincipalable) *ServicePrincipal {
	return &ServicePrincipal{
		ID:                   strVal(sp.GetId()),
		AppID:                strVal(sp.GetAppId()),
		DisplayName:          strVal(sp.GetDisplayName()),
		ServicePrincipalType: strVal(sp.GetServicePrincipalType()),
		AccountEnabled:       sp.GetAccountEnabled(),
	}
}

func applicationSummary(app models.Applicationable) *Application {
	return &Application{
		ID:              strVal(app.GetId()),
		AppID:           strVal(app.GetAppId()),
		DisplayName:     strVal(app.GetDisplayName()),
		SignInAudience:  strVal(app.GetSignInAudience()),
		PublisherDomain: strVal(app.GetPublisherDomain()),
	}
}
