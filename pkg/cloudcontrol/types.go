package cloudcontrol

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Account identifies the authenticated user and the organization that owns
// all of their resources. Accounts are immutable snapshots; the client caches
// at most one of them.
type Account struct {
	UserName       string    `json:"userName"       yaml:"userName"`
	FullName       string    `json:"fullName"       yaml:"fullName"`
	FirstName      string    `json:"firstName"      yaml:"firstName"`
	LastName       string    `json:"lastName"       yaml:"lastName"`
	EmailAddress   string    `json:"emailAddress"   yaml:"emailAddress"`
	Department     string    `json:"department"     yaml:"department"`
	OrganizationID uuid.UUID `json:"organizationId" yaml:"organizationId"`
}

// Network domain types.
const (
	NetworkDomainTypeEssentials = "ESSENTIALS"
	NetworkDomainTypeAdvanced   = "ADVANCED"
)

// Resource states reported by the API.
const (
	ResourceStateNormal        = "NORMAL"
	ResourceStatePendingAdd    = "PENDING_ADD"
	ResourceStatePendingChange = "PENDING_CHANGE"
	ResourceStatePendingDelete = "PENDING_DELETE"
)

// NetworkDomain is a datacenter-scoped network-isolation resource.
type NetworkDomain struct {
	ID              string    `json:"id"              yaml:"id"`
	Name            string    `json:"name"            yaml:"name"`
	Description     string    `json:"description"     yaml:"description"`
	Type            string    `json:"type"            yaml:"type"`
	SNATIPv4Address string    `json:"snatIpv4Address" yaml:"snatIpv4Address"`
	DatacenterID    string    `json:"datacenterId"    yaml:"datacenterId"`
	State           string    `json:"state"           yaml:"state"`
	CreateTime      time.Time `json:"createTime"      yaml:"createTime"`
}

// NetworkDomainPage is one page of network domains plus paging metadata as
// echoed by the server.
type NetworkDomainPage struct {
	Domains    []NetworkDomain `json:"networkDomain" yaml:"networkDomain"`
	PageNumber int             `json:"pageNumber"    yaml:"pageNumber"`
	PageCount  int             `json:"pageCount"     yaml:"pageCount"`
	TotalCount int             `json:"totalCount"    yaml:"totalCount"`
	PageSize   int             `json:"pageSize"      yaml:"pageSize"`
}

// DeployNetworkDomain is the request body for deploying a new network domain.
type DeployNetworkDomain struct {
	DatacenterID string `json:"datacenterId"          yaml:"datacenterId"`
	Name         string `json:"name"                  yaml:"name"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Type         string `json:"type"                  yaml:"type"`
}

// EntitySummary is a short reference to another resource (id and name only).
type EntitySummary struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// IPv4Range is a private IPv4 network expressed as base address plus prefix.
type IPv4Range struct {
	Address    string `json:"address"    yaml:"address"`
	PrefixSize int    `json:"prefixSize" yaml:"prefixSize"`
}

// Vlan is a virtual LAN deployed into a network domain.
type Vlan struct {
	ID               string        `json:"id"               yaml:"id"`
	Name             string        `json:"name"             yaml:"name"`
	Description      string        `json:"description"      yaml:"description"`
	NetworkDomain    EntitySummary `json:"networkDomain"    yaml:"networkDomain"`
	PrivateIPv4Range IPv4Range     `json:"privateIpv4Range" yaml:"privateIpv4Range"`
	DatacenterID     string        `json:"datacenterId"     yaml:"datacenterId"`
	State            string        `json:"state"            yaml:"state"`
	CreateTime       time.Time     `json:"createTime"       yaml:"createTime"`
}

// VlanPage is one page of VLANs plus paging metadata.
type VlanPage struct {
	Vlans      []Vlan `json:"vlan"       yaml:"vlan"`
	PageNumber int    `json:"pageNumber" yaml:"pageNumber"`
	PageCount  int    `json:"pageCount"  yaml:"pageCount"`
	TotalCount int    `json:"totalCount" yaml:"totalCount"`
	PageSize   int    `json:"pageSize"   yaml:"pageSize"`
}

// Paging is the caller-supplied page number and size for list operations.
// A nil *Paging sends no paging parameters, letting the server apply its
// default page size.
type Paging struct {
	PageNumber int
	PageSize   int
}

// ToValues renders the paging parameters as query values. Safe on nil.
func (p *Paging) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.PageNumber > 0 {
		values.Set("pageNumber", strconv.Itoa(p.PageNumber))
	}

	if p.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(p.PageSize))
	}

	return values
}
