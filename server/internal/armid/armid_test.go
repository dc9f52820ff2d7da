package armid

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const (
	sub   = "/subscriptions/00000000-0000-0000-0000-000000000001"
	rg    = sub + "/resourceGroups/rg1"
	redis = rg + "/providers/Microsoft.Cache/redisEnterprise/cache1"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantScope  string
		wantSub    string
		wantRG     string
		wantNS     string
		wantTypes  []string
		wantNames  []string
		collection bool
	}{
		{
			name:      "tracked resource",
			path:      redis,
			wantScope: rg,
			wantSub:   "00000000-0000-0000-0000-000000000001",
			wantRG:    "rg1",
			wantNS:    "Microsoft.Cache",
			wantTypes: []string{"redisEnterprise"},
			wantNames: []string{"cache1"},
		},
		{
			name:       "nested collection",
			path:       redis + "/databases",
			wantScope:  rg,
			wantSub:    "00000000-0000-0000-0000-000000000001",
			wantRG:     "rg1",
			wantNS:     "Microsoft.Cache",
			wantTypes:  []string{"redisEnterprise", "databases"},
			wantNames:  []string{"cache1"},
			collection: true,
		},
		{
			name:       "subscription collection",
			path:       sub + "/providers/Microsoft.Kusto/clusters",
			wantScope:  sub,
			wantSub:    "00000000-0000-0000-0000-000000000001",
			wantNS:     "Microsoft.Kusto",
			wantTypes:  []string{"clusters"},
			wantNames:  nil,
			collection: true,
		},
		{
			name:       "tenant operations",
			path:       "/providers/Microsoft.Help/operations",
			wantNS:     "Microsoft.Help",
			wantTypes:  []string{"operations"},
			wantNames:  nil,
			collection: true,
		},
		{
			name:      "extension resource",
			path:      redis + "/providers/Microsoft.Authorization/roleAssignments/ra1",
			wantScope: redis,
			wantSub:   "00000000-0000-0000-0000-000000000001",
			wantRG:    "rg1",
			wantNS:    "Microsoft.Authorization",
			wantTypes: []string{"roleAssignments"},
			wantNames: []string{"ra1"},
		},
		{
			name:      "trailing slash and case",
			path:      "/SUBSCRIPTIONS/s1/RESOURCEGROUPS/rg/PROVIDERS/Microsoft.Kusto/clusters/c1/",
			wantScope: "/SUBSCRIPTIONS/s1/RESOURCEGROUPS/rg",
			wantSub:   "s1",
			wantRG:    "rg",
			wantNS:    "Microsoft.Kusto",
			wantTypes: []string{"clusters"},
			wantNames: []string{"c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.path, err)
			}
			if id.Scope != tt.wantScope {
				t.Errorf("Scope = %q, want %q", id.Scope, tt.wantScope)
			}
			if id.SubscriptionID != tt.wantSub {
				t.Errorf("SubscriptionID = %q, want %q", id.SubscriptionID, tt.wantSub)
			}
			if id.ResourceGroup != tt.wantRG {
				t.Errorf("ResourceGroup = %q, want %q", id.ResourceGroup, tt.wantRG)
			}
			if id.Namespace != tt.wantNS {
				t.Errorf("Namespace = %q, want %q", id.Namespace, tt.wantNS)
			}
			if !reflect.DeepEqual(id.Types, tt.wantTypes) {
				t.Errorf("Types = %v, want %v", id.Types, tt.wantTypes)
			}
			if !reflect.DeepEqual(id.Names, tt.wantNames) {
				t.Errorf("Names = %v, want %v", id.Names, tt.wantNames)
			}
			if id.IsCollection() != tt.collection {
				t.Errorf("IsCollection() = %v, want %v", id.IsCollection(), tt.collection)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	paths := []string{
		"",
		"/",
		"/subscriptions",
		"/subscriptions/s1",
		"/subscriptions/s1/resourceGroups",
		"/subscriptions/s1/resourceGroups/rg",
		"/subscriptions/s1/providers",
		"/subscriptions/s1/providers/Microsoft.Kusto",
		"/subscriptions//providers/Microsoft.Kusto/clusters",
		"/foo/bar",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			if _, err := Parse(path); !errors.Is(err, ErrInvalidID) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidID", path, err)
			}
		})
	}
}

func TestID_Derived(t *testing.T) {
	id, err := Parse(redis + "/databases/default")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := id.ResourceType(); got != "Microsoft.Cache/redisEnterprise/databases" {
		t.Errorf("ResourceType() = %q", got)
	}
	if got := id.Name(); got != "default" {
		t.Errorf("Name() = %q", got)
	}
	if got := id.String(); got != redis+"/databases/default" {
		t.Errorf("String() = %q", got)
	}
	if got := id.Key(); got != strings.ToLower(redis+"/databases/default") {
		t.Errorf("Key() = %q", got)
	}
	if got := id.ParentKey(); got != strings.ToLower(redis) {
		t.Errorf("ParentKey() = %q", got)
	}
	if got := id.Parent().String(); got != redis {
		t.Errorf("Parent() = %q", got)
	}
	if got := id.Collection().String(); got != redis+"/databases" {
		t.Errorf("Collection() = %q", got)
	}

	top, _ := Parse(redis)
	if top.Parent() != nil {
		t.Error("Parent() of a top-level resource should be nil")
	}
	if got := top.ParentKey(); got != strings.ToLower(rg) {
		t.Errorf("top-level ParentKey() = %q, want %q", got, strings.ToLower(rg))
	}
	if got := top.Child("databases", "db2").String(); got != redis+"/databases/db2" {
		t.Errorf("Child() = %q", got)
	}
}

func TestID_SplitAction(t *testing.T) {
	tests := []struct {
		path       string
		wantTarget string
		wantAction string
		wantOK     bool
	}{
		{redis + "/databases/default/listKeys", redis + "/databases/default", "listKeys", true},
		{sub + "/providers/Microsoft.Kusto/locations/westus/checkNameAvailability", sub + "/providers/Microsoft.Kusto/locations/westus", "checkNameAvailability", true},
		{redis, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			id, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			target, action, ok := id.SplitAction()
			if ok != tt.wantOK {
				t.Fatalf("SplitAction() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if target.String() != tt.wantTarget {
				t.Errorf("target = %q, want %q", target.String(), tt.wantTarget)
			}
			if action != tt.wantAction {
				t.Errorf("action = %q, want %q", action, tt.wantAction)
			}
		})
	}
}

func TestID_Scopes(t *testing.T) {
	subID, _ := Parse(sub + "/providers/Microsoft.SignalRService/locations/eastus")
	if !subID.IsSubscriptionScope() {
		t.Error("expected subscription scope")
	}
	if !subID.IsLocation() {
		t.Error("expected location")
	}

	rgID, _ := Parse(redis)
	if rgID.IsSubscriptionScope() || rgID.IsTenantScope() {
		t.Error("resource group ID reported as subscription or tenant scope")
	}

	tenant, _ := Parse("/providers/Microsoft.BillingBenefits/savingsPlanOrders/o1")
	if !tenant.IsTenantScope() {
		t.Error("expected tenant scope")
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "cache1", false},
		{"dashes and dots", "my-cache.prod", false},
		{"max length", strings.Repeat("a", MaxNameLength), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxNameLength+1), true},
		{"slash", "a/b", true},
		{"percent", "a%b", true},
		{"question mark", "a?b", true},
		{"trailing period", "cache.", true},
		{"trailing space", "cache ", true},
		{"control character", "a\tb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("error %v does not wrap ErrInvalidName", err)
			}
		})
	}
}
