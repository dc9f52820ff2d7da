// Package armid parses Azure Resource Manager resource IDs.
//
// A resource ID is a scope followed by a provider block:
//
//	{scope}/providers/{namespace}/{type}/{name}[/{type}/{name}...]
//
// The scope is empty (tenant), a subscription, a resource group, or any
// other resource ID for extension resources. A provider block with as many
// names as types addresses one resource; one name short addresses the
// collection of that type under its parent.
package armid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidID is returned when a path is not a resource ID.
var ErrInvalidID = errors.New("invalid resource id")

const (
	segSubscriptions  = "subscriptions"
	segResourceGroups = "resourceGroups"
	segProviders      = "providers"
)

// ID is a parsed resource or collection ID.
type ID struct {
	// Scope is everything before the last provider block, e.g.
	// "/subscriptions/{sub}/resourceGroups/{rg}". Empty for tenant scope.
	Scope string

	// SubscriptionID is the subscription the ID lives under, if any.
	SubscriptionID string

	// ResourceGroup is the resource group the ID lives under, if any.
	ResourceGroup string

	// Namespace is the resource provider, e.g. "Microsoft.Cache".
	Namespace string

	// Types are the type segments of the provider block.
	Types []string

	// Names are the name segments. len(Names) is len(Types) for a
	// resource and len(Types)-1 for a collection.
	Names []string
}

// Parse parses a URL path into an ID.
func Parse(path string) (*ID, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidID)
	}
	segs := strings.Split(trimmed, "/")
	for _, s := range segs {
		if s == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidID, path)
		}
	}

	id := &ID{}
	i := 0
	if strings.EqualFold(segs[0], segSubscriptions) {
		if len(segs) < 2 {
			return nil, fmt.Errorf("%w: missing subscription id", ErrInvalidID)
		}
		id.SubscriptionID = segs[1]
		i = 2
		if i < len(segs) && strings.EqualFold(segs[i], segResourceGroups) {
			if i+1 >= len(segs) {
				return nil, fmt.Errorf("%w: missing resource group name", ErrInvalidID)
			}
			id.ResourceGroup = segs[i+1]
			i += 2
		}
	}

	for {
		if i >= len(segs) || !strings.EqualFold(segs[i], segProviders) || i+1 >= len(segs) {
			return nil, fmt.Errorf("%w: expected provider block in %q", ErrInvalidID, path)
		}
		namespace := segs[i+1]
		j := i + 2

		var types, names []string
		for j < len(segs) {
			if len(types) > 0 && strings.EqualFold(segs[j], segProviders) && j+1 < len(segs) {
				break
			}
			types = append(types, segs[j])
			j++
			if j < len(segs) {
				names = append(names, segs[j])
				j++
			}
		}

		if j == len(segs) {
			if len(types) == 0 {
				return nil, fmt.Errorf("%w: missing resource type in %q", ErrInvalidID, path)
			}
			if i > 0 {
				id.Scope = "/" + strings.Join(segs[:i], "/")
			}
			id.Namespace = namespace
			id.Types = types
			id.Names = names
			return id, nil
		}
		i = j
	}
}

// IsCollection reports whether the ID names a collection.
func (id *ID) IsCollection() bool {
	return len(id.Names) < len(id.Types)
}

// ResourceType returns "{namespace}/{type}[/{type}...]".
func (id *ID) ResourceType() string {
	return id.Namespace + "/" + strings.Join(id.Types, "/")
}

// Name returns the last name segment of a resource ID.
func (id *ID) Name() string {
	if id.IsCollection() || len(id.Names) == 0 {
		return ""
	}
	return id.Names[len(id.Names)-1]
}

// String returns the canonical form of the ID.
func (id *ID) String() string {
	var b strings.Builder
	b.WriteString(id.Scope)
	b.WriteString("/providers/")
	b.WriteString(id.Namespace)
	for i, t := range id.Types {
		b.WriteByte('/')
		b.WriteString(t)
		if i < len(id.Names) {
			b.WriteByte('/')
			b.WriteString(id.Names[i])
		}
	}
	return b.String()
}

// Key returns the case-insensitive lookup key of the ID.
func (id *ID) Key() string {
	return strings.ToLower(id.String())
}

// ParentKey returns the lookup key of the resource that owns the ID.
// Top-level resources are owned by their scope.
func (id *ID) ParentKey() string {
	if parent := id.Parent(); parent != nil {
		return parent.Key()
	}
	return strings.ToLower(id.Scope)
}

// Parent returns the ID of the owning resource, or nil for top-level IDs.
func (id *ID) Parent() *ID {
	if len(id.Types) <= 1 {
		return nil
	}
	parent := id.clone()
	parent.Types = parent.Types[:len(parent.Types)-1]
	parent.Names = parent.Names[:len(parent.Types)]
	return parent
}

// Collection returns the collection ID a resource belongs to.
func (id *ID) Collection() *ID {
	c := id.clone()
	if !c.IsCollection() {
		c.Names = c.Names[:len(c.Names)-1]
	}
	return c
}

// Child returns the ID of a child resource.
func (id *ID) Child(resourceType, name string) *ID {
	c := id.clone()
	c.Types = append(c.Types, resourceType)
	c.Names = append(c.Names, name)
	return c
}

// SplitAction splits a collection-shaped ID into the resource it targets
// and the trailing action segment. POST .../clusters/c1/stop parses as a
// collection whose last type is the action name.
func (id *ID) SplitAction() (*ID, string, bool) {
	if !id.IsCollection() {
		return nil, "", false
	}
	target := id.clone()
	action := target.Types[len(target.Types)-1]
	target.Types = target.Types[:len(target.Types)-1]
	return target, action, true
}

// IsSubscriptionScope reports whether the ID sits directly under a
// subscription with no resource group.
func (id *ID) IsSubscriptionScope() bool {
	return id.SubscriptionID != "" && id.ResourceGroup == "" &&
		strings.EqualFold(id.Scope, "/subscriptions/"+id.SubscriptionID)
}

// IsTenantScope reports whether the ID has no scope at all.
func (id *ID) IsTenantScope() bool {
	return id.Scope == ""
}

// IsLocation reports whether the first provider segment pair is
// locations/{location}, which providers use for region-level actions.
func (id *ID) IsLocation() bool {
	return len(id.Types) > 0 && strings.EqualFold(id.Types[0], "locations")
}

func (id *ID) clone() *ID {
	c := *id
	c.Types = append([]string(nil), id.Types...)
	c.Names = append([]string(nil), id.Names...)
	return &c
}
