package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/server/internal/armid"
	"github.com/yaroslav/azrest/server/internal/logging"
	"github.com/yaroslav/azrest/server/internal/metrics"
	"github.com/yaroslav/azrest/server/internal/store"
)

const (
	// DefaultIdentity is recorded in systemData for every write.
	DefaultIdentity = "azrest-emulator"

	// DefaultPageSize is used when a list request has no $top.
	DefaultPageSize = 50

	// MaxPageSize caps $top.
	MaxPageSize = 1000
)

// Resource is a stored document as returned to clients.
type Resource struct {
	// ID is the resource ID.
	ID string

	// Body is the JSON document.
	Body json.RawMessage

	// ETag is the current entity tag.
	ETag string
}

// Page is one page of a collection.
type Page struct {
	// Value holds the documents of this page.
	Value []json.RawMessage

	// SkipToken continues the listing; empty on the last page.
	SkipToken string
}

// ResourceService provides ARM resource operations.
//
// This service stamps the envelope fields ARM owns, enforces conditional
// requests and parent existence, and dispatches POST actions.
type ResourceService struct {
	store    *store.Store
	logger   *zap.Logger
	identity string
	now      func() time.Time
}

// NewResourceService creates a new ResourceService.
//
// Parameters:
//   - st: document store
//   - logger: Zap logger for structured logging
func NewResourceService(st *store.Store, logger *zap.Logger) *ResourceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceService{
		store:    st,
		logger:   logger,
		identity: DefaultIdentity,
		now:      time.Now,
	}
}

// Put creates or replaces a resource.
//
// Returns:
//   - the stored resource
//   - true when the resource was created, false when it was replaced
//   - models.ErrParentNotFound, models.ErrPreconditionFailed,
//     models.ErrInvalidRequest or models.ErrInvalidResourceName wrapped in *Error
func (s *ResourceService) Put(ctx context.Context, id *armid.ID, body []byte, pre Preconditions) (res *Resource, created bool, err error) {
	defer func() { s.record(id, "put", created, err) }()

	if id.IsCollection() {
		return nil, false, errorf(models.ErrInvalidResourceID, "The resource ID '%s' names a collection.", id)
	}
	if err := armid.ValidateName(id.Name()); err != nil {
		return nil, false, errorf(models.ErrInvalidResourceName, "The resource name '%s' is invalid: %v", id.Name(), err)
	}
	obj, err := decodeObject(body)
	if err != nil {
		return nil, false, err
	}
	if err := s.requireParent(ctx, id); err != nil {
		return nil, false, err
	}

	doc, created, err := s.store.Mutate(ctx, id.Key(), func(current *store.Document) (*store.Document, error) {
		var previous object
		if current != nil {
			var err error
			if previous, err = decodeObject(current.Body); err != nil {
				return nil, err
			}
		}
		if err := pre.check(current != nil, etagOf(current)); err != nil {
			return nil, err
		}
		return s.document(id, obj, previous)
	})
	if err != nil {
		return nil, false, err
	}

	logging.FromContext(ctx).Info("resource stored",
		zap.String(logging.FieldResourceID, doc.ID),
		zap.Bool("created", created),
	)
	return toResource(doc), created, nil
}

// Patch applies a JSON merge patch to an existing resource.
//
// Returns models.ErrNotFound when the resource does not exist.
func (s *ResourceService) Patch(ctx context.Context, id *armid.ID, body []byte, pre Preconditions) (res *Resource, err error) {
	defer func() { s.record(id, "patch", false, err) }()

	if id.IsCollection() {
		return nil, errorf(models.ErrInvalidResourceID, "The resource ID '%s' names a collection.", id)
	}
	patch, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	doc, _, err := s.store.Mutate(ctx, id.Key(), func(current *store.Document) (*store.Document, error) {
		if current == nil {
			return nil, notFound(id)
		}
		if err := pre.check(true, current.ETag); err != nil {
			return nil, err
		}
		previous, err := decodeObject(current.Body)
		if err != nil {
			return nil, err
		}
		merged := mergePatch(cloneObject(previous), patch).(object)
		return s.document(id, merged, previous)
	})
	if err != nil {
		return nil, err
	}
	return toResource(doc), nil
}

// Get returns one resource.
//
// Returns models.ErrNotFound when the resource does not exist.
func (s *ResourceService) Get(ctx context.Context, id *armid.ID) (res *Resource, err error) {
	defer func() { s.record(id, "get", false, err) }()

	if status, ok := operationStatus(id, s.now()); ok {
		return status, nil
	}

	doc, err := s.store.Get(ctx, id.Key())
	if errors.Is(err, models.ErrNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	return toResource(doc), nil
}

// List returns one page of a collection ordered by name.
//
// A top-level collection directly under a subscription lists every
// resource of that type in the subscription. Other collections list the
// children of their parent, which must exist.
func (s *ResourceService) List(ctx context.Context, id *armid.ID, top int, skipToken string) (page *Page, err error) {
	defer func() { s.record(id, "list", false, err) }()

	if !id.IsCollection() {
		return nil, errorf(models.ErrInvalidResourceID, "The resource ID '%s' does not name a collection.", id)
	}
	if top <= 0 {
		top = DefaultPageSize
	}
	if top > MaxPageSize {
		top = MaxPageSize
	}

	q := store.ListQuery{Type: id.ResourceType(), Limit: top}
	if skipToken != "" {
		raw, err := base64.RawURLEncoding.DecodeString(skipToken)
		if err != nil || len(raw) == 0 {
			return nil, errorf(models.ErrInvalidRequest, "The $skiptoken value '%s' is invalid.", skipToken)
		}
		// The token is the key of the last item; its final segment is the name.
		q.AfterKey = string(raw)
		q.After = q.AfterKey[strings.LastIndex(q.AfterKey, "/")+1:]
	}

	if id.IsSubscriptionScope() && len(id.Types) == 1 {
		q.SubscriptionID = id.SubscriptionID
	} else {
		if err := s.requireParent(ctx, id); err != nil {
			return nil, err
		}
		q.ParentKey = id.ParentKey()
	}

	docs, more, err := s.store.List(ctx, q)
	if err != nil {
		return nil, err
	}

	page = &Page{Value: make([]json.RawMessage, 0, len(docs))}
	for _, d := range docs {
		page.Value = append(page.Value, json.RawMessage(d.Body))
	}
	if more {
		page.SkipToken = base64.RawURLEncoding.EncodeToString([]byte(docs[len(docs)-1].Key()))
	}
	return page, nil
}

// Delete removes a resource and everything nested below it.
// It reports whether the resource existed.
func (s *ResourceService) Delete(ctx context.Context, id *armid.ID) (deleted bool, err error) {
	defer func() { s.record(id, "delete", false, err) }()

	if id.IsCollection() {
		return false, errorf(models.ErrInvalidResourceID, "The resource ID '%s' names a collection.", id)
	}
	deleted, err = s.store.Delete(ctx, id.Key())
	if err != nil {
		return false, err
	}
	if deleted {
		logging.FromContext(ctx).Info("resource deleted", zap.String(logging.FieldResourceID, id.String()))
	}
	return deleted, nil
}

// document builds the stored form of obj with the envelope stamped.
func (s *ResourceService) document(id *armid.ID, obj, previous object) (*store.Document, error) {
	etag := newETag()
	stamp(obj, id, previous, s.identity, s.now(), etag)

	body, err := encodeObject(obj)
	if err != nil {
		return nil, err
	}
	return &store.Document{
		ID:             id.String(),
		ParentKey:      id.ParentKey(),
		SubscriptionID: id.SubscriptionID,
		Type:           id.ResourceType(),
		Name:           id.Name(),
		Body:           body,
		ETag:           etag,
	}, nil
}

// requireParent checks that the resource owning id exists. Scopes are not
// tracked, so top-level and extension resources always pass.
func (s *ResourceService) requireParent(ctx context.Context, id *armid.ID) error {
	parent := id.Parent()
	if parent == nil || parent.IsLocation() {
		return nil
	}
	if _, err := s.store.Get(ctx, parent.Key()); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return errorf(models.ErrParentNotFound, "Can not perform requested operation on nested resource. Parent resource '%s' not found.", parent.Name())
		}
		return err
	}
	return nil
}

// record updates the operation counter for one call.
func (s *ResourceService) record(id *armid.ID, operation string, created bool, err error) {
	result := "success"
	switch {
	case err != nil:
		result = "error"
	case created:
		result = "created"
	}
	metrics.ResourceOperations.WithLabelValues(id.ResourceType(), operation, result).Inc()
}

func notFound(id *armid.ID) error {
	if id.ResourceGroup != "" {
		return errorf(models.ErrNotFound, "The Resource '%s/%s' under resource group '%s' was not found.",
			id.ResourceType(), id.Name(), id.ResourceGroup)
	}
	return errorf(models.ErrNotFound, "The Resource '%s/%s' was not found.", id.ResourceType(), id.Name())
}

func toResource(doc *store.Document) *Resource {
	return &Resource{ID: doc.ID, Body: json.RawMessage(doc.Body), ETag: doc.ETag}
}

func etagOf(doc *store.Document) string {
	if doc == nil {
		return ""
	}
	return doc.ETag
}

// cloneObject deep-copies a decoded JSON object.
func cloneObject(obj object) object {
	out := make(object, len(obj))
	for k, v := range obj {
		if nested, ok := v.(object); ok {
			out[k] = cloneObject(nested)
			continue
		}
		out[k] = v
	}
	return out
}
