package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/pkg/token"
	"github.com/yaroslav/azrest/server/internal/armid"
	"github.com/yaroslav/azrest/server/internal/logging"
	"github.com/yaroslav/azrest/server/internal/metrics"
	"github.com/yaroslav/azrest/server/internal/store"
)

// Action names handled by Invoke. Matching is case-insensitive.
const (
	ActionListKeys      = "listKeys"
	ActionRegenerateKey = "regenerateKey"
	ActionStart         = "start"
	ActionStop          = "stop"
	ActionRestart       = "restart"
	ActionGetConfig     = "getConfig"
	ActionImport        = "import"
	ActionExport        = "export"
	ActionCleanupData   = "cleanupData"
	ActionContinue      = "continue"
	ActionEnd           = "end"

	// checkNameSuffix matches checkNameAvailability and provider variants
	// such as kustoPoolCheckNameAvailability.
	checkNameSuffix = "checknameavailability"
)

// Power states written to properties.state.
const (
	StateRunning = "Running"
	StateStopped = "Stopped"
)

const (
	namespaceWebPubSub = "Microsoft.SignalRService"
	namespaceHelp      = "Microsoft.Help"
)

// ActionResult is the outcome of a POST action.
type ActionResult struct {
	// Status is the HTTP status code to return.
	Status int

	// Body is encoded as JSON when non-nil.
	Body any

	// OperationID is set for accepted long-running actions. The handler
	// turns it into Azure-AsyncOperation and Location headers.
	OperationID string
}

// OperationStatusID returns the resource ID of the status monitor for an
// accepted action.
func OperationStatusID(target *armid.ID, operationID string) string {
	return fmt.Sprintf("/subscriptions/%s/providers/%s/locations/global/operationStatuses/%s",
		target.SubscriptionID, target.Namespace, operationID)
}

// keysBody is the JSON shape of listKeys and regenerateKey.
type keysBody struct {
	PrimaryKey                string `json:"primaryKey"`
	SecondaryKey              string `json:"secondaryKey"`
	PrimaryConnectionString   string `json:"primaryConnectionString,omitempty"`
	SecondaryConnectionString string `json:"secondaryConnectionString,omitempty"`
}

type regenerateKeyRequest struct {
	KeyType string `json:"keyType"`
}

type checkNameRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type checkNameResponse struct {
	NameAvailable bool   `json:"nameAvailable"`
	Name          string `json:"name"`
	Reason        string `json:"reason,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Invoke runs the POST action addressed by id, a collection-shaped ID
// whose last type segment is the action name.
//
// Parameters:
//   - ctx: Context for cancellation
//   - id: parsed request path
//   - body: raw request body
//
// Returns:
//   - *ActionResult: status and body to return
//   - error: models.ErrActionNotSupported for unknown actions, models.ErrNotFound
//     when the target does not exist, models.ErrInvalidRequest for bad input
func (s *ResourceService) Invoke(ctx context.Context, id *armid.ID, body []byte) (res *ActionResult, err error) {
	target, action, ok := id.SplitAction()
	if !ok {
		return nil, errorf(models.ErrActionNotSupported, "The resource ID '%s' does not name an action.", id)
	}
	defer func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		metrics.ActionsTotal.WithLabelValues(strings.ToLower(action), result).Inc()
	}()

	logger := logging.FromContext(ctx).With(
		zap.String(logging.FieldAction, action),
		zap.String(logging.FieldResourceID, target.String()),
	)

	if strings.HasSuffix(strings.ToLower(action), checkNameSuffix) {
		return s.checkName(ctx, target, body)
	}

	// Every other action needs an existing target resource.
	if len(target.Types) == 0 || target.IsLocation() {
		return nil, errorf(models.ErrActionNotSupported, "The action '%s' is not supported on '%s'.", action, target)
	}
	current, err := s.store.Get(ctx, target.Key())
	if errors.Is(err, models.ErrNotFound) {
		return nil, notFound(target)
	}
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(action) {
	case strings.ToLower(ActionListKeys):
		keys, err := s.keys(ctx, target)
		if err != nil {
			return nil, err
		}
		return &ActionResult{Status: http.StatusOK, Body: keysFor(target, keys)}, nil

	case strings.ToLower(ActionRegenerateKey):
		keys, err := s.regenerate(ctx, target, body)
		if err != nil {
			return nil, err
		}
		logger.Info("access key regenerated")
		return &ActionResult{Status: http.StatusAccepted, Body: keysFor(target, keys), OperationID: uuid.NewString()}, nil

	case ActionStart:
		return s.setState(ctx, target, StateRunning)

	case ActionStop:
		return s.setState(ctx, target, StateStopped)

	case ActionRestart:
		if strings.EqualFold(target.Namespace, namespaceHelp) {
			return s.restartTroubleshooter(ctx, target, current)
		}
		return s.setState(ctx, target, StateRunning)

	case strings.ToLower(ActionGetConfig):
		sas := fmt.Sprintf("https://%s.blob.core.windows.net/uploads?sv=2018-03-28&sig=%s",
			strings.ToLower(target.Name()), token.Fingerprint(target.Key()))
		return &ActionResult{Status: http.StatusOK, Body: map[string]string{"publisherSasUri": sas}}, nil

	case ActionImport, ActionExport, strings.ToLower(ActionCleanupData):
		logger.Info("action accepted")
		return &ActionResult{Status: http.StatusAccepted, OperationID: uuid.NewString()}, nil

	case ActionContinue, ActionEnd:
		return &ActionResult{Status: http.StatusNoContent}, nil
	}

	return nil, errorf(models.ErrActionNotSupported, "The action '%s' is not supported by the resource type '%s'.", action, target.ResourceType())
}

// keys returns the stored keys of a resource, generating them on first use.
func (s *ResourceService) keys(ctx context.Context, target *armid.ID) (*store.Keys, error) {
	keys, err := s.store.GetKeys(ctx, target.Key())
	if err == nil {
		return keys, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	primary, err := token.Generate()
	if err != nil {
		return nil, err
	}
	secondary, err := token.Generate()
	if err != nil {
		return nil, err
	}
	keys = &store.Keys{Primary: primary, Secondary: secondary}
	if err := s.store.PutKeys(ctx, target.Key(), *keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// regenerate replaces one key. Salt is accepted and changes nothing the
// emulator exposes.
func (s *ResourceService) regenerate(ctx context.Context, target *armid.ID, body []byte) (*store.Keys, error) {
	var req regenerateKeyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, errorf(models.ErrInvalidRequest, "The request content was invalid and could not be deserialized: %v", err)
	}

	keys, err := s.keys(ctx, target)
	if err != nil {
		return nil, err
	}

	fresh, err := token.Generate()
	if err != nil {
		return nil, err
	}
	switch {
	case strings.EqualFold(req.KeyType, "Primary"):
		keys.Primary = fresh
	case strings.EqualFold(req.KeyType, "Secondary"):
		keys.Secondary = fresh
	case strings.EqualFold(req.KeyType, "Salt"):
		return keys, nil
	default:
		return nil, errorf(models.ErrInvalidRequest, "The key type '%s' is invalid. Expected Primary or Secondary.", req.KeyType)
	}

	if err := s.store.PutKeys(ctx, target.Key(), *keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func keysFor(target *armid.ID, keys *store.Keys) keysBody {
	out := keysBody{PrimaryKey: keys.Primary, SecondaryKey: keys.Secondary}
	if strings.EqualFold(target.Namespace, namespaceWebPubSub) {
		endpoint := "https://" + strings.ToLower(target.Name()) + ".webpubsub.azure.com"
		out.PrimaryConnectionString = connectionString(endpoint, keys.Primary)
		out.SecondaryConnectionString = connectionString(endpoint, keys.Secondary)
	}
	return out
}

func connectionString(endpoint, key string) string {
	return "Endpoint=" + endpoint + ";AccessKey=" + key + ";Version=1.0;"
}

// setState writes properties.state and accepts the action.
func (s *ResourceService) setState(ctx context.Context, target *armid.ID, state string) (*ActionResult, error) {
	_, _, err := s.store.Mutate(ctx, target.Key(), func(current *store.Document) (*store.Document, error) {
		if current == nil {
			return nil, notFound(target)
		}
		obj, err := decodeObject(current.Body)
		if err != nil {
			return nil, err
		}
		props, ok := obj["properties"].(object)
		if !ok {
			props = object{}
			obj["properties"] = props
		}
		props["state"] = state
		return s.document(target, obj, obj)
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("power state changed",
		zap.String(logging.FieldResourceID, target.String()),
		zap.String("state", state),
	)
	return &ActionResult{Status: http.StatusAccepted, OperationID: uuid.NewString()}, nil
}

// restartTroubleshooter copies a troubleshooter session under a new name.
func (s *ResourceService) restartTroubleshooter(ctx context.Context, target *armid.ID, current *store.Document) (*ActionResult, error) {
	obj, err := decodeObject(current.Body)
	if err != nil {
		return nil, err
	}
	delete(obj, "systemData")

	name := uuid.NewString()
	next := target.Collection()
	next.Names = append(next.Names, name)
	if _, _, err := s.store.Mutate(ctx, next.Key(), func(*store.Document) (*store.Document, error) {
		return s.document(next, obj, nil)
	}); err != nil {
		return nil, err
	}
	return &ActionResult{Status: http.StatusOK, Body: map[string]string{"troubleshooterResourceName": name}}, nil
}

// checkName answers a checkNameAvailability request. Location-level checks
// search the whole subscription; checks under a resource search its
// children; provider-level checks search the scope.
func (s *ResourceService) checkName(ctx context.Context, target *armid.ID, body []byte) (*ActionResult, error) {
	var req checkNameRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, errorf(models.ErrInvalidRequest, "The request content was invalid and could not be deserialized: %v", err)
	}

	resp := checkNameResponse{Name: req.Name, NameAvailable: true}
	if err := armid.ValidateName(req.Name); err != nil {
		resp.NameAvailable = false
		resp.Reason = "Invalid"
		resp.Message = fmt.Sprintf("The name '%s' is invalid: %v", req.Name, err)
		return &ActionResult{Status: http.StatusOK, Body: resp}, nil
	}

	var parentKey string
	switch {
	case len(target.Types) == 0:
		parentKey = strings.ToLower(target.Scope)
	case target.IsLocation():
	default:
		if _, err := s.store.Get(ctx, target.Key()); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil, notFound(target)
			}
			return nil, err
		}
		parentKey = target.Key()
	}

	taken, err := s.store.NameTaken(ctx, parentKey, target.SubscriptionID, req.Type, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		resp.NameAvailable = false
		resp.Reason = "AlreadyExists"
		resp.Message = fmt.Sprintf("The name '%s' is already in use.", req.Name)
	}
	return &ActionResult{Status: http.StatusOK, Body: resp}, nil
}

// operationStatus answers GET on an operationStatuses monitor. Actions
// complete synchronously, so every monitor reports success.
func operationStatus(id *armid.ID, now time.Time) (*Resource, bool) {
	if id.IsCollection() || len(id.Types) != 2 || !id.IsLocation() ||
		!strings.EqualFold(id.Types[1], "operationStatuses") {
		return nil, false
	}
	ts := now.UTC().Format(time.RFC3339Nano)
	body, _ := json.Marshal(map[string]string{
		"id":        id.String(),
		"name":      id.Name(),
		"status":    provisioningSucceeded,
		"startTime": ts,
		"endTime":   ts,
	})
	return &Resource{ID: id.String(), Body: body}, true
}
