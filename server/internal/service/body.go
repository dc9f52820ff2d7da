package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/server/internal/armid"
)

const provisioningSucceeded = "Succeeded"

// object is a decoded JSON document.
type object = map[string]any

// decodeObject parses a request body into a JSON object. An empty body
// decodes to an empty object.
func decodeObject(body []byte) (object, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return object{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errorf(models.ErrInvalidRequest, "The request content was invalid and could not be deserialized: %v", err)
	}
	obj, ok := v.(object)
	if !ok {
		return nil, errorf(models.ErrInvalidRequest, "The request content must be a JSON object.")
	}
	return obj, nil
}

func encodeObject(obj object) ([]byte, error) {
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource: %w", err)
	}
	return body, nil
}

// newETag returns a fresh weak entity tag.
func newETag() string {
	return `W/"` + uuid.NewString() + `"`
}

// stamp writes the read-only envelope fields ARM owns into obj.
// previous is the stored document, or nil on create.
func stamp(obj object, id *armid.ID, previous object, identity string, now time.Time, etag string) {
	obj["id"] = id.String()
	obj["name"] = id.Name()
	obj["type"] = id.ResourceType()
	obj["etag"] = etag

	ts := now.UTC().Format(time.RFC3339Nano)
	systemData := object{
		"createdBy":          identity,
		"createdByType":      string(models.CreatedByTypeApplication),
		"createdAt":          ts,
		"lastModifiedBy":     identity,
		"lastModifiedByType": string(models.CreatedByTypeApplication),
		"lastModifiedAt":     ts,
	}
	if prev, ok := previous["systemData"].(object); ok {
		for _, k := range []string{"createdBy", "createdByType", "createdAt"} {
			if v, ok := prev[k]; ok {
				systemData[k] = v
			}
		}
	}
	obj["systemData"] = systemData

	props, ok := obj["properties"].(object)
	if !ok {
		props = object{}
		obj["properties"] = props
	}
	if _, ok := props["provisioningState"]; !ok {
		props["provisioningState"] = provisioningSucceeded
	}
}

// mergePatch applies an RFC 7396 JSON merge patch to target.
func mergePatch(target, patch any) any {
	patchObj, ok := patch.(object)
	if !ok {
		return patch
	}

	targetObj, ok := target.(object)
	if !ok {
		targetObj = object{}
	}
	for k, v := range patchObj {
		if v == nil {
			delete(targetObj, k)
			continue
		}
		targetObj[k] = mergePatch(targetObj[k], v)
	}
	return targetObj
}

// Preconditions are the conditional request headers of a write.
type Preconditions struct {
	IfMatch     string
	IfNoneMatch string
}

// check validates the preconditions against the stored entity tag.
// current is empty when the resource does not exist.
func (p Preconditions) check(exists bool, current string) error {
	if strings.TrimSpace(p.IfNoneMatch) == "*" && exists {
		return errorf(models.ErrPreconditionFailed, "The resource already exists and If-None-Match is '*'.")
	}

	ifMatch := strings.TrimSpace(p.IfMatch)
	if ifMatch == "" {
		return nil
	}
	if !exists {
		return errorf(models.ErrPreconditionFailed, "The resource does not exist and If-Match was supplied.")
	}
	if ifMatch == "*" {
		return nil
	}
	for _, candidate := range strings.Split(ifMatch, ",") {
		if sameETag(candidate, current) {
			return nil
		}
	}
	return errorf(models.ErrPreconditionFailed, "The If-Match value %s does not match the current entity tag %s.", ifMatch, current)
}

// sameETag compares entity tags weakly: the W/ prefix and quotes are ignored.
func sameETag(a, b string) bool {
	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "W/")
		return strings.Trim(s, `"`)
	}
	return norm(a) != "" && norm(a) == norm(b)
}
