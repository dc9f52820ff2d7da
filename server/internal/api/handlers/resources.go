package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/server/internal/api/middleware"
	"github.com/yaroslav/azrest/server/internal/armid"
	"github.com/yaroslav/azrest/server/internal/service"
)

const (
	// maxBodyBytes caps request bodies; ARM rejects larger documents too.
	maxBodyBytes = 4 << 20

	contentTypeJSON = "application/json; charset=utf-8"

	headerETag           = "ETag"
	headerIfMatch        = "If-Match"
	headerIfNoneMatch    = "If-None-Match"
	headerAsyncOperation = "Azure-AsyncOperation"
	headerLocation       = "Location"
	headerRetryAfter     = "Retry-After"

	queryTop       = "$top"
	querySkipToken = "$skiptoken"

	segOperations = "operations"
)

// ResourceHandler serves every ARM resource path.
type ResourceHandler struct {
	svc       *service.ResourceService
	publicURL string
}

// NewResourceHandler creates a new resource handler.
//
// Parameters:
//   - svc: Resource service
//   - publicURL: Base URL used in nextLink and async operation headers;
//     empty derives it from each request's Host
func NewResourceHandler(svc *service.ResourceService, publicURL string) *ResourceHandler {
	return &ResourceHandler{svc: svc, publicURL: strings.TrimSuffix(publicURL, "/")}
}

// listResponse is the ARM collection page shape.
type listResponse struct {
	Value    []json.RawMessage `json:"value"`
	NextLink string            `json:"nextLink,omitempty"`
}

// Handle dispatches a request on /subscriptions/*path or /providers/*path
// by method and by whether the path names an item or a collection.
func (h *ResourceHandler) Handle(c *gin.Context) {
	id, err := armid.Parse(c.Request.URL.Path)
	if err != nil {
		respondError(c, fmt.Errorf("%w: the path '%s' is not a valid resource ID", models.ErrInvalidResourceID, c.Request.URL.Path))
		return
	}

	switch c.Request.Method {
	case http.MethodGet:
		if isOperationsCatalog(id) {
			h.operations(c, id)
			return
		}
		if id.IsCollection() {
			h.list(c, id)
			return
		}
		h.get(c, id, true)
	case http.MethodHead:
		h.get(c, id, false)
	case http.MethodPut:
		h.put(c, id)
	case http.MethodPatch:
		h.patch(c, id)
	case http.MethodDelete:
		h.delete(c, id)
	case http.MethodPost:
		h.invoke(c, id)
	default:
		respondError(c, fmt.Errorf("%w: method %s is not supported", models.ErrInvalidRequest, c.Request.Method))
	}
}

func (h *ResourceHandler) get(c *gin.Context, id *armid.ID, withBody bool) {
	res, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if !withBody {
			status, _ := statusFor(err)
			c.AbortWithStatus(status)
			return
		}
		respondError(c, err)
		return
	}

	if res.ETag != "" {
		c.Header(headerETag, res.ETag)
	}
	if !withBody {
		c.Status(http.StatusOK)
		return
	}
	c.Data(http.StatusOK, contentTypeJSON, res.Body)
}

func (h *ResourceHandler) list(c *gin.Context, id *armid.ID) {
	top := 0
	if raw := c.Query(queryTop); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, fmt.Errorf("%w: the $top value '%s' must be a positive integer", models.ErrInvalidRequest, raw))
			return
		}
		top = n
	}

	page, err := h.svc.List(c.Request.Context(), id, top, c.Query(querySkipToken))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := listResponse{Value: page.Value}
	if page.SkipToken != "" {
		query := url.Values{}
		query.Set(middleware.QueryAPIVersion, c.Query(middleware.QueryAPIVersion))
		if top > 0 {
			query.Set(queryTop, strconv.Itoa(top))
		}
		query.Set(querySkipToken, page.SkipToken)
		resp.NextLink = h.baseURL(c) + c.Request.URL.EscapedPath() + "?" + query.Encode()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ResourceHandler) put(c *gin.Context, id *armid.ID) {
	body, err := readBody(c)
	if err != nil {
		respondError(c, err)
		return
	}

	res, created, err := h.svc.Put(c.Request.Context(), id, body, preconditions(c))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.Header(headerETag, res.ETag)
	c.Data(status, contentTypeJSON, res.Body)
}

func (h *ResourceHandler) patch(c *gin.Context, id *armid.ID) {
	body, err := readBody(c)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.svc.Patch(c.Request.Context(), id, body, preconditions(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(headerETag, res.ETag)
	c.Data(http.StatusOK, contentTypeJSON, res.Body)
}

func (h *ResourceHandler) delete(c *gin.Context, id *armid.ID) {
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if deleted {
		c.Status(http.StatusOK)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler) invoke(c *gin.Context, id *armid.ID) {
	body, err := readBody(c)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.svc.Invoke(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err)
		return
	}

	if res.OperationID != "" {
		target, _, _ := id.SplitAction()
		monitor := h.baseURL(c) + service.OperationStatusID(target, res.OperationID) +
			"?" + middleware.QueryAPIVersion + "=" + url.QueryEscape(c.Query(middleware.QueryAPIVersion))
		c.Header(headerAsyncOperation, monitor)
		c.Header(headerLocation, monitor)
		c.Header(headerRetryAfter, "0")
	}

	if res.Body == nil {
		c.Status(res.Status)
		return
	}
	c.JSON(res.Status, res.Body)
}

func (h *ResourceHandler) operations(c *gin.Context, id *armid.ID) {
	ops, err := service.Operations(id.Namespace)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ops)
}

// baseURL returns the scheme and host clients should use for links.
func (h *ResourceHandler) baseURL(c *gin.Context) string {
	if h.publicURL != "" {
		return h.publicURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// isOperationsCatalog reports whether id is /providers/{namespace}/operations.
func isOperationsCatalog(id *armid.ID) bool {
	return id.IsTenantScope() && id.IsCollection() && len(id.Types) == 1 &&
		strings.EqualFold(id.Types[0], segOperations)
}

func preconditions(c *gin.Context) service.Preconditions {
	return service.Preconditions{
		IfMatch:     c.GetHeader(headerIfMatch),
		IfNoneMatch: c.GetHeader(headerIfNoneMatch),
	}
}

var errBodyTooLarge = errors.New("request body too large")

// readBody reads at most maxBodyBytes of the request body.
func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", models.ErrInvalidRequest, err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidRequest, errBodyTooLarge)
	}
	return body, nil
}
