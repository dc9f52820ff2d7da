package help

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/sdk"
)

const testScope = "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.KeyVault/vaults/kv1"

type recorded struct {
	method string
	path   string
	query  url.Values
	body   string
}

func newTestClient(t *testing.T, status int, response string, got *recorded) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*got = recorded{method: r.Method, path: r.URL.Path, query: r.URL.Query(), body: string(body)}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, response)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(sdk.ClientConfig{
		Endpoint:     server.URL,
		Credential:   sdk.NewStaticTokenCredential("token"),
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestHelp_Paths(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		status     int
		response   string
		wantMethod string
		wantPath   string
		wantQuery  map[string]string
		call       func(c *Client) error
	}{
		{
			name:       "operations list",
			status:     http.StatusOK,
			response:   `{"value":[]}`,
			wantMethod: http.MethodGet,
			wantPath:   "/providers/Microsoft.Help/operations",
			wantQuery:  map[string]string{"api-version": DefaultAPIVersion},
			call: func(c *Client) error {
				_, err := c.Operations().List().Do(ctx)
				return err
			},
		},
		{
			name:       "check name availability",
			status:     http.StatusOK,
			response:   `{"nameAvailable":true}`,
			wantMethod: http.MethodPost,
			wantPath:   testScope + "/providers/Microsoft.Help/checkNameAvailability",
			call: func(c *Client) error {
				res, err := c.CheckNameAvailability(testScope, CheckNameAvailabilityRequest{
					Name: models.Ptr("diag1"),
					Type: models.Ptr("Microsoft.Help/diagnostics"),
				}).Do(ctx)
				if err == nil && !*res.NameAvailable {
					return errors.New("name reported taken")
				}
				return err
			},
		},
		{
			name:       "diagnostic get",
			status:     http.StatusOK,
			response:   `{"name":"diag1","properties":{"provisioningState":"PartialComplete","diagnostics":[{"solutionId":"s1","status":"Succeeded","insights":[{"title":"Vault throttled","importanceLevel":"Critical"}]}]}}`,
			wantMethod: http.MethodGet,
			wantPath:   testScope + "/providers/Microsoft.Help/diagnostics/diag1",
			call: func(c *Client) error {
				diag, err := c.Diagnostics().Get(testScope, "diag1").Do(ctx)
				if err != nil {
					return err
				}
				if diag.ProvisioningStateOf() != string(ProvisioningStatePartialComplete) {
					return fmt.Errorf("state = %q", diag.ProvisioningStateOf())
				}
				if *diag.Properties.Diagnostics[0].Insights[0].ImportanceLevel != ImportanceLevelCritical {
					return errors.New("insight importance not decoded")
				}
				return nil
			},
		},
		{
			name:       "discovery solutions",
			status:     http.StatusOK,
			response:   `{"value":[{"name":"d1","properties":{"solutions":[{"solutionId":"s1","solutionType":"Diagnostics","requiredInputs":["SubscriptionId"]}]}}]}`,
			wantMethod: http.MethodGet,
			wantPath:   testScope + "/providers/Microsoft.Help/discoverySolutions",
			wantQuery:  map[string]string{"$filter": "ProblemClassificationId eq 'abc'", "$skiptoken": "t1"},
			call: func(c *Client) error {
				res, err := c.DiscoverySolution().List(testScope).Filter("ProblemClassificationId eq 'abc'").SkipToken("t1").Do(ctx)
				if err == nil && *res.Value[0].Properties.Solutions[0].SolutionType != SolutionTypeDiagnostics {
					return errors.New("solution type not decoded")
				}
				return err
			},
		},
		{
			name:       "solution create",
			status:     http.StatusCreated,
			response:   `{"name":"sol1","properties":{"provisioningState":"Succeeded","sections":[{"title":"Fix"}]}}`,
			wantMethod: http.MethodPut,
			wantPath:   testScope + "/providers/Microsoft.Help/solutions/sol1",
			call: func(c *Client) error {
				_, err := c.Solution().Create(testScope, "sol1", SolutionResource{
					Properties: &SolutionResourceProperties{
						TriggerCriteria: []TriggerCriterion{{Name: models.Ptr(TriggerCriterionNameSolutionID), Value: models.Ptr("s1")}},
					},
				}).Do(ctx)
				return err
			},
		},
		{
			name:       "solution get",
			status:     http.StatusOK,
			response:   `{"name":"sol1"}`,
			wantMethod: http.MethodGet,
			wantPath:   testScope + "/providers/Microsoft.Help/solutions/sol1",
			call: func(c *Client) error {
				_, err := c.Solution().Get(testScope, "sol1").Do(ctx)
				return err
			},
		},
		{
			name:       "troubleshooter get",
			status:     http.StatusOK,
			response:   `{"name":"ts1","properties":{"steps":[{"id":"1","type":"Decision"},{"id":"2","type":"AutomatedCheck","automatedCheckResults":{"type":"Warning"}}]}}`,
			wantMethod: http.MethodGet,
			wantPath:   testScope + "/providers/Microsoft.Help/troubleshooters/ts1",
			call: func(c *Client) error {
				ts, err := c.Troubleshooters().Get(testScope, "ts1").Do(ctx)
				if err != nil {
					return err
				}
				step := ts.CurrentStep()
				if step == nil || *step.ID != "2" || *step.AutomatedCheckResults.Type != AutomatedCheckResultTypeWarning {
					return fmt.Errorf("current step = %+v", step)
				}
				return nil
			},
		},
		{
			name:       "troubleshooter end",
			status:     http.StatusNoContent,
			wantMethod: http.MethodPost,
			wantPath:   testScope + "/providers/Microsoft.Help/troubleshooters/ts1/end",
			call: func(c *Client) error {
				return c.Troubleshooters().End(testScope, "ts1").Do(ctx)
			},
		},
		{
			name:       "troubleshooter restart",
			status:     http.StatusOK,
			response:   `{"troubleshooterResourceName":"ts2"}`,
			wantMethod: http.MethodPost,
			wantPath:   testScope + "/providers/Microsoft.Help/troubleshooters/ts1/restart",
			call: func(c *Client) error {
				res, err := c.Troubleshooters().Restart(testScope, "ts1").Do(ctx)
				if err == nil && *res.TroubleshooterResourceName != "ts2" {
					return fmt.Errorf("restarted = %q", *res.TroubleshooterResourceName)
				}
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got recorded
			client := newTestClient(t, tt.status, tt.response, &got)
			if err := tt.call(client); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if got.method != tt.wantMethod || got.path != tt.wantPath {
				t.Errorf("request = %s %s, want %s %s", got.method, got.path, tt.wantMethod, tt.wantPath)
			}
			for key, want := range tt.wantQuery {
				if got.query.Get(key) != want {
					t.Errorf("query %s = %q, want %q", key, got.query.Get(key), want)
				}
			}
		})
	}
}

func TestDiagnostics_Create(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusCreated, `{"name":"diag1","properties":{"provisioningState":"Running"}}`, &got)

	_, err := client.Diagnostics().Create(testScope, "diag1", DiagnosticResource{
		Properties: &DiagnosticResourceProperties{
			GlobalParameters: map[string]string{"startTime": "2023-10-01T00:00:00Z"},
			Insights:         []DiagnosticInvocation{{SolutionID: models.Ptr("s1")}},
		},
	}).Do(context.Background())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := `{"properties":{"globalParameters":{"startTime":"2023-10-01T00:00:00Z"},"insights":[{"solutionId":"s1"}]}}`
	if got.body != want {
		t.Errorf("body = %s\nwant = %s", got.body, want)
	}
}

func TestDiagnostics_CreateRejectsOK(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusOK, `{}`, &got)

	_, err := client.Diagnostics().Create(testScope, "diag1", DiagnosticResource{}).Do(context.Background())
	if err == nil {
		t.Fatal("Create() accepted 200")
	}
	if sdk.StatusCode(err) != http.StatusOK {
		t.Errorf("status = %d", sdk.StatusCode(err))
	}
}

func TestSolution_UpdateAccepted(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusAccepted, "", &got)

	res, err := client.Solution().Update(testScope, "sol1", SolutionPatchRequestBody{
		Properties: &SolutionResourceProperties{Parameters: map[string]string{"resourceUri": testScope}},
	}).Do(context.Background())
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !res.Accepted() || got.method != http.MethodPatch {
		t.Errorf("status = %d method = %s", res.StatusCode, got.method)
	}
}

func TestTroubleshooters_CreateAndContinue(t *testing.T) {
	ctx := context.Background()

	var got recorded
	client := newTestClient(t, http.StatusCreated, `{"name":"ts1","properties":{"provisioningState":"Running"}}`, &got)

	res, err := client.Troubleshooters().Create(testScope, "ts1", TroubleshooterResource{
		Properties: &TroubleshooterInstanceProperties{SolutionID: models.Ptr("s1")},
	}).Do(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !res.Created() {
		t.Errorf("status = %d, want 201", res.StatusCode)
	}

	next := newTestClient(t, http.StatusNoContent, "", &got)
	err = next.Troubleshooters().Continue(testScope, "ts1").Body(ContinueRequestBody{
		StepID: models.Ptr("1"),
		Responses: []TroubleshooterResponse{{
			QuestionID:   models.Ptr("q1"),
			QuestionType: models.Ptr(QuestionTypeRadioButton),
			Response:     models.Ptr("yes"),
		}},
	}).Do(ctx)
	if err != nil {
		t.Fatalf("Continue() error = %v", err)
	}
	want := `{"stepId":"1","responses":[{"questionId":"q1","questionType":"RadioButton","response":"yes"}]}`
	if got.path != testScope+"/providers/Microsoft.Help/troubleshooters/ts1/continue" || got.body != want {
		t.Errorf("request = %s body %s", got.path, got.body)
	}
}

func TestTroubleshooters_ContinueWithoutBody(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusNoContent, "", &got)

	if err := client.Troubleshooters().Continue(testScope, "ts1").Do(context.Background()); err != nil {
		t.Fatalf("Continue() error = %v", err)
	}
	if got.body != "" {
		t.Errorf("body = %q, want empty", got.body)
	}
}

func TestScope_Empty(t *testing.T) {
	var got recorded
	client := newTestClient(t, http.StatusOK, `{}`, &got)

	_, err := client.Solution().Get("", "sol1").Do(context.Background())
	if !errors.Is(err, sdk.ErrMissingParameter) {
		t.Fatalf("error = %v, want ErrMissingParameter", err)
	}
	if got.method != "" {
		t.Error("request was sent for an empty scope")
	}
}
