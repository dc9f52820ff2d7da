package service

import (
	"strings"

	"github.com/yaroslav/azrest/models"
)

// catalogEntry is one resource type of a provider's operation list.
type catalogEntry struct {
	resource string
	display  string
	verbs    []string
}

// catalog lists the resource types each emulated provider reports from
// /providers/{namespace}/operations.
var catalog = map[string][]catalogEntry{
	"Microsoft.Cache": {
		{"redisEnterprise", "Redis Enterprise cluster", []string{"read", "write", "delete"}},
		{"redisEnterprise/databases", "Redis Enterprise database", []string{"read", "write", "delete", "listKeys/action", "regenerateKey/action", "import/action", "export/action"}},
		{"redisEnterprise/privateEndpointConnections", "Private endpoint connection", []string{"read", "write", "delete"}},
	},
	"Microsoft.Kusto": {
		{"clusters", "Kusto cluster", []string{"read", "write", "delete", "start/action", "stop/action"}},
		{"clusters/databases", "Kusto database", []string{"read", "write", "delete"}},
		{"locations", "Location", []string{"checkNameAvailability/action"}},
	},
	"Microsoft.Synapse": {
		{"workspaces/kustoPools", "Kusto pool", []string{"read", "write", "delete", "start/action", "stop/action"}},
		{"workspaces/kustoPools/databases", "Kusto pool database", []string{"read", "write", "delete"}},
		{"locations", "Location", []string{"kustoPoolCheckNameAvailability/action"}},
	},
	"Microsoft.SignalRService": {
		{"WebPubSub", "Web PubSub service", []string{"read", "write", "delete", "listKeys/action", "regenerateKey/action", "restart/action"}},
		{"WebPubSub/hubs", "Web PubSub hub", []string{"read", "write", "delete"}},
		{"locations", "Location", []string{"checkNameAvailability/action"}},
	},
	"Microsoft.Authorization": {
		{"roleDefinitions", "Role definition", []string{"read", "write", "delete"}},
		{"roleAssignments", "Role assignment", []string{"read", "write", "delete"}},
	},
	"Microsoft.BillingBenefits": {
		{"savingsPlanOrders", "Savings plan order", []string{"read", "elevate/action"}},
		{"savingsPlanOrders/savingsPlans", "Savings plan", []string{"read", "write", "validate/action"}},
		{"savingsPlanOrderAliases", "Savings plan order alias", []string{"read", "write"}},
	},
	"Microsoft.Help": {
		{"diagnostics", "Diagnostic", []string{"read", "write"}},
		{"solutions", "Solution", []string{"read", "write"}},
		{"troubleshooters", "Troubleshooter", []string{"read", "write", "continue/action", "end/action", "restart/action"}},
		{"discoverySolutions", "Solution metadata", []string{"read"}},
	},
	"Microsoft.Migrate": {
		{"migrateProjects", "Migrate project", []string{"read", "write", "delete", "registerTool/action", "refreshSummary/action"}},
		{"migrateProjects/solutions", "Migrate solution", []string{"read", "write", "delete", "getConfig/action", "cleanupData/action"}},
		{"migrateProjects/databases", "Discovered database", []string{"read"}},
		{"migrateProjects/machines", "Discovered machine", []string{"read"}},
		{"migrateProjects/events", "Migrate event", []string{"read", "delete"}},
	},
}

var verbDisplay = map[string]string{
	"read":   "Read",
	"write":  "Create or Update",
	"delete": "Delete",
}

// Operations returns the canned operation list of a provider namespace.
// Returns models.ErrNotFound for namespaces the emulator does not serve.
func Operations(namespace string) (*models.OperationListResult, error) {
	var entries []catalogEntry
	var canonical string
	for ns, e := range catalog {
		if strings.EqualFold(ns, namespace) {
			entries, canonical = e, ns
			break
		}
	}
	if entries == nil {
		return nil, errorf(models.ErrNotFound, "The resource provider '%s' is not registered.", namespace)
	}

	out := &models.OperationListResult{}
	for _, entry := range entries {
		for _, verb := range entry.verbs {
			op := verbDisplay[verb]
			if op == "" {
				op = strings.TrimSuffix(verb, "/action")
			}
			out.Value = append(out.Value, models.Operation{
				Name:         models.Ptr(canonical + "/" + entry.resource + "/" + verb),
				IsDataAction: models.Ptr(false),
				Origin:       models.Ptr(models.OriginUserSystem),
				Display: &models.OperationDisplay{
					Provider:    models.Ptr(canonical),
					Resource:    models.Ptr(entry.display),
					Operation:   models.Ptr(op),
					Description: models.Ptr(op + " " + entry.display),
				},
			})
		}
	}
	return out, nil
}
