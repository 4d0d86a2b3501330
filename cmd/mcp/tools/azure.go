package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/elC0mpa/az-prune/cmd/mcp/response"
	"github.com/elC0mpa/az-prune/model"
	azurearm "github.com/elC0mpa/az-prune/service/azure/arm"
	azureconfig "github.com/elC0mpa/az-prune/service/azure/config"
	azurecostmanagement "github.com/elC0mpa/az-prune/service/azure/costmanagement"
	azuregraph "github.com/elC0mpa/az-prune/service/azure/graph"
	azureidentity "github.com/elC0mpa/az-prune/service/azure/identity"
	"github.com/elC0mpa/az-prune/service/classifier"
	"github.com/elC0mpa/az-prune/service/cost"
	"github.com/elC0mpa/az-prune/service/export"
	"github.com/elC0mpa/az-prune/service/grid"
	"github.com/elC0mpa/az-prune/service/orchestrator"
	"github.com/elC0mpa/az-prune/service/portal"
	"github.com/elC0mpa/az-prune/utils"
)

// RegisterAzureTools registers all orphan-detection tools with the MCP server
func RegisterAzureTools(s *server.MCPServer, subscriptionID string) {
	s.AddTool(
		mcp.NewTool("azure_list_subscriptions",
			mcp.WithDescription("List all Azure subscriptions the current credential has access to"),
		),
		makeListSubscriptionsHandler(),
	)

	s.AddTool(
		mcp.NewTool("azure_get_subscription_info",
			mcp.WithDescription("Get Azure subscription details including ID, display name, and tenant ID. Requires AZURE_SUBSCRIPTION_ID environment variable."),
		),
		makeSubscriptionInfoHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_scan_orphans",
			mcp.WithDescription("Scan the subscription for orphaned resources (unattached NICs, disks, unused public IPs; pass all=true to add idle App Service plans, detached NSGs and stale snapshots). Returns classified resources with monthly cost estimates and portal links. Requires AZURE_SUBSCRIPTION_ID."),
			mcp.WithBoolean("all",
				mcp.Description("Run every detector instead of only the default three"),
			),
		),
		makeScanOrphansHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_get_current_month_costs",
			mcp.WithDescription("Get billed Azure costs for the current month, broken down by service. Requires AZURE_SUBSCRIPTION_ID."),
		),
		makeCurrentMonthCostsHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_get_portal_url",
			mcp.WithDescription("Build an Azure Portal deep link for a resource ID. Requires AZURE_SUBSCRIPTION_ID to resolve the tenant."),
			mcp.WithString("resource_id",
				mcp.Required(),
				mcp.Description("Full ARM resource ID, starting with /subscriptions/"),
			),
		),
		makePortalURLHandler(subscriptionID),
	)

	s.AddTool(
		mcp.NewTool("azure_export_orphan_report",
			mcp.WithDescription("Scan the subscription and write the findings to an xlsx or csv report on disk. Requires AZURE_SUBSCRIPTION_ID."),
			mcp.WithString("path",
				mcp.Description("Destination path (default azure-orphans-YYYY-MM-DD.xlsx in the working directory)"),
			),
			mcp.WithString("format",
				mcp.Description("Report format: xlsx (default) or csv"),
			),
			mcp.WithBoolean("all",
				mcp.Description("Run every detector instead of only the default three"),
			),
		),
		makeExportReportHandler(subscriptionID),
	)
}

func makeListSubscriptionsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Listing needs no target subscription, only a credential.
		credential, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err)), nil
		}

		identitySvc, err := azureidentity.NewService("", credential)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure identity service: %v", err)), nil
		}

		subscriptions, err := identitySvc.ListSubscriptions(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list subscriptions: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertSubscriptions(subscriptions), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeSubscriptionInfoHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if subscriptionID == "" {
			return mcp.NewToolResultError("AZURE_SUBSCRIPTION_ID environment variable is required"), nil
		}

		identitySvc, err := newIdentityService(subscriptionID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		info, err := identitySvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get subscription info: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertAccountInfo(info), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeScanOrphansHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if subscriptionID == "" {
			return mcp.NewToolResultError("AZURE_SUBSCRIPTION_ID environment variable is required"), nil
		}

		result, err := runScan(ctx, subscriptionID, request.GetBool("all", false))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Scan failed: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertScanResult(result), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeCurrentMonthCostsHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if subscriptionID == "" {
			return mcp.NewToolResultError("AZURE_SUBSCRIPTION_ID environment variable is required"), nil
		}

		cfgSvc, err := azureconfig.NewService(subscriptionID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure config: %v", err)), nil
		}

		costSvc, err := azurecostmanagement.NewService(subscriptionID, cfgSvc.GetCredential())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create cost management service: %v", err)), nil
		}

		costData, err := costSvc.GetCurrentMonthCostsByService(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get costs: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ConvertCostInfo(costData), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makePortalURLHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if subscriptionID == "" {
			return mcp.NewToolResultError("AZURE_SUBSCRIPTION_ID environment variable is required"), nil
		}

		resourceID, err := request.RequireString("resource_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		identitySvc, err := newIdentityService(subscriptionID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		info, err := identitySvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve tenant: %v", err)), nil
		}

		url, err := portal.BuildPortalURL(resourceID, info.TenantID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, _ := json.MarshalIndent(response.PortalLink{
			ResourceID: resourceID,
			TenantID:   info.TenantID,
			URL:        url,
		}, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeExportReportHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if subscriptionID == "" {
			return mcp.NewToolResultError("AZURE_SUBSCRIPTION_ID environment variable is required"), nil
		}

		format := request.GetString("format", "xlsx")
		if format != "xlsx" && format != "csv" {
			return mcp.NewToolResultError("format must be xlsx or csv"), nil
		}

		result, err := runScan(ctx, subscriptionID, request.GetBool("all", false))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Scan failed: %v", err)), nil
		}

		path := request.GetString("path", "")
		if path == "" {
			path = export.DefaultFilename(time.Now())
			if format == "csv" {
				path = path[:len(path)-len("xlsx")] + "csv"
			}
		}
		path = export.DisambiguatePath(path)

		exportSvc := export.NewService()
		if format == "csv" {
			err = exportSvc.ExportCSV(result.Resources, result.Account.TenantID, path)
		} else {
			err = exportSvc.ExportExcel(result.Resources, result.Account.TenantID, path)
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Export failed: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.ExportResult{
			Path:          path,
			Format:        format,
			ResourceCount: len(result.Resources),
		}, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func newIdentityService(subscriptionID string) (azureidentity.IdentityService, error) {
	cfgSvc, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure config: %w", err)
	}
	return azureidentity.NewService(subscriptionID, cfgSvc.GetCredential())
}

// runScan wires the same services as the CLI, minus the terminal rendering.
func runScan(ctx context.Context, subscriptionID string, all bool) (model.ScanResult, error) {
	cfgSvc, err := azureconfig.NewService(subscriptionID)
	if err != nil {
		return model.ScanResult{}, err
	}

	identitySvc, err := azureidentity.NewService(subscriptionID, cfgSvc.GetCredential())
	if err != nil {
		return model.ScanResult{}, err
	}

	log := utils.NewLogger(false)

	graphSvc, err := azuregraph.NewService(subscriptionID, cfgSvc.GetCredential(), log)
	if err != nil {
		return model.ScanResult{}, err
	}

	armSvc, err := azurearm.NewService(subscriptionID, cfgSvc.GetCredential())
	if err != nil {
		return model.ScanResult{}, err
	}

	account, err := identitySvc.GetAccountInfo(ctx)
	if err != nil {
		return model.ScanResult{}, err
	}

	orchestratorSvc := orchestrator.NewService(
		identitySvc,
		graphSvc,
		armSvc,
		classifier.NewService(),
		cost.NewService(),
		nil,
		export.NewService(),
		grid.NewService(),
		log,
	)

	return orchestratorSvc.Scan(ctx, *account, all)
}
