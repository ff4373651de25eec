package meetings

import "github.com/tmc/langchaingo/tools"

// Tools returns the five calendar tools in declaration order.
func Tools(svc *Service) []tools.Tool {
	return []tools.Tool{
		NewScheduleTool(svc),
		NewGetTool(svc),
		NewListTool(svc),
		NewUpdateTool(svc),
		NewDeleteTool(svc),
	}
}
