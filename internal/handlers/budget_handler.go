package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// notProvided is shown for any wizard value the query string did not carry
const notProvided = "Not Provided"

// BudgetHandler serves the budget wizard's results surface. The wizard itself
// is a purely client-side disclosure form; the two collected values arrive
// here as query parameters and are echoed back as display strings.
type BudgetHandler struct{}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// RegisterBudgetRoutes registers budget wizard routes
func (h *BudgetHandler) RegisterBudgetRoutes(g *echo.Group) {
	g.GET("/budget/results", h.GetResults)
}

// budgetResults carries the display values for the results page
type budgetResults struct {
	Budget  string `json:"budget"`
	UseCase string `json:"use_case"`
}

// GetResults echoes the wizard's budget and use-case values back, with
// "Not Provided" standing in for any absent parameter
func (h *BudgetHandler) GetResults(c echo.Context) error {
	results := budgetResults{
		Budget:  notProvided,
		UseCase: notProvided,
	}

	if budget := c.QueryParam("budget"); budget != "" {
		results.Budget = "$" + budget
	}
	if useCase := c.QueryParam("use"); useCase != "" {
		results.UseCase = useCase
	}

	return c.JSON(http.StatusOK, results)
}
