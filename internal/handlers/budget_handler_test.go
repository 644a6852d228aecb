package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetResults(t *testing.T) {
	h := NewBudgetHandler()
	e := newEcho()

	cases := []struct {
		name       string
		query      string
		wantBudget string
		wantUse    string
	}{
		{"both provided", "?budget=500&use=commuting", "$500", "commuting"},
		{"none provided", "", "Not Provided", "Not Provided"},
		{"budget only", "?budget=1200", "$1200", "Not Provided"},
		{"use only", "?use=touring", "Not Provided", "touring"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/budget/results"+tc.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.GetResults(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var results budgetResults
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
			assert.Equal(t, tc.wantBudget, results.Budget)
			assert.Equal(t, tc.wantUse, results.UseCase)
		})
	}
}
