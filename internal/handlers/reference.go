// Reference handlers — X-Client-Token only, no user JWT.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/transrodar/backend/internal/response"
)

// FormOption is a single selectable item on the public form.
type FormOption struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	SortOrder int    `json:"sort_order"`
}

// FormOptions returns handler for GET /reference/form-options: the form
// enumerations (vehicle_type, availability, schedule) grouped by kind.
func FormOptions(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		rows, err := pool.Query(ctx, `
			SELECT kind, code, label, sort_order
			FROM form_options
			ORDER BY kind, sort_order
		`)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		defer rows.Close()

		groups := map[string][]FormOption{}
		for rows.Next() {
			var kind string
			var o FormOption
			if err := rows.Scan(&kind, &o.Code, &o.Label, &o.SortOrder); err != nil {
				response.Error(c, http.StatusInternalServerError, "internal error")
				return
			}
			groups[kind] = append(groups[kind], o)
		}
		if err := rows.Err(); err != nil {
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		response.Success(c, http.StatusOK, response.MsgSuccess, groups)
	}
}
