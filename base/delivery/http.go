package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bearmarket/goapi/domain"
	"github.com/bearmarket/goapi/service/query"
)

// JsonResponse is the flat response envelope. Every body carries a boolean
// "success" plus whatever fields the handler adds alongside it.
type JsonResponse map[string]interface{}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		return c.JSON(status, JsonResponse{"success": false, "error": err.Error()})
	}

	resp := JsonResponse{"success": status >= 200 && status < 300}
	switch fields := data.(type) {
	case nil:
	case JsonResponse:
		for k, v := range fields {
			resp[k] = v
		}
	default:
		resp["data"] = data
	}
	return c.JSON(status, resp)
}
