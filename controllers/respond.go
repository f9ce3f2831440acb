package controllers

import (
	"encoding/json"
	"errors"

	"jobportal/logging"
	"jobportal/models"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func fail(ctx iris.Context, status int, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{
		"success": false,
		"message": message,
	})
}

// failModel maps a model error to its HTTP status.
func failModel(ctx iris.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		fail(ctx, iris.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrForbidden):
		fail(ctx, iris.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrConflict):
		fail(ctx, iris.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInvalid):
		fail(ctx, iris.StatusBadRequest, err.Error())
	default:
		logger := logging.WithComponent("http")
		logger.Error().
			Err(err).
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Msg("request failed")
		fail(ctx, iris.StatusInternalServerError, "internal error")
	}
}

func respond(ctx iris.Context, status int, body interface{}) {
	ctx.StatusCode(status)
	ctx.JSON(body)
}

// readBody decodes and validates a JSON request body into dst, writing a 400
// response when that fails.
func readBody(ctx iris.Context, dst interface{}) bool {
	err := ctx.ReadJSON(dst)
	if err == nil {
		return true
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		fail(ctx, iris.StatusBadRequest, models.DescribeValidation(errs))
		return false
	}

	fail(ctx, iris.StatusBadRequest, "invalid request body")
	return false
}

// readUpdates decodes a partial-update body. The models validate the
// result after the fields are applied.
func readUpdates(ctx iris.Context) (map[string]interface{}, bool) {
	var updates map[string]interface{}

	body, err := ctx.GetBody()
	if err == nil {
		err = json.Unmarshal(body, &updates)
	}
	if err != nil || updates == nil {
		fail(ctx, iris.StatusBadRequest, "invalid request body")
		return nil, false
	}

	return updates, true
}
