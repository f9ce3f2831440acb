package controllers

import (
	"jobportal/services"

	"github.com/kataras/iris/v12"
)

func GetUsersParty(app *iris.Application) {
	usersAPI := app.Party("/users")
	{
		usersAPI.Use(iris.Compression)

		usersAPI.Get("/profile", services.JWTServices.VerifyMiddleware, getProfile)
		usersAPI.Patch("/profile", services.JWTServices.VerifyMiddleware, updateProfile)
		usersAPI.Get("/{id}", getUser)
	}
}

func getProfile(ctx iris.Context) {
	claims := services.Claims(ctx)

	profile, err := userModel.Get(claims.UserID)
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, profile)
}

func updateProfile(ctx iris.Context) {
	claims := services.Claims(ctx)

	updates, ok := readUpdates(ctx)
	if !ok {
		return
	}

	user, err := userModel.UpdateProfile(claims.UserID, updates)
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, user)
}

func getUser(ctx iris.Context) {
	profile, err := userModel.Get(ctx.Params().Get("id"))
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, profile)
}
