package controllers

import (
	"errors"

	"jobportal/database"
	"jobportal/models"
	"jobportal/services"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

var userModel models.UserModel

func GetAuthParty(app *iris.Application) {
	authAPI := app.Party("/auth")
	{
		authAPI.Use(iris.Compression)
		authAPI.Post("/register", register)
		authAPI.Post("/login", login)
		authAPI.Get("/logout", services.JWTServices.VerifyMiddleware, logout)
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=jobseeker employer"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func register(ctx iris.Context) {
	var data registerRequest

	if !readBody(ctx, &data) {
		return
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		failModel(ctx, err)
		return
	}

	user := &database.User{
		Email:    data.Email,
		Password: string(hashedPass),
		FullName: data.FullName,
		Role:     data.Role,
		Phone:    data.Phone,
		Location: data.Location,
	}

	if err := userModel.Create(user); err != nil {
		failModel(ctx, err)
		return
	}

	token, err := services.JWTServices.Sign(user.Id, user.Role)
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusCreated, iris.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func login(ctx iris.Context) {
	var data loginRequest

	if !readBody(ctx, &data) {
		return
	}

	user, err := userModel.GetByEmail(data.Email)
	if errors.Is(err, models.ErrNotFound) {
		fail(ctx, iris.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		failModel(ctx, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)) != nil {
		fail(ctx, iris.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := services.JWTServices.Sign(user.Id, user.Role)
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, iris.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func logout(ctx iris.Context) {
	if err := ctx.Logout(); err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, iris.Map{
		"success": true,
	})
}
