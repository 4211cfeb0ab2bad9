package controllers

import (
	"net/http"

	"github.com/Kariqs/amexan-store/middlewares"
	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/services"
	"github.com/gin-gonic/gin"
)

const (
	msgUserCreated    = "User created successfully."
	msgLoggedOut      = "Logged out successfully."
	msgResetCodeSent  = "Check your email for a password reset code."
	msgPasswordReset  = "Password has been reset successfully."
	msgProfileUpdated = "Profile updated successfully."
)

// Signup handles user registration
func (c *Controller) Signup(ctx *gin.Context) {
	var data models.SignupData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	token, err := c.Auth.Register(ctx.Request.Context(), data.Name, data.Email, data.Password, data.Address)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated, "token": token})
}

func (c *Controller) Login(ctx *gin.Context) {
	var data models.LoginData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	token, err := c.Auth.Login(ctx.Request.Context(), data.Email, data.Password)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": token})
}

func (c *Controller) Logout(ctx *gin.Context) {
	session := middlewares.CurrentSession(ctx)
	if session == nil {
		respondWithError(ctx, services.ErrNotAuthenticated)
		return
	}

	claims := session.Claims()
	if err := c.Auth.Logout(ctx.Request.Context(), session); err != nil {
		respondWithError(ctx, err)
		return
	}
	if claims != nil {
		c.Carts.Drop(claims.UserID)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}

func (c *Controller) ForgotPassword(ctx *gin.Context) {
	var data models.ForgotPasswordData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	flow := c.Reset.Begin()
	if err := flow.RequestCode(ctx.Request.Context(), data.Email); err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgResetCodeSent})
}

func (c *Controller) ResetPassword(ctx *gin.Context) {
	var data models.ResetPasswordData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	flow, err := c.Reset.Resume(ctx.Request.Context(), data.Email)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if err := flow.ResetPassword(ctx.Request.Context(), data.Code, data.Password); err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgPasswordReset})
}

func (c *Controller) GetProfile(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}

	user, err := c.Auth.Profile(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

func (c *Controller) UpdateProfile(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}

	var data models.ProfileData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := c.Auth.UpdateProfile(ctx.Request.Context(), claims.UserID, data)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgProfileUpdated, "user": user})
}
