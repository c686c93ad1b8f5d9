package Controllers

import (
	"net/http"

	"github.com/YeyeJames/jiale15/Utils/Token"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *Controller) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctrl.Store.Authenticate(input.Username, input.Password)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"message": "username or password is incorrect."})
		return
	}

	token, err := Token.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Successful", "jwt": token, "name": user.Name, "role": user.Role})
}

func (ctrl *Controller) CurrentUser(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctrl.Store.GetUserByID(user_id)

	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	var output struct {
		ID       uint   `json:"ID"`
		Username string `json:"username"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}
	output.ID = user.ID
	output.Username = user.Username
	output.Name = user.Name
	output.Role = user.Role
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": output})
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Role     string `json:"role" binding:"required"`
}

// RegisterUser lets an admin create front-desk accounts.
func (ctrl *Controller) RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctrl.Store.RegisterUser(input.Username, input.Password, input.Name, input.Role)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registered Successfully", "data": user})
}
