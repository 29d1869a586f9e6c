package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
}

// BiodataHandlerInterface defines the methods needed by the owner biodata routes.
type BiodataHandlerInterface interface {
	ListOwn(c *gin.Context)
	GetOwn(c *gin.Context)
	CreateOwn(c *gin.Context)
	UpdateOwn(c *gin.Context)
	DeleteOwn(c *gin.Context)
}

// AdminBiodataHandlerInterface defines the methods needed by the admin routes.
type AdminBiodataHandlerInterface interface {
	ListAll(c *gin.Context)
	Export(c *gin.Context)
	GetAny(c *gin.Context)
	UpdateAny(c *gin.Context)
	DeleteAny(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
var _ BiodataHandlerInterface = (*BiodataHandler)(nil)
var _ AdminBiodataHandlerInterface = (*BiodataHandler)(nil)
