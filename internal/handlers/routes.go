package handlers

import "github.com/gin-gonic/gin"

// RegisterAddressRoutes mounts the address endpoints on rg.
func RegisterAddressRoutes(rg *gin.RouterGroup, h *AddressHandler) {
	rg.POST("/parse", h.ParseAddress)
	rg.POST("/structured", h.ParseStructured)
	rg.GET("/suggestions", h.Suggestions)
	rg.GET("/places/:id", h.ResolvePlace)
	rg.GET("/status", h.Status)
}
