package handlers

import (
	"errors"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type EnquiryHandler struct {
	enquiryService *services.EnquiryService
}

func NewEnquiryHandler(enquiryService *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryService: enquiryService,
	}
}

type CreateEnquiryRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message" binding:"required"`
	SourcePage string `json:"sourcePage"`
}

// Create accepts a public customer enquiry.
func (h *EnquiryHandler) Create(c *gin.Context) {
	var req CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"detail": bindingDetail(err)})
		return
	}

	_, err := h.enquiryService.Create(req.Name, req.Email, req.Phone, req.Message, req.SourcePage)
	if err != nil {
		var tooLong *services.FieldTooLongError
		if errors.As(err, &tooLong) {
			c.JSON(400, gin.H{"detail": tooLong.Error()})
			return
		}
		if errors.Is(err, services.ErrEnquiryFieldsRequired) {
			c.JSON(400, gin.H{"detail": "Name, valid email and message are required."})
			return
		}
		c.JSON(500, gin.H{"detail": "Failed to save enquiry"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Enquiry submitted successfully."})
}

// List returns all enquiries newest-first. Admin only.
func (h *EnquiryHandler) List(c *gin.Context) {
	enquiries, err := h.enquiryService.List()
	if err != nil {
		c.JSON(500, gin.H{"detail": "Failed to list enquiries"})
		return
	}

	c.JSON(200, enquiries)
}

// bindingDetail turns a binding failure into the specific validation
// message the client shows the operator.
func bindingDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "email" {
				return "A valid email address is required."
			}
		}
		return "Name, valid email and message are required."
	}
	return "Invalid request payload."
}
