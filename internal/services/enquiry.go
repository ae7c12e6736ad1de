package services

import (
	"errors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

var ErrEnquiryFieldsRequired = errors.New("name, valid email and message are required")

type EnquiryService struct{}

func NewEnquiryService() *EnquiryService {
	return &EnquiryService{}
}

// Create sanitizes the free-text fields and persists the enquiry. Email
// format is checked at the binding layer; here only presence is enforced.
func (s *EnquiryService) Create(name, email, phone, message, sourcePage string) (*models.Enquiry, error) {
	cleanName, err := CleanText(name, MaxNameLen)
	if err != nil {
		return nil, err
	}
	cleanMessage, err := CleanText(message, MaxMessageLen)
	if err != nil {
		return nil, err
	}
	cleanPhone, err := CleanText(phone, MaxPhoneLen)
	if err != nil {
		return nil, err
	}
	cleanSource, err := CleanText(sourcePage, MaxSourcePageLen)
	if err != nil {
		return nil, err
	}

	if cleanName == "" || email == "" || cleanMessage == "" {
		return nil, ErrEnquiryFieldsRequired
	}

	enquiry := &models.Enquiry{
		Name:       cleanName,
		Email:      email,
		Phone:      cleanPhone,
		Message:    cleanMessage,
		SourcePage: cleanSource,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(enquiry).Error
	})
	if err != nil {
		return nil, err
	}

	return enquiry, nil
}

// List returns all enquiries newest-first.
func (s *EnquiryService) List() ([]models.Enquiry, error) {
	enquiries := make([]models.Enquiry, 0)
	if err := models.DB.Order("created_at DESC, id DESC").Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}
