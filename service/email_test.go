package service

import (
	"testing"

	"cashtrack/config"

	"github.com/stretchr/testify/assert"
)

func TestSendWelcomeEmail_Disabled(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: false})
	err := s.SendWelcomeEmail("owner@example.com", "Mama Nkechi Stores")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestGenerateWelcomeEmailBody(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{})
	body := s.generateWelcomeEmailBody("Mama Nkechi Stores")
	assert.Contains(t, body, "Mama Nkechi Stores")
	assert.Contains(t, body, "CashTrack")
	assert.Contains(t, body, "daily summary")
}
