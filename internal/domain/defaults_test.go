package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProfileFullyPopulated(t *testing.T) {
	p := DefaultProfile()

	assert.NotEmpty(t, p.Name)
	assert.NotEmpty(t, p.Role)
	assert.NotEmpty(t, p.Bio)
	assert.NotEmpty(t, p.Email)
	assert.NotEmpty(t, p.Phone)
	assert.NotEmpty(t, p.Location)
	assert.NotEmpty(t, p.SocialLinks.GitHub)
	assert.NotEmpty(t, p.SocialLinks.LinkedIn)
	assert.NotEmpty(t, p.SocialLinks.Twitter)
	assert.NotEmpty(t, p.Stats.Experience)
	assert.NotEmpty(t, p.Stats.Projects)
	assert.NotEmpty(t, p.Stats.Clients)
	assert.NotEmpty(t, p.Stats.Awards)
}

func TestDefaultSkills(t *testing.T) {
	skills := DefaultSkills()

	assert.Len(t, skills, 6)
	for _, s := range skills {
		assert.NotEmpty(t, s.Name)
		assert.GreaterOrEqual(t, s.Level, 85)
		assert.LessOrEqual(t, s.Level, 95)
	}
}

func TestValidPassword(t *testing.T) {
	assert.False(t, ValidPassword("12345"))
	assert.True(t, ValidPassword("123456"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("vihaa22030@admin.com"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail(""))
}
