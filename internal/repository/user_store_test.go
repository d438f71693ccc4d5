package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskmanager/internal/models"
)

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Secret123", true},
		{"aB3dEf", true},
		{"short", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoDigitsHere", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, validPassword(c.password), "password %q", c.password)
	}
}

func TestCreateRejectsWeakPasswordBeforeInsert(t *testing.T) {
	// The policy check runs before any query, so no database is needed.
	store := NewPostgresUserStore(nil)

	err := store.Create(context.Background(), &models.User{}, "weak")
	assert.ErrorIs(t, err, ErrWeakPassword)
}
