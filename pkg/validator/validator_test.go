package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	type inner struct {
		At string `validate:"omitempty,datetime=15:04"`
	}
	type cfg struct {
		Name  string `validate:"required"`
		Mode  string `validate:"oneof=a b"`
		Inner inner
	}

	tests := []struct {
		name    string
		in      interface{}
		wantErr string
	}{
		{name: "valid", in: cfg{Name: "x", Mode: "a", Inner: inner{At: "21:00"}}},
		{name: "empty time allowed", in: cfg{Name: "x", Mode: "b"}},
		{name: "missing name", in: cfg{Mode: "a"}, wantErr: "Field: cfg.Name, Tag: required"},
		{name: "bad time", in: cfg{Name: "x", Mode: "a", Inner: inner{At: "25:00"}}, wantErr: "Field: cfg.Inner.At, Tag: datetime, Param: 15:04"},
		{name: "not a struct", in: 42, wantErr: "validation failed"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestIsDate(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]bool{
		"2024-02-29": true,
		"2023-02-29": false,
		"2024-1-01":  false,
		"":           false,
		"tomorrow":   false,
	} {
		assert.Equal(t, want, IsDate(in), in)
	}
}

func TestIsEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmail("me@example.com"))
	assert.False(t, IsEmail("me"))
	assert.False(t, IsEmail(""))
}
