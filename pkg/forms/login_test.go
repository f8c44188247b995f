package forms_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fintrack/pkg/forms"
	"github.com/dmitrymomot/fintrack/pkg/logger"
	"github.com/dmitrymomot/fintrack/pkg/validator"
)

func TestLoginForm_Live(t *testing.T) {
	t.Parallel()
	f := forms.NewLoginForm()

	assert.False(t, f.SetEmail("bad"))
	msg, ok := f.GetError("email")
	assert.True(t, ok)
	assert.Equal(t, "Email must be in a valid email format", msg)

	assert.True(t, f.SetEmail(" me@example.com "))
	assert.False(t, f.HasError("email"))

	assert.False(t, f.SetPassword("abcdefgh"))
	msg, _ = f.GetError("password")
	assert.Equal(t, "Password must contain uppercase, lowercase, and number", msg)

	assert.True(t, f.SetPassword("Abcdefg1"))
	assert.Empty(t, f.Errors())
}

func TestLoginForm_Submit(t *testing.T) {
	t.Parallel()

	t.Run("empty form", func(t *testing.T) {
		f := forms.NewLoginForm()
		_, err := f.Submit()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Equal(t, map[string]string{
			"email":    "Email is required",
			"password": "Password is required",
		}, f.Errors())
	})

	t.Run("weak but long enough password is accepted", func(t *testing.T) {
		f := forms.NewLoginForm()
		f.SetEmail("  Me@Example.COM")
		f.SetPassword("secret")
		require.True(t, f.HasError("password"))

		req, err := f.Submit()
		require.NoError(t, err)
		assert.Equal(t, "me@example.com", req.Email)
		assert.Equal(t, "secret", req.Password)
		assert.False(t, f.HasError("password"))
	})

	t.Run("email is checked as it will be sent", func(t *testing.T) {
		f := forms.NewLoginForm()
		assert.False(t, f.SetEmail("...@b.co"))
		f.SetPassword("secret")

		_, err := f.Submit()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Equal(t, map[string]string{"email": "Email must be in a valid email format"}, f.Errors())
		assert.Equal(t, validator.ExtractValidationErrors(err).Map(), f.Errors())
	})

	t.Run("open starts a new session", func(t *testing.T) {
		f := forms.NewLoginForm()
		first := f.ID()
		f.SetEmail("bad")

		f.Open()
		assert.NotEqual(t, first, f.ID())
		assert.False(t, f.HasError("email"))

		_, err := f.Submit()
		assert.Error(t, err)
	})
}

func TestLoginForm_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf), logger.WithLevelName("debug"))
	f := forms.NewLoginForm(forms.WithLogger(log))
	f.Open()
	_, _ = f.Submit()

	var record map[string]any
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &record))

	assert.Equal(t, "form submission rejected", record["msg"])
	assert.Equal(t, "forms", record["component"])
	assert.Equal(t, "login", record["form"])
	_, err := uuid.Parse(record["form_id"].(string))
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{
		"email":    "Email is required",
		"password": "Password is required",
	}, record["field_errors"])
}
