package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteermatch/internal/adapters/auth"
	"volunteermatch/internal/domain"
)

func TestTokenCommand(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("JWT_SECRET", "cli-secret")

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"token", "user-42", "--admin", "--email", "ops@example.org"})
	require.NoError(t, root.Execute())

	requester, err := auth.NewJWTVerifier("cli-secret").Verify(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "user-42", requester.ID)
	assert.Equal(t, domain.RoleAdmin, requester.Role)
	assert.Equal(t, "ops@example.org", requester.Email)
}

func TestTokenCommand_DisabledInProduction(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "prod-secret")

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"token", "user-42"})
	require.Error(t, root.Execute())
}

func TestMatchCalculate_RejectsMalformedEventID(t *testing.T) {
	t.Setenv("GO_ENV", "test")

	root := NewRootCommand()
	root.SetArgs([]string{"match", "calculate", "not-a-uuid"})
	err := root.Execute()
	require.ErrorIs(t, err, domain.ErrValidation)
}
