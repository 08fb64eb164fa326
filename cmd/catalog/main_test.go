package main

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	for _, path := range [][]string{
		{"serve"},
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "version"},
		{"user", "create-admin"},
		{"email", "history"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, "path %v", path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestCreateAdmin_Flags(t *testing.T) {
	root := newRootCommand()
	cmd, _, err := root.Find([]string{"user", "create-admin"})
	require.NoError(t, err)

	for _, name := range []string{emailFlag, passwordFlag, firstNameFlag, lastNameFlag} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}
}

func TestParseSteps(t *testing.T) {
	n, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = parseSteps([]string{"3"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, bad := range []string{"0", "-2", "all"} {
		_, err := parseSteps([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestAdminInput(t *testing.T) {
	in, err := adminInput("root@example.com", "secret1", "Ada", "Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", in.Email)
	assert.True(t, slices.Contains(in.Roles, domain.RoleAdmin))
	assert.True(t, slices.Contains(in.Roles, domain.RoleUser))

	_, err = adminInput("", "secret1", "Ada", "Lovelace")
	assert.Error(t, err)

	_, err = adminInput("root@example.com", "123", "Ada", "Lovelace")
	assert.Error(t, err)
}

func TestCheckHistoryLimit(t *testing.T) {
	assert.NoError(t, checkHistoryLimit(1))
	assert.NoError(t, checkHistoryLimit(20))
	assert.Error(t, checkHistoryLimit(0))
	assert.Error(t, checkHistoryLimit(-5))
}
